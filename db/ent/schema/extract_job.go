package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type ExtractJob struct{ ent.Schema }

func (ExtractJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extract_jobs"},
	}
}

func (ExtractJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("document_id", uuid.UUID{}),
		// Stable strings; see constants.JobStatus.
		field.String("status").Default("QUEUED"),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
		field.String("error_message").Optional().Nillable(),
		field.Text("ocr_text").Optional().Nillable(),
		field.JSON("extracted_json", map[string]any{}).Optional(),
		field.Float32("confidence").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "real"}),
		field.Bool("needs_review").Default(false),
	}
}

func (ExtractJob) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY jobs -> ONE document (FK: extract_jobs.document_id)
		edge.From("document", Document.Type).
			Ref("jobs").
			Field("document_id").
			Required().
			Unique(),
	}
}
