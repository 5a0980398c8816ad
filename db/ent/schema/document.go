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

type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("user_id", uuid.UUID{}),
		field.String("file_name").NotEmpty(),
		field.Enum("document_type").
			Values("RECEIPT", "BILL", "OTHER").
			Default("OTHER"),
		field.Enum("status").
			Values("DRAFT", "PROCESSED", "EXPORTED").
			Default("DRAFT"),
		field.String("vendor_name").Optional().Nillable(),
		field.Float("amount").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Time("document_date").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.UUID("payment_method_id", uuid.UUID{}).Optional().Nillable(),
		field.String("notes").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE document -> at most one receipt or bill row
		edge.To("receipt", Receipt.Type).Unique(),
		edge.To("bill", Bill.Type).Unique(),
		// ONE document -> MANY extraction jobs (reprocessing keeps history)
		edge.To("jobs", ExtractJob.Type),
	}
}
