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

type Bill struct{ ent.Schema }

func (Bill) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "bills"},
	}
}

func (Bill) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("user_id", uuid.UUID{}),
		field.UUID("document_id", uuid.UUID{}).Unique(),
		field.String("vendor_name").NotEmpty(),
		field.Float("amount").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Time("due_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Bool("paid").Default(false),
		field.Time("paid_date").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("notes").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Bill) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE bill -> ONE document (FK: bills.document_id)
		edge.From("document", Document.Type).
			Ref("bill").
			Field("document_id").
			Required().
			Unique(),
	}
}
