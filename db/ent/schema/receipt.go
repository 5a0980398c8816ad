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

type Receipt struct{ ent.Schema }

func (Receipt) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "receipts"},
	}
}

func (Receipt) Fields() []ent.Field {
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
		field.Time("receipt_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.UUID("payment_method_id", uuid.UUID{}).Optional().Nillable(),
		field.String("notes").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Receipt) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE receipt -> ONE document (FK: receipts.document_id)
		edge.From("document", Document.Type).
			Ref("receipt").
			Field("document_id").
			Required().
			Unique(),
		// OPTIONAL: MANY receipts -> ONE payment method
		edge.From("payment_method", PaymentMethod.Type).
			Ref("receipts").
			Field("payment_method_id").
			Unique(),
	}
}
