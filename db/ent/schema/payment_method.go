package schema

import (
	"errors"
	"regexp"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

var (
	reLast4    = regexp.MustCompile(`^[0-9]{4}$`)
	reLast4Err = errors.New("invalid last 4 digits")
)

type PaymentMethod struct{ ent.Schema }

func (PaymentMethod) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "payment_methods"},
	}
}

func (PaymentMethod) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("user_id", uuid.UUID{}),
		field.Enum("method_type").
			Values("credit_card", "debit_card", "bank_account"),
		field.String("card_type").Optional().Nillable(),
		field.String("last_four").
			Validate(func(s string) error {
				if reLast4.MatchString(s) {
					return nil
				}
				return reLast4Err
			}),
		field.String("nickname").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
	}
}

func (PaymentMethod) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("receipts", Receipt.Type),
	}
}
