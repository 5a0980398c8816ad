// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/billsnap/billsnap/gen/ent/paymentmethod"
	"github.com/google/uuid"
)

// PaymentMethod is the model entity for the PaymentMethod schema.
type PaymentMethod struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID uuid.UUID `json:"user_id,omitempty"`
	// MethodType holds the value of the "method_type" field.
	MethodType paymentmethod.MethodType `json:"method_type,omitempty"`
	// CardType holds the value of the "card_type" field.
	CardType *string `json:"card_type,omitempty"`
	// LastFour holds the value of the "last_four" field.
	LastFour string `json:"last_four,omitempty"`
	// Nickname holds the value of the "nickname" field.
	Nickname *string `json:"nickname,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PaymentMethodQuery when eager-loading is set.
	Edges        PaymentMethodEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PaymentMethodEdges holds the relations/edges for other nodes in the graph.
type PaymentMethodEdges struct {
	// Receipts holds the value of the receipts edge.
	Receipts []*Receipt `json:"receipts,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ReceiptsOrErr returns the Receipts value or an error if the edge
// was not loaded in eager-loading.
func (e PaymentMethodEdges) ReceiptsOrErr() ([]*Receipt, error) {
	if e.loadedTypes[0] {
		return e.Receipts, nil
	}
	return nil, &NotLoadedError{edge: "receipts"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PaymentMethod) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case paymentmethod.FieldMethodType, paymentmethod.FieldCardType, paymentmethod.FieldLastFour, paymentmethod.FieldNickname:
			values[i] = new(sql.NullString)
		case paymentmethod.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case paymentmethod.FieldID, paymentmethod.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PaymentMethod fields.
func (_m *PaymentMethod) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case paymentmethod.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case paymentmethod.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case paymentmethod.FieldMethodType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field method_type", values[i])
			} else if value.Valid {
				_m.MethodType = paymentmethod.MethodType(value.String)
			}
		case paymentmethod.FieldCardType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field card_type", values[i])
			} else if value.Valid {
				_m.CardType = new(string)
				*_m.CardType = value.String
			}
		case paymentmethod.FieldLastFour:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_four", values[i])
			} else if value.Valid {
				_m.LastFour = value.String
			}
		case paymentmethod.FieldNickname:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field nickname", values[i])
			} else if value.Valid {
				_m.Nickname = new(string)
				*_m.Nickname = value.String
			}
		case paymentmethod.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PaymentMethod.
// This includes values selected through modifiers, order, etc.
func (_m *PaymentMethod) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryReceipts queries the "receipts" edge of the PaymentMethod entity.
func (_m *PaymentMethod) QueryReceipts() *ReceiptQuery {
	return NewPaymentMethodClient(_m.config).QueryReceipts(_m)
}

// Update returns a builder for updating this PaymentMethod.
// Note that you need to call PaymentMethod.Unwrap() before calling this method if this PaymentMethod
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PaymentMethod) Update() *PaymentMethodUpdateOne {
	return NewPaymentMethodClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PaymentMethod entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PaymentMethod) Unwrap() *PaymentMethod {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PaymentMethod is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PaymentMethod) String() string {
	var builder strings.Builder
	builder.WriteString("PaymentMethod(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("method_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.MethodType))
	builder.WriteString(", ")
	if v := _m.CardType; v != nil {
		builder.WriteString("card_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("last_four=")
	builder.WriteString(_m.LastFour)
	builder.WriteString(", ")
	if v := _m.Nickname; v != nil {
		builder.WriteString("nickname=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PaymentMethods is a parsable slice of PaymentMethod.
type PaymentMethods []*PaymentMethod
