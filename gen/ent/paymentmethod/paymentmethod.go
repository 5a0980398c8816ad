// Code generated by ent, DO NOT EDIT.

package paymentmethod

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the paymentmethod type in the database.
	Label = "payment_method"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldMethodType holds the string denoting the method_type field in the database.
	FieldMethodType = "method_type"
	// FieldCardType holds the string denoting the card_type field in the database.
	FieldCardType = "card_type"
	// FieldLastFour holds the string denoting the last_four field in the database.
	FieldLastFour = "last_four"
	// FieldNickname holds the string denoting the nickname field in the database.
	FieldNickname = "nickname"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeReceipts holds the string denoting the receipts edge name in mutations.
	EdgeReceipts = "receipts"
	// Table holds the table name of the paymentmethod in the database.
	Table = "payment_methods"
	// ReceiptsTable is the table that holds the receipts relation/edge.
	ReceiptsTable = "receipts"
	// ReceiptsInverseTable is the table name for the Receipt entity.
	// It exists in this package in order to avoid circular dependency with the "receipt" package.
	ReceiptsInverseTable = "receipts"
	// ReceiptsColumn is the table column denoting the receipts relation/edge.
	ReceiptsColumn = "payment_method_id"
)

// Columns holds all SQL columns for paymentmethod fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldMethodType,
	FieldCardType,
	FieldLastFour,
	FieldNickname,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// LastFourValidator is a validator for the "last_four" field. It is called by the builders before save.
	LastFourValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// MethodType defines the type for the "method_type" enum field.
type MethodType string

// MethodType values.
const (
	MethodTypeCreditCard  MethodType = "credit_card"
	MethodTypeDebitCard   MethodType = "debit_card"
	MethodTypeBankAccount MethodType = "bank_account"
)

func (mt MethodType) String() string {
	return string(mt)
}

// MethodTypeValidator is a validator for the "method_type" field enum values. It is called by the builders before save.
func MethodTypeValidator(mt MethodType) error {
	switch mt {
	case MethodTypeCreditCard, MethodTypeDebitCard, MethodTypeBankAccount:
		return nil
	default:
		return fmt.Errorf("paymentmethod: invalid enum value for method_type field: %q", mt)
	}
}

// OrderOption defines the ordering options for the PaymentMethod queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByMethodType orders the results by the method_type field.
func ByMethodType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMethodType, opts...).ToFunc()
}

// ByCardType orders the results by the card_type field.
func ByCardType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCardType, opts...).ToFunc()
}

// ByLastFour orders the results by the last_four field.
func ByLastFour(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastFour, opts...).ToFunc()
}

// ByNickname orders the results by the nickname field.
func ByNickname(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNickname, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByReceiptsCount orders the results by receipts count.
func ByReceiptsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newReceiptsStep(), opts...)
	}
}

// ByReceipts orders the results by receipts terms.
func ByReceipts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newReceiptsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newReceiptsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ReceiptsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ReceiptsTable, ReceiptsColumn),
	)
}
