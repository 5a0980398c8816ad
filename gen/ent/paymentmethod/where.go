// Code generated by ent, DO NOT EDIT.

package paymentmethod

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/billsnap/billsnap/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldEQ(FieldUserID, v))
}

// CardType applies equality check predicate on the "card_type" field. It's identical to CardTypeEQ.
func CardType(v string) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldEQ(FieldCardType, v))
}

// LastFour applies equality check predicate on the "last_four" field. It's identical to LastFourEQ.
func LastFour(v string) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldEQ(FieldLastFour, v))
}

// Nickname applies equality check predicate on the "nickname" field. It's identical to NicknameEQ.
func Nickname(v string) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldEQ(FieldNickname, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldLTE(FieldUserID, v))
}

// MethodTypeEQ applies the EQ predicate on the "method_type" field.
func MethodTypeEQ(v MethodType) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldEQ(FieldMethodType, v))
}

// MethodTypeNEQ applies the NEQ predicate on the "method_type" field.
func MethodTypeNEQ(v MethodType) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldNEQ(FieldMethodType, v))
}

// MethodTypeIn applies the In predicate on the "method_type" field.
func MethodTypeIn(vs ...MethodType) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldIn(FieldMethodType, vs...))
}

// MethodTypeNotIn applies the NotIn predicate on the "method_type" field.
func MethodTypeNotIn(vs ...MethodType) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldNotIn(FieldMethodType, vs...))
}

// CardTypeEQ applies the EQ predicate on the "card_type" field.
func CardTypeEQ(v string) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldEQ(FieldCardType, v))
}

// CardTypeNEQ applies the NEQ predicate on the "card_type" field.
func CardTypeNEQ(v string) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldNEQ(FieldCardType, v))
}

// CardTypeIn applies the In predicate on the "card_type" field.
func CardTypeIn(vs ...string) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldIn(FieldCardType, vs...))
}

// CardTypeNotIn applies the NotIn predicate on the "card_type" field.
func CardTypeNotIn(vs ...string) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldNotIn(FieldCardType, vs...))
}

// CardTypeGT applies the GT predicate on the "card_type" field.
func CardTypeGT(v string) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldGT(FieldCardType, v))
}

// CardTypeGTE applies the GTE predicate on the "card_type" field.
func CardTypeGTE(v string) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldGTE(FieldCardType, v))
}

// CardTypeLT applies the LT predicate on the "card_type" field.
func CardTypeLT(v string) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldLT(FieldCardType, v))
}

// CardTypeLTE applies the LTE predicate on the "card_type" field.
func CardTypeLTE(v string) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldLTE(FieldCardType, v))
}

// CardTypeContains applies the Contains predicate on the "card_type" field.
func CardTypeContains(v string) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldContains(FieldCardType, v))
}

// CardTypeHasPrefix applies the HasPrefix predicate on the "card_type" field.
func CardTypeHasPrefix(v string) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldHasPrefix(FieldCardType, v))
}

// CardTypeHasSuffix applies the HasSuffix predicate on the "card_type" field.
func CardTypeHasSuffix(v string) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldHasSuffix(FieldCardType, v))
}

// CardTypeIsNil applies the IsNil predicate on the "card_type" field.
func CardTypeIsNil() predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldIsNull(FieldCardType))
}

// CardTypeNotNil applies the NotNil predicate on the "card_type" field.
func CardTypeNotNil() predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldNotNull(FieldCardType))
}

// CardTypeEqualFold applies the EqualFold predicate on the "card_type" field.
func CardTypeEqualFold(v string) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldEqualFold(FieldCardType, v))
}

// CardTypeContainsFold applies the ContainsFold predicate on the "card_type" field.
func CardTypeContainsFold(v string) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldContainsFold(FieldCardType, v))
}

// LastFourEQ applies the EQ predicate on the "last_four" field.
func LastFourEQ(v string) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldEQ(FieldLastFour, v))
}

// LastFourNEQ applies the NEQ predicate on the "last_four" field.
func LastFourNEQ(v string) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldNEQ(FieldLastFour, v))
}

// LastFourIn applies the In predicate on the "last_four" field.
func LastFourIn(vs ...string) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldIn(FieldLastFour, vs...))
}

// LastFourNotIn applies the NotIn predicate on the "last_four" field.
func LastFourNotIn(vs ...string) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldNotIn(FieldLastFour, vs...))
}

// LastFourGT applies the GT predicate on the "last_four" field.
func LastFourGT(v string) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldGT(FieldLastFour, v))
}

// LastFourGTE applies the GTE predicate on the "last_four" field.
func LastFourGTE(v string) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldGTE(FieldLastFour, v))
}

// LastFourLT applies the LT predicate on the "last_four" field.
func LastFourLT(v string) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldLT(FieldLastFour, v))
}

// LastFourLTE applies the LTE predicate on the "last_four" field.
func LastFourLTE(v string) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldLTE(FieldLastFour, v))
}

// LastFourContains applies the Contains predicate on the "last_four" field.
func LastFourContains(v string) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldContains(FieldLastFour, v))
}

// LastFourHasPrefix applies the HasPrefix predicate on the "last_four" field.
func LastFourHasPrefix(v string) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldHasPrefix(FieldLastFour, v))
}

// LastFourHasSuffix applies the HasSuffix predicate on the "last_four" field.
func LastFourHasSuffix(v string) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldHasSuffix(FieldLastFour, v))
}

// LastFourEqualFold applies the EqualFold predicate on the "last_four" field.
func LastFourEqualFold(v string) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldEqualFold(FieldLastFour, v))
}

// LastFourContainsFold applies the ContainsFold predicate on the "last_four" field.
func LastFourContainsFold(v string) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldContainsFold(FieldLastFour, v))
}

// NicknameEQ applies the EQ predicate on the "nickname" field.
func NicknameEQ(v string) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldEQ(FieldNickname, v))
}

// NicknameNEQ applies the NEQ predicate on the "nickname" field.
func NicknameNEQ(v string) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldNEQ(FieldNickname, v))
}

// NicknameIn applies the In predicate on the "nickname" field.
func NicknameIn(vs ...string) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldIn(FieldNickname, vs...))
}

// NicknameNotIn applies the NotIn predicate on the "nickname" field.
func NicknameNotIn(vs ...string) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldNotIn(FieldNickname, vs...))
}

// NicknameGT applies the GT predicate on the "nickname" field.
func NicknameGT(v string) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldGT(FieldNickname, v))
}

// NicknameGTE applies the GTE predicate on the "nickname" field.
func NicknameGTE(v string) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldGTE(FieldNickname, v))
}

// NicknameLT applies the LT predicate on the "nickname" field.
func NicknameLT(v string) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldLT(FieldNickname, v))
}

// NicknameLTE applies the LTE predicate on the "nickname" field.
func NicknameLTE(v string) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldLTE(FieldNickname, v))
}

// NicknameContains applies the Contains predicate on the "nickname" field.
func NicknameContains(v string) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldContains(FieldNickname, v))
}

// NicknameHasPrefix applies the HasPrefix predicate on the "nickname" field.
func NicknameHasPrefix(v string) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldHasPrefix(FieldNickname, v))
}

// NicknameHasSuffix applies the HasSuffix predicate on the "nickname" field.
func NicknameHasSuffix(v string) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldHasSuffix(FieldNickname, v))
}

// NicknameIsNil applies the IsNil predicate on the "nickname" field.
func NicknameIsNil() predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldIsNull(FieldNickname))
}

// NicknameNotNil applies the NotNil predicate on the "nickname" field.
func NicknameNotNil() predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldNotNull(FieldNickname))
}

// NicknameEqualFold applies the EqualFold predicate on the "nickname" field.
func NicknameEqualFold(v string) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldEqualFold(FieldNickname, v))
}

// NicknameContainsFold applies the ContainsFold predicate on the "nickname" field.
func NicknameContainsFold(v string) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldContainsFold(FieldNickname, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.FieldLTE(FieldCreatedAt, v))
}

// HasReceipts applies the HasEdge predicate on the "receipts" edge.
func HasReceipts() predicate.PaymentMethod {
	return predicate.PaymentMethod(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ReceiptsTable, ReceiptsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReceiptsWith applies the HasEdge predicate on the "receipts" edge with a given conditions (other predicates).
func HasReceiptsWith(preds ...predicate.Receipt) predicate.PaymentMethod {
	return predicate.PaymentMethod(func(s *sql.Selector) {
		step := newReceiptsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PaymentMethod) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PaymentMethod) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PaymentMethod) predicate.PaymentMethod {
	return predicate.PaymentMethod(sql.NotPredicates(p))
}
