// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/billsnap/billsnap/gen/ent/paymentmethod"
	"github.com/billsnap/billsnap/gen/ent/predicate"
	"github.com/billsnap/billsnap/gen/ent/receipt"
	"github.com/google/uuid"
)

// PaymentMethodUpdate is the builder for updating PaymentMethod entities.
type PaymentMethodUpdate struct {
	config
	hooks    []Hook
	mutation *PaymentMethodMutation
}

// Where appends a list predicates to the PaymentMethodUpdate builder.
func (_u *PaymentMethodUpdate) Where(ps ...predicate.PaymentMethod) *PaymentMethodUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PaymentMethodUpdate) SetUserID(v uuid.UUID) *PaymentMethodUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PaymentMethodUpdate) SetNillableUserID(v *uuid.UUID) *PaymentMethodUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetMethodType sets the "method_type" field.
func (_u *PaymentMethodUpdate) SetMethodType(v paymentmethod.MethodType) *PaymentMethodUpdate {
	_u.mutation.SetMethodType(v)
	return _u
}

// SetNillableMethodType sets the "method_type" field if the given value is not nil.
func (_u *PaymentMethodUpdate) SetNillableMethodType(v *paymentmethod.MethodType) *PaymentMethodUpdate {
	if v != nil {
		_u.SetMethodType(*v)
	}
	return _u
}

// SetCardType sets the "card_type" field.
func (_u *PaymentMethodUpdate) SetCardType(v string) *PaymentMethodUpdate {
	_u.mutation.SetCardType(v)
	return _u
}

// SetNillableCardType sets the "card_type" field if the given value is not nil.
func (_u *PaymentMethodUpdate) SetNillableCardType(v *string) *PaymentMethodUpdate {
	if v != nil {
		_u.SetCardType(*v)
	}
	return _u
}

// ClearCardType clears the value of the "card_type" field.
func (_u *PaymentMethodUpdate) ClearCardType() *PaymentMethodUpdate {
	_u.mutation.ClearCardType()
	return _u
}

// SetLastFour sets the "last_four" field.
func (_u *PaymentMethodUpdate) SetLastFour(v string) *PaymentMethodUpdate {
	_u.mutation.SetLastFour(v)
	return _u
}

// SetNillableLastFour sets the "last_four" field if the given value is not nil.
func (_u *PaymentMethodUpdate) SetNillableLastFour(v *string) *PaymentMethodUpdate {
	if v != nil {
		_u.SetLastFour(*v)
	}
	return _u
}

// SetNickname sets the "nickname" field.
func (_u *PaymentMethodUpdate) SetNickname(v string) *PaymentMethodUpdate {
	_u.mutation.SetNickname(v)
	return _u
}

// SetNillableNickname sets the "nickname" field if the given value is not nil.
func (_u *PaymentMethodUpdate) SetNillableNickname(v *string) *PaymentMethodUpdate {
	if v != nil {
		_u.SetNickname(*v)
	}
	return _u
}

// ClearNickname clears the value of the "nickname" field.
func (_u *PaymentMethodUpdate) ClearNickname() *PaymentMethodUpdate {
	_u.mutation.ClearNickname()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PaymentMethodUpdate) SetCreatedAt(v time.Time) *PaymentMethodUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PaymentMethodUpdate) SetNillableCreatedAt(v *time.Time) *PaymentMethodUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddReceiptIDs adds the "receipts" edge to the Receipt entity by IDs.
func (_u *PaymentMethodUpdate) AddReceiptIDs(ids ...uuid.UUID) *PaymentMethodUpdate {
	_u.mutation.AddReceiptIDs(ids...)
	return _u
}

// AddReceipts adds the "receipts" edges to the Receipt entity.
func (_u *PaymentMethodUpdate) AddReceipts(v ...*Receipt) *PaymentMethodUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReceiptIDs(ids...)
}

// Mutation returns the PaymentMethodMutation object of the builder.
func (_u *PaymentMethodUpdate) Mutation() *PaymentMethodMutation {
	return _u.mutation
}

// ClearReceipts clears all "receipts" edges to the Receipt entity.
func (_u *PaymentMethodUpdate) ClearReceipts() *PaymentMethodUpdate {
	_u.mutation.ClearReceipts()
	return _u
}

// RemoveReceiptIDs removes the "receipts" edge to Receipt entities by IDs.
func (_u *PaymentMethodUpdate) RemoveReceiptIDs(ids ...uuid.UUID) *PaymentMethodUpdate {
	_u.mutation.RemoveReceiptIDs(ids...)
	return _u
}

// RemoveReceipts removes "receipts" edges to Receipt entities.
func (_u *PaymentMethodUpdate) RemoveReceipts(v ...*Receipt) *PaymentMethodUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReceiptIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PaymentMethodUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PaymentMethodUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PaymentMethodUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PaymentMethodUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PaymentMethodUpdate) check() error {
	if v, ok := _u.mutation.MethodType(); ok {
		if err := paymentmethod.MethodTypeValidator(v); err != nil {
			return &ValidationError{Name: "method_type", err: fmt.Errorf(`ent: validator failed for field "PaymentMethod.method_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastFour(); ok {
		if err := paymentmethod.LastFourValidator(v); err != nil {
			return &ValidationError{Name: "last_four", err: fmt.Errorf(`ent: validator failed for field "PaymentMethod.last_four": %w`, err)}
		}
	}
	return nil
}

func (_u *PaymentMethodUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(paymentmethod.Table, paymentmethod.Columns, sqlgraph.NewFieldSpec(paymentmethod.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(paymentmethod.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.MethodType(); ok {
		_spec.SetField(paymentmethod.FieldMethodType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CardType(); ok {
		_spec.SetField(paymentmethod.FieldCardType, field.TypeString, value)
	}
	if _u.mutation.CardTypeCleared() {
		_spec.ClearField(paymentmethod.FieldCardType, field.TypeString)
	}
	if value, ok := _u.mutation.LastFour(); ok {
		_spec.SetField(paymentmethod.FieldLastFour, field.TypeString, value)
	}
	if value, ok := _u.mutation.Nickname(); ok {
		_spec.SetField(paymentmethod.FieldNickname, field.TypeString, value)
	}
	if _u.mutation.NicknameCleared() {
		_spec.ClearField(paymentmethod.FieldNickname, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(paymentmethod.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.ReceiptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   paymentmethod.ReceiptsTable,
			Columns: []string{paymentmethod.ReceiptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReceiptsIDs(); len(nodes) > 0 && !_u.mutation.ReceiptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   paymentmethod.ReceiptsTable,
			Columns: []string{paymentmethod.ReceiptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReceiptsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   paymentmethod.ReceiptsTable,
			Columns: []string{paymentmethod.ReceiptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{paymentmethod.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PaymentMethodUpdateOne is the builder for updating a single PaymentMethod entity.
type PaymentMethodUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PaymentMethodMutation
}

// SetUserID sets the "user_id" field.
func (_u *PaymentMethodUpdateOne) SetUserID(v uuid.UUID) *PaymentMethodUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PaymentMethodUpdateOne) SetNillableUserID(v *uuid.UUID) *PaymentMethodUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetMethodType sets the "method_type" field.
func (_u *PaymentMethodUpdateOne) SetMethodType(v paymentmethod.MethodType) *PaymentMethodUpdateOne {
	_u.mutation.SetMethodType(v)
	return _u
}

// SetNillableMethodType sets the "method_type" field if the given value is not nil.
func (_u *PaymentMethodUpdateOne) SetNillableMethodType(v *paymentmethod.MethodType) *PaymentMethodUpdateOne {
	if v != nil {
		_u.SetMethodType(*v)
	}
	return _u
}

// SetCardType sets the "card_type" field.
func (_u *PaymentMethodUpdateOne) SetCardType(v string) *PaymentMethodUpdateOne {
	_u.mutation.SetCardType(v)
	return _u
}

// SetNillableCardType sets the "card_type" field if the given value is not nil.
func (_u *PaymentMethodUpdateOne) SetNillableCardType(v *string) *PaymentMethodUpdateOne {
	if v != nil {
		_u.SetCardType(*v)
	}
	return _u
}

// ClearCardType clears the value of the "card_type" field.
func (_u *PaymentMethodUpdateOne) ClearCardType() *PaymentMethodUpdateOne {
	_u.mutation.ClearCardType()
	return _u
}

// SetLastFour sets the "last_four" field.
func (_u *PaymentMethodUpdateOne) SetLastFour(v string) *PaymentMethodUpdateOne {
	_u.mutation.SetLastFour(v)
	return _u
}

// SetNillableLastFour sets the "last_four" field if the given value is not nil.
func (_u *PaymentMethodUpdateOne) SetNillableLastFour(v *string) *PaymentMethodUpdateOne {
	if v != nil {
		_u.SetLastFour(*v)
	}
	return _u
}

// SetNickname sets the "nickname" field.
func (_u *PaymentMethodUpdateOne) SetNickname(v string) *PaymentMethodUpdateOne {
	_u.mutation.SetNickname(v)
	return _u
}

// SetNillableNickname sets the "nickname" field if the given value is not nil.
func (_u *PaymentMethodUpdateOne) SetNillableNickname(v *string) *PaymentMethodUpdateOne {
	if v != nil {
		_u.SetNickname(*v)
	}
	return _u
}

// ClearNickname clears the value of the "nickname" field.
func (_u *PaymentMethodUpdateOne) ClearNickname() *PaymentMethodUpdateOne {
	_u.mutation.ClearNickname()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PaymentMethodUpdateOne) SetCreatedAt(v time.Time) *PaymentMethodUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PaymentMethodUpdateOne) SetNillableCreatedAt(v *time.Time) *PaymentMethodUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddReceiptIDs adds the "receipts" edge to the Receipt entity by IDs.
func (_u *PaymentMethodUpdateOne) AddReceiptIDs(ids ...uuid.UUID) *PaymentMethodUpdateOne {
	_u.mutation.AddReceiptIDs(ids...)
	return _u
}

// AddReceipts adds the "receipts" edges to the Receipt entity.
func (_u *PaymentMethodUpdateOne) AddReceipts(v ...*Receipt) *PaymentMethodUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReceiptIDs(ids...)
}

// Mutation returns the PaymentMethodMutation object of the builder.
func (_u *PaymentMethodUpdateOne) Mutation() *PaymentMethodMutation {
	return _u.mutation
}

// ClearReceipts clears all "receipts" edges to the Receipt entity.
func (_u *PaymentMethodUpdateOne) ClearReceipts() *PaymentMethodUpdateOne {
	_u.mutation.ClearReceipts()
	return _u
}

// RemoveReceiptIDs removes the "receipts" edge to Receipt entities by IDs.
func (_u *PaymentMethodUpdateOne) RemoveReceiptIDs(ids ...uuid.UUID) *PaymentMethodUpdateOne {
	_u.mutation.RemoveReceiptIDs(ids...)
	return _u
}

// RemoveReceipts removes "receipts" edges to Receipt entities.
func (_u *PaymentMethodUpdateOne) RemoveReceipts(v ...*Receipt) *PaymentMethodUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReceiptIDs(ids...)
}

// Where appends a list predicates to the PaymentMethodUpdate builder.
func (_u *PaymentMethodUpdateOne) Where(ps ...predicate.PaymentMethod) *PaymentMethodUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PaymentMethodUpdateOne) Select(field string, fields ...string) *PaymentMethodUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PaymentMethod entity.
func (_u *PaymentMethodUpdateOne) Save(ctx context.Context) (*PaymentMethod, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PaymentMethodUpdateOne) SaveX(ctx context.Context) *PaymentMethod {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PaymentMethodUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PaymentMethodUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PaymentMethodUpdateOne) check() error {
	if v, ok := _u.mutation.MethodType(); ok {
		if err := paymentmethod.MethodTypeValidator(v); err != nil {
			return &ValidationError{Name: "method_type", err: fmt.Errorf(`ent: validator failed for field "PaymentMethod.method_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastFour(); ok {
		if err := paymentmethod.LastFourValidator(v); err != nil {
			return &ValidationError{Name: "last_four", err: fmt.Errorf(`ent: validator failed for field "PaymentMethod.last_four": %w`, err)}
		}
	}
	return nil
}

func (_u *PaymentMethodUpdateOne) sqlSave(ctx context.Context) (_node *PaymentMethod, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(paymentmethod.Table, paymentmethod.Columns, sqlgraph.NewFieldSpec(paymentmethod.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PaymentMethod.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, paymentmethod.FieldID)
		for _, f := range fields {
			if !paymentmethod.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != paymentmethod.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(paymentmethod.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.MethodType(); ok {
		_spec.SetField(paymentmethod.FieldMethodType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CardType(); ok {
		_spec.SetField(paymentmethod.FieldCardType, field.TypeString, value)
	}
	if _u.mutation.CardTypeCleared() {
		_spec.ClearField(paymentmethod.FieldCardType, field.TypeString)
	}
	if value, ok := _u.mutation.LastFour(); ok {
		_spec.SetField(paymentmethod.FieldLastFour, field.TypeString, value)
	}
	if value, ok := _u.mutation.Nickname(); ok {
		_spec.SetField(paymentmethod.FieldNickname, field.TypeString, value)
	}
	if _u.mutation.NicknameCleared() {
		_spec.ClearField(paymentmethod.FieldNickname, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(paymentmethod.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.ReceiptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   paymentmethod.ReceiptsTable,
			Columns: []string{paymentmethod.ReceiptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReceiptsIDs(); len(nodes) > 0 && !_u.mutation.ReceiptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   paymentmethod.ReceiptsTable,
			Columns: []string{paymentmethod.ReceiptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReceiptsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   paymentmethod.ReceiptsTable,
			Columns: []string{paymentmethod.ReceiptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PaymentMethod{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{paymentmethod.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
