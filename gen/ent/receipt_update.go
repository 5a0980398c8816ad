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
	"github.com/billsnap/billsnap/gen/ent/document"
	"github.com/billsnap/billsnap/gen/ent/paymentmethod"
	"github.com/billsnap/billsnap/gen/ent/predicate"
	"github.com/billsnap/billsnap/gen/ent/receipt"
	"github.com/google/uuid"
)

// ReceiptUpdate is the builder for updating Receipt entities.
type ReceiptUpdate struct {
	config
	hooks    []Hook
	mutation *ReceiptMutation
}

// Where appends a list predicates to the ReceiptUpdate builder.
func (_u *ReceiptUpdate) Where(ps ...predicate.Receipt) *ReceiptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ReceiptUpdate) SetUserID(v uuid.UUID) *ReceiptUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableUserID(v *uuid.UUID) *ReceiptUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *ReceiptUpdate) SetDocumentID(v uuid.UUID) *ReceiptUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableDocumentID(v *uuid.UUID) *ReceiptUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetVendorName sets the "vendor_name" field.
func (_u *ReceiptUpdate) SetVendorName(v string) *ReceiptUpdate {
	_u.mutation.SetVendorName(v)
	return _u
}

// SetNillableVendorName sets the "vendor_name" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableVendorName(v *string) *ReceiptUpdate {
	if v != nil {
		_u.SetVendorName(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *ReceiptUpdate) SetAmount(v float64) *ReceiptUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableAmount(v *float64) *ReceiptUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *ReceiptUpdate) AddAmount(v float64) *ReceiptUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetReceiptDate sets the "receipt_date" field.
func (_u *ReceiptUpdate) SetReceiptDate(v time.Time) *ReceiptUpdate {
	_u.mutation.SetReceiptDate(v)
	return _u
}

// SetNillableReceiptDate sets the "receipt_date" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableReceiptDate(v *time.Time) *ReceiptUpdate {
	if v != nil {
		_u.SetReceiptDate(*v)
	}
	return _u
}

// SetPaymentMethodID sets the "payment_method_id" field.
func (_u *ReceiptUpdate) SetPaymentMethodID(v uuid.UUID) *ReceiptUpdate {
	_u.mutation.SetPaymentMethodID(v)
	return _u
}

// SetNillablePaymentMethodID sets the "payment_method_id" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillablePaymentMethodID(v *uuid.UUID) *ReceiptUpdate {
	if v != nil {
		_u.SetPaymentMethodID(*v)
	}
	return _u
}

// ClearPaymentMethodID clears the value of the "payment_method_id" field.
func (_u *ReceiptUpdate) ClearPaymentMethodID() *ReceiptUpdate {
	_u.mutation.ClearPaymentMethodID()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *ReceiptUpdate) SetNotes(v string) *ReceiptUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableNotes(v *string) *ReceiptUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *ReceiptUpdate) ClearNotes() *ReceiptUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReceiptUpdate) SetCreatedAt(v time.Time) *ReceiptUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableCreatedAt(v *time.Time) *ReceiptUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReceiptUpdate) SetUpdatedAt(v time.Time) *ReceiptUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ReceiptUpdate) SetDocument(v *Document) *ReceiptUpdate {
	return _u.SetDocumentID(v.ID)
}

// SetPaymentMethod sets the "payment_method" edge to the PaymentMethod entity.
func (_u *ReceiptUpdate) SetPaymentMethod(v *PaymentMethod) *ReceiptUpdate {
	return _u.SetPaymentMethodID(v.ID)
}

// Mutation returns the ReceiptMutation object of the builder.
func (_u *ReceiptUpdate) Mutation() *ReceiptMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ReceiptUpdate) ClearDocument() *ReceiptUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// ClearPaymentMethod clears the "payment_method" edge to the PaymentMethod entity.
func (_u *ReceiptUpdate) ClearPaymentMethod() *ReceiptUpdate {
	_u.mutation.ClearPaymentMethod()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReceiptUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReceiptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReceiptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReceiptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReceiptUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := receipt.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReceiptUpdate) check() error {
	if v, ok := _u.mutation.VendorName(); ok {
		if err := receipt.VendorNameValidator(v); err != nil {
			return &ValidationError{Name: "vendor_name", err: fmt.Errorf(`ent: validator failed for field "Receipt.vendor_name": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Receipt.document"`)
	}
	return nil
}

func (_u *ReceiptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(receipt.Table, receipt.Columns, sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(receipt.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.VendorName(); ok {
		_spec.SetField(receipt.FieldVendorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(receipt.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(receipt.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ReceiptDate(); ok {
		_spec.SetField(receipt.FieldReceiptDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(receipt.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(receipt.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(receipt.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(receipt.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   receipt.DocumentTable,
			Columns: []string{receipt.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   receipt.DocumentTable,
			Columns: []string{receipt.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PaymentMethodCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   receipt.PaymentMethodTable,
			Columns: []string{receipt.PaymentMethodColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(paymentmethod.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PaymentMethodIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   receipt.PaymentMethodTable,
			Columns: []string{receipt.PaymentMethodColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(paymentmethod.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{receipt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReceiptUpdateOne is the builder for updating a single Receipt entity.
type ReceiptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReceiptMutation
}

// SetUserID sets the "user_id" field.
func (_u *ReceiptUpdateOne) SetUserID(v uuid.UUID) *ReceiptUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableUserID(v *uuid.UUID) *ReceiptUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *ReceiptUpdateOne) SetDocumentID(v uuid.UUID) *ReceiptUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableDocumentID(v *uuid.UUID) *ReceiptUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetVendorName sets the "vendor_name" field.
func (_u *ReceiptUpdateOne) SetVendorName(v string) *ReceiptUpdateOne {
	_u.mutation.SetVendorName(v)
	return _u
}

// SetNillableVendorName sets the "vendor_name" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableVendorName(v *string) *ReceiptUpdateOne {
	if v != nil {
		_u.SetVendorName(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *ReceiptUpdateOne) SetAmount(v float64) *ReceiptUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableAmount(v *float64) *ReceiptUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *ReceiptUpdateOne) AddAmount(v float64) *ReceiptUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetReceiptDate sets the "receipt_date" field.
func (_u *ReceiptUpdateOne) SetReceiptDate(v time.Time) *ReceiptUpdateOne {
	_u.mutation.SetReceiptDate(v)
	return _u
}

// SetNillableReceiptDate sets the "receipt_date" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableReceiptDate(v *time.Time) *ReceiptUpdateOne {
	if v != nil {
		_u.SetReceiptDate(*v)
	}
	return _u
}

// SetPaymentMethodID sets the "payment_method_id" field.
func (_u *ReceiptUpdateOne) SetPaymentMethodID(v uuid.UUID) *ReceiptUpdateOne {
	_u.mutation.SetPaymentMethodID(v)
	return _u
}

// SetNillablePaymentMethodID sets the "payment_method_id" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillablePaymentMethodID(v *uuid.UUID) *ReceiptUpdateOne {
	if v != nil {
		_u.SetPaymentMethodID(*v)
	}
	return _u
}

// ClearPaymentMethodID clears the value of the "payment_method_id" field.
func (_u *ReceiptUpdateOne) ClearPaymentMethodID() *ReceiptUpdateOne {
	_u.mutation.ClearPaymentMethodID()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *ReceiptUpdateOne) SetNotes(v string) *ReceiptUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableNotes(v *string) *ReceiptUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *ReceiptUpdateOne) ClearNotes() *ReceiptUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReceiptUpdateOne) SetCreatedAt(v time.Time) *ReceiptUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableCreatedAt(v *time.Time) *ReceiptUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReceiptUpdateOne) SetUpdatedAt(v time.Time) *ReceiptUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ReceiptUpdateOne) SetDocument(v *Document) *ReceiptUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// SetPaymentMethod sets the "payment_method" edge to the PaymentMethod entity.
func (_u *ReceiptUpdateOne) SetPaymentMethod(v *PaymentMethod) *ReceiptUpdateOne {
	return _u.SetPaymentMethodID(v.ID)
}

// Mutation returns the ReceiptMutation object of the builder.
func (_u *ReceiptUpdateOne) Mutation() *ReceiptMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ReceiptUpdateOne) ClearDocument() *ReceiptUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// ClearPaymentMethod clears the "payment_method" edge to the PaymentMethod entity.
func (_u *ReceiptUpdateOne) ClearPaymentMethod() *ReceiptUpdateOne {
	_u.mutation.ClearPaymentMethod()
	return _u
}

// Where appends a list predicates to the ReceiptUpdate builder.
func (_u *ReceiptUpdateOne) Where(ps ...predicate.Receipt) *ReceiptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReceiptUpdateOne) Select(field string, fields ...string) *ReceiptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Receipt entity.
func (_u *ReceiptUpdateOne) Save(ctx context.Context) (*Receipt, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReceiptUpdateOne) SaveX(ctx context.Context) *Receipt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReceiptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReceiptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReceiptUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := receipt.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReceiptUpdateOne) check() error {
	if v, ok := _u.mutation.VendorName(); ok {
		if err := receipt.VendorNameValidator(v); err != nil {
			return &ValidationError{Name: "vendor_name", err: fmt.Errorf(`ent: validator failed for field "Receipt.vendor_name": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Receipt.document"`)
	}
	return nil
}

func (_u *ReceiptUpdateOne) sqlSave(ctx context.Context) (_node *Receipt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(receipt.Table, receipt.Columns, sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Receipt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, receipt.FieldID)
		for _, f := range fields {
			if !receipt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != receipt.FieldID {
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
		_spec.SetField(receipt.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.VendorName(); ok {
		_spec.SetField(receipt.FieldVendorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(receipt.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(receipt.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ReceiptDate(); ok {
		_spec.SetField(receipt.FieldReceiptDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(receipt.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(receipt.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(receipt.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(receipt.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   receipt.DocumentTable,
			Columns: []string{receipt.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   receipt.DocumentTable,
			Columns: []string{receipt.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PaymentMethodCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   receipt.PaymentMethodTable,
			Columns: []string{receipt.PaymentMethodColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(paymentmethod.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PaymentMethodIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   receipt.PaymentMethodTable,
			Columns: []string{receipt.PaymentMethodColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(paymentmethod.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Receipt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{receipt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
