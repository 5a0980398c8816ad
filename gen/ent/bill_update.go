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
	"github.com/billsnap/billsnap/gen/ent/bill"
	"github.com/billsnap/billsnap/gen/ent/document"
	"github.com/billsnap/billsnap/gen/ent/predicate"
	"github.com/google/uuid"
)

// BillUpdate is the builder for updating Bill entities.
type BillUpdate struct {
	config
	hooks    []Hook
	mutation *BillMutation
}

// Where appends a list predicates to the BillUpdate builder.
func (_u *BillUpdate) Where(ps ...predicate.Bill) *BillUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *BillUpdate) SetUserID(v uuid.UUID) *BillUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *BillUpdate) SetNillableUserID(v *uuid.UUID) *BillUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *BillUpdate) SetDocumentID(v uuid.UUID) *BillUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *BillUpdate) SetNillableDocumentID(v *uuid.UUID) *BillUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetVendorName sets the "vendor_name" field.
func (_u *BillUpdate) SetVendorName(v string) *BillUpdate {
	_u.mutation.SetVendorName(v)
	return _u
}

// SetNillableVendorName sets the "vendor_name" field if the given value is not nil.
func (_u *BillUpdate) SetNillableVendorName(v *string) *BillUpdate {
	if v != nil {
		_u.SetVendorName(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *BillUpdate) SetAmount(v float64) *BillUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *BillUpdate) SetNillableAmount(v *float64) *BillUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *BillUpdate) AddAmount(v float64) *BillUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *BillUpdate) SetDueDate(v time.Time) *BillUpdate {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *BillUpdate) SetNillableDueDate(v *time.Time) *BillUpdate {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// SetPaid sets the "paid" field.
func (_u *BillUpdate) SetPaid(v bool) *BillUpdate {
	_u.mutation.SetPaid(v)
	return _u
}

// SetNillablePaid sets the "paid" field if the given value is not nil.
func (_u *BillUpdate) SetNillablePaid(v *bool) *BillUpdate {
	if v != nil {
		_u.SetPaid(*v)
	}
	return _u
}

// SetPaidDate sets the "paid_date" field.
func (_u *BillUpdate) SetPaidDate(v time.Time) *BillUpdate {
	_u.mutation.SetPaidDate(v)
	return _u
}

// SetNillablePaidDate sets the "paid_date" field if the given value is not nil.
func (_u *BillUpdate) SetNillablePaidDate(v *time.Time) *BillUpdate {
	if v != nil {
		_u.SetPaidDate(*v)
	}
	return _u
}

// ClearPaidDate clears the value of the "paid_date" field.
func (_u *BillUpdate) ClearPaidDate() *BillUpdate {
	_u.mutation.ClearPaidDate()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *BillUpdate) SetNotes(v string) *BillUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *BillUpdate) SetNillableNotes(v *string) *BillUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *BillUpdate) ClearNotes() *BillUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BillUpdate) SetCreatedAt(v time.Time) *BillUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BillUpdate) SetNillableCreatedAt(v *time.Time) *BillUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BillUpdate) SetUpdatedAt(v time.Time) *BillUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *BillUpdate) SetDocument(v *Document) *BillUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the BillMutation object of the builder.
func (_u *BillUpdate) Mutation() *BillMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *BillUpdate) ClearDocument() *BillUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BillUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BillUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BillUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BillUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BillUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := bill.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BillUpdate) check() error {
	if v, ok := _u.mutation.VendorName(); ok {
		if err := bill.VendorNameValidator(v); err != nil {
			return &ValidationError{Name: "vendor_name", err: fmt.Errorf(`ent: validator failed for field "Bill.vendor_name": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Bill.document"`)
	}
	return nil
}

func (_u *BillUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bill.Table, bill.Columns, sqlgraph.NewFieldSpec(bill.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(bill.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.VendorName(); ok {
		_spec.SetField(bill.FieldVendorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(bill.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(bill.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(bill.FieldDueDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Paid(); ok {
		_spec.SetField(bill.FieldPaid, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PaidDate(); ok {
		_spec.SetField(bill.FieldPaidDate, field.TypeTime, value)
	}
	if _u.mutation.PaidDateCleared() {
		_spec.ClearField(bill.FieldPaidDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(bill.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(bill.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(bill.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(bill.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   bill.DocumentTable,
			Columns: []string{bill.DocumentColumn},
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
			Table:   bill.DocumentTable,
			Columns: []string{bill.DocumentColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bill.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BillUpdateOne is the builder for updating a single Bill entity.
type BillUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BillMutation
}

// SetUserID sets the "user_id" field.
func (_u *BillUpdateOne) SetUserID(v uuid.UUID) *BillUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableUserID(v *uuid.UUID) *BillUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *BillUpdateOne) SetDocumentID(v uuid.UUID) *BillUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableDocumentID(v *uuid.UUID) *BillUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetVendorName sets the "vendor_name" field.
func (_u *BillUpdateOne) SetVendorName(v string) *BillUpdateOne {
	_u.mutation.SetVendorName(v)
	return _u
}

// SetNillableVendorName sets the "vendor_name" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableVendorName(v *string) *BillUpdateOne {
	if v != nil {
		_u.SetVendorName(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *BillUpdateOne) SetAmount(v float64) *BillUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableAmount(v *float64) *BillUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *BillUpdateOne) AddAmount(v float64) *BillUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *BillUpdateOne) SetDueDate(v time.Time) *BillUpdateOne {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableDueDate(v *time.Time) *BillUpdateOne {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// SetPaid sets the "paid" field.
func (_u *BillUpdateOne) SetPaid(v bool) *BillUpdateOne {
	_u.mutation.SetPaid(v)
	return _u
}

// SetNillablePaid sets the "paid" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillablePaid(v *bool) *BillUpdateOne {
	if v != nil {
		_u.SetPaid(*v)
	}
	return _u
}

// SetPaidDate sets the "paid_date" field.
func (_u *BillUpdateOne) SetPaidDate(v time.Time) *BillUpdateOne {
	_u.mutation.SetPaidDate(v)
	return _u
}

// SetNillablePaidDate sets the "paid_date" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillablePaidDate(v *time.Time) *BillUpdateOne {
	if v != nil {
		_u.SetPaidDate(*v)
	}
	return _u
}

// ClearPaidDate clears the value of the "paid_date" field.
func (_u *BillUpdateOne) ClearPaidDate() *BillUpdateOne {
	_u.mutation.ClearPaidDate()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *BillUpdateOne) SetNotes(v string) *BillUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableNotes(v *string) *BillUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *BillUpdateOne) ClearNotes() *BillUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BillUpdateOne) SetCreatedAt(v time.Time) *BillUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableCreatedAt(v *time.Time) *BillUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BillUpdateOne) SetUpdatedAt(v time.Time) *BillUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *BillUpdateOne) SetDocument(v *Document) *BillUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the BillMutation object of the builder.
func (_u *BillUpdateOne) Mutation() *BillMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *BillUpdateOne) ClearDocument() *BillUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the BillUpdate builder.
func (_u *BillUpdateOne) Where(ps ...predicate.Bill) *BillUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BillUpdateOne) Select(field string, fields ...string) *BillUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Bill entity.
func (_u *BillUpdateOne) Save(ctx context.Context) (*Bill, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BillUpdateOne) SaveX(ctx context.Context) *Bill {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BillUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BillUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BillUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := bill.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BillUpdateOne) check() error {
	if v, ok := _u.mutation.VendorName(); ok {
		if err := bill.VendorNameValidator(v); err != nil {
			return &ValidationError{Name: "vendor_name", err: fmt.Errorf(`ent: validator failed for field "Bill.vendor_name": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Bill.document"`)
	}
	return nil
}

func (_u *BillUpdateOne) sqlSave(ctx context.Context) (_node *Bill, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bill.Table, bill.Columns, sqlgraph.NewFieldSpec(bill.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Bill.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, bill.FieldID)
		for _, f := range fields {
			if !bill.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != bill.FieldID {
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
		_spec.SetField(bill.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.VendorName(); ok {
		_spec.SetField(bill.FieldVendorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(bill.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(bill.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(bill.FieldDueDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Paid(); ok {
		_spec.SetField(bill.FieldPaid, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PaidDate(); ok {
		_spec.SetField(bill.FieldPaidDate, field.TypeTime, value)
	}
	if _u.mutation.PaidDateCleared() {
		_spec.ClearField(bill.FieldPaidDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(bill.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(bill.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(bill.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(bill.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   bill.DocumentTable,
			Columns: []string{bill.DocumentColumn},
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
			Table:   bill.DocumentTable,
			Columns: []string{bill.DocumentColumn},
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
	_node = &Bill{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bill.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
