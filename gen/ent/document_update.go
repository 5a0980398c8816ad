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
	"github.com/billsnap/billsnap/gen/ent/extractjob"
	"github.com/billsnap/billsnap/gen/ent/predicate"
	"github.com/billsnap/billsnap/gen/ent/receipt"
	"github.com/google/uuid"
)

// DocumentUpdate is the builder for updating Document entities.
type DocumentUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentMutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdate) Where(ps ...predicate.Document) *DocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *DocumentUpdate) SetUserID(v uuid.UUID) *DocumentUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableUserID(v *uuid.UUID) *DocumentUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *DocumentUpdate) SetFileName(v string) *DocumentUpdate {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFileName(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *DocumentUpdate) SetDocumentType(v document.DocumentType) *DocumentUpdate {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableDocumentType(v *document.DocumentType) *DocumentUpdate {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DocumentUpdate) SetStatus(v document.Status) *DocumentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableStatus(v *document.Status) *DocumentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetVendorName sets the "vendor_name" field.
func (_u *DocumentUpdate) SetVendorName(v string) *DocumentUpdate {
	_u.mutation.SetVendorName(v)
	return _u
}

// SetNillableVendorName sets the "vendor_name" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableVendorName(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetVendorName(*v)
	}
	return _u
}

// ClearVendorName clears the value of the "vendor_name" field.
func (_u *DocumentUpdate) ClearVendorName() *DocumentUpdate {
	_u.mutation.ClearVendorName()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *DocumentUpdate) SetAmount(v float64) *DocumentUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableAmount(v *float64) *DocumentUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *DocumentUpdate) AddAmount(v float64) *DocumentUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// ClearAmount clears the value of the "amount" field.
func (_u *DocumentUpdate) ClearAmount() *DocumentUpdate {
	_u.mutation.ClearAmount()
	return _u
}

// SetDocumentDate sets the "document_date" field.
func (_u *DocumentUpdate) SetDocumentDate(v time.Time) *DocumentUpdate {
	_u.mutation.SetDocumentDate(v)
	return _u
}

// SetNillableDocumentDate sets the "document_date" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableDocumentDate(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetDocumentDate(*v)
	}
	return _u
}

// ClearDocumentDate clears the value of the "document_date" field.
func (_u *DocumentUpdate) ClearDocumentDate() *DocumentUpdate {
	_u.mutation.ClearDocumentDate()
	return _u
}

// SetPaymentMethodID sets the "payment_method_id" field.
func (_u *DocumentUpdate) SetPaymentMethodID(v uuid.UUID) *DocumentUpdate {
	_u.mutation.SetPaymentMethodID(v)
	return _u
}

// SetNillablePaymentMethodID sets the "payment_method_id" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillablePaymentMethodID(v *uuid.UUID) *DocumentUpdate {
	if v != nil {
		_u.SetPaymentMethodID(*v)
	}
	return _u
}

// ClearPaymentMethodID clears the value of the "payment_method_id" field.
func (_u *DocumentUpdate) ClearPaymentMethodID() *DocumentUpdate {
	_u.mutation.ClearPaymentMethodID()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *DocumentUpdate) SetNotes(v string) *DocumentUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableNotes(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *DocumentUpdate) ClearNotes() *DocumentUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DocumentUpdate) SetCreatedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableCreatedAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentUpdate) SetUpdatedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetReceiptID sets the "receipt" edge to the Receipt entity by ID.
func (_u *DocumentUpdate) SetReceiptID(id uuid.UUID) *DocumentUpdate {
	_u.mutation.SetReceiptID(id)
	return _u
}

// SetNillableReceiptID sets the "receipt" edge to the Receipt entity by ID if the given value is not nil.
func (_u *DocumentUpdate) SetNillableReceiptID(id *uuid.UUID) *DocumentUpdate {
	if id != nil {
		_u = _u.SetReceiptID(*id)
	}
	return _u
}

// SetReceipt sets the "receipt" edge to the Receipt entity.
func (_u *DocumentUpdate) SetReceipt(v *Receipt) *DocumentUpdate {
	return _u.SetReceiptID(v.ID)
}

// SetBillID sets the "bill" edge to the Bill entity by ID.
func (_u *DocumentUpdate) SetBillID(id uuid.UUID) *DocumentUpdate {
	_u.mutation.SetBillID(id)
	return _u
}

// SetNillableBillID sets the "bill" edge to the Bill entity by ID if the given value is not nil.
func (_u *DocumentUpdate) SetNillableBillID(id *uuid.UUID) *DocumentUpdate {
	if id != nil {
		_u = _u.SetBillID(*id)
	}
	return _u
}

// SetBill sets the "bill" edge to the Bill entity.
func (_u *DocumentUpdate) SetBill(v *Bill) *DocumentUpdate {
	return _u.SetBillID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *DocumentUpdate) AddJobIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *DocumentUpdate) AddJobs(v ...*ExtractJob) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdate) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearReceipt clears the "receipt" edge to the Receipt entity.
func (_u *DocumentUpdate) ClearReceipt() *DocumentUpdate {
	_u.mutation.ClearReceipt()
	return _u
}

// ClearBill clears the "bill" edge to the Bill entity.
func (_u *DocumentUpdate) ClearBill() *DocumentUpdate {
	_u.mutation.ClearBill()
	return _u
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *DocumentUpdate) ClearJobs() *DocumentUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *DocumentUpdate) RemoveJobIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *DocumentUpdate) RemoveJobs(v ...*ExtractJob) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := document.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdate) check() error {
	if v, ok := _u.mutation.FileName(); ok {
		if err := document.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "Document.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocumentType(); ok {
		if err := document.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "Document.document_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := document.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Document.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(document.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(document.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(document.FieldDocumentType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(document.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.VendorName(); ok {
		_spec.SetField(document.FieldVendorName, field.TypeString, value)
	}
	if _u.mutation.VendorNameCleared() {
		_spec.ClearField(document.FieldVendorName, field.TypeString)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(document.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(document.FieldAmount, field.TypeFloat64, value)
	}
	if _u.mutation.AmountCleared() {
		_spec.ClearField(document.FieldAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.DocumentDate(); ok {
		_spec.SetField(document.FieldDocumentDate, field.TypeTime, value)
	}
	if _u.mutation.DocumentDateCleared() {
		_spec.ClearField(document.FieldDocumentDate, field.TypeTime)
	}
	if value, ok := _u.mutation.PaymentMethodID(); ok {
		_spec.SetField(document.FieldPaymentMethodID, field.TypeUUID, value)
	}
	if _u.mutation.PaymentMethodIDCleared() {
		_spec.ClearField(document.FieldPaymentMethodID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(document.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(document.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(document.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ReceiptCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   document.ReceiptTable,
			Columns: []string{document.ReceiptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReceiptIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   document.ReceiptTable,
			Columns: []string{document.ReceiptColumn},
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
	if _u.mutation.BillCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   document.BillTable,
			Columns: []string{document.BillColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bill.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BillIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   document.BillTable,
			Columns: []string{document.BillColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bill.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.JobsTable,
			Columns: []string{document.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.JobsTable,
			Columns: []string{document.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.JobsTable,
			Columns: []string{document.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentUpdateOne is the builder for updating a single Document entity.
type DocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentMutation
}

// SetUserID sets the "user_id" field.
func (_u *DocumentUpdateOne) SetUserID(v uuid.UUID) *DocumentUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableUserID(v *uuid.UUID) *DocumentUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *DocumentUpdateOne) SetFileName(v string) *DocumentUpdateOne {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFileName(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *DocumentUpdateOne) SetDocumentType(v document.DocumentType) *DocumentUpdateOne {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableDocumentType(v *document.DocumentType) *DocumentUpdateOne {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DocumentUpdateOne) SetStatus(v document.Status) *DocumentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableStatus(v *document.Status) *DocumentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetVendorName sets the "vendor_name" field.
func (_u *DocumentUpdateOne) SetVendorName(v string) *DocumentUpdateOne {
	_u.mutation.SetVendorName(v)
	return _u
}

// SetNillableVendorName sets the "vendor_name" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableVendorName(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetVendorName(*v)
	}
	return _u
}

// ClearVendorName clears the value of the "vendor_name" field.
func (_u *DocumentUpdateOne) ClearVendorName() *DocumentUpdateOne {
	_u.mutation.ClearVendorName()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *DocumentUpdateOne) SetAmount(v float64) *DocumentUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableAmount(v *float64) *DocumentUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *DocumentUpdateOne) AddAmount(v float64) *DocumentUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// ClearAmount clears the value of the "amount" field.
func (_u *DocumentUpdateOne) ClearAmount() *DocumentUpdateOne {
	_u.mutation.ClearAmount()
	return _u
}

// SetDocumentDate sets the "document_date" field.
func (_u *DocumentUpdateOne) SetDocumentDate(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetDocumentDate(v)
	return _u
}

// SetNillableDocumentDate sets the "document_date" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableDocumentDate(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetDocumentDate(*v)
	}
	return _u
}

// ClearDocumentDate clears the value of the "document_date" field.
func (_u *DocumentUpdateOne) ClearDocumentDate() *DocumentUpdateOne {
	_u.mutation.ClearDocumentDate()
	return _u
}

// SetPaymentMethodID sets the "payment_method_id" field.
func (_u *DocumentUpdateOne) SetPaymentMethodID(v uuid.UUID) *DocumentUpdateOne {
	_u.mutation.SetPaymentMethodID(v)
	return _u
}

// SetNillablePaymentMethodID sets the "payment_method_id" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillablePaymentMethodID(v *uuid.UUID) *DocumentUpdateOne {
	if v != nil {
		_u.SetPaymentMethodID(*v)
	}
	return _u
}

// ClearPaymentMethodID clears the value of the "payment_method_id" field.
func (_u *DocumentUpdateOne) ClearPaymentMethodID() *DocumentUpdateOne {
	_u.mutation.ClearPaymentMethodID()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *DocumentUpdateOne) SetNotes(v string) *DocumentUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableNotes(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *DocumentUpdateOne) ClearNotes() *DocumentUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DocumentUpdateOne) SetCreatedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableCreatedAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentUpdateOne) SetUpdatedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetReceiptID sets the "receipt" edge to the Receipt entity by ID.
func (_u *DocumentUpdateOne) SetReceiptID(id uuid.UUID) *DocumentUpdateOne {
	_u.mutation.SetReceiptID(id)
	return _u
}

// SetNillableReceiptID sets the "receipt" edge to the Receipt entity by ID if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableReceiptID(id *uuid.UUID) *DocumentUpdateOne {
	if id != nil {
		_u = _u.SetReceiptID(*id)
	}
	return _u
}

// SetReceipt sets the "receipt" edge to the Receipt entity.
func (_u *DocumentUpdateOne) SetReceipt(v *Receipt) *DocumentUpdateOne {
	return _u.SetReceiptID(v.ID)
}

// SetBillID sets the "bill" edge to the Bill entity by ID.
func (_u *DocumentUpdateOne) SetBillID(id uuid.UUID) *DocumentUpdateOne {
	_u.mutation.SetBillID(id)
	return _u
}

// SetNillableBillID sets the "bill" edge to the Bill entity by ID if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableBillID(id *uuid.UUID) *DocumentUpdateOne {
	if id != nil {
		_u = _u.SetBillID(*id)
	}
	return _u
}

// SetBill sets the "bill" edge to the Bill entity.
func (_u *DocumentUpdateOne) SetBill(v *Bill) *DocumentUpdateOne {
	return _u.SetBillID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *DocumentUpdateOne) AddJobIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *DocumentUpdateOne) AddJobs(v ...*ExtractJob) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdateOne) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearReceipt clears the "receipt" edge to the Receipt entity.
func (_u *DocumentUpdateOne) ClearReceipt() *DocumentUpdateOne {
	_u.mutation.ClearReceipt()
	return _u
}

// ClearBill clears the "bill" edge to the Bill entity.
func (_u *DocumentUpdateOne) ClearBill() *DocumentUpdateOne {
	_u.mutation.ClearBill()
	return _u
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *DocumentUpdateOne) ClearJobs() *DocumentUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *DocumentUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *DocumentUpdateOne) RemoveJobs(v ...*ExtractJob) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdateOne) Where(ps ...predicate.Document) *DocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentUpdateOne) Select(field string, fields ...string) *DocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Document entity.
func (_u *DocumentUpdateOne) Save(ctx context.Context) (*Document, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdateOne) SaveX(ctx context.Context) *Document {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := document.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdateOne) check() error {
	if v, ok := _u.mutation.FileName(); ok {
		if err := document.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "Document.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocumentType(); ok {
		if err := document.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "Document.document_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := document.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Document.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdateOne) sqlSave(ctx context.Context) (_node *Document, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Document.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, document.FieldID)
		for _, f := range fields {
			if !document.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != document.FieldID {
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
		_spec.SetField(document.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(document.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(document.FieldDocumentType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(document.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.VendorName(); ok {
		_spec.SetField(document.FieldVendorName, field.TypeString, value)
	}
	if _u.mutation.VendorNameCleared() {
		_spec.ClearField(document.FieldVendorName, field.TypeString)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(document.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(document.FieldAmount, field.TypeFloat64, value)
	}
	if _u.mutation.AmountCleared() {
		_spec.ClearField(document.FieldAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.DocumentDate(); ok {
		_spec.SetField(document.FieldDocumentDate, field.TypeTime, value)
	}
	if _u.mutation.DocumentDateCleared() {
		_spec.ClearField(document.FieldDocumentDate, field.TypeTime)
	}
	if value, ok := _u.mutation.PaymentMethodID(); ok {
		_spec.SetField(document.FieldPaymentMethodID, field.TypeUUID, value)
	}
	if _u.mutation.PaymentMethodIDCleared() {
		_spec.ClearField(document.FieldPaymentMethodID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(document.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(document.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(document.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ReceiptCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   document.ReceiptTable,
			Columns: []string{document.ReceiptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReceiptIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   document.ReceiptTable,
			Columns: []string{document.ReceiptColumn},
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
	if _u.mutation.BillCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   document.BillTable,
			Columns: []string{document.BillColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bill.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BillIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   document.BillTable,
			Columns: []string{document.BillColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bill.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.JobsTable,
			Columns: []string{document.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.JobsTable,
			Columns: []string{document.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.JobsTable,
			Columns: []string{document.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Document{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
