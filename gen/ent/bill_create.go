// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/billsnap/billsnap/gen/ent/bill"
	"github.com/billsnap/billsnap/gen/ent/document"
	"github.com/google/uuid"
)

// BillCreate is the builder for creating a Bill entity.
type BillCreate struct {
	config
	mutation *BillMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *BillCreate) SetUserID(v uuid.UUID) *BillCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetDocumentID sets the "document_id" field.
func (_c *BillCreate) SetDocumentID(v uuid.UUID) *BillCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetVendorName sets the "vendor_name" field.
func (_c *BillCreate) SetVendorName(v string) *BillCreate {
	_c.mutation.SetVendorName(v)
	return _c
}

// SetAmount sets the "amount" field.
func (_c *BillCreate) SetAmount(v float64) *BillCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetDueDate sets the "due_date" field.
func (_c *BillCreate) SetDueDate(v time.Time) *BillCreate {
	_c.mutation.SetDueDate(v)
	return _c
}

// SetPaid sets the "paid" field.
func (_c *BillCreate) SetPaid(v bool) *BillCreate {
	_c.mutation.SetPaid(v)
	return _c
}

// SetNillablePaid sets the "paid" field if the given value is not nil.
func (_c *BillCreate) SetNillablePaid(v *bool) *BillCreate {
	if v != nil {
		_c.SetPaid(*v)
	}
	return _c
}

// SetPaidDate sets the "paid_date" field.
func (_c *BillCreate) SetPaidDate(v time.Time) *BillCreate {
	_c.mutation.SetPaidDate(v)
	return _c
}

// SetNillablePaidDate sets the "paid_date" field if the given value is not nil.
func (_c *BillCreate) SetNillablePaidDate(v *time.Time) *BillCreate {
	if v != nil {
		_c.SetPaidDate(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *BillCreate) SetNotes(v string) *BillCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *BillCreate) SetNillableNotes(v *string) *BillCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BillCreate) SetCreatedAt(v time.Time) *BillCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BillCreate) SetNillableCreatedAt(v *time.Time) *BillCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BillCreate) SetUpdatedAt(v time.Time) *BillCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BillCreate) SetNillableUpdatedAt(v *time.Time) *BillCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BillCreate) SetID(v uuid.UUID) *BillCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BillCreate) SetNillableID(v *uuid.UUID) *BillCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *BillCreate) SetDocument(v *Document) *BillCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the BillMutation object of the builder.
func (_c *BillCreate) Mutation() *BillMutation {
	return _c.mutation
}

// Save creates the Bill in the database.
func (_c *BillCreate) Save(ctx context.Context) (*Bill, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BillCreate) SaveX(ctx context.Context) *Bill {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BillCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BillCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BillCreate) defaults() {
	if _, ok := _c.mutation.Paid(); !ok {
		v := bill.DefaultPaid
		_c.mutation.SetPaid(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := bill.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := bill.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := bill.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BillCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Bill.user_id"`)}
	}
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "Bill.document_id"`)}
	}
	if _, ok := _c.mutation.VendorName(); !ok {
		return &ValidationError{Name: "vendor_name", err: errors.New(`ent: missing required field "Bill.vendor_name"`)}
	}
	if v, ok := _c.mutation.VendorName(); ok {
		if err := bill.VendorNameValidator(v); err != nil {
			return &ValidationError{Name: "vendor_name", err: fmt.Errorf(`ent: validator failed for field "Bill.vendor_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "Bill.amount"`)}
	}
	if _, ok := _c.mutation.DueDate(); !ok {
		return &ValidationError{Name: "due_date", err: errors.New(`ent: missing required field "Bill.due_date"`)}
	}
	if _, ok := _c.mutation.Paid(); !ok {
		return &ValidationError{Name: "paid", err: errors.New(`ent: missing required field "Bill.paid"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Bill.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Bill.updated_at"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "Bill.document"`)}
	}
	return nil
}

func (_c *BillCreate) sqlSave(ctx context.Context) (*Bill, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BillCreate) createSpec() (*Bill, *sqlgraph.CreateSpec) {
	var (
		_node = &Bill{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(bill.Table, sqlgraph.NewFieldSpec(bill.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(bill.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.VendorName(); ok {
		_spec.SetField(bill.FieldVendorName, field.TypeString, value)
		_node.VendorName = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(bill.FieldAmount, field.TypeFloat64, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.DueDate(); ok {
		_spec.SetField(bill.FieldDueDate, field.TypeTime, value)
		_node.DueDate = value
	}
	if value, ok := _c.mutation.Paid(); ok {
		_spec.SetField(bill.FieldPaid, field.TypeBool, value)
		_node.Paid = value
	}
	if value, ok := _c.mutation.PaidDate(); ok {
		_spec.SetField(bill.FieldPaidDate, field.TypeTime, value)
		_node.PaidDate = &value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(bill.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(bill.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(bill.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BillCreateBulk is the builder for creating many Bill entities in bulk.
type BillCreateBulk struct {
	config
	err      error
	builders []*BillCreate
}

// Save creates the Bill entities in the database.
func (_c *BillCreateBulk) Save(ctx context.Context) ([]*Bill, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Bill, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BillMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *BillCreateBulk) SaveX(ctx context.Context) []*Bill {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BillCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BillCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
