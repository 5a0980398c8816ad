// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/billsnap/billsnap/gen/ent/paymentmethod"
	"github.com/billsnap/billsnap/gen/ent/receipt"
	"github.com/google/uuid"
)

// PaymentMethodCreate is the builder for creating a PaymentMethod entity.
type PaymentMethodCreate struct {
	config
	mutation *PaymentMethodMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *PaymentMethodCreate) SetUserID(v uuid.UUID) *PaymentMethodCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetMethodType sets the "method_type" field.
func (_c *PaymentMethodCreate) SetMethodType(v paymentmethod.MethodType) *PaymentMethodCreate {
	_c.mutation.SetMethodType(v)
	return _c
}

// SetCardType sets the "card_type" field.
func (_c *PaymentMethodCreate) SetCardType(v string) *PaymentMethodCreate {
	_c.mutation.SetCardType(v)
	return _c
}

// SetNillableCardType sets the "card_type" field if the given value is not nil.
func (_c *PaymentMethodCreate) SetNillableCardType(v *string) *PaymentMethodCreate {
	if v != nil {
		_c.SetCardType(*v)
	}
	return _c
}

// SetLastFour sets the "last_four" field.
func (_c *PaymentMethodCreate) SetLastFour(v string) *PaymentMethodCreate {
	_c.mutation.SetLastFour(v)
	return _c
}

// SetNickname sets the "nickname" field.
func (_c *PaymentMethodCreate) SetNickname(v string) *PaymentMethodCreate {
	_c.mutation.SetNickname(v)
	return _c
}

// SetNillableNickname sets the "nickname" field if the given value is not nil.
func (_c *PaymentMethodCreate) SetNillableNickname(v *string) *PaymentMethodCreate {
	if v != nil {
		_c.SetNickname(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PaymentMethodCreate) SetCreatedAt(v time.Time) *PaymentMethodCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PaymentMethodCreate) SetNillableCreatedAt(v *time.Time) *PaymentMethodCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PaymentMethodCreate) SetID(v uuid.UUID) *PaymentMethodCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PaymentMethodCreate) SetNillableID(v *uuid.UUID) *PaymentMethodCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddReceiptIDs adds the "receipts" edge to the Receipt entity by IDs.
func (_c *PaymentMethodCreate) AddReceiptIDs(ids ...uuid.UUID) *PaymentMethodCreate {
	_c.mutation.AddReceiptIDs(ids...)
	return _c
}

// AddReceipts adds the "receipts" edges to the Receipt entity.
func (_c *PaymentMethodCreate) AddReceipts(v ...*Receipt) *PaymentMethodCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddReceiptIDs(ids...)
}

// Mutation returns the PaymentMethodMutation object of the builder.
func (_c *PaymentMethodCreate) Mutation() *PaymentMethodMutation {
	return _c.mutation
}

// Save creates the PaymentMethod in the database.
func (_c *PaymentMethodCreate) Save(ctx context.Context) (*PaymentMethod, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PaymentMethodCreate) SaveX(ctx context.Context) *PaymentMethod {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PaymentMethodCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PaymentMethodCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PaymentMethodCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := paymentmethod.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := paymentmethod.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PaymentMethodCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "PaymentMethod.user_id"`)}
	}
	if _, ok := _c.mutation.MethodType(); !ok {
		return &ValidationError{Name: "method_type", err: errors.New(`ent: missing required field "PaymentMethod.method_type"`)}
	}
	if v, ok := _c.mutation.MethodType(); ok {
		if err := paymentmethod.MethodTypeValidator(v); err != nil {
			return &ValidationError{Name: "method_type", err: fmt.Errorf(`ent: validator failed for field "PaymentMethod.method_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastFour(); !ok {
		return &ValidationError{Name: "last_four", err: errors.New(`ent: missing required field "PaymentMethod.last_four"`)}
	}
	if v, ok := _c.mutation.LastFour(); ok {
		if err := paymentmethod.LastFourValidator(v); err != nil {
			return &ValidationError{Name: "last_four", err: fmt.Errorf(`ent: validator failed for field "PaymentMethod.last_four": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PaymentMethod.created_at"`)}
	}
	return nil
}

func (_c *PaymentMethodCreate) sqlSave(ctx context.Context) (*PaymentMethod, error) {
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

func (_c *PaymentMethodCreate) createSpec() (*PaymentMethod, *sqlgraph.CreateSpec) {
	var (
		_node = &PaymentMethod{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(paymentmethod.Table, sqlgraph.NewFieldSpec(paymentmethod.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(paymentmethod.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.MethodType(); ok {
		_spec.SetField(paymentmethod.FieldMethodType, field.TypeEnum, value)
		_node.MethodType = value
	}
	if value, ok := _c.mutation.CardType(); ok {
		_spec.SetField(paymentmethod.FieldCardType, field.TypeString, value)
		_node.CardType = &value
	}
	if value, ok := _c.mutation.LastFour(); ok {
		_spec.SetField(paymentmethod.FieldLastFour, field.TypeString, value)
		_node.LastFour = value
	}
	if value, ok := _c.mutation.Nickname(); ok {
		_spec.SetField(paymentmethod.FieldNickname, field.TypeString, value)
		_node.Nickname = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(paymentmethod.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ReceiptsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PaymentMethodCreateBulk is the builder for creating many PaymentMethod entities in bulk.
type PaymentMethodCreateBulk struct {
	config
	err      error
	builders []*PaymentMethodCreate
}

// Save creates the PaymentMethod entities in the database.
func (_c *PaymentMethodCreateBulk) Save(ctx context.Context) ([]*PaymentMethod, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PaymentMethod, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PaymentMethodMutation)
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
func (_c *PaymentMethodCreateBulk) SaveX(ctx context.Context) []*PaymentMethod {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PaymentMethodCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PaymentMethodCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
