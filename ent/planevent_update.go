// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hcl-ram/AI-Tutor-sf/ent/planevent"
	"github.com/hcl-ram/AI-Tutor-sf/ent/predicate"
)

// PlanEventUpdate is the builder for updating PlanEvent entities.
type PlanEventUpdate struct {
	config
	hooks    []Hook
	mutation *PlanEventMutation
}

// Where appends a list predicates to the PlanEventUpdate builder.
func (_u *PlanEventUpdate) Where(ps ...predicate.PlanEvent) *PlanEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPlanName sets the "plan_name" field.
func (_u *PlanEventUpdate) SetPlanName(v string) *PlanEventUpdate {
	_u.mutation.SetPlanName(v)
	return _u
}

// SetNillablePlanName sets the "plan_name" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillablePlanName(v *string) *PlanEventUpdate {
	if v != nil {
		_u.SetPlanName(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *PlanEventUpdate) SetSubject(v string) *PlanEventUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableSubject(v *string) *PlanEventUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetGradeLevel sets the "grade_level" field.
func (_u *PlanEventUpdate) SetGradeLevel(v string) *PlanEventUpdate {
	_u.mutation.SetGradeLevel(v)
	return _u
}

// SetNillableGradeLevel sets the "grade_level" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableGradeLevel(v *string) *PlanEventUpdate {
	if v != nil {
		_u.SetGradeLevel(*v)
	}
	return _u
}

// SetExamDate sets the "exam_date" field.
func (_u *PlanEventUpdate) SetExamDate(v string) *PlanEventUpdate {
	_u.mutation.SetExamDate(v)
	return _u
}

// SetNillableExamDate sets the "exam_date" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableExamDate(v *string) *PlanEventUpdate {
	if v != nil {
		_u.SetExamDate(*v)
	}
	return _u
}

// SetDaysUntilExam sets the "days_until_exam" field.
func (_u *PlanEventUpdate) SetDaysUntilExam(v int) *PlanEventUpdate {
	_u.mutation.ResetDaysUntilExam()
	_u.mutation.SetDaysUntilExam(v)
	return _u
}

// SetNillableDaysUntilExam sets the "days_until_exam" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableDaysUntilExam(v *int) *PlanEventUpdate {
	if v != nil {
		_u.SetDaysUntilExam(*v)
	}
	return _u
}

// AddDaysUntilExam adds value to the "days_until_exam" field.
func (_u *PlanEventUpdate) AddDaysUntilExam(v int) *PlanEventUpdate {
	_u.mutation.AddDaysUntilExam(v)
	return _u
}

// SetWeeks sets the "weeks" field.
func (_u *PlanEventUpdate) SetWeeks(v int) *PlanEventUpdate {
	_u.mutation.ResetWeeks()
	_u.mutation.SetWeeks(v)
	return _u
}

// SetNillableWeeks sets the "weeks" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableWeeks(v *int) *PlanEventUpdate {
	if v != nil {
		_u.SetWeeks(*v)
	}
	return _u
}

// AddWeeks adds value to the "weeks" field.
func (_u *PlanEventUpdate) AddWeeks(v int) *PlanEventUpdate {
	_u.mutation.AddWeeks(v)
	return _u
}

// Mutation returns the PlanEventMutation object of the builder.
func (_u *PlanEventUpdate) Mutation() *PlanEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PlanEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PlanEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlanEventUpdate) check() error {
	if v, ok := _u.mutation.PlanName(); ok {
		if err := planevent.PlanNameValidator(v); err != nil {
			return &ValidationError{Name: "plan_name", err: fmt.Errorf(`ent: validator failed for field "PlanEvent.plan_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := planevent.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "PlanEvent.subject": %w`, err)}
		}
	}
	return nil
}

func (_u *PlanEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(planevent.Table, planevent.Columns, sqlgraph.NewFieldSpec(planevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PlanName(); ok {
		_spec.SetField(planevent.FieldPlanName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(planevent.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.GradeLevel(); ok {
		_spec.SetField(planevent.FieldGradeLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExamDate(); ok {
		_spec.SetField(planevent.FieldExamDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.DaysUntilExam(); ok {
		_spec.SetField(planevent.FieldDaysUntilExam, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDaysUntilExam(); ok {
		_spec.AddField(planevent.FieldDaysUntilExam, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Weeks(); ok {
		_spec.SetField(planevent.FieldWeeks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeeks(); ok {
		_spec.AddField(planevent.FieldWeeks, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{planevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PlanEventUpdateOne is the builder for updating a single PlanEvent entity.
type PlanEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PlanEventMutation
}

// SetPlanName sets the "plan_name" field.
func (_u *PlanEventUpdateOne) SetPlanName(v string) *PlanEventUpdateOne {
	_u.mutation.SetPlanName(v)
	return _u
}

// SetNillablePlanName sets the "plan_name" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillablePlanName(v *string) *PlanEventUpdateOne {
	if v != nil {
		_u.SetPlanName(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *PlanEventUpdateOne) SetSubject(v string) *PlanEventUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableSubject(v *string) *PlanEventUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetGradeLevel sets the "grade_level" field.
func (_u *PlanEventUpdateOne) SetGradeLevel(v string) *PlanEventUpdateOne {
	_u.mutation.SetGradeLevel(v)
	return _u
}

// SetNillableGradeLevel sets the "grade_level" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableGradeLevel(v *string) *PlanEventUpdateOne {
	if v != nil {
		_u.SetGradeLevel(*v)
	}
	return _u
}

// SetExamDate sets the "exam_date" field.
func (_u *PlanEventUpdateOne) SetExamDate(v string) *PlanEventUpdateOne {
	_u.mutation.SetExamDate(v)
	return _u
}

// SetNillableExamDate sets the "exam_date" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableExamDate(v *string) *PlanEventUpdateOne {
	if v != nil {
		_u.SetExamDate(*v)
	}
	return _u
}

// SetDaysUntilExam sets the "days_until_exam" field.
func (_u *PlanEventUpdateOne) SetDaysUntilExam(v int) *PlanEventUpdateOne {
	_u.mutation.ResetDaysUntilExam()
	_u.mutation.SetDaysUntilExam(v)
	return _u
}

// SetNillableDaysUntilExam sets the "days_until_exam" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableDaysUntilExam(v *int) *PlanEventUpdateOne {
	if v != nil {
		_u.SetDaysUntilExam(*v)
	}
	return _u
}

// AddDaysUntilExam adds value to the "days_until_exam" field.
func (_u *PlanEventUpdateOne) AddDaysUntilExam(v int) *PlanEventUpdateOne {
	_u.mutation.AddDaysUntilExam(v)
	return _u
}

// SetWeeks sets the "weeks" field.
func (_u *PlanEventUpdateOne) SetWeeks(v int) *PlanEventUpdateOne {
	_u.mutation.ResetWeeks()
	_u.mutation.SetWeeks(v)
	return _u
}

// SetNillableWeeks sets the "weeks" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableWeeks(v *int) *PlanEventUpdateOne {
	if v != nil {
		_u.SetWeeks(*v)
	}
	return _u
}

// AddWeeks adds value to the "weeks" field.
func (_u *PlanEventUpdateOne) AddWeeks(v int) *PlanEventUpdateOne {
	_u.mutation.AddWeeks(v)
	return _u
}

// Mutation returns the PlanEventMutation object of the builder.
func (_u *PlanEventUpdateOne) Mutation() *PlanEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the PlanEventUpdate builder.
func (_u *PlanEventUpdateOne) Where(ps ...predicate.PlanEvent) *PlanEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PlanEventUpdateOne) Select(field string, fields ...string) *PlanEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PlanEvent entity.
func (_u *PlanEventUpdateOne) Save(ctx context.Context) (*PlanEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanEventUpdateOne) SaveX(ctx context.Context) *PlanEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PlanEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlanEventUpdateOne) check() error {
	if v, ok := _u.mutation.PlanName(); ok {
		if err := planevent.PlanNameValidator(v); err != nil {
			return &ValidationError{Name: "plan_name", err: fmt.Errorf(`ent: validator failed for field "PlanEvent.plan_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := planevent.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "PlanEvent.subject": %w`, err)}
		}
	}
	return nil
}

func (_u *PlanEventUpdateOne) sqlSave(ctx context.Context) (_node *PlanEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(planevent.Table, planevent.Columns, sqlgraph.NewFieldSpec(planevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PlanEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, planevent.FieldID)
		for _, f := range fields {
			if !planevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != planevent.FieldID {
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
	if value, ok := _u.mutation.PlanName(); ok {
		_spec.SetField(planevent.FieldPlanName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(planevent.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.GradeLevel(); ok {
		_spec.SetField(planevent.FieldGradeLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExamDate(); ok {
		_spec.SetField(planevent.FieldExamDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.DaysUntilExam(); ok {
		_spec.SetField(planevent.FieldDaysUntilExam, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDaysUntilExam(); ok {
		_spec.AddField(planevent.FieldDaysUntilExam, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Weeks(); ok {
		_spec.SetField(planevent.FieldWeeks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeeks(); ok {
		_spec.AddField(planevent.FieldWeeks, field.TypeInt, value)
	}
	_node = &PlanEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{planevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
