// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hcl-ram/AI-Tutor-sf/ent/predicate"
	"github.com/hcl-ram/AI-Tutor-sf/ent/quizevent"
)

// QuizEventUpdate is the builder for updating QuizEvent entities.
type QuizEventUpdate struct {
	config
	hooks    []Hook
	mutation *QuizEventMutation
}

// Where appends a list predicates to the QuizEventUpdate builder.
func (_u *QuizEventUpdate) Where(ps ...predicate.QuizEvent) *QuizEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAttemptID sets the "attempt_id" field.
func (_u *QuizEventUpdate) SetAttemptID(v string) *QuizEventUpdate {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableAttemptID(v *string) *QuizEventUpdate {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *QuizEventUpdate) SetAction(v string) *QuizEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableAction(v *string) *QuizEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetClassLevel sets the "class_level" field.
func (_u *QuizEventUpdate) SetClassLevel(v string) *QuizEventUpdate {
	_u.mutation.SetClassLevel(v)
	return _u
}

// SetNillableClassLevel sets the "class_level" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableClassLevel(v *string) *QuizEventUpdate {
	if v != nil {
		_u.SetClassLevel(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *QuizEventUpdate) SetSubject(v string) *QuizEventUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableSubject(v *string) *QuizEventUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetChapter sets the "chapter" field.
func (_u *QuizEventUpdate) SetChapter(v string) *QuizEventUpdate {
	_u.mutation.SetChapter(v)
	return _u
}

// SetNillableChapter sets the "chapter" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableChapter(v *string) *QuizEventUpdate {
	if v != nil {
		_u.SetChapter(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *QuizEventUpdate) SetSource(v string) *QuizEventUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableSource(v *string) *QuizEventUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *QuizEventUpdate) SetTotalQuestions(v int) *QuizEventUpdate {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableTotalQuestions(v *int) *QuizEventUpdate {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *QuizEventUpdate) AddTotalQuestions(v int) *QuizEventUpdate {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizEventUpdate) SetScore(v int) *QuizEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableScore(v *int) *QuizEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizEventUpdate) AddScore(v int) *QuizEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// Mutation returns the QuizEventMutation object of the builder.
func (_u *QuizEventUpdate) Mutation() *QuizEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizEventUpdate) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := quizevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := quizevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClassLevel(); ok {
		if err := quizevent.ClassLevelValidator(v); err != nil {
			return &ValidationError{Name: "class_level", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.class_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := quizevent.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Chapter(); ok {
		if err := quizevent.ChapterValidator(v); err != nil {
			return &ValidationError{Name: "chapter", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.chapter": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := quizevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.source": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizevent.Table, quizevent.Columns, sqlgraph.NewFieldSpec(quizevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(quizevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(quizevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClassLevel(); ok {
		_spec.SetField(quizevent.FieldClassLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(quizevent.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Chapter(); ok {
		_spec.SetField(quizevent.FieldChapter, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(quizevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(quizevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(quizevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizevent.FieldScore, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizEventUpdateOne is the builder for updating a single QuizEvent entity.
type QuizEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizEventMutation
}

// SetAttemptID sets the "attempt_id" field.
func (_u *QuizEventUpdateOne) SetAttemptID(v string) *QuizEventUpdateOne {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableAttemptID(v *string) *QuizEventUpdateOne {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *QuizEventUpdateOne) SetAction(v string) *QuizEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableAction(v *string) *QuizEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetClassLevel sets the "class_level" field.
func (_u *QuizEventUpdateOne) SetClassLevel(v string) *QuizEventUpdateOne {
	_u.mutation.SetClassLevel(v)
	return _u
}

// SetNillableClassLevel sets the "class_level" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableClassLevel(v *string) *QuizEventUpdateOne {
	if v != nil {
		_u.SetClassLevel(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *QuizEventUpdateOne) SetSubject(v string) *QuizEventUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableSubject(v *string) *QuizEventUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetChapter sets the "chapter" field.
func (_u *QuizEventUpdateOne) SetChapter(v string) *QuizEventUpdateOne {
	_u.mutation.SetChapter(v)
	return _u
}

// SetNillableChapter sets the "chapter" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableChapter(v *string) *QuizEventUpdateOne {
	if v != nil {
		_u.SetChapter(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *QuizEventUpdateOne) SetSource(v string) *QuizEventUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableSource(v *string) *QuizEventUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *QuizEventUpdateOne) SetTotalQuestions(v int) *QuizEventUpdateOne {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableTotalQuestions(v *int) *QuizEventUpdateOne {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *QuizEventUpdateOne) AddTotalQuestions(v int) *QuizEventUpdateOne {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizEventUpdateOne) SetScore(v int) *QuizEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableScore(v *int) *QuizEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizEventUpdateOne) AddScore(v int) *QuizEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// Mutation returns the QuizEventMutation object of the builder.
func (_u *QuizEventUpdateOne) Mutation() *QuizEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuizEventUpdate builder.
func (_u *QuizEventUpdateOne) Where(ps ...predicate.QuizEvent) *QuizEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizEventUpdateOne) Select(field string, fields ...string) *QuizEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizEvent entity.
func (_u *QuizEventUpdateOne) Save(ctx context.Context) (*QuizEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizEventUpdateOne) SaveX(ctx context.Context) *QuizEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizEventUpdateOne) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := quizevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := quizevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClassLevel(); ok {
		if err := quizevent.ClassLevelValidator(v); err != nil {
			return &ValidationError{Name: "class_level", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.class_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := quizevent.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Chapter(); ok {
		if err := quizevent.ChapterValidator(v); err != nil {
			return &ValidationError{Name: "chapter", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.chapter": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := quizevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.source": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizEventUpdateOne) sqlSave(ctx context.Context) (_node *QuizEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizevent.Table, quizevent.Columns, sqlgraph.NewFieldSpec(quizevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizevent.FieldID)
		for _, f := range fields {
			if !quizevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizevent.FieldID {
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
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(quizevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(quizevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClassLevel(); ok {
		_spec.SetField(quizevent.FieldClassLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(quizevent.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Chapter(); ok {
		_spec.SetField(quizevent.FieldChapter, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(quizevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(quizevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(quizevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizevent.FieldScore, field.TypeInt, value)
	}
	_node = &QuizEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
