package store

import (
	"context"
	"fmt"

	"github.com/hcl-ram/AI-Tutor-sf/ent"
	"github.com/hcl-ram/AI-Tutor-sf/ent/planevent"
)

func (r *eventRepo) AppendPlanEvent(ctx context.Context, data PlanEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.PlanEvent.Create().
		SetSequence(seqNum).
		SetPlanName(data.PlanName).
		SetSubject(data.Subject).
		SetGradeLevel(data.GradeLevel).
		SetExamDate(data.ExamDate).
		SetDaysUntilExam(data.DaysUntilExam).
		SetWeeks(data.Weeks).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save plan event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentPlans(ctx context.Context, opts QueryOpts) ([]PlanEventData, error) {
	q := r.client.PlanEvent.Query().
		Order(ent.Desc(planevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent plans: %w", err)
	}

	out := make([]PlanEventData, len(events))
	for i, e := range events {
		out[i] = PlanEventData{
			PlanName:      e.PlanName,
			Subject:       e.Subject,
			GradeLevel:    e.GradeLevel,
			ExamDate:      e.ExamDate,
			DaysUntilExam: e.DaysUntilExam,
			Weeks:         e.Weeks,
		}
	}
	return out, nil
}
