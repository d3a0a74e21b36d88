package store

import (
	"context"
	"fmt"

	"github.com/hcl-ram/AI-Tutor-sf/ent"
	"github.com/hcl-ram/AI-Tutor-sf/ent/quizevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendQuizEvent(ctx context.Context, data QuizEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.QuizEvent.Create().
		SetSequence(seqNum).
		SetAttemptID(data.AttemptID).
		SetAction(data.Action).
		SetClassLevel(data.ClassLevel).
		SetSubject(data.Subject).
		SetChapter(data.Chapter).
		SetSource(data.Source).
		SetTotalQuestions(data.TotalQuestions).
		SetScore(data.Score).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentAttempts(ctx context.Context, opts QueryOpts) ([]AttemptSummary, error) {
	q := r.client.QuizEvent.Query().
		Where(quizevent.Action("submit")).
		Order(ent.Desc(quizevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(quizevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(quizevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(quizevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(quizevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent attempts: %w", err)
	}

	out := make([]AttemptSummary, len(events))
	for i, e := range events {
		out[i] = AttemptSummary{
			AttemptID:      e.AttemptID,
			Timestamp:      e.Timestamp,
			ClassLevel:     e.ClassLevel,
			Subject:        e.Subject,
			Chapter:        e.Chapter,
			Source:         e.Source,
			TotalQuestions: e.TotalQuestions,
			Score:          e.Score,
		}
	}
	return out, nil
}

func (r *eventRepo) StatsBySubject(ctx context.Context) ([]SubjectStats, error) {
	submits, err := r.client.QuizEvent.Query().
		Where(quizevent.Action("submit")).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query quiz events: %w", err)
	}

	bySubject := make(map[string]*SubjectStats)
	order := make([]string, 0)
	for _, e := range submits {
		st, ok := bySubject[e.Subject]
		if !ok {
			st = &SubjectStats{Subject: e.Subject}
			bySubject[e.Subject] = st
			order = append(order, e.Subject)
		}
		st.Attempts++
		st.Questions += e.TotalQuestions
		st.Correct += e.Score
	}

	out := make([]SubjectStats, 0, len(order))
	for _, s := range order {
		out = append(out, *bySubject[s])
	}
	return out, nil
}
