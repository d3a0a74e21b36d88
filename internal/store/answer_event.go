package store

import (
	"context"
	"fmt"

	"github.com/hcl-ram/AI-Tutor-sf/ent"
	"github.com/hcl-ram/AI-Tutor-sf/ent/answerevent"
)

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetAttemptID(data.AttemptID).
		SetQuestionIndex(data.QuestionIndex).
		SetQuestionText(data.QuestionText).
		SetSelectedIndex(data.SelectedIndex).
		SetCorrectIndex(data.CorrectIndex).
		SetCorrect(data.Correct).
		SetRationale(data.Rationale).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AttemptAnswers(ctx context.Context, attemptID string) ([]AnswerEventData, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(answerevent.AttemptID(attemptID)).
		Order(ent.Asc(answerevent.FieldQuestionIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempt answers: %w", err)
	}

	out := make([]AnswerEventData, len(events))
	for i, e := range events {
		out[i] = AnswerEventData{
			AttemptID:     e.AttemptID,
			QuestionIndex: e.QuestionIndex,
			QuestionText:  e.QuestionText,
			SelectedIndex: e.SelectedIndex,
			CorrectIndex:  e.CorrectIndex,
			Correct:       e.Correct,
			Rationale:     e.Rationale,
		}
	}
	return out, nil
}
