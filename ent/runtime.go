// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/hcl-ram/AI-Tutor-sf/ent/answerevent"
	"github.com/hcl-ram/AI-Tutor-sf/ent/llmrequestevent"
	"github.com/hcl-ram/AI-Tutor-sf/ent/planevent"
	"github.com/hcl-ram/AI-Tutor-sf/ent/quizevent"
	"github.com/hcl-ram/AI-Tutor-sf/ent/schema"
	"github.com/hcl-ram/AI-Tutor-sf/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescAttemptID is the schema descriptor for attempt_id field.
	answereventDescAttemptID := answereventFields[0].Descriptor()
	// answerevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	answerevent.AttemptIDValidator = answereventDescAttemptID.Validators[0].(func(string) error)
	// answereventDescQuestionText is the schema descriptor for question_text field.
	answereventDescQuestionText := answereventFields[2].Descriptor()
	// answerevent.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	answerevent.QuestionTextValidator = answereventDescQuestionText.Validators[0].(func(string) error)
	// answereventDescSelectedIndex is the schema descriptor for selected_index field.
	answereventDescSelectedIndex := answereventFields[3].Descriptor()
	// answerevent.DefaultSelectedIndex holds the default value on creation for the selected_index field.
	answerevent.DefaultSelectedIndex = answereventDescSelectedIndex.Default.(int)
	// answereventDescRationale is the schema descriptor for rationale field.
	answereventDescRationale := answereventFields[6].Descriptor()
	// answerevent.DefaultRationale holds the default value on creation for the rationale field.
	answerevent.DefaultRationale = answereventDescRationale.Default.(string)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	planeventMixin := schema.PlanEvent{}.Mixin()
	planeventMixinFields0 := planeventMixin[0].Fields()
	_ = planeventMixinFields0
	planeventFields := schema.PlanEvent{}.Fields()
	_ = planeventFields
	// planeventDescTimestamp is the schema descriptor for timestamp field.
	planeventDescTimestamp := planeventMixinFields0[1].Descriptor()
	// planevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	planevent.DefaultTimestamp = planeventDescTimestamp.Default.(func() time.Time)
	// planeventDescPlanName is the schema descriptor for plan_name field.
	planeventDescPlanName := planeventFields[0].Descriptor()
	// planevent.PlanNameValidator is a validator for the "plan_name" field. It is called by the builders before save.
	planevent.PlanNameValidator = planeventDescPlanName.Validators[0].(func(string) error)
	// planeventDescSubject is the schema descriptor for subject field.
	planeventDescSubject := planeventFields[1].Descriptor()
	// planevent.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	planevent.SubjectValidator = planeventDescSubject.Validators[0].(func(string) error)
	// planeventDescGradeLevel is the schema descriptor for grade_level field.
	planeventDescGradeLevel := planeventFields[2].Descriptor()
	// planevent.DefaultGradeLevel holds the default value on creation for the grade_level field.
	planevent.DefaultGradeLevel = planeventDescGradeLevel.Default.(string)
	// planeventDescExamDate is the schema descriptor for exam_date field.
	planeventDescExamDate := planeventFields[3].Descriptor()
	// planevent.DefaultExamDate holds the default value on creation for the exam_date field.
	planevent.DefaultExamDate = planeventDescExamDate.Default.(string)
	// planeventDescDaysUntilExam is the schema descriptor for days_until_exam field.
	planeventDescDaysUntilExam := planeventFields[4].Descriptor()
	// planevent.DefaultDaysUntilExam holds the default value on creation for the days_until_exam field.
	planevent.DefaultDaysUntilExam = planeventDescDaysUntilExam.Default.(int)
	// planeventDescWeeks is the schema descriptor for weeks field.
	planeventDescWeeks := planeventFields[5].Descriptor()
	// planevent.DefaultWeeks holds the default value on creation for the weeks field.
	planevent.DefaultWeeks = planeventDescWeeks.Default.(int)
	quizeventMixin := schema.QuizEvent{}.Mixin()
	quizeventMixinFields0 := quizeventMixin[0].Fields()
	_ = quizeventMixinFields0
	quizeventFields := schema.QuizEvent{}.Fields()
	_ = quizeventFields
	// quizeventDescTimestamp is the schema descriptor for timestamp field.
	quizeventDescTimestamp := quizeventMixinFields0[1].Descriptor()
	// quizevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizevent.DefaultTimestamp = quizeventDescTimestamp.Default.(func() time.Time)
	// quizeventDescAttemptID is the schema descriptor for attempt_id field.
	quizeventDescAttemptID := quizeventFields[0].Descriptor()
	// quizevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	quizevent.AttemptIDValidator = quizeventDescAttemptID.Validators[0].(func(string) error)
	// quizeventDescAction is the schema descriptor for action field.
	quizeventDescAction := quizeventFields[1].Descriptor()
	// quizevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	quizevent.ActionValidator = quizeventDescAction.Validators[0].(func(string) error)
	// quizeventDescClassLevel is the schema descriptor for class_level field.
	quizeventDescClassLevel := quizeventFields[2].Descriptor()
	// quizevent.ClassLevelValidator is a validator for the "class_level" field. It is called by the builders before save.
	quizevent.ClassLevelValidator = quizeventDescClassLevel.Validators[0].(func(string) error)
	// quizeventDescSubject is the schema descriptor for subject field.
	quizeventDescSubject := quizeventFields[3].Descriptor()
	// quizevent.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	quizevent.SubjectValidator = quizeventDescSubject.Validators[0].(func(string) error)
	// quizeventDescChapter is the schema descriptor for chapter field.
	quizeventDescChapter := quizeventFields[4].Descriptor()
	// quizevent.ChapterValidator is a validator for the "chapter" field. It is called by the builders before save.
	quizevent.ChapterValidator = quizeventDescChapter.Validators[0].(func(string) error)
	// quizeventDescSource is the schema descriptor for source field.
	quizeventDescSource := quizeventFields[5].Descriptor()
	// quizevent.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	quizevent.SourceValidator = quizeventDescSource.Validators[0].(func(string) error)
	// quizeventDescTotalQuestions is the schema descriptor for total_questions field.
	quizeventDescTotalQuestions := quizeventFields[6].Descriptor()
	// quizevent.DefaultTotalQuestions holds the default value on creation for the total_questions field.
	quizevent.DefaultTotalQuestions = quizeventDescTotalQuestions.Default.(int)
	// quizeventDescScore is the schema descriptor for score field.
	quizeventDescScore := quizeventFields[7].Descriptor()
	// quizevent.DefaultScore holds the default value on creation for the score field.
	quizevent.DefaultScore = quizeventDescScore.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
