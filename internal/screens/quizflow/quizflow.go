package quizflow

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/hcl-ram/AI-Tutor-sf/internal/flow"
	"github.com/hcl-ram/AI-Tutor-sf/internal/quizgen"
	"github.com/hcl-ram/AI-Tutor-sf/internal/recommend"
	"github.com/hcl-ram/AI-Tutor-sf/internal/router"
	"github.com/hcl-ram/AI-Tutor-sf/internal/screen"
	"github.com/hcl-ram/AI-Tutor-sf/internal/store"
	"github.com/hcl-ram/AI-Tutor-sf/internal/ui/components"
	"github.com/hcl-ram/AI-Tutor-sf/internal/ui/layout"
)

var difficulties = []string{"easy", "medium", "hard"}

var quizLengths = []int{5, 10, 15}

// QuizFlowScreen drives the guided quiz: class, subject, and chapter
// selection, the attempt itself, and the scored results with feedback.
// All step movement goes through the flow controller; the screen only
// renders and translates key presses.
type QuizFlowScreen struct {
	ctrl        *flow.Controller
	generator   quizgen.Generator
	recommender *recommend.Fetcher
	events      store.EventRepo

	menu    components.Menu
	diffIdx int
	lenIdx  int

	// Quiz stage state.
	current   int
	options   components.OptionList
	rationale components.TextInput
	editing   bool
	showHint  bool
	practice  bool

	// Results stage state.
	recs        *store.RecommendationSnapshot
	recsErr     string
	recsLoading bool
	reviewing   bool
	reviewIdx   int
}

var _ screen.Screen = (*QuizFlowScreen)(nil)
var _ screen.KeyHintProvider = (*QuizFlowScreen)(nil)
var _ screen.EscHandler = (*QuizFlowScreen)(nil)

// New creates the quiz flow screen positioned at class selection.
func New(generator quizgen.Generator, recommender *recommend.Fetcher, events store.EventRepo) *QuizFlowScreen {
	ctrl := flow.New()
	_ = ctrl.StartQuizFlow()
	ctrl.SetDifficulty(difficulties[1])
	ctrl.SetNumQuestions(quizLengths[0])

	s := &QuizFlowScreen{
		ctrl:        ctrl,
		generator:   generator,
		recommender: recommender,
		events:      events,
		diffIdx:     1,
	}
	s.rebuildMenu()
	return s
}

func (s *QuizFlowScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizFlowScreen) Title() string {
	switch s.ctrl.Step() {
	case flow.SelectClass:
		return "Choose Class"
	case flow.SelectSubject:
		return "Choose Subject"
	case flow.SelectChapter:
		return "Choose Chapter"
	case flow.Quiz:
		return "Quiz"
	case flow.Results:
		return "Results"
	default:
		return "Quiz"
	}
}

// HandlesEsc keeps Esc inside the flow: every stage past the first walks
// back one step instead of popping the whole screen.
func (s *QuizFlowScreen) HandlesEsc() bool {
	return s.ctrl.Step() != flow.SelectClass
}

func (s *QuizFlowScreen) KeyHints() []layout.KeyHint {
	switch s.ctrl.Step() {
	case flow.SelectChapter:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "D", Description: "Difficulty"},
			{Key: "L", Description: "Length"},
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	case flow.Quiz:
		if s.ctrl.AwaitingFeedback() {
			return []layout.KeyHint{{Key: "Esc", Description: "Abandon"}}
		}
		if s.editing {
			return []layout.KeyHint{
				{Key: "Enter", Description: "Save"},
				{Key: "Esc", Description: "Cancel"},
			}
		}
		return []layout.KeyHint{
			{Key: "↑↓/A-D", Description: "Answer"},
			{Key: "←→", Description: "Question"},
			{Key: "E", Description: "Explain"},
			{Key: "?", Description: "Hint"},
			{Key: "S", Description: "Submit"},
			{Key: "Esc", Description: "Abandon"},
		}
	case flow.Results:
		hints := []layout.KeyHint{{Key: "V", Description: "Review"}}
		if s.reviewing {
			hints = append(hints, layout.KeyHint{Key: "←→", Description: "Question"})
		} else if len(s.ctrl.MissedQuestions()) > 0 {
			hints = append(hints, layout.KeyHint{Key: "T", Description: "Retake missed"})
		}
		if s.recsErr != "" {
			hints = append(hints, layout.KeyHint{Key: "R", Description: "Retry feedback"})
		}
		return append(hints, layout.KeyHint{Key: "Esc", Description: "Done"})
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *QuizFlowScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizReadyMsg:
		return s.handleQuizReady(msg)

	case recsReadyMsg:
		sess := s.ctrl.Session()
		if sess == nil || sess.ID != msg.AttemptID || !sess.Submitted() {
			return s, nil // attempt was abandoned or replaced
		}
		s.recsLoading = false
		if msg.Err != nil {
			s.recsErr = msg.Err.Error()
		} else {
			s.recsErr = ""
			s.recs = &store.RecommendationSnapshot{
				Summary:       msg.Set.Summary,
				LearningPath:  msg.Set.LearningPath,
				StrongTopics:  msg.Set.StrongTopics,
				NeedsPractice: msg.Set.NeedsPractice,
			}
		}
		// The fetch has settled either way; the scored attempt may show.
		_ = s.ctrl.FinishFeedback()
		return s, nil

	case tea.KeyMsg:
		switch s.ctrl.Step() {
		case flow.SelectClass, flow.SelectSubject, flow.SelectChapter:
			return s.updateSelection(msg)
		case flow.Quiz:
			return s.updateQuiz(msg)
		case flow.Results:
			return s.updateResults(msg)
		}
	}

	return s, nil
}

func (s *QuizFlowScreen) handleQuizReady(msg quizReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.ctrl.FailGeneration(msg.Token, msg.Err.Error())
		return s, nil
	}
	if err := s.ctrl.CompleteGeneration(msg.Token, msg.AttemptID, msg.Questions); err != nil {
		s.ctrl.SetErr(err.Error())
		return s, nil
	}
	if s.ctrl.Step() != flow.Quiz {
		return s, nil // stale response was dropped
	}

	s.current = 0
	s.showHint = false
	s.editing = false
	s.practice = false
	s.loadCurrentQuestion()
	return s, s.logStart()
}

// updateSelection handles the three guided selection stages.
func (s *QuizFlowScreen) updateSelection(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.ctrl.Loading() {
		// Only Esc works while generation is in flight.
		if msg.String() == "esc" {
			_ = s.ctrl.Back()
			s.rebuildMenu()
		}
		return s, nil
	}

	switch msg.String() {
	case "esc":
		if s.ctrl.Step() == flow.SelectClass {
			return s, nil // app-level Esc pops the screen
		}
		_ = s.ctrl.Back()
		s.rebuildMenu()
		return s, nil
	case "d":
		if s.ctrl.Step() == flow.SelectChapter {
			s.diffIdx = (s.diffIdx + 1) % len(difficulties)
			s.ctrl.SetDifficulty(difficulties[s.diffIdx])
			return s, nil
		}
	case "l":
		if s.ctrl.Step() == flow.SelectChapter {
			s.lenIdx = (s.lenIdx + 1) % len(quizLengths)
			s.ctrl.SetNumQuestions(quizLengths[s.lenIdx])
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

// updateQuiz handles the active attempt.
func (s *QuizFlowScreen) updateQuiz(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	sess := s.ctrl.Session()

	if s.editing {
		switch msg.String() {
		case "enter":
			_ = sess.RecordRationale(s.current, strings.TrimSpace(s.rationale.Value()))
			s.editing = false
			s.rationale.Blur()
			return s, nil
		case "esc":
			s.editing = false
			s.rationale.Blur()
			return s, nil
		}
		var cmd tea.Cmd
		s.rationale, cmd = s.rationale.Update(msg)
		return s, cmd
	}

	if s.ctrl.AwaitingFeedback() {
		// Scored, waiting for the feedback fetch. Only abandoning works;
		// abandoning destroys the session so the late reply is dropped.
		if msg.String() == "esc" {
			_ = s.ctrl.Back()
			s.practice = false
			s.rebuildMenu()
		}
		return s, nil
	}

	switch msg.String() {
	case "esc":
		_ = s.ctrl.Back()
		s.practice = false
		s.rebuildMenu()
		return s, nil
	case "left", "h":
		if s.current > 0 {
			s.current--
			s.loadCurrentQuestion()
		}
		return s, nil
	case "right", "l":
		if s.current < sess.Len()-1 {
			s.current++
			s.loadCurrentQuestion()
		}
		return s, nil
	case "e":
		s.editing = true
		a, _ := sess.Answer(s.current)
		s.rationale = components.NewTextInput("Why did you pick this answer?", "I chose it because...", false)
		s.rationale.SetValue(a.Rationale)
		return s, s.rationale.Focus()
	case "?":
		s.showHint = !s.showHint
		return s, nil
	case "s":
		return s.submitQuiz()
	}

	var changed bool
	s.options, changed = s.options.Update(msg)
	if changed {
		_ = sess.RecordAnswer(s.current, s.options.Chosen)
	}
	return s, nil
}

// updateResults handles the scored results stage.
func (s *QuizFlowScreen) updateResults(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	sess := s.ctrl.Session()

	switch msg.String() {
	case "esc":
		if s.reviewing {
			s.reviewing = false
			return s, nil
		}
		_ = s.ctrl.Back()
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "v":
		s.reviewing = !s.reviewing
		s.reviewIdx = 0
		return s, nil
	case "r":
		if s.recsErr != "" && !s.recsLoading {
			return s, s.fetchRecommendations()
		}
		return s, nil
	case "t":
		if !s.reviewing {
			return s.startRetry()
		}
		return s, nil
	case "left", "h":
		if s.reviewing && s.reviewIdx > 0 {
			s.reviewIdx--
		}
		return s, nil
	case "right", "l":
		if s.reviewing && s.reviewIdx < sess.Len()-1 {
			s.reviewIdx++
		}
		return s, nil
	}

	return s, nil
}

// rebuildMenu recreates the selection menu for the current stage. The
// chapter items kick off quiz generation.
func (s *QuizFlowScreen) rebuildMenu() {
	sel := s.ctrl.Selection()

	switch s.ctrl.Step() {
	case flow.SelectClass:
		items := make([]components.MenuItem, 0, len(classes()))
		for _, c := range classes() {
			c := c
			items = append(items, components.MenuItem{
				Label: c,
				Action: func() tea.Cmd {
					if err := s.ctrl.ChooseClass(c); err != nil {
						s.ctrl.SetErr(err.Error())
						return nil
					}
					s.rebuildMenu()
					return nil
				},
			})
		}
		s.menu = components.NewMenu(items)

	case flow.SelectSubject:
		items := make([]components.MenuItem, 0, len(subjects(sel.ClassLevel)))
		for _, sub := range subjects(sel.ClassLevel) {
			sub := sub
			items = append(items, components.MenuItem{
				Label: sub,
				Action: func() tea.Cmd {
					if err := s.ctrl.ChooseSubject(sub); err != nil {
						s.ctrl.SetErr(err.Error())
						return nil
					}
					s.rebuildMenu()
					return nil
				},
			})
		}
		s.menu = components.NewMenu(items)

	case flow.SelectChapter:
		items := make([]components.MenuItem, 0, len(chapters(sel.Subject)))
		for _, ch := range chapters(sel.Subject) {
			ch := ch
			items = append(items, components.MenuItem{
				Label: ch,
				Action: func() tea.Cmd {
					if err := s.ctrl.ChooseChapter(ch); err != nil {
						s.ctrl.SetErr(err.Error())
						return nil
					}
					return s.generate()
				},
			})
		}
		s.menu = components.NewMenu(items)
	}
}

// generate starts quiz generation for the current selection. The token
// from BeginGeneration rides along on the reply so late responses for
// abandoned requests are dropped.
func (s *QuizFlowScreen) generate() tea.Cmd {
	token := s.ctrl.BeginGeneration()
	sel := s.ctrl.Selection()
	attemptID := uuid.NewString()

	spec := quizgen.Spec{
		ClassLevel:   sel.ClassLevel,
		Subject:      sel.Subject,
		Chapter:      sel.Chapter,
		Difficulty:   sel.Difficulty,
		NumQuestions: sel.NumQuestions,
	}

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
		defer cancel()

		questions, err := s.generator.Generate(ctx, spec)
		return quizReadyMsg{Token: token, AttemptID: attemptID, Questions: questions, Err: err}
	}
}

// loadCurrentQuestion rebuilds the option list for the question under the
// cursor, restoring any previously recorded answer.
func (s *QuizFlowScreen) loadCurrentQuestion() {
	sess := s.ctrl.Session()
	q, err := sess.Question(s.current)
	if err != nil {
		return
	}
	a, _ := sess.Answer(s.current)
	s.options = components.NewOptionList(q, a.SelectedIndex)
	// Retake passes keep the hint visible across questions.
	s.showHint = s.practice
	s.editing = false
}

// submitQuiz scores the attempt, records it in the event log, and kicks
// off the recommendation fetch.
func (s *QuizFlowScreen) submitQuiz() (screen.Screen, tea.Cmd) {
	if err := s.ctrl.FinishQuiz(); err != nil {
		s.ctrl.SetErr(err.Error())
		return s, nil
	}
	s.reviewing = false
	s.recs = nil
	s.recsErr = ""
	return s, tea.Batch(s.logSubmission(), s.fetchRecommendations())
}

// startRetry re-enters the quiz with only the missed questions. The hint
// is shown from the start on a retake.
func (s *QuizFlowScreen) startRetry() (screen.Screen, tea.Cmd) {
	if err := s.ctrl.RetryMissed(uuid.NewString()); err != nil {
		return s, nil
	}
	s.practice = true
	s.current = 0
	s.reviewing = false
	s.recs = nil
	s.recsErr = ""
	s.recsLoading = false
	s.loadCurrentQuestion()
	return s, s.logStart()
}

// logStart appends the attempt-start event. Logging is best effort; a
// failed append never interrupts the quiz.
func (s *QuizFlowScreen) logStart() tea.Cmd {
	if s.events == nil {
		return nil
	}
	sess := s.ctrl.Session()
	sel := s.ctrl.Selection()
	action := "start"
	if s.practice {
		action = "retry"
	}
	data := store.QuizEventData{
		AttemptID:      sess.ID,
		Action:         action,
		ClassLevel:     sel.ClassLevel,
		Subject:        sel.Subject,
		Chapter:        sel.Chapter,
		Source:         s.generator.Source(),
		TotalQuestions: sess.Len(),
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.events.AppendQuizEvent(ctx, data)
		return nil
	}
}

func (s *QuizFlowScreen) logSubmission() tea.Cmd {
	if s.events == nil {
		return nil
	}
	sess := s.ctrl.Session()
	sel := s.ctrl.Selection()
	score, _ := sess.Score()

	// Retake passes are logged under their own action so attempt history
	// and per-subject stats count each quiz once.
	action := "submit"
	if s.practice {
		action = "practice"
	}
	submit := store.QuizEventData{
		AttemptID:      sess.ID,
		Action:         action,
		ClassLevel:     sel.ClassLevel,
		Subject:        sel.Subject,
		Chapter:        sel.Chapter,
		Source:         s.generator.Source(),
		TotalQuestions: sess.Len(),
		Score:          score,
	}

	answers := make([]store.AnswerEventData, 0, sess.Len())
	for i := 0; i < sess.Len(); i++ {
		q, err := sess.Question(i)
		if err != nil {
			continue
		}
		a, _ := sess.Answer(i)
		correct, _ := sess.IsCorrect(i)
		answers = append(answers, store.AnswerEventData{
			AttemptID:     sess.ID,
			QuestionIndex: i,
			QuestionText:  q.Text,
			SelectedIndex: a.SelectedIndex,
			CorrectIndex:  q.CorrectIndex,
			Correct:       correct,
			Rationale:     a.Rationale,
		})
	}

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = s.events.AppendQuizEvent(ctx, submit)
		for _, a := range answers {
			_ = s.events.AppendAnswerEvent(ctx, a)
		}
		return nil
	}
}

// fetchRecommendations requests post-quiz feedback. One request per
// trigger; the learner retries manually on failure.
func (s *QuizFlowScreen) fetchRecommendations() tea.Cmd {
	sess := s.ctrl.Session()
	sel := s.ctrl.Selection()
	s.recsLoading = true
	s.recsErr = ""

	rsel := recommend.Selection{
		ClassLevel: sel.ClassLevel,
		Subject:    sel.Subject,
		Chapter:    sel.Chapter,
		Difficulty: sel.Difficulty,
	}

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		set, err := s.recommender.Fetch(ctx, rsel, sess)
		return recsReadyMsg{AttemptID: sess.ID, Set: set, Err: err}
	}
}
