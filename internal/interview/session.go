package interview

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrSessionFinalized is returned when a caller tries to mutate a
	// session after its report has been produced.
	ErrSessionFinalized = errors.New("interview session is finalized")

	// ErrUnknownQuestion is returned for answer or score submissions that
	// reference an index outside the session's question set.
	ErrUnknownQuestion = errors.New("question index is not part of this session")
)

// Session owns one candidate's ten-question interview: the generated question
// set, the answers captured so far, and the derived scores. A session is a
// plain value owned by its caller; concurrent interviews each hold their own.
type Session struct {
	ID        string    `json:"id"`
	StartedAt time.Time `json:"started_at"`

	Resume         Document `json:"resume"`
	JobDescription Document `json:"job_description"`

	Questions []Question `json:"questions"`

	answers   map[int]Answer
	scores    map[int]ScoreBreakdown
	finalized bool
}

// NewSession creates a session over the two source documents and its
// generated question set.
func NewSession(resume, jd Document, questions []Question) *Session {
	return &Session{
		ID:             uuid.NewString(),
		StartedAt:      time.Now().UTC(),
		Resume:         resume,
		JobDescription: jd,
		Questions:      questions,
		answers:        make(map[int]Answer, len(questions)),
		scores:         make(map[int]ScoreBreakdown, len(questions)),
	}
}

// Question returns the question with the given 1-based index.
func (s *Session) Question(index int) (Question, bool) {
	for _, q := range s.Questions {
		if q.Index == index {
			return q, true
		}
	}
	return Question{}, false
}

// SetAnswer records the transcript for a question. Re-submission overwrites
// the previous answer and drops its stale score.
func (s *Session) SetAnswer(a Answer) error {
	if s.finalized {
		return ErrSessionFinalized
	}
	if _, ok := s.Question(a.QuestionIndex); !ok {
		return fmt.Errorf("%w: %d", ErrUnknownQuestion, a.QuestionIndex)
	}

	s.answers[a.QuestionIndex] = a
	delete(s.scores, a.QuestionIndex)
	return nil
}

// SetScore attaches the score breakdown for an already answered question.
func (s *Session) SetScore(questionIndex int, score ScoreBreakdown) error {
	if s.finalized {
		return ErrSessionFinalized
	}
	if _, ok := s.answers[questionIndex]; !ok {
		return fmt.Errorf("%w: %d has no answer", ErrUnknownQuestion, questionIndex)
	}

	s.scores[questionIndex] = score
	return nil
}

// Answer returns the recorded answer for a question, if any.
func (s *Session) Answer(questionIndex int) (Answer, bool) {
	a, ok := s.answers[questionIndex]
	return a, ok
}

// Score returns the recorded score for a question, if any.
func (s *Session) Score(questionIndex int) (ScoreBreakdown, bool) {
	sc, ok := s.scores[questionIndex]
	return sc, ok
}

// Answered returns how many questions currently have an answer.
func (s *Session) Answered() int {
	return len(s.answers)
}

// Finalized reports whether the session has been frozen.
func (s *Session) Finalized() bool {
	return s.finalized
}
