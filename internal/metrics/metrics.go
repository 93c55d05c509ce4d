package metrics

import (
	"sync"

	"go.uber.org/zap"
)

// Metrics counts pipeline activity across the process lifetime. Counters are
// shared by concurrent sessions, so access is serialized; session data itself
// never is.
type Metrics struct {
	mu sync.Mutex

	sessionsStarted   int64
	sessionsCompleted int64
	questionsAsked    int64
	answersScored     int64
	modelCalls        int64
	modelSuccesses    int64
}

func New() *Metrics {
	return &Metrics{}
}

func (m *Metrics) SessionStarted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessionsStarted++
}

func (m *Metrics) SessionCompleted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessionsCompleted++
}

func (m *Metrics) QuestionAsked() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.questionsAsked++
}

func (m *Metrics) AnswerScored() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.answersScored++
}

func (m *Metrics) ModelCall(success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.modelCalls++
	if success {
		m.modelSuccesses++
	}
}

// Fields exports the counters as structured log fields.
func (m *Metrics) Fields() []zap.Field {
	m.mu.Lock()
	defer m.mu.Unlock()

	return []zap.Field{
		zap.Int64("sessions_started", m.sessionsStarted),
		zap.Int64("sessions_completed", m.sessionsCompleted),
		zap.Int64("questions_asked", m.questionsAsked),
		zap.Int64("answers_scored", m.answersScored),
		zap.Int64("model_calls", m.modelCalls),
		zap.Int64("model_successes", m.modelSuccesses),
	}
}
