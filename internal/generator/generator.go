package generator

import (
	"context"
	_ "embed"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/coachlabs/interview-coach/internal/ai"
	"github.com/coachlabs/interview-coach/internal/interview"
	"github.com/coachlabs/interview-coach/internal/utils"
	"go.uber.org/zap"
)

//go:embed prompt.md
var promptTemplate string

const systemInstruction = "You are an expert technical interviewer who creates insightful, role-specific interview questions."

const (
	// documentBudget bounds how much of each document is embedded in the
	// prompt.
	documentBudget = 4000

	defaultTimeout   = 12 * time.Second
	defaultMaxLogLen = 200
)

// Source records which path produced a question batch.
type Source string

const (
	SourceModel    Source = "model"
	SourceFallback Source = "fallback"
	SourceMixed    Source = "mixed"
)

// Batch is one session's generated question set.
type Batch struct {
	Questions []interview.Question

	// LowConfidence marks batches generated from documents below the
	// minimum word threshold. It colors feedback wording only.
	LowConfidence bool

	Source Source
}

// Generator produces the ten-question set for a session. The language model
// is optional: with a nil drafter every batch comes from the fallback bank.
type Generator struct {
	drafter   ai.QuestionDrafter
	timeout   time.Duration
	maxLogLen int
	logger    *zap.Logger
}

// New builds a Generator. A nil drafter selects the offline fallback path.
func New(drafter ai.QuestionDrafter, timeout time.Duration, maxLogLen int, logger *zap.Logger) *Generator {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if maxLogLen <= 0 {
		maxLogLen = defaultMaxLogLen
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Generator{
		drafter:   drafter,
		timeout:   timeout,
		maxLogLen: maxLogLen,
		logger:    logger,
	}
}

// Generate returns exactly ten questions tailored to the documents, unique
// case-insensitively, with no focus category filling more than half the set.
// Model failures of any kind degrade to the deterministic fallback bank; the
// only hard failure is a fully empty document pair.
func (g *Generator) Generate(ctx context.Context, resume, jd interview.Document) (*Batch, error) {
	if resume.Empty() && jd.Empty() {
		return nil, fmt.Errorf("%w: need at least one of resume or job description", ErrInsufficientInput)
	}

	batch := &Batch{
		LowConfidence: resume.LowConfidence() || jd.LowConfidence(),
		Source:        SourceFallback,
	}

	assembler := newAssembler()

	if g.drafter != nil {
		accepted := g.draftFromModel(ctx, resume, jd, assembler)
		if accepted > 0 {
			batch.Source = SourceModel
		}
	}

	if !assembler.full() {
		if batch.Source == SourceModel {
			batch.Source = SourceMixed
		}
		for _, d := range fallbackDrafts(resume.Text, jd.Text) {
			if assembler.full() {
				break
			}
			assembler.add(d)
		}
	}

	if !assembler.full() {
		return nil, fmt.Errorf("%w: assembled only %d of %d questions",
			ErrGeneration, assembler.len(), interview.QuestionsPerSession)
	}

	batch.Questions = assembler.questions()
	return batch, nil
}

// draftFromModel performs the session's single outbound model call and feeds
// whatever parses into the assembler. All errors are absorbed here.
func (g *Generator) draftFromModel(ctx context.Context, resume, jd interview.Document, assembler *assembler) int {
	prompt := buildPrompt(resume.Text, jd.Text)

	g.logger.Debug("question generation request",
		zap.String("model", g.drafter.Model()),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, g.maxLogLen)),
	)

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	raw, err := g.drafter.Draft(ctx, systemInstruction, prompt)
	if err != nil {
		g.logger.Warn("language model call failed; using fallback bank", zap.Error(err))
		return 0
	}

	g.logger.Debug("question generation response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, g.maxLogLen)),
	)

	drafts, status, err := parseResponse(raw)
	if err != nil {
		g.logger.Warn("malformed model response; using fallback bank", zap.Error(err))
		return 0
	}

	if status == parsePartial {
		g.logger.Warn("model returned a partial question set",
			zap.Int("valid", len(drafts)),
			zap.Int("expected", interview.QuestionsPerSession),
		)
	}

	accepted := 0
	for _, d := range drafts {
		if assembler.full() {
			break
		}
		if assembler.add(d) {
			accepted++
		}
	}

	return accepted
}

func buildPrompt(resumeText, jdText string) string {
	prompt := strings.ReplaceAll(promptTemplate, "{{RESUME}}", truncateDocument(resumeText))
	return strings.ReplaceAll(prompt, "{{JOB_DESCRIPTION}}", truncateDocument(jdText))
}

func truncateDocument(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return "(not provided)"
	}

	runes := []rune(text)
	if len(runes) <= documentBudget {
		return text
	}
	return string(runes[:documentBudget])
}

// assembler accumulates drafts into a valid question set, enforcing
// case-insensitive uniqueness and the per-category cap.
type assembler struct {
	drafts      []draft
	seen        map[string]struct{}
	perCategory map[interview.FocusCategory]int
}

func newAssembler() *assembler {
	return &assembler{
		seen:        make(map[string]struct{}, interview.QuestionsPerSession),
		perCategory: make(map[interview.FocusCategory]int),
	}
}

func (a *assembler) add(d draft) bool {
	key := strings.ToLower(strings.TrimSpace(d.text))
	if key == "" {
		return false
	}
	if _, dup := a.seen[key]; dup {
		return false
	}
	if a.perCategory[d.category] >= interview.MaxPerCategory {
		return false
	}

	a.seen[key] = struct{}{}
	a.perCategory[d.category]++
	a.drafts = append(a.drafts, d)
	return true
}

func (a *assembler) len() int { return len(a.drafts) }

func (a *assembler) full() bool { return len(a.drafts) >= interview.QuestionsPerSession }

func (a *assembler) questions() []interview.Question {
	questions := make([]interview.Question, 0, interview.QuestionsPerSession)
	for i, d := range a.drafts[:interview.QuestionsPerSession] {
		questions = append(questions, interview.Question{
			Index:    i + 1,
			Text:     d.text,
			Category: d.category,
		})
	}
	return questions
}
