package interview

import (
	"fmt"
	"math"
	"strings"
)

// SourceKind identifies which of the two uploaded documents a text came from.
type SourceKind string

const (
	SourceResume         SourceKind = "resume"
	SourceJobDescription SourceKind = "job_description"
)

// MinDocumentWords is the threshold below which a document is considered too
// thin to drive tailored question generation.
const MinDocumentWords = 50

// Document is the normalized plain-text form of an uploaded file. It is
// immutable once built.
type Document struct {
	Kind      SourceKind `json:"kind"`
	Text      string     `json:"-"`
	WordCount int        `json:"word_count"`
}

// NewDocument normalizes the extracted text and counts its words.
func NewDocument(kind SourceKind, text string) Document {
	text = strings.TrimSpace(text)
	return Document{
		Kind:      kind,
		Text:      text,
		WordCount: len(strings.Fields(text)),
	}
}

// Empty reports whether the document carries no usable text at all.
func (d Document) Empty() bool {
	return d.WordCount == 0
}

// LowConfidence reports whether the document is below the minimum word
// threshold. Generation still proceeds, but the batch is flagged.
func (d Document) LowConfidence() bool {
	return d.WordCount < MinDocumentWords
}

// FocusCategory is the thematic tag a generated question is classified under.
type FocusCategory string

const (
	CategoryProjectExperience FocusCategory = "project_experience"
	CategoryTechnicalSkill    FocusCategory = "technical_skill"
	CategoryAchievement       FocusCategory = "achievement"
	CategoryBehavioral        FocusCategory = "behavioral"
	CategoryJobFit            FocusCategory = "job_fit"
)

// Categories lists every focus category in its canonical order.
func Categories() []FocusCategory {
	return []FocusCategory{
		CategoryProjectExperience,
		CategoryTechnicalSkill,
		CategoryAchievement,
		CategoryBehavioral,
		CategoryJobFit,
	}
}

// ParseCategory maps a raw category label onto a known focus category.
// Labels are matched case-insensitively with separators normalized, so the
// model may answer "technical skill" or "TECHNICAL_SKILL" interchangeably.
func ParseCategory(raw string) (FocusCategory, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	normalized = strings.NewReplacer(" ", "_", "-", "_").Replace(normalized)

	for _, c := range Categories() {
		if normalized == string(c) {
			return c, nil
		}
	}

	return "", fmt.Errorf("unknown focus category: %q", raw)
}

// QuestionsPerSession is the fixed size of one interview's question set.
const QuestionsPerSession = 10

// MaxPerCategory caps how many questions of one focus category a session may
// contain.
const MaxPerCategory = 5

// Question is a single generated interview question. Questions are created
// once per session and never mutated afterward.
type Question struct {
	Index    int           `json:"index"`
	Text     string        `json:"text"`
	Category FocusCategory `json:"category"`
}

// Answer is the finalized transcript of one spoken response.
type Answer struct {
	QuestionIndex   int     `json:"question_index"`
	Transcript      string  `json:"transcript"`
	WordCount       int     `json:"word_count"`
	DurationSeconds float64 `json:"duration_seconds,omitempty"`
}

// NewAnswer builds an answer for the question at the given index.
func NewAnswer(questionIndex int, transcript string, durationSeconds float64) Answer {
	return Answer{
		QuestionIndex:   questionIndex,
		Transcript:      transcript,
		WordCount:       len(strings.Fields(transcript)),
		DurationSeconds: durationSeconds,
	}
}

// Sub-score weights of the composite. Not tunable.
const (
	WeightContent         = 0.40
	WeightClarity         = 0.25
	WeightConfidence      = 0.20
	WeightProfessionalism = 0.15
)

// ScoreBreakdown carries the four sub-scores of one answer, the weighted
// composite, and targeted feedback. Derived once, never mutated.
type ScoreBreakdown struct {
	Content         int      `json:"content_score"`
	Clarity         int      `json:"clarity_score"`
	Confidence      int      `json:"confidence_score"`
	Professionalism int      `json:"professionalism_score"`
	Composite       int      `json:"composite_score"`
	Feedback        []string `json:"feedback"`
}

// Composite computes the fixed weighted sum of the four sub-scores, rounded
// to the nearest integer and clamped to [0,100].
func Composite(content, clarity, confidence, professionalism int) int {
	weighted := float64(content)*WeightContent +
		float64(clarity)*WeightClarity +
		float64(confidence)*WeightConfidence +
		float64(professionalism)*WeightProfessionalism

	return ClampScore(int(math.Round(weighted)))
}

// ClampScore bounds a score to [0,100].
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
