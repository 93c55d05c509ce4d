package interview

import (
	"math"
	"sort"
	"time"
)

// Dimension names used in reports and feedback, in composite-weight order.
const (
	DimensionContent         = "content"
	DimensionClarity         = "clarity"
	DimensionConfidence      = "confidence"
	DimensionProfessionalism = "professionalism"
)

const (
	strengthThreshold    = 75
	improvementThreshold = 60
)

// DimensionAverage is the mean of one sub-score across answered questions.
type DimensionAverage struct {
	Dimension string  `json:"dimension"`
	Average   float64 `json:"average"`
}

// QuestionResult bundles everything known about one question for rendering.
type QuestionResult struct {
	Question Question        `json:"question"`
	Answer   *Answer         `json:"answer,omitempty"`
	Score    *ScoreBreakdown `json:"score,omitempty"`
	Skipped  bool            `json:"skipped"`
}

// Report is the immutable, serializable outcome of one finalized session.
// Field names are stable; the report renderer depends on this shape.
type Report struct {
	SessionID   string    `json:"session_id"`
	GeneratedAt time.Time `json:"generated_at"`

	// NoData is set when not a single question was answered. All numeric
	// aggregates are zero in that case and must not be interpreted.
	NoData bool `json:"no_data"`

	Answered int `json:"answered"`
	Skipped  int `json:"skipped"`

	OverallComposite  float64            `json:"overall_composite"`
	DimensionAverages []DimensionAverage `json:"dimension_averages"`

	// WeakestDimensions ranks the two lowest-averaging dimensions,
	// weakest first. Empty on a no-data report.
	WeakestDimensions []string `json:"weakest_dimensions"`

	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`

	Questions []QuestionResult `json:"questions"`
}

// Finalize freezes the session and aggregates its per-question scores into a
// report. A session with zero answered questions yields a distinguished
// no-data report rather than an error or a division by zero.
func (s *Session) Finalize() *Report {
	s.finalized = true

	report := &Report{
		SessionID:   s.ID,
		GeneratedAt: time.Now().UTC(),
		Questions:   make([]QuestionResult, 0, len(s.Questions)),
	}

	var (
		compositeSum int
		sums         = map[string]int{}
	)

	for _, q := range s.Questions {
		result := QuestionResult{Question: q, Skipped: true}

		if a, ok := s.answers[q.Index]; ok {
			answer := a
			result.Answer = &answer
			result.Skipped = false
			report.Answered++

			if sc, ok := s.scores[q.Index]; ok {
				score := sc
				result.Score = &score

				compositeSum += sc.Composite
				sums[DimensionContent] += sc.Content
				sums[DimensionClarity] += sc.Clarity
				sums[DimensionConfidence] += sc.Confidence
				sums[DimensionProfessionalism] += sc.Professionalism
			}
		}

		report.Questions = append(report.Questions, result)
	}

	report.Skipped = len(s.Questions) - report.Answered

	if report.Answered == 0 {
		report.NoData = true
		return report
	}

	n := float64(report.Answered)
	report.OverallComposite = round1(float64(compositeSum) / n)

	for _, dim := range dimensionOrder() {
		report.DimensionAverages = append(report.DimensionAverages, DimensionAverage{
			Dimension: dim,
			Average:   round1(float64(sums[dim]) / n),
		})
	}

	report.WeakestDimensions = weakestDimensions(report.DimensionAverages, 2)
	report.Strengths, report.Improvements = assessDimensions(report.DimensionAverages)

	return report
}

func dimensionOrder() []string {
	return []string{
		DimensionContent,
		DimensionClarity,
		DimensionConfidence,
		DimensionProfessionalism,
	}
}

// weakestDimensions ranks dimensions by ascending average. Ties keep the
// composite-weight order so the ranking stays deterministic.
func weakestDimensions(averages []DimensionAverage, limit int) []string {
	ranked := make([]DimensionAverage, len(averages))
	copy(ranked, averages)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Average < ranked[j].Average
	})

	if limit > len(ranked) {
		limit = len(ranked)
	}

	names := make([]string, 0, limit)
	for _, entry := range ranked[:limit] {
		names = append(names, entry.Dimension)
	}
	return names
}

func assessDimensions(averages []DimensionAverage) (strengths, improvements []string) {
	texts := map[string][2]string{
		DimensionContent: {
			"Strong content quality with good examples and details",
			"Provide more specific examples and quantifiable achievements",
		},
		DimensionClarity: {
			"Clear and articulate communication",
			"Improve clarity by reducing filler words and organizing thoughts better",
		},
		DimensionConfidence: {
			"Confident and positive demeanor",
			"Build confidence through more preparation and practice",
		},
		DimensionProfessionalism: {
			"Professional language and tone",
			"Use more professional language and avoid casual expressions",
		},
	}

	for _, entry := range averages {
		pair := texts[entry.Dimension]
		switch {
		case entry.Average >= strengthThreshold:
			strengths = append(strengths, pair[0])
		case entry.Average < improvementThreshold:
			improvements = append(improvements, pair[1])
		}
	}

	if len(strengths) == 0 {
		strengths = []string{"Shows potential for growth"}
	}
	if len(improvements) == 0 {
		improvements = []string{"Continue practicing"}
	}

	return strengths, improvements
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
