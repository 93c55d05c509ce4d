package scorer

import (
	"github.com/coachlabs/interview-coach/internal/interview"
)

const (
	// floorScore is assigned to every dimension when no usable answer was
	// given.
	floorScore = 20

	// minAnswerWords is the short-circuit threshold: anything below it is
	// treated as "no answer".
	minAnswerWords = 5

	// feedbackThreshold is the sub-score below which a targeted diagnostic
	// is emitted.
	feedbackThreshold = 60

	noAnswerFeedback = "No answer detected."
)

// dimension is one scoring rubric. Dimensions run in composite-weight order,
// each contributing a sub-score in [0,100] and a diagnostic used when the
// sub-score falls below the feedback threshold.
type dimension interface {
	Name() string
	Score(a *analysis, q interview.Question) int
	Diagnostic() string
}

// Scorer turns answer transcripts into score breakdowns. Scoring is pure and
// deterministic: the same transcript and question always produce an identical
// breakdown.
type Scorer struct {
	dimensions []dimension
}

// New builds a scorer over the given lexicon. Pass nil to use the embedded
// default.
func New(lex *Lexicon) *Scorer {
	if lex == nil {
		lex = DefaultLexicon()
	}

	return &Scorer{
		dimensions: []dimension{
			&contentDimension{lex: lex},
			&clarityDimension{lex: lex},
			&confidenceDimension{lex: lex},
			&professionalismDimension{lex: lex},
		},
	}
}

// Score computes the four sub-scores, the weighted composite and the
// feedback list for one transcript. It never fails: malformed or empty input
// degrades to the floor score.
func (s *Scorer) Score(transcript string, q interview.Question) interview.ScoreBreakdown {
	a := analyze(transcript)

	if a.wordCount < minAnswerWords {
		return interview.ScoreBreakdown{
			Content:         floorScore,
			Clarity:         floorScore,
			Confidence:      floorScore,
			Professionalism: floorScore,
			Composite:       interview.Composite(floorScore, floorScore, floorScore, floorScore),
			Feedback:        []string{noAnswerFeedback},
		}
	}

	scores := make([]int, len(s.dimensions))
	feedback := make([]string, 0, len(s.dimensions))

	for i, dim := range s.dimensions {
		scores[i] = interview.ClampScore(dim.Score(a, q))
		if scores[i] < feedbackThreshold {
			feedback = append(feedback, dim.Diagnostic())
		}
	}

	return interview.ScoreBreakdown{
		Content:         scores[0],
		Clarity:         scores[1],
		Confidence:      scores[2],
		Professionalism: scores[3],
		Composite:       interview.Composite(scores[0], scores[1], scores[2], scores[3]),
		Feedback:        feedback,
	}
}
