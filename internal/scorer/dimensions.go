package scorer

import (
	"github.com/coachlabs/interview-coach/internal/interview"
)

// contentDimension rewards concrete, quantifiable detail and structured
// narrative. Weight 0.40.
type contentDimension struct {
	lex *Lexicon
}

func (d *contentDimension) Name() string { return interview.DimensionContent }

func (d *contentDimension) Diagnostic() string {
	return "Add specific, quantifiable detail (numbers, metrics, outcomes) to strengthen your answer"
}

func (d *contentDimension) Score(a *analysis, _ interview.Question) int {
	score := 40

	if numerics := a.numericTokens(); numerics > 0 {
		score += min(numerics*5, 15)
	}

	if a.anyMatch(d.lex.ExampleMarkers) {
		score += 10
	}

	if outcomes := a.countMatches(d.lex.OutcomeWords); outcomes > 0 {
		score += min(outcomes*5, 15)
	}

	// STAR narrative markers, weighted towards results.
	if a.anyMatch(d.lex.StarSituation) {
		score += 5
	}
	if a.anyMatch(d.lex.StarTask) {
		score += 5
	}
	if a.anyMatch(d.lex.StarAction) {
		score += 5
	}
	if a.anyMatch(d.lex.StarResult) {
		score += 10
	}

	switch {
	case a.wordCount < 10:
		score -= 20
	case a.wordCount < 25:
		score -= 10
	case a.wordCount > 250:
		score -= 10
	}

	return score
}

// clarityDimension penalizes filler density and rewards moderate sentence
// lengths with explicit structure. Weight 0.25.
type clarityDimension struct {
	lex *Lexicon
}

func (d *clarityDimension) Name() string { return interview.DimensionClarity }

func (d *clarityDimension) Diagnostic() string {
	return "Structure your answer with transitions and reduce filler words"
}

func (d *clarityDimension) Score(a *analysis, _ interview.Question) int {
	score := 60

	if transitions := a.countMatches(d.lex.Transitions); transitions > 0 {
		score += min(transitions*8, 24)
	}

	mean := a.meanSentenceLength()
	switch {
	case mean >= 8 && mean <= 30:
		score += 16
	case mean > 0 && mean < 5:
		score -= 10
	}

	if fillers := a.countMatches(d.lex.Fillers); fillers > 0 {
		score -= min(fillers*5, 30)
	}

	return score
}

// confidenceDimension estimates tone polarity from the lexicon: assertive,
// positive phrasing raises it, hedging and negative framing lower it.
// Weight 0.20.
type confidenceDimension struct {
	lex *Lexicon
}

func (d *confidenceDimension) Name() string { return interview.DimensionConfidence }

func (d *confidenceDimension) Diagnostic() string {
	return "Use more assertive, positive phrasing and avoid hedging language"
}

func (d *confidenceDimension) Score(a *analysis, _ interview.Question) int {
	score := 50

	score += min(a.countMatches(d.lex.Positive), 5) * 10
	score -= min(a.countMatches(d.lex.Negative), 5) * 8
	score -= min(a.countMatches(d.lex.Hedging), 3) * 12

	return score
}

// professionalismDimension penalizes casual and profane tokens and rewards
// professional vocabulary, including terms tied to the question's focus
// category. Weight 0.15.
type professionalismDimension struct {
	lex *Lexicon
}

func (d *professionalismDimension) Name() string { return interview.DimensionProfessionalism }

func (d *professionalismDimension) Diagnostic() string {
	return "Use more professional language and avoid casual expressions"
}

func (d *professionalismDimension) Score(a *analysis, q interview.Question) int {
	score := 70

	professional := a.countMatches(d.lex.Professional)
	professional += a.countMatches(d.lex.ProfessionalByCategory[string(q.Category)])
	score += min(professional, 6) * 5

	score -= a.countMatches(d.lex.Casual) * 10
	score -= a.countMatches(d.lex.Profanity) * 15

	return score
}
