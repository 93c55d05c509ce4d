package scorer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/coachlabs/interview-coach/internal/interview"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func behavioralQuestion() interview.Question {
	return interview.Question{
		Index:    1,
		Category: interview.CategoryBehavioral,
		Text:     "Tell me about a time you faced a difficult challenge at work.",
	}
}

func technicalQuestion() interview.Question {
	return interview.Question{
		Index:    2,
		Category: interview.CategoryTechnicalSkill,
		Text:     "Describe a performance problem you solved and how you measured the improvement.",
	}
}

func TestScoreVagueAnswerLandsLow(t *testing.T) {
	transcript := "Um, I worked on a project that was hard. It was challenging and I had to work with my team. We finished it eventually."

	got := New(nil).Score(transcript, behavioralQuestion())

	assert.Equal(t, 30, got.Content)
	assert.Equal(t, 71, got.Clarity)
	assert.Equal(t, 34, got.Confidence)
	assert.Equal(t, 70, got.Professionalism)
	assert.Equal(t, 47, got.Composite)

	assert.GreaterOrEqual(t, got.Composite, 30)
	assert.LessOrEqual(t, got.Composite, 50)

	require.Len(t, got.Feedback, 2)
	assert.Contains(t, got.Feedback[0], "quantifiable detail")
	assert.Contains(t, got.Feedback[1], "hedging")
}

func TestScoreQuantifiedAnswerLandsHigh(t *testing.T) {
	transcript := "In my previous role as a software engineer, I led a project that reduced page load times by 75%, from 8 seconds to 2 seconds, impacting 10,000 daily users."

	got := New(nil).Score(transcript, technicalQuestion())

	assert.Equal(t, 85, got.Content)
	assert.Equal(t, 76, got.Clarity)
	assert.Equal(t, 60, got.Confidence)
	assert.Equal(t, 75, got.Professionalism)
	assert.Equal(t, 76, got.Composite)

	assert.GreaterOrEqual(t, got.Composite, 75)
	assert.LessOrEqual(t, got.Composite, 90)

	assert.Empty(t, got.Feedback)
}

func TestScoreShortTranscriptsHitTheFloor(t *testing.T) {
	for name, transcript := range map[string]string{
		"empty":      "",
		"whitespace": "   \n\t  ",
		"four words": "I am not sure",
	} {
		t.Run(name, func(t *testing.T) {
			got := New(nil).Score(transcript, behavioralQuestion())

			assert.Equal(t, floorScore, got.Content)
			assert.Equal(t, floorScore, got.Clarity)
			assert.Equal(t, floorScore, got.Confidence)
			assert.Equal(t, floorScore, got.Professionalism)
			assert.Equal(t, floorScore, got.Composite)
			assert.Equal(t, []string{noAnswerFeedback}, got.Feedback)
		})
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	transcript := "First, I gathered the requirements. Then I implemented the solution and delivered it with a 30% cost saving."
	q := behavioralQuestion()
	s := New(nil)

	first := s.Score(transcript, q)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, s.Score(transcript, q))
	}
}

func TestScoreFeedbackFollowsDimensionOrder(t *testing.T) {
	// Filler-heavy, hedged, casual, no substance: every dimension should
	// complain, in fixed order.
	transcript := "Um, like, I guess I kinda sorta dunno, maybe it was like bad stuff, you know, whatever, yeah. Um, probably it failed, I think."

	got := New(nil).Score(transcript, behavioralQuestion())

	require.Len(t, got.Feedback, 4)
	diags := []string{
		(&contentDimension{}).Diagnostic(),
		(&clarityDimension{}).Diagnostic(),
		(&confidenceDimension{}).Diagnostic(),
		(&professionalismDimension{}).Diagnostic(),
	}
	assert.Equal(t, diags, got.Feedback)
}

func TestTokenizeKeepsNumericTokensWhole(t *testing.T) {
	tokens := tokenize("reduced load by 75%, serving 10,000 users (daily).")

	assert.Contains(t, tokens, "75%")
	assert.Contains(t, tokens, "10,000")
	assert.Contains(t, tokens, "daily")
}

func TestMatchTokenPrefixRules(t *testing.T) {
	// Entries shorter than prefixMatchLen must match exactly.
	assert.True(t, matchToken("led", "led"))
	assert.False(t, matchToken("ledger", "led"))

	// Long entries cover inflections, but never unrelated stems.
	assert.True(t, matchToken("implemented", "implement"))
	assert.True(t, matchToken("impacting", "impact"))
	assert.False(t, matchToken("challenging", "challenge"))
}

func TestDefaultLexiconIsValid(t *testing.T) {
	lex := DefaultLexicon()

	require.NotNil(t, lex)
	assert.Equal(t, 1, lex.Version)
	assert.NotEmpty(t, lex.Fillers)
	for _, category := range interview.Categories() {
		assert.NotEmpty(t, lex.ProfessionalByCategory[string(category)], "category %s", category)
	}
}

func TestLoadLexicon(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.yaml")
	content := "version: 1\nfillers:\n  - um\n  - like\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	lex, err := LoadLexicon(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"um", "like"}, lex.Fillers)
}

func TestLoadLexiconRejectsMissingVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fillers:\n  - um\n"), 0o600))

	_, err := LoadLexicon(path)
	assert.Error(t, err)
}
