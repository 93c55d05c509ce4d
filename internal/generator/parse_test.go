package generator

import (
	"strings"
	"testing"

	"github.com/coachlabs/interview-coach/internal/interview"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResponseComplete(t *testing.T) {
	drafts, status, err := parseResponse(wellFormedResponse())

	require.NoError(t, err)
	assert.Equal(t, parseComplete, status)
	require.Len(t, drafts, interview.QuestionsPerSession)
	assert.Equal(t, interview.CategoryProjectExperience, drafts[0].category)
	assert.Equal(t, "Walk me through the payments project on your resume.", drafts[0].text)
}

func TestParseResponseAcceptsLooseFormatting(t *testing.T) {
	raw := strings.Join([]string{
		"  1)  [Technical Skill]   How do you profile a slow service?",
		"2. [BEHAVIORAL] Tell me about a failed deployment.",
		"3. [job-fit] Why this company?",
	}, "\n")

	drafts, status, err := parseResponse(raw)

	require.NoError(t, err)
	assert.Equal(t, parsePartial, status)
	require.Len(t, drafts, 3)
	assert.Equal(t, interview.CategoryTechnicalSkill, drafts[0].category)
	assert.Equal(t, "How do you profile a slow service?", drafts[0].text)
	assert.Equal(t, interview.CategoryBehavioral, drafts[1].category)
	assert.Equal(t, interview.CategoryJobFit, drafts[2].category)
}

func TestParseResponseSkipsInvalidLines(t *testing.T) {
	raw := strings.Join([]string{
		"Here are your questions:",
		"1. [brainteaser] How many golf balls fit in a bus?",
		"2. [behavioral] Tell me about your team.",
		"- [behavioral] not numbered",
		"3. [behavioral]",
	}, "\n")

	drafts, status, err := parseResponse(raw)

	require.NoError(t, err)
	assert.Equal(t, parsePartial, status)
	require.Len(t, drafts, 1)
	assert.Equal(t, "Tell me about your team.", drafts[0].text)
}

func TestParseResponseFailsWithoutValidLines(t *testing.T) {
	for name, raw := range map[string]string{
		"empty":      "",
		"prose":      "I'd be happy to help you prepare for your interview!",
		"wrong tags": "1. (behavioral) Tell me about your team.",
	} {
		t.Run(name, func(t *testing.T) {
			drafts, status, err := parseResponse(raw)

			assert.ErrorIs(t, err, ErrMalformedResponse)
			assert.Equal(t, parseFailed, status)
			assert.Empty(t, drafts)
		})
	}
}

func TestParseResponseStripsCodeFences(t *testing.T) {
	fenced := "```text\n" + wellFormedResponse() + "\n```"

	drafts, status, err := parseResponse(fenced)

	require.NoError(t, err)
	assert.Equal(t, parseComplete, status)
	assert.Len(t, drafts, interview.QuestionsPerSession)
}
