package report

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/coachlabs/interview-coach/internal/interview"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *interview.Report {
	score := interview.ScoreBreakdown{
		Content: 80, Clarity: 70, Confidence: 60, Professionalism: 90,
		Composite: 75,
		Feedback:  []string{"Add specific, quantifiable detail"},
	}
	answer := interview.NewAnswer(1, "I led the payments migration.", 30)

	return &interview.Report{
		SessionID:        "0b1f4d2e-test",
		GeneratedAt:      time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC),
		Answered:         1,
		Skipped:          1,
		OverallComposite: 75,
		DimensionAverages: []interview.DimensionAverage{
			{Dimension: interview.DimensionContent, Average: 80},
			{Dimension: interview.DimensionClarity, Average: 70},
			{Dimension: interview.DimensionConfidence, Average: 60},
			{Dimension: interview.DimensionProfessionalism, Average: 90},
		},
		WeakestDimensions: []string{interview.DimensionConfidence, interview.DimensionClarity},
		Strengths:         []string{"Professional language and tone"},
		Improvements:      []string{"Continue practicing"},
		Questions: []interview.QuestionResult{
			{
				Question: interview.Question{Index: 1, Category: interview.CategoryProjectExperience, Text: "Walk me through a project."},
				Answer:   &answer,
				Score:    &score,
			},
			{
				Question: interview.Question{Index: 2, Category: interview.CategoryJobFit, Text: "Why this role?"},
				Skipped:  true,
			},
		},
	}
}

func TestWriteNamesArtifactAfterTimestamp(t *testing.T) {
	dir := t.TempDir()

	path, err := Write(sampleReport(), dir)
	require.NoError(t, err)

	assert.Contains(t, path, "interview_report_20260314_150926.json")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded interview.Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "0b1f4d2e-test", decoded.SessionID)
	assert.Equal(t, 75.0, decoded.OverallComposite)
	require.Len(t, decoded.Questions, 2)
	assert.True(t, decoded.Questions[1].Skipped)
}

func TestWriteCreatesMissingDirectory(t *testing.T) {
	dir := t.TempDir() + "/nested/reports"

	path, err := Write(sampleReport(), dir)
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestWriteRequiresReport(t *testing.T) {
	_, err := Write(nil, t.TempDir())
	assert.Error(t, err)
}

func TestRenderSummary(t *testing.T) {
	var buf bytes.Buffer

	Render(&buf, sampleReport())
	out := buf.String()

	assert.Contains(t, out, "INTERVIEW PERFORMANCE REPORT")
	assert.Contains(t, out, "Overall score: 75.0/100")
	assert.Contains(t, out, "answered 1, skipped 1")
	assert.Contains(t, out, "Focus next on: confidence, clarity")
	assert.Contains(t, out, "Strengths:")
	assert.Contains(t, out, "Q1 [project_experience] Walk me through a project.")
	assert.Contains(t, out, "score: 75 (content 80 / clarity 70 / confidence 60 / professionalism 90)")
	assert.Contains(t, out, "- Add specific, quantifiable detail")
	assert.Contains(t, out, "(skipped)")
}

func TestRenderNoDataReport(t *testing.T) {
	var buf bytes.Buffer

	Render(&buf, &interview.Report{NoData: true, Skipped: 10})
	out := buf.String()

	assert.Contains(t, out, "No questions were answered (10 skipped)")
	assert.NotContains(t, out, "Overall score")
}

func TestScoreBar(t *testing.T) {
	assert.Equal(t, "[--------------------]", scoreBar(0))
	assert.Equal(t, "[##########----------]", scoreBar(50))
	assert.Equal(t, "[####################]", scoreBar(100))
	assert.Equal(t, "[--------------------]", scoreBar(-5))
	assert.Equal(t, "[####################]", scoreBar(140))
}
