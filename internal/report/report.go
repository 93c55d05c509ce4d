package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/coachlabs/interview-coach/internal/interview"
)

// Write serializes the report as JSON into dir, named after the original
// system's artifact convention, and returns the written path.
func Write(report *interview.Report, dir string) (string, error) {
	if report == nil {
		return "", fmt.Errorf("report is required")
	}

	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report directory: %w", err)
	}

	name := fmt.Sprintf("interview_report_%s.json", report.GeneratedAt.Format("20060102_150405"))
	path := filepath.Join(dir, name)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}

	return path, nil
}

// Render prints a human-readable summary of the report.
func Render(w io.Writer, report *interview.Report) {
	divider := strings.Repeat("=", 60)

	fmt.Fprintln(w, divider)
	fmt.Fprintln(w, "INTERVIEW PERFORMANCE REPORT")
	fmt.Fprintln(w, divider)

	if report.NoData {
		fmt.Fprintf(w, "\nNo questions were answered (%d skipped). No scores to report.\n", report.Skipped)
		return
	}

	fmt.Fprintf(w, "\nOverall score: %.1f/100  (answered %d, skipped %d)\n\n",
		report.OverallComposite, report.Answered, report.Skipped)

	for _, avg := range report.DimensionAverages {
		fmt.Fprintf(w, "  %-16s %s %5.1f\n", avg.Dimension, scoreBar(avg.Average), avg.Average)
	}

	if len(report.WeakestDimensions) > 0 {
		fmt.Fprintf(w, "\nFocus next on: %s\n", strings.Join(report.WeakestDimensions, ", "))
	}

	renderList(w, "Strengths", report.Strengths)
	renderList(w, "Improvements", report.Improvements)

	fmt.Fprintf(w, "\n%s\n", divider)
	for _, result := range report.Questions {
		fmt.Fprintf(w, "\nQ%d [%s] %s\n", result.Question.Index, result.Question.Category, result.Question.Text)
		if result.Skipped {
			fmt.Fprintln(w, "   (skipped)")
			continue
		}
		if result.Score != nil {
			fmt.Fprintf(w, "   score: %d (content %d / clarity %d / confidence %d / professionalism %d)\n",
				result.Score.Composite, result.Score.Content, result.Score.Clarity,
				result.Score.Confidence, result.Score.Professionalism)
			for _, feedback := range result.Score.Feedback {
				fmt.Fprintf(w, "   - %s\n", feedback)
			}
		}
	}
}

func renderList(w io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s:\n", title)
	for _, item := range items {
		fmt.Fprintf(w, "  - %s\n", item)
	}
}

// scoreBar renders a 20-cell bar for a score in [0,100].
func scoreBar(score float64) string {
	const cells = 20

	filled := int(score / 100 * cells)
	if filled < 0 {
		filled = 0
	}
	if filled > cells {
		filled = cells
	}

	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", cells-filled) + "]"
}
