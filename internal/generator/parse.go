package generator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/coachlabs/interview-coach/internal/interview"
)

// draft is one parsed question candidate before assembly into the session's
// question set.
type draft struct {
	text     string
	category interview.FocusCategory
}

type parseStatus int

const (
	parseComplete parseStatus = iota
	parsePartial
	parseFailed
)

// questionLine matches the strict record format requested from the model:
// `N. [category] question text`. Anything else on a line is rejected.
var questionLine = regexp.MustCompile(`^\s*(\d{1,2})[.)]\s*\[([A-Za-z_ -]+)\]\s*(\S.*)$`)

// parseResponse applies the line grammar to a raw model response and returns
// the valid drafts with a tag describing how complete the parse was. The tag,
// not ad hoc string inspection, drives the fallback decision.
func parseResponse(raw string) ([]draft, parseStatus, error) {
	var drafts []draft

	for _, line := range strings.Split(stripFences(raw), "\n") {
		match := questionLine.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		category, err := interview.ParseCategory(match[2])
		if err != nil {
			continue
		}

		text := strings.TrimSpace(match[3])
		if text == "" {
			continue
		}

		drafts = append(drafts, draft{text: text, category: category})
	}

	switch {
	case len(drafts) == 0:
		return nil, parseFailed, fmt.Errorf("%w: no valid question lines", ErrMalformedResponse)
	case len(drafts) < interview.QuestionsPerSession:
		return drafts, parsePartial, nil
	default:
		return drafts, parseComplete, nil
	}
}

// stripFences removes a surrounding markdown code fence, which models tend to
// add despite instructions.
func stripFences(raw string) string {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "```") {
		return raw
	}

	raw = strings.TrimPrefix(raw, "```text")
	raw = strings.TrimPrefix(raw, "```")
	if idx := strings.LastIndex(raw, "```"); idx != -1 {
		raw = raw[:idx]
	}

	return strings.TrimSpace(raw)
}
