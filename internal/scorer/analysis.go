package scorer

import (
	"strings"
	"unicode"
)

// prefixMatchLen is the minimum entry length for prefix matching. Shorter
// entries must match a token exactly, so "led" never matches "ledger" while
// "implement" still matches "implemented".
const prefixMatchLen = 5

// analysis is the tokenized view of one transcript, computed once and shared
// by every scoring dimension.
type analysis struct {
	text            string // lowercased original
	tokens          []string
	wordCount       int
	sentenceLengths []int
}

func analyze(transcript string) *analysis {
	lower := strings.ToLower(transcript)

	a := &analysis{
		text:   lower,
		tokens: tokenize(lower),
	}
	a.wordCount = len(a.tokens)
	a.sentenceLengths = sentenceLengths(lower)

	return a
}

// tokenize splits on whitespace and trims punctuation at token edges.
// Digits, percent signs and separators inside a token survive, so "10,000"
// and "75%" stay whole.
func tokenize(text string) []string {
	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))

	for _, f := range fields {
		token := strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '%'
		})
		if token != "" {
			tokens = append(tokens, token)
		}
	}

	return tokens
}

func sentenceLengths(text string) []int {
	var lengths []int

	start := 0
	flush := func(end int) {
		if n := len(strings.Fields(text[start:end])); n > 0 {
			lengths = append(lengths, n)
		}
	}

	for i, r := range text {
		if r == '.' || r == '!' || r == '?' {
			flush(i)
			start = i + 1
		}
	}
	flush(len(text))

	return lengths
}

// countMatches counts how many lexicon entries occur in the transcript.
// Single-token entries match per token (prefix match for long entries);
// phrases match as substrings of the full text. Each entry counts all its
// occurrences.
func (a *analysis) countMatches(entries []string) int {
	count := 0
	for _, entry := range entries {
		if strings.ContainsRune(entry, ' ') {
			count += strings.Count(a.text, entry)
			continue
		}
		for _, token := range a.tokens {
			if matchToken(token, entry) {
				count++
			}
		}
	}
	return count
}

// anyMatch reports whether at least one lexicon entry occurs.
func (a *analysis) anyMatch(entries []string) bool {
	for _, entry := range entries {
		if strings.ContainsRune(entry, ' ') {
			if strings.Contains(a.text, entry) {
				return true
			}
			continue
		}
		for _, token := range a.tokens {
			if matchToken(token, entry) {
				return true
			}
		}
	}
	return false
}

func matchToken(token, entry string) bool {
	if token == entry {
		return true
	}
	return len(entry) >= prefixMatchLen && strings.HasPrefix(token, entry)
}

// numericTokens counts tokens carrying at least one digit.
func (a *analysis) numericTokens() int {
	count := 0
	for _, token := range a.tokens {
		if strings.ContainsFunc(token, unicode.IsDigit) {
			count++
		}
	}
	return count
}

func (a *analysis) meanSentenceLength() float64 {
	if len(a.sentenceLengths) == 0 {
		return 0
	}
	sum := 0
	for _, n := range a.sentenceLengths {
		sum += n
	}
	return float64(sum) / float64(len(a.sentenceLengths))
}
