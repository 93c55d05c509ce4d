package scorer

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed lexicon.yaml
var defaultLexiconYAML []byte

// Lexicon holds the word and phrase lists driving the scoring heuristics.
// It is versioned data, not logic: swapping the file changes scoring behavior
// without touching code, and tests pin the embedded default.
type Lexicon struct {
	Version int `yaml:"version"`

	Fillers        []string `yaml:"fillers"`
	Transitions    []string `yaml:"transitions"`
	ExampleMarkers []string `yaml:"example_markers"`
	OutcomeWords   []string `yaml:"outcome_words"`

	StarSituation []string `yaml:"star_situation"`
	StarTask      []string `yaml:"star_task"`
	StarAction    []string `yaml:"star_action"`
	StarResult    []string `yaml:"star_result"`

	Positive []string `yaml:"positive"`
	Negative []string `yaml:"negative"`
	Hedging  []string `yaml:"hedging"`

	Professional           []string            `yaml:"professional"`
	ProfessionalByCategory map[string][]string `yaml:"professional_by_category"`
	Casual                 []string            `yaml:"casual"`
	Profanity              []string            `yaml:"profanity"`
}

// DefaultLexicon returns the lexicon embedded in the binary.
func DefaultLexicon() *Lexicon {
	lex, err := parseLexicon(defaultLexiconYAML)
	if err != nil {
		// The embedded file ships with the binary; failing to parse it
		// is a build defect, not a runtime condition.
		panic(fmt.Sprintf("embedded lexicon is invalid: %v", err))
	}
	return lex
}

// LoadLexicon reads a lexicon override from the given YAML file.
func LoadLexicon(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading lexicon file %q: %w", path, err)
	}

	lex, err := parseLexicon(data)
	if err != nil {
		return nil, fmt.Errorf("parsing lexicon file %q: %w", path, err)
	}

	return lex, nil
}

func parseLexicon(data []byte) (*Lexicon, error) {
	var lex Lexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return nil, err
	}

	if lex.Version == 0 {
		return nil, fmt.Errorf("lexicon version is required")
	}
	if len(lex.Fillers) == 0 {
		return nil, fmt.Errorf("lexicon has no filler entries")
	}

	return &lex, nil
}
