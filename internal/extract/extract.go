package extract

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/coachlabs/interview-coach/internal/interview"
)

var (
	// ErrUnsupportedFormat is returned for file extensions the extractor
	// does not handle.
	ErrUnsupportedFormat = errors.New("unsupported document format")

	// ErrCorruptFile is returned when a supported file cannot be decoded
	// or yields no text at all.
	ErrCorruptFile = errors.New("document could not be read")
)

// fileParser extracts plain text from one document format.
type fileParser interface {
	Parse(ctx context.Context, path string) (string, error)
}

// Extractor normalizes résumé and job-description files into plain-text
// Documents. Format is selected by file extension.
type Extractor struct {
	parsers map[string]fileParser
}

// New builds an Extractor with parsers for PDF, DOCX and plain-text files.
func New(ctx context.Context) (*Extractor, error) {
	pdfParser, err := newPDFParser(ctx)
	if err != nil {
		return nil, fmt.Errorf("initializing pdf parser: %w", err)
	}

	plain := &plainTextParser{}

	return &Extractor{
		parsers: map[string]fileParser{
			".pdf":  pdfParser,
			".docx": &docxParser{},
			".txt":  plain,
			".text": plain,
			".md":   plain,
		},
	}, nil
}

// Extract reads the file and returns its normalized Document. Failures map
// onto the collaborator contract: ErrUnsupportedFormat for unknown
// extensions, ErrCorruptFile for anything unreadable or empty.
func (e *Extractor) Extract(ctx context.Context, kind interview.SourceKind, path string) (interview.Document, error) {
	ext := strings.ToLower(filepath.Ext(path))

	parser, ok := e.parsers[ext]
	if !ok {
		return interview.Document{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if _, err := os.Stat(path); err != nil {
		return interview.Document{}, fmt.Errorf("%w: %v", ErrCorruptFile, err)
	}

	text, err := parser.Parse(ctx, path)
	if err != nil {
		return interview.Document{}, fmt.Errorf("%w: %v", ErrCorruptFile, err)
	}

	doc := interview.NewDocument(kind, text)
	if doc.Empty() {
		return interview.Document{}, fmt.Errorf("%w: no text extracted from %q", ErrCorruptFile, path)
	}

	return doc, nil
}

// Supported lists the handled file extensions.
func (e *Extractor) Supported() []string {
	exts := make([]string, 0, len(e.parsers))
	for ext := range e.parsers {
		exts = append(exts, ext)
	}
	return exts
}

type plainTextParser struct{}

func (p *plainTextParser) Parse(_ context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
