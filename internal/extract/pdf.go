package extract

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/cloudwego/eino-ext/components/document/parser/pdf"
	einoparser "github.com/cloudwego/eino/components/document/parser"
)

type pdfParser struct {
	parser *pdf.PDFParser
}

func newPDFParser(ctx context.Context) (*pdfParser, error) {
	// ToPages false: résumés and job postings read as one continuous text.
	p, err := pdf.NewPDFParser(ctx, &pdf.Config{ToPages: false})
	if err != nil {
		return nil, fmt.Errorf("create pdf parser: %w", err)
	}

	return &pdfParser{parser: p}, nil
}

func (p *pdfParser) Parse(ctx context.Context, path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	docs, err := p.parser.Parse(ctx, file, einoparser.WithURI(path))
	if err != nil {
		return "", fmt.Errorf("parse pdf %q: %w", path, err)
	}

	var builder strings.Builder
	for _, doc := range docs {
		if doc == nil {
			continue
		}
		if builder.Len() > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString(doc.Content)
	}

	return builder.String(), nil
}
