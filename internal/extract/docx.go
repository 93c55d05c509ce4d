package extract

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// docxParser reads the paragraph text out of a DOCX archive. A DOCX file is
// a zip with the document body in word/document.xml; paragraphs are <w:p>
// elements containing <w:t> text runs.
type docxParser struct{}

func (d *docxParser) Parse(_ context.Context, path string) (string, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("open docx %q: %w", path, err)
	}
	defer archive.Close()

	for _, file := range archive.File {
		if file.Name != "word/document.xml" {
			continue
		}

		body, err := file.Open()
		if err != nil {
			return "", fmt.Errorf("open docx body: %w", err)
		}
		defer body.Close()

		return extractParagraphs(body)
	}

	return "", fmt.Errorf("docx %q has no document body", path)
}

func extractParagraphs(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)

	var (
		builder   strings.Builder
		paragraph strings.Builder
	)

	flush := func() {
		if text := strings.TrimSpace(paragraph.String()); text != "" {
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
		paragraph.Reset()
	}

	inText := false
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("decode docx body: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				flush()
			}
		case xml.CharData:
			if inText {
				paragraph.Write(t)
			}
		}
	}
	flush()

	return builder.String(), nil
}
