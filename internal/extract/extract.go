package extract

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// ErrEmptyDocument is returned when the file exists but has no bytes.
var ErrEmptyDocument = errors.New("empty docx file")

// DocxExtractor reads the raw text of Word (.docx) documents.
// Library used: github.com/nguyenthenguyen/docx.
type DocxExtractor struct{}

// ExtractText returns the plain text of the document at path. Each paragraph
// and explicit line break ends with a newline; tabs are kept as \t.
func (DocxExtractor) ExtractText(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("extract text path=%s: %w", path, err)
	}
	if info.Size() == 0 {
		return "", fmt.Errorf("extract text path=%s: %w", path, ErrEmptyDocument)
	}

	doc, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", fmt.Errorf("extract text path=%s: open docx: %w", path, err)
	}
	defer doc.Close()

	text, err := documentText(doc.Editable().GetContent())
	if err != nil {
		return "", fmt.Errorf("extract text path=%s: %w", path, err)
	}
	return text, nil
}

// documentText walks word/document.xml and keeps only run text.
func documentText(raw string) (string, error) {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	inText := false
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parse document.xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "Choice", "pPr":
				// Text boxes carry the same runs in mc:Choice and mc:Fallback; only
				// the fallback is read. pPr holds tab stop definitions, not text.
				if err := decoder.Skip(); err != nil {
					return "", fmt.Errorf("parse document.xml: %w", err)
				}
			case "t":
				inText = true
			case "tab":
				buf.WriteString("\t")
			case "br", "cr":
				buf.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				buf.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				buf.WriteString("\n")
			}
		}
	}
	return buf.String(), nil
}
