// Package docxtest builds minimal .docx fixtures for tests.
package docxtest

import (
	"archive/zip"
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const documentTemplate = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
%s
  </w:body>
</w:document>`

const contentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const documentRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`

// WriteBody writes a .docx at dir/name whose w:body holds the given XML.
func WriteBody(t testing.TB, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create docx: %v", err)
	}
	zw := zip.NewWriter(f)
	entries := []struct{ name, content string }{
		{"[Content_Types].xml", contentTypes},
		{"word/_rels/document.xml.rels", documentRels},
		{"word/document.xml", strings.Replace(documentTemplate, "%s", body, 1)},
	}
	for _, e := range entries {
		w, err := zw.Create(e.name)
		if err != nil {
			t.Fatalf("create zip entry %s: %v", e.name, err)
		}
		if _, err := w.Write([]byte(e.content)); err != nil {
			t.Fatalf("write zip entry %s: %v", e.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close docx: %v", err)
	}
	return path
}

// WriteLines writes a .docx with one paragraph per line.
func WriteLines(t testing.TB, dir, name string, lines ...string) string {
	t.Helper()
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(Paragraph(line))
	}
	return WriteBody(t, dir, name, b.String())
}

// Bytes returns the content of a .docx with one paragraph per line.
func Bytes(t testing.TB, lines ...string) []byte {
	t.Helper()
	path := WriteLines(t, t.TempDir(), "fixture.docx", lines...)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read docx: %v", err)
	}
	return data
}

// Paragraph renders a w:p with one text run per argument.
func Paragraph(runs ...string) string {
	var b strings.Builder
	b.WriteString("<w:p>")
	for _, r := range runs {
		b.WriteString(`<w:r><w:t xml:space="preserve">`)
		_ = xml.EscapeText(&b, []byte(r))
		b.WriteString(`</w:t></w:r>`)
	}
	b.WriteString("</w:p>")
	return b.String()
}
