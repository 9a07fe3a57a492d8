package validation

import (
	"os"
	"regexp"
	"strings"

	"github.com/srwlli/docaudit/internal/doctype"
	"github.com/srwlli/docaudit/internal/metadata"
)

// FileReader is the byte-read capability validators depend on. The default
// implementation reads the local filesystem.
type FileReader interface {
	ReadFile(path string) ([]byte, error)
}

// OSReader reads files from the local filesystem.
type OSReader struct{}

// ReadFile implements FileReader.
func (OSReader) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Document is the parsed form of one documentation artifact, created fresh
// per validation call and discarded afterwards.
type Document struct {
	Path string
	Type doctype.DocType

	// Meta and Body are populated for prose documents.
	Meta metadata.Block
	Body string

	// Record is populated for structured-record documents.
	Record map[string]any
}

var headingPattern = regexp.MustCompile(`^#{1,6}\s+(.+?)\s*$`)

// Headings returns the text of every markdown heading in the document body.
func (d *Document) Headings() []string {
	var out []string
	inFence := false
	for _, line := range strings.Split(d.Body, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		if m := headingPattern.FindStringSubmatch(line); m != nil {
			out = append(out, m[1])
		}
	}
	return out
}

// HasExample reports whether the body contains at least one worked example: a
// fenced code block or a heading mentioning examples.
func (d *Document) HasExample() bool {
	if strings.Contains(d.Body, "```") {
		return true
	}
	for _, h := range d.Headings() {
		if strings.Contains(strings.ToLower(h), "example") {
			return true
		}
	}
	return false
}
