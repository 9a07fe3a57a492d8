package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/srwlli/docaudit/internal/doctype"
	"github.com/srwlli/docaudit/internal/testutil"
)

func TestDocumentHeadings(t *testing.T) {
	t.Parallel()

	doc := &Document{Body: "# Title\n\ntext\n\n## Usage\n\n```\n# not a heading\n```\n\n### Deep One\n"}
	assert.Equal(t, []string{"Title", "Usage", "Deep One"}, doc.Headings())
}

func TestDocumentHasExample(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		body string
		want bool
	}{
		"code fence":      {"text\n```go\ncode\n```\n", true},
		"example heading": {"## Examples\n\nprose only\n", true},
		"neither":         {"## Usage\n\nprose only\n", false},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			doc := &Document{Body: tc.body}
			assert.Equal(t, tc.want, doc.HasExample())
		})
	}
}

func TestParseDocument(t *testing.T) {
	t.Parallel()

	doc := ParseDocument(doctype.DocTypeComponent, "parser-reference.md", []byte(testutil.ComponentDoc()))
	assert.NotNil(t, doc.Meta)
	assert.Contains(t, doc.Body, "# Parser Reference")

	value, ok := doc.Field("agent")
	assert.True(t, ok)
	assert.Equal(t, "docgen-agent", value)
}

func TestParseDocument_StructuredHeaderField(t *testing.T) {
	t.Parallel()

	doc := ParseDocument(doctype.DocTypeExecution, "execution-log.yaml", []byte(testutil.ExecutionDoc()))
	assert.NotNil(t, doc.Record)

	value, ok := doc.Field("workorder_id")
	assert.True(t, ok)
	assert.Equal(t, "WO-DOCS-CORE-001", value)

	_, ok = doc.Field("absent")
	assert.False(t, ok)
}

func TestParseDocument_MalformedIsBestEffort(t *testing.T) {
	t.Parallel()

	doc := ParseDocument(doctype.DocTypeGeneral, "notes.md", []byte("# No metadata here\n"))
	assert.Nil(t, doc.Meta)
	assert.Contains(t, doc.Body, "# No metadata here")
}
