package validation

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/srwlli/docaudit/internal/schema"
)

// mapReader serves file content from memory for tests.
type mapReader map[string]string

func (m mapReader) ReadFile(path string) ([]byte, error) {
	content, ok := m[path]
	if !ok {
		return nil, fmt.Errorf("open %s: no such file", path)
	}
	return []byte(content), nil
}

func testRegistry(t *testing.T) *schema.Registry {
	t.Helper()
	reg, err := schema.NewRegistry(schema.NewFSStore(""))
	require.NoError(t, err)
	return reg
}

func findIssue(res *Result, sev Severity, substr string) *Issue {
	for _, issue := range res.Errors {
		if issue.Severity == sev && strings.Contains(issue.Message, substr) {
			return issue
		}
	}
	return nil
}
