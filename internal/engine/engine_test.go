package engine

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srwlli/docaudit/internal/doctype"
	"github.com/srwlli/docaudit/internal/schema"
	"github.com/srwlli/docaudit/internal/testutil"
	"github.com/srwlli/docaudit/internal/validation"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	reg, err := schema.NewRegistry(schema.NewFSStore(""))
	require.NoError(t, err)
	eng, err := New(reg, nil)
	require.NoError(t, err)
	return eng
}

func TestValidateFile(t *testing.T) {
	t.Parallel()
	eng := testEngine(t)

	dir := t.TempDir()
	path := testutil.WriteFile(t, filepath.Join(dir, "components", "parser-reference.md"), testutil.ComponentDoc())

	res := eng.ValidateFile(path)
	assert.True(t, res.Valid)
	assert.Equal(t, 100, res.Score)
	assert.Equal(t, doctype.DocTypeComponent, res.DocType)
}

func TestValidateFile_Unreadable(t *testing.T) {
	t.Parallel()
	eng := testEngine(t)

	res := eng.ValidateFile(filepath.Join(t.TempDir(), "absent.md"))
	assert.False(t, res.Valid)
	assert.Equal(t, 0, res.Score)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, validation.SeverityCritical, res.Errors[0].Severity)
}

func TestValidateContent_ExplicitType(t *testing.T) {
	t.Parallel()
	eng := testEngine(t)

	res, err := eng.ValidateContent([]byte(testutil.PlanDoc()), doctype.DocTypePlan)
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Equal(t, doctype.DocTypePlan, res.DocType)

	_, err = eng.ValidateContent(nil, doctype.DocType("bogus"))
	assert.Error(t, err)
}

func TestDetectType_ReadsContentForSniffing(t *testing.T) {
	t.Parallel()
	eng := testEngine(t)

	dir := t.TempDir()
	content := "---\nagent: a\ntask: DOCUMENT\nsubject: parser\n---\nbody\n"
	path := testutil.WriteFile(t, filepath.Join(dir, "notes.md"), content)

	assert.Equal(t, doctype.DocTypeComponent, eng.DetectType(path))
	assert.Equal(t, doctype.DocTypeComponent, eng.ValidatorFor(path).Type())
}

func TestHealth(t *testing.T) {
	t.Parallel()
	eng := testEngine(t)

	dir := t.TempDir()
	path := testutil.WriteFile(t, filepath.Join(dir, "foundation.md"), testutil.FoundationDoc())

	score, err := eng.Health(path)
	require.NoError(t, err)
	assert.Equal(t, 40, score.Traceability)
	assert.Equal(t, 10, score.Validation)
	assert.Equal(t, score.Traceability+score.Completeness+score.Freshness+score.Validation, score.Total)

	_, err = eng.Health(filepath.Join(dir, "absent.md"))
	assert.Error(t, err)
}
