package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srwlli/docaudit/internal/testutil"
)

func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestValidateCommand_ValidDocument(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, filepath.Join(dir, "components", "parser-reference.md"), testutil.ComponentDoc())

	out, _, err := runCommand(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")
	assert.Contains(t, out, "type component")
}

func TestValidateCommand_InvalidDocument(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, filepath.Join(dir, "foundation.md"), "# no metadata\n")

	_, errOut, err := runCommand(t, "validate", path)
	require.Error(t, err)
	assert.Equal(t, ExitValidationFailed, ExitCode(err))
	assert.Contains(t, errOut, "failed validation")
}

func TestValidateCommand_JSONOutput(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, filepath.Join(dir, "wo-1", "plan.yaml"), testutil.PlanDoc())

	out, _, err := runCommand(t, "validate", "--json", path)
	require.NoError(t, err)

	var env struct {
		Valid bool   `json:"valid"`
		Score int    `json:"score"`
		Type  string `json:"type"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &env))
	assert.True(t, env.Valid)
	assert.Equal(t, 100, env.Score)
	assert.Equal(t, "plan", env.Type)

	// reset for subsequent command runs
	require.NoError(t, validateCmd.Flags().Set("json", "false"))
}

func TestValidateCommand_ExplicitType(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, filepath.Join(dir, "record.yaml"), testutil.ExecutionDoc())

	out, _, err := runCommand(t, "validate", "--type", "execution", path)
	require.NoError(t, err)
	assert.Contains(t, out, "type execution")

	require.NoError(t, validateCmd.Flags().Set("type", ""))
}

func TestValidateCommand_BadTypeFlag(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, filepath.Join(dir, "record.yaml"), testutil.ExecutionDoc())

	_, errOut, err := runCommand(t, "validate", "--type", "bogus", path)
	require.Error(t, err)
	assert.Equal(t, ExitInvalidArguments, ExitCode(err))
	assert.Contains(t, errOut, "invalid document type")

	require.NoError(t, validateCmd.Flags().Set("type", ""))
}
