package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srwlli/docaudit/internal/doctype"
)

// mapStore serves schema artifacts from in-memory maps for tests.
type mapStore struct {
	schemas map[string]string
	records map[string]string
}

func (s *mapStore) ReadSchema(id string) ([]byte, error) {
	raw, ok := s.schemas[id]
	if !ok {
		return nil, fmt.Errorf("schema artifact not found: %s", id)
	}
	return []byte(raw), nil
}

func (s *mapStore) ReadRecordSchema(id string) ([]byte, error) {
	raw, ok := s.records[id]
	if !ok {
		return nil, fmt.Errorf("record schema not found: %s", id)
	}
	return []byte(raw), nil
}

func (s *mapStore) List() ([]string, error) {
	ids := make([]string, 0, len(s.schemas))
	for id := range s.schemas {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// permissiveRecords satisfies the structured-record compile step without
// constraining anything.
func permissiveRecords() map[string]string {
	records := make(map[string]string)
	for _, dt := range doctype.All() {
		if dt.IsStructured() {
			records[string(dt)] = `{"type": "object"}`
		}
	}
	return records
}

func TestNewRegistry_ResolvesInheritance(t *testing.T) {
	t.Parallel()

	store := &mapStore{
		schemas: map[string]string{
			"base":  "id: base\ndraft: 1\nrequired:\n  - agent\nproperties:\n  agent:\n    type: string\n",
			"child": "id: child\ndraft: 1\nextends: base\nrequired:\n  - subject\n",
		},
		records: permissiveRecords(),
	}

	// The builtin set is bypassed entirely; only the two test schemas load.
	reg, err := NewRegistry(store)
	require.NoError(t, err)

	child, err := reg.Load("child")
	require.NoError(t, err)
	assert.Equal(t, []string{"agent", "subject"}, child.Required)
	assert.Equal(t, "string", child.Properties["agent"].Type)
}

func TestNewRegistry_DetectsCycle(t *testing.T) {
	t.Parallel()

	store := &mapStore{
		schemas: map[string]string{
			"a": "id: a\ndraft: 1\nextends: b\n",
			"b": "id: b\ndraft: 1\nextends: a\n",
		},
		records: permissiveRecords(),
	}

	_, err := NewRegistry(store)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cyclic schema composition")
}

func TestNewRegistry_UnknownBase(t *testing.T) {
	t.Parallel()

	store := &mapStore{
		schemas: map[string]string{
			"orphan": "id: orphan\ndraft: 1\nextends: nowhere\n",
		},
		records: permissiveRecords(),
	}

	_, err := NewRegistry(store)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema not found: nowhere")
}

func TestNewRegistry_MismatchedID(t *testing.T) {
	t.Parallel()

	store := &mapStore{
		schemas: map[string]string{"alpha": "id: beta\ndraft: 1\n"},
		records: permissiveRecords(),
	}

	_, err := NewRegistry(store)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mismatched id")
}

func TestNewRegistry_Builtins(t *testing.T) {
	t.Parallel()

	reg, err := NewRegistry(NewFSStore(""))
	require.NoError(t, err)

	for _, dt := range doctype.All() {
		s, err := reg.ForType(dt)
		require.NoError(t, err, "type %s must have a schema", dt)
		assert.Equal(t, string(dt), s.ID)

		_, hasRecord := reg.Record(dt)
		assert.Equal(t, dt.IsStructured(), hasRecord, "record schema presence for %s", dt)
	}

	// Inherited identifier constraints must survive composition.
	foundation, err := reg.Load("foundation")
	require.NoError(t, err)
	re := foundation.PatternFor("workorder_id")
	require.NotNil(t, re)
	assert.True(t, re.MatchString("WO-DOCS-CORE-001"))
	assert.False(t, re.MatchString("WO-AUTH-001"))
}

func TestFSStore_OverrideDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := NewFSStore(dir)

	// Nothing overridden: the embedded artifact is served.
	data, err := store.ReadSchema("general")
	require.NoError(t, err)
	assert.Contains(t, string(data), "id: general")

	ids, err := store.List()
	require.NoError(t, err)
	assert.Contains(t, ids, "foundation")
	assert.Contains(t, ids, "plan")
	assert.True(t, sort.StringsAreSorted(ids))

	// An override file takes precedence over the embedded artifact.
	override := "id: general\ndraft: 2\nrequired:\n  - custom\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "general.yaml"), []byte(override), 0644))

	data, err = store.ReadSchema("general")
	require.NoError(t, err)
	assert.Contains(t, string(data), "custom")
}

func TestRegistryIDs(t *testing.T) {
	t.Parallel()

	reg, err := NewRegistry(NewFSStore(""))
	require.NoError(t, err)

	ids := reg.IDs()
	assert.True(t, sort.StringsAreSorted(ids))
	assert.Contains(t, ids, "document-base")
}
