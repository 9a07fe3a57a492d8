package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srwlli/docaudit/internal/testutil"
)

func TestCrossValidator_UnknownTaskRef(t *testing.T) {
	t.Parallel()

	reader := mapReader{
		"workorders/wo-1/plan.yaml":          testutil.PlanDoc("FOO-001", "FOO-002"),
		"workorders/wo-1/execution-log.yaml": testutil.ExecutionDoc("FOO-999"),
	}
	v, err := NewExecutionValidator(testRegistry(t), reader)
	require.NoError(t, err)

	res := v.ValidateFile("workorders/wo-1/execution-log.yaml")

	assert.True(t, res.Valid, "unknown refs are MAJOR, not CRITICAL")
	issue := findIssue(res, SeverityMajor, "Unknown task identifier reference: FOO-999")
	require.NotNil(t, issue, "got: %v", res.Errors)
	assert.Equal(t, "task_id", issue.Field)
}

func TestCrossValidator_KnownRefsPass(t *testing.T) {
	t.Parallel()

	reader := mapReader{
		"workorders/wo-1/plan.yaml":          testutil.PlanDoc("FOO-001", "FOO-002"),
		"workorders/wo-1/execution-log.yaml": testutil.ExecutionDoc("FOO-001", "FOO-002"),
	}
	v, err := NewExecutionValidator(testRegistry(t), reader)
	require.NoError(t, err)

	res := v.ValidateFile("workorders/wo-1/execution-log.yaml")
	assert.True(t, res.Valid)
	assert.Empty(t, res.Errors)
	assert.Empty(t, res.Warnings)
}

func TestCrossValidator_MissingPlanIsSingleWarning(t *testing.T) {
	t.Parallel()

	reader := mapReader{
		"workorders/wo-1/execution-log.yaml": testutil.ExecutionDoc("FOO-001", "FOO-002", "FOO-003"),
	}
	v, err := NewExecutionValidator(testRegistry(t), reader)
	require.NoError(t, err)

	res := v.ValidateFile("workorders/wo-1/execution-log.yaml")

	assert.True(t, res.Valid)
	assert.Empty(t, res.Errors)
	require.Len(t, res.Warnings, 1, "missing companion degrades to exactly one warning")
	assert.Contains(t, res.Warnings[0], "companion plan not found")
}

func TestCrossValidator_PlanInParentDirectory(t *testing.T) {
	t.Parallel()

	reader := mapReader{
		"workorders/plan.yaml":               testutil.PlanDoc("FOO-001"),
		"workorders/wo-1/execution-log.yaml": testutil.ExecutionDoc("FOO-001"),
	}
	v, err := NewExecutionValidator(testRegistry(t), reader)
	require.NoError(t, err)

	res := v.ValidateFile("workorders/wo-1/execution-log.yaml")
	assert.Empty(t, res.Errors)
	assert.Empty(t, res.Warnings)
}

func TestCrossValidator_DeclaredPlanPath(t *testing.T) {
	t.Parallel()

	execution := `execution:
  workorder_id: WO-DOCS-CORE-001
  agent: docgen-agent
  plan_path: ../shared/master-plan.yaml
entries:
  - task_id: BAR-001
    status: complete
`
	reader := mapReader{
		"workorders/shared/master-plan.yaml": testutil.PlanDoc("BAR-001"),
		"workorders/wo-1/execution-log.yaml": execution,
	}
	v, err := NewExecutionValidator(testRegistry(t), reader)
	require.NoError(t, err)

	res := v.ValidateFile("workorders/wo-1/execution-log.yaml")
	assert.Empty(t, res.Errors, "declared relative plan path must resolve against the document directory")
	assert.Empty(t, res.Warnings)
}

func TestCrossValidator_UnparseablePlanIsWarning(t *testing.T) {
	t.Parallel()

	reader := mapReader{
		"workorders/wo-1/plan.yaml":          "phases: [unclosed",
		"workorders/wo-1/execution-log.yaml": testutil.ExecutionDoc("FOO-001"),
	}
	v, err := NewExecutionValidator(testRegistry(t), reader)
	require.NoError(t, err)

	res := v.ValidateFile("workorders/wo-1/execution-log.yaml")
	assert.Empty(t, res.Errors)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "could not be parsed")
}
