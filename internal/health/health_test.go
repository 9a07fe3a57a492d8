package health

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srwlli/docaudit/internal/doctype"
	"github.com/srwlli/docaudit/internal/schema"
	"github.com/srwlli/docaudit/internal/testutil"
	"github.com/srwlli/docaudit/internal/validation"
)

var scorerNow = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func testScorer(t *testing.T) *Scorer {
	t.Helper()
	reg, err := schema.NewRegistry(schema.NewFSStore(""))
	require.NoError(t, err)
	s := NewScorer(reg)
	s.now = func() time.Time { return scorerNow }
	return s
}

func foundationAt(date string) *validation.Document {
	content := fmt.Sprintf(`---
workorder_id: WO-DOCS-CORE-001
agent: docgen-agent
feature_id: FEAT-042
doc_type: foundation
date: "%s"
---
# Documentation Core

## Overview

Core engine.

## Architecture

Registry and validators.

## API

`+"```go\neng.ValidateFile(path)\n```"+`
`, date)
	return validation.ParseDocument(doctype.DocTypeFoundation, "docs/foundation.md", []byte(content))
}

func TestCalculate_FreshCompleteDocScores100(t *testing.T) {
	t.Parallel()

	// Three days old, every factor satisfied.
	doc := foundationAt("2026-08-27")
	score, err := testScorer(t).Calculate(doc, true)
	require.NoError(t, err)

	assert.Equal(t, MaxTraceability, score.Traceability)
	assert.Equal(t, MaxCompleteness, score.Completeness)
	assert.Equal(t, MaxFreshness, score.Freshness)
	assert.Equal(t, MaxValidation, score.Validation)
	assert.Equal(t, 100, score.Total)
}

func TestCalculate_FreshnessBands(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		date string
		want int
	}{
		"under a week":    {"2026-08-27", 20},
		"under a month":   {"2026-08-10", 10},
		"under ninety":    {"2026-07-01", 5},
		"stale":           {"2025-01-01", 0},
	}

	scorer := testScorer(t)
	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			score, err := scorer.Calculate(foundationAt(tc.date), true)
			require.NoError(t, err)
			assert.Equal(t, tc.want, score.Freshness)
		})
	}
}

func TestCalculate_NoTimestampScoresZeroFreshness(t *testing.T) {
	t.Parallel()

	content := `---
workorder_id: WO-DOCS-CORE-001
agent: docgen-agent
doc_type: foundation
---
# Doc

## Overview
`
	doc := validation.ParseDocument(doctype.DocTypeFoundation, "docs/foundation.md", []byte(content))
	score, err := testScorer(t).Calculate(doc, true)
	require.NoError(t, err)
	assert.Equal(t, 0, score.Freshness)
}

func TestCalculate_TraceabilityPartial(t *testing.T) {
	t.Parallel()

	// Malformed work-item identifier earns nothing; agent still counts.
	content := `---
workorder_id: WO-AUTH-001
agent: docgen-agent
doc_type: foundation
date: "2026-08-27"
---
# Doc
`
	doc := validation.ParseDocument(doctype.DocTypeFoundation, "docs/foundation.md", []byte(content))
	score, err := testScorer(t).Calculate(doc, true)
	require.NoError(t, err)
	assert.Equal(t, 10, score.Traceability)
}

func TestCalculate_InvalidDocLosesValidationPoints(t *testing.T) {
	t.Parallel()

	score, err := testScorer(t).Calculate(foundationAt("2026-08-27"), false)
	require.NoError(t, err)
	assert.Equal(t, 0, score.Validation)
	assert.Equal(t, 90, score.Total)
}

func TestCalculate_StructuredRecord(t *testing.T) {
	t.Parallel()

	doc := validation.ParseDocument(doctype.DocTypeExecution, "execution-log.yaml", []byte(testutil.ExecutionDoc("CORE-001")))
	score, err := testScorer(t).Calculate(doc, true)
	require.NoError(t, err)

	// workorder_id and agent come from the record header; no feature_id.
	assert.Equal(t, 30, score.Traceability)
	// All required keys present plus a populated entries list.
	assert.Equal(t, MaxCompleteness, score.Completeness)
	// The started field is three days old.
	assert.Equal(t, MaxFreshness, score.Freshness)
}

func TestCalculate_MissingSectionsLoseCompleteness(t *testing.T) {
	t.Parallel()

	content := `---
workorder_id: WO-DOCS-CORE-001
agent: docgen-agent
feature_id: FEAT-042
doc_type: foundation
date: "2026-08-27"
---
# Doc

## Overview

` + "```\nexample\n```" + `
`
	doc := validation.ParseDocument(doctype.DocTypeFoundation, "docs/foundation.md", []byte(content))
	score, err := testScorer(t).Calculate(doc, true)
	require.NoError(t, err)
	assert.Equal(t, 10, score.Completeness, "sections missing, example present")
}
