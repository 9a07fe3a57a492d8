// Package testutil provides test fixtures and helpers for docaudit tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes content to path, creating parent directories as needed.
// Cleanup is handled via t.TempDir in the caller.
func WriteFile(t *testing.T, path, content string) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// ComponentDoc returns a component reference sheet that passes validation.
// The subject appears in the conventional filename parser-reference.md.
func ComponentDoc() string {
	return `---
agent: docgen-agent
date: "2026-08-27"
task: DOCUMENT
subject: parser
project: docaudit
category: reference
---
# Parser Reference

## Purpose

Parses delimited metadata blocks.

## Usage

` + "```go\nblock, body, err := metadata.Extract(content)\n```" + `
`
}

// FoundationDoc returns a foundation document that passes validation.
func FoundationDoc() string {
	return `---
workorder_id: WO-DOCS-CORE-001
agent: docgen-agent
feature_id: FEAT-042
doc_type: foundation
date: "2026-08-27"
---
# Documentation Core

## Overview

Core validation engine for the documentation fleet.

## Architecture

Registry, validators, and a scoring pipeline.

## API

See the package docs.
`
}

// PlanDoc returns a plan record with two phases and the given task IDs.
func PlanDoc(taskIDs ...string) string {
	if len(taskIDs) == 0 {
		taskIDs = []string{"CORE-001", "CORE-002"}
	}
	tasks := ""
	for _, id := range taskIDs {
		tasks += fmt.Sprintf("      - id: %s\n        title: Task %s\n        status: pending\n", id, id)
	}
	return fmt.Sprintf(`plan:
  workorder_id: WO-DOCS-CORE-001
  created: "2026-08-25"
  agent: docgen-agent
summary: Implement the validation core.
phases:
  - name: implementation
    goal: Build the engine
    tasks:
%s
dependencies: []
risks: []
milestones: []
resources: []
validation: null
rollback: null
open_questions: []
`, tasks)
}

// ExecutionDoc returns an execution log referencing the given task IDs.
func ExecutionDoc(taskIDs ...string) string {
	if len(taskIDs) == 0 {
		taskIDs = []string{"CORE-001"}
	}
	entries := ""
	for _, id := range taskIDs {
		entries += fmt.Sprintf("  - task_id: %s\n    status: complete\n    timestamp: \"2026-08-27T10:00:00Z\"\n", id)
	}
	return fmt.Sprintf(`execution:
  workorder_id: WO-DOCS-CORE-001
  agent: docgen-agent
  started: "2026-08-27"
entries:
%s`, entries)
}

// AnalysisDoc returns an analysis record with the given overall status and
// finding severities.
func AnalysisDoc(overallStatus string, severities ...string) string {
	findings := ""
	for i, sev := range severities {
		findings += fmt.Sprintf("  - id: F-%03d\n    severity: %s\n    summary: finding %d\n", i+1, sev, i+1)
	}
	if findings == "" {
		return fmt.Sprintf(`analysis:
  timestamp: "2026-08-27T10:00:00Z"
  workorder_id: WO-DOCS-CORE-001
findings: []
summary:
  overall_status: %s
`, overallStatus)
	}
	return fmt.Sprintf(`analysis:
  timestamp: "2026-08-27T10:00:00Z"
  workorder_id: WO-DOCS-CORE-001
findings:
%ssummary:
  overall_status: %s
`, findings, overallStatus)
}
