package engine

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/srwlli/docaudit/internal/validation"
)

// FileReport pairs one document with its validation result.
type FileReport struct {
	Path   string             `json:"path"`
	Result *validation.Result `json:"result"`
}

// BatchReport aggregates a validate-all run.
type BatchReport struct {
	RunID    string        `json:"run_id"`
	Root     string        `json:"root"`
	Files    []FileReport  `json:"files"`
	Total    int           `json:"total"`
	Passed   int           `json:"passed"`
	Failed   int           `json:"failed"`
	Duration time.Duration `json:"duration_ns"`
}

// AverageScore returns the mean compliance score across all files, or 0 for
// an empty run.
func (r *BatchReport) AverageScore() int {
	if len(r.Files) == 0 {
		return 0
	}
	sum := 0
	for _, f := range r.Files {
		sum += f.Result.Score
	}
	return sum / len(r.Files)
}

// ValidateAll walks root and validates every candidate document with up to
// workers concurrent validations. Documents are independent, so the fan-out
// needs no coordination beyond the bounded group; one bad document never
// aborts the run.
func (e *Engine) ValidateAll(ctx context.Context, root string, workers int) (*BatchReport, error) {
	start := time.Now()
	paths, err := collectDocuments(root)
	if err != nil {
		return nil, err
	}

	if workers < 1 {
		workers = 1
	}

	reports := make([]FileReport, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			reports[i] = FileReport{Path: path, Result: e.ValidateFile(path)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &BatchReport{
		RunID:    uuid.NewString(),
		Root:     root,
		Files:    reports,
		Total:    len(reports),
		Duration: time.Since(start),
	}
	for _, f := range reports {
		if f.Result.Valid {
			report.Passed++
		} else {
			report.Failed++
		}
	}
	return report, nil
}

// collectDocuments gathers validatable files under root in a stable order.
// Hidden directories are skipped.
func collectDocuments(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path != root && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		switch strings.ToLower(filepath.Ext(name)) {
		case ".md", ".yaml", ".yml":
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}
