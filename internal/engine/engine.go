// Package engine ties the schema registry, validator factory, and health
// scorer into the surface consumed by the CLI and by external orchestration
// layers. Each validation call is stateless; the only state shared across
// calls is the immutable schema registry.
package engine

import (
	"fmt"

	"github.com/srwlli/docaudit/internal/doctype"
	"github.com/srwlli/docaudit/internal/health"
	"github.com/srwlli/docaudit/internal/schema"
	"github.com/srwlli/docaudit/internal/validation"
)

// Engine exposes document validation and health scoring.
type Engine struct {
	registry *schema.Registry
	factory  *validation.Factory
	scorer   *health.Scorer
	reader   validation.FileReader
}

// New constructs an engine over a loaded registry. Validator construction
// failures are configuration errors.
func New(reg *schema.Registry, reader validation.FileReader) (*Engine, error) {
	if reader == nil {
		reader = validation.OSReader{}
	}
	factory, err := validation.NewFactory(reg, reader)
	if err != nil {
		return nil, err
	}
	return &Engine{
		registry: reg,
		factory:  factory,
		scorer:   health.NewScorer(reg),
		reader:   reader,
	}, nil
}

// Registry returns the engine's schema registry.
func (e *Engine) Registry() *schema.Registry {
	return e.registry
}

// ValidateFile validates the document at path, auto-detecting its type.
// Per-document problems are aggregated into the result, never returned as an
// error.
func (e *Engine) ValidateFile(path string) *validation.Result {
	content, err := e.reader.ReadFile(path)
	if err != nil {
		res := validation.NewResult(doctype.DocTypeGeneral)
		res.Add(validation.SeverityCritical, "", "unreadable file: %v", err)
		res.Score = 0
		return res
	}
	return e.factory.ValidatorFor(path, content).ValidateContent(path, content)
}

// ValidateContent validates already-read content as an explicit type.
func (e *Engine) ValidateContent(content []byte, dt doctype.DocType) (*validation.Result, error) {
	v, err := e.factory.ForType(dt)
	if err != nil {
		return nil, err
	}
	return v.ValidateContent("", content), nil
}

// ValidatorFor returns the validator that would handle the given path.
// Detection is deterministic.
func (e *Engine) ValidatorFor(path string) validation.Validator {
	content, _ := e.reader.ReadFile(path)
	return e.factory.ValidatorFor(path, content)
}

// DetectType returns the document type that would be dispatched for path.
func (e *Engine) DetectType(path string) doctype.DocType {
	content, _ := e.reader.ReadFile(path)
	return e.factory.DetectType(path, content)
}

// Health computes the four-factor health score for the document at path.
func (e *Engine) Health(path string) (*health.Score, error) {
	content, err := e.reader.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	dt := e.factory.DetectType(path, content)
	v, err := e.factory.ForType(dt)
	if err != nil {
		return nil, err
	}
	result := v.ValidateContent(path, content)

	doc := validation.ParseDocument(dt, path, content)
	return e.scorer.Calculate(doc, result.Valid)
}
