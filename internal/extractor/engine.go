// Package extractor applies ordered pattern lists over normalized policy
// text and produces a structured record with explicit nils for misses.
package extractor

import (
	"fmt"
	"time"
	"unicode/utf8"

	"policyparse/internal/domain"
)

// Value is a single extracted field value: a scalar, an ordered list for
// multi-valued fields, or absent.
type Value struct {
	Str  *string
	List []string
}

// IsNull reports whether the field was absent from the document.
func (v Value) IsNull() bool {
	return v.Str == nil && len(v.List) == 0
}

// Engine runs the field registry over normalized text. It holds no mutable
// state and is safe for concurrent use; callers may parallelize across
// documents with one Extract call each.
type Engine struct {
	registry *Registry
}

// New creates an Engine over the default field registry.
func New() *Engine {
	return NewWithRegistry(DefaultRegistry())
}

// NewWithRegistry creates an Engine over a custom registry.
func NewWithRegistry(r *Registry) *Engine {
	return &Engine{registry: r}
}

// Registry exposes the engine's field registry.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Extract runs every registered field against the normalized text. Each
// field gets the first value its pattern list accepts, or stays nil. A
// field miss never fails the document; the only fatal condition is
// non-text input.
func (e *Engine) Extract(normalized string) (*domain.PolicyData, error) {
	if !utf8.ValidString(normalized) {
		return nil, fmt.Errorf("extractor.Engine: %w", domain.ErrInvalidInput)
	}

	data := &domain.PolicyData{CoverageDetails: []string{}}
	for i := range e.registry.fields {
		f := &e.registry.fields[i]
		if f.multi {
			if items := f.matchList(normalized); items != nil {
				f.assignList(data, items)
			}
			continue
		}
		if v, ok := f.matchScalar(normalized); ok {
			f.assign(data, v)
		}
	}
	data.ParsedAt = time.Now().UTC()
	return data, nil
}

// ExtractField runs a single field without touching the rest of the
// registry. Names outside the closed registry are the only per-field error.
func (e *Engine) ExtractField(normalized, fieldName string) (Value, error) {
	if !utf8.ValidString(normalized) {
		return Value{}, fmt.Errorf("extractor.Engine: %w", domain.ErrInvalidInput)
	}
	f := e.registry.Lookup(fieldName)
	if f == nil {
		return Value{}, fmt.Errorf("extractor.Engine: %q: %w", fieldName, domain.ErrUnknownField)
	}
	if f.multi {
		return Value{List: f.matchList(normalized)}, nil
	}
	if v, ok := f.matchScalar(normalized); ok {
		return Value{Str: &v}, nil
	}
	return Value{}, nil
}
