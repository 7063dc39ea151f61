package extractor

import (
	"regexp"

	"policyparse/internal/domain"
)

// Pattern is a single matching rule: a compiled expression plus the index
// of the capture group that holds the value.
type Pattern struct {
	re    *regexp.Regexp
	group int
}

// NewPattern compiles expr and selects capture group for the value.
// Expressions must be RE2-safe; this is a requirement on registry authors,
// not a runtime mechanism.
func NewPattern(expr string, group int) Pattern {
	return Pattern{re: regexp.MustCompile(expr), group: group}
}

// FieldDef describes one extractable field: its ordered pattern list
// (most-specific-first), processor, group membership, and the closures
// that read and write its slot on domain.PolicyData.
type FieldDef struct {
	name       string
	group      string
	patterns   []Pattern
	proc       Processor
	required   bool
	multi      bool
	assign     func(*domain.PolicyData, string)
	assignList func(*domain.PolicyData, []string)
	present    func(*domain.PolicyData) bool
}

// Name returns the field's registry identifier.
func (f *FieldDef) Name() string { return f.name }

// Group returns the field's completeness group.
func (f *FieldDef) Group() string { return f.group }

// Required reports whether the field participates in completeness checks.
func (f *FieldDef) Required() bool { return f.required }

// Multi reports whether the field collects an ordered list of values.
func (f *FieldDef) Multi() bool { return f.multi }

// Present reports whether the field holds a value on the record.
func (f *FieldDef) Present(d *domain.PolicyData) bool { return f.present(d) }

// matchScalar tries the field's patterns in declared order and returns the
// first post-processed value. A processor rejection moves on to the next
// pattern; exhausting the list means the field is absent.
func (f *FieldDef) matchScalar(text string) (string, bool) {
	for _, p := range f.patterns {
		m := p.re.FindStringSubmatch(text)
		if m == nil || p.group >= len(m) {
			continue
		}
		if v, ok := applyProcessor(f.proc, m[p.group]); ok {
			return v, true
		}
	}
	return "", false
}

// matchList is the multi-valued counterpart of matchScalar.
func (f *FieldDef) matchList(text string) []string {
	for _, p := range f.patterns {
		m := p.re.FindStringSubmatch(text)
		if m == nil || p.group >= len(m) {
			continue
		}
		if items := collectList(m[p.group]); len(items) > 0 {
			return items
		}
	}
	return nil
}

// Registry is the closed, ordered set of field definitions. It is built
// once at startup, never mutated, and safe to share across goroutines.
type Registry struct {
	fields []FieldDef
	byName map[string]*FieldDef
}

func newRegistry(fields []FieldDef) *Registry {
	r := &Registry{fields: fields, byName: make(map[string]*FieldDef, len(fields))}
	for i := range r.fields {
		r.byName[r.fields[i].name] = &r.fields[i]
	}
	return r
}

// FieldNames returns every registered field name in declared order.
func (r *Registry) FieldNames() []string {
	names := make([]string, 0, len(r.fields))
	for i := range r.fields {
		names = append(names, r.fields[i].name)
	}
	return names
}

// Lookup returns the definition for name, or nil if outside the registry.
func (r *Registry) Lookup(name string) *FieldDef {
	return r.byName[name]
}
