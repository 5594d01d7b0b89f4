package delta

import (
	"fmt"
	"strings"
)

// DefaultFirstRow is the first row of the comparison window in the
// reference plan layout.
const DefaultFirstRow = 25

// Field maps one logical field to its columns in the primary and secondary
// blocks. Columns are 1-based. A field with more than one column per side is
// a combined field (e.g. an identifier and its suffix).
type Field struct {
	Label     string
	Primary   []int
	Secondary []int
}

// Spec describes which columns are compared and which are carried along.
type Spec struct {
	Name   string
	Fields []Field
	// Key is the label of the field whose inequality produces a record.
	Key      string
	FirstRow int
	// MinColumns and MinRows are the shape thresholds checked by Validate.
	// Zero means: highest referenced column, and FirstRow. A set value may
	// raise a threshold but never lower it below those.
	MinColumns int
	MinRows    int
	// ShowRow surfaces the sheet row number in rendered reports.
	ShowRow bool
}

// Normalize checks the spec and fills in the defaulted thresholds
func (s Spec) Normalize() (Spec, error) {
	if len(s.Fields) == 0 {
		return s, fmt.Errorf("spec %q: no fields configured", s.Name)
	}

	seen := make(map[string]bool, len(s.Fields))
	highest := 0
	for _, f := range s.Fields {
		label := strings.TrimSpace(f.Label)
		if label == "" {
			return s, fmt.Errorf("spec %q: field with empty label", s.Name)
		}
		if seen[label] {
			return s, fmt.Errorf("spec %q: duplicate field %q", s.Name, label)
		}
		seen[label] = true

		if len(f.Primary) == 0 || len(f.Secondary) == 0 {
			return s, fmt.Errorf("spec %q: field %q needs columns on both sides", s.Name, label)
		}
		for _, col := range append(append([]int{}, f.Primary...), f.Secondary...) {
			if col < 1 {
				return s, fmt.Errorf("spec %q: field %q has invalid column %d", s.Name, label, col)
			}
			highest = max(highest, col)
		}
	}

	key := s.keyIndex()
	if key < 0 {
		return s, fmt.Errorf("spec %q: key field %q not found", s.Name, s.Key)
	}
	kf := s.Fields[key]
	if len(kf.Primary) != 1 || len(kf.Secondary) != 1 {
		return s, fmt.Errorf("spec %q: key field %q must map exactly one column per side", s.Name, s.Key)
	}

	if s.FirstRow == 0 {
		s.FirstRow = DefaultFirstRow
	}
	if s.FirstRow < 1 {
		return s, fmt.Errorf("spec %q: first row must be positive, got %d", s.Name, s.FirstRow)
	}
	if s.MinColumns == 0 {
		s.MinColumns = highest
	}
	if s.MinColumns < highest {
		return s, fmt.Errorf("spec %q: minimum columns %d is below the highest referenced column %d", s.Name, s.MinColumns, highest)
	}
	if s.MinRows == 0 {
		s.MinRows = s.FirstRow
	}
	if s.MinRows < s.FirstRow {
		return s, fmt.Errorf("spec %q: minimum rows %d is below the first row %d", s.Name, s.MinRows, s.FirstRow)
	}
	return s, nil
}

// KeyField returns the designated key field. The spec must be normalized.
func (s Spec) KeyField() Field {
	return s.Fields[s.keyIndex()]
}

// Labels returns the field labels in declared order
func (s Spec) Labels() []string {
	labels := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		labels[i] = f.Label
	}
	return labels
}

func (s Spec) keyIndex() int {
	for i, f := range s.Fields {
		if f.Label == s.Key {
			return i
		}
	}
	return -1
}

// Builder assembles a Spec field by field
type Builder struct {
	spec Spec
}

// NewSpec starts a spec with the default first row
func NewSpec(name string) *Builder {
	return &Builder{spec: Spec{Name: name, FirstRow: DefaultFirstRow}}
}

// Field appends a field. Columns are 1-based.
func (b *Builder) Field(label string, primary, secondary []int) *Builder {
	b.spec.Fields = append(b.spec.Fields, Field{
		Label:     label,
		Primary:   append([]int(nil), primary...),
		Secondary: append([]int(nil), secondary...),
	})
	return b
}

// KeyField appends a single-column field and marks it as the key
func (b *Builder) KeyField(label string, primary, secondary int) *Builder {
	b.Field(label, []int{primary}, []int{secondary})
	b.spec.Key = label
	return b
}

func (b *Builder) FirstRow(row int) *Builder {
	b.spec.FirstRow = row
	return b
}

func (b *Builder) MinColumns(n int) *Builder {
	b.spec.MinColumns = n
	return b
}

func (b *Builder) MinRows(n int) *Builder {
	b.spec.MinRows = n
	return b
}

func (b *Builder) ShowRow(show bool) *Builder {
	b.spec.ShowRow = show
	return b
}

// Build normalizes and returns the spec
func (b *Builder) Build() (Spec, error) {
	return b.spec.Normalize()
}
