package engine

import (
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/zclconf/go-cty/cty"
)

// DateFormat is the canonical textual form for FieldDate values
const DateFormat = "2006-01-02"

// ParameterBundle is the loosely-typed name/value store a record's scalar
// fields are parsed into before the strongly-typed entity is constructed. A
// property that is absent from the bundle was not present in the document,
// which is distinct from present-but-empty; construct functions apply their
// own defaulting for absent properties.
type ParameterBundle struct {
	values map[string]cty.Value
}

func NewParameterBundle() *ParameterBundle {
	return &ParameterBundle{
		values: make(map[string]cty.Value),
	}
}

func (b *ParameterBundle) Set(name string, value cty.Value) {
	b.values[name] = value
}

func (b *ParameterBundle) Contains(name string) bool {
	_, ok := b.values[name]
	return ok
}

func (b *ParameterBundle) Len() int {
	return len(b.values)
}

// String returns the named property as a string, with ok == false if the
// property is absent or not a string
func (b *ParameterBundle) String(name string) (string, bool) {
	v, ok := b.values[name]
	if !ok || v.Type() != cty.String {
		return "", false
	}
	return v.AsString(), true
}

func (b *ParameterBundle) Bool(name string) (bool, bool) {
	v, ok := b.values[name]
	if !ok || v.Type() != cty.Bool {
		return false, false
	}
	return v.True(), true
}

func (b *ParameterBundle) Int(name string) (int, bool) {
	v, ok := b.values[name]
	if !ok || v.Type() != cty.Number {
		return 0, false
	}
	i, _ := v.AsBigFloat().Int64()
	return int(i), true
}

func (b *ParameterBundle) Uint(name string) (uint, bool) {
	v, ok := b.values[name]
	if !ok || v.Type() != cty.Number {
		return 0, false
	}
	u, _ := v.AsBigFloat().Uint64()
	return uint(u), true
}

func (b *ParameterBundle) Float(name string) (float64, bool) {
	v, ok := b.values[name]
	if !ok || v.Type() != cty.Number {
		return 0, false
	}
	f, _ := v.AsBigFloat().Float64()
	return f, true
}

// Time returns a FieldDate property. Dates are held in the bundle in their
// canonical textual form.
func (b *ParameterBundle) Time(name string) (time.Time, bool) {
	s, ok := b.String(name)
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// parseDate accepts the canonical date form and, as a fallback, a full
// RFC3339 timestamp, which some tools write into DATE fields
func parseDate(text string) (time.Time, error) {
	if t, err := time.Parse(DateFormat, text); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, text)
}

// Dump renders the bundle contents for debug logging
func (b *ParameterBundle) Dump() string {
	return spew.Sdump(b.values)
}
