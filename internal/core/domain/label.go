// Package domain contains the core value types used to describe a single
// build-tool invocation: targets, kinds, execution modes and argument vectors.
package domain

import (
	"strings"
	"unique"
)

// Label identifies a single addressable build target (e.g. "//pkg/path:name").
// It is an opaque, immutable value object; no syntax validation is performed.
// Labels are interned since the same handful of targets is referenced
// repeatedly by resolvers, caches and the command builder.
type Label struct {
	h unique.Handle[string]
}

// NewLabel creates a Label from its string form.
func NewLabel(s string) Label {
	return Label{h: unique.Make(s)}
}

// NewLabels converts a slice of strings into Labels, preserving order.
func NewLabels(ss []string) []Label {
	labels := make([]Label, len(ss))
	for i, s := range ss {
		labels[i] = NewLabel(s)
	}
	return labels
}

// String returns the label exactly as it was constructed.
func (l Label) String() string {
	var zero unique.Handle[string]
	if l.h == zero {
		return ""
	}
	return l.h.Value()
}

// IsZero reports whether the label was never set.
func (l Label) IsZero() bool {
	var zero unique.Handle[string]
	return l.h == zero
}

// TargetName returns the rule name portion of the label.
// For "//pkg:rule" it is "rule"; for "//pkg/rule" (implicit name) it is the
// last path element.
func (l Label) TargetName() string {
	s := l.String()
	if i := strings.LastIndex(s, ":"); i >= 0 {
		return s[i+1:]
	}
	if i := strings.LastIndex(s, "/"); i >= 0 {
		return s[i+1:]
	}
	return s
}

// MarshalText implements encoding.TextMarshaler.
func (l Label) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Label) UnmarshalText(text []byte) error {
	l.h = unique.Make(string(text))
	return nil
}
