package entities

import (
	"fmt"
	"strings"
)

// LocatorKind defines how a target element is looked up on the page
type LocatorKind string

const (
	ByRole        LocatorKind = "role"
	ByLabel       LocatorKind = "label"
	ByPlaceholder LocatorKind = "placeholder"
	ByText        LocatorKind = "text"
	BySelector    LocatorKind = "selector"
)

// Target describes a UI element to act on
type Target struct {
	By     LocatorKind `json:"by" yaml:"by"`
	Role   string      `json:"role,omitempty" yaml:"role,omitempty"`   // aria role, only for ByRole
	Value  string      `json:"value,omitempty" yaml:"value,omitempty"` // accessible name, label, placeholder, text or css selector
	Regexp bool        `json:"regexp,omitempty" yaml:"regexp,omitempty"`
	Exact  bool        `json:"exact,omitempty" yaml:"exact,omitempty"`
	First  bool        `json:"first,omitempty" yaml:"first,omitempty"`
}

// RoleTarget - targets an element by aria role and accessible name
func RoleTarget(role, name string) *Target {
	return &Target{By: ByRole, Role: role, Value: name}
}

// LabelTarget - targets a form control by its label text
func LabelTarget(label string) *Target {
	return &Target{By: ByLabel, Value: label}
}

// PlaceholderTarget - targets an input by its placeholder
func PlaceholderTarget(placeholder string) *Target {
	return &Target{By: ByPlaceholder, Value: placeholder}
}

// TextTarget - targets an element by the text it contains
func TextTarget(text string) *Target {
	return &Target{By: ByText, Value: text}
}

func (t *Target) String() string {
	if t == nil {
		return "<no target>"
	}
	var b strings.Builder
	b.WriteString(string(t.By))
	if t.By == ByRole {
		fmt.Fprintf(&b, "=%s", t.Role)
	}
	if t.Value != "" {
		if t.Regexp {
			fmt.Fprintf(&b, "[/%s/]", t.Value)
		} else {
			fmt.Fprintf(&b, "[%q]", t.Value)
		}
	}
	if t.First {
		b.WriteString(".first")
	}
	return b.String()
}
