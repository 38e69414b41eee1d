// Package listview implements the state machine behind a resource list
// screen: fetch lifecycle, search filtering, pagination windowing, form
// drafts, and confirm/alert dialog orchestration. The same machine serves
// every resource kind; a [Descriptor] supplies the per-kind capabilities.
//
// The controller is pure state. It never performs I/O itself: callers start
// an operation, run the network call at the edge, and apply the outcome
// through the Finish methods. This keeps the machine testable with no
// transport and maps directly onto message-driven front ends.
package listview

import (
	"fmt"
	"strconv"
	"strings"
)

// PageSize is the fixed number of rows per page.
const PageSize = 5

// FieldKind selects the input widget and validation for a form field.
type FieldKind int

const (
	// FieldText is a free-form single-line string.
	FieldText FieldKind = iota
	// FieldNumber accepts a non-negative integer.
	FieldNumber
	// FieldFile holds a local file path to upload before submitting.
	FieldFile
)

// Field describes one entry of a resource's form schema.
type Field struct {
	Name     string
	Label    string
	Kind     FieldKind
	Required bool
}

// Draft holds the transient, uncommitted form values keyed by field name.
type Draft map[string]string

// Get returns the draft value for name, or "".
func (d Draft) Get(name string) string { return d[name] }

// Set stores a draft value.
func (d Draft) Set(name, value string) { d[name] = value }

// Descriptor is the capability set that parameterizes a Controller for one
// resource kind.
type Descriptor[R any] struct {
	// Name is the singular resource name, e.g. "user".
	Name string
	// Title heads the list screen, e.g. "User Management".
	Title string
	// ID returns the record's stable identifier in display form.
	ID func(R) string
	// DisplayName returns the name shown in rows and matched by search.
	DisplayName func(R) string
	// Match overrides the search predicate. Nil means case-insensitive
	// substring match against DisplayName with the term trimmed.
	Match func(R, string) bool
	// Fields is the form schema shared by create and edit.
	Fields []Field
	// FillDraft snapshots a record's current values into an edit draft.
	FillDraft func(R) Draft
}

// Plural returns the plural resource name used in messages.
func (d Descriptor[R]) Plural() string { return d.Name + "s" }

func (d Descriptor[R]) matches(r R, term string) bool {
	if d.Match != nil {
		return d.Match(r, term)
	}
	return strings.Contains(
		strings.ToLower(d.DisplayName(r)),
		strings.ToLower(strings.TrimSpace(term)),
	)
}

// ValidateDraft checks draft against the form schema: required fields must be
// non-empty after trimming, and number fields must parse as non-negative
// integers. The first violation is returned.
func (d Descriptor[R]) ValidateDraft(draft Draft) error {
	for _, f := range d.Fields {
		value := strings.TrimSpace(draft.Get(f.Name))
		if f.Required && value == "" {
			return fmt.Errorf("%s is required", f.Label)
		}
		if f.Kind == FieldNumber && value != "" {
			n, err := strconv.ParseInt(value, 10, 64)
			if err != nil || n < 0 {
				return fmt.Errorf("%s must be a non-negative number", f.Label)
			}
		}
	}
	return nil
}
