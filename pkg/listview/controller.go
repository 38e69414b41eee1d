package listview

import (
	"fmt"
	"strings"

	"adminctl/pkg/paging"
)

// State is the fetch lifecycle of the collection snapshot.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateLoadError
)

// Mode is the screen's view mode, orthogonal to State.
type Mode int

const (
	ModeList Mode = iota
	ModeCreate
	ModeEdit
)

// Controller owns the list-screen state for one resource kind: the fetched
// collection, search term, current page, form draft, pending edit/delete
// targets, and any open dialog.
//
// I/O happens at the edges. A caller drives the machine as:
//
//	c.StartLoad()
//	records, err := client.List(ctx)  // at the I/O edge
//	c.FinishLoad(records, err)
//
// Pending targets hold value copies of records, never references into the
// snapshot, and are invalidated whenever the collection reloads.
type Controller[R any] struct {
	desc Descriptor[R]

	state   State
	loadErr string
	records []R

	search string
	page   int

	mode       Mode
	draft      Draft
	editTarget *R

	deleteTarget *R
	confirm      *Dialog
	alert        *Dialog
	mutating     bool
}

// New builds an idle controller with an empty snapshot on page 1.
func New[R any](desc Descriptor[R]) *Controller[R] {
	return &Controller[R]{desc: desc, page: 1, draft: Draft{}}
}

// Descriptor returns the capability set the controller was built with.
func (c *Controller[R]) Descriptor() Descriptor[R] { return c.desc }

// State returns the fetch lifecycle state.
func (c *Controller[R]) State() State { return c.state }

// Mode returns the current view mode.
func (c *Controller[R]) Mode() Mode { return c.mode }

// LoadError returns the user-facing message of the last failed load, or "".
func (c *Controller[R]) LoadError() string { return c.loadErr }

// Mutating reports whether a create, update, or delete is in flight.
func (c *Controller[R]) Mutating() bool { return c.mutating }

// StartLoad transitions into Loading. Call FinishLoad with the outcome.
func (c *Controller[R]) StartLoad() {
	c.state = StateLoading
	c.loadErr = ""
}

// FinishLoad applies a load outcome. Success replaces the collection
// snapshot wholesale and resets the page to 1; failure discards any previous
// snapshot so the view shows the error, not stale rows. Either way the old
// snapshot is gone, so pending targets, the confirm dialog, and any form in
// progress are invalidated with it.
func (c *Controller[R]) FinishLoad(records []R, err error) {
	if err != nil {
		c.state = StateLoadError
		c.loadErr = "Failed to fetch " + c.desc.Plural()
		c.records = nil
	} else {
		c.state = StateLoaded
		c.records = records
		c.page = 1
	}
	c.mode = ModeList
	c.draft = Draft{}
	c.editTarget = nil
	c.deleteTarget = nil
	c.confirm = nil
}

// Records returns the full collection snapshot.
func (c *Controller[R]) Records() []R { return c.records }

// Search returns the current search term.
func (c *Controller[R]) Search() string { return c.search }

// SetSearch updates the search term and resets the page to 1.
func (c *Controller[R]) SetSearch(term string) {
	c.search = term
	c.page = 1
}

// Filtered returns the records matching the current search term. The filter
// is always applied before paging.
func (c *Controller[R]) Filtered() []R {
	if strings.TrimSpace(c.search) == "" {
		return c.records
	}
	out := make([]R, 0, len(c.records))
	for _, r := range c.records {
		if c.desc.matches(r, c.search) {
			out = append(out, r)
		}
	}
	return out
}

// Window derives the pagination window over the filtered collection. The
// stored page is clamped on every derivation pass, so a filter that shrinks
// the collection can never surface an out-of-range page.
func (c *Controller[R]) Window() paging.Window {
	return paging.New(c.page, len(c.Filtered()), PageSize)
}

// Rows returns the visible page of the filtered collection.
func (c *Controller[R]) Rows() []R {
	return paging.Slice(c.Filtered(), c.Window())
}

// GoToPage navigates to page n, clamped into the valid range. Never triggers
// a reload.
func (c *Controller[R]) GoToPage(n int) {
	c.page = paging.Clamp(n, len(c.Filtered()), PageSize)
}

// EnterCreate switches to create mode with an empty draft.
func (c *Controller[R]) EnterCreate() {
	c.mode = ModeCreate
	c.draft = Draft{}
	c.editTarget = nil
}

// EnterEdit switches to edit mode with the draft populated from a snapshot
// copy of r.
func (c *Controller[R]) EnterEdit(r R) {
	c.mode = ModeEdit
	c.editTarget = &r
	if c.desc.FillDraft != nil {
		c.draft = c.desc.FillDraft(r)
	} else {
		c.draft = Draft{}
	}
}

// EditTarget returns the record being edited, if any.
func (c *Controller[R]) EditTarget() (R, bool) {
	if c.editTarget == nil {
		var zero R
		return zero, false
	}
	return *c.editTarget, true
}

// Draft returns the current form draft.
func (c *Controller[R]) Draft() Draft { return c.draft }

// SetField stores one draft value.
func (c *Controller[R]) SetField(name, value string) { c.draft.Set(name, value) }

// CancelForm leaves create/edit mode, discarding the draft.
func (c *Controller[R]) CancelForm() {
	c.mode = ModeList
	c.draft = Draft{}
	c.editTarget = nil
}

// SubmitDraft validates the draft against the form schema. A violation opens
// a validation alert and returns false without any network interaction.
// On success the controller marks a mutation in flight and returns true; the
// caller performs the create or update and applies the outcome with
// FinishMutation.
func (c *Controller[R]) SubmitDraft() bool {
	if err := c.desc.ValidateDraft(c.draft); err != nil {
		c.openAlert("Validation", err.Error())
		return false
	}
	c.mutating = true
	return true
}

// FinishMutation applies the outcome of a create or update. Success resets
// the draft, returns to list mode, and reports that a reload is due. Failure
// opens an alert with a generic message while keeping mode and draft intact
// so the user can retry the same form state.
func (c *Controller[R]) FinishMutation(err error) (reload bool) {
	c.mutating = false
	if err != nil {
		verb := "create"
		if c.mode == ModeEdit {
			verb = "update"
		}
		c.openAlert("Error", fmt.Sprintf("Failed to %s %s", verb, c.desc.Name))
		return false
	}
	c.draft = Draft{}
	c.mode = ModeList
	c.editTarget = nil
	return true
}

// RequestDelete records r as the delete target and opens the confirmation
// dialog. No server interaction happens yet.
func (c *Controller[R]) RequestDelete(r R) {
	c.deleteTarget = &r
	c.confirm = NewConfirm(
		fmt.Sprintf("Delete %s?", c.desc.Name),
		fmt.Sprintf("%q will be permanently removed.", c.desc.DisplayName(r)),
		func() { c.beginDelete() },
		func() { c.CancelDelete() },
	)
}

// Confirm returns the open confirmation dialog, or nil.
func (c *Controller[R]) Confirm() *Dialog { return c.confirm }

// DeleteTarget returns the pending delete target, if any.
func (c *Controller[R]) DeleteTarget() (R, bool) {
	if c.deleteTarget == nil {
		var zero R
		return zero, false
	}
	return *c.deleteTarget, true
}

// ConfirmDelete acknowledges the confirmation dialog and hands back the
// target for the caller to delete at the I/O edge. It returns false when no
// confirmation is pending or a delete is already in flight.
func (c *Controller[R]) ConfirmDelete() (R, bool) {
	if c.deleteTarget == nil || c.confirm == nil || c.confirm.Loading {
		var zero R
		return zero, false
	}
	c.beginDelete()
	return *c.deleteTarget, true
}

func (c *Controller[R]) beginDelete() {
	if c.confirm == nil {
		return
	}
	c.confirm.Loading = true
	c.confirm.Error = ""
	c.mutating = true
}

// CancelDelete clears the delete target and closes the dialog without server
// interaction. Suppressed while the delete is in flight.
func (c *Controller[R]) CancelDelete() {
	if c.confirm != nil && c.confirm.Loading {
		return
	}
	c.deleteTarget = nil
	c.confirm = nil
}

// FinishDelete applies the outcome of a confirmed delete. Success clears the
// target, closes the dialog, and reports that a reload is due. Failure keeps
// the dialog open with the error shown; it does not close silently.
func (c *Controller[R]) FinishDelete(err error) (reload bool) {
	c.mutating = false
	if err != nil {
		if c.confirm != nil {
			c.confirm.Loading = false
			c.confirm.Error = fmt.Sprintf("Failed to delete %s", c.desc.Name)
		}
		return false
	}
	c.deleteTarget = nil
	c.confirm = nil
	return true
}

// Alert returns the open alert dialog, or nil.
func (c *Controller[R]) Alert() *Dialog { return c.alert }

func (c *Controller[R]) openAlert(title, message string) {
	c.alert = NewAlert(title, message, func() { c.alert = nil })
}
