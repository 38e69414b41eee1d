package listview_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adminctl/pkg/listview"
)

type item struct {
	ID   int
	Name string
}

func descriptor() listview.Descriptor[item] {
	return listview.Descriptor[item]{
		Name:        "item",
		Title:       "Item Management",
		ID:          func(i item) string { return fmt.Sprint(i.ID) },
		DisplayName: func(i item) string { return i.Name },
		Fields: []listview.Field{
			{Name: "name", Label: "Item name", Kind: listview.FieldText, Required: true},
			{Name: "price", Label: "Price", Kind: listview.FieldNumber},
		},
		FillDraft: func(i item) listview.Draft {
			return listview.Draft{"name": i.Name}
		},
	}
}

func items(n int) []item {
	out := make([]item, n)
	for i := range out {
		out[i] = item{ID: i + 1, Name: fmt.Sprintf("item-%02d", i+1)}
	}
	return out
}

func loaded(t *testing.T, n int) *listview.Controller[item] {
	t.Helper()
	c := listview.New(descriptor())
	c.StartLoad()
	require.Equal(t, listview.StateLoading, c.State())
	c.FinishLoad(items(n), nil)
	require.Equal(t, listview.StateLoaded, c.State())
	return c
}

func TestLoadFailureDiscardsSnapshot(t *testing.T) {
	c := loaded(t, 3)
	require.Len(t, c.Records(), 3)

	c.StartLoad()
	c.FinishLoad(nil, errors.New("boom"))

	assert.Equal(t, listview.StateLoadError, c.State())
	assert.Equal(t, "Failed to fetch items", c.LoadError())
	assert.Empty(t, c.Records(), "the error view must not show stale rows")
}

func TestReloadResetsPageAndTargets(t *testing.T) {
	c := loaded(t, 12)
	c.GoToPage(3)
	c.RequestDelete(items(12)[0])
	require.NotNil(t, c.Confirm())

	c.StartLoad()
	c.FinishLoad(items(6), nil)

	assert.Equal(t, 1, c.Window().Page)
	assert.Nil(t, c.Confirm(), "pending targets do not survive a reload")
	_, ok := c.DeleteTarget()
	assert.False(t, ok)
}

func TestFailedReloadClearsPendingDelete(t *testing.T) {
	c := loaded(t, 3)
	c.RequestDelete(c.Records()[1])
	require.NotNil(t, c.Confirm())

	c.StartLoad()
	c.FinishLoad(nil, errors.New("boom"))

	assert.Equal(t, listview.StateLoadError, c.State())
	assert.Nil(t, c.Confirm(), "a failed reload discards the target with the snapshot")
	_, ok := c.DeleteTarget()
	assert.False(t, ok)
}

func TestReloadLeavesFormMode(t *testing.T) {
	c := loaded(t, 3)
	c.EnterEdit(c.Records()[0])
	c.SetField("name", "renamed")

	c.StartLoad()
	c.FinishLoad(items(3), nil)

	assert.Equal(t, listview.ModeList, c.Mode(), "the edited record may be gone from the new snapshot")
	assert.Empty(t, c.Draft())
	_, ok := c.EditTarget()
	assert.False(t, ok)

	// Same for a failed reload while a create is in progress.
	c.EnterCreate()
	c.SetField("name", "fresh")
	c.StartLoad()
	c.FinishLoad(nil, errors.New("boom"))

	assert.Equal(t, listview.ModeList, c.Mode())
	assert.Empty(t, c.Draft())
}

func TestSevenItemsTwoPages(t *testing.T) {
	c := loaded(t, 7)

	w := c.Window()
	assert.Equal(t, 2, w.TotalPages)
	assert.Equal(t, 1, w.Start)
	assert.Equal(t, 5, w.End)
	assert.Equal(t, 7, w.Total)
	require.Len(t, c.Rows(), 5)
	assert.Equal(t, "item-01", c.Rows()[0].Name)

	c.GoToPage(2)
	w = c.Window()
	assert.Equal(t, 6, w.Start)
	assert.Equal(t, 7, w.End)
	require.Len(t, c.Rows(), 2)
	assert.Equal(t, "item-06", c.Rows()[0].Name)
}

func TestGoToPageClamps(t *testing.T) {
	c := loaded(t, 7)

	c.GoToPage(99)
	assert.Equal(t, 2, c.Window().Page)

	c.GoToPage(-1)
	assert.Equal(t, 1, c.Window().Page)
}

func TestSearchFiltersAndResetsPage(t *testing.T) {
	c := loaded(t, 12)
	c.GoToPage(3)

	c.SetSearch("  ITEM-1  ")

	w := c.Window()
	assert.Equal(t, 1, w.Page, "changing the search term resets the page")
	// item-10..item-12 match "item-1".
	assert.Equal(t, 3, w.Total)

	// Filtering is idempotent.
	first := c.Filtered()
	c.SetSearch("  ITEM-1  ")
	assert.Equal(t, first, c.Filtered())
}

func TestSearchNoMatches(t *testing.T) {
	c := loaded(t, 7)
	c.SetSearch("abc")

	w := c.Window()
	assert.Equal(t, 1, w.Page)
	assert.Equal(t, 1, w.TotalPages)
	assert.Empty(t, c.Rows())
}

func TestShrinkingFilterReclampsPage(t *testing.T) {
	c := loaded(t, 30)
	c.GoToPage(6)
	require.Equal(t, 6, c.Window().Page)

	// A filter that shrinks the collection below the current page can never
	// surface an out-of-range window.
	c.SetSearch("item-0") // nine matches, two pages
	assert.Equal(t, 1, c.Window().Page)

	c.GoToPage(2)
	assert.Equal(t, 2, c.Window().Page)
	w := c.Window()
	assert.Equal(t, 9, w.Total)
	assert.Equal(t, 2, w.TotalPages)
}

func TestCreateFlow(t *testing.T) {
	c := loaded(t, 2)

	c.EnterCreate()
	assert.Equal(t, listview.ModeCreate, c.Mode())
	assert.Empty(t, c.Draft())

	c.SetField("name", "fresh")
	require.True(t, c.SubmitDraft())
	assert.True(t, c.Mutating())

	reload := c.FinishMutation(nil)
	assert.True(t, reload)
	assert.Equal(t, listview.ModeList, c.Mode())
	assert.Empty(t, c.Draft())
	assert.False(t, c.Mutating())
}

func TestSubmitEmptyNameRaisesAlert(t *testing.T) {
	c := loaded(t, 2)
	c.EnterCreate()
	c.SetField("name", "   ")

	require.False(t, c.SubmitDraft(), "no request may be issued")
	assert.False(t, c.Mutating())

	alert := c.Alert()
	require.NotNil(t, alert)
	assert.True(t, alert.AlertOnly())
	assert.Contains(t, alert.Description, "Item name is required")
	assert.Equal(t, listview.ModeCreate, c.Mode())

	alert.Confirm()
	assert.Nil(t, c.Alert())
}

func TestSubmitNegativePriceRaisesAlert(t *testing.T) {
	c := loaded(t, 2)
	c.EnterCreate()
	c.SetField("name", "thing")
	c.SetField("price", "-3")

	require.False(t, c.SubmitDraft())
	require.NotNil(t, c.Alert())
	assert.Contains(t, c.Alert().Description, "Price must be a non-negative number")
}

func TestMutationFailureKeepsFormState(t *testing.T) {
	c := loaded(t, 2)
	c.EnterEdit(items(2)[1])
	require.Equal(t, listview.ModeEdit, c.Mode())
	assert.Equal(t, "item-02", c.Draft().Get("name"))

	c.SetField("name", "renamed")
	require.True(t, c.SubmitDraft())

	reload := c.FinishMutation(errors.New("boom"))
	assert.False(t, reload)
	assert.Equal(t, listview.ModeEdit, c.Mode(), "the user can retry the same form")
	assert.Equal(t, "renamed", c.Draft().Get("name"))
	require.NotNil(t, c.Alert())
	assert.Contains(t, c.Alert().Description, "Failed to update item")
}

func TestEditDraftIsASnapshotCopy(t *testing.T) {
	c := loaded(t, 2)
	record := c.Records()[0]
	c.EnterEdit(record)

	c.SetField("name", "changed")
	assert.Equal(t, "item-01", c.Records()[0].Name, "draft edits never touch the snapshot")

	target, ok := c.EditTarget()
	require.True(t, ok)
	assert.Equal(t, "item-01", target.Name)
}

func TestCancelFormResetsDraft(t *testing.T) {
	c := loaded(t, 2)
	c.EnterEdit(items(2)[0])
	c.SetField("name", "dirty")

	c.CancelForm()

	assert.Equal(t, listview.ModeList, c.Mode())
	assert.Empty(t, c.Draft())
	_, ok := c.EditTarget()
	assert.False(t, ok)
}

func TestDeleteCancelSendsNothing(t *testing.T) {
	c := loaded(t, 3)
	c.RequestDelete(c.Records()[1])

	d := c.Confirm()
	require.NotNil(t, d)
	assert.False(t, d.AlertOnly())

	d.Cancel()

	assert.Nil(t, c.Confirm())
	_, ok := c.DeleteTarget()
	assert.False(t, ok)
	assert.Len(t, c.Records(), 3, "collection snapshot unchanged")
}

func TestDeleteConfirmFlow(t *testing.T) {
	c := loaded(t, 3)
	c.RequestDelete(c.Records()[2])

	target, ok := c.ConfirmDelete()
	require.True(t, ok)
	assert.Equal(t, 3, target.ID)
	assert.True(t, c.Mutating())
	assert.True(t, c.Confirm().Loading)

	// Dismissal is suppressed while the delete is in flight.
	c.Confirm().Dismiss()
	require.NotNil(t, c.Confirm())

	reload := c.FinishDelete(nil)
	assert.True(t, reload)
	assert.Nil(t, c.Confirm())
	_, ok = c.DeleteTarget()
	assert.False(t, ok)
}

func TestDeleteFailureKeepsDialogOpen(t *testing.T) {
	c := loaded(t, 3)
	c.RequestDelete(c.Records()[0])
	_, ok := c.ConfirmDelete()
	require.True(t, ok)

	reload := c.FinishDelete(errors.New("boom"))

	assert.False(t, reload)
	d := c.Confirm()
	require.NotNil(t, d, "the dialog must not close silently on failure")
	assert.False(t, d.Loading)
	assert.Contains(t, d.Error, "Failed to delete item")

	// The user can back out after the failure.
	d.Cancel()
	assert.Nil(t, c.Confirm())
}

func TestConfirmDeleteWithoutPendingTarget(t *testing.T) {
	c := loaded(t, 1)
	_, ok := c.ConfirmDelete()
	assert.False(t, ok)
}
