package paging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adminctl/pkg/paging"
)

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total, size, want int
	}{
		{0, 5, 1},
		{1, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{7, 5, 2},
		{10, 5, 2},
		{11, 5, 3},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, paging.TotalPages(tc.total, tc.size), "total=%d size=%d", tc.total, tc.size)
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1, paging.Clamp(0, 7, 5))
	assert.Equal(t, 1, paging.Clamp(-3, 7, 5))
	assert.Equal(t, 2, paging.Clamp(9, 7, 5))
	assert.Equal(t, 2, paging.Clamp(2, 7, 5))
	assert.Equal(t, 1, paging.Clamp(4, 0, 5))
}

func TestWindowSevenItems(t *testing.T) {
	w := paging.New(1, 7, 5)
	assert.Equal(t, 1, w.Start)
	assert.Equal(t, 5, w.End)
	assert.Equal(t, 7, w.Total)
	assert.Equal(t, 2, w.TotalPages)
	assert.False(t, w.HasPrev())
	assert.True(t, w.HasNext())

	w = paging.New(2, 7, 5)
	assert.Equal(t, 6, w.Start)
	assert.Equal(t, 7, w.End)
	assert.True(t, w.HasPrev())
	assert.False(t, w.HasNext())
}

func TestWindowEmpty(t *testing.T) {
	w := paging.New(1, 0, 5)
	assert.Equal(t, 1, w.Page)
	assert.Equal(t, 1, w.TotalPages)
	assert.Equal(t, 0, w.Start)
	assert.Equal(t, 0, w.End)
	assert.False(t, w.HasPrev())
	assert.False(t, w.HasNext())
}

func TestNavigationTargets(t *testing.T) {
	w := paging.New(1, 12, 5)
	assert.Equal(t, 1, w.Prev(), "previous disabled at page 1")
	assert.Equal(t, 2, w.Next())

	w = paging.New(3, 12, 5)
	assert.Equal(t, 2, w.Prev())
	assert.Equal(t, 3, w.Next(), "next disabled at the last page")
}

func TestSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	require.Equal(t, []int{1, 2, 3, 4, 5}, paging.Slice(items, paging.New(1, len(items), 5)))
	require.Equal(t, []int{6, 7}, paging.Slice(items, paging.New(2, len(items), 5)))
	require.Empty(t, paging.Slice([]int{}, paging.New(1, 0, 5)))
}
