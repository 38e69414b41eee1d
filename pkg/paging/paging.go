// Package paging provides the pure windowing math behind paginated list
// views: total page counts, row ranges, and previous/next navigation targets.
// It performs no clamping across external events; callers own re-clamping the
// current page when the underlying collection or filter changes.
package paging

// Window describes one page of a collection of Total items split into pages
// of Size. Start and End are 1-based inclusive row counters for display
// ("Showing 3-7 of 12"); both are zero when the collection is empty.
type Window struct {
	Page       int
	Size       int
	Total      int
	TotalPages int
	Start      int
	End        int
}

// TotalPages returns max(1, ceil(total/size)). A zero-item collection still
// has one (empty) page.
func TotalPages(total, size int) int {
	if size < 1 {
		return 1
	}
	pages := (total + size - 1) / size
	if pages < 1 {
		return 1
	}
	return pages
}

// Clamp forces page into [1, TotalPages(total, size)].
func Clamp(page, total, size int) int {
	if page < 1 {
		return 1
	}
	if max := TotalPages(total, size); page > max {
		return max
	}
	return page
}

// New computes the window for page over total items. page is clamped first,
// so an out-of-range request never yields an out-of-range window.
func New(page, total, size int) Window {
	page = Clamp(page, total, size)
	w := Window{
		Page:       page,
		Size:       size,
		Total:      total,
		TotalPages: TotalPages(total, size),
	}
	if total > 0 {
		w.Start = (page-1)*size + 1
		w.End = page * size
		if w.End > total {
			w.End = total
		}
	}
	return w
}

// Offset returns the 0-based index of the window's first row.
func (w Window) Offset() int {
	if w.Total == 0 {
		return 0
	}
	return w.Start - 1
}

// HasPrev reports whether a previous page exists.
func (w Window) HasPrev() bool { return w.Page > 1 }

// HasNext reports whether a next page exists.
func (w Window) HasNext() bool { return w.Page < w.TotalPages }

// Prev is the navigation target for "Previous": max(1, page-1).
func (w Window) Prev() int {
	if w.Page <= 1 {
		return 1
	}
	return w.Page - 1
}

// Next is the navigation target for "Next": min(totalPages, page+1).
func (w Window) Next() int {
	if w.Page >= w.TotalPages {
		return w.TotalPages
	}
	return w.Page + 1
}

// Slice returns the window's rows out of the full (already filtered)
// collection.
func Slice[T any](items []T, w Window) []T {
	if len(items) == 0 {
		return items
	}
	start := w.Offset()
	end := start + w.Size
	if start > len(items) {
		return nil
	}
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
