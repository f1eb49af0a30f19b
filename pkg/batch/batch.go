// Package batch splits a list into pages that fit the request size limit of
// the GitHub Checks API.
package batch

// MaxAnnotations is the maximum number of annotations a single check run
// update can carry.
const MaxAnnotations = 50

// Split splits items into contiguous pages of at most size elements,
// preserving order. It never returns an empty page, so an empty input yields
// no page at all. If size isn't positive, all items are returned as one page.
func Split[T any](items []T, size int) [][]T {
	if len(items) == 0 {
		return nil
	}
	if size <= 0 {
		return [][]T{items}
	}
	pages := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		pages = append(pages, items[start:end:end])
	}
	return pages
}
