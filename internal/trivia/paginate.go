package trivia

// DefaultPageSize is the number of questions returned per listing page.
const DefaultPageSize = 10

// Paginate returns the 1-based page p of items with the given page size.
// Pages past the end of the data come back empty; the caller decides whether
// an empty page is a not-found condition. Page numbers below 1 fall back
// to the first page.
func Paginate[T any](items []T, page, size int) []T {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	start := (page - 1) * size
	if start >= len(items) {
		return nil
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
