package table

// Window is one page of an ordered dataset plus paging metadata.
type Window[R any] struct {
	Visible    []R
	Page       int
	TotalPages int
}

// Paginate slices one page out of sorted. Out-of-range page numbers are
// clamped silently, so a filter change that shrinks the dataset can never
// leave a view pointing past the end.
func Paginate[R any](sorted []R, page, size int) Window[R] {
	if size < 1 {
		size = 1
	}

	total := (len(sorted) + size - 1) / size
	if total < 1 {
		total = 1
	}

	if page < 1 {
		page = 1
	}
	if page > total {
		page = total
	}

	start := (page - 1) * size
	end := start + size
	if start > len(sorted) {
		start = len(sorted)
	}
	if end > len(sorted) {
		end = len(sorted)
	}

	return Window[R]{Visible: sorted[start:end], Page: page, TotalPages: total}
}
