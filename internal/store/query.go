package store

import "strconv"

const (
	defaultLimit = 50
	maxLimit     = 1000
)

// Page is a limit/offset window over a result list.
type Page struct {
	Limit  int // default 50, capped at 1000
	Offset int
}

// ParsePage builds a Page from raw limit and offset query values. Invalid or
// missing values fall back to the defaults.
func ParsePage(limit, offset string) Page {
	var p Page
	if v, err := strconv.Atoi(limit); err == nil {
		p.Limit = v
	}
	if v, err := strconv.Atoi(offset); err == nil {
		p.Offset = v
	}
	return p
}

// bounds returns the [start, end) slice indexes of the page within n items.
func (p Page) bounds(n int) (start, end int) {
	limit := p.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	start = max(p.Offset, 0)
	if start > n {
		start = n
	}
	end = min(start+limit, n)
	return start, end
}

func paginate[T any](items []T, p Page) []T {
	start, end := p.bounds(len(items))
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}
