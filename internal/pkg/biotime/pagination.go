package biotime

import "context"

// Page is the envelope the upstream wraps every collection response in.
type Page[T any] struct {
	Count int     `json:"count"`
	Next  *string `json:"next"`
	Data  []T     `json:"data"`
}

// HasNext reports whether another page should be requested.
func (p Page[T]) HasNext() bool {
	return p.Next != nil && *p.Next != ""
}

// collectAll drains a paginated collection, calling fetch with increasing
// page numbers until an empty page or a missing next link. Any retry or
// backoff policy belongs inside fetch, not here.
func collectAll[T any](ctx context.Context, fetch func(ctx context.Context, page int) (Page[T], error)) ([]T, error) {
	var all []T
	for page := 1; ; page++ {
		p, err := fetch(ctx, page)
		if err != nil {
			return nil, err
		}
		if len(p.Data) == 0 {
			break
		}
		all = append(all, p.Data...)
		if !p.HasNext() {
			break
		}
	}
	return all, nil
}
