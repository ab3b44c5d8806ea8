package collector

import "context"

type Result[T any] struct {
	Result T
	Err    error
}

// Collector streams items in production order. The channel is closed when
// the source is exhausted, fails or the context ends.
type Collector[T any] interface {
	Collect(ctx context.Context) (<-chan Result[T], error)
}

// Drain reads every result into a slice and stops at the first error.
func Drain[T any](ctx context.Context, c Collector[T]) ([]T, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results, err := c.Collect(ctx)
	if err != nil {
		return nil, err
	}

	var items []T
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case res, ok := <-results:
			if !ok {
				return items, nil
			}
			if res.Err != nil {
				return nil, res.Err
			}
			items = append(items, res.Result)
		}
	}
}
