package setup

import (
	"context"
	"sync"

	"github.com/bornholm/readings/internal/config"
)

// createFromConfigOnce returns a getter creating its value on first call.
// Subsequent calls return the same value, or the same error.
func createFromConfigOnce[T any](factory func(ctx context.Context, conf *config.Config) (T, error)) func(ctx context.Context, conf *config.Config) (T, error) {
	var (
		once  sync.Once
		value T
		err   error
	)

	return func(ctx context.Context, conf *config.Config) (T, error) {
		once.Do(func() {
			value, err = factory(ctx, conf)
		})

		return value, err
	}
}
