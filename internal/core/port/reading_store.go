package port

import (
	"context"

	"github.com/bornholm/readings/internal/core/model"
)

// ReadingStore gives read-only access to the stored readings.
type ReadingStore interface {
	// QueryRange returns every reading whose identifier lies within the given
	// range, bounds included, ordered by ascending identifier.
	QueryRange(ctx context.Context, rng model.IdentifierRange) ([]*model.Reading, error)

	// ValidateRange checks that both bounds are valid store identifiers
	// and that start <= end under the store native ordering.
	ValidateRange(rng model.IdentifierRange) error

	Ping(ctx context.Context) error
}
