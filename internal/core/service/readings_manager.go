package service

import (
	"context"
	"log/slog"

	"github.com/bornholm/readings/internal/core/model"
	"github.com/bornholm/readings/internal/core/port"
	"github.com/bornholm/readings/internal/metrics"
	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
)

var ErrInvalidItem = errors.New("invalid item")

// ReadingsManager retrieves the readings of the items known by its catalog.
// It holds no mutable state and is safe for concurrent use.
type ReadingsManager struct {
	catalog port.Catalog
	store   port.ReadingStore
}

// GetReadings returns every reading stored for the given item, ordered by
// ascending identifier. The store is not queried for unknown items.
func (m *ReadingsManager) GetReadings(ctx context.Context, item model.ItemName) (*model.ReadingsResult, error) {
	if item == "" {
		metrics.Requests.With(requestLabels("", metrics.StatusInvalidItem)).Inc()
		return nil, errors.Wrap(ErrInvalidItem, "item must not be empty")
	}

	rng, exists := m.catalog.Lookup(item)
	if !exists {
		metrics.Requests.With(requestLabels("", metrics.StatusInvalidItem)).Inc()
		return nil, errors.Wrapf(port.ErrNotFound, "Invalid item: %s", item)
	}

	slog.DebugContext(ctx, "retrieving readings", slog.String("item", string(item)), slog.String("range", rng.String()))

	readings, err := m.store.QueryRange(ctx, rng)
	if err != nil {
		metrics.Requests.With(requestLabels(item, metrics.StatusFailure)).Inc()
		sentry.CaptureException(err)
		return nil, errors.Wrapf(err, "could not query readings of item '%s'", item)
	}

	metrics.Requests.With(requestLabels(item, metrics.StatusSuccess)).Inc()
	metrics.ReturnedReadings.With(itemLabels(item)).Observe(float64(len(readings)))

	return model.NewReadingsResult(item, readings), nil
}

func (m *ReadingsManager) Ping(ctx context.Context) error {
	if err := m.store.Ping(ctx); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func NewReadingsManager(catalog port.Catalog, store port.ReadingStore) *ReadingsManager {
	return &ReadingsManager{
		catalog: catalog,
		store:   store,
	}
}
