package setup

import (
	"context"

	"github.com/bornholm/readings/internal/config"
	"github.com/bornholm/readings/internal/core/service"
	"github.com/pkg/errors"
)

var getReadingsManagerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.ReadingsManager, error) {
	items, err := getCatalogFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create catalog from config")
	}

	store, err := getReadingStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create reading store from config")
	}

	return service.NewReadingsManager(items, store), nil
})
