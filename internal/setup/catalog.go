package setup

import (
	"context"
	"log/slog"

	"github.com/bornholm/readings/internal/catalog"
	"github.com/bornholm/readings/internal/config"
	"github.com/pkg/errors"
)

var getCatalogFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*catalog.Catalog, error) {
	var (
		items *catalog.Catalog
		err   error
	)

	if conf.Catalog.File != "" {
		items, err = catalog.Load(conf.Catalog.File)
	} else {
		items, err = catalog.Default()
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}

	store, err := getReadingStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := items.Validate(store.ValidateRange); err != nil {
		return nil, errors.WithStack(err)
	}

	names := make([]string, 0, items.Len())
	for _, n := range items.Names() {
		names = append(names, string(n))
	}

	slog.InfoContext(ctx, "catalog loaded", slog.Any("items", names))

	return items, nil
})
