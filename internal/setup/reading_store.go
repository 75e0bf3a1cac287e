package setup

import (
	"context"

	mongoAdapter "github.com/bornholm/readings/internal/adapter/mongo"
	"github.com/bornholm/readings/internal/config"
	"github.com/bornholm/readings/internal/core/port"
	"github.com/pkg/errors"
)

var getReadingStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (port.ReadingStore, error) {
	client, err := getMongoClientFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	collection := client.Database(conf.Store.Database).Collection(conf.Store.Collection)

	return mongoAdapter.NewReadingStore(collection), nil
})
