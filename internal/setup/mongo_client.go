package setup

import (
	"context"
	"log/slog"
	"time"

	"github.com/bornholm/readings/internal/config"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const mongoPingTimeout = 10 * time.Second

var getMongoClientFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(conf.Store.URI))
	if err != nil {
		return nil, errors.Wrap(err, "could not create mongodb client")
	}

	pingCtx, cancel := context.WithTimeout(ctx, mongoPingTimeout)
	defer cancel()

	// The store may become reachable later, connections are established lazily
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		slog.WarnContext(ctx, "could not reach mongodb", slog.Any("error", errors.WithStack(err)))
	}

	return client, nil
})
