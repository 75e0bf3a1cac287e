package setup

import (
	"context"

	"github.com/bornholm/readings/internal/config"
	"github.com/bornholm/readings/internal/http"
	"github.com/bornholm/readings/internal/http/handler/metrics"
	"github.com/pkg/errors"
)

func NewHTTPServerFromConfig(ctx context.Context, conf *config.Config) (*http.Server, error) {
	api, err := getAPIHandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure api handler from config")
	}

	mongoClient, err := getMongoClientFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure mongodb client from config")
	}

	options := []http.OptionFunc{
		http.WithAddress(conf.HTTP.Address),
		http.WithMiddlewares(getMiddlewaresFromConfig(conf)...),
		http.WithMount("/", api),
		http.WithShutdownHook(func(ctx context.Context) error {
			return errors.WithStack(mongoClient.Disconnect(ctx))
		}),
	}

	if conf.HTTP.Metrics.Enabled {
		options = append(options, http.WithMount("/metrics/", metrics.NewHandler()))
	}

	server := http.NewServer(options...)

	return server, nil
}
