package setup

import (
	"context"

	"github.com/bornholm/readings/internal/config"
	"github.com/bornholm/readings/internal/http/handler/api"
	"github.com/pkg/errors"
)

func getAPIHandlerFromConfig(ctx context.Context, conf *config.Config) (*api.Handler, error) {
	readingsManager, err := getReadingsManagerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return api.NewHandler(readingsManager), nil
}
