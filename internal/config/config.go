package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

type Config struct {
	Logger  Logger  `envPrefix:"READINGS_LOGGER_"`
	HTTP    HTTP    `envPrefix:"READINGS_HTTP_"`
	Catalog Catalog `envPrefix:"READINGS_CATALOG_"`
	Sentry  Sentry  `envPrefix:"READINGS_SENTRY_"`
	Store   Store
}

// Parse reads the configuration from the environment. Store variables are
// not prefixed to stay compatible with existing deployments.
func Parse() (*Config, error) {
	conf, err := env.ParseAs[Config]()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &conf, nil
}
