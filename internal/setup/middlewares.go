package setup

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/readings/internal/config"
	httpServer "github.com/bornholm/readings/internal/http"
	"github.com/bornholm/readings/internal/http/middleware/ratelimit"
	"github.com/rs/cors"
	sloghttp "github.com/samber/slog-http"
)

func getMiddlewaresFromConfig(conf *config.Config) []httpServer.Middleware {
	middlewares := []httpServer.Middleware{
		sloghttp.NewWithConfig(slog.Default(), sloghttp.Config{
			DefaultLevel:     slog.LevelInfo,
			ClientErrorLevel: slog.LevelWarn,
			ServerErrorLevel: slog.LevelError,
			WithRequestID:    true,
		}),
		sloghttp.Recovery,
		newCORSMiddleware(conf.HTTP.CORS),
	}

	if conf.HTTP.RateLimit.Enabled {
		middlewares = append(middlewares, ratelimit.Middleware(ratelimit.Options{
			TrustHeaders: conf.HTTP.RateLimit.TrustHeaders,
			Interval:     conf.HTTP.RateLimit.Interval,
			MaxBurst:     conf.HTTP.RateLimit.MaxBurst,
			CacheSize:    conf.HTTP.RateLimit.CacheSize,
			CacheTTL:     conf.HTTP.RateLimit.CacheTTL,
		}))
	}

	return middlewares
}

// newCORSMiddleware only allows the configured origin, with any method and
// header, credentials included.
func newCORSMiddleware(conf config.CORS) httpServer.Middleware {
	c := cors.New(cors.Options{
		AllowedOrigins: []string{conf.AllowedOrigin},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		Debug:            conf.Debug,
	})

	return c.Handler
}
