package config

import "time"

type HTTP struct {
	Address   string    `env:"ADDRESS,expand" envDefault:":8000"`
	CORS      CORS      `envPrefix:"CORS_"`
	Metrics   Metrics   `envPrefix:"METRICS_"`
	RateLimit RateLimit `envPrefix:"RATE_LIMIT_"`
}

type CORS struct {
	AllowedOrigin string `env:"ALLOWED_ORIGIN,expand" envDefault:"https://temperature-dashboard-eosin.vercel.app"`
	Debug         bool   `env:"DEBUG,expand" envDefault:"false"`
}

type Metrics struct {
	Enabled bool `env:"ENABLED,expand" envDefault:"true"`
}

type RateLimit struct {
	Enabled      bool          `env:"ENABLED,expand" envDefault:"false"`
	TrustHeaders bool          `env:"TRUST_HEADERS,expand" envDefault:"false"`
	Interval     time.Duration `env:"INTERVAL,expand" envDefault:"100ms"`
	MaxBurst     int           `env:"MAX_BURST,expand" envDefault:"20"`
	CacheSize    int           `env:"CACHE_SIZE,expand" envDefault:"1024"`
	CacheTTL     time.Duration `env:"CACHE_TTL,expand" envDefault:"10m"`
}
