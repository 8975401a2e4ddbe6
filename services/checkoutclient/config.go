package checkoutclient

import (
	"context"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/MarcGrol/storyfunnel/lib/mylog"
)

const (
	functionName = "create-payment"
)

type Config struct {
	// FunctionsURL overrides the function gateway derived from BackingStoreURL.
	FunctionsURL        string        `env:"FUNNEL_FUNCTIONS_URL"`
	BackingStoreURL     string        `env:"SUPABASE_URL"`
	BackingStoreAnonKey string        `env:"SUPABASE_ANON_KEY"`
	Timeout             time.Duration `env:"FUNNEL_CHECKOUT_TIMEOUT" envDefault:"10s"`
}

func LoadConfigFromEnv() Config {
	var cfg Config
	err := env.Parse(&cfg)
	if err != nil {
		// unparseable values fall back to their defaults
		mylog.New("checkoutclient").Log(context.Background(), "", mylog.SeverityWarn, "Error parsing configuration: %s", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return cfg
}

func (c Config) Endpoint() string {
	if c.FunctionsURL != "" {
		return strings.TrimSuffix(c.FunctionsURL, "/") + "/" + functionName
	}
	return strings.TrimSuffix(c.BackingStoreURL, "/") + "/functions/v1/" + functionName
}
