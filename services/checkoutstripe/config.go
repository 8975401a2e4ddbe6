package checkoutstripe

import (
	"context"

	"github.com/caarlos0/env/v11"

	"github.com/MarcGrol/storyfunnel/lib/mylog"
)

const (
	defaultPriceID = "price_1S95RnPSKcW6nG3fLtUogRV8"
)

// Config is read on every invocation; absent values stay empty and make the corresponding
// remote call fail downstream.
type Config struct {
	BackingStoreURL     string `env:"SUPABASE_URL"`
	BackingStoreAnonKey string `env:"SUPABASE_ANON_KEY"`
	StripeSecretKey     string `env:"STRIPE_SECRET_KEY"`
	PriceID             string `env:"STRIPE_PRICE_ID" envDefault:"price_1S95RnPSKcW6nG3fLtUogRV8"`
}

func LoadConfigFromEnv() Config {
	var cfg Config
	err := env.Parse(&cfg)
	if err != nil {
		// unparseable values fall back to their defaults
		mylog.New("checkoutstripe").Log(context.Background(), "", mylog.SeverityWarn, "Error parsing configuration: %s", err)
	}
	if cfg.PriceID == "" {
		cfg.PriceID = defaultPriceID
	}
	return cfg
}

// Missing lists the environment variables that are not set.
func (c Config) Missing() []string {
	missing := []string{}
	if c.BackingStoreURL == "" {
		missing = append(missing, "SUPABASE_URL")
	}
	if c.BackingStoreAnonKey == "" {
		missing = append(missing, "SUPABASE_ANON_KEY")
	}
	if c.StripeSecretKey == "" {
		missing = append(missing, "STRIPE_SECRET_KEY")
	}
	return missing
}
