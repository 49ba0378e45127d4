package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"

	"github.com/nikolayk812/storefront/internal/domain"
)

const defaultEnvFile = ".env"

// Config captures all runtime configuration organised by concern.
type Config struct {
	Database DatabaseConfig
	API      APIConfig
	Cart     CartConfig
	Shipping ShippingConfig
	Device   DeviceConfig
	LogLevel string `env:"LOG_LEVEL,default=info"`
}

type DatabaseConfig struct {
	URL string `env:"DATABASE_URL"`
}

// APIConfig points at the remote commerce API.
type APIConfig struct {
	BaseURL string        `env:"STOREFRONT_API_BASE_URL"`
	Timeout time.Duration `env:"STOREFRONT_API_TIMEOUT,default=15s"`
}

type CartConfig struct {
	Currency     string        `env:"STOREFRONT_CURRENCY,default=USD"`
	HomeCacheTTL time.Duration `env:"STOREFRONT_HOME_CACHE_TTL,default=5m"`
}

// ShippingConfig keeps amounts as text so they parse as exact decimals.
type ShippingConfig struct {
	BaseFee         string `env:"STOREFRONT_SHIPPING_BASE_FEE,default=0"`
	FreeWeightGrams int    `env:"STOREFRONT_SHIPPING_FREE_WEIGHT_GRAMS,default=5000"`
	SurchargePerKg  string `env:"STOREFRONT_SHIPPING_SURCHARGE_PER_KG,default=0"`
}

// DeviceConfig namespaces the local storage of one installation.
type DeviceConfig struct {
	ID string `env:"STOREFRONT_DEVICE_ID,default=default"`
}

// Load reads an optional .env file and decodes the environment.
// Variables already set in the environment win over the file.
func Load() (Config, error) {
	return LoadFile(defaultEnvFile)
}

func LoadFile(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("godotenv.Load[%s]: %w", envFile, err)
		}
	}

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("envdecode.Decode: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	var problems []string

	if strings.TrimSpace(c.API.BaseURL) == "" {
		problems = append(problems, "STOREFRONT_API_BASE_URL is required")
	} else if u, err := url.Parse(c.API.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		problems = append(problems, "STOREFRONT_API_BASE_URL must be an absolute URL")
	}
	if c.API.Timeout <= 0 {
		problems = append(problems, "STOREFRONT_API_TIMEOUT must be positive")
	}
	if c.Cart.HomeCacheTTL <= 0 {
		problems = append(problems, "STOREFRONT_HOME_CACHE_TTL must be positive")
	}
	if _, err := currency.ParseISO(c.Cart.Currency); err != nil {
		problems = append(problems, fmt.Sprintf("STOREFRONT_CURRENCY %q is not an ISO 4217 code", c.Cart.Currency))
	}
	if _, err := c.ShippingPolicy(); err != nil {
		problems = append(problems, err.Error())
	}
	if strings.TrimSpace(c.Device.ID) == "" {
		problems = append(problems, "STOREFRONT_DEVICE_ID must not be blank")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// CurrencyUnit returns the parsed cart currency.
func (c Config) CurrencyUnit() currency.Unit {
	unit, err := currency.ParseISO(c.Cart.Currency)
	if err != nil {
		return currency.USD
	}
	return unit
}

func (c Config) ShippingPolicy() (domain.ShippingPolicy, error) {
	baseFee, err := decimal.NewFromString(c.Shipping.BaseFee)
	if err != nil || baseFee.IsNegative() {
		return domain.ShippingPolicy{}, fmt.Errorf("STOREFRONT_SHIPPING_BASE_FEE %q is not a non-negative amount", c.Shipping.BaseFee)
	}

	surcharge, err := decimal.NewFromString(c.Shipping.SurchargePerKg)
	if err != nil || surcharge.IsNegative() {
		return domain.ShippingPolicy{}, fmt.Errorf("STOREFRONT_SHIPPING_SURCHARGE_PER_KG %q is not a non-negative amount", c.Shipping.SurchargePerKg)
	}

	if c.Shipping.FreeWeightGrams < 0 {
		return domain.ShippingPolicy{}, fmt.Errorf("STOREFRONT_SHIPPING_FREE_WEIGHT_GRAMS must not be negative")
	}

	return domain.ShippingPolicy{
		BaseFee:         baseFee,
		FreeWeightGrams: c.Shipping.FreeWeightGrams,
		SurchargePerKg:  surcharge,
	}, nil
}
