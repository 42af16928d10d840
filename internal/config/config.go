package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MarketConfig names one equity market and its economic series.
type MarketConfig struct {
	Name            string `yaml:"name"`
	Ticker          string `yaml:"ticker"`
	InflationSeries string `yaml:"inflation_series"`
	InterestSeries  string `yaml:"interest_series"`
}

// Config holds all application configuration.
type Config struct {
	Currency struct {
		Pair   string `yaml:"pair"`   // pair symbol, report currency per base unit
		Report string `yaml:"report"` // currency the user invests and reads results in
		Base   string `yaml:"base"`   // currency the comparison is computed in
	} `yaml:"currency"`
	Markets  []MarketConfig `yaml:"markets"`
	Schedule struct {
		WatchCron string `yaml:"watch_cron"`
	} `yaml:"schedule"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("CURRENCY_PAIR"); v != "" {
		cfg.Currency.Pair = v
	}
	if v := os.Getenv("REPORT_CURRENCY"); v != "" {
		cfg.Currency.Report = v
	}
	if v := os.Getenv("BASE_CURRENCY"); v != "" {
		cfg.Currency.Base = v
	}
	if v := os.Getenv("WATCH_CRON"); v != "" {
		cfg.Schedule.WatchCron = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Currency.Pair == "" {
		cfg.Currency.Pair = "USDTRY=X"
	}
	if cfg.Currency.Report == "" {
		cfg.Currency.Report = "TRY"
	}
	if cfg.Currency.Base == "" {
		cfg.Currency.Base = "USD"
	}
	if cfg.Schedule.WatchCron == "" {
		cfg.Schedule.WatchCron = "0 0 18 * * 1-5"
	}
	if len(cfg.Markets) == 0 {
		cfg.Markets = []MarketConfig{
			{
				Name:            "BIST 100",
				Ticker:          "XU100.IS",
				InflationSeries: "TURCPIALLMINMEI",
				InterestSeries:  "IR3TIB01TRM156N",
			},
			{
				Name:            "S&P 500",
				Ticker:          "^GSPC",
				InflationSeries: "CPIAUCSL",
				InterestSeries:  "FEDFUNDS",
			},
		}
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Currency.Pair == "" {
		return fmt.Errorf("currency.pair is required")
	}
	if c.Currency.Report == "" || c.Currency.Base == "" {
		return fmt.Errorf("currency.report and currency.base are required")
	}
	if len(c.Markets) == 0 {
		return fmt.Errorf("at least one market is required")
	}
	for i, m := range c.Markets {
		if m.Name == "" || m.Ticker == "" {
			return fmt.Errorf("markets[%d]: name and ticker are required", i)
		}
		if m.InflationSeries == "" || m.InterestSeries == "" {
			return fmt.Errorf("markets[%d]: inflation_series and interest_series are required", i)
		}
	}
	return nil
}
