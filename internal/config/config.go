// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"

	"github.com/mountainpath/nifty-dashboard/pkg/constants"
)

// Configuration holds all configuration for nifty-dashboard.
type Configuration struct {
	Server     ServerConfig     `yaml:"server,omitempty"`
	Market     MarketConfig     `yaml:"market,omitempty"`
	Thresholds ThresholdsConfig `yaml:"thresholds,omitempty"`
	Branding   BrandingConfig   `yaml:"branding,omitempty"`
	Logging    LoggingConfig    `yaml:"logging,omitempty"`
}

// ServerConfig holds runtime parameters for the HTTP server.
type ServerConfig struct {
	Address string `yaml:"address,omitempty"`
}

// MarketConfig holds the market reference facts the projections and the
// valuation metrics are anchored to.
type MarketConfig struct {
	BaseEPS    float64 `yaml:"baseEPS,omitempty"`
	NiftyLevel float64 `yaml:"niftyLevel,omitempty"`
	CurrentPE  float64 `yaml:"currentPE,omitempty"`
	FairPELow  float64 `yaml:"fairPELow,omitempty"`
	FairPEHigh float64 `yaml:"fairPEHigh,omitempty"`
}

// ThresholdsConfig holds the cutoffs that trigger key-metrics warning flags.
type ThresholdsConfig struct {
	RevenueWarning  float64 `yaml:"revenueWarning,omitempty"`
	ProfitWarning   float64 `yaml:"profitWarning,omitempty"`
	DivergenceAlert float64 `yaml:"divergenceAlert,omitempty"`
}

// BrandingConfig holds the identity block rendered in the page footer and
// the version endpoint.
type BrandingConfig struct {
	Author     string `yaml:"author,omitempty"`
	Brand      string `yaml:"brand,omitempty"`
	Experience string `yaml:"experience,omitempty"`
	Location   string `yaml:"location,omitempty"`
	Year       int    `yaml:"year,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// Default returns the configuration used when no file overrides anything.
func Default() *Configuration {
	return &Configuration{
		Server: ServerConfig{
			Address: constants.DefaultServerAddress,
		},
		Market: MarketConfig{
			BaseEPS:    constants.DefaultBaseEPS,
			NiftyLevel: constants.DefaultNiftyLevel,
			CurrentPE:  constants.DefaultCurrentPE,
			FairPELow:  constants.DefaultFairPELow,
			FairPEHigh: constants.DefaultFairPEHigh,
		},
		Thresholds: ThresholdsConfig{
			RevenueWarning:  constants.DefaultRevenueWarning,
			ProfitWarning:   constants.DefaultProfitWarning,
			DivergenceAlert: constants.DefaultDivergenceAlert,
		},
		Branding: BrandingConfig{
			Author:     "Prof. V. Ravichandran",
			Brand:      "The Mountain Path - World of Finance",
			Experience: "28+ Years Corporate Finance & Banking | 10+ Years Academic Excellence",
			Location:   "Bangalore, India",
			Year:       2026,
		},
		Logging: LoggingConfig{},
	}
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there, applying defaults for anything the file leaves out.
// An empty or missing file path yields the defaults without error.
func LoadConfiguration(configPath string) (*Configuration, error) {
	configuration := Default()
	if configPath == "" {
		return configuration, nil
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")
	setDefaults(v, configuration)

	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return configuration, nil
		}
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	if err := v.Unmarshal(configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return configuration, nil
}

func setDefaults(v *viper.Viper, defaults *Configuration) {
	v.SetDefault("server.address", defaults.Server.Address)
	v.SetDefault("market.baseEPS", defaults.Market.BaseEPS)
	v.SetDefault("market.niftyLevel", defaults.Market.NiftyLevel)
	v.SetDefault("market.currentPE", defaults.Market.CurrentPE)
	v.SetDefault("market.fairPELow", defaults.Market.FairPELow)
	v.SetDefault("market.fairPEHigh", defaults.Market.FairPEHigh)
	v.SetDefault("thresholds.revenueWarning", defaults.Thresholds.RevenueWarning)
	v.SetDefault("thresholds.profitWarning", defaults.Thresholds.ProfitWarning)
	v.SetDefault("thresholds.divergenceAlert", defaults.Thresholds.DivergenceAlert)
	v.SetDefault("branding.author", defaults.Branding.Author)
	v.SetDefault("branding.brand", defaults.Branding.Brand)
	v.SetDefault("branding.experience", defaults.Branding.Experience)
	v.SetDefault("branding.location", defaults.Branding.Location)
	v.SetDefault("branding.year", defaults.Branding.Year)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)
	v.SetDefault("logging.outputFile", defaults.Logging.OutputFile)
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if c.Market.BaseEPS <= 0 {
		warnings = append(warnings, fmt.Sprintf("market.baseEPS is %.2f; scenario projections require a positive base EPS", c.Market.BaseEPS))
	}
	if c.Market.NiftyLevel <= 0 {
		warnings = append(warnings, fmt.Sprintf("market.niftyLevel is %.2f; implied return figures will be unavailable", c.Market.NiftyLevel))
	}
	if c.Market.CurrentPE <= 0 {
		warnings = append(warnings, fmt.Sprintf("market.currentPE is %.2f; valuation gap figures will be unavailable", c.Market.CurrentPE))
	}
	if c.Market.FairPELow > c.Market.FairPEHigh {
		warnings = append(warnings, fmt.Sprintf("market fair P/E band is inverted (%.1f > %.1f)", c.Market.FairPELow, c.Market.FairPEHigh))
	}
	if c.Thresholds.RevenueWarning < c.Thresholds.ProfitWarning {
		warnings = append(warnings, "thresholds.revenueWarning is below thresholds.profitWarning; flags may overlap unexpectedly")
	}
	if c.Thresholds.DivergenceAlert <= 0 {
		warnings = append(warnings, fmt.Sprintf("thresholds.divergenceAlert is %.2f; the divergence alert will always fire", c.Thresholds.DivergenceAlert))
	}
	if c.Server.Address == "" {
		warnings = append(warnings, "server.address is empty; the default listen address will be used")
	}

	return warnings
}
