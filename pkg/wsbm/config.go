package wsbm

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config manages sampler configuration using Viper
type Config struct {
	v *viper.Viper
}

// NewConfig creates a new configuration with defaults
func NewConfig() *Config {
	v := viper.New()

	// Sampler parameters
	v.SetDefault("sampler.k_max", 8)
	v.SetDefault("sampler.eta0", 1.0)
	v.SetDefault("sampler.iterations", 1000)
	v.SetDefault("sampler.burn_in_fraction", 0.5)
	v.SetDefault("sampler.store", true)
	v.SetDefault("sampler.random_seed", time.Now().UnixNano())

	// Conjugate prior hyperparameters (normal/inverse-gamma)
	v.SetDefault("prior.ss0", 0.1)
	v.SetDefault("prior.nu0", 10.0)
	v.SetDefault("prior.mu0", 0.0)
	v.SetDefault("prior.n0", 1.0)

	// Logging parameters
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.enable_progress", true)

	return &Config{v: v}
}

// LoadFromFile loads configuration from file
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	return c.v.ReadInConfig()
}

// Getters for sampler parameters
func (c *Config) KMax() int               { return c.v.GetInt("sampler.k_max") }
func (c *Config) Eta0() float64           { return c.v.GetFloat64("sampler.eta0") }
func (c *Config) Iterations() int         { return c.v.GetInt("sampler.iterations") }
func (c *Config) BurnInFraction() float64 { return c.v.GetFloat64("sampler.burn_in_fraction") }
func (c *Config) Store() bool             { return c.v.GetBool("sampler.store") }
func (c *Config) RandomSeed() int64       { return c.v.GetInt64("sampler.random_seed") }

// BurnIn returns the number of leading iterations excluded from stored traces
func (c *Config) BurnIn() int {
	return int(c.BurnInFraction() * float64(c.Iterations()))
}

// Getters for prior hyperparameters
func (c *Config) SS0() float64 { return c.v.GetFloat64("prior.ss0") }
func (c *Config) Nu0() float64 { return c.v.GetFloat64("prior.nu0") }
func (c *Config) Mu0() float64 { return c.v.GetFloat64("prior.mu0") }
func (c *Config) N0() float64  { return c.v.GetFloat64("prior.n0") }

func (c *Config) LogLevel() string     { return c.v.GetString("logging.level") }
func (c *Config) EnableProgress() bool { return c.v.GetBool("logging.enable_progress") }

// Set allows dynamic configuration changes
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// CreateLogger creates a zerolog logger based on config
func (c *Config) CreateLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Str("service", "wsbm").Logger()
}
