package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Storage StorageConfig
	Cache   CacheConfig
	API     APIConfig
}

// StorageConfig holds durable local storage settings.
type StorageConfig struct {
	// Path is the SQLite database file; ":memory:" disables durability.
	Path string `mapstructure:"STORAGE_PATH"`
	// Namespace prefixes every durable key, e.g. "fleetdesk-mock-shipments".
	Namespace string `mapstructure:"STORAGE_NAMESPACE"`
}

// CacheConfig holds the TTL cache settings.
type CacheConfig struct {
	TTL           time.Duration `mapstructure:"CACHE_TTL"`
	SweepInterval time.Duration `mapstructure:"CACHE_SWEEP_INTERVAL"`
	Persist       bool          `mapstructure:"CACHE_PERSIST"`
}

// APIConfig holds the simulated network latencies.
type APIConfig struct {
	ReadDelay   time.Duration `mapstructure:"API_READ_DELAY"`
	CreateDelay time.Duration `mapstructure:"API_CREATE_DELAY"`
	UpdateDelay time.Duration `mapstructure:"API_UPDATE_DELAY"`
	DeleteDelay time.Duration `mapstructure:"API_DELETE_DELAY"`
}

// CacheKey returns the durable key for the persisted cache blob.
func (s *StorageConfig) CacheKey() string {
	return s.Namespace + "-api-cache"
}

// Load reads configuration from environment variables and a .env file.
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// ── Defaults ────────────────────────────────────────
	viper.SetDefault("STORAGE_PATH", "fleetdesk.db")
	viper.SetDefault("STORAGE_NAMESPACE", "fleetdesk")

	viper.SetDefault("CACHE_TTL", "5m")
	viper.SetDefault("CACHE_SWEEP_INTERVAL", "50s")
	viper.SetDefault("CACHE_PERSIST", true)

	viper.SetDefault("API_READ_DELAY", "200ms")
	viper.SetDefault("API_CREATE_DELAY", "700ms")
	viper.SetDefault("API_UPDATE_DELAY", "500ms")
	viper.SetDefault("API_DELETE_DELAY", "400ms")

	// A missing .env is fine; env vars and defaults cover everything.
	_ = viper.ReadInConfig()

	cfg := &Config{
		Storage: StorageConfig{
			Path:      viper.GetString("STORAGE_PATH"),
			Namespace: viper.GetString("STORAGE_NAMESPACE"),
		},
		Cache: CacheConfig{
			TTL:           viper.GetDuration("CACHE_TTL"),
			SweepInterval: viper.GetDuration("CACHE_SWEEP_INTERVAL"),
			Persist:       viper.GetBool("CACHE_PERSIST"),
		},
		API: APIConfig{
			ReadDelay:   viper.GetDuration("API_READ_DELAY"),
			CreateDelay: viper.GetDuration("API_CREATE_DELAY"),
			UpdateDelay: viper.GetDuration("API_UPDATE_DELAY"),
			DeleteDelay: viper.GetDuration("API_DELETE_DELAY"),
		},
	}

	return cfg, nil
}
