package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
}

// TonConfig holds TON network access configuration for the minting wallet
type TonConfig struct {
	// ConfigURL is the lite-server global config (mainnet or testnet)
	ConfigURL      string `mapstructure:"config_url"`
	WalletMnemonic string `mapstructure:"wallet_mnemonic"`
	WalletVersion  string `mapstructure:"wallet_version"`
}

// ToncenterConfig holds the HTTP indexer API configuration
type ToncenterConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	APIKey   string `mapstructure:"api_key"`
}

// OrdersConfig holds the order gateway configuration
type OrdersConfig struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
}

// StorageConfig holds object storage configuration for metadata publishing
type StorageConfig struct {
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	Bucket        string `mapstructure:"bucket"`
	PublicBaseURL string `mapstructure:"public_base_url"`
	UseSSL        bool   `mapstructure:"use_ssl"`
}

// PipelineConfig holds the minting pipeline scheduler configuration
type PipelineConfig struct {
	Interval           time.Duration `mapstructure:"interval"`
	RunTimeout         time.Duration `mapstructure:"run_timeout"`
	FailTryCount       int           `mapstructure:"fail_try_count"`
	BatchSize          int           `mapstructure:"batch_size"`
	WalletWaitAttempts int           `mapstructure:"wallet_wait_attempts"`
	WalletWaitInterval time.Duration `mapstructure:"wallet_wait_interval"`
	PollerPoolSize     int           `mapstructure:"poller_pool_size"`
	HTTPTimeout        time.Duration `mapstructure:"http_timeout"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	APIKeys []string `mapstructure:"api_keys"`
}

// MinterConfig holds configuration for the minting pipeline service
type MinterConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig  `mapstructure:"database"`
	Ton        TonConfig       `mapstructure:"ton"`
	Toncenter  ToncenterConfig `mapstructure:"toncenter"`
	Orders     OrdersConfig    `mapstructure:"orders"`
	Storage    StorageConfig   `mapstructure:"storage"`
	Pipeline   PipelineConfig  `mapstructure:"pipeline"`

	// WatchWallets are payment wallet addresses registered at startup
	WatchWallets []string `mapstructure:"watch_wallets"`
}

// ReconcilerConfig holds configuration for the drift reconciler
type ReconcilerConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig  `mapstructure:"database"`
	Ton        TonConfig       `mapstructure:"ton"`
	Toncenter  ToncenterConfig `mapstructure:"toncenter"`
	Orders     OrdersConfig    `mapstructure:"orders"`
	Storage    StorageConfig   `mapstructure:"storage"`
	Pipeline   PipelineConfig  `mapstructure:"pipeline"`

	// MintedBefore bounds the reconciler to items minted at least this long ago
	MintedBefore time.Duration `mapstructure:"minted_before"`
	// CacheTTL bounds the on-chain item cache lifetime
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// APIConfig holds configuration for the ops API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig   `mapstructure:"server"`
	Database   DatabaseConfig `mapstructure:"database"`
	Auth       AuthConfig     `mapstructure:"auth"`
}

// LoadMinterConfig loads configuration for the minting pipeline service
func LoadMinterConfig(configFile string, envPath string) (*MinterConfig, error) {
	v := configureViper("minter", configFile, envPath)

	// Set defaults
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")
	v.SetDefault("ton.config_url", "https://ton.org/global.config.json")
	v.SetDefault("ton.wallet_version", "v4r2")
	v.SetDefault("toncenter.endpoint", "https://toncenter.com")
	v.SetDefault("pipeline.interval", "30s")
	v.SetDefault("pipeline.run_timeout", "10m")
	v.SetDefault("pipeline.fail_try_count", 10)
	v.SetDefault("pipeline.batch_size", 100)
	v.SetDefault("pipeline.wallet_wait_attempts", 10)
	v.SetDefault("pipeline.wallet_wait_interval", "2s")
	v.SetDefault("pipeline.poller_pool_size", 10)
	v.SetDefault("pipeline.http_timeout", "30s")
	v.SetDefault("storage.use_ssl", true)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg MinterConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate required fields
	if cfg.Database.Host == "" {
		return nil, errors.New("database.host is required")
	}
	if cfg.Database.DBName == "" {
		return nil, errors.New("database.dbname is required")
	}
	if cfg.Ton.WalletMnemonic == "" {
		return nil, errors.New("ton.wallet_mnemonic is required")
	}
	if cfg.Orders.BaseURL == "" {
		return nil, errors.New("orders.base_url is required")
	}

	return &cfg, nil
}

// LoadReconcilerConfig loads configuration for the drift reconciler
func LoadReconcilerConfig(configFile string, envPath string) (*ReconcilerConfig, error) {
	v := configureViper("reconciler", configFile, envPath)

	// Set defaults
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 5)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")
	v.SetDefault("ton.config_url", "https://ton.org/global.config.json")
	v.SetDefault("ton.wallet_version", "v4r2")
	v.SetDefault("toncenter.endpoint", "https://toncenter.com")
	v.SetDefault("pipeline.fail_try_count", 10)
	v.SetDefault("pipeline.batch_size", 100)
	v.SetDefault("pipeline.wallet_wait_attempts", 10)
	v.SetDefault("pipeline.wallet_wait_interval", "2s")
	v.SetDefault("pipeline.http_timeout", "30s")
	v.SetDefault("storage.use_ssl", true)
	v.SetDefault("minted_before", "24h")
	v.SetDefault("cache_ttl", "10m")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg ReconcilerConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Database.Host == "" {
		return nil, errors.New("database.host is required")
	}
	if cfg.Database.DBName == "" {
		return nil, errors.New("database.dbname is required")
	}

	return &cfg, nil
}

// LoadAPIConfig loads configuration for the ops API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg APIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/minter/, cmd/api/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("ONTON_MINTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	commonKeys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// TON network
		"ton.config_url",
		"ton.wallet_mnemonic",
		"ton.wallet_version",
		// Toncenter
		"toncenter.endpoint",
		"toncenter.api_key",
		// Order gateway
		"orders.base_url",
		"orders.api_key",
		// Object storage
		"storage.endpoint",
		"storage.access_key",
		"storage.secret_key",
		"storage.bucket",
		"storage.public_base_url",
		"storage.use_ssl",
		// Pipeline
		"pipeline.interval",
		"pipeline.run_timeout",
		"pipeline.fail_try_count",
		"pipeline.batch_size",
		"pipeline.wallet_wait_attempts",
		"pipeline.wallet_wait_interval",
		"pipeline.poller_pool_size",
		"pipeline.http_timeout",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// Auth
		"auth.api_keys",
		// Minter specific
		"watch_wallets",
		// Reconciler specific
		"minted_before",
		"cache_ttl",
	}

	for _, key := range commonKeys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
