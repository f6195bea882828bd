package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMinterConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *MinterConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
database:
  host: localhost
  port: 5432
  user: testuser
  password: testpass
  dbname: testdb
  sslmode: require
ton:
  config_url: "https://ton.org/testnet-global.config.json"
  wallet_mnemonic: "abandon abandon abandon"
  wallet_version: "v3r2"
toncenter:
  endpoint: "https://testnet.toncenter.com"
  api_key: "tc-key"
orders:
  base_url: "https://orders.example.com/api"
  api_key: "orders-key"
storage:
  endpoint: "minio.example.com:9000"
  access_key: "access"
  secret_key: "secret"
  bucket: "nft-metadata"
  public_base_url: "https://cdn.example.com/nft-metadata"
pipeline:
  interval: "15s"
  run_timeout: "5m"
  fail_try_count: 5
  batch_size: 50
  wallet_wait_attempts: 20
  wallet_wait_interval: "1s"
  poller_pool_size: 4
`,
			expectError: false,
			validate: func(t *testing.T, cfg *MinterConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, "https://ton.org/testnet-global.config.json", cfg.Ton.ConfigURL)
				assert.Equal(t, "abandon abandon abandon", cfg.Ton.WalletMnemonic)
				assert.Equal(t, "v3r2", cfg.Ton.WalletVersion)
				assert.Equal(t, "https://testnet.toncenter.com", cfg.Toncenter.Endpoint)
				assert.Equal(t, "tc-key", cfg.Toncenter.APIKey)
				assert.Equal(t, "https://orders.example.com/api", cfg.Orders.BaseURL)
				assert.Equal(t, "orders-key", cfg.Orders.APIKey)
				assert.Equal(t, "minio.example.com:9000", cfg.Storage.Endpoint)
				assert.Equal(t, "nft-metadata", cfg.Storage.Bucket)
				assert.Equal(t, 15*time.Second, cfg.Pipeline.Interval)
				assert.Equal(t, 5*time.Minute, cfg.Pipeline.RunTimeout)
				assert.Equal(t, 5, cfg.Pipeline.FailTryCount)
				assert.Equal(t, 50, cfg.Pipeline.BatchSize)
				assert.Equal(t, 20, cfg.Pipeline.WalletWaitAttempts)
				assert.Equal(t, time.Second, cfg.Pipeline.WalletWaitInterval)
				assert.Equal(t, 4, cfg.Pipeline.PollerPoolSize)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
ton:
  wallet_mnemonic: "abandon abandon abandon"
orders:
  base_url: "https://orders.example.com/api"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *MinterConfig) {
				// Check defaults
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, "https://ton.org/global.config.json", cfg.Ton.ConfigURL)
				assert.Equal(t, "v4r2", cfg.Ton.WalletVersion)
				assert.Equal(t, "https://toncenter.com", cfg.Toncenter.Endpoint)
				assert.Equal(t, 30*time.Second, cfg.Pipeline.Interval)
				assert.Equal(t, 10*time.Minute, cfg.Pipeline.RunTimeout)
				assert.Equal(t, 10, cfg.Pipeline.FailTryCount)
				assert.Equal(t, 100, cfg.Pipeline.BatchSize)
				assert.Equal(t, 10, cfg.Pipeline.WalletWaitAttempts)
				assert.Equal(t, 2*time.Second, cfg.Pipeline.WalletWaitInterval)
				assert.True(t, cfg.Storage.UseSSL)
			},
		},
		{
			name: "missing database host",
			configFile: `
ton:
  wallet_mnemonic: "abandon abandon abandon"
orders:
  base_url: "https://orders.example.com/api"
`,
			expectError: true,
		},
		{
			name: "missing wallet mnemonic",
			configFile: `
database:
  host: localhost
  dbname: testdb
orders:
  base_url: "https://orders.example.com/api"
`,
			expectError: true,
		},
		{
			name: "invalid yaml",
			configFile: `
				database:
				  host: localhost
				  port: invalid
			`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configFile := filepath.Join(tmpDir, "config.yaml")
			err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
			require.NoError(t, err)

			cfg, err := LoadMinterConfig(configFile, "")

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				if tt.validate != nil {
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestLoadReconcilerConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *ReconcilerConfig)
	}{
		{
			name: "valid config file",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
ton:
  wallet_mnemonic: "abandon abandon abandon"
orders:
  base_url: "https://orders.example.com/api"
minted_before: "48h"
cache_ttl: "5m"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *ReconcilerConfig) {
				assert.Equal(t, 48*time.Hour, cfg.MintedBefore)
				assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
`,
			expectError: false,
			validate: func(t *testing.T, cfg *ReconcilerConfig) {
				assert.Equal(t, 24*time.Hour, cfg.MintedBefore)
				assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
				assert.Equal(t, 100, cfg.Pipeline.BatchSize)
			},
		},
		{
			name:        "missing database",
			configFile:  `debug: true`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configFile := filepath.Join(tmpDir, "config.yaml")
			err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
			require.NoError(t, err)

			cfg, err := LoadReconcilerConfig(configFile, "")

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				if tt.validate != nil {
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestLoadAPIConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *APIConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: 20
  write_timeout: 20
  idle_timeout: 180
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
auth:
  api_keys:
    - "key1"
    - "key2"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 20, cfg.Server.ReadTimeout)
				assert.Equal(t, 180, cfg.Server.IdleTimeout)
				assert.Len(t, cfg.Auth.APIKeys, 2)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.False(t, cfg.Debug)
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 10, cfg.Server.ReadTimeout)
				assert.Equal(t, 10, cfg.Server.WriteTimeout)
				assert.Equal(t, 120, cfg.Server.IdleTimeout)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configFile := filepath.Join(tmpDir, "config.yaml")
			err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
			require.NoError(t, err)

			cfg, err := LoadAPIConfig(configFile, "")

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				if tt.validate != nil {
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "testuser",
		Password: "testpass",
		DBName:   "testdb",
		SSLMode:  "require",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=require",
		cfg.DSN())
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	tmpDir := t.TempDir()

	envDir := filepath.Join(tmpDir, "env")
	err := os.MkdirAll(envDir, 0750)
	require.NoError(t, err)

	// godotenv.Overload sets real env vars which viper picks up with the
	// ONTON_MINTER_ prefix, overriding values from the config file
	envFile := filepath.Join(envDir, ".env")
	envContent := `ONTON_MINTER_DEBUG=true
ONTON_MINTER_DATABASE_HOST=env-host
ONTON_MINTER_DATABASE_PORT=3306
ONTON_MINTER_DATABASE_USER=env-user
ONTON_MINTER_DATABASE_PASSWORD=env-pass
ONTON_MINTER_DATABASE_DBNAME=env-db
ONTON_MINTER_DATABASE_SSLMODE=require
`
	err = os.WriteFile(envFile, []byte(envContent), 0600)
	require.NoError(t, err)

	configPath := filepath.Join(tmpDir, "config.yaml")
	configFile := `
debug: false
database:
  host: file-host
  port: 5432
  user: file-user
  password: file-pass
  dbname: file-db
  sslmode: disable
`

	err = os.WriteFile(configPath, []byte(configFile), 0600)
	require.NoError(t, err)

	cfg, err := LoadAPIConfig(configPath, envDir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.True(t, cfg.Debug)
	assert.Equal(t, "env-host", cfg.Database.Host)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "env-user", cfg.Database.User)
	assert.Equal(t, "env-pass", cfg.Database.Password)
	assert.Equal(t, "env-db", cfg.Database.DBName)
	assert.Equal(t, "require", cfg.Database.SSLMode)
}
