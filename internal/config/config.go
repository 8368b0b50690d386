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
	ReadHost        string        `mapstructure:"read_host"`
	ReadPort        int           `mapstructure:"read_port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // Maximum amount of time a connection may be reused (e.g., "5m", "1h")
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // Maximum amount of time a connection may be idle (e.g., "10m", "30m")
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// LockConfig holds the per-asset lock configuration
type LockConfig struct {
	TTL  time.Duration `mapstructure:"ttl"`
	Wait time.Duration `mapstructure:"wait"`
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
	MaxAge         time.Duration `mapstructure:"max_age"`
}

// TemporalConfig holds Temporal configuration
type TemporalConfig struct {
	HostPort                           string  `mapstructure:"host_port"`
	Namespace                          string  `mapstructure:"namespace"`
	CoreTaskQueue                      string  `mapstructure:"core_task_queue"`
	MaxConcurrentActivityExecutionSize int     `mapstructure:"max_concurrent_activity_execution_size"`
	WorkerActivitiesPerSecond          float64 `mapstructure:"worker_activities_per_second"`
	MaxConcurrentActivityTaskPollers   int     `mapstructure:"max_concurrent_activity_task_pollers"`
}

// SolanaConfig holds the treasury transfer configuration
type SolanaConfig struct {
	RPCURL             string        `mapstructure:"rpc_url"`
	TreasuryPrivateKey string        `mapstructure:"treasury_private_key"`
	Commitment         string        `mapstructure:"commitment"`
	PollInterval       time.Duration `mapstructure:"poll_interval"`
}

// FeeSourceConfig holds the fee data API configuration
type FeeSourceConfig struct {
	BaseURL        string          `mapstructure:"base_url"`
	APIKey         string          `mapstructure:"api_key"`
	Timeout        time.Duration   `mapstructure:"timeout"`
	MaxElapsedTime time.Duration   `mapstructure:"max_elapsed_time"`
	RateLimit      RateLimitConfig `mapstructure:"rate_limit"`
}

// PayoutConfig holds the payout configuration
type PayoutConfig struct {
	TransferTimeout time.Duration `mapstructure:"transfer_timeout"`
}

// RateLimitConfig holds the configuration of a single rate limiter
type RateLimitConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	RedisKeyPrefix    string `mapstructure:"redis_key_prefix"`
	RequestsPerSecond int    `mapstructure:"requests_per_second"`
	Burst             int    `mapstructure:"burst"`
	// EnableLocalFallback switches to an in-process limiter while Redis is unreachable
	EnableLocalFallback bool `mapstructure:"enable_local_fallback"`
	// LocalFallbackMultiplier scales the local rate, since every replica enforces it on its own
	LocalFallbackMultiplier float64 `mapstructure:"local_fallback_multiplier"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds

	// CORSAllowedOrigins lists browser origins allowed to call the API, empty allows all
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// FeeAccrualSweeperConfig holds configuration for the fee accrual sweeper
type FeeAccrualSweeperConfig struct {
	Schedule   string `mapstructure:"schedule"`
	PoolSize   int    `mapstructure:"pool_size"`
	RunOnStart bool   `mapstructure:"run_on_start"`
}

// ReconcileSweeperConfig holds configuration for the reconciliation sweeper
type ReconcileSweeperConfig struct {
	Schedule         string        `mapstructure:"schedule"`
	RunOnStart       bool          `mapstructure:"run_on_start"`
	MaxRecordElapsed time.Duration `mapstructure:"max_record_elapsed"`
}

// APIConfig holds configuration for API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig    `mapstructure:"server"`
	Database   DatabaseConfig  `mapstructure:"database"`
	Redis      RedisConfig     `mapstructure:"redis"`
	Lock       LockConfig      `mapstructure:"lock"`
	NATS       NATSConfig      `mapstructure:"nats"`
	Temporal   TemporalConfig  `mapstructure:"temporal"`
	Solana     SolanaConfig    `mapstructure:"solana"`
	Payout     PayoutConfig    `mapstructure:"payout"`
	Auth       AuthConfig      `mapstructure:"auth"`
	RateLimit  RateLimitConfig `mapstructure:"rate_limit"`
}

// SweeperConfig holds configuration for the sweeper program
type SweeperConfig struct {
	BaseConfig        `mapstructure:",squash"`
	Database          DatabaseConfig          `mapstructure:"database"`
	Redis             RedisConfig             `mapstructure:"redis"`
	Lock              LockConfig              `mapstructure:"lock"`
	NATS              NATSConfig              `mapstructure:"nats"`
	FeeSource         FeeSourceConfig         `mapstructure:"fee_source"`
	FeeAccrualSweeper FeeAccrualSweeperConfig `mapstructure:"fee_accrual_sweeper"`
	ReconcileSweeper  ReconcileSweeperConfig  `mapstructure:"reconcile_sweeper"`
}

// WorkerCoreConfig holds configuration for worker-core
type WorkerCoreConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig `mapstructure:"database"`
	Temporal   TemporalConfig `mapstructure:"temporal"`
}

// LoadAPIConfig loads configuration for API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 90)
	v.SetDefault("server.idle_timeout", 120)
	setDatabaseDefaults(v)
	setLedgerDefaults(v)
	v.SetDefault("temporal.host_port", "localhost:7233")
	v.SetDefault("temporal.namespace", "default")
	v.SetDefault("temporal.core_task_queue", "royalty-ledger")
	v.SetDefault("solana.rpc_url", "https://api.mainnet-beta.solana.com")
	v.SetDefault("solana.commitment", "confirmed")
	v.SetDefault("solana.poll_interval", "500ms")
	v.SetDefault("payout.transfer_timeout", "60s")
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.redis_key_prefix", "royalty:limiter:api:")
	v.SetDefault("rate_limit.requests_per_second", 20)
	v.SetDefault("rate_limit.burst", 40)
	v.SetDefault("rate_limit.enable_local_fallback", true)
	v.SetDefault("rate_limit.local_fallback_multiplier", 0.5)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// LoadSweeperConfig loads configuration for the sweeper program
func LoadSweeperConfig(configFile string, envPath string) (*SweeperConfig, error) {
	v := configureViper("sweeper", configFile, envPath)

	// Set defaults
	setDatabaseDefaults(v)
	v.SetDefault("database.max_open_conns", 5)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")
	setLedgerDefaults(v)
	v.SetDefault("fee_source.timeout", "15s")
	v.SetDefault("fee_source.max_elapsed_time", "1m")
	v.SetDefault("fee_source.rate_limit.enabled", true)
	v.SetDefault("fee_source.rate_limit.redis_key_prefix", "royalty:limiter:feesource:")
	v.SetDefault("fee_source.rate_limit.requests_per_second", 10)
	v.SetDefault("fee_source.rate_limit.burst", 10)
	v.SetDefault("fee_source.rate_limit.enable_local_fallback", true)
	v.SetDefault("fee_source.rate_limit.local_fallback_multiplier", 0.5)
	v.SetDefault("fee_accrual_sweeper.schedule", "*/15 * * * *")
	v.SetDefault("fee_accrual_sweeper.pool_size", 8)
	v.SetDefault("fee_accrual_sweeper.run_on_start", true)
	v.SetDefault("reconcile_sweeper.schedule", "0 * * * *")
	v.SetDefault("reconcile_sweeper.run_on_start", false)
	v.SetDefault("reconcile_sweeper.max_record_elapsed", "30s")

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg SweeperConfig
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

	return &cfg, nil
}

// LoadWorkerCoreConfig loads configuration for worker-core
func LoadWorkerCoreConfig(configFile string, envPath string) (*WorkerCoreConfig, error) {
	v := configureViper("worker-core", configFile, envPath)

	// Set defaults
	setDatabaseDefaults(v)
	v.SetDefault("temporal.host_port", "localhost:7233")
	v.SetDefault("temporal.namespace", "default")
	v.SetDefault("temporal.core_task_queue", "royalty-ledger")
	v.SetDefault("temporal.max_concurrent_activity_execution_size", 50)
	v.SetDefault("temporal.worker_activities_per_second", 50)
	v.SetDefault("temporal.max_concurrent_activity_task_pollers", 10)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config WorkerCoreConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func setDatabaseDefaults(v *viper.Viper) {
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
}

// setLedgerDefaults sets the defaults shared by every program mutating the ledger
func setLedgerDefaults(v *viper.Viper) {
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("lock.ttl", "2m")
	v.SetDefault("lock.wait", "5s")
	v.SetDefault("nats.enabled", false)
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "ROYALTY_LEDGER")
}

// readConfig reads the config file, tolerating a missing one so env vars alone can configure a program
func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
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
		// 2. Service-specific directory (e.g., cmd/sweeper/, cmd/api/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("ROYALTY_LEDGER")
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
		"database.read_host",
		"database.read_port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// Redis and locking
		"redis.addr",
		"redis.password",
		"redis.db",
		"lock.ttl",
		"lock.wait",
		// NATS
		"nats.enabled",
		"nats.url",
		"nats.stream_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		"nats.max_age",
		// Temporal
		"temporal.host_port",
		"temporal.namespace",
		"temporal.core_task_queue",
		"temporal.max_concurrent_activity_execution_size",
		"temporal.worker_activities_per_second",
		"temporal.max_concurrent_activity_task_pollers",
		// Solana
		"solana.rpc_url",
		"solana.treasury_private_key",
		"solana.commitment",
		"solana.poll_interval",
		// Fee source
		"fee_source.base_url",
		"fee_source.api_key",
		"fee_source.timeout",
		"fee_source.max_elapsed_time",
		"fee_source.rate_limit.enabled",
		"fee_source.rate_limit.redis_key_prefix",
		"fee_source.rate_limit.requests_per_second",
		"fee_source.rate_limit.burst",
		"fee_source.rate_limit.enable_local_fallback",
		"fee_source.rate_limit.local_fallback_multiplier",
		// Payout
		"payout.transfer_timeout",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.cors_allowed_origins",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
		// API rate limit
		"rate_limit.enabled",
		"rate_limit.redis_key_prefix",
		"rate_limit.requests_per_second",
		"rate_limit.burst",
		"rate_limit.enable_local_fallback",
		"rate_limit.local_fallback_multiplier",
		// Sweepers
		"fee_accrual_sweeper.schedule",
		"fee_accrual_sweeper.pool_size",
		"fee_accrual_sweeper.run_on_start",
		"reconcile_sweeper.schedule",
		"reconcile_sweeper.run_on_start",
		"reconcile_sweeper.max_record_elapsed",
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

// ReadDSN returns the read-replica database connection string.
// If ReadPort is not configured, it falls back to Port.
func (c *DatabaseConfig) ReadDSN() string {
	port := c.ReadPort
	if port == 0 {
		port = c.Port
	}

	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.ReadHost, port, c.User, c.Password, c.DBName, c.SSLMode)
}
