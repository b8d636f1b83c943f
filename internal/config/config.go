package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/stoik/link-guard/internal/domain/detection"
)

// ErrMissingToken is returned by RequireToken when no bot token is configured
var ErrMissingToken = errors.New("DISCORD_TOKEN must be set")

// Config is the process configuration, loaded once at start-up and read-only afterwards
type Config struct {
	DiscordToken string
	ShardCount   int
	Watchlist    detection.Watchlist

	DatabaseURL         string
	MemoryStoreCapacity int
	MetricsAddr         string

	LogLevel  string
	LogFormat string

	NotifyBreakerTimeout     time.Duration
	NotifyBreakerMaxFailures uint32
}

// Options locates optional configuration files
type Options struct {
	// EnvFile is a dotenv file loaded into the environment first. Missing is fine.
	EnvFile string
	// ConfigFile is an explicit YAML file. When empty, link-guard.yaml is
	// looked up in ./config and the working directory.
	ConfigFile string
}

// Load reads configuration from the env file, the YAML file and the environment,
// in increasing order of precedence
func Load(opts Options) (Config, error) {
	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load env file %s: %w", opts.EnvFile, err)
		}
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName("link-guard")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.ConfigFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("shard_count", 2)
	v.SetDefault("watchlist", detection.DefaultWatchlist().Domains())
	v.SetDefault("database_url", "")
	v.SetDefault("memory_store_capacity", 1000)
	v.SetDefault("metrics_addr", ":9090")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("notify_breaker_timeout", "30s")
	v.SetDefault("notify_breaker_max_failures", 5)
}

func fromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		DiscordToken:        strings.TrimSpace(v.GetString("discord_token")),
		ShardCount:          v.GetInt("shard_count"),
		DatabaseURL:         v.GetString("database_url"),
		MemoryStoreCapacity: v.GetInt("memory_store_capacity"),
		MetricsAddr:         v.GetString("metrics_addr"),
		LogLevel:            v.GetString("log_level"),
		LogFormat:           v.GetString("log_format"),
	}

	if cfg.ShardCount < 1 || cfg.ShardCount > 64 {
		return Config{}, fmt.Errorf("SHARD_COUNT out of range (%d), must be within [1, 64]", cfg.ShardCount)
	}
	if cfg.MemoryStoreCapacity < 1 {
		return Config{}, fmt.Errorf("MEMORY_STORE_CAPACITY must be positive, got %d", cfg.MemoryStoreCapacity)
	}

	watchlist, err := detection.NewWatchlist(splitList(v.GetStringSlice("watchlist")))
	if err != nil {
		return Config{}, fmt.Errorf("invalid WATCHLIST: %w", err)
	}
	if watchlist.Len() == 0 {
		return Config{}, fmt.Errorf("WATCHLIST must not be empty")
	}
	cfg.Watchlist = watchlist

	timeoutStr := v.GetString("notify_breaker_timeout")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return Config{}, fmt.Errorf("invalid NOTIFY_BREAKER_TIMEOUT=%q: %w", timeoutStr, err)
	}
	if timeout < time.Second || timeout > 10*time.Minute {
		return Config{}, fmt.Errorf("NOTIFY_BREAKER_TIMEOUT out of range (%s), must be within [1s, 10m]", timeout)
	}
	cfg.NotifyBreakerTimeout = timeout

	maxFailures := v.GetInt("notify_breaker_max_failures")
	if maxFailures < 1 {
		return Config{}, fmt.Errorf("NOTIFY_BREAKER_MAX_FAILURES must be positive, got %d", maxFailures)
	}
	cfg.NotifyBreakerMaxFailures = uint32(maxFailures)

	return cfg, nil
}

// RequireToken reports ErrMissingToken when the gateway cannot authenticate
func (c Config) RequireToken() error {
	if c.DiscordToken == "" {
		return ErrMissingToken
	}
	return nil
}

// splitList accepts both YAML lists and comma-separated environment values
func splitList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
