package config

import (
	"errors"
	"fmt"
	"github.com/BurntSushi/toml"
	"github.com/litetable/litetable-rowstream/internal/litetable"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	configFileName = "rowstream.toml"
)

type Config struct {
	ServerAddress string
	ServerPort    int

	// ReadTimeout bounds a whole ReadRows call on the client side.
	ReadTimeout       time.Duration
	MaxValueBytes     int
	MaxChunksPerBatch int

	// SeedFile is a JSON rows file loaded into the table at startup. Relative paths are
	// resolved against the LiteTable directory.
	SeedFile string
	LogLevel string
	Debug    bool
}

// fileConfig mirrors the TOML keys; every key is optional.
type fileConfig struct {
	ServerAddress     string `toml:"server_address"`
	ServerPort        int    `toml:"server_port"`
	ReadTimeout       string `toml:"read_timeout"`
	MaxValueBytes     int    `toml:"max_value_bytes"`
	MaxChunksPerBatch int    `toml:"max_chunks_per_batch"`
	SeedFile          string `toml:"seed_file"`
	LogLevel          string `toml:"log_level"`
	Debug             bool   `toml:"debug"`
}

// Default returns the configuration used when no file overrides it.
func Default() *Config {
	return &Config{
		ServerAddress:     "127.0.0.1",
		ServerPort:        9443,
		ReadTimeout:       30 * time.Second,
		MaxValueBytes:     1024,
		MaxChunksPerBatch: 64,
		LogLevel:          "info",
	}
}

// NewConfig loads rowstream.toml from the LiteTable directory, or the defaults when there is no
// such file.
func NewConfig() (*Config, error) {
	liteTableDir, err := litetable.GetLitetableDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get LiteTable directory: %w", err)
	}

	configPath := filepath.Join(liteTableDir, configFileName)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := Default()
		return cfg, cfg.validate()
	}

	return Load(configPath)
}

// Load reads the TOML file at path on top of Default.
func Load(path string) (*Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config key: %s", undecoded[0].String())
	}

	if meta.IsDefined("server_address") {
		cfg.ServerAddress = strings.TrimSpace(raw.ServerAddress)
	}
	if meta.IsDefined("server_port") {
		cfg.ServerPort = raw.ServerPort
	}
	if meta.IsDefined("read_timeout") {
		cfg.ReadTimeout, err = time.ParseDuration(strings.TrimSpace(raw.ReadTimeout))
		if err != nil {
			return nil, fmt.Errorf("invalid read timeout value: %w", err)
		}
	}
	if meta.IsDefined("max_value_bytes") {
		cfg.MaxValueBytes = raw.MaxValueBytes
	}
	if meta.IsDefined("max_chunks_per_batch") {
		cfg.MaxChunksPerBatch = raw.MaxChunksPerBatch
	}
	if meta.IsDefined("seed_file") {
		cfg.SeedFile, err = litetable.ResolvePath(strings.TrimSpace(raw.SeedFile))
		if err != nil {
			return nil, fmt.Errorf("invalid seed file: %w", err)
		}
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("debug") {
		cfg.Debug = raw.Debug
	}

	if err = cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var errs []error
	if c.ServerAddress == "" {
		errs = append(errs, errors.New("server address is required"))
	}
	if c.ServerPort <= 0 || c.ServerPort > 65535 {
		errs = append(errs, fmt.Errorf("invalid server port: %d", c.ServerPort))
	}
	if c.ReadTimeout < 0 {
		errs = append(errs, fmt.Errorf("read timeout cannot be negative: %s", c.ReadTimeout))
	}
	if c.MaxValueBytes <= 0 {
		errs = append(errs, fmt.Errorf("max value bytes must be positive: %d", c.MaxValueBytes))
	}
	if c.MaxChunksPerBatch <= 0 {
		errs = append(errs, fmt.Errorf("max chunks per batch must be positive: %d", c.MaxChunksPerBatch))
	}
	return errors.Join(errs...)
}

// Addr is the host:port the server listens on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.ServerAddress, c.ServerPort)
}
