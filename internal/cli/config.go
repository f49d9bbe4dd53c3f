package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds user preferences loaded from the configuration file.
// Every field is optional; flags always win over configured values.
type Config struct {
	// Policy is the default collinearity policy ("extreme" or "edges").
	Policy string `toml:"policy"`

	// Formats is the default output format list.
	Formats []string `toml:"formats"`

	// Width and Height are the default SVG frame dimensions.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// NoCache disables the local file cache.
	NoCache bool `toml:"no_cache"`

	// RedisAddr, when set, selects the Redis cache backend for serve.
	RedisAddr string `toml:"redis_addr"`

	// Addr is the default listen address for serve.
	Addr string `toml:"addr"`
}

// LoadConfig reads the configuration file, returning a zero Config when
// the file does not exist. Malformed files are ignored rather than
// failing startup; the CLI works fine on defaults.
func LoadConfig() Config {
	var cfg Config
	path, err := configPath()
	if err != nil {
		return cfg
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}
	}
	return cfg
}

// configPath returns the configuration file path using XDG standard
// (~/.config/hullscan/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
