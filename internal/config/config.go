// Package config handles the configuration directory, the optional config file
// and environment overrides.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application directory name.
	AppName = "taskdeck"

	// ConfigFile is the optional YAML config filename inside the config dir.
	ConfigFile = "config.yaml"

	// SessionFile is the stored session token filename.
	SessionFile = "session.json"

	// DefaultAPIURL is used when no API URL is configured anywhere.
	DefaultAPIURL = "http://localhost:8080"

	// DefaultListenAddr is the web client's default listen address. The web
	// client acts on the user's stored session, so it only listens on loopback
	// unless configured otherwise.
	DefaultListenAddr = "127.0.0.1:3000"
)

// Environment variables consulted by Load. APIURLEnv wins over PublicAPIURLEnv.
const (
	APIURLEnv       = "API_URL"
	PublicAPIURLEnv = "NEXT_PUBLIC_API_URL"
	ListenAddrEnv   = "TASKDECK_LISTEN_ADDR"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// APIURL is the base URL of the task API, without a trailing slash.
	APIURL string

	// ListenAddr is the address the web client listens on.
	ListenAddr string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// fileConfig is the on-disk shape of config.yaml.
type fileConfig struct {
	APIURL     string `yaml:"api_url"`
	ListenAddr string `yaml:"listen_addr"`
	Debug      bool   `yaml:"debug"`
}

// New creates a new Config with the default or specified config directory
// and default settings. It does not read any file.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{
		Dir:        dir,
		APIURL:     DefaultAPIURL,
		ListenAddr: DefaultListenAddr,
	}, nil
}

// Load creates a Config and applies, in increasing precedence: defaults,
// config.yaml in the config dir, a .env file in the working directory, and
// the process environment. A missing config.yaml or .env is not an error.
func Load(configDir string) (*Config, error) {
	cfg, err := New(configDir)
	if err != nil {
		return nil, err
	}

	if err := cfg.loadFile(); err != nil {
		return nil, err
	}

	// godotenv never overrides variables that are already set.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg.applyEnv()

	if err := cfg.SetAPIURL(cfg.APIURL); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile() error {
	data, err := os.ReadFile(c.FilePath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", ConfigFile, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("invalid %s: %w", ConfigFile, err)
	}

	if fc.APIURL != "" {
		c.APIURL = fc.APIURL
	}
	if fc.ListenAddr != "" {
		c.ListenAddr = fc.ListenAddr
	}
	c.Debug = c.Debug || fc.Debug
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(PublicAPIURLEnv); v != "" {
		c.APIURL = v
	}
	if v := os.Getenv(APIURLEnv); v != "" {
		c.APIURL = v
	}
	if v := os.Getenv(ListenAddrEnv); v != "" {
		c.ListenAddr = v
	}
}

// SetAPIURL validates and stores the API base URL.
// Only http and https URLs with a host are accepted.
func (c *Config) SetAPIURL(raw string) error {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid api url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid api url: %s", raw)
	}
	c.APIURL = strings.TrimRight(raw, "/")
	return nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// FilePath returns the path to config.yaml.
func (c *Config) FilePath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// SessionPath returns the path to the stored session file.
func (c *Config) SessionPath() string {
	return filepath.Join(c.Dir, SessionFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasSession checks if the session file exists.
func (c *Config) HasSession() bool {
	_, err := os.Stat(c.SessionPath())
	return err == nil
}
