// Package config provides reading and writing of thebook configuration.
// Supports both global (~/.thebook/config.yaml) and local (.thebook/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: goes back to the scope that was read, use --local for local.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.thebook/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is directory-specific config in .thebook/config.yaml
	ScopeLocal
)

// Corpus describes where the book comes from and where it is cached.
type Corpus struct {
	Dir       string `yaml:"dir,omitempty"`
	TreeURL   string `yaml:"tree_url,omitempty"`
	RawURL    string `yaml:"raw_url,omitempty"`
	Prefix    string `yaml:"prefix,omitempty"`
	Suffix    string `yaml:"suffix,omitempty"`
	UserAgent string `yaml:"user_agent,omitempty"`
}

// Search holds ranking and live search options.
type Search struct {
	PollInterval *int `yaml:"poll_interval,omitempty"` // milliseconds
	Workers      *int `yaml:"workers,omitempty"`
	Limit        *int `yaml:"limit,omitempty"`
}

// Render holds markdown rendering options.
type Render struct {
	Style string `yaml:"style,omitempty"`
}

// Defaults applied when not configured.
const (
	DefaultTreeURL      = "https://api.github.com/repos/rust-lang/book/git/trees/21a2ed14f4480dab62438dcc1130291bebc65379?recursive=1"
	DefaultRawURL       = "https://raw.githubusercontent.com/rust-lang/book/main/"
	DefaultPrefix       = "src/"
	DefaultSuffix       = ".md"
	DefaultUserAgent    = "thebook"
	DefaultPollInterval = 200 // milliseconds
	DefaultWorkers      = 1
	DefaultLimit        = 0
	DefaultStyle        = "dark"
)

// Validation bounds for configuration values.
const (
	MinPollInterval = 10
	MaxPollInterval = 10000
	MinWorkers      = 1
	MaxWorkers      = 64
	MinLimit        = 0
	MaxLimit        = 100000
)

// Styles lists the glamour standard styles accepted by render.style.
var Styles = []string{"dark", "light", "notty", "ascii", "dracula", "pink", "tokyo-night"}

// Config contains configuration for thebook.
type Config struct {
	Corpus Corpus `yaml:"corpus,omitempty"`
	Search Search `yaml:"search,omitempty"`
	Render Render `yaml:"render,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that all configured values are within acceptable bounds.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	if err := checkRange("search.poll_interval", c.Search.PollInterval, MinPollInterval, MaxPollInterval); err != nil {
		return err
	}
	if err := checkRange("search.workers", c.Search.Workers, MinWorkers, MaxWorkers); err != nil {
		return err
	}
	if err := checkRange("search.limit", c.Search.Limit, MinLimit, MaxLimit); err != nil {
		return err
	}
	if c.Render.Style != "" && !slices.Contains(Styles, c.Render.Style) {
		return fmt.Errorf("%w: render.style must be one of %v, got %q", ErrInvalidValue, Styles, c.Render.Style)
	}
	return nil
}

func checkRange(key string, v *int, lo, hi int) error {
	if v == nil {
		return nil
	}
	if *v < lo || *v > hi {
		return fmt.Errorf("%w: %s must be between %d and %d, got %d", ErrInvalidValue, key, lo, hi, *v)
	}
	return nil
}

// CorpusDir returns the cache directory (defaults to ~/.thebook/book).
func (c *Config) CorpusDir() string {
	if c.Corpus.Dir != "" {
		return expandHome(c.Corpus.Dir)
	}
	return filepath.Join(baseDir(), "book")
}

// TreeURL returns the listing URL of the remote book tree.
func (c *Config) TreeURL() string { return orDefault(c.Corpus.TreeURL, DefaultTreeURL) }

// RawURL returns the base URL raw files are downloaded from.
func (c *Config) RawURL() string { return orDefault(c.Corpus.RawURL, DefaultRawURL) }

// Prefix returns the tree path prefix of book pages.
func (c *Config) Prefix() string { return orDefault(c.Corpus.Prefix, DefaultPrefix) }

// Suffix returns the tree path suffix of book pages.
func (c *Config) Suffix() string { return orDefault(c.Corpus.Suffix, DefaultSuffix) }

// UserAgent returns the User-Agent sent when fetching.
func (c *Config) UserAgent() string { return orDefault(c.Corpus.UserAgent, DefaultUserAgent) }

// PollInterval returns how long the reader waits for input before re-ranking.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(orDefaultInt(c.Search.PollInterval, DefaultPollInterval)) * time.Millisecond
}

// Workers returns the number of documents scored concurrently (defaults to 1).
func (c *Config) Workers() int { return orDefaultInt(c.Search.Workers, DefaultWorkers) }

// Limit returns the result cap for non-interactive search (0 = unlimited).
func (c *Config) Limit() int { return orDefaultInt(c.Search.Limit, DefaultLimit) }

// Style returns the glamour style name (defaults to "dark").
func (c *Config) Style() string { return orDefault(c.Render.Style, DefaultStyle) }

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func orDefaultInt(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

// homeDir is overridden in tests.
var homeDir = os.UserHomeDir

// baseDir returns ~/.thebook, or .thebook when the home directory is unknown.
func baseDir() string {
	home, err := homeDir()
	if err != nil {
		return ".thebook"
	}
	return filepath.Join(home, ".thebook")
}

func expandHome(p string) string {
	if p == "~" || len(p) > 1 && p[:2] == "~/" {
		if home, err := homeDir(); err == nil {
			return filepath.Join(home, p[1:])
		}
	}
	return p
}

// BaseDir returns the per-user thebook directory (~/.thebook).
func BaseDir() string {
	return baseDir()
}

// LocalPath returns the path to the local (directory) config file.
func LocalPath() string {
	return filepath.Join(".thebook", "config.yaml")
}

// GlobalPath returns the path to the global (user) config file: ~/.thebook/config.yaml
func GlobalPath() string {
	home, err := homeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".thebook", "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}
	return loadPath(path, scope)
}

func loadPath(path string, scope Scope) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// pathForScope returns the filesystem path for a given scope.
func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
