// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go to isolate the key enumeration and string-based
// get/set logic used by the config command, where settings are addressed by
// dotted keys (e.g., "search.poll_interval").
//
// Design: Pointers are used for optional numeric fields so we can distinguish
// between "not set" (nil) and "explicitly set to zero". Defaults are only
// applied when the user hasn't set a value.

package config

import (
	"fmt"
	"slices"
	"strconv"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"corpus.dir", "corpus.tree_url", "corpus.raw_url",
		"corpus.prefix", "corpus.suffix", "corpus.user_agent",
		"search.poll_interval", "search.workers", "search.limit",
		"render.style",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the effective value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "corpus.dir":
		return c.CorpusDir(), nil
	case "corpus.tree_url":
		return c.TreeURL(), nil
	case "corpus.raw_url":
		return c.RawURL(), nil
	case "corpus.prefix":
		return c.Prefix(), nil
	case "corpus.suffix":
		return c.Suffix(), nil
	case "corpus.user_agent":
		return c.UserAgent(), nil
	case "search.poll_interval":
		return strconv.Itoa(int(c.PollInterval().Milliseconds())), nil
	case "search.workers":
		return strconv.Itoa(c.Workers()), nil
	case "search.limit":
		return strconv.Itoa(c.Limit()), nil
	case "render.style":
		return c.Style(), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "corpus.dir":
		c.Corpus.Dir = value
	case "corpus.tree_url":
		c.Corpus.TreeURL = value
	case "corpus.raw_url":
		c.Corpus.RawURL = value
	case "corpus.prefix":
		c.Corpus.Prefix = value
	case "corpus.suffix":
		c.Corpus.Suffix = value
	case "corpus.user_agent":
		c.Corpus.UserAgent = value
	case "search.poll_interval":
		n, err := parseInt(key, value, MinPollInterval, MaxPollInterval)
		if err != nil {
			return err
		}
		c.Search.PollInterval = &n
	case "search.workers":
		n, err := parseInt(key, value, MinWorkers, MaxWorkers)
		if err != nil {
			return err
		}
		c.Search.Workers = &n
	case "search.limit":
		n, err := parseInt(key, value, MinLimit, MaxLimit)
		if err != nil {
			return err
		}
		c.Search.Limit = &n
	case "render.style":
		if !slices.Contains(Styles, value) {
			return fmt.Errorf("%w: render.style must be one of %v", ErrInvalidValue, Styles)
		}
		c.Render.Style = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

func parseInt(key, value string, lo, hi int) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n < lo || n > hi {
		return 0, fmt.Errorf("%w: %s must be an integer between %d and %d", ErrInvalidValue, key, lo, hi)
	}
	return n, nil
}

// All returns all effective configuration values as a map.
func (c *Config) All() map[string]string {
	m := make(map[string]string, len(ValidKeys()))
	for _, k := range ValidKeys() {
		m[k], _ = c.Get(k)
	}
	return m
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "corpus.dir":
		return c.Corpus.Dir != ""
	case "corpus.tree_url":
		return c.Corpus.TreeURL != ""
	case "corpus.raw_url":
		return c.Corpus.RawURL != ""
	case "corpus.prefix":
		return c.Corpus.Prefix != ""
	case "corpus.suffix":
		return c.Corpus.Suffix != ""
	case "corpus.user_agent":
		return c.Corpus.UserAgent != ""
	case "search.poll_interval":
		return c.Search.PollInterval != nil
	case "search.workers":
		return c.Search.Workers != nil
	case "search.limit":
		return c.Search.Limit != nil
	case "render.style":
		return c.Render.Style != ""
	default:
		return false
	}
}
