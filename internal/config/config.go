// Package config loads jsondp's process-level configuration: which
// dictionaries to use, where the key/value store and JSON-RPC node live,
// and how often the watch loop polls.
//
// Load reads a YAML file, expands ${VAR} references against the process
// environment (so secrets like DATABASE_URL never need to live in the
// file itself), and unmarshals it with gopkg.in/yaml.v3 — the same
// two-step "expand then unmarshal" approach the rest of this codebase's
// command-line tools use.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level shape of config.yaml.
type Config struct {
	Dictionaries Dictionaries `yaml:"dictionaries"`
	Database     Database     `yaml:"database"`
	RPC          RPC          `yaml:"rpc"`
	Watch        Watch        `yaml:"watch"`
}

// Dictionaries names on-disk text files for the codec's two dictionaries.
// Load parses this section, but no command reads it: the commands take
// their dictionaries from the --field-dict/--value-dict flags only, falling
// back to the built-in Ethereum field dictionary (internal/ethdict) and to
// no value dictionary (dictionary.NoDictionary) when a flag is empty.
type Dictionaries struct {
	Field string `yaml:"field"`
	Value string `yaml:"value"`
}

// Database holds the connection string and table name for the key/value
// store (internal/kv).
type Database struct {
	URL   string `yaml:"url"`
	Table string `yaml:"table"`
}

// RPC holds the JSON-RPC node address and the client's overall request
// deadline (internal/ethrpc).
type RPC struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`
}

// Watch holds the poll interval for the `jsondp watch` log-streaming loop.
type Watch struct {
	Interval time.Duration `yaml:"interval"`
}

// Load reads path, expands environment variables, and unmarshals the
// result into a Config. The caller should load any .env file into the
// process environment first so ${VAR} expansion here has something to
// expand against.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.Database.Table == "" {
		cfg.Database.Table = "jsondp_blocks"
	}
	if cfg.RPC.Timeout == 0 {
		cfg.RPC.Timeout = 10 * time.Second
	}
	if cfg.Watch.Interval == 0 {
		cfg.Watch.Interval = 12 * time.Second
	}
	return &cfg, nil
}
