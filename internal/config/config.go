package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Conversion settings
	Merge    bool
	Encoding string

	// Output settings
	Output    string // explicit output file, single source only
	OutputDir string // directory for output files instead of next to the source

	// Scanning settings
	PathsToIgnore    []string
	SourceExtensions []string
	NameFilter       string

	// Console settings
	Verbose bool
	Quiet   bool

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Merge      bool
	Encoding   string
	Output     string
	OutputDir  string
	NameFilter string
	ShowCases  bool
	Verbose    bool
	Quiet      bool
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		Merge:    DefaultMerge,
		Encoding: DefaultEncoding,
	}
	cfg.PathsToIgnore = make([]string, len(DefaultPathsToIgnore))
	copy(cfg.PathsToIgnore, DefaultPathsToIgnore)
	cfg.SourceExtensions = make([]string, len(DefaultSourceExtensions))
	copy(cfg.SourceExtensions, DefaultSourceExtensions)
	return cfg
}

// Load creates a config from defaults, the dotenv file at envPath (if present)
// and the process environment. Process variables win over dotenv values.
func Load(envPath string) (*Config, error) {
	cfg := New()

	dotenv, err := godotenv.Read(envPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read %s: %w", envPath, err)
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}

	if v, ok := lookup(EnvMerge); ok && v != "" {
		merge, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvMerge, v, err)
		}
		cfg.Merge = merge
	}
	if v, ok := lookup(EnvEncoding); ok && v != "" {
		cfg.Encoding = v
	}
	if v, ok := lookup(EnvOutputDir); ok {
		cfg.OutputDir = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings that can come from the environment or flags
func (c *Config) Validate() error {
	switch c.NormalizedEncoding() {
	case EncodingUTF8, EncodingGBK:
		return nil
	default:
		return fmt.Errorf("unsupported encoding %q (want %s or %s)", c.Encoding, EncodingUTF8, EncodingGBK)
	}
}

// NormalizedEncoding returns the encoding name in canonical form
func (c *Config) NormalizedEncoding() string {
	switch strings.ToLower(strings.TrimSpace(c.Encoding)) {
	case "", "utf-8", "utf8":
		return EncodingUTF8
	case "gbk", "cp936":
		return EncodingGBK
	default:
		return c.Encoding
	}
}

// GetOutputPath returns where the import file for source should go.
// derived is the path computed from the source name.
func (c *Config) GetOutputPath(derived string) string {
	if c.Output != "" {
		return c.Output
	}
	if c.OutputDir != "" {
		return filepath.Join(c.OutputDir, filepath.Base(derived))
	}
	return derived
}

// ApplyFlags copies flag values over the loaded settings. changed reports
// whether a flag was set on the command line, so unset flags keep env values.
func (c *Config) ApplyFlags(flags Flags, changed func(name string) bool) error {
	c.Flags = flags
	if changed("merge") {
		c.Merge = flags.Merge
	}
	if changed("encoding") {
		c.Encoding = flags.Encoding
	}
	if changed("output-dir") {
		c.OutputDir = flags.OutputDir
	}
	c.Output = flags.Output
	c.NameFilter = flags.NameFilter
	c.Verbose = flags.Verbose
	c.Quiet = flags.Quiet
	return c.Validate()
}
