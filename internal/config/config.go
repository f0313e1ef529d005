package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/ini.v1"
)

// Config holds all configuration for the harness, one struct per INI section
type Config struct {
	Paths   Paths
	Running Running
	Testing Testing
	General General

	// Command flags
	Flags Flags
}

// Paths holds the [paths] section
type Paths struct {
	InputDir              string `ini:"input_dir"`
	ExpectedDir           string `ini:"expected_dir"`
	AllowedFileExtensions string `ini:"allowed_file_extensions"`
	ResultsFile           string `ini:"results_file"`
}

// Running holds the [running] section
type Running struct {
	RunCommand string `ini:"run_command"`
	Debug      bool   `ini:"debug"`
	Shell      string `ini:"shell"`
}

// Testing holds the [testing] section
type Testing struct {
	Testing        bool `ini:"testing"`
	ShowIndividual bool `ini:"show_individual"`
	VerboseNames   bool `ini:"verbose_names"`
}

// General holds the [general] section
type General struct {
	ExcludeHiddenDirectories bool `ini:"exclude_hidden_directories"`
}

// Flags holds command-line flags applied over the file values
type Flags struct {
	ConfigFile   string
	InputDir     string
	Debug        bool
	VerboseNames bool
}

// New creates a Config with defaults
func New() *Config {
	return &Config{
		Paths:   Paths{ResultsFile: DefaultResultsFile},
		Running: Running{Shell: DefaultShell},
	}
}

// Load reads the config file, applies .env/environment overrides and
// then command-line flags, in that order of increasing precedence.
func Load(flags Flags) (*Config, error) {
	// A missing .env is fine; it only supplies optional overrides.
	_ = godotenv.Load()

	path := flags.ConfigFile
	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path == "" {
		path = DefaultConfigFile
	}

	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := New()
	cfg.Flags = flags
	if err := file.Section("paths").MapTo(&cfg.Paths); err != nil {
		return nil, fmt.Errorf("parse [paths]: %w", err)
	}
	if err := file.Section("running").MapTo(&cfg.Running); err != nil {
		return nil, fmt.Errorf("parse [running]: %w", err)
	}
	if err := file.Section("testing").MapTo(&cfg.Testing); err != nil {
		return nil, fmt.Errorf("parse [testing]: %w", err)
	}
	if err := file.Section("general").MapTo(&cfg.General); err != nil {
		return nil, fmt.Errorf("parse [general]: %w", err)
	}

	if v := os.Getenv(EnvInputDir); v != "" {
		cfg.Paths.InputDir = v
	}
	if v := os.Getenv(EnvExpectedDir); v != "" {
		cfg.Paths.ExpectedDir = v
	}
	if flags.InputDir != "" {
		cfg.Paths.InputDir = flags.InputDir
	}
	if flags.Debug {
		cfg.Running.Debug = true
	}
	if flags.VerboseNames {
		cfg.Testing.VerboseNames = true
	}

	if cfg.Running.Shell == "" {
		cfg.Running.Shell = DefaultShell
	}
	if cfg.Paths.ResultsFile == "" {
		cfg.Paths.ResultsFile = DefaultResultsFile
	}

	return cfg, cfg.validate()
}

func (c *Config) validate() error {
	if c.Paths.InputDir == "" {
		return fmt.Errorf("paths.input_dir is required")
	}
	if c.Running.RunCommand == "" {
		return fmt.Errorf("running.run_command is required")
	}
	if c.Testing.Testing && c.Paths.ExpectedDir == "" {
		return fmt.Errorf("paths.expected_dir is required in test mode")
	}
	return nil
}

// GetResultsPath returns the absolute path of the results JSON file so
// run and failures always read/write the same file regardless of cwd.
func (c *Config) GetResultsPath() string {
	if abs, err := filepath.Abs(c.Paths.ResultsFile); err == nil {
		return abs
	}
	return c.Paths.ResultsFile
}
