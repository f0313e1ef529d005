package config

const (
	// DefaultConfigFile is the config file read when no --config flag is given
	DefaultConfigFile = "config.ini"
	// DefaultShell runs the configured command line
	DefaultShell = "/bin/sh"
	// DefaultResultsFile is where run results are persisted
	DefaultResultsFile = "storage/test-results.json"
	// ExpectedPrefix is prepended to an input's base name to form its fixture name
	ExpectedPrefix = "expected_"
	// HiddenPrefix marks directories pruned when exclude_hidden_directories is set
	HiddenPrefix = "."
	// Placeholder is the token in run_command replaced with the input path
	Placeholder = "?"
)

// Env variable names honored as overrides (loaded from .env if present)
const (
	EnvConfigFile  = "DTR_CONFIG"
	EnvInputDir    = "DTR_INPUT_DIR"
	EnvExpectedDir = "DTR_EXPECTED_DIR"
)
