package cli

import "dtr/internal/config"

// Flags holds command-line flags
type Flags struct {
	ConfigFile   string
	InputDir     string
	Debug        bool
	VerboseNames bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		ConfigFile:   f.ConfigFile,
		InputDir:     f.InputDir,
		Debug:        f.Debug,
		VerboseNames: f.VerboseNames,
	}
}
