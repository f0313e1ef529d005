package domain

// CaseFailure is the persisted record of one failed test case
type CaseFailure struct {
	Path        string `json:"path"`
	DisplayPath string `json:"display_path"`
	Kind        string `json:"kind"` // mismatch, no_expected_file, process_error, blank_output
	ExitCode    int    `json:"exit_code,omitempty"`
	Stdout      string `json:"stdout,omitempty"`
	Stderr      string `json:"stderr,omitempty"`
	Expected    string `json:"expected,omitempty"`
	Resolved    bool   `json:"resolved,omitempty"` // Toggled from the failures viewer
}

// NewCaseFailure builds the persisted record for a failed case result
func NewCaseFailure(r CaseResult) CaseFailure {
	return CaseFailure{
		Path:        r.Case.Path,
		DisplayPath: r.DisplayPath,
		Kind:        r.Outcome.String(),
		ExitCode:    r.ExitCode,
		Stdout:      r.Stdout,
		Stderr:      r.Stderr,
		Expected:    r.Expected,
	}
}

// RunMeta contains metadata about a test run
type RunMeta struct {
	TotalCases      int     `json:"total_cases"`
	PassedCases     int     `json:"passed_cases"`
	FailedCases     int     `json:"failed_cases"`
	PassRate        float64 `json:"pass_rate"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// RunOutput is the complete persisted structure of one run's results
type RunOutput struct {
	Meta    RunMeta       `json:"meta"`
	Details []CaseFailure `json:"details"`
}
