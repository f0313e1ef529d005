package domain

// ExecutionResult holds the captured streams of one external process run
type ExecutionResult struct {
	Stdout   string // Complete standard output text
	Stderr   string // Complete standard error text
	ExitCode int    // Process exit code (0 on success)
}

// Outcome classifies the result of evaluating one test case
type Outcome int

const (
	// OutcomePassed means captured stdout matched the fixture exactly
	OutcomePassed Outcome = iota
	// OutcomeMismatch means captured stdout differed from the fixture
	OutcomeMismatch
	// OutcomeNoFixture means no expected-output file was found
	OutcomeNoFixture
	// OutcomeProcessError means the external command exited non-zero
	OutcomeProcessError
	// OutcomeBlank means the command exited zero but produced no
	// stdout to compare
	OutcomeBlank
)

// Passed reports whether the outcome counts as a success
func (o Outcome) Passed() bool {
	return o == OutcomePassed
}

// String returns the failure-kind label used in stored results
func (o Outcome) String() string {
	switch o {
	case OutcomePassed:
		return "passed"
	case OutcomeMismatch:
		return "mismatch"
	case OutcomeNoFixture:
		return "no_expected_file"
	case OutcomeProcessError:
		return "process_error"
	case OutcomeBlank:
		return "blank_output"
	}
	return "unknown"
}

// CaseResult is the display-ready result of evaluating one test case
type CaseResult struct {
	Case        TestCase
	Ordinal     int    // 1-based case number at the time of evaluation
	Outcome     Outcome
	DisplayPath string // Full or shortened path, per configuration

	// Captured detail, kept for the persisted failure record
	Stdout   string
	Stderr   string
	Expected string
	ExitCode int
}
