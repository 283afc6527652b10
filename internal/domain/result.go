package domain

// StepResult represents the outcome of a single compile or run subprocess
type StepResult struct {
	Success  bool
	ExitCode int    // Exit code of the subprocess, -1 if it could not be started
	Stdout   string // Captured standard output, printed unconditionally
	Stderr   string // Captured standard error, printed only on failure
	Err      error  // Non-nil when the process could not be started at all
}
