package execution

import (
	"bytes"
	"errors"
	"os/exec"

	"mtr/internal/domain"
)

// Runner executes a single command vector and reports its outcome
type Runner interface {
	Run(argv []string) domain.StepResult
}

// ExecRunner runs commands as blocking subprocesses. There is no timeout:
// a hung compiler or test binary blocks the whole run.
type ExecRunner struct{}

// NewExecRunner creates a new ExecRunner
func NewExecRunner() ExecRunner {
	return ExecRunner{}
}

// Run spawns argv as a subprocess, waits for it, and captures stdout and
// stderr separately.
func (ExecRunner) Run(argv []string) domain.StepResult {
	cmd := exec.Command(argv[0], argv[1:]...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := domain.StepResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err == nil {
		result.Success = true
		return result
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result
	}

	// The process could not be started (e.g. compiler not installed)
	result.ExitCode = -1
	result.Err = err
	return result
}
