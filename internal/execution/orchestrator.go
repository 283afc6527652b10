package execution

import (
	"fmt"
	"os"
	"path/filepath"

	"mtr/internal/config"
	"mtr/internal/discovery"
	"mtr/internal/domain"
	"mtr/internal/language"
	"mtr/internal/ui"
)

// Stage names the step of the test lifecycle that failed
type Stage string

const (
	StageCompile Stage = "compile"
	StageRun     Stage = "run"
)

// StepError reports the first failing compile or run step. Any StepError
// aborts the whole run: no further test files are processed.
type StepError struct {
	Stage Stage
	// Subject is the test source for a compile failure, the binary path
	// for a run failure.
	Subject string
	Result  domain.StepResult
}

func (e *StepError) Error() string {
	if e.Result.Err != nil {
		return fmt.Sprintf("%s failed for %s: %v", e.Stage, e.Subject, e.Result.Err)
	}
	return fmt.Sprintf("%s failed for %s (exit %d)", e.Stage, e.Subject, e.Result.ExitCode)
}

func (e *StepError) Unwrap() error {
	return e.Result.Err
}

// Orchestrator executes one language's test suite sequentially, stopping at
// the first failure. A fresh Orchestrator is constructed per language; runs
// share nothing except the blacklist value.
type Orchestrator struct {
	config       *config.Config
	spec         language.Spec
	runner       Runner
	blacklist    discovery.Blacklist
	printer      *ui.Printer
	showProgress bool
}

// NewOrchestrator creates an Orchestrator for one language
func NewOrchestrator(cfg *config.Config, spec language.Spec, runner Runner, blacklist discovery.Blacklist, printer *ui.Printer) *Orchestrator {
	return &Orchestrator{
		config:    cfg,
		spec:      spec,
		runner:    runner,
		blacklist: blacklist,
		printer:   printer,
	}
}

// EnableProgress shows a progress bar on stderr while the suite runs
func (o *Orchestrator) EnableProgress() {
	o.showProgress = true
}

// Run discovers and executes the suite. It returns a *StepError on the first
// compile or run failure; the caller decides process termination.
func (o *Orchestrator) Run() error {
	lang := o.spec.ID().String()

	// The artifact directory must exist before any test runs
	outDir := o.config.ArtifactDir(lang)
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	tests, err := o.spec.Discover(o.config)
	if err != nil {
		return err
	}
	if len(tests) == 0 {
		o.printer.NoTests(lang)
		return nil
	}

	var progress *ui.ProgressBar
	if o.showProgress {
		progress = ui.NewProgressBar(lang, len(tests))
	}

	for _, test := range tests {
		if o.blacklist.Skip(test.Path) {
			o.printer.Skipped(test.Path)
			if progress != nil {
				progress.Advance()
			}
			continue
		}

		o.printer.RunningTest(test.Path)

		outBinary := filepath.Join(outDir, test.Stem())
		pair := domain.CommandPair{
			Compile: o.spec.CompileCommand(o.config, test, outBinary),
			Run:     o.spec.RunCommand(o.config, outBinary),
		}
		if err := o.step(StageCompile, test.Path, pair.Compile); err != nil {
			return err
		}
		if len(pair.Run) > 0 {
			if err := o.step(StageRun, outBinary, pair.Run); err != nil {
				return err
			}
		}

		if progress != nil {
			progress.Advance()
		}
	}

	if progress != nil {
		progress.Finish()
	}
	return nil
}

// step executes one command vector. Captured stdout is printed even on
// success; stderr only on failure.
func (o *Orchestrator) step(stage Stage, subject string, argv []string) error {
	if stage == StageCompile {
		o.printer.Command(argv)
	}

	result := o.runner.Run(argv)
	o.printer.Output(result.Stdout)

	if result.Success {
		return nil
	}

	o.printer.StepFailed(string(stage), subject, result)
	return &StepError{Stage: stage, Subject: subject, Result: result}
}
