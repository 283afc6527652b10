package execution

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mtr/internal/config"
	"mtr/internal/discovery"
	"mtr/internal/domain"
	"mtr/internal/language"
	"mtr/internal/ui"
)

// fakeRunner records every command and fails the ones selected by failOn.
type fakeRunner struct {
	calls  [][]string
	failOn func(argv []string) bool
}

func (f *fakeRunner) Run(argv []string) domain.StepResult {
	f.calls = append(f.calls, argv)
	if f.failOn != nil && f.failOn(argv) {
		return domain.StepResult{ExitCode: 1, Stdout: "partial output\n", Stderr: "boom\n"}
	}
	return domain.StepResult{Success: true, Stdout: "ok\n"}
}

func newSuiteConfig(t *testing.T, lang string, files ...string) *config.Config {
	t.Helper()
	tmpDir := t.TempDir()
	suiteDir := filepath.Join(tmpDir, "tests", lang)
	if err := os.MkdirAll(suiteDir, 0755); err != nil {
		t.Fatalf("failed to create suite dir: %v", err)
	}
	for _, file := range files {
		if err := os.WriteFile(filepath.Join(suiteDir, file), []byte("test"), 0644); err != nil {
			t.Fatalf("failed to create file %s: %v", file, err)
		}
	}

	cfg := config.New()
	cfg.TestDirectory = filepath.Join(tmpDir, "tests")
	cfg.OutputDirectory = filepath.Join(tmpDir, "bin")
	return cfg
}

func newOrchestrator(cfg *config.Config, id language.ID, runner Runner, blacklist []string) *Orchestrator {
	return NewOrchestrator(cfg, language.ForID(id), runner, discovery.NewBlacklist(blacklist), ui.NewPrinter())
}

func TestOrchestrator_AllPass(t *testing.T) {
	cfg := newSuiteConfig(t, "cpp", "a.cpp", "b.cpp")
	runner := &fakeRunner{}

	err := newOrchestrator(cfg, language.Cpp, runner, nil).Run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// compile+run per test file
	if len(runner.calls) != 4 {
		t.Fatalf("expected 4 commands, got %d", len(runner.calls))
	}

	// Compile commands carry the source, run commands are the bare binary path
	foundSource := false
	for _, arg := range runner.calls[0] {
		if strings.HasSuffix(arg, "a.cpp") {
			foundSource = true
		}
	}
	if !foundSource {
		t.Errorf("first compile should reference a.cpp: %v", runner.calls[0])
	}
	if len(runner.calls[1]) != 1 {
		t.Errorf("expected run command to be the binary path alone, got %v", runner.calls[1])
	}
	wantBinary := filepath.Join(cfg.ArtifactDir("cpp"), "a")
	if runner.calls[1][0] != wantBinary {
		t.Errorf("expected run command %s, got %s", wantBinary, runner.calls[1][0])
	}
}

func TestOrchestrator_CreatesArtifactDir(t *testing.T) {
	cfg := newSuiteConfig(t, "cpp", "a.cpp")

	if err := newOrchestrator(cfg, language.Cpp, &fakeRunner{}, nil).Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	info, err := os.Stat(cfg.ArtifactDir("cpp"))
	if err != nil || !info.IsDir() {
		t.Errorf("expected artifact directory to exist before tests run")
	}

	// Running again must be idempotent
	if err := newOrchestrator(cfg, language.Cpp, &fakeRunner{}, nil).Run(); err != nil {
		t.Errorf("second run failed: %v", err)
	}
}

func TestOrchestrator_FailFastOnCompile(t *testing.T) {
	cfg := newSuiteConfig(t, "cpp", "a.cpp", "b.cpp")
	runner := &fakeRunner{
		failOn: func(argv []string) bool { return true },
	}

	err := newOrchestrator(cfg, language.Cpp, runner, nil).Run()
	if err == nil {
		t.Fatal("expected error")
	}

	var stepErr *StepError
	if !errors.As(err, &stepErr) {
		t.Fatalf("expected *StepError, got %T", err)
	}
	if stepErr.Stage != StageCompile {
		t.Errorf("expected compile stage, got %s", stepErr.Stage)
	}
	if stepErr.Subject != "a.cpp" {
		t.Errorf("expected failure on a.cpp, got %s", stepErr.Subject)
	}

	// b.cpp must never be compiled after a.cpp fails
	if len(runner.calls) != 1 {
		t.Errorf("expected 1 command before aborting, got %d", len(runner.calls))
	}
}

func TestOrchestrator_FailFastOnRun(t *testing.T) {
	cfg := newSuiteConfig(t, "cpp", "a.cpp", "b.cpp")
	runner := &fakeRunner{
		// Fail the run step (the bare binary path), not the compile
		failOn: func(argv []string) bool { return len(argv) == 1 },
	}

	err := newOrchestrator(cfg, language.Cpp, runner, nil).Run()

	var stepErr *StepError
	if !errors.As(err, &stepErr) {
		t.Fatalf("expected *StepError, got %T", err)
	}
	if stepErr.Stage != StageRun {
		t.Errorf("expected run stage, got %s", stepErr.Stage)
	}
	// A run failure names the binary, not the test source
	wantBinary := filepath.Join(cfg.ArtifactDir("cpp"), "a")
	if stepErr.Subject != wantBinary {
		t.Errorf("expected failure on %s, got %s", wantBinary, stepErr.Subject)
	}
	if len(runner.calls) != 2 {
		t.Errorf("expected compile+run for a.cpp only, got %d commands", len(runner.calls))
	}
}

func TestOrchestrator_BlacklistSkips(t *testing.T) {
	cfg := newSuiteConfig(t, "cpp", "a.cpp", "b.cpp")
	runner := &fakeRunner{}

	err := newOrchestrator(cfg, language.Cpp, runner, []string{"b.cpp"}).Run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Exactly one compile and one run, both for a.cpp
	if len(runner.calls) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(runner.calls))
	}
	for _, argv := range runner.calls {
		if strings.Contains(strings.Join(argv, " "), "b.cpp") {
			t.Errorf("blacklisted b.cpp must never be compiled or run: %v", argv)
		}
	}
}

func TestOrchestrator_NoRunStepForPython(t *testing.T) {
	cfg := newSuiteConfig(t, "py", "test_a.py")
	runner := &fakeRunner{}

	err := newOrchestrator(cfg, language.Python, runner, nil).Run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// pytest runs the test itself, no second command
	if len(runner.calls) != 1 {
		t.Fatalf("expected 1 command, got %d", len(runner.calls))
	}
	if runner.calls[0][0] != config.DefaultPytest {
		t.Errorf("expected %s invocation, got %v", config.DefaultPytest, runner.calls[0])
	}
}

func TestOrchestrator_EmptySuite(t *testing.T) {
	cfg := newSuiteConfig(t, "cpp")
	runner := &fakeRunner{}

	if err := newOrchestrator(cfg, language.Cpp, runner, nil).Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.calls) != 0 {
		t.Errorf("expected no commands for empty suite, got %d", len(runner.calls))
	}
}

func TestOrchestrator_MissingSuiteDir(t *testing.T) {
	cfg := config.New()
	cfg.TestDirectory = filepath.Join(t.TempDir(), "missing")
	cfg.OutputDirectory = filepath.Join(t.TempDir(), "bin")

	err := newOrchestrator(cfg, language.Cpp, &fakeRunner{}, nil).Run()
	if err == nil {
		t.Fatal("expected error for missing suite directory")
	}
}
