package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"mtr/internal/domain"
)

// Printer formats and displays runner output
type Printer struct{}

// NewPrinter creates a new Printer
func NewPrinter() *Printer {
	return &Printer{}
}

// LanguageHeader announces the start of one language's suite
func (p *Printer) LanguageHeader(lang string) {
	fmt.Println()
	color.Cyan("=== %s tests ===", lang)
}

// NoTests reports an empty suite
func (p *Printer) NoTests(lang string) {
	color.Yellow("No %s tests to execute", lang)
}

// Skipped reports a blacklisted test file
func (p *Printer) Skipped(path string) {
	color.Yellow("Skipping test (blacklisted): %s", path)
}

// RunningTest announces the test about to be executed
func (p *Printer) RunningTest(path string) {
	fmt.Println()
	color.White("Running test: %s", path)
}

// Command echoes the compile command before it runs
func (p *Printer) Command(argv []string) {
	fmt.Printf("Compile command: %s\n", strings.Join(argv, " "))
}

// Output passes subprocess stdout through for human consumption
func (p *Printer) Output(s string) {
	if s != "" {
		fmt.Print(s)
	}
}

// StepFailed reports a failed compile or run step with its captured stderr
func (p *Printer) StepFailed(stage, path string, result domain.StepResult) {
	if stage == "compile" {
		color.Red("Compilation failed for %s", path)
	} else {
		color.Red("Run failed for %s", path)
	}
	if result.Err != nil {
		color.Red("%v", result.Err)
	}
	if result.Stderr != "" {
		fmt.Print(result.Stderr)
	}
}

// AllPassed reports a fully successful run
func (p *Printer) AllPassed() {
	fmt.Println()
	color.Green("✓ All tests passed!")
}

// TestList prints discovered test files for one language, marking
// blacklisted entries.
func (p *Printer) TestList(lang string, tests []domain.TestFile, blacklisted func(string) bool) {
	p.LanguageHeader(lang)
	if len(tests) == 0 {
		color.Yellow("No %s tests found", lang)
		return
	}
	for _, test := range tests {
		if blacklisted != nil && blacklisted(test.Path) {
			color.Yellow("  %s (blacklisted)", test.Path)
			continue
		}
		fmt.Printf("  %s\n", test.Path)
	}
	color.Green("✓ Found %d %s test file(s)", len(tests), lang)
}
