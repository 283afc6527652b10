package language

import (
	"fmt"

	"mtr/internal/config"
	"mtr/internal/domain"
)

// ID identifies a supported language
type ID string

const (
	Cpp    ID = "cpp"
	Go     ID = "go"
	Python ID = "py"
)

// String returns the language identifier as used on the command line
func (id ID) String() string {
	return string(id)
}

// Spec describes how one language discovers and executes its tests
type Spec interface {
	// ID returns the language identifier
	ID() ID
	// Discover returns the candidate test files for this language
	Discover(cfg *config.Config) ([]domain.TestFile, error)
	// CompileCommand builds the argv that compiles (or directly executes) one test
	CompileCommand(cfg *config.Config, test domain.TestFile, outBinary string) []string
	// RunCommand builds the argv that runs the compiled artifact.
	// A nil result means the compile step already executed the test.
	RunCommand(cfg *config.Config, outBinary string) []string
}

// All returns every supported language in the fixed execution order
func All() []ID {
	return []ID{Cpp, Go, Python}
}

// Parse validates a language identifier. Unrecognized identifiers are a
// configuration error, rejected before any discovery or execution happens.
func Parse(s string) (ID, error) {
	switch ID(s) {
	case Cpp, Go, Python:
		return ID(s), nil
	}
	return "", fmt.Errorf("unsupported language: %q", s)
}

// ParseSelection resolves a --language flag value into the list of languages
// to process. "all" expands to every language in the fixed order.
func ParseSelection(s string) ([]ID, error) {
	if s == "all" {
		return All(), nil
	}
	id, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return []ID{id}, nil
}

// ForID returns the Spec for a language. IDs come from Parse, so the table
// is closed.
func ForID(id ID) Spec {
	switch id {
	case Cpp:
		return cppSpec{}
	case Go:
		return goSpec{}
	case Python:
		return pySpec{}
	}
	panic(fmt.Sprintf("no spec for language %q", id))
}
