package cli

import "mtr/internal/config"

// Flags holds command-line flags
type Flags struct {
	Language        string
	TestDirectory   string
	OutputDirectory string
	Blacklist       []string
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Language:        f.Language,
		TestDirectory:   f.TestDirectory,
		OutputDirectory: f.OutputDirectory,
		Blacklist:       f.Blacklist,
	}
}
