package cli

import "xmind2zentao/internal/config"

// Flags holds command-line flags
type Flags struct {
	Merge      bool
	Encoding   string
	Output     string
	OutputDir  string
	NameFilter string
	ShowCases  bool
	Verbose    bool
	Quiet      bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Merge:      f.Merge,
		Encoding:   f.Encoding,
		Output:     f.Output,
		OutputDir:  f.OutputDir,
		NameFilter: f.NameFilter,
		ShowCases:  f.ShowCases,
		Verbose:    f.Verbose,
		Quiet:      f.Quiet,
	}
}
