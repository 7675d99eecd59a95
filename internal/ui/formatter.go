package ui

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fatih/color"

	"xmind2zentao/internal/config"
	"xmind2zentao/internal/domain"
	"xmind2zentao/internal/parser"
)

// Formatter formats and displays console output
type Formatter struct {
	config *config.Config
	parser parser.Parser
	out    io.Writer
	errOut io.Writer
}

// NewFormatter creates a new Formatter writing to stdout and stderr
func NewFormatter(cfg *config.Config, p parser.Parser) *Formatter {
	return &Formatter{
		config: cfg,
		parser: p,
		out:    color.Output,
		errOut: color.Error,
	}
}

// SetOutput redirects normal and diagnostic output
func (f *Formatter) SetOutput(out, errOut io.Writer) {
	f.out = out
	f.errOut = errOut
}

// Info prints an advisory message unless quiet
func (f *Formatter) Info(format string, args ...interface{}) {
	if f.config.Quiet {
		return
	}
	color.New(color.FgCyan).Fprintf(f.out, format+"\n", args...)
}

// Warn prints a warning unless quiet
func (f *Formatter) Warn(format string, args ...interface{}) {
	if f.config.Quiet {
		return
	}
	color.New(color.FgYellow).Fprintf(f.out, format+"\n", args...)
}

// VerboseLog prints a diagnostic line only in verbose mode
func (f *Formatter) VerboseLog(format string, args ...interface{}) {
	if !f.config.Verbose {
		return
	}
	color.New(color.FgHiBlack).Fprintf(f.errOut, format+"\n", args...)
}

// PrintSummary prints a table of converted files
func (f *Formatter) PrintSummary(results []*domain.ConversionResult) {
	if f.config.Quiet || len(results) == 0 {
		return
	}

	var cases, rows, merged int
	for _, r := range results {
		cases += r.Cases
		rows += r.Rows
		if r.Merged {
			merged++
		}
	}

	fmt.Fprintln(f.out)
	cyan := color.New(color.FgCyan)
	cyan.Fprintln(f.out, "╔═══════════════════════════════════════════════════════════════╗")
	cyan.Fprintln(f.out, "║                     Conversion Summary                        ║")
	cyan.Fprintln(f.out, "╚═══════════════════════════════════════════════════════════════╝")

	fmt.Fprintln(f.out, "┌─────────────────────────────────┬─────────────────────────────┐")
	f.printStat("Source Files", fmt.Sprintf("%d", len(results)), color.FgWhite)
	fmt.Fprintln(f.out, "├─────────────────────────────────┼─────────────────────────────┤")
	f.printStat("Test Cases", fmt.Sprintf("%d", cases), color.FgWhite)
	fmt.Fprintln(f.out, "├─────────────────────────────────┼─────────────────────────────┤")
	f.printStat("Rows Written", fmt.Sprintf("%d", rows), color.FgGreen)
	fmt.Fprintln(f.out, "├─────────────────────────────────┼─────────────────────────────┤")
	f.printStat("Merged Sources", fmt.Sprintf("%d", merged), color.FgWhite)
	fmt.Fprintln(f.out, "├─────────────────────────────────┼─────────────────────────────┤")
	f.printStat("Encoding", f.config.NormalizedEncoding(), color.FgWhite)
	fmt.Fprintln(f.out, "└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Fprintln(f.out)
	for _, r := range results {
		color.New(color.FgGreen).Fprintf(f.out, "✓ %s → %s", r.Source, r.Output)
		if r.Merged {
			fmt.Fprintf(f.out, " (%d cases merged into %d rows, %s)\n", r.Cases, r.Rows, r.Duration.Round(time.Millisecond))
			continue
		}
		fmt.Fprintf(f.out, " (%d cases, %d rows, %s)\n", r.Cases, r.Rows, r.Duration.Round(time.Millisecond))
	}
}

func (f *Formatter) printStat(label, value string, attr color.Attribute) {
	fmt.Fprintf(f.out, "│ %-31s │ ", label)
	color.New(attr).Fprintf(f.out, "%-27s │\n", value)
}

// PrintSourceList prints discovered case lists, optionally with their case titles.
func (f *Formatter) PrintSourceList(root string, sources []string, showCases bool) {
	color.New(color.FgGreen).Fprintf(f.out, "Found %d case list(s):\n\n", len(sources))

	for i, source := range sources {
		relPath, err := filepath.Rel(root, source)
		if err != nil || relPath == "." {
			relPath = source
		}

		isLastFile := i == len(sources)-1
		branch, indent := "├── ", "│   "
		if isLastFile {
			branch, indent = "└── ", "    "
		}
		color.New(color.FgCyan).Fprintf(f.out, "%s%s\n", branch, relPath)

		if !showCases {
			continue
		}

		cases, err := f.parser.Parse(source)
		if err != nil {
			fmt.Fprintf(f.out, "%s└── %s\n", indent, color.RedString("(unreadable: %v)", err))
			continue
		}
		if len(cases) == 0 {
			fmt.Fprintf(f.out, "%s└── %s\n", indent, color.RedString("(no test cases found)"))
			continue
		}
		for j, tc := range cases {
			prefix := indent + "├── "
			if j == len(cases)-1 {
				prefix = indent + "└── "
			}
			fmt.Fprintf(f.out, "%s%s %s\n", prefix, color.YellowString("%s", tc.Name), color.HiBlackString("[P%s]", tc.Importance.Label()))
		}
	}
}
