package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// ProgressBar reports row generation progress on stderr
type ProgressBar struct {
	source string
	bar    *progressbar.ProgressBar
}

// NewProgressBar creates a new progress bar for one source file
func NewProgressBar(source string) *ProgressBar {
	return &ProgressBar{source: source}
}

// Start renders an empty bar for total test cases
func (p *ProgressBar) Start(total int) {
	p.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription(
			color.CyanString("Converting ")+color.YellowString("%s", p.source),
		),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)
}

// Update sets the number of test cases converted so far
func (p *ProgressBar) Update(done int) {
	if p.bar != nil {
		_ = p.bar.Set(done)
	}
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	if p.bar != nil {
		_ = p.bar.Finish()
	}
}
