package commands

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"xmind2zentao/internal/cli"
	"xmind2zentao/internal/config"
	"xmind2zentao/internal/discovery"
	"xmind2zentao/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}
	root, err := filepath.Abs(path)
	if err != nil {
		return cli.WrapExitError(cli.ExitCommandError, "resolve path", err)
	}

	sources, err := lc.scanner.Scan(root)
	if err != nil {
		return cli.WrapExitError(cli.ExitCommandError, "scan sources", err)
	}
	sources = lc.filter.FilterByName(sources, lc.config.NameFilter)

	if len(sources) == 0 {
		lc.formatter.Warn("No case lists found")
		return nil
	}

	lc.formatter.PrintSourceList(root, sources, lc.config.Flags.ShowCases)
	return nil
}
