package commands

import (
	"xmind2zentao/internal/cli"
	"xmind2zentao/internal/config"
	"xmind2zentao/internal/discovery"
	"xmind2zentao/internal/parser"
	"xmind2zentao/internal/storage"
	"xmind2zentao/internal/ui"
	"xmind2zentao/internal/zentao"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Convert *ConvertCommand
	List    *ListCommand
	Preview *PreviewCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	scanner := discovery.NewScanner(cfg.PathsToIgnore, cfg.SourceExtensions)
	filter := discovery.NewFilter()
	caseParser := parser.NewCaseListParser()
	csvStorage := storage.NewCSVStorage(cfg)
	converter := zentao.NewConverter(caseParser, csvStorage)
	formatter := ui.NewFormatter(cfg, caseParser)
	viewer := ui.NewRowViewer()

	return &Commands{
		Convert: NewConvertCommand(cfg, scanner, filter, converter, formatter),
		List:    NewListCommand(cfg, scanner, filter, formatter),
		Preview: NewPreviewCommand(cfg, converter, csvStorage, viewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	applyFlags := func(cmd *cobra.Command, args []string) error {
		if err := cfg.ApplyFlags(flags.ToConfigFlags(), cmd.Flags().Changed); err != nil {
			return cli.WrapExitError(cli.ExitCommandError, "invalid flags", err)
		}
		return nil
	}

	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Print diagnostic details to stderr")
	rootCmd.PersistentFlags().BoolVarP(&flags.Quiet, "quiet", "q", false, "Suppress progress and summary output")

	// Convert command
	convertCmd := &cobra.Command{
		Use:     "convert <case-list|directory>",
		Short:   "Convert test case lists to ZenTao import files",
		Long:    "Convert exported test case lists (JSON or YAML) into CSV files for the ZenTao test case bulk import. A directory is scanned for case lists.",
		Args:    cobra.ExactArgs(1),
		PreRunE: applyFlags,
		RunE:    c.Convert.Execute,
	}
	convertCmd.Flags().BoolVarP(&flags.Merge, "merge", "m", false, "Merge cases whose titles share the part before \" > \"")
	convertCmd.Flags().StringVarP(&flags.Encoding, "encoding", "e", config.DefaultEncoding, "Output encoding (utf-8 or gbk)")
	convertCmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Output file (single case list only)")
	convertCmd.Flags().StringVarP(&flags.OutputDir, "output-dir", "d", "", "Directory for output files instead of next to each source")
	convertCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter case lists by name pattern (supports wildcards, e.g. '*login*.json')")
	rootCmd.AddCommand(convertCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list [directory]",
		Short:   "List discovered case lists",
		Long:    "Scan a directory and list the test case lists that convert would pick up",
		Args:    cobra.MaximumNArgs(1),
		PreRunE: applyFlags,
		RunE:    c.List.Execute,
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter case lists by name pattern (supports wildcards, e.g. '*login*.json')")
	listCmd.Flags().BoolVarP(&flags.ShowCases, "cases", "c", false, "List test case titles of each file")
	rootCmd.AddCommand(listCmd)

	// Preview command
	previewCmd := &cobra.Command{
		Use:     "preview <case-list|import-file>",
		Short:   "Browse import rows interactively",
		Long:    "Build the import rows of a case list without writing them, or open an existing import file, and browse them in a terminal UI",
		Args:    cobra.ExactArgs(1),
		PreRunE: applyFlags,
		RunE:    c.Preview.Execute,
	}
	previewCmd.Flags().BoolVarP(&flags.Merge, "merge", "m", false, "Merge cases whose titles share the part before \" > \"")
	previewCmd.Flags().StringVarP(&flags.Encoding, "encoding", "e", config.DefaultEncoding, "Encoding of an import file (utf-8 or gbk)")
	rootCmd.AddCommand(previewCmd)
}
