package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"xmind2zentao/internal/cli"
	"xmind2zentao/internal/config"
	"xmind2zentao/internal/discovery"
	"xmind2zentao/internal/domain"
	"xmind2zentao/internal/ui"
	"xmind2zentao/internal/zentao"
)

// ConvertCommand handles the convert command
type ConvertCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	converter *zentao.Converter
	formatter *ui.Formatter
}

// NewConvertCommand creates a new ConvertCommand
func NewConvertCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	converter *zentao.Converter,
	formatter *ui.Formatter,
) *ConvertCommand {
	return &ConvertCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		converter: converter,
		formatter: formatter,
	}
}

// Execute runs the command
func (cc *ConvertCommand) Execute(cmd *cobra.Command, args []string) error {
	root, err := filepath.Abs(args[0])
	if err != nil {
		return cli.WrapExitError(cli.ExitCommandError, "resolve source path", err)
	}

	sources, err := cc.scanner.Scan(root)
	if err != nil {
		return cli.WrapExitError(cli.ExitCommandError, "scan sources", err)
	}
	sources = cc.filter.FilterByName(sources, cc.config.NameFilter)

	if len(sources) == 0 {
		cc.formatter.Warn("No case lists to convert")
		return nil
	}
	if cc.config.Output != "" && len(sources) > 1 {
		return cli.NewExitError(cli.ExitCommandError, fmt.Sprintf("--output needs a single case list, found %d", len(sources)))
	}
	outputs, err := cc.outputPaths(sources)
	if err != nil {
		return err
	}
	if cc.config.OutputDir != "" {
		if err := os.MkdirAll(cc.config.OutputDir, 0755); err != nil {
			return cli.WrapExitError(cli.ExitCommandError, "create output dir", err)
		}
	}

	results := make([]*domain.ConversionResult, 0, len(sources))
	for i, source := range sources {
		result, err := cc.convert(source, outputs[i])
		if err != nil {
			return cli.WrapExitError(cli.ExitFailure, "conversion failed", err)
		}
		results = append(results, result)
	}

	cc.formatter.PrintSummary(results)
	return nil
}

// outputPaths resolves the import file of every source. Two sources that
// resolve to the same file are rejected before anything is written.
func (cc *ConvertCommand) outputPaths(sources []string) ([]string, error) {
	outputs := make([]string, 0, len(sources))
	seen := make(map[string]string, len(sources))
	for _, source := range sources {
		output := cc.config.GetOutputPath(zentao.OutputPath(source))
		if prev, ok := seen[output]; ok {
			return nil, cli.NewExitError(cli.ExitCommandError,
				fmt.Sprintf("%s and %s would both be written to %s", prev, source, output))
		}
		seen[output] = source
		outputs = append(outputs, output)
	}
	return outputs, nil
}

func (cc *ConvertCommand) convert(source, output string) (*domain.ConversionResult, error) {
	cc.formatter.Info("Start converting %s to a ZenTao import file...", source)
	cc.formatter.VerboseLog("output=%s merge=%t encoding=%s", output, cc.config.Merge, cc.config.NormalizedEncoding())

	if cc.config.Quiet {
		cc.converter.SetProgress(nil)
	} else {
		cc.converter.SetProgress(ui.NewProgressBar(filepath.Base(source)))
	}

	result, err := cc.converter.ConvertTo(source, output, cc.config.Merge)
	if err != nil {
		return nil, err
	}

	cc.formatter.VerboseLog("converted %s: %d cases -> %d rows in %s", source, result.Cases, result.Rows, result.Duration)
	return result, nil
}
