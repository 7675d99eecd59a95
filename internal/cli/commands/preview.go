package commands

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"xmind2zentao/internal/cli"
	"xmind2zentao/internal/config"
	"xmind2zentao/internal/domain"
	"xmind2zentao/internal/storage"
	"xmind2zentao/internal/ui"
	"xmind2zentao/internal/zentao"
)

// PreviewCommand handles the preview command
type PreviewCommand struct {
	config    *config.Config
	converter *zentao.Converter
	storage   storage.Storage
	viewer    ui.Viewer
}

// NewPreviewCommand creates a new PreviewCommand
func NewPreviewCommand(cfg *config.Config, converter *zentao.Converter, st storage.Storage, viewer ui.Viewer) *PreviewCommand {
	return &PreviewCommand{
		config:    cfg,
		converter: converter,
		storage:   st,
		viewer:    viewer,
	}
}

// Execute runs the command
func (pc *PreviewCommand) Execute(cmd *cobra.Command, args []string) error {
	source := args[0]
	rows, err := pc.loadRows(source)
	if err != nil {
		return cli.WrapExitError(cli.ExitFailure, "load rows", err)
	}
	return pc.viewer.View(source, rows)
}

// loadRows reads an existing import file or builds rows from a case list
func (pc *PreviewCommand) loadRows(source string) ([]domain.Row, error) {
	if strings.EqualFold(filepath.Ext(source), domain.OutputExt) {
		return pc.storage.Load(source)
	}
	pc.converter.SetProgress(nil)
	rows, _, err := pc.converter.Rows(source, pc.config.Merge)
	return rows, err
}
