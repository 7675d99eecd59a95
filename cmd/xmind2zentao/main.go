package main

import (
	"fmt"
	"os"

	"xmind2zentao/internal/cli"
	"xmind2zentao/internal/cli/commands"
	"xmind2zentao/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:           "xmind2zentao",
		Short:         "Convert test case outlines to ZenTao import files",
		Long:          `Convert test cases exported from a mind-map outline into CSV files for the ZenTao test case bulk import, optionally merging cases that share a title prefix.`,
		Version:       version,
		SilenceErrors: true,
	}

	// Load config from defaults, .env and environment
	cfg, err := config.Load(config.DefaultEnvFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitCommandError)
	}

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
