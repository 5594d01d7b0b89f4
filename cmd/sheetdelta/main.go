package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sheetDelta/internal/config"
	"sheetDelta/internal/logger"
)

type rootOptions struct {
	configPath string
	cfg        *config.Config
}

// shownError marks an error whose details the command already printed
type shownError struct {
	error
}

func (e shownError) Unwrap() error { return e.error }

func main() {
	code := 0
	if err := execute(newRootCommand()); err != nil {
		code = 1
	}
	logger.Close()
	os.Exit(code)
}

// execute runs the command tree and prints any error not already shown
func execute(root *cobra.Command) error {
	err := root.Execute()
	if err == nil {
		return nil
	}

	logger.Error("Command failed", "error", err)
	var shown shownError
	if !errors.As(err, &shown) {
		fmt.Fprintf(root.ErrOrStderr(), "❌ %v\n", err)
	}
	return err
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "sheetdelta",
		Short: "SheetDelta - plan revision delta tool",
		Long: "Compares the before and after column blocks of a plan compare workbook and " +
			"reports every row where the key field differs.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "init" {
				return nil
			}
			return opts.load()
		},
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", config.DefaultPath, "path to the config file")

	root.AddCommand(newCompareCommand(opts))
	root.AddCommand(newScanCommand(opts))
	root.AddCommand(newVariantsCommand(opts))
	root.AddCommand(newInitCommand(opts))

	return root
}

func (o *rootOptions) load() error {
	cfg, err := config.LoadConfig(o.configPath)
	if err != nil {
		return err
	}
	if err := logger.Setup(cfg.Log.Directory, cfg.Log.Level); err != nil {
		return err
	}

	if cfg.Created {
		logger.Info("Created default config file", "path", o.configPath)
	}
	logger.Info("Loaded configuration", "path", o.configPath, "variants", len(cfg.Variants))

	o.cfg = cfg
	return nil
}
