package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"sheetDelta/internal/excel"
	"sheetDelta/internal/logger"
)

func newScanCommand(opts *rootOptions) *cobra.Command {
	var variant string

	cmd := &cobra.Command{
		Use:   "scan [directory]",
		Short: "List workbooks in a directory and check whether they can be compared",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			out := cmd.OutOrStdout()

			dir := cfg.Picker.Directory
			if len(args) == 1 {
				dir = args[0]
			}

			spec, err := cfg.Spec(variant)
			if err != nil {
				return err
			}

			logger.Info("Starting scan operation", "directory", dir, "variant", spec.Name)
			candidates, err := excel.ScanDirectory(dir, spec)
			if err != nil {
				logger.Error("Scan operation failed", "error", err)
				return err
			}

			if len(candidates) == 0 {
				fmt.Fprintf(out, "No .xlsx or .xlsm files found in directory: %s\n", dir)
				return nil
			}

			ready := 0
			for _, c := range candidates {
				name := filepath.Base(c.Path)
				switch {
				case c.Ready():
					ready++
					fmt.Fprintf(out, "✓ %s: %q (%d rows x %d columns)\n", name, c.Title, c.MaxRow, c.MaxColumn)
				case len(c.Reasons) > 0:
					fmt.Fprintf(out, "❌ %s: %s\n", name, strings.Join(c.Reasons, ", "))
				default:
					fmt.Fprintf(out, "❌ %s: %v\n", name, c.Err)
				}
			}

			fmt.Fprintf(out, "\n%d of %d workbook(s) ready to compare with variant %q\n", ready, len(candidates), spec.Name)
			logger.Info("Scan operation completed", "workbooks", len(candidates), "ready", ready)
			return nil
		},
	}

	cmd.Flags().StringVarP(&variant, "variant", "v", "", "column pair variant (default from config)")
	return cmd
}
