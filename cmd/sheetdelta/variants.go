package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"sheetDelta/internal/config"
	"sheetDelta/internal/delta"
	"sheetDelta/internal/excel"
)

func newVariantsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "variants",
		Short: "List the configured column pair variants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range opts.cfg.VariantNames() {
				spec, err := opts.cfg.Spec(name)
				if err != nil {
					fmt.Fprintf(out, "❌ %s: %v\n", name, err)
					continue
				}

				marker := " "
				if strings.EqualFold(name, opts.cfg.Compare.Variant) {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %s (key %s, rows from %d, needs %d columns)\n",
					marker, spec.Name, spec.Key, spec.FirstRow, spec.MinColumns)
				for _, f := range spec.Fields {
					fmt.Fprintf(out, "    %-10s %s -> %s\n", f.Label, columnList(f.Primary), columnList(f.Secondary))
				}
			}
			return nil
		},
	}
}

func columnList(cols []int) string {
	names := make([]string, len(cols))
	for i, c := range cols {
		name, err := excel.ColumnName(c)
		if err != nil {
			name = fmt.Sprint(c)
		}
		names[i] = name
	}
	return strings.Join(names, "+")
}

func newInitCommand(opts *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(opts.configPath); err == nil && !force {
				return fmt.Errorf("config file %s already exists (use --force to overwrite)", opts.configPath)
			}
			if err := config.SaveConfig(opts.configPath, config.Default()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Default config written to %s (first row %d)\n", opts.configPath, delta.DefaultFirstRow)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config file")
	return cmd
}
