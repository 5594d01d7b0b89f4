package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"sheetDelta/internal/delta"
	"sheetDelta/internal/dispatch"
	"sheetDelta/internal/logger"
	"sheetDelta/internal/picker"
	"sheetDelta/internal/run"
)

func newCompareCommand(opts *rootOptions) *cobra.Command {
	var (
		variant string
		to      string
		targets []string
	)

	cmd := &cobra.Command{
		Use:   "compare [workbook]",
		Short: "Compare a plan workbook and dispatch its delta report",
		Long: "Compares the active sheet of a workbook. Without a workbook argument an " +
			"interactive picker lists the workbooks in the configured input directory.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			out := cmd.OutOrStdout()

			spec, err := cfg.Spec(variant)
			if err != nil {
				return err
			}

			var p picker.Picker = picker.TUI{Dir: cfg.Picker.Directory}
			if len(args) == 1 {
				p = picker.Static(args[0])
			}
			path, err := p.Pick()
			if errors.Is(err, picker.ErrCancelled) {
				logger.Info("Compare cancelled, no file selected")
				fmt.Fprintln(out, "No file selected. Please rerun sheetdelta.")
				return nil
			}
			if err != nil {
				return err
			}

			if len(targets) == 0 {
				targets = cfg.Report.Dispatch
			}
			dispatchers, err := dispatch.New(targets, cfg.Report.OutputDirectory, out)
			if err != nil {
				return err
			}

			recipient := cfg.Report.Recipient
			if cmd.Flags().Changed("to") {
				recipient = to
			}
			if err := dispatch.CheckRecipients(recipient); err != nil {
				return err
			}

			res, err := run.Compare(path, run.Options{
				Spec:          spec,
				SubjectPrefix: cfg.Report.SubjectPrefix,
				Recipient:     recipient,
				Dispatchers:   dispatchers,
			})
			if err != nil {
				printCompareError(out, err)
				return shownError{err}
			}

			printSummary(out, res)
			return nil
		},
	}

	cmd.Flags().StringVarP(&variant, "variant", "v", "", "column pair variant (default from config)")
	cmd.Flags().StringVar(&to, "to", "", "recipient for the mail draft")
	cmd.Flags().StringSliceVarP(&targets, "dispatch", "d", nil, "dispatch targets: eml, xlsx, terminal, html, markdown, toon")

	return cmd
}

func printCompareError(out io.Writer, err error) {
	var shapeErr *delta.ShapeError
	var labelErr *delta.MalformedLabelError

	switch {
	case errors.As(err, &shapeErr):
		fmt.Fprintln(out, "❌ The sheet does not have the expected layout:")
		for _, reason := range shapeErr.Reasons {
			fmt.Fprintf(out, "   - %s\n", reason)
		}
	case errors.As(err, &labelErr):
		fmt.Fprintf(out, "❌ Sheet name %q must contain exactly two plan names, e.g. \"LOTA LOTB\"\n", labelErr.Title)
	default:
		fmt.Fprintf(out, "❌ Error comparing workbook: %v\n", err)
	}
}

func printSummary(out io.Writer, res *run.Result) {
	pair := res.Report.Pair
	if res.Report.HasDeltas() {
		fmt.Fprintf(out, "✓ %d delta row(s) between %s and %s\n", len(res.Report.Records), pair.Primary, pair.Secondary)
	} else {
		fmt.Fprintf(out, "✓ No differences between %s and %s\n", pair.Primary, pair.Secondary)
	}
	for _, where := range res.Outputs {
		if where == "terminal" {
			continue
		}
		fmt.Fprintf(out, "✓ Report written to %s\n", where)
	}
}
