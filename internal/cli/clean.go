package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/datazen/internal/clean"
	"github.com/JonMunkholm/datazen/internal/export"
	"github.com/JonMunkholm/datazen/internal/i18n"
	"github.com/JonMunkholm/datazen/internal/logging"
)

type cleanOptions struct {
	dropMissing    bool
	fillMean       bool
	dropDuplicates bool
	output         string
}

// actions returns the selected actions in their fixed order.
func (o cleanOptions) actions() []clean.Action {
	var out []clean.Action
	if o.dropMissing {
		out = append(out, clean.DropMissing)
	}
	if o.fillMean {
		out = append(out, clean.FillMean)
	}
	if o.dropDuplicates {
		out = append(out, clean.DropDuplicates)
	}
	return out
}

func newCleanCommand(global *globalOptions) *cobra.Command {
	opts := &cleanOptions{}

	cmd := &cobra.Command{
		Use:   "clean <file>",
		Short: "Apply cleaning actions and write the result",
		Long: `Apply cleaning actions to a CSV or Excel file and write the cleaned table.
Actions run in the order drop-missing, fill-mean, drop-duplicates. Without -o
the result is written next to the input as cleaned_<name>. An output path
ending in .xlsx writes an Excel workbook, anything else writes CSV.

Examples:
  datazen clean --fill-mean --drop-duplicates sales.csv
  datazen clean --drop-missing -o tidy.xlsx report.xlsx`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := global.code()
			if err != nil {
				return err
			}
			p := &printer{w: cmd.OutOrStdout(), noColor: global.noColor}
			return runClean(cmd, p, i18n.NewCatalog(), lang, args[0], *opts)
		},
	}

	cmd.Flags().BoolVar(&opts.dropMissing, "drop-missing", false, "drop rows with any missing value")
	cmd.Flags().BoolVar(&opts.fillMean, "fill-mean", false, "fill missing numeric cells with the column mean")
	cmd.Flags().BoolVar(&opts.dropDuplicates, "drop-duplicates", false, "remove duplicate rows, keeping the first")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default cleaned_<name> next to the input)")

	return cmd
}

func runClean(cmd *cobra.Command, p *printer, c *i18n.Catalog, lang i18n.Code, path string, opts cleanOptions) error {
	log := logging.FromContext(cmd.Context())
	f, err := readFrame(cmd.Context(), path)
	if err != nil {
		return err
	}

	for _, a := range opts.actions() {
		out, rep, err := clean.Apply(f, a)
		if err != nil {
			return err
		}
		f = out
		log.Info("cleaning applied", "action", a, "rows_before", rep.RowsBefore, "rows_after", rep.RowsAfter)

		if a == clean.FillMean {
			p.success(c.T(lang, i18n.KeyCellsFilled, rep.CellsFilled))
		} else {
			p.success(c.T(lang, i18n.KeyRowsRemoved, rep.RowsRemoved()))
		}
		if len(rep.SkippedColumns) > 0 {
			p.warning(c.T(lang, i18n.KeyFillMeanSkipped, strings.Join(rep.SkippedColumns, ", ")))
		}
	}

	target, format := outputTarget(path, opts.output)
	file, err := os.Create(target)
	if err != nil {
		return err
	}
	if err := export.Write(file, f, format); err != nil {
		file.Close()
		return fmt.Errorf("write %s: %w", target, err)
	}
	if err := file.Close(); err != nil {
		return err
	}

	p.success(c.T(lang, i18n.KeySuccessClean) + " " + target)
	return nil
}

// outputTarget picks the output path and format. The default keeps the
// input's format, so an .xlsx input is written back as .xlsx.
func outputTarget(input, output string) (string, export.Format) {
	if output != "" {
		if strings.EqualFold(filepath.Ext(output), ".xlsx") {
			return output, export.XLSX
		}
		return output, export.CSV
	}
	format := export.CSV
	if strings.EqualFold(filepath.Ext(input), ".xlsx") {
		format = export.XLSX
	}
	return filepath.Join(filepath.Dir(input), export.FileName(input, format)), format
}
