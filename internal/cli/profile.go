package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/datazen/internal/frame"
	"github.com/JonMunkholm/datazen/internal/i18n"
	"github.com/JonMunkholm/datazen/internal/ingest"
	"github.com/JonMunkholm/datazen/internal/profile"
)

type profileOptions struct {
	rows    int
	noStats bool
}

func newProfileCommand(global *globalOptions) *cobra.Command {
	opts := &profileOptions{}

	cmd := &cobra.Command{
		Use:   "profile <file>",
		Short: "Show shape, preview, column details and statistics",
		Long: `Profile a CSV or Excel file: row, column and missing value counts, the first
rows, per-column type, missing and unique counts, and summary statistics.

Examples:
  datazen profile sales.csv
  datazen profile --rows 20 --lang tr report.xlsx`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := global.code()
			if err != nil {
				return err
			}
			f, err := readFrame(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			p := &printer{w: cmd.OutOrStdout(), noColor: global.noColor}
			printProfile(p, i18n.NewCatalog(), lang, f, *opts)
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.rows, "rows", "n", profile.PreviewRows, "number of preview rows")
	cmd.Flags().BoolVar(&opts.noStats, "no-stats", false, "skip the statistical summary")

	return cmd
}

func printProfile(p *printer, c *i18n.Catalog, lang i18n.Code, f *frame.Frame, opts profileOptions) {
	s := profile.Summarize(f)
	p.heading(c.T(lang, i18n.KeyPreviewHeader))
	p.table(profile.Table{
		Header: []string{c.T(lang, i18n.KeyRowCount), c.T(lang, i18n.KeyColCount), c.T(lang, i18n.KeyNaNCount)},
		Rows:   [][]string{{strconv.Itoa(s.Rows), strconv.Itoa(s.Cols), strconv.Itoa(s.Missing)}},
	})
	p.table(profile.Preview(f, opts.rows))

	p.heading(c.T(lang, i18n.KeyColDetails))
	details := profile.Table{Header: []string{
		c.T(lang, i18n.KeyColName), c.T(lang, i18n.KeyDtype), c.T(lang, i18n.KeyNaN), c.T(lang, i18n.KeyUnique),
	}}
	for _, col := range profile.Columns(f) {
		details.Rows = append(details.Rows, []string{
			col.Name, col.Kind, strconv.Itoa(col.Missing), strconv.Itoa(col.Unique),
		})
	}
	p.table(details)

	if opts.noStats {
		return
	}
	p.heading(c.T(lang, i18n.KeyEDAHeader))
	d, err := profile.Describe(f)
	if errors.Is(err, profile.ErrNoNumericColumns) {
		p.warning(c.T(lang, i18n.KeyStatsTextOnly))
		p.table(profile.DescribeObjects(f))
		return
	}
	p.table(d.Table())
}

// readFrame ingests a local file, picking the decoder from its extension.
func readFrame(ctx context.Context, path string) (*frame.Frame, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	f, err := ingest.Ingest(ctx, filepath.Base(path), file, ingest.Options{})
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return f, nil
}
