package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mrz1836/rcli/internal/csvconv"
	"github.com/mrz1836/rcli/internal/errors"
	"github.com/mrz1836/rcli/internal/flock"
	"github.com/mrz1836/rcli/internal/input"
	"github.com/mrz1836/rcli/internal/tui"
)

// AddCSVCommand adds the csv command to the root command.
func AddCSVCommand(root *cobra.Command) {
	root.AddCommand(newCSVCmd())
}

// csvOptions holds the flags of `rcli csv`.
type csvOptions struct {
	input     string
	output    string
	format    string
	delimiter string
	header    bool
	force     bool

	// confirm asks before overwriting; interactive reports whether it can.
	confirm     func(message string, defaultYes bool) (bool, error)
	interactive func() bool
}

func newCSVCmd() *cobra.Command {
	return newCSVCmdWithOptions(&csvOptions{
		confirm:     tui.Confirm,
		interactive: tui.IsInteractive,
	})
}

func newCSVCmdWithOptions(opts *csvOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Convert CSV to JSON or YAML",
		Long: `Convert a CSV file into a JSON array or YAML sequence of objects.

Each row becomes an object keyed by the header row. With --header=false the
columns are named by csv.columns in the config, or column_1, column_2, ...

An existing output file is only replaced after confirmation, or with --force.

Examples:
  rcli csv -i players.csv
  rcli csv -i players.csv --format yaml --out players.yaml
  rcli csv -i data.tsv -d '	' --header=false`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCSV(cmd.Context(), cmd, cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "CSV input file, or '-' for stdin")
	cmd.Flags().StringVar(&opts.output, "out", "", "output file (default output.<format>)")
	cmd.Flags().StringVar(&opts.format, "format", "", "output format (json|yaml)")
	cmd.Flags().StringVarP(&opts.delimiter, "delimiter", "d", "", "field delimiter (default ',')")
	cmd.Flags().BoolVar(&opts.header, "header", true, "treat the first row as column names")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "overwrite the output file without asking")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runCSV(ctx context.Context, cmd *cobra.Command, w io.Writer, opts *csvOptions) error {
	ec := executionContextOrDefault(ctx)
	cfg := ec.Config.CSV
	logger := zerolog.Ctx(ctx)

	format, err := csvconv.ParseFormat(flagOrConfig(cmd, "format", opts.format, cfg.Format))
	if err != nil {
		return err
	}
	delimiter, err := csvconv.ParseDelimiter(flagOrConfig(cmd, "delimiter", opts.delimiter, cfg.Delimiter))
	if err != nil {
		return err
	}
	if err := input.Validate(opts.input); err != nil {
		return err
	}

	outPath := opts.output
	if outPath == "" {
		outPath = format.DefaultOutputPath()
	}
	if err := checkOverwrite(outPath, opts); err != nil {
		return err
	}

	rc, err := input.NewResolver(cmd.InOrStdin()).Open(opts.input)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()

	content, count, err := csvconv.Convert(rc, csvconv.Options{
		Delimiter: delimiter,
		Header:    boolFlagOrConfig(cmd, "header", opts.header, cfg.Header),
		Columns:   cfg.Columns,
	}, format)
	if err != nil {
		return err
	}

	if err := flock.WriteFile(outPath, content, 0o644); err != nil {
		return err
	}

	logger.Info().
		Str("input", opts.input).
		Str("output", outPath).
		Str("format", format.String()).
		Int("records", count).
		Msg("csv converted")

	tui.NewOutput(w, ec.Output).Success(fmt.Sprintf("Wrote %d records to %s", count, outPath))
	return nil
}

// checkOverwrite returns nil when path may be written: it does not exist,
// --force was given, or the user confirmed the overwrite.
func checkOverwrite(path string, opts *csvOptions) error {
	info, err := os.Stat(path)
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "failed to stat %q", path)
	}
	if info.IsDir() {
		return errors.Wrapf(errors.ErrInvalidArgument, "%s is a directory", path)
	}
	if opts.force {
		return nil
	}
	if !opts.interactive() {
		return errors.Wrapf(errors.ErrNonInteractiveMode, "%s already exists", path)
	}

	ok, err := opts.confirm(fmt.Sprintf("%s already exists. Overwrite?", path), false)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrapf(errors.ErrOutputExists, "%s", path)
	}
	return nil
}
