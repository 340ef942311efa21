package cli

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mrz1836/rcli/internal/b64"
	"github.com/mrz1836/rcli/internal/input"
	"github.com/mrz1836/rcli/internal/tui"
)

// AddBase64Command adds the base64 command group to the root command.
func AddBase64Command(root *cobra.Command) {
	root.AddCommand(newBase64Cmd())
}

// base64Options holds the flags shared by encode and decode.
type base64Options struct {
	input  string
	format string
}

func newBase64Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "base64",
		Short: "Encode or decode base64",
		Long: `Encode or decode base64 with the standard (padded) or URL-safe (unpadded) alphabet.

Examples:
  echo -n hello | rcli base64 encode
  rcli base64 decode --format urlsafe -i token.txt`,
	}

	cmd.AddCommand(newBase64SubCmd("encode", "Encode input as base64", false))
	cmd.AddCommand(newBase64SubCmd("decode", "Decode base64 input to text", true))
	return cmd
}

func newBase64SubCmd(use, short string, decode bool) *cobra.Command {
	opts := &base64Options{}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBase64(cmd.Context(), cmd, cmd.OutOrStdout(), opts, decode)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "-", "input file, or '-' for stdin")
	cmd.Flags().StringVar(&opts.format, "format", "", "base64 alphabet (standard|urlsafe)")

	return cmd
}

func runBase64(ctx context.Context, cmd *cobra.Command, w io.Writer, opts *base64Options, decode bool) error {
	ec := executionContextOrDefault(ctx)

	format, err := b64.ParseFormat(flagOrConfig(cmd, "format", opts.format, ec.Config.Base64.Format))
	if err != nil {
		return err
	}
	if err := input.Validate(opts.input); err != nil {
		return err
	}

	data, err := input.NewResolver(cmd.InOrStdin()).ReadAll(opts.input)
	if err != nil {
		return err
	}

	zerolog.Ctx(ctx).Debug().
		Str("format", format.String()).
		Bool("decode", decode).
		Int("bytes", len(data)).
		Msg("base64 transcoding")

	out := tui.NewOutput(w, ec.Output)
	if !decode {
		out.Value("encoded", b64.Encode(data, format))
		return nil
	}

	decoded, err := b64.DecodeText(string(data), format)
	if err != nil {
		return err
	}
	out.Value("decoded", decoded)
	return nil
}
