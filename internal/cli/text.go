package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mrz1836/rcli/internal/crypto"
	"github.com/mrz1836/rcli/internal/errors"
	"github.com/mrz1836/rcli/internal/input"
	"github.com/mrz1836/rcli/internal/logging"
	"github.com/mrz1836/rcli/internal/text"
	"github.com/mrz1836/rcli/internal/tui"
)

// AddTextCommand adds the text command group to the root command.
func AddTextCommand(root *cobra.Command) {
	root.AddCommand(newTextCmd())
}

func newTextCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "text",
		Short: "Sign and verify text",
		Long: `Sign text with a BLAKE3 keyed hash or an Ed25519 key, and verify the result.

Signatures are printed as URL-safe base64 without padding.`,
	}

	cmd.AddCommand(newTextSignCmd())
	cmd.AddCommand(newTextVerifyCmd())
	return cmd
}

// textSignOptions holds the flags of `rcli text sign`.
type textSignOptions struct {
	inputs      []string
	key         string
	format      string
	concurrency int
}

func newTextSignCmd() *cobra.Command {
	opts := &textSignOptions{}

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign one or more inputs",
		Long: `Sign the input with the key for the selected format.

blake3 uses a shared 32-byte key (longer key files use their first 32 bytes).
ed25519 uses a raw 32-byte private seed.

Repeat --input to sign several files in parallel; '-' reads standard input
and may appear once.

Examples:
  rcli text sign -k mac.key < message.txt
  rcli text sign --format ed25519 -k private_key.pem -i message.txt
  rcli text sign -k mac.key -i a.txt -i b.txt --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTextSign(cmd.Context(), cmd, cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.inputs, "input", "i", []string{"-"}, "input file, or '-' for stdin (repeatable)")
	cmd.Flags().StringVarP(&opts.key, "key", "k", "", "signing key file (default from config: private_key.pem)")
	cmd.Flags().StringVar(&opts.format, "format", "", "signature format (blake3|ed25519)")
	cmd.Flags().IntVar(&opts.concurrency, "concurrency", 0, "inputs signed in parallel when several are given")

	return cmd
}

func runTextSign(ctx context.Context, cmd *cobra.Command, w io.Writer, opts *textSignOptions) error {
	ec := executionContextOrDefault(ctx)
	logger := zerolog.Ctx(ctx)
	cfg := ec.Config.Text

	formatName := flagOrConfig(cmd, "format", opts.format, cfg.Format)
	format, err := crypto.ParseFormat(formatName)
	if err != nil {
		return err
	}
	keyPath := flagOrConfig(cmd, "key", opts.key, cfg.SigningKey)
	concurrency := cfg.BatchConcurrency
	if cmd.Flags().Changed("concurrency") {
		concurrency = opts.concurrency
	}

	for _, name := range opts.inputs {
		if err := input.Validate(name); err != nil {
			return err
		}
	}

	signOpts := text.SignOptions{
		KeyPath:  keyPath,
		Format:   format,
		Keys:     crypto.KeyOptions{StrictKeyLength: cfg.StrictKeyLength},
		Resolver: input.NewResolver(cmd.InOrStdin()),
	}

	logger.Debug().
		Str("format", format.String()).
		Str("key_path", logging.SafeValue("key_path", keyPath)).
		Int("inputs", len(opts.inputs)).
		Msg("signing text")

	out := tui.NewOutput(w, ec.Output)

	if len(opts.inputs) == 1 {
		signOpts.Input = opts.inputs[0]
		sig, err := text.Sign(ctx, signOpts)
		if err != nil {
			return err
		}
		out.Value("signature", sig)
		return nil
	}

	results, err := text.SignBatch(ctx, opts.inputs, signOpts, concurrency)
	if err != nil {
		return err
	}
	return reportBatch(out, ec.Output, w, results)
}

// reportBatch prints batch results and returns the first per-input failure.
func reportBatch(out tui.Output, outputFormat string, w io.Writer, results []text.BatchResult) error {
	if outputFormat == OutputJSON {
		if err := out.JSON(results); err != nil {
			return err
		}
	}

	var firstErr error
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			if firstErr == nil {
				firstErr = r.Err
			}
			if outputFormat != OutputJSON {
				out.Warning(fmt.Sprintf("%s: %s", r.Input, errors.UserMessage(r.Err)))
			}
			continue
		}
		if outputFormat != OutputJSON {
			_, _ = fmt.Fprintf(w, "%s  %s\n", r.Signature, r.Input)
		}
	}

	if firstErr != nil {
		return errors.Wrapf(firstErr, "%d of %d inputs failed", failed, len(results))
	}
	return nil
}

// textVerifyOptions holds the flags of `rcli text verify`.
type textVerifyOptions struct {
	input     string
	key       string
	signature string
	format    string
}

func newTextVerifyCmd() *cobra.Command {
	opts := &textVerifyOptions{}

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a signature",
		Long: `Verify the signature in --signature against the input.

blake3 uses the same 32-byte key that produced the signature.
ed25519 uses the raw 32-byte public key.

Exit status is 0 when the signature is valid and 3 when it does not match.

Examples:
  rcli text verify -k mac.key -s signature.sig < message.txt
  rcli text verify --format ed25519 -k public_key.pem -s signature.sig -i message.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTextVerify(cmd.Context(), cmd, cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "-", "input file, or '-' for stdin")
	cmd.Flags().StringVarP(&opts.key, "key", "k", "", "verifying key file (default from config: public_key.pem)")
	cmd.Flags().StringVarP(&opts.signature, "signature", "s", "", "signature file (default from config: signature.sig)")
	cmd.Flags().StringVar(&opts.format, "format", "", "signature format (blake3|ed25519)")

	return cmd
}

func runTextVerify(ctx context.Context, cmd *cobra.Command, w io.Writer, opts *textVerifyOptions) error {
	ec := executionContextOrDefault(ctx)
	cfg := ec.Config.Text

	format, err := crypto.ParseFormat(flagOrConfig(cmd, "format", opts.format, cfg.Format))
	if err != nil {
		return err
	}
	if err := input.Validate(opts.input); err != nil {
		return err
	}

	ok, err := text.Verify(ctx, text.VerifyOptions{
		Input:         opts.input,
		KeyPath:       flagOrConfig(cmd, "key", opts.key, cfg.VerifyingKey),
		SignaturePath: flagOrConfig(cmd, "signature", opts.signature, cfg.Signature),
		Format:        format,
		Keys:          crypto.KeyOptions{StrictKeyLength: cfg.StrictKeyLength},
		Resolver:      input.NewResolver(cmd.InOrStdin()),
	})
	if err != nil {
		return err
	}

	zerolog.Ctx(ctx).Info().Str("format", format.String()).Bool("valid", ok).Msg("verification finished")
	if !ok {
		return errors.ErrSignatureMismatch
	}

	tui.NewOutput(w, ec.Output).Success("Signature verified")
	return nil
}

// flagOrConfig returns the flag value when the user set it, else the
// configured value.
func flagOrConfig(cmd *cobra.Command, name, flagValue, configValue string) string {
	if cmd.Flags().Changed(name) {
		return flagValue
	}
	return configValue
}
