package cli

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mrz1836/rcli/internal/constants"
	"github.com/mrz1836/rcli/internal/genpass"
	"github.com/mrz1836/rcli/internal/tui"
)

// AddGenPassCommand adds the genpass command to the root command.
func AddGenPassCommand(root *cobra.Command) {
	root.AddCommand(newGenPassCmd())
}

// genPassOptions holds the flags of `rcli genpass`.
type genPassOptions struct {
	length    int
	uppercase bool
	lowercase bool
	numbers   bool
	symbols   bool
}

func newGenPassCmd() *cobra.Command {
	opts := &genPassOptions{}

	cmd := &cobra.Command{
		Use:   "genpass",
		Short: "Generate a random password",
		Long: `Generate a random password.

Every enabled character set contributes at least one character. Look-alike
characters (O, l, 0, 1) are never used.

Examples:
  rcli genpass
  rcli genpass -l 32 --symbols=false`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenPass(cmd.Context(), cmd, cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().IntVarP(&opts.length, "length", "l", constants.DefaultPasswordLength, "password length (4-128)")
	cmd.Flags().BoolVar(&opts.uppercase, "uppercase", true, "include upper case letters")
	cmd.Flags().BoolVar(&opts.lowercase, "lowercase", true, "include lower case letters")
	cmd.Flags().BoolVar(&opts.numbers, "numbers", true, "include digits")
	cmd.Flags().BoolVar(&opts.symbols, "symbols", true, "include symbols")

	return cmd
}

func runGenPass(ctx context.Context, cmd *cobra.Command, w io.Writer, opts *genPassOptions) error {
	ec := executionContextOrDefault(ctx)
	cfg := ec.Config.GenPass

	genOpts := genpass.Options{
		Length:    cfg.Length,
		Uppercase: boolFlagOrConfig(cmd, "uppercase", opts.uppercase, cfg.Uppercase),
		Lowercase: boolFlagOrConfig(cmd, "lowercase", opts.lowercase, cfg.Lowercase),
		Numbers:   boolFlagOrConfig(cmd, "numbers", opts.numbers, cfg.Numbers),
		Symbols:   boolFlagOrConfig(cmd, "symbols", opts.symbols, cfg.Symbols),
	}
	if cmd.Flags().Changed("length") {
		genOpts.Length = opts.length
	}

	password, err := genpass.Generate(genOpts)
	if err != nil {
		return err
	}

	zerolog.Ctx(ctx).Debug().Int("length", genOpts.Length).Msg("password generated")
	tui.NewOutput(w, ec.Output).Value("password", password)
	return nil
}

func boolFlagOrConfig(cmd *cobra.Command, name string, flagValue, configValue bool) bool {
	if cmd.Flags().Changed(name) {
		return flagValue
	}
	return configValue
}
