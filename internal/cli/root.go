// Package cli provides the command-line interface for rcli.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrz1836/rcli/internal/config"
	"github.com/mrz1836/rcli/internal/errors"
	"github.com/mrz1836/rcli/internal/tui"
)

// BuildInfo contains version information set at build time via ldflags.
type BuildInfo struct {
	// Version is the semantic version (e.g., "1.0.0").
	Version string
	// Commit is the git commit hash.
	Commit string
	// Date is the build date.
	Date string
}

// newRootCmd creates and returns the root command for the rcli CLI.
func newRootCmd(flags *GlobalFlags, info BuildInfo) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "rcli",
		Short: "rcli - text signing, base64, passwords and CSV conversion",
		Long: `rcli is a small command-line toolbox.

Commands:
  • text sign / text verify: BLAKE3 keyed-hash or Ed25519 signatures
  • base64 encode / decode: standard or URL-safe alphabets
  • genpass: random passwords from selectable character sets
  • csv: convert CSV files to JSON or YAML`,
		Version: formatVersion(info),
		// RunE shows help so PersistentPreRunE still validates flags.
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return prepareCommand(cmd, v, flags)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	AddGlobalFlags(cmd, flags)

	AddTextCommand(cmd)
	AddBase64Command(cmd)
	AddGenPassCommand(cmd)
	AddCSVCommand(cmd)

	return cmd
}

// prepareCommand resolves global flags, starts the logger and loads the
// configuration, attaching both to the command context.
func prepareCommand(cmd *cobra.Command, v *viper.Viper, flags *GlobalFlags) error {
	if err := BindGlobalFlags(v, cmd); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}
	resolveGlobalFlags(v, flags)

	if !IsValidOutputFormat(flags.Output) {
		return fmt.Errorf("%w: %q must be one of %v", errors.ErrInvalidOutputFormat, flags.Output, ValidOutputFormats())
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	runID := uuid.NewString()
	logger := InitLogger(flags.Verbose, flags.Quiet).With().
		Str("run_id", runID).
		Str("command", cmd.CommandPath()).
		Logger()
	ctx = logger.WithContext(ctx)

	cfg, err := config.Load(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	cmd.SetContext(WithExecutionContext(ctx, &ExecutionContext{
		RunID:  runID,
		Output: flags.Output,
		Config: cfg,
	}))
	return nil
}

// formatVersion creates the version string from build info.
func formatVersion(info BuildInfo) string {
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "none"
	}
	if info.Date == "" {
		info.Date = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.Date)
}

// Execute runs the root command with the provided context and build info.
// A returned error has already been reported on stderr; callers only need
// ExitCodeForError.
func Execute(ctx context.Context, info BuildInfo) error {
	flags := &GlobalFlags{}
	//nolint:contextcheck // Cobra command pattern uses cmd.Context() internally
	cmd := newRootCmd(flags, info)
	defer CloseLogFile()

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		ReportError(cmd.ErrOrStderr(), flags.Output, err)
	}
	return err
}

// ReportError prints err in the requested output format, replacing known
// errors with their user-facing message and suggestion.
func ReportError(w io.Writer, outputFormat string, err error) {
	if err == nil {
		return
	}
	if !IsValidOutputFormat(outputFormat) {
		outputFormat = OutputText
	}

	out := tui.NewOutput(w, outputFormat)
	message, action := errors.Actionable(err)
	ae := tui.NewActionableError(message, action).WithCause(err)
	if message != err.Error() {
		ae = ae.WithContext(err.Error())
	}
	out.Error(ae)
}
