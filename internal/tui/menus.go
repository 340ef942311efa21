package tui

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	rclierrors "github.com/mrz1836/rcli/internal/errors"
)

// Terminal layout constants.
const (
	// TerminalEdgeMargin is the space left between prompt content and the
	// terminal edge.
	TerminalEdgeMargin = 4

	// MinMenuWidth is the narrowest width a prompt is rendered at.
	MinMenuWidth = 40
)

// ErrMenuCanceled is returned when the user aborts a prompt or when no
// terminal is attached.
var ErrMenuCanceled = rclierrors.ErrMenuCanceled

// MenuConfig holds configuration for prompts.
type MenuConfig struct {
	// Width is the maximum prompt width. Zero adapts to the terminal.
	Width int
	// Accessible enables huh's screen reader mode.
	Accessible bool
}

// NewMenuConfig returns defaults, enabling accessible mode when the
// ACCESSIBLE environment variable is set.
func NewMenuConfig() *MenuConfig {
	_, accessible := os.LookupEnv("ACCESSIBLE")
	return &MenuConfig{
		Width:      DefaultMenuWidth,
		Accessible: accessible,
	}
}

// IsInteractive reports whether stdin is a terminal a prompt can read from.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) //nolint:gosec // fd fits in int
}

// adaptWidth returns maxWidth, shrunk to fit the terminal when needed.
func adaptWidth(maxWidth int) int {
	width, _, err := term.GetSize(int(os.Stdout.Fd())) //nolint:gosec // fd fits in int
	if err != nil || width <= 0 {
		if maxWidth <= 0 {
			return DefaultMenuWidth
		}
		return maxWidth
	}

	availableWidth := width - TerminalEdgeMargin
	if maxWidth > 0 && maxWidth < availableWidth {
		return maxWidth
	}
	if availableWidth < MinMenuWidth {
		return MinMenuWidth
	}
	return availableWidth
}

// runFormWithConfig runs a single-field form. Without a terminal it returns
// ErrMenuCanceled instead of blocking.
func runFormWithConfig(field huh.Field, cfg *MenuConfig, errorContext string) error {
	if !IsInteractive() {
		return ErrMenuCanceled
	}

	CheckNoColor()

	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(RcliTheme()).
		WithWidth(adaptWidth(cfg.Width)).
		WithAccessible(cfg.Accessible)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrMenuCanceled
		}
		return fmt.Errorf("%s: %w", errorContext, err)
	}
	return nil
}

// RcliTheme returns a huh theme using the semantic colors from styles.go.
func RcliTheme() *huh.Theme {
	CheckNoColor()

	t := huh.ThemeBase()

	t.Focused.Base = t.Focused.Base.BorderForeground(ColorPrimary)
	t.Focused.Title = t.Focused.Title.Foreground(ColorPrimary)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Background(ColorPrimary)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(ColorError)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(ColorError)
	t.Focused.Description = t.Focused.Description.Foreground(ColorMuted)

	t.Blurred.Base = t.Blurred.Base.BorderForeground(ColorMuted)
	t.Blurred.Title = t.Blurred.Title.Foreground(ColorMuted)

	return t
}

// Confirm presents a yes/no prompt and returns the user's choice.
// Returns ErrMenuCanceled if the user aborts or no terminal is attached.
func Confirm(message string, defaultYes bool) (bool, error) {
	return ConfirmWithConfig(message, defaultYes, NewMenuConfig())
}

// ConfirmWithConfig presents a confirmation prompt with custom configuration.
func ConfirmWithConfig(message string, defaultYes bool, cfg *MenuConfig) (bool, error) {
	confirmed := defaultYes

	confirmField := huh.NewConfirm().
		Title(message).
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed)

	if err := runFormWithConfig(confirmField, cfg, "confirm prompt failed"); err != nil {
		return false, err
	}
	return confirmed, nil
}
