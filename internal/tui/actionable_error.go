package tui

// ActionableError wraps an error with an actionable suggestion.
//
//	err := NewActionableError("key file not found", "Check the --key path")
//	output.Error(err)
//	// ✗ key file not found
//	//   ▸ Try: Check the --key path
type ActionableError struct {
	// Message is the primary error message.
	Message string

	// Suggestion tells the user what to do next. Starts with a verb.
	Suggestion string

	// Context is optional detail appended to the message in parentheses.
	Context string

	// Cause is the underlying error, kept for errors.Is and JSON details.
	Cause error
}

// NewActionableError creates a new ActionableError with message and suggestion.
func NewActionableError(msg, suggestion string) *ActionableError {
	return &ActionableError{
		Message:    msg,
		Suggestion: suggestion,
	}
}

// Error returns the message with context if provided, e.g.
// "key file not found (/path/to/key)".
func (e *ActionableError) Error() string {
	if e.Context != "" {
		return e.Message + " (" + e.Context + ")"
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *ActionableError) Unwrap() error {
	return e.Cause
}

// WithContext adds optional context to the error.
func (e *ActionableError) WithContext(ctx string) *ActionableError {
	e.Context = ctx
	return e
}

// WithCause records the underlying error.
func (e *ActionableError) WithCause(err error) *ActionableError {
	e.Cause = err
	return e
}
