package errors

import "errors"

// ErrorInfo holds user-facing message and suggested action for an error.
type ErrorInfo struct {
	// Message is the user-friendly error description.
	Message string
	// Action is a suggested action to resolve the issue (empty if none).
	Action string
}

// Category classifies an error for reporting and exit code selection.
type Category int

const (
	// CategorySystem covers I/O failures and anything not otherwise classified.
	CategorySystem Category = iota
	// CategoryInput covers bad user input: missing files, wrong key or
	// signature sizes, malformed encodings, unsupported formats.
	CategoryInput
	// CategoryVerification covers a well-formed signature that did not verify.
	CategoryVerification
)

// String returns the lowercase name of the category.
func (c Category) String() string {
	switch c {
	case CategoryInput:
		return "input"
	case CategoryVerification:
		return "verification"
	default:
		return "system"
	}
}

// errorEntry pairs a sentinel error with its user-facing info and category.
type errorEntry struct {
	err      error
	category Category
	info     ErrorInfo
}

// errorInfoEntries is the pre-built mapping of sentinel errors to their user-facing messages.
// Using a slice (not a map) because errors.Is() requires proper error chain traversal.
//
//nolint:gochecknoglobals // Pre-built mapping for efficiency
var errorInfoEntries = []errorEntry{
	// ===================
	// Signing & verification
	// ===================
	{
		err:      ErrSignatureMismatch,
		category: CategoryVerification,
		info: ErrorInfo{
			Message: "Signature verification failed.",
			Action:  "Make sure the input, the key and the --format match the ones used for signing.",
		},
	},
	{
		err:      ErrUnsupportedFormat,
		category: CategoryInput,
		info: ErrorInfo{
			Message: "Unsupported signature format.",
			Action:  "Use --format blake3 or --format ed25519.",
		},
	},
	{
		err:      ErrInvalidKeySize,
		category: CategoryInput,
		info: ErrorInfo{
			Message: "The key file has the wrong size for this signature format.",
			Action:  "blake3 needs at least 32 key bytes; ed25519 needs exactly 32 raw bytes.",
		},
	},
	{
		err:      ErrInvalidKey,
		category: CategoryInput,
		info: ErrorInfo{
			Message: "The key file does not contain a valid key.",
			Action:  "Check that the verifying key is a raw 32-byte Ed25519 public key.",
		},
	},
	{
		err:      ErrInvalidSignatureSize,
		category: CategoryInput,
		info: ErrorInfo{
			Message: "The signature has the wrong size for this signature format.",
			Action:  "blake3 signatures are 32 bytes and ed25519 signatures are 64 bytes; check --format.",
		},
	},
	{
		err:      ErrSignatureDecode,
		category: CategoryInput,
		info: ErrorInfo{
			Message: "The signature file is not URL-safe base64 text.",
			Action:  "Use the exact output of 'rcli text sign' as the signature file.",
		},
	},

	// ===================
	// Files & streams
	// ===================
	{
		err:      ErrInputNotFound,
		category: CategoryInput,
		info: ErrorInfo{
			Message: "The input file does not exist.",
			Action:  "Check the --input path, or use '-' to read from standard input.",
		},
	},
	{
		err:      ErrKeyFileNotFound,
		category: CategoryInput,
		info: ErrorInfo{
			Message: "The key file does not exist.",
			Action:  "Check the --key path.",
		},
	},
	{
		err:      ErrSignatureFileNotFound,
		category: CategoryInput,
		info: ErrorInfo{
			Message: "The signature file does not exist.",
			Action:  "Check the --signature path.",
		},
	},
	{
		err:      ErrStdinReused,
		category: CategoryInput,
		info: ErrorInfo{
			Message: "Standard input was given more than once.",
			Action:  "Pass '-' at most once per invocation.",
		},
	},
	{
		err:      ErrNoInputs,
		category: CategoryInput,
		info: ErrorInfo{
			Message: "No input was provided.",
			Action:  "Pass at least one --input.",
		},
	},
	{
		err:      ErrReadInput,
		category: CategorySystem,
		info: ErrorInfo{
			Message: "Reading the input failed.",
		},
	},

	// ===================
	// Glue commands
	// ===================
	{
		err:      ErrInvalidBase64Format,
		category: CategoryInput,
		info: ErrorInfo{
			Message: "Unsupported base64 format.",
			Action:  "Use --format standard or --format urlsafe.",
		},
	},
	{
		err:      ErrBase64Decode,
		category: CategoryInput,
		info: ErrorInfo{
			Message: "The input is not valid base64 for the selected format.",
			Action:  "Check --format: urlsafe input has no padding, standard input uses '+' and '/'.",
		},
	},
	{
		err:      ErrNonUTF8Output,
		category: CategoryInput,
		info: ErrorInfo{
			Message: "The decoded data is binary and cannot be printed as text.",
			Action:  "Decode binary payloads with a tool that writes raw bytes.",
		},
	},
	{
		err:      ErrInvalidPasswordLength,
		category: CategoryInput,
		info: ErrorInfo{
			Message: "The requested password length is out of range.",
			Action:  "Use a --length between 4 and 128.",
		},
	},
	{
		err:      ErrNoCharacterSets,
		category: CategoryInput,
		info: ErrorInfo{
			Message: "Every character set is disabled.",
			Action:  "Enable at least one of --uppercase, --lowercase, --numbers, --symbols.",
		},
	},
	{
		err:      ErrInvalidCSVFormat,
		category: CategoryInput,
		info: ErrorInfo{
			Message: "Unsupported CSV output format.",
			Action:  "Use --format json or --format yaml.",
		},
	},
	{
		err:      ErrInvalidDelimiter,
		category: CategoryInput,
		info: ErrorInfo{
			Message: "The CSV delimiter must be a single character.",
			Action:  "Pass one character to --delimiter, for example ';'.",
		},
	},
	{
		err:      ErrCSVParse,
		category: CategoryInput,
		info: ErrorInfo{
			Message: "The CSV input could not be parsed.",
			Action:  "Check the delimiter and that every row has the same number of fields.",
		},
	},
	{
		err:      ErrOutputExists,
		category: CategoryInput,
		info: ErrorInfo{
			Message: "The output file already exists.",
			Action:  "Pass --force to overwrite it or choose another --out.",
		},
	},

	{
		err:      ErrFileLocked,
		category: CategorySystem,
		info: ErrorInfo{
			Message: "The output file is being written by another process.",
			Action:  "Wait for the other rcli run to finish, or choose another --out.",
		},
	},

	// ===================
	// CLI & configuration
	// ===================
	{
		err:      ErrInvalidOutputFormat,
		category: CategoryInput,
		info: ErrorInfo{
			Message: "Invalid output format.",
			Action:  "Use --output text or --output json.",
		},
	},
	{
		err:      ErrConfigInvalidText,
		category: CategoryInput,
		info: ErrorInfo{
			Message: "The text section of the configuration is invalid.",
			Action:  "Fix ~/.rcli/config.yaml or .rcli/config.yaml.",
		},
	},
	{
		err:      ErrConfigInvalidBase64,
		category: CategoryInput,
		info: ErrorInfo{
			Message: "The base64 section of the configuration is invalid.",
			Action:  "Fix ~/.rcli/config.yaml or .rcli/config.yaml.",
		},
	},
	{
		err:      ErrConfigInvalidGenPass,
		category: CategoryInput,
		info: ErrorInfo{
			Message: "The genpass section of the configuration is invalid.",
			Action:  "Fix ~/.rcli/config.yaml or .rcli/config.yaml.",
		},
	},
	{
		err:      ErrConfigInvalidCSV,
		category: CategoryInput,
		info: ErrorInfo{
			Message: "The csv section of the configuration is invalid.",
			Action:  "Fix ~/.rcli/config.yaml or .rcli/config.yaml.",
		},
	},
	{
		err:      ErrNonInteractiveMode,
		category: CategoryInput,
		info: ErrorInfo{
			Message: "Confirmation is required but no terminal is attached.",
			Action:  "Re-run with --force.",
		},
	},
	{
		err:      ErrMenuCanceled,
		category: CategoryInput,
		info: ErrorInfo{
			Message: "Operation canceled.",
		},
	},
	{
		err:      ErrInvalidArgument,
		category: CategoryInput,
		info: ErrorInfo{
			Message: "An invalid argument was provided.",
			Action:  "Check the command help for valid arguments.",
		},
	},
}

// errorInfoMap provides O(1) lookup for direct sentinel error matches.
//
//nolint:gochecknoglobals // Pre-built mapping for O(1) lookup performance
var errorInfoMap = buildErrorInfoMap()

func buildErrorInfoMap() map[error]errorEntry {
	m := make(map[error]errorEntry, len(errorInfoEntries))
	for _, entry := range errorInfoEntries {
		m[entry.err] = entry
	}
	return m
}

// lookup finds the entry for err, first by identity then through the error chain.
func lookup(err error) (errorEntry, bool) {
	if entry, ok := errorInfoMap[err]; ok {
		return entry, true
	}
	for _, entry := range errorInfoEntries {
		if errors.Is(err, entry.err) {
			return entry, true
		}
	}
	return errorEntry{}, false
}

// UserMessage returns a user-friendly message for common errors.
// For unrecognized errors, it returns the error's original message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if entry, ok := lookup(err); ok {
		return entry.info.Message
	}
	return err.Error()
}

// Actionable returns a user-friendly error message along with a suggested
// action the user can take to resolve or work around the issue.
// The action is empty when there is nothing useful to suggest.
func Actionable(err error) (message, action string) {
	if err == nil {
		return "", ""
	}
	if entry, ok := lookup(err); ok {
		return entry.info.Message, entry.info.Action
	}
	return err.Error(), ""
}

// Classify returns the category of err. Errors wrapped in ExitCode2Error are
// always input errors; unknown errors are system errors.
func Classify(err error) Category {
	if err == nil {
		return CategorySystem
	}
	if IsExitCode2Error(err) {
		return CategoryInput
	}
	if entry, ok := lookup(err); ok {
		return entry.category
	}
	return CategorySystem
}
