package constants

// Log file names and rotation settings.
const (
	// CLILogFileName is the name of the global CLI log file.
	// This file is located in ~/.rcli/logs/rcli.log
	CLILogFileName = "rcli.log"

	// LogMaxSizeMB is the size in megabytes at which the CLI log is rotated.
	LogMaxSizeMB = 10

	// LogMaxBackups is the number of rotated log files to keep.
	LogMaxBackups = 3

	// LogMaxAgeDays is the number of days rotated log files are retained.
	LogMaxAgeDays = 30

	// LogCompress controls gzip compression of rotated log files.
	LogCompress = true
)

// Configuration file names.
const (
	// ConfigFileName is the name of both the global and the project configuration file.
	// The global file lives in ~/.rcli/, the project file in ./.rcli/.
	ConfigFileName = "config.yaml"
)

// CSV conversion defaults.
const (
	// DefaultCSVOutputBase is the base name of the CSV output file; the format
	// name is appended as extension (output.json, output.yaml).
	DefaultCSVOutputBase = "output"

	// GeneratedColumnPrefix names columns when the CSV input has no header row.
	GeneratedColumnPrefix = "column_"
)
