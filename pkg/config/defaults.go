package config

// Output defaults.
const (
	DefaultOutputFormat    = FormatText
	DefaultOutputPrecision = 6
	DefaultOutputColor     = ColorNever
)

// Logging defaults. Warn keeps normal runs silent on stderr.
const (
	DefaultLogLevel = "warn"
	DefaultLogJSON  = false
)
