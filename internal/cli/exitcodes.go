package cli

// Exit codes shared by both binaries.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (missing or invalid config)
	ExitDataError   = 3 // Data error (no records matched, malformed file)
)
