package treewalk

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess          = 0  // Walk or listing completed successfully
	ExitGeneralError     = 1  // Unknown or unclassified error
	ExitUsageError       = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic            = 3  // Internal panic (unexpected crash)
	ExitConfigError      = 10 // Invalid configuration, pattern or order
	ExitRootNotFound     = 11 // Root path does not exist or is not a directory
	ExitPermissionDenied = 12 // Listing failed with a permission error outside safe mode
)

const (
	// DefaultReadDirBatch is the number of entries the OS provider pulls from a
	// directory handle per read. Listings stream in batches of this size so a
	// huge directory never has to be held in memory at once.
	DefaultReadDirBatch = 128

	// MatchAllPattern is the conventional "everything" search pattern.
	// Empty patterns and "*.*" are treated the same way.
	MatchAllPattern = "*"

	// ConfigFileName is the name of the optional per-directory configuration file.
	ConfigFileName = "treewalk.yaml"

	// EnvPrefix is prepended to every environment variable treewalk reads.
	EnvPrefix = "TREEWALK_"
)
