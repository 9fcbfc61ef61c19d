// flags.go defines constants for all CLI flag names.
//
// Naming convention: Flag<PascalCaseName> where name matches the kebab-case
// CLI flag (e.g., "dry-run" -> FlagDryRun).

package extension

// Flag name constants for CLI commands.
// These are used with cobra's Flags().Type() and GetType() methods.
const (
	// Boolean flags

	FlagCount          = "count"              // Only print match counts
	FlagDiff           = "diff"               // Show differences against the cached copy
	FlagDryRun         = "dry-run"            // Preview without making changes
	FlagFilesWithMatch = "files-with-matches" // Only print names of matching pages
	FlagIgnoreCase     = "ignore-case"        // Case-insensitive matching
	FlagInvertMatch    = "invert-match"       // Select non-matching lines
	FlagLocal          = "local"              // Use local scope config
	FlagLong           = "long"               // Long format output
	FlagRaw            = "raw"                // Raw output without rendering

	// String flags

	FlagStyle = "style" // Glamour rendering style

	// Integer flags

	FlagContext    = "context"    // Lines of context around matches
	FlagLimit      = "limit"      // Limit number of results
	FlagParagraphs = "paragraphs" // Paragraphs shown per result
)
