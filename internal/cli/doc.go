// Package cli is responsible for parsing command-line arguments, validating
// them, and handling process-level concerns like exit codes. It translates
// CLI flags into the application's internal configuration. The zero-argument
// invocation is the canonical interactive run; flags only tune presentation
// and logging.
package cli
