// Package logging builds the CLI's zap logger.
//
// Logs go to their own writer (stderr in the CLI) so demo transcripts on
// stdout stay byte-for-byte deterministic.
package logging
