// Command patterns lists and runs the design pattern demos.
//
// Usage:
//
//	patterns list [--format text|yaml]
//	patterns run NAME... [--out FILE]
//	patterns all [--out FILE]
//
// Transcripts go to stdout (or --out); logs go to stderr. Settings come from
// PATTERNS_LOG_LEVEL, PATTERNS_LOG_FORMAT and PATTERNS_HEADERS. An --out file
// is replaced only after the whole transcript has been rendered.
//
// Exit codes: 0 success, 2 invalid usage or unknown demo, 1 anything else.
package main
