// Package transcript provides the output sink used by demo drivers.
//
// Demo operations print one line per meaningful action. Checking every write is
// noise in tiny drivers, so Writer keeps the first error and turns every later
// write into a no-op; drivers return Err() once at the end.
package transcript
