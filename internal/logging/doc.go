// Package logging provides the slog-based logging stack for pamctl.
//
// Terminal output uses a colorized text handler when the destination is a
// TTY and color is not disabled (NO_COLOR, TERM=dumb). JSON output is
// available for machine consumption, and a multi handler fans records out
// to an optional log file. Verbosity flags map to levels via
// [LevelFromVerbosity].
package logging
