// Package pamd is the rule store for PAM service files.
//
// A service file under the configuration directory (normally /etc/pam.d)
// is an ordered sequence of raw lines: comments, blank lines, and rules
// interleaved. A line is a [Rule] only if it has at least three
// whitespace-separated fields and does not start with '#'; everything
// else passes through untouched. File order is evaluation order for PAM,
// so the store preserves line order and never reorders anything.
//
// Mutations (AddRule, RemoveRule) read the whole file, transform the
// line sequence in memory, and atomically rewrite the file via temp file
// + rename, keeping the original permission bits. Missing service files
// are an expected outcome surfaced as errors.ErrServiceNotFound, not a
// failure.
package pamd
