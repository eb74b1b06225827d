package pamd

import (
	"strings"
)

// Rule is a single PAM stack entry: one non-comment line of a service file.
//
// Fields are stored exactly as written. Type is normally one of
// auth, account, password, or session and Control one of the PAM control
// flags, but neither is validated; PAM itself is the authority on what is
// meaningful.
type Rule struct {
	// Type is the management group (auth, account, password, session).
	Type string `json:"type" yaml:"type"`

	// Control is the control flag (required, sufficient, ...).
	Control string `json:"control" yaml:"control"`

	// Module is the PAM module identifier (e.g. pam_unix.so).
	Module string `json:"module" yaml:"module"`

	// Args is the raw trailing argument text, possibly empty.
	Args string `json:"args,omitempty" yaml:"args,omitempty"`
}

// Position selects where AddRule inserts a new rule line.
type Position string

const (
	// PositionStart prepends the rule before all existing lines.
	PositionStart Position = "start"

	// PositionEnd appends the rule after all existing lines.
	PositionEnd Position = "end"
)

// Valid reports whether p is a recognized insertion position.
func (p Position) Valid() bool {
	return p == PositionStart || p == PositionEnd
}

// ParseRule parses one line of a PAM service file.
//
// A line is a rule only if it has at least three whitespace-separated
// fields and the first field does not start with '#'. Everything after
// the third field becomes Args, joined by single spaces. The second
// return value is false for comments, blank lines, and malformed lines;
// those are skipped, never errors.
func ParseRule(line string) (Rule, bool) {
	fields := strings.Fields(line)
	if len(fields) < 3 || strings.HasPrefix(fields[0], "#") {
		return Rule{}, false
	}

	return Rule{
		Type:    fields[0],
		Control: fields[1],
		Module:  fields[2],
		Args:    strings.Join(fields[3:], " "),
	}, true
}

// Line renders the rule in the tab-separated form written on mutation:
// type<TAB>control<TAB>module[<TAB>args]. No trailing newline.
func (r Rule) Line() string {
	line := r.Type + "\t" + r.Control + "\t" + r.Module
	if r.Args != "" {
		line += "\t" + r.Args
	}
	return line
}

// String renders the rule with space separators for display.
func (r Rule) String() string {
	if r.Args == "" {
		return r.Type + " " + r.Control + " " + r.Module
	}
	return r.Type + " " + r.Control + " " + r.Module + " " + r.Args
}
