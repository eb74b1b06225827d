package pamd

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pamctl/pamctl/internal/errors"
	"github.com/pamctl/pamctl/pkg/fileutil"
)

// Store reads and mutates PAM service files under a configuration
// directory. The directory path is injected at construction; the store
// never chooses paths itself.
//
// All mutations load the full file, transform the line sequence in
// memory, and atomically replace the file (temp file + rename). There is
// no locking; concurrent writers race and the last writer wins.
type Store struct {
	dir string
}

// NewStore creates a Store over the given configuration directory.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the configuration directory this store operates on.
func (s *Store) Dir() string {
	return s.dir
}

// servicePath returns the path of a service file within the directory.
func (s *Store) servicePath(service string) string {
	return filepath.Join(s.dir, service)
}

// ListServices returns the names of all service files directly in the
// configuration directory, sorted by name. Entries whose name begins
// with '.' and subdirectories are excluded. An empty directory yields an
// empty slice; a missing directory is an error wrapping
// ErrConfigDirNotFound.
func (s *Store) ListServices() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(errors.ErrConfigDirNotFound, "%s", s.dir)
		}
		return nil, errors.Wrapf(err, "reading directory %s", s.dir)
	}

	services := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if entry.IsDir() {
			continue
		}
		services = append(services, name)
	}

	sort.Strings(services)
	return services, nil
}

// Rules returns the parsed rules of a service file in file order,
// skipping comments, blank lines, and malformed lines. A missing service
// is reported via ErrServiceNotFound.
func (s *Store) Rules(service string) ([]Rule, error) {
	lines, _, err := s.readLines(service)
	if err != nil {
		return nil, err
	}

	var rules []Rule
	for _, line := range lines {
		if rule, ok := ParseRule(line); ok {
			rules = append(rules, rule)
		}
	}
	return rules, nil
}

// AddRule inserts a new rule line at the requested end of a service file
// and rewrites the file in full. The service file must already exist;
// AddRule never creates one (ErrServiceNotFound otherwise). No duplicate
// detection is performed: adding the same rule twice yields two lines.
func (s *Store) AddRule(service string, rule Rule, pos Position) error {
	if !pos.Valid() {
		return errors.Newf("invalid position %q", string(pos))
	}

	lines, mode, err := s.readLines(service)
	if err != nil {
		return err
	}

	line := rule.Line()
	if pos == PositionStart {
		lines = append([]string{line}, lines...)
	} else {
		lines = append(lines, line)
	}

	return s.writeLines(service, lines, mode)
}

// RemoveRule deletes every line of a service file that contains module
// as a substring and rewrites the file, returning the number of removed
// lines. The match is deliberately a raw substring match, not
// token-exact, mirroring historical behavior: removing "pam_unix" also
// removes "pam_unix_ext.so" lines. When nothing matches, the file is
// left untouched and ErrNoMatchingRules is returned.
func (s *Store) RemoveRule(service, module string) (int, error) {
	lines, mode, err := s.readLines(service)
	if err != nil {
		return 0, err
	}

	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.Contains(line, module) {
			continue
		}
		kept = append(kept, line)
	}

	removed := len(lines) - len(kept)
	if removed == 0 {
		return 0, errors.Wrapf(errors.ErrNoMatchingRules, "module %s in service %s", module, service)
	}

	if err := s.writeLines(service, kept, mode); err != nil {
		return 0, err
	}
	return removed, nil
}

// readLines loads a service file as a sequence of lines (newline
// terminators stripped) along with its file mode.
func (s *Store) readLines(service string) ([]string, fs.FileMode, error) {
	path := s.servicePath(service)

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, errors.Wrapf(errors.ErrServiceNotFound, "%s", service)
		}
		return nil, 0, errors.Wrapf(err, "stat %s", path)
	}

	mode := info.Mode().Perm()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "reading %s", path)
	}

	text := strings.TrimSuffix(string(data), "\n")
	if text == "" {
		return nil, mode, nil
	}
	return strings.Split(text, "\n"), mode, nil
}

// writeLines atomically replaces a service file with the given lines,
// newline-terminated, preserving the original file mode.
func (s *Store) writeLines(service string, lines []string, mode fs.FileMode) error {
	var data []byte
	if len(lines) > 0 {
		data = []byte(strings.Join(lines, "\n") + "\n")
	}
	return errors.Wrapf(fileutil.AtomicWriteFile(s.servicePath(service), data, mode),
		"writing %s", service)
}
