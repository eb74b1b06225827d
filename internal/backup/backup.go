package backup

import (
	"os"

	"github.com/pamctl/pamctl/internal/errors"
	"github.com/pamctl/pamctl/internal/paths"
	"github.com/pamctl/pamctl/pkg/fileutil"
)

// Manager snapshots and restores the PAM configuration directory as a
// unit. At most one snapshot exists at a time, at a fixed path; creating
// a snapshot while one exists is a no-op, never an overwrite.
type Manager struct {
	configDir string
	backupDir string
}

// Option configures a Manager.
type Option func(*Manager)

// WithBackupDir overrides the snapshot location.
func WithBackupDir(dir string) Option {
	return func(m *Manager) {
		if dir != "" {
			m.backupDir = dir
		}
	}
}

// NewManager creates a Manager for the given configuration directory.
// The snapshot defaults to the sibling "<configDir>.backup" path.
func NewManager(configDir string, opts ...Option) *Manager {
	m := &Manager{
		configDir: configDir,
		backupDir: paths.DefaultBackupDir(configDir),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ConfigDir returns the live configuration directory.
func (m *Manager) ConfigDir() string {
	return m.configDir
}

// BackupDir returns the snapshot path.
func (m *Manager) BackupDir() string {
	return m.backupDir
}

// Exists reports whether a snapshot is present.
func (m *Manager) Exists() bool {
	_, err := os.Stat(m.backupDir)
	return err == nil
}

// Create snapshots the configuration directory by recursive copy,
// preserving file modes. If a snapshot already exists it does nothing
// and returns false; calling Create twice leaves the snapshot exactly as
// the first call did. A mid-copy failure can leave a partial snapshot;
// there is no rollback.
func (m *Manager) Create() (bool, error) {
	if m.Exists() {
		return false, nil
	}

	if err := fileutil.CopyTree(m.configDir, m.backupDir); err != nil {
		return false, errors.Wrapf(err, "backing up %s", m.configDir)
	}
	return true, nil
}

// Restore replaces the entire live configuration directory with the
// snapshot's contents. The live directory is removed recursively first.
// Returns ErrNoBackup when no snapshot exists; the live directory is
// untouched in that case.
func (m *Manager) Restore() error {
	if !m.Exists() {
		return errors.Wrapf(errors.ErrNoBackup, "%s", m.backupDir)
	}

	if err := os.RemoveAll(m.configDir); err != nil {
		return errors.Wrapf(err, "removing %s", m.configDir)
	}

	if err := fileutil.CopyTree(m.backupDir, m.configDir); err != nil {
		return errors.Wrapf(err, "restoring %s", m.configDir)
	}
	return nil
}
