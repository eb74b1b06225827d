package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// SystemConfigDir is the PAM configuration directory used when running
// with elevated privileges.
const SystemConfigDir = "/etc/pam.d"

// FallbackConfigDir is the PAM configuration directory used for
// unprivileged invocations, relative to the working directory.
const FallbackConfigDir = "pam.d"

// BackupSuffix is appended to the configuration directory path to form
// the default backup snapshot path.
const BackupSuffix = ".backup"

// DefaultDirPerm is the default permission for newly created directories.
const DefaultDirPerm = 0o755

// DefaultConfigDir returns the PAM configuration directory for the current
// process. Root gets the system directory; everyone else gets a local
// pam.d so the tool can be exercised without touching /etc.
func DefaultConfigDir() string {
	if os.Geteuid() == 0 {
		return SystemConfigDir
	}
	return FallbackConfigDir
}

// DefaultBackupDir returns the backup snapshot path for a configuration
// directory: a sibling directory with the ".backup" suffix.
func DefaultBackupDir(configDir string) string {
	return filepath.Clean(configDir) + BackupSuffix
}

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
func ConfigHome() string {
	return xdg.ConfigHome
}

// AppConfigDir returns the directory holding pamctl's own configuration file.
func AppConfigDir() string {
	return filepath.Join(ConfigHome(), "pamctl")
}
