package commands

import (
	"github.com/pamctl/pamctl/internal/backup"
	"github.com/pamctl/pamctl/internal/pamd"
	"github.com/pamctl/pamctl/internal/paths"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// resolvePAMDir returns the effective PAM configuration directory:
// flag > config file / env > privilege-based default.
func resolvePAMDir() string {
	if pamDirFlag != "" {
		return pamDirFlag
	}
	if cfg != nil {
		return cfg.ResolvePAMDir()
	}
	return paths.DefaultConfigDir()
}

// resolveBackupDir returns the effective backup snapshot directory for
// the given PAM directory: flag > config file / env > sibling default.
func resolveBackupDir(pamDir string) string {
	if backupDirFlag != "" {
		return backupDirFlag
	}
	if cfg != nil {
		return cfg.ResolveBackupDir(pamDir)
	}
	return paths.DefaultBackupDir(pamDir)
}

// newStore builds the rule store over the resolved configuration directory.
func newStore() *pamd.Store {
	return pamd.NewStore(resolvePAMDir())
}

// newBackupManager builds the backup manager over the resolved directories.
func newBackupManager() *backup.Manager {
	pamDir := resolvePAMDir()
	return backup.NewManager(pamDir, backup.WithBackupDir(resolveBackupDir(pamDir)))
}
