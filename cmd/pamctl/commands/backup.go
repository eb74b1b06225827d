package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pamctl/pamctl/internal/errors"
)

func init() {
	rootCmd.AddCommand(backupCmd)
}

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Snapshot the configuration directory",
	Long: `Create a backup snapshot of the entire PAM configuration directory.

The snapshot is a full recursive copy at a fixed sibling path (default:
<pam-dir>.backup), preserving file permissions. At most one snapshot
exists at a time: if one is already present, backup does nothing and
never overwrites it.`,
	Example: `  # Snapshot /etc/pam.d to /etc/pam.d.backup
  pamctl backup

  # Snapshot to a custom location
  pamctl backup --backup-dir /var/backups/pam.d

  See Also:
    pamctl restore - Restore the directory from the snapshot`,
	Args: cobra.NoArgs,
	RunE: runBackup,
}

func runBackup(_ *cobra.Command, _ []string) error {
	return runBackupWithWriter(os.Stdout)
}

// runBackupWithWriter allows injecting a writer for testing.
func runBackupWithWriter(w io.Writer) error {
	mgr := newBackupManager()

	created, err := mgr.Create()
	if err != nil {
		return errors.Wrap(err, "creating backup")
	}

	if !created {
		fmt.Fprintf(w, "%sBackup already exists at %s%s\n", colorYellow, mgr.BackupDir(), colorReset)
		return nil
	}

	fmt.Fprintf(w, "%s✓ Backup created at %s%s\n", colorGreen, mgr.BackupDir(), colorReset)
	return nil
}
