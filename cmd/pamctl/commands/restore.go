package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pamctl/pamctl/internal/errors"
)

func init() {
	rootCmd.AddCommand(restoreCmd)
}

var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore the configuration directory from the snapshot",
	Long: `Restore the PAM configuration directory from its backup snapshot.

The live directory is deleted recursively and replaced with a full copy
of the snapshot. When no snapshot exists, nothing is changed.`,
	Example: `  # Restore /etc/pam.d from /etc/pam.d.backup
  pamctl restore

  See Also:
    pamctl backup - Create the snapshot`,
	Args: cobra.NoArgs,
	RunE: runRestore,
}

func runRestore(_ *cobra.Command, _ []string) error {
	return runRestoreWithWriter(os.Stdout)
}

// runRestoreWithWriter allows injecting a writer for testing.
func runRestoreWithWriter(w io.Writer) error {
	mgr := newBackupManager()

	if err := mgr.Restore(); err != nil {
		if errors.Is(err, errors.ErrNoBackup) {
			fmt.Fprintln(w, "No backup found")
			return nil
		}
		return errors.Wrap(err, "restoring backup")
	}

	fmt.Fprintf(w, "%s✓ Configuration restored from %s%s\n", colorGreen, mgr.BackupDir(), colorReset)
	return nil
}
