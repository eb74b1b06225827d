package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pamctl/pamctl/internal/errors"
	"github.com/pamctl/pamctl/internal/pamd"
)

var (
	addType     string
	addControl  string
	addModule   string
	addArgs     string
	addPosition string
)

func init() {
	addCmd.Flags().StringVar(&addType, "type", "", "rule type: auth, account, password, session")
	addCmd.Flags().StringVar(&addControl, "control", "", "control flag (required, sufficient, ...)")
	addCmd.Flags().StringVar(&addModule, "module", "", "PAM module name (e.g. pam_unix.so)")
	addCmd.Flags().StringVar(&addArgs, "args", "", "module arguments")
	addCmd.Flags().StringVar(&addPosition, "position", "end", "insert position: start, end")

	_ = addCmd.MarkFlagRequired("type")
	_ = addCmd.MarkFlagRequired("control")
	_ = addCmd.MarkFlagRequired("module")

	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add <service>",
	Short: "Add a rule to a service",
	Long: `Add a rule line to a PAM service file.

The new line is written tab-separated as type, control, module, and
optional args, inserted at the start or end of the file. The whole file
is rewritten atomically. The service file must already exist; add never
creates one. No duplicate detection is performed.`,
	Example: `  # Append a session rule to sshd
  pamctl add sshd --type session --control optional --module pam_mkhomedir.so --args umask=0022

  # Prepend an auth rule
  pamctl add su --type auth --control required --module pam_wheel.so --position start

  See Also:
    pamctl remove - Remove rules from a service
    pamctl backup - Snapshot the directory before editing`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func runAdd(_ *cobra.Command, args []string) error {
	return runAddWithWriter(os.Stdout, args[0])
}

// runAddWithWriter allows injecting a writer for testing.
func runAddWithWriter(w io.Writer, service string) error {
	pos := pamd.Position(addPosition)
	if !pos.Valid() {
		return errors.NewUserError(
			errors.Newf("invalid position %q", addPosition),
			"use --position start or --position end")
	}

	store := newStore()
	rule := pamd.Rule{
		Type:    addType,
		Control: addControl,
		Module:  addModule,
		Args:    addArgs,
	}

	if err := store.AddRule(service, rule, pos); err != nil {
		if errors.Is(err, errors.ErrServiceNotFound) {
			fmt.Fprintf(w, "Service %s not found\n", service)
			return nil
		}
		return errors.Wrapf(err, "adding rule to %s", service)
	}

	fmt.Fprintf(w, "%s✓ Rule added to %s%s\n", colorGreen, service, colorReset)
	return nil
}
