package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pamctl/pamctl/internal/errors"
)

var removeModule string

func init() {
	removeCmd.Flags().StringVar(&removeModule, "module", "", "PAM module name to remove")
	_ = removeCmd.MarkFlagRequired("module")

	rootCmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:   "remove <service>",
	Short: "Remove rules referencing a module",
	Long: `Remove every line of a PAM service file that mentions a module.

The match is a raw substring match against the whole line, not a
token-exact match: removing pam_unix also removes lines mentioning
pam_unix_ext.so. The file is rewritten only when at least one line was
removed.`,
	Example: `  # Remove pam_motd.so rules from sshd
  pamctl remove sshd --module pam_motd.so

  See Also:
    pamctl add  - Add a rule to a service
    pamctl show - Show the rule stack of a service`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func runRemove(_ *cobra.Command, args []string) error {
	return runRemoveWithWriter(os.Stdout, args[0])
}

// runRemoveWithWriter allows injecting a writer for testing.
func runRemoveWithWriter(w io.Writer, service string) error {
	store := newStore()

	removed, err := store.RemoveRule(service, removeModule)
	if err != nil {
		switch {
		case errors.Is(err, errors.ErrServiceNotFound):
			fmt.Fprintf(w, "Service %s not found\n", service)
			return nil
		case errors.Is(err, errors.ErrNoMatchingRules):
			fmt.Fprintf(w, "No rules found with module %s\n", removeModule)
			return nil
		}
		return errors.Wrapf(err, "removing rules from %s", service)
	}

	fmt.Fprintf(w, "%s✓ Removed %d line(s) containing %s from %s%s\n",
		colorGreen, removed, removeModule, service, colorReset)
	return nil
}
