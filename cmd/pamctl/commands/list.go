package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pamctl/pamctl/internal/errors"
)

var listJSON bool

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List PAM services",
	Long: `List all PAM services in the configuration directory.

A service is any regular file directly in the directory; hidden files
(names starting with '.') and subdirectories are skipped. Services are
listed in name order.`,
	Example: `  # List services
  pamctl list

  # Output as JSON
  pamctl list --json

  See Also:
    pamctl show - Show the rule stack of one service`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(_ *cobra.Command, _ []string) error {
	return runListWithWriter(os.Stdout)
}

// runListWithWriter allows injecting a writer for testing.
func runListWithWriter(w io.Writer) error {
	store := newStore()

	services, err := store.ListServices()
	if err != nil {
		if errors.Is(err, errors.ErrConfigDirNotFound) {
			return errors.NewSystemError(err,
				"Create the directory or point --pam-dir at an existing one")
		}
		return errors.Wrap(err, "listing services")
	}

	if listJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(services)
	}

	fmt.Fprintf(w, "%sAvailable PAM services:%s\n", colorCyan+colorBold, colorReset)
	if len(services) == 0 {
		fmt.Fprintf(w, "  %s(no services found)%s\n", colorGray, colorReset)
		return nil
	}

	for _, service := range services {
		fmt.Fprintf(w, "  - %s%s%s\n", colorGreen, service, colorReset)
	}
	return nil
}
