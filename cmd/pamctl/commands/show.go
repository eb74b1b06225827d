package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pamctl/pamctl/internal/errors"
	"github.com/pamctl/pamctl/internal/pamd"
)

var (
	showJSON   bool
	showOutput string
)

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output in JSON format")
	showCmd.Flags().StringVarP(&showOutput, "output", "o", "text",
		"output format: text, yaml")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show <service>",
	Short: "Show the rule stack for a service",
	Long: `Show the parsed PAM rules of one service file in file order.

Comment lines, blank lines, and lines with fewer than three fields are
skipped. A missing service is reported but is not an error.`,
	Example: `  # Show rules for sshd
  pamctl show sshd

  # Output as JSON
  pamctl show sshd --json

  # Output as YAML
  pamctl show sshd -o yaml

  See Also:
    pamctl add    - Add a rule to a service
    pamctl remove - Remove rules from a service`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func runShow(_ *cobra.Command, args []string) error {
	return runShowWithWriter(os.Stdout, args[0])
}

// runShowWithWriter allows injecting a writer for testing.
func runShowWithWriter(w io.Writer, service string) error {
	store := newStore()

	rules, err := store.Rules(service)
	if err != nil {
		if errors.Is(err, errors.ErrServiceNotFound) {
			fmt.Fprintf(w, "Service %s not found\n", service)
			return nil
		}
		return errors.Wrapf(err, "reading rules for %s", service)
	}

	switch {
	case showJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rules)
	case showOutput == "yaml":
		data, err := yaml.Marshal(rules)
		if err != nil {
			return errors.Wrap(err, "marshaling rules")
		}
		_, err = w.Write(data)
		return err
	default:
		outputRulesTabular(w, service, rules)
		return nil
	}
}

// outputRulesTabular renders the rule stack as an aligned table.
func outputRulesTabular(w io.Writer, service string, rules []pamd.Rule) {
	fmt.Fprintf(w, "%sRules for %s:%s\n", colorCyan+colorBold, service, colorReset)

	if len(rules) == 0 {
		fmt.Fprintf(w, "  %s(no rules)%s\n", colorGray, colorReset)
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  %sTYPE%s\t%sCONTROL%s\t%sMODULE%s\t%sARGS%s\n",
		colorBold, colorReset,
		colorBold, colorReset,
		colorBold, colorReset,
		colorBold, colorReset)

	for _, r := range rules {
		fmt.Fprintf(tw, "  %s%s%s\t%s\t%s\t%s\n",
			colorGreen, r.Type, colorReset,
			r.Control,
			r.Module,
			r.Args)
	}
	tw.Flush()
}
