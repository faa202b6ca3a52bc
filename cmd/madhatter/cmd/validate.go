package cmd

import (
	"fmt"

	"github.com/madhatterpub/site/internal/content"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// validateFs is swapped in tests.
var validateFs = afero.NewOsFs()

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a content override file",
	Long: `Parse a content override file, apply it over the built-in content and
check the result: required fields present, ids unique within each list and
no unknown keys.

Examples:
  madhatter validate content.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := content.NewLoader(validateFs).Load(args[0])
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "❌ %v\n", err)
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ %s is valid: %d food and %d drinks categories, %d staff photos, %d team members\n",
			args[0], len(c.Menu.Food), len(c.Menu.Drinks), len(c.Staff), len(c.PubTeam))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
