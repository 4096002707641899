package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/fuzzytime/am"
	"github.com/teranos/fuzzytime/cmd/fuzzytime/commands"
	"github.com/teranos/fuzzytime/display"
	"github.com/teranos/fuzzytime/errors"
	"github.com/teranos/fuzzytime/logger"
)

var rootCmd = &cobra.Command{
	Use:   "fuzzytime",
	Short: "fuzzytime - signed fuzzy logic over time",
	Long: `fuzzytime - signed fuzzy logic over time.

Truth values live in [-1, +1]: -1 is certainly false, +1 certainly true and 0
unknown. Profiles map the hour of day to a truth value and can be combined
with and, or and not.

Available commands:
  eval     - Evaluate profiles at a moment in time
  watch    - Re-evaluate profiles when their definitions change
  profiles - List configured profiles
  triggers - List named triggers, or test a value against them
  am       - Manage fuzzytime configuration ("I am")
  version  - Show version information

Examples:
  fuzzytime eval tom_is_going_home sun_has_set
  fuzzytime triggers 0.7
  fuzzytime am show`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := am.Load()
		if err != nil {
			return errors.Wrap(err, "failed to load config")
		}

		verbosity, _ := cmd.Flags().GetCount("verbose")
		if cfg.Log.Verbosity > verbosity {
			verbosity = cfg.Log.Verbosity
		}
		if err := logger.Initialize(cfg.Log.JSON, verbosity); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}

		if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
			display.SetColor(false)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	rootCmd.AddCommand(commands.EvalCmd)
	rootCmd.AddCommand(commands.WatchCmd)
	rootCmd.AddCommand(commands.ProfilesCmd)
	rootCmd.AddCommand(commands.TriggersCmd)
	rootCmd.AddCommand(commands.AmCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintln(os.Stderr, "Hint:", hint)
		}
		os.Exit(1)
	}
}
