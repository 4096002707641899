package display

import (
	"github.com/spf13/cobra"
)

// ShouldOutputJSON reports whether a command should print JSON. An explicit
// --format flag wins over the configured format.
func ShouldOutputJSON(cmd *cobra.Command, configured string) bool {
	if cmd != nil {
		if flag := cmd.Flags().Lookup("format"); flag != nil && flag.Changed {
			return flag.Value.String() == "json"
		}
	}
	return configured == "json"
}
