package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/teranos/fuzzytime/am"
	"github.com/teranos/fuzzytime/display"
	"github.com/teranos/fuzzytime/errors"
	"github.com/teranos/fuzzytime/schedule"
)

// ProfilesCmd lists the configured hour-band profiles
var ProfilesCmd = newProfilesCmd()

func newProfilesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List configured profiles",
		Long: `List the hour-band profiles from schedule.profiles in am.toml and from the
file named by schedule.profiles_path. File profiles win on name clashes.`,
		Args: cobra.NoArgs,
		RunE: runProfiles,
	}
	cmd.Flags().String("format", "", "Output format: table, json (default from eval.format)")
	return cmd
}

func runProfiles(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	lib, err := cfg.Library()
	if err != nil {
		return err
	}

	profiles := make([]schedule.Profile, 0, lib.Len())
	for _, name := range lib.Names() {
		p, _ := lib.Get(name)
		profiles = append(profiles, p)
	}

	if display.ShouldOutputJSON(cmd, cfg.Eval.Format) {
		return display.WriteJSON(cmd.OutOrStdout(), profiles)
	}

	if len(profiles) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No profiles configured")
		return nil
	}

	rows := make([][]string, 0, len(profiles))
	for _, p := range profiles {
		rows = append(rows, []string{
			p.Name,
			orDash(p.Trigger),
			orDash(p.Timezone),
			display.FormatTruth(p.Default),
			strconv.Itoa(len(p.Bands)),
		})
	}
	return display.RenderTable(cmd.OutOrStdout(),
		[]string{"NAME", "TRIGGER", "TIMEZONE", "DEFAULT", "BANDS"}, rows)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
