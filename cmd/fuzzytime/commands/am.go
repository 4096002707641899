package commands

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/teranos/fuzzytime/am"
	"github.com/teranos/fuzzytime/display"
	"github.com/teranos/fuzzytime/errors"
)

// AmCmd represents the am (configuration) command
var AmCmd = newAmCmd()

func newAmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "am",
		Short: "Manage fuzzytime configuration",
		Long: `am - Manage fuzzytime configuration ("I am")

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (FUZZYTIME_* prefix)
3. Project config (./am.toml, searched up from the working directory)
4. User config (~/.fuzzytime/am.toml)
5. Default values

Examples:
  fuzzytime am show                    # Show current configuration
  fuzzytime am show --format json      # Show configuration in JSON format
  fuzzytime am get eval.default_trigger
  fuzzytime am validate
  fuzzytime am where`,
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE:  runAmShow,
	}
	show.Flags().String("format", "toml", "Output format: toml, json, yaml")

	get := &cobra.Command{
		Use:   "get <key>",
		Short: "Get a specific configuration value",
		Long:  "Get a specific configuration value using dot notation (e.g., eval.timezone, log.verbosity)",
		Args:  cobra.ExactArgs(1),
		RunE:  runAmGet,
	}

	validate := &cobra.Command{
		Use:   "validate",
		Short: "Validate current configuration",
		Args:  cobra.NoArgs,
		RunE:  runAmValidate,
	}

	where := &cobra.Command{
		Use:   "where",
		Short: "Show where each setting is loaded from",
		Long: `Show the configuration cascade: which files were checked, which exist, and
the layer (default, user, project, environment) that set each value.`,
		Args: cobra.NoArgs,
		RunE: runAmWhere,
	}
	where.Flags().String("format", "", "Output format: table, json")

	cmd.AddCommand(show, get, validate, where)
	return cmd
}

func runAmShow(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	format, _ := cmd.Flags().GetString("format")
	out := cmd.OutOrStdout()

	switch format {
	case "json":
		return display.WriteJSON(out, cfg)

	case "yaml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to YAML")
		}
		fmt.Fprintf(out, "# fuzzytime configuration\n%s", data)

	case "toml":
		data, err := toml.Marshal(cfg)
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to TOML")
		}
		fmt.Fprintf(out, "# fuzzytime configuration\n%s", data)

	default:
		return errors.Newf("unsupported format: %s (supported: toml, json, yaml)", format)
	}

	return nil
}

func runAmGet(cmd *cobra.Command, args []string) error {
	key := args[0]

	v := am.GetViper()
	if !v.IsSet(key) {
		return errors.Newf("configuration key %q not found", key)
	}

	fmt.Fprintln(cmd.OutOrStdout(), am.Get(key))
	return nil
}

func runAmValidate(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "configuration validation failed")
	}
	if _, err := cfg.Library(); err != nil {
		return errors.Wrap(err, "configuration validation failed")
	}

	fmt.Fprintln(cmd.OutOrStdout(), "✓ Configuration is valid")
	return nil
}

func runAmWhere(cmd *cobra.Command, args []string) error {
	intro := am.Introspect()
	out := cmd.OutOrStdout()

	if format, _ := cmd.Flags().GetString("format"); format == "json" {
		return display.WriteJSON(out, intro)
	}

	fmt.Fprintln(out, "Configuration cascade (later overrides earlier):")
	fmt.Fprintln(out, "  1. [default]      built-in defaults")
	for i, f := range intro.Files {
		state := "missing"
		if f.Exists {
			state = "found"
		}
		fmt.Fprintf(out, "  %d. [%s]%*s%s (%s)\n", i+2, f.Source, 12-len(f.Source), "", f.Path, state)
	}
	fmt.Fprintf(out, "  %d. [environment]  %s_* variables\n\n", len(intro.Files)+2, am.EnvPrefix)

	rows := make([][]string, 0, len(intro.Settings))
	for _, s := range intro.Settings {
		origin := string(s.Source)
		if s.SourcePath != "" {
			origin += " " + s.SourcePath
		}
		rows = append(rows, []string{s.Key, fmt.Sprint(s.Value), origin})
	}
	return display.RenderTable(out, []string{"KEY", "VALUE", "SOURCE"}, rows)
}
