package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/teranos/fuzzytime/am"
	"github.com/teranos/fuzzytime/display"
	"github.com/teranos/fuzzytime/errors"
	"github.com/teranos/fuzzytime/fuzzy"
	"github.com/teranos/fuzzytime/logger"
	"github.com/teranos/fuzzytime/trigger"
)

// TriggersCmd lists triggers and optionally tests a value against them
var TriggersCmd = newTriggersCmd()

func newTriggersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "triggers [value]",
		Short: "List named triggers, or test a value against them",
		Long: `List the built-in triggers. With a value, show whether each trigger fires
for it. Values outside [-1, +1] never fire.

Examples:
  fuzzytime triggers
  fuzzytime triggers 0.6
  fuzzytime triggers 0.6 --with above:0.55 --with in_range:0.5:0.7`,
		Args: cobra.MaximumNArgs(1),
		RunE: runTriggers,
	}
	cmd.Flags().StringArray("with", nil, "Additional trigger spec to include (repeatable)")
	cmd.Flags().String("format", "", "Output format: table, json (default from eval.format)")
	return cmd
}

type triggerRow struct {
	Trigger   string `json:"trigger"`
	Triggered *bool  `json:"triggered,omitempty"`
}

func runTriggers(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	extra, _ := cmd.Flags().GetStringArray("with")
	specs := append(trigger.Names(), extra...)

	var value *float64
	if len(args) == 1 {
		v, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return errors.Wrapf(err, "invalid value %q", args[0])
		}
		if !fuzzy.IsValid(v) {
			logger.Warnw("Value outside [-1, +1], no trigger fires", logger.FieldTruth, v)
		}
		value = &v
	}

	rows := make([]triggerRow, 0, len(specs))
	for _, spec := range specs {
		fn, err := trigger.Parse(spec)
		if err != nil {
			return err
		}
		row := triggerRow{Trigger: spec}
		if value != nil {
			b, err := fuzzy.NewWithTrigger(0, fn)
			if err != nil {
				return err
			}
			fired := b.TriggerValue(*value)
			row.Triggered = &fired
		}
		rows = append(rows, row)
	}

	if display.ShouldOutputJSON(cmd, cfg.Eval.Format) {
		return display.WriteJSON(cmd.OutOrStdout(), rows)
	}

	header := []string{"TRIGGER"}
	if value != nil {
		header = append(header, "TRIGGERED")
	}
	data := make([][]string, 0, len(rows))
	for _, row := range rows {
		line := []string{row.Trigger}
		if row.Triggered != nil {
			line = append(line, display.FormatBool(*row.Triggered))
		}
		data = append(data, line)
	}
	return display.RenderTable(cmd.OutOrStdout(), header, data)
}
