package commands

import (
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/teranos/fuzzytime/am"
	"github.com/teranos/fuzzytime/display"
	"github.com/teranos/fuzzytime/errors"
	"github.com/teranos/fuzzytime/logger"
	"github.com/teranos/fuzzytime/schedule"
	"github.com/teranos/fuzzytime/temporal"
	"github.com/teranos/fuzzytime/trigger"
)

// EvalCmd evaluates one or more profiles at a moment in time
var EvalCmd = newEvalCmd()

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <profile>...",
		Short: "Evaluate profiles at a moment in time",
		Long: `Evaluate one or more hour-band profiles and print the resulting truth value.

Multiple profiles are combined left to right with --op. The trigger used for
the yes/no answer is, in order: --trigger, the first profile's own trigger,
then eval.default_trigger from configuration.

Examples:
  fuzzytime eval sun_has_set
  fuzzytime eval tom_is_going_home sun_has_set --op and
  fuzzytime eval tom_is_going_home --not --at 2026-10-14T18:30:00+02:00
  fuzzytime eval sun_has_set --trigger above:0.5 --format json`,
		Args: cobra.MinimumNArgs(1),
		RunE: runEval,
	}
	addEvalFlags(cmd)
	cmd.Flags().String("at", "", "Evaluate at this RFC3339 time instead of now")
	return cmd
}

func addEvalFlags(cmd *cobra.Command) {
	cmd.Flags().String("op", string(schedule.OpAnd), "Operator combining profiles: and, or")
	cmd.Flags().Bool("not", false, "Negate the combined result")
	cmd.Flags().String("trigger", "", "Trigger spec overriding the configured one (see 'fuzzytime triggers')")
	cmd.Flags().String("format", "", "Output format: table, json (default from eval.format)")
}

func runEval(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	req, err := evalRequestFromFlags(cmd, args)
	if err != nil {
		return err
	}
	if raw, _ := cmd.Flags().GetString("at"); raw != "" {
		at, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return errors.WithHint(errors.Wrapf(err, "invalid --at %q", raw),
				"use RFC3339, e.g. 2026-10-14T18:30:00+02:00")
		}
		req.At = at
	}

	result, err := evaluate(cfg, req)
	if err != nil {
		return err
	}
	return printEvalResult(cmd, cmd.OutOrStdout(), cfg, result)
}

// evalRequest describes one evaluation
type evalRequest struct {
	Profiles []string
	Op       schedule.Op
	Negate   bool
	Trigger  string
	At       time.Time // zero means now
}

// evalResult is what eval and watch report
type evalResult struct {
	Expression string    `json:"expression"`
	Profiles   []string  `json:"profiles"`
	Op         string    `json:"op"`
	Negated    bool      `json:"negated"`
	At         time.Time `json:"at"`
	Truth      float64   `json:"truth"`
	Sign       string    `json:"sign"`
	Trigger    string    `json:"trigger"`
	Triggered  bool      `json:"triggered"`
}

func evalRequestFromFlags(cmd *cobra.Command, args []string) (evalRequest, error) {
	rawOp, _ := cmd.Flags().GetString("op")
	op, err := schedule.ParseOp(rawOp)
	if err != nil {
		return evalRequest{}, err
	}
	negate, _ := cmd.Flags().GetBool("not")
	spec, _ := cmd.Flags().GetString("trigger")

	return evalRequest{
		Profiles: args,
		Op:       op,
		Negate:   negate,
		Trigger:  spec,
	}, nil
}

// evaluate builds, composes and evaluates the requested profiles under cfg
func evaluate(cfg *am.Config, req evalRequest) (evalResult, error) {
	lib, err := cfg.Library()
	if err != nil {
		return evalResult{}, err
	}

	factories := make([]*temporal.Factory, 0, len(req.Profiles))
	for _, name := range req.Profiles {
		f, err := lib.Factory(name)
		if err != nil {
			return evalResult{}, err
		}
		factories = append(factories, f)
	}

	composed, err := schedule.Compose(req.Op, factories...)
	if err != nil {
		return evalResult{}, err
	}
	if req.Negate {
		composed = composed.Not()
	}

	at := req.At
	if at.IsZero() {
		loc, err := cfg.Location()
		if err != nil {
			return evalResult{}, err
		}
		at = composed.Clock().Now().In(loc)
	}

	value, err := composed.Evaluate(at)
	if err != nil {
		return evalResult{}, errors.Wrapf(err, "failed to evaluate %s", expression(req))
	}

	spec, fn, err := resolveTrigger(cfg, lib, req)
	if err != nil {
		return evalResult{}, err
	}
	triggered, err := value.TriggerWith(fn)
	if err != nil {
		return evalResult{}, err
	}

	logger.Debugw("Evaluated",
		logger.FieldOperation, expression(req),
		logger.FieldTime, at,
		logger.FieldTruth, value.Truth(),
		logger.FieldTrigger, spec,
		logger.FieldTriggered, triggered)

	return evalResult{
		Expression: expression(req),
		Profiles:   req.Profiles,
		Op:         string(req.Op),
		Negated:    req.Negate,
		At:         at,
		Truth:      value.Truth(),
		Sign:       display.Sign(value),
		Trigger:    spec,
		Triggered:  triggered,
	}, nil
}

// resolveTrigger picks the flag, then the first profile's trigger, then the
// configured default
func resolveTrigger(cfg *am.Config, lib *schedule.Library, req evalRequest) (string, trigger.Func, error) {
	spec := req.Trigger
	if spec == "" && len(req.Profiles) > 0 {
		if p, ok := lib.Get(req.Profiles[0]); ok {
			spec = p.Trigger
		}
	}
	if spec == "" {
		spec = cfg.Eval.DefaultTrigger
	}
	fn, err := trigger.Parse(spec)
	if err != nil {
		return "", nil, err
	}
	return spec, fn, nil
}

func expression(req evalRequest) string {
	expr := strings.Join(req.Profiles, " "+string(req.Op)+" ")
	if req.Negate {
		if len(req.Profiles) > 1 {
			return "not (" + expr + ")"
		}
		return "not " + expr
	}
	return expr
}

func printEvalResult(cmd *cobra.Command, w io.Writer, cfg *am.Config, result evalResult) error {
	if display.ShouldOutputJSON(cmd, cfg.Eval.Format) {
		return display.WriteJSON(w, result)
	}

	header := []string{"EXPRESSION", "AT", "TRUTH", "SIGN", "TRIGGER", "TRIGGERED"}
	rows := [][]string{{
		result.Expression,
		result.At.Format(time.RFC3339),
		display.FormatTruth(result.Truth),
		result.Sign,
		result.Trigger,
		display.FormatBool(result.Triggered),
	}}
	return display.RenderTable(w, header, rows)
}
