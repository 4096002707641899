package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/teranos/fuzzytime/am"
	"github.com/teranos/fuzzytime/errors"
	"github.com/teranos/fuzzytime/logger"
)

// WatchCmd re-evaluates profiles whenever configuration or profile files change
var WatchCmd = newWatchCmd()

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <profile>...",
		Short: "Re-evaluate profiles when their definitions change",
		Long: `Evaluate profiles like 'eval', then keep watching am.toml and the profile
library file. Each change is debounced and triggers a fresh evaluation at the
current time. Stop with Ctrl-C.

Examples:
  fuzzytime watch sun_has_set
  fuzzytime watch tom_is_going_home sun_has_set --op or --format json`,
		Args: cobra.MinimumNArgs(1),
		RunE: runWatch,
	}
	addEvalFlags(cmd)
	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	req, err := evalRequestFromFlags(cmd, args)
	if err != nil {
		return err
	}

	paths := watchPaths(am.ConfigPaths(), cfg)
	if len(paths) == 0 {
		return errors.WithHint(errors.New("nothing to watch"),
			"create ./am.toml or ~/.fuzzytime/am.toml, or set schedule.profiles_path")
	}

	report := func(cfg *am.Config) error {
		result, err := evaluate(cfg, req)
		if err != nil {
			return err
		}
		return printEvalResult(cmd, cmd.OutOrStdout(), cfg, result)
	}
	watcher, err := am.NewConfigWatcher(paths...)
	if err != nil {
		return err
	}
	defer watcher.Stop()

	// Paths are registered already; changes queue until Start
	if err := report(cfg); err != nil {
		return err
	}
	watcher.OnReload(report)
	watcher.Start()

	logger.Infow("Watching for changes", logger.FieldCount, len(paths), logger.FieldPath, paths)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	return nil
}

// watchPaths returns the existing config files plus the profile library
func watchPaths(configPaths []string, cfg *am.Config) []string {
	var paths []string
	for _, p := range configPaths {
		if _, err := os.Stat(p); err == nil {
			paths = append(paths, p)
		}
	}
	if lib, err := cfg.Library(); err == nil && lib.Source() != "" {
		paths = append(paths, lib.Source())
	}
	return paths
}
