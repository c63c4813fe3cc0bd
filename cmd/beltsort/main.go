package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/beltsort/internal/cliconfig"
	"github.com/bft-labs/beltsort/pkg/log"
	"github.com/bft-labs/beltsort/pkg/sorter"
)

const longHelp = `Route plastic objects to conveyor belts by color category.

Routing table:
  black       -> belt A
  transparent -> belt B
  colorful    -> belt C

Any other category is rejected; nothing is ever sent to a belt by guess.
Configure via $HOME/.beltsort/config.toml, BELTSORT_* environment variables
(also read from ./.env), or flags. Flags win over environment, environment
wins over the config file.`

var exampleUsage = strings.TrimSpace(`
  beltsort route transparent
  beltsort batch labels.txt --output json
  cat labels.txt | beltsort batch
  beltsort watch /var/spool/line1/labels.txt --from-end
  beltsort table --output yaml
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// app carries the resolved configuration into subcommands.
type app struct {
	cfg     cliconfig.Config
	cfgPath string
	debug   bool

	logger log.Logger
	sorter *sorter.Sorter
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: cliconfig.DefaultConfig()}

	root := &cobra.Command{
		Use:           "beltsort",
		Short:         "Route plastic objects to conveyor belts by color",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.resolve(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgPath, "config", "", "path to config file (default: $HOME/.beltsort/config.toml)")
	flags.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level (trace, debug, info, warn, error)")
	flags.StringVar(&a.cfg.LogFormat, "log-format", a.cfg.LogFormat, "log format (console, json)")
	flags.StringVarP(&a.cfg.Output, "output", "o", a.cfg.Output, "assignment output format (text, json, yaml)")
	flags.IntVar(&a.cfg.Workers, "workers", a.cfg.Workers, "labels routed concurrently in batch mode")
	flags.BoolVar(&a.cfg.Strict, "strict", a.cfg.Strict, "exit nonzero when any object in a batch is rejected")
	flags.BoolVar(&a.debug, "debug", false, "shorthand for --log-level debug")

	root.AddCommand(
		newRouteCmd(a),
		newBatchCmd(a),
		newWatchCmd(a),
		newTableCmd(a),
	)
	return root
}

// resolve applies config file, environment and flags in that order of
// increasing precedence, then builds the logger and sorter.
func (a *app) resolve(cmd *cobra.Command) error {
	if err := cliconfig.LoadDotEnv(); err != nil {
		return err
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	cfgFile := a.cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}
	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&a.cfg, fc, changed); err != nil {
			return err
		}
	} else if a.cfgPath != "" {
		return fmt.Errorf("config file %s not found", a.cfgPath)
	}

	if err := cliconfig.ApplyEnvConfig(&a.cfg, changed); err != nil {
		return err
	}
	if a.debug {
		a.cfg.LogLevel = "debug"
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	logger, err := cliconfig.NewLogger(a.cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.logger = logger
	a.sorter = sorter.New(
		sorter.WithLogger(logger),
		sorter.WithWorkers(a.cfg.Workers),
	)
	logger.Debug("configuration", log.Any("config", a.cfg))
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.NewZerologAdapter().Error("beltsort", log.Err(err))
		os.Exit(1)
	}
}
