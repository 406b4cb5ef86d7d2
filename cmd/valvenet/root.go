package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/katalvlaran/valvenet/distance"
	"github.com/katalvlaran/valvenet/network"
	"github.com/katalvlaran/valvenet/solver"
	"github.com/katalvlaran/valvenet/telemetry"
)

const envPrefix = "VALVENET"

// settings are the resolved flag values after config file and environment
// have been applied.
type settings struct {
	input        string
	config       string
	start        string
	singleBudget int
	pairBudget   int
	workers      int
	strategy     string
	directed     bool
	route        bool
	metrics      bool
	loglevel     string
}

func newRootCmd() *cobra.Command {
	var s settings
	v := viper.New()
	undoMaxprocs := func() {}

	cmd := &cobra.Command{
		Use:           "valvenet [flags] [network.yaml]",
		Short:         "Maximise reward released from a valve network by one or two agents",
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfiguration(cmd, v, s.config); err != nil {
				return err
			}
			if err := setupLogging(cmd.ErrOrStderr(), s.loglevel); err != nil {
				return err
			}
			undo, err := maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
				zlog.Debug().Msgf(format, args...)
			}))
			if err != nil {
				zlog.Debug().Err(err).Msg("could not set GOMAXPROCS")
			}
			if undo != nil {
				undoMaxprocs = undo
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			undoMaxprocs()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				s.input = args[0]
			}
			return run(cmd, s)
		},
	}

	f := cmd.Flags()
	f.StringVar(&s.input, "input", "-", "network description file (YAML), - for stdin")
	f.StringVar(&s.config, "config", "", "optional configuration file")
	f.StringVar(&s.start, "start", "", "start node ID (default: the description's start)")
	f.IntVar(&s.singleBudget, "single-budget", solver.DefaultSingleBudget, "time budget of the lone agent")
	f.IntVar(&s.pairBudget, "pair-budget", solver.DefaultPairBudget, "time budget of each of two agents")
	f.IntVar(&s.workers, "workers", 0, "parallel workers (0 = GOMAXPROCS)")
	f.StringVar(&s.strategy, "strategy", distance.StrategyBFS.String(), "distance reduction: bfs or floyd-warshall")
	f.BoolVar(&s.directed, "directed", false, "treat tunnels as one-way")
	f.BoolVar(&s.route, "route", false, "also print the activation route and agent split")
	f.BoolVar(&s.metrics, "metrics", false, "print search metrics in Prometheus text format")
	f.StringVar(&s.loglevel, "loglevel", "warn", "console log level")

	return cmd
}

// loadConfiguration applies environment variables and the optional config
// file to every flag the user did not set explicitly.
func loadConfiguration(cmd *cobra.Command, v *viper.Viper, path string) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var err error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Changed || !v.IsSet(f.Name) {
			return
		}
		if serr := f.Value.Set(v.GetString(f.Name)); serr != nil {
			err = fmt.Errorf("flag --%s from configuration: %w", f.Name, serr)
		}
	})
	return err
}

// setupLogging points the global zerolog logger at w with a console writer.
func setupLogging(w io.Writer, level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05.000", NoColor: true}
	if w == os.Stderr {
		cw.Out = colorable.NewColorableStderr()
		cw.NoColor = false
	}
	zlog.Logger = zerolog.New(cw).Level(lvl).With().Timestamp().Logger()
	return nil
}

func run(cmd *cobra.Command, s settings) error {
	desc, err := readDescription(cmd, s.input)
	if err != nil {
		return err
	}
	var netOpts []network.Option
	if s.directed {
		netOpts = append(netOpts, network.WithDirected())
	}
	net, err := network.NewBuilder(netOpts...).AddAll(desc.Nodes).Build()
	if err != nil {
		return err
	}
	start := desc.Start
	if s.start != "" {
		start = s.start
	}
	strategy, err := distance.ParseStrategy(s.strategy)
	if err != nil {
		return err
	}

	opts := []solver.Option{
		solver.WithBudgets(s.singleBudget, s.pairBudget),
		solver.WithWorkers(s.workers),
		solver.WithStrategy(strategy),
		solver.WithLogger(zlog.Logger),
	}
	var reg *prometheus.Registry
	if s.metrics {
		reg = prometheus.NewRegistry()
		opts = append(opts, solver.WithMetrics(telemetry.New(reg)))
	}

	zlog.Info().Int("nodes", net.Len()).Str("start", start).Msg("solving")
	res, err := solver.Solve(cmd.Context(), net, start, opts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, res.Single)
	fmt.Fprintln(out, res.Pair)
	if s.route {
		fmt.Fprintf(out, "route: %s\n", strings.Join(res.Route, " "))
		fmt.Fprintf(out, "walk: %s\n", strings.Join(res.Walk, " "))
		fmt.Fprintf(out, "agent 1: %s\n", strings.Join(res.Agents[0], " "))
		fmt.Fprintf(out, "agent 2: %s\n", strings.Join(res.Agents[1], " "))
	}
	if reg != nil {
		return telemetry.WriteText(out, reg)
	}
	return nil
}

func readDescription(cmd *cobra.Command, path string) (network.Description, error) {
	if path == "-" || path == "" {
		return network.DecodeYAML(cmd.InOrStdin())
	}
	f, err := os.Open(path)
	if err != nil {
		return network.Description{}, err
	}
	defer f.Close()
	return network.DecodeYAML(f)
}
