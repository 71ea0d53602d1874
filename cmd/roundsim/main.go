// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/AccelByte/extend-round-scheduler/pkg/config"
	"github.com/AccelByte/extend-round-scheduler/pkg/envelope"
	"github.com/AccelByte/extend-round-scheduler/pkg/metrics"
	"github.com/AccelByte/extend-round-scheduler/pkg/models"
	"github.com/AccelByte/extend-round-scheduler/pkg/randsource"
	"github.com/AccelByte/extend-round-scheduler/pkg/scheduler"
	"github.com/AccelByte/extend-round-scheduler/pkg/tracing"
	"github.com/AccelByte/extend-round-scheduler/pkg/utils"
)

type options struct {
	players      int
	courts       int
	rounds       int
	fixedTeams   bool
	singles      bool
	seed         uint64
	scenarioFile string
	trace        string
	metrics      bool
	noColor      bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "roundsim",
		Short: "Simulate successive rounds of a session",
		Long: heredoc.Doc(`
			roundsim generates a number of successive rounds for a session and prints
			them one after another.

			Teams whose players were partners before are shown in red, team matchups
			that happened before in yellow, and players who already faced each other
			are listed in parentheses after the match. A fairness summary follows the
			last round.

			The session comes from the flags or from a YAML scenario file.
		`),
		Example: heredoc.Doc(`
			$ roundsim --players 8 --courts 2 --rounds 6
			$ roundsim --players 12 --courts 3 --fixed-teams --seed 42
			$ roundsim --scenario session.yaml --metrics
		`),
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				opts.seed = uint64(time.Now().UnixNano())
			}
			return run(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.players, "players", "p", 8, "number of players")
	flags.IntVarP(&opts.courts, "courts", "c", 2, "number of courts")
	flags.IntVarP(&opts.rounds, "rounds", "r", defaultRounds, "number of rounds to generate")
	flags.BoolVar(&opts.fixedTeams, "fixed-teams", false, "team up consecutive players for the whole session")
	flags.BoolVar(&opts.singles, "singles", false, "play singles instead of doubles")
	flags.Uint64Var(&opts.seed, "seed", 0, "random seed, the output is reproducible for the same seed")
	flags.StringVarP(&opts.scenarioFile, "scenario", "f", "", "YAML scenario file, overrides the session flags")
	flags.StringVar(&opts.trace, "trace", "", "b3 header of a parent span")
	flags.BoolVar(&opts.metrics, "metrics", false, "print the collected metrics after the summary")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable highlighting")

	return cmd
}

func run(ctx context.Context, out io.Writer, opts *options) error {
	if ctx == nil {
		ctx = context.Background()
	}
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	logrus.SetLevel(level)
	logrus.SetOutput(os.Stderr)

	shutdown, err := tracing.Setup(cfg.ServiceName, cfg.ZipkinEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logrus.WithError(err).Warn("failed to stop tracer provider")
		}
	}()

	scenario := scenarioFromFlags(opts.players, opts.courts, opts.rounds, opts.fixedTeams, opts.singles)
	if opts.scenarioFile != "" {
		if scenario, err = LoadScenario(opts.scenarioFile); err != nil {
			return err
		}
	}
	seed := opts.seed
	if scenario.Seed != nil {
		seed = *scenario.Seed
	}

	scope := envelope.ChildScopeFromRemoteScope(tracing.ContextFromB3(ctx, opts.trace), "roundsim")
	defer scope.Finish()
	scope.Log.WithFields(logrus.Fields{
		"seed":    seed,
		"rounds":  scenario.Rounds,
		"players": len(scenario.Participants),
		"courts":  len(scenario.Courts),
		"b3":      tracing.InjectB3(scope.Ctx),
	}).Debug("starting simulation")

	registry := prometheus.NewRegistry()
	rng := randsource.New(seed)
	gen := scheduler.New(cfg, metrics.NewMetrics(registry), rng, scheduler.WithIDGenerator(matchIDGenerator(seed)))

	printer := NewPrinter(out, len(scenario.FixedTeams) > 0, opts.noColor)
	rounds, err := simulate(scope, gen, rng, scenario, printer)
	if err != nil {
		return err
	}
	printer.Summary(scenario.PlayerIDs(), rounds)

	if opts.metrics {
		return writeMetrics(out, registry)
	}
	return nil
}

// simulate generates the rounds of the scenario, scoring each match so winners court can rotate.
func simulate(scope *envelope.Scope, gen scheduler.RoundScheduler, rng randsource.Source, scenario *Scenario, printer *Printer) ([]models.Round, error) {
	var rounds []models.Round
	for i := 1; i <= scenario.Rounds; i++ {
		result, err := gen.Schedule(scope, scenario.Request(rounds))
		if err != nil {
			return rounds, err
		}
		printer.Round(i, result, rounds)
		if len(result.Matches) == 0 {
			continue
		}
		round := result.Round()
		scoreRound(rng, round)
		rounds = append(rounds, round)
	}
	return rounds, nil
}

// scoreRound plays one set per match to 11.
func scoreRound(rng randsource.Source, round models.Round) {
	for i := range round.Matches {
		loser := rng.Intn(10)
		if rng.Intn(2) == 0 {
			round.Matches[i].Sets = []models.Set{{TeamA: 11, TeamB: loser}}
		} else {
			round.Matches[i].Sets = []models.Set{{TeamA: loser, TeamB: 11}}
		}
	}
}

// matchIDGenerator takes both the ulid time and the entropy from seed, so a rerun prints the same ids.
func matchIDGenerator(seed uint64) utils.IDGenerator {
	ms := int64(seed % (1 << 40))
	return utils.NewSeededULIDGenerator(time.UnixMilli(ms), rand.New(rand.NewSource(int64(seed))))
}

func writeMetrics(out io.Writer, registry *prometheus.Registry) error {
	families, err := registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	fmt.Fprintln(out)
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(out, family); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
