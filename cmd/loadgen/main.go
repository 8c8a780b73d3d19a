// Command loadgen generates synthetic traffic against a storefront instance
// so the Prometheus/Grafana stack has live data to chart.
package main

import (
	"context"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/redlabs/storefront/client"
)

var (
	flagURL      string
	flagUsers    int
	flagDuration time.Duration
	flagWaitMin  time.Duration
	flagWaitMax  time.Duration
	flagProfile  string
	flagSeed     uint64
	flagLogLevel string
	flagReport   time.Duration
	flagTimeout  time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "loadgen",
		Short:        "Synthetic traffic generator for the storefront demo",
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVar(&flagURL, "url", "http://localhost:8000", "storefront base URL (env: STOREFRONT_URL)")
	rootCmd.Flags().IntVar(&flagUsers, "users", 10, "number of concurrent virtual users")
	rootCmd.Flags().DurationVar(&flagDuration, "duration", 0, "how long to run; 0 runs until interrupted")
	rootCmd.Flags().DurationVar(&flagWaitMin, "wait-min", 0, "override minimum wait between tasks")
	rootCmd.Flags().DurationVar(&flagWaitMax, "wait-max", 0, "override maximum wait between tasks")
	rootCmd.Flags().StringVar(&flagProfile, "profile", "", "YAML traffic profile file")
	rootCmd.Flags().Uint64Var(&flagSeed, "seed", 0, "random seed; 0 picks one")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "log level (debug shows every failed request)")
	rootCmd.Flags().DurationVar(&flagReport, "report-interval", 10*time.Second, "how often to log counters")
	rootCmd.Flags().DurationVar(&flagTimeout, "request-timeout", 90*time.Second, "per-request timeout")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	log := logrus.New()
	level, err := logrus.ParseLevel(flagLogLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)

	if flagURL == "http://localhost:8000" {
		if v := os.Getenv("STOREFRONT_URL"); v != "" {
			flagURL = v
		}
	}

	profile, err := resolveProfile(cmd)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = rand.Uint64()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if flagDuration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, flagDuration)
		defer cancel()
	}

	log.WithFields(logrus.Fields{
		"url":      flagURL,
		"users":    flagUsers,
		"duration": flagDuration.String(),
		"seed":     seed,
	}).Info("starting load")

	r := newRunner(client.New(flagURL, client.WithTimeout(flagTimeout)), profile, log)

	go r.report(ctx, flagReport)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < flagUsers; i++ {
		id := i
		g.Go(func() error {
			// Independent per-user streams off the shared seed.
			rng := rand.New(rand.NewPCG(seed, uint64(id)))
			r.user(ctx, id, rng)
			return nil
		})
	}

	g.Wait() //nolint:errcheck // users only exit on cancellation.
	r.logStats("finished")

	return nil
}

// resolveProfile loads the profile file (or defaults) and applies any wait
// overrides given on the command line.
func resolveProfile(cmd *cobra.Command) (*Profile, error) {
	profile := DefaultProfile()
	if flagProfile != "" {
		loaded, err := LoadProfile(flagProfile)
		if err != nil {
			return nil, err
		}
		profile = loaded
	}

	if cmd.Flags().Changed("wait-min") {
		profile.WaitMin = flagWaitMin
	}
	if cmd.Flags().Changed("wait-max") {
		profile.WaitMax = flagWaitMax
	}

	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return profile, nil
}
