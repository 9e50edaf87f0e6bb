package rs63

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/pflag"
)

func SelfTestMain() {
	var _config = pflag.StringP("config", "c", "", "YAML configuration file.")
	var _trials = pflag.IntP("trials", "n", DEFAULT_TRIALS, "Number of trials.")
	var _workers = pflag.IntP("workers", "w", DEFAULT_WORKERS, "Trials run in parallel.")
	var _seed = pflag.Uint64P("seed", "s", DEFAULT_SEED, "Random seed.  The same seed gives the same trials.")
	var _overloadEvery = pflag.Int("overload-every", DEFAULT_OVERLOAD_EVERY, "Every n-th trial has more errors than can be corrected.  0 for none.")
	var _debug = pflag.IntP("debug", "d", 0, "Debug level.")
	var help = pflag.BoolP("help", "h", false, "Display help text.")

	pflag.Parse()

	if *help {
		pflag.Usage()
		os.Exit(0)
	}

	var config = DefaultConfig()
	if *_config != "" {
		var err error
		config, err = LoadConfig(*_config)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			os.Exit(1)
		}
	}

	if pflag.CommandLine.Changed("trials") {
		config.SelfTest.Trials = *_trials
	}
	if pflag.CommandLine.Changed("workers") {
		config.SelfTest.Workers = *_workers
	}
	if pflag.CommandLine.Changed("seed") {
		config.SelfTest.Seed = *_seed
	}
	if pflag.CommandLine.Changed("overload-every") {
		config.SelfTest.OverloadEvery = *_overloadEvery
	}
	if pflag.CommandLine.Changed("debug") {
		config.Debug = *_debug
	}

	if err := config.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}

	rs63_init(config.Debug)

	var ctx, stop = signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if !runSelfTest(ctx, config) {
		stop()
		os.Exit(1)
	}
}

// Returns true if everything passed.

func runSelfTest(ctx context.Context, config *Config) bool {
	var report, err = SelfTest(ctx, SelfTestOptions{
		Trials:        config.SelfTest.Trials,
		Workers:       config.SelfTest.Workers,
		Seed:          config.SelfTest.Seed,
		OverloadEvery: config.SelfTest.OverloadEvery,
	})

	fmt.Printf("%s\n", report)

	if err != nil {
		fmt.Printf("***** RS(%d,%d) self test FAILED.  %s *****\n", NN, LOAD, err)
		return false
	}

	fmt.Printf("***** RS(%d,%d) self test Success - all %d correctable trials passed. *****\n", NN, LOAD, report.Passed)
	return true
}
