package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ttskit/config"
	"ttskit/internal/adapter/preprocess"
	"ttskit/internal/adapter/seed"
	"ttskit/internal/adapter/store"
	"ttskit/internal/adapter/tokenizer"
	"ttskit/internal/port"
	"ttskit/internal/usecase"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "ttskit",
	Short: "ttskit - fragment text and sign it for the speech API",
	Long: `ttskit turns arbitrary text into a sequence of API-safe fragments and
computes the per-fragment request signature the speech upstream verifies.

Example usage:
  ttskit split "some long text"             # Plan fragments
  ttskit token --seed 406986.2817744745 hi  # Sign one fragment
  ttskit sign --seed 406986.2817744745 "some long text"`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger, err = newLogger(verbose || cfg.Logging.Level == "debug")
		if err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./ttskit.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

// newLogger returns a zap logger. When debug is true, uses development
// config (human-readable, debug level); otherwise production config.
func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// newPlanner assembles the planner from configuration.
func newPlanner(budget int) (*usecase.Planner, error) {
	if budget == 0 {
		budget = cfg.Fragment.Budget
	}

	pipeline, err := preprocess.FromNames(cfg.Pipeline.Steps, cfg.Pipeline.Abbreviations, cfg.SubstitutionPairs())
	if err != nil {
		return nil, err
	}

	cases, err := tokenizer.FromNames(cfg.Tokenizer.Cases)
	if err != nil {
		return nil, err
	}
	engine, err := tokenizer.New(cases, true)
	if err != nil {
		return nil, err
	}

	return usecase.NewPlanner(pipeline, engine, budget, logger)
}

// newSeedProvider resolves the seed source: an explicit --seed value wins;
// otherwise the clock fallback, persisted in the seed cache when enabled.
// The returned closer releases the cache database, if any.
func newSeedProvider(explicit string) (port.SeedProvider, func(), error) {
	noop := func() {}

	if explicit != "" {
		p, err := seed.NewStatic(explicit)
		if err != nil {
			return nil, noop, err
		}
		return p, noop, nil
	}

	var source port.SeedProvider = seed.NewClock(cfg.Seed.FallbackSecond)

	if cfg.Seed.CacheEnabled {
		if err := config.EnsureCacheDir(rootDir); err != nil {
			return nil, noop, fmt.Errorf("failed to create cache directory: %w", err)
		}
		st, err := store.NewBoltSeedStore(config.SeedDBPath(rootDir))
		if err != nil {
			return nil, noop, fmt.Errorf("failed to open seed cache: %w", err)
		}
		return seed.NewCached(seed.NewPersistent(st, source, logger)), func() { _ = st.Close() }, nil
	}

	return seed.NewCached(source), noop, nil
}
