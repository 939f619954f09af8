// Command occupancy enumerates occupancy configurations of N particles on a
// half-integer energy ladder with total energy E.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/occupancy/config"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	// Global flags
	verbose    bool
	configPath string
	logFormat  string

	// Problem flags (enumerate, reduce)
	particles int
	energy    float64
	format    string

	// Search flags (enumerate)
	maxLevels  int
	workers    int
	noPrune    bool
	timeLimit  string
	stepBudget int64
	countOnly  bool
	stream     bool

	// Loaded in PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
	runID  string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "occupancy",
	Short: "Enumerate particle occupancies of an equally spaced energy ladder",
	Long: `occupancy lists every way to place N indistinguishable particles on the
levels of a ladder with energies 0.5, 1.5, 2.5, ... (at most two per level)
so that the total energy is exactly E.

E must be an integer for even N and end in .5 for odd N.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-format") {
			cfg.Logging.Format = logFormat
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("--log-format: %w", err)
			}
		}

		logger, err = newLogger(cfg.Logging, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		runID = uuid.NewString()
		logger = logger.With(zap.String("run_id", runID))

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// enumerateCmd runs the full pipeline
var enumerateCmd = &cobra.Command{
	Use:   "enumerate",
	Short: "List every configuration with N particles and total energy E",
	Long: `Normalizes (N, E), freezes the lowest levels that can never lose a particle,
and searches the remaining levels exhaustively.

Example:
  occupancy enumerate -n 20 -e 106
  occupancy enumerate -n 21 -e 113.5 --workers 3 --format json`,
	Args: cobra.NoArgs,
	RunE: runEnumerate,
}

// reduceCmd prints the reduced problem only
var reduceCmd = &cobra.Command{
	Use:   "reduce",
	Short: "Show the reduced search problem for N and E",
	Args:  cobra.NoArgs,
	RunE:  runReduce,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "occupancy", version)
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "Log encoding: console or json")

	// Problem flags shared by enumerate and reduce
	for _, c := range []*cobra.Command{enumerateCmd, reduceCmd} {
		c.Flags().IntVarP(&particles, "particles", "n", 0, "Number of particles N (required)")
		c.Flags().Float64VarP(&energy, "energy", "e", 0, "Total energy E (required)")
		c.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, json or yaml")
		c.MarkFlagRequired("particles")
		c.MarkFlagRequired("energy")
	}

	// Search flags
	enumerateCmd.Flags().IntVar(&maxLevels, "max-levels", 0, "Reject searches over more residual levels (0 = no bound)")
	enumerateCmd.Flags().IntVar(&workers, "workers", 1, "Goroutines for the first-level split (1-3)")
	enumerateCmd.Flags().BoolVar(&noPrune, "no-prune", false, "Disable branch-and-bound pruning")
	enumerateCmd.Flags().StringVar(&timeLimit, "time-limit", "", "Soft time limit, e.g. 30s")
	enumerateCmd.Flags().Int64Var(&stepBudget, "step-budget", 0, "Maximum search nodes (0 = unlimited)")
	enumerateCmd.Flags().BoolVar(&countOnly, "count-only", false, "Only report the number of configurations")
	enumerateCmd.Flags().BoolVar(&stream, "stream", false, "Print configurations as they are found (requires --format text)")

	rootCmd.AddCommand(enumerateCmd)
	rootCmd.AddCommand(reduceCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
