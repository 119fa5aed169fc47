package cmd

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/clan-sim/clan-sim/sim"
)

var (
	// CLI flags for the run command
	networkPath  string // Topology file (.xml, .yaml, .yml)
	queriesPath  string // Query stream file, "-" for stdin
	configPath   string // Optional YAML run configuration
	logLevel     string // Log verbosity level
	statusFormat string // Status report layout (line, table)
	traceLevel   string // Decision trace level (none, decisions)
	showSummary  bool   // Print a run summary to stderr
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "clan-sim",
	Short: "Discrete-event simulator for clan mining campaigns",
}

// setupLogging parses the --log flag and applies it to logrus.
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// resolveConfig loads the run configuration and applies flag overrides.
func resolveConfig(cmd *cobra.Command) sim.Config {
	cfg := sim.DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = sim.LoadConfig(configPath)
		if err != nil {
			logrus.Fatalf("Failed to load run config: %v", err)
		}
	}
	if cmd.Flags().Changed("format") {
		cfg.StatusFormat = statusFormat
	}
	if cmd.Flags().Changed("trace") {
		cfg.TraceLevel = traceLevel
	}
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("Invalid run config: %v", err)
	}
	return cfg
}

// runCmd executes the simulation over a query stream
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the simulation over a query stream",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		if networkPath == "" {
			logrus.Fatalf("Topology file not provided (--network). Exiting simulation.")
		}
		cfg := resolveConfig(cmd)

		var in io.Reader = os.Stdin
		if queriesPath != "" && queriesPath != "-" {
			f, err := os.Open(queriesPath)
			if err != nil {
				logrus.Fatalf("Failed to open queries: %v", err)
			}
			defer f.Close()
			in = f
		}

		logrus.Infof("Starting simulation: network=%s, block_slowdown=%g, trace=%s",
			networkPath, cfg.BlockSlowdown, cfg.TraceLevel)

		res, err := runSimulation(networkPath, in, cfg, os.Stdout)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		if showSummary || res.Trace != nil {
			printSummary(os.Stderr, res)
		}

		logrus.Info("Simulation complete.")
	},
}

// validateCmd loads a topology and reports what would be simulated
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load a topology and report clans, roads and mine reachability",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		if networkPath == "" {
			logrus.Fatalf("Topology file not provided (--network).")
		}
		if err := validateTopology(networkPath, os.Stdout); err != nil {
			logrus.Fatalf("Validation failed: %v", err)
		}
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&networkPath, "network", "", "Topology file (.xml, .yaml or .yml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	runCmd.Flags().StringVar(&queriesPath, "queries", "-", "Query file, or - for stdin")
	runCmd.Flags().StringVar(&configPath, "config", "", "YAML run configuration (block_slowdown, trace_level, status_format)")
	runCmd.Flags().StringVar(&statusFormat, "format", sim.StatusFormatLine, "Status report layout (line, table)")
	runCmd.Flags().StringVar(&traceLevel, "trace", "none", "Decision trace level (none, decisions)")
	runCmd.Flags().BoolVar(&showSummary, "summary", false, "Print a run summary to stderr")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
}
