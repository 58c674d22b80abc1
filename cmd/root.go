package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// CLI flags for the replay command
	configPath  string // Path to cobalt.yaml
	problemsDir string // Directory receiving <session>_log.xml
	logLevel    string // Log verbosity level
	jobs        int    // Scripts replayed concurrently
	noColor     bool   // Disable colored console report
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "cobalt",
	Short: "Trace & summary logger for the Cobalt solution-search engine",
}

// replayCmd drives the trace logger with recorded engine sessions
var replayCmd = &cobra.Command{
	Use:   "replay <script.yaml>...",
	Short: "Replay event scripts and write their trace logs",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := defaultConfig()
		if configPath != "" {
			loaded, err := loadConfig(configPath)
			if err != nil {
				logrus.Fatalf("Failed to load config: %v", err)
			}
			cfg = loaded
		}
		if dir := os.Getenv(problemsDirEnv); dir != "" {
			cfg.ProblemsDir = dir
		}
		// Flags override config only when set explicitly
		if cmd.Flags().Changed("problems-dir") {
			cfg.ProblemsDir = problemsDir
		}
		if cmd.Flags().Changed("log") {
			cfg.LogLevel = logLevel
		}
		if cmd.Flags().Changed("jobs") {
			cfg.Jobs = jobs
		}

		// Set up logging
		level, err := logrus.ParseLevel(cfg.LogLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", cfg.LogLevel)
		}
		logrus.SetLevel(level)

		if err := cfg.Validate(); err != nil {
			logrus.Fatalf("Invalid config: %v", err)
		}
		if noColor {
			color.NoColor = true
		}

		logrus.Infof("Replaying %d script(s) into %s with %d job(s)", len(args), cfg.ProblemsDir, cfg.Jobs)
		results, err := replayAll(cmd.Context(), args, cfg)
		if err != nil {
			logrus.Fatalf("Replay failed: %v", err)
		}
		for _, r := range results {
			printReport(cmd.OutOrStdout(), r)
		}
		logrus.Info("Replay complete.")
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
	replayCmd.Flags().StringVar(&configPath, "config", "", "Path to a cobalt.yaml config file")
	replayCmd.Flags().StringVar(&problemsDir, "problems-dir", ".", "Directory receiving <session>_log.xml (overrides $"+problemsDirEnv+")")
	replayCmd.Flags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	replayCmd.Flags().IntVar(&jobs, "jobs", 1, "Number of scripts replayed concurrently")
	replayCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	// Attach `replay` as a subcommand to `root`
	rootCmd.AddCommand(replayCmd)
}
