package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/interviewsprint/internal/logging"
	"github.com/abhisek/interviewsprint/internal/store"
)

// logger is built from --log-level before any command runs.
var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:   "interviewsprint",
	Short: "48-hour SQL and DSA interview prep",
	Long: "InterviewSprint builds a 48-hour study roadmap and SQL/DSA question banks " +
		"with a generative model, in the terminal.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		envFile, _ := cmd.Flags().GetString("env-file")
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", envFile, err)
		}

		level, _ := cmd.Flags().GetString("log-level")
		l, err := logging.New(level)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with ctx, which every generation
// call inherits.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SPRINT_DB env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (default warn)")
	rootCmd.PersistentFlags().String("env-file", ".env", "Dotenv file to load before reading SPRINT_* variables")
	rootCmd.Flags().Bool("no-splash", false, "Start on the home screen")

	rootCmd.AddCommand(roadmapCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(kitCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then SPRINT_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
