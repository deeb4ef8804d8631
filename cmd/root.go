package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tutorkit/tutorkit/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "tutorkit",
	Short: "Learning-progress state engine",
	Long:  "TutorKit — tracks per-concept mastery and spaced-repetition schedules for self-paced courses.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides TUTORKIT_DB env var)")

	rootCmd.AddCommand(coursesCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(dueCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then TUTORKIT_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore resolves the database path and opens the store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	path, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(path)
}
