package cmd

import (
	"github.com/aruizf/biogen/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "biogen",
	Short: "AI-generated biology exams in the terminal",
	Long:  "BioGen — genera exámenes de Biología y Geología de 3º ESO con IA y los corrige contra reloj.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExam(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides BIOGEN_DB env var)")
	rootCmd.Flags().Int("questions", 100, "Number of questions in the full exam")

	rootCmd.AddCommand(examCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then BIOGEN_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
