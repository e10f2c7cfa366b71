package cmd

import (
	"github.com/spf13/cobra"

	"github.com/osokin/lingvo/internal/config"
	"github.com/osokin/lingvo/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "lingvo",
	Short: "Conversational language-learning tutor",
	Long: "Lingvo — a chat tutor that teaches you vocabulary and grammar in a\n" +
		"foreign language, with spaced practice and daily reminders.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LINGVO_DATABASE_PATH)")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using the --db flag (highest
// priority), then the configured path, then the default XDG location.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg != nil && cfg.Database.Path != "" {
		return cfg.Database.Path, store.EnsureDir(cfg.Database.Path)
	}
	return store.DefaultDBPath()
}
