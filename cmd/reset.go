package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osokin/lingvo/internal/config"
	"github.com/osokin/lingvo/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all profiles, vocabulary and audit data",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Println("This deletes every profile, word list and audit record.")
			fmt.Println("Run again with --force to confirm.")
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		dbPath, err := resolveDBPath(cmd, cfg)
		if err != nil {
			return fmt.Errorf("resolving database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening store: %w", err)
		}
		defer st.Close()

		if err := st.Wipe(cmd.Context()); err != nil {
			return fmt.Errorf("wiping data: %w", err)
		}
		fmt.Println("All data deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Skip confirmation")
}
