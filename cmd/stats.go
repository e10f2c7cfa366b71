package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/osokin/lingvo/internal/config"
	"github.com/osokin/lingvo/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning and activity statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		ctx := cmd.Context()
		userID := cfg.User.ID

		total, err := st.VocabRepo().Count(ctx, userID)
		if err != nil {
			return fmt.Errorf("counting vocabulary: %w", err)
		}
		due, err := st.VocabRepo().ListDue(ctx, userID)
		if err != nil {
			return fmt.Errorf("listing due words: %w", err)
		}

		fmt.Println("Vocabulary")
		fmt.Println(strings.Repeat("─", 40))
		fmt.Printf("%-20s  %d\n", "Words introduced", total)
		fmt.Printf("%-20s  %d\n", "Still practicing", len(due))
		fmt.Printf("%-20s  %d\n", "Learned", total-len(due))

		stats, err := st.AuditRepo().MessageStatsByKind(ctx)
		if err != nil {
			return fmt.Errorf("querying activity: %w", err)
		}
		if len(stats) == 0 {
			return nil
		}

		fmt.Println()
		fmt.Println("Activity")
		fmt.Println(strings.Repeat("─", 40))
		for _, s := range stats {
			fmt.Printf("%-20s  %d\n", s.Kind, s.Count)
		}
		return nil
	},
}
