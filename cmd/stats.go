package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recorded practicum runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		sums, err := st.Summaries(cmd.Context())
		if err != nil {
			return fmt.Errorf("load summaries: %w", err)
		}
		if len(sums) == 0 {
			fmt.Println("No practicum runs recorded yet.")
			return nil
		}

		fmt.Printf("%-36s  %-16s  %8s  %7s  %5s  %-11s\n",
			"SESSION", "STARTED", "ATTEMPTS", "CORRECT", "QUIZ", "FURTHEST")
		for _, s := range sums {
			furthest := s.LastStage
			if furthest == "" {
				furthest = "(started)"
			}
			fmt.Printf("%-36s  %-16s  %8d  %7d  %5d  %-11s\n",
				s.SessionID,
				s.StartedAt.Format("2006-01-02 15:04"),
				s.Attempts, s.Correct, s.QuizScore, furthest)
		}
		return nil
	},
}
