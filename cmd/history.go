package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/satlearn/internal/report"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently recorded answers",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		records, err := a.store.AnswerLog().RecentAnswers(cmd.Context(), learnerID(cmd), limit)
		if err != nil {
			return fmt.Errorf("query answers: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), report.History(records))
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Maximum number of answers to show (0 for all)")
}
