package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/satlearn/internal/report"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Show strengths, weaknesses and areas to improve",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ins, err := a.svc.GetLearnerInsights(cmd.Context(), learnerID(cmd))
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), report.Insights(ins))
		return nil
	},
}
