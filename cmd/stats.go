package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/satlearn/internal/report"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		skills, _ := cmd.Flags().GetBool("skills")
		all, _ := cmd.Flags().GetBool("all")

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		st, err := a.svc.GetLearnerState(cmd.Context(), learnerID(cmd))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprint(out, report.Stats(st))
		if skills || all {
			fmt.Fprintln(out)
			fmt.Fprint(out, report.Skills(st, all))
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Bool("skills", false, "Also list practiced skills")
	statsCmd.Flags().Bool("all", false, "List every skill, practiced or not")
}
