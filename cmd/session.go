package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/satlearn/internal/report"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Plan the next practice session",
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("length")
		asJSON, _ := cmd.Flags().GetBool("json")

		pool, err := loadPool(cmd)
		if err != nil {
			return err
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		n = cfg.Session.ClampSessionLength(n)
		qs := a.svc.SelectSessionQuestions(cmd.Context(), learnerID(cmd), n, pool)
		sessionID := uuid.NewString()

		out := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{
				"session_id": sessionID,
				"questions":  qs,
			})
		}
		fmt.Fprint(out, report.Session(sessionID, qs))
		return nil
	},
}

func init() {
	sessionCmd.Flags().IntP("length", "n", 0, "Number of questions (defaults to session.length)")
	sessionCmd.Flags().String("pool", "", "Question pool file (JSON)")
	sessionCmd.Flags().Bool("json", false, "Print the session as JSON")
}
