package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/satlearn/internal/content"
	"github.com/abhisek/satlearn/internal/learning"
	"github.com/abhisek/satlearn/internal/scoring"
	"github.com/abhisek/satlearn/internal/skillmap"
	"github.com/abhisek/satlearn/internal/store"
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record an answered question",
	Long: `Record an answered question and update the learner's competency.

The question's skill and difficulty come from the pool when --pool (or
pool_path) is available; otherwise pass --skill and --difficulty.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		qid, _ := cmd.Flags().GetString("question")
		correct, _ := cmd.Flags().GetBool("correct")
		secs, _ := cmd.Flags().GetFloat64("time")
		sessionID, _ := cmd.Flags().GetString("session")
		if qid == "" {
			return fmt.Errorf("--question is required")
		}

		answer, err := buildAnswer(cmd, qid, correct, secs)
		if err != nil {
			return err
		}
		answer.SessionID = sessionID

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		id := learnerID(cmd)
		if err := a.svc.RecordAnswer(cmd.Context(), id, answer); err != nil {
			if errors.Is(err, store.ErrRevisionConflict) {
				return fmt.Errorf("learner %s was updated concurrently, record the answer again: %w", id, err)
			}
			return err
		}

		st, err := a.svc.GetLearnerState(cmd.Context(), id)
		if err != nil {
			return err
		}
		s := st.Skills[answer.SkillID]
		fmt.Fprintf(cmd.OutOrStdout(), "%s: competency %.1f, confidence %.1f (%s)\n",
			skillmap.DisplayName(answer.SkillID), s.CompetencyScore, s.ConfidenceLevel, s.MasteryLevel)
		return nil
	},
}

// buildAnswer resolves the answered question's skill and difficulty from
// the pool or from explicit flags.
func buildAnswer(cmd *cobra.Command, qid string, correct bool, secs float64) (learning.Answer, error) {
	if cmd.Flags().Changed("skill") {
		skill, _ := cmd.Flags().GetInt("skill")
		diff, _ := cmd.Flags().GetInt("difficulty")
		return learning.Answer{
			QuestionID: qid,
			SkillID:    skillmap.SkillID(skill),
			Difficulty: scoring.Difficulty(diff),
			Correct:    correct,
			TimeSpent:  secs,
		}, nil
	}

	pool, err := loadPool(cmd)
	if err != nil {
		return learning.Answer{}, fmt.Errorf("%w (or pass --skill)", err)
	}
	q, ok := content.Find(pool, qid)
	if !ok {
		return learning.Answer{}, fmt.Errorf("question %q not found in pool", qid)
	}
	return learning.AnswerFor(q, correct, secs)
}

func init() {
	recordCmd.Flags().StringP("question", "q", "", "Question id")
	recordCmd.Flags().Bool("correct", false, "The answer was correct")
	recordCmd.Flags().Float64P("time", "t", 0, "Seconds spent on the question")
	recordCmd.Flags().String("pool", "", "Question pool file used to look up the question")
	recordCmd.Flags().Int("skill", 0, "Skill id (0-46) when no pool is used")
	recordCmd.Flags().Int("difficulty", int(scoring.Medium), "Difficulty 0=easy 1=medium 2=hard when no pool is used")
	recordCmd.Flags().String("session", "", "Session id printed by the session command")
}
