package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tutorkit/tutorkit/internal/fsrs"
	"github.com/tutorkit/tutorkit/internal/session"
	"github.com/tutorkit/tutorkit/internal/store"
)

var ratingNames = map[string]fsrs.Rating{
	"again": fsrs.Again,
	"hard":  fsrs.Hard,
	"good":  fsrs.Good,
	"easy":  fsrs.Easy,
}

var recordCmd = &cobra.Command{
	Use:   "record <course> <concept> <again|hard|good|easy>",
	Short: "Record one graded practice outcome",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		rating, ok := ratingNames[args[2]]
		if !ok {
			return fmt.Errorf("unknown rating %q (use again, hard, good, or easy)", args[2])
		}
		errClass, _ := cmd.Flags().GetString("error")
		correct := rating != fsrs.Again

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		svc := session.NewService(s)
		res, err := svc.RecordOutcome(cmd.Context(), args[0], args[1], session.Outcome{
			Rating:     rating,
			Correct:    correct,
			ErrorClass: store.ErrorClass(errClass),
		})
		if err != nil {
			return err
		}

		fmt.Printf("%s: score %.2f, %s/%s, next review %s (%dd)\n",
			args[1], res.Score, res.Status, res.Bloom,
			res.NextDue.Format("2006-01-02"), res.Record.FSRS.ScheduledDays)
		if res.Transition != nil {
			fmt.Printf("status: %s -> %s (%s)\n",
				res.Transition.From, res.Transition.To, res.Transition.Trigger)
		}
		if res.Adjustment != "" {
			fmt.Println("difficulty:", res.Adjustment)
		}
		return nil
	},
}

func init() {
	recordCmd.Flags().String("error", "", "Error class for incorrect answers (slip, misconception, gap)")
}
