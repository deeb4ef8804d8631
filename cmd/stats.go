package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tutorkit/tutorkit/internal/fsrs"
	"github.com/tutorkit/tutorkit/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats <course>",
	Short: "Show per-concept progress for a course",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()
		ctx := cmd.Context()
		courseID := args[0]

		concepts, err := s.Courses().Concepts(ctx, courseID)
		if err != nil {
			return err
		}
		records, err := s.Progress().Load(ctx, courseID)
		if err != nil {
			return err
		}

		now := time.Now()
		fmt.Printf("%-24s  %-10s  %-12s  %5s  %9s  %6s  %6s  %6s\n",
			"Concept", "Status", "Bloom", "Score", "Practiced", "Lapses", "Recall", "Recent")
		fmt.Println(strings.Repeat("─", 94))
		for _, c := range concepts {
			rec, practiced := records[c.ID]
			if !practiced {
				fmt.Printf("%-24s  %-10s  %-12s  %5s  %9s  %6s  %6s  %6s\n",
					c.ID, c.Status, c.Bloom, "-", "-", "-", "-", "-")
				continue
			}
			lastReview := rec.FSRS.Due.AddDate(0, 0, -rec.FSRS.ScheduledDays)
			recall := fsrs.Retrievability(rec.FSRS.Stability, now.Sub(lastReview).Hours()/24)
			recent := "-"
			if acc, n, err := s.Events().RecentReviewAccuracy(ctx, courseID, c.ID, store.RecentResultsCap); err == nil && n > 0 {
				recent = fmt.Sprintf("%4.0f%%", 100*acc)
			}
			fmt.Printf("%-24s  %-10s  %-12s  %5.2f  %4d/%-4d  %6d  %5.0f%%  %6s\n",
				c.ID, c.Status, c.Bloom, rec.MasteryScore,
				rec.CorrectCount, rec.PracticeCount, rec.FSRS.Lapses, 100*recall, recent)
		}

		entries, err := s.Sessions().List(ctx, courseID)
		if err != nil {
			return err
		}
		fmt.Printf("\n%d sessions logged\n", len(entries))
		return nil
	},
}
