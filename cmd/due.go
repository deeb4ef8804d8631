package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tutorkit/tutorkit/internal/review"
)

var dueCmd = &cobra.Command{
	Use:   "due <course>",
	Short: "Show concepts due for review",
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
		due := review.DueConcepts(concepts, records, now)
		if len(due) == 0 {
			if next, ok := review.NextDue(concepts, records, now); ok {
				fmt.Printf("Nothing due. Next review %s.\n", next.Format("2006-01-02"))
			} else {
				fmt.Println("Nothing due and nothing scheduled.")
			}
			return nil
		}

		fmt.Printf("%-24s  %-10s  %-12s  %8s\n", "Concept", "Status", "Bloom", "Overdue")
		for _, item := range due {
			fmt.Printf("%-24s  %-10s  %-12s  %7.1fd\n",
				item.ConceptID, item.Status, item.Bloom, item.OverdueDays)
		}
		fmt.Printf("\n%d due\n", len(due))
		return nil
	},
}
