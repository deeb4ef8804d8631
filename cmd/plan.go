package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tutorkit/tutorkit/internal/session"
)

var planCmd = &cobra.Command{
	Use:   "plan <course>",
	Short: "Plan the next study session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slots, _ := cmd.Flags().GetInt("slots")

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

		plan, err := session.PlanSession(concepts, records, time.Now(), slots)
		if err != nil {
			return err
		}
		if len(plan.Slots) == 0 {
			fmt.Println("Nothing to study: no frontier concepts and no due reviews.")
			return nil
		}
		for i, slot := range plan.Slots {
			fmt.Printf("%2d. %-24s  %s\n", i+1, slot.ConceptID, slot.Category)
		}
		return nil
	},
}

func init() {
	planCmd.Flags().Int("slots", session.DefaultTotalSlots, "Number of concept slots in the session")
}
