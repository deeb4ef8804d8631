package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tutorkit/tutorkit/internal/mastery"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List courses and their progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()
		ctx := cmd.Context()

		courses, err := s.Courses().List(ctx)
		if err != nil {
			return err
		}
		if len(courses) == 0 {
			fmt.Println("No courses. Import one with: tutorkit init <file.json>")
			return nil
		}

		fmt.Printf("%-20s  %-30s  %6s  %9s  %8s\n", "ID", "Name", "Units", "Concepts", "Mastered")
		fmt.Println(strings.Repeat("─", 82))
		for _, c := range courses {
			concepts, err := s.Courses().Concepts(ctx, c.ID)
			if err != nil {
				return err
			}
			mastered := 0
			for _, concept := range concepts {
				if concept.Status == mastery.StatusMastered {
					mastered++
				}
			}
			name := c.Name
			if len(name) > 30 {
				name = name[:27] + "..."
			}
			fmt.Printf("%-20s  %-30s  %6d  %9d  %8d\n",
				c.ID, name, len(c.Units), len(concepts), mastered)
		}
		return nil
	},
}
