package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tutorkit/tutorkit/internal/store"
)

var initCmd = &cobra.Command{
	Use:   "init <course.json>",
	Short: "Import a course definition file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cf, err := store.LoadCourseFile(args[0])
		if err != nil {
			return err
		}
		g, err := cf.Graph()
		if err != nil {
			return err
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.ImportCourse(cmd.Context(), cf); err != nil {
			return err
		}
		fmt.Printf("Imported course %q: %d units, %d concepts\n", cf.ID, len(cf.Units), g.Len())
		for _, w := range g.Warnings() {
			fmt.Println("warning:", w)
		}
		return nil
	},
}
