package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/noah-isme/lesson-scheduler/internal/models"
	"github.com/noah-isme/lesson-scheduler/internal/service"
)

func newLessonsCommand(s *session) *cobra.Command {
	var filter models.LessonFilter
	cmd := &cobra.Command{
		Use:   "lessons",
		Short: "List scheduled lessons in weekly order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows, err := s.app.Exports.Rows(cmd.Context(), filter)
			if err != nil {
				return err
			}
			return s.render(cmd.OutOrStdout(), rows, func(w io.Writer) {
				printSection(w, fmt.Sprintf("Lessons (%d)", len(rows)))
				table := make([][]string, 0, len(rows))
				for _, r := range rows {
					table = append(table, []string{
						strconv.Itoa(r.Position), r.DayOfWeek, r.TimeSlot, r.ClassroomNumber, r.CourseName, r.ProfessorName,
					})
				}
				printTable(w, []string{"#", "DAY", "TIME", "ROOM", "COURSE", "PROFESSOR"}, table)
			})
		},
	}
	cmd.Flags().IntVar(&filter.ProfessorID, "professor", 0, "Only lessons taught by this professor")
	cmd.Flags().StringVar(&filter.ClassroomNumber, "room", "", "Only lessons in this classroom")
	cmd.Flags().StringVar(&filter.DayOfWeek, "day", "", "Only lessons on this day")
	return cmd
}

func newCheckCommand(s *session) *cobra.Command {
	var req service.CreateLessonRequest
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Dry-run a lesson against the schedule",
		Long: `check reports whether a lesson could be added without a duplicate or a
professor or classroom double-booking. The schedule is not modified.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := s.app.Schedule.Check(cmd.Context(), req)
			if err != nil {
				return err
			}
			return s.render(cmd.OutOrStdout(), result, func(w io.Writer) {
				if result.Admissible {
					printSuccess(w, fmt.Sprintf("%s %s in %s is free", result.Lesson.DayOfWeek, result.Lesson.TimeSlot, result.Lesson.ClassroomNumber))
					return
				}
				printWarning(w, fmt.Sprintf("rejected: %s", result.Outcome))
				if result.Conflict != nil {
					printLabelValue(w, "Type", string(result.Conflict.Type))
					printLabelValue(w, "Conflicts with", result.Conflict.Lesson.ID)
					printLabelValue(w, "Position", strconv.Itoa(result.Conflict.Position))
				}
				if result.Duplicate != nil {
					printLabelValue(w, "Duplicate of", result.Duplicate.ID)
					printLabelValue(w, "Position", strconv.Itoa(result.Duplicate.Position))
				}
			})
		},
	}
	flags := cmd.Flags()
	flags.IntVar(&req.CourseID, "course", 0, "Course id")
	flags.IntVar(&req.ProfessorID, "professor", 0, "Professor id")
	flags.StringVar(&req.ClassroomNumber, "room", "", "Classroom number")
	flags.StringVar(&req.DayOfWeek, "day", "", "Day of week")
	flags.StringVar(&req.TimeSlot, "slot", "", "Time slot")
	return cmd
}

func newExportCommand(s *session) *cobra.Command {
	var format, out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the schedule as CSV or PDF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := s.app.Exports.Export(cmd.Context(), models.ExportFormat(format), models.LessonFilter{})
			if err != nil {
				return err
			}
			if out == "-" {
				_, err = cmd.OutOrStdout().Write(result.Data)
				return err
			}
			if out == "" {
				out = result.Filename
			}
			if err := os.WriteFile(out, result.Data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			printSuccess(cmd.OutOrStdout(), fmt.Sprintf("wrote %s (%d bytes)", out, len(result.Data)))
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "csv", "Export format: csv or pdf")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file, - for stdout (defaults to a timestamped name)")
	return cmd
}
