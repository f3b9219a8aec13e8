package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/noah-isme/lesson-scheduler/internal/models"
)

type report struct {
	Utilization       []models.ClassroomUtilization `json:"utilization"`
	PopularCourseType *models.CourseTypePopularity  `json:"popular_course_type"`
}

func newReportCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Show classroom utilization and the most popular course type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			utilization, _, err := s.app.Analytics.UtilizationReport(ctx)
			if err != nil {
				return err
			}
			popular, _, err := s.app.Analytics.MostPopularCourseType(ctx)
			if err != nil {
				return err
			}
			out := report{Utilization: utilization, PopularCourseType: popular}
			return s.render(cmd.OutOrStdout(), out, func(w io.Writer) {
				printSection(w, "Classroom utilization")
				rows := make([][]string, 0, len(utilization))
				for _, u := range utilization {
					rows = append(rows, []string{
						u.ClassroomNumber,
						fmt.Sprintf("%d/%d", u.Lessons, u.WeeklyCapacity),
						strconv.FormatFloat(u.Percentage, 'f', 1, 64) + "%",
					})
				}
				printTable(w, []string{"ROOM", "LESSONS", "UTILIZATION"}, rows)
				fmt.Fprintln(w)

				printSection(w, "Course types")
				if popular.Type == nil {
					printLabelValue(w, "Most popular", "none")
					return
				}
				printLabelValue(w, "Most popular", string(*popular.Type))
				for _, t := range models.CourseTypes {
					printLabelValue(w, string(t), strconv.Itoa(popular.Counts[t]))
				}
			})
		},
	}
}

func newAvailableCommand(s *session) *cobra.Command {
	var day, slot string
	cmd := &cobra.Command{
		Use:   "available",
		Short: "List classrooms free at a day and time slot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, _, err := s.app.Analytics.AvailableClassrooms(cmd.Context(), day, slot)
			if err != nil {
				return err
			}
			return s.render(cmd.OutOrStdout(), result, func(w io.Writer) {
				printSection(w, fmt.Sprintf("Free on %s %s", result.DayOfWeek, result.TimeSlot))
				if len(result.Classrooms) == 0 {
					printWarning(w, "no classroom is free")
					return
				}
				fmt.Fprintf(w, "  %s\n", strings.Join(result.Classrooms, ", "))
			})
		},
	}
	cmd.Flags().StringVar(&day, "day", "", "Day of week")
	cmd.Flags().StringVar(&slot, "slot", "", "Time slot")
	_ = cmd.MarkFlagRequired("day")
	_ = cmd.MarkFlagRequired("slot")
	return cmd
}

func newProfessorCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "professor <id>",
		Short: "Show the weekly lessons of a professor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid professor id %q", args[0])
			}
			professor, err := s.app.Professors.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			lessons, _, err := s.app.Analytics.ProfessorSchedule(cmd.Context(), id)
			if err != nil {
				return err
			}
			return s.render(cmd.OutOrStdout(), lessons, func(w io.Writer) {
				printSection(w, fmt.Sprintf("%s (%s)", professor.Name, professor.Department))
				rows := make([][]string, 0, len(lessons))
				for _, l := range lessons {
					rows = append(rows, []string{l.DayOfWeek, l.TimeSlot, l.ClassroomNumber, strconv.Itoa(l.CourseID)})
				}
				printTable(w, []string{"DAY", "TIME", "ROOM", "COURSE"}, rows)
			})
		},
	}
}
