package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/learnly/learnly-go/enums"
)

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Learning and platform analytics",
}

var analyticsRefresh bool

var analyticsUserCmd = &cobra.Command{
	Use:     "user <user-id>",
	Short:   "Show a user's learning analytics",
	Args:    cobra.ExactArgs(1),
	PreRunE: requireRole(enums.RoleAdmin, enums.RoleTeacher),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		if analyticsRefresh {
			if err := client.Analytics.UpdateUser(cmd.Context(), id); err != nil {
				return err
			}
		}

		a, err := client.Analytics.User(cmd.Context(), id)
		if err != nil {
			return err
		}

		fmt.Printf("Quizzes taken:    %d\n", a.TotalQuizzesTaken)
		fmt.Printf("Average score:    %.1f\n", a.AverageScore)
		fmt.Printf("Time spent:       %d min\n", a.TotalTimeSpent)
		fmt.Printf("Courses enrolled: %d\n", a.CoursesEnrolled)
		fmt.Printf("Engagement:       %.2f\n", a.EngagementScore)
		printAnyMap("Skill mastery", a.SkillMastery)
		return nil
	},
}

var analyticsCourseCmd = &cobra.Command{
	Use:     "course <course-id>",
	Short:   "Show a course's analytics",
	Args:    cobra.ExactArgs(1),
	PreRunE: requireRole(enums.RoleAdmin, enums.RoleTeacher),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		if analyticsRefresh {
			if err := client.Analytics.UpdateCourse(cmd.Context(), id); err != nil {
				return err
			}
		}

		a, err := client.Analytics.Course(cmd.Context(), id)
		if err != nil {
			return err
		}

		fmt.Printf("Enrollments:     %d\n", a.TotalEnrollments)
		fmt.Printf("Avg progress:    %.1f%%\n", a.AverageProgress)
		fmt.Printf("Avg quiz score:  %.1f\n", a.AverageQuizScore)
		fmt.Printf("Completion rate: %.1f%%\n", a.CompletionRate)
		fmt.Printf("AI interactions: %d\n", a.AIInteractions)
		return nil
	},
}

var analyticsSystemCmd = &cobra.Command{
	Use:     "system",
	Short:   "Show platform-wide analytics",
	PreRunE: requireRole(enums.RoleAdmin),
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := client.Analytics.System(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Users:          %d\n", a.TotalUsers)
		fmt.Printf("Courses:        %d\n", a.TotalCourses)
		fmt.Printf("Quizzes:        %d\n", a.TotalQuizzes)
		fmt.Printf("Platform score: %.1f\n", a.AveragePlatformScore)
		printAnyMap("User growth", a.UserGrowth)
		printAnyMap("Course activity", a.CourseActivity)
		printAnyMap("Moderation", a.ModerationStats)
		return nil
	},
}

// printAnyMap renders the backend's loosely typed aggregates in a stable
// key order.
func printAnyMap(title string, m map[string]any) {
	if len(m) == 0 {
		return
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Println(title + ":")
	for _, k := range keys {
		fmt.Printf("  %s: %v\n", k, m[k])
	}
}

func init() {
	analyticsUserCmd.Flags().BoolVar(&analyticsRefresh, "refresh", false, "recompute before fetching")
	analyticsCourseCmd.Flags().BoolVar(&analyticsRefresh, "refresh", false, "recompute before fetching")

	analyticsCmd.AddCommand(analyticsUserCmd)
	analyticsCmd.AddCommand(analyticsCourseCmd)
	analyticsCmd.AddCommand(analyticsSystemCmd)
	rootCmd.AddCommand(analyticsCmd)
}
