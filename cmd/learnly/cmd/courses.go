package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/learnly/learnly-go/enums"
	"github.com/learnly/learnly-go/models"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "Browse and manage courses",
}

var coursesListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List your courses",
	PreRunE: requireRole(),
	RunE: func(cmd *cobra.Command, _ []string) error {
		courses, err := client.Courses.List(cmd.Context())
		if err != nil {
			return err
		}
		printCourses(courses)
		return nil
	},
}

var coursesShowCmd = &cobra.Command{
	Use:     "show <course-id>",
	Short:   "Show a course and its materials",
	Args:    cobra.ExactArgs(1),
	PreRunE: requireRole(),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		course, err := client.Courses.Get(cmd.Context(), id)
		if err != nil {
			return err
		}

		fmt.Printf("#%d %s", course.ID, course.Title)
		if course.TeacherName != "" {
			fmt.Printf(" (taught by %s)", course.TeacherName)
		}
		fmt.Println()
		if course.Description != "" {
			fmt.Println(course.Description)
		}
		for _, m := range course.Materials {
			fmt.Printf("  material #%d %s [%s]\n", m.ID, m.Title, m.FileType)
		}
		return nil
	},
}

var (
	courseTitle       string
	courseDescription string
	courseSemester    int
	courseDegreeTypes string
)

var coursesCreateCmd = &cobra.Command{
	Use:     "create",
	Short:   "Create a course",
	PreRunE: requireRole(enums.RoleAdmin, enums.RoleTeacher),
	RunE: func(cmd *cobra.Command, _ []string) error {
		req := models.CourseCreate{
			Title:       courseTitle,
			Description: courseDescription,
			DegreeTypes: courseDegreeTypes,
		}
		if cmd.Flags().Changed("semester") {
			req.Semester = &courseSemester
		}

		course, err := client.Courses.Create(cmd.Context(), req)
		if err != nil {
			return err
		}
		fmt.Printf("Created course #%d %s\n", course.ID, course.Title)
		return nil
	},
}

var coursesDeleteCmd = &cobra.Command{
	Use:     "delete <course-id>",
	Short:   "Delete a course",
	Args:    cobra.ExactArgs(1),
	PreRunE: requireRole(enums.RoleAdmin, enums.RoleTeacher),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := client.Courses.Delete(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("Deleted course #%d\n", id)
		return nil
	},
}

var materialTitle string

var coursesUploadCmd = &cobra.Command{
	Use:     "upload <course-id> <file>",
	Short:   "Upload a course material",
	Args:    cobra.ExactArgs(2),
	PreRunE: requireRole(enums.RoleAdmin, enums.RoleTeacher),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		content, err := os.ReadFile(args[1])
		if err != nil {
			return err
		}

		title := materialTitle
		if title == "" {
			title = filepath.Base(args[1])
		}

		material, err := client.Courses.UploadMaterial(cmd.Context(), id, title, filepath.Base(args[1]), content)
		if err != nil {
			return err
		}
		fmt.Printf("Uploaded material #%d %s\n", material.ID, material.Title)
		return nil
	},
}

var coursesStudentsCmd = &cobra.Command{
	Use:     "students <course-id>",
	Short:   "List students enrolled in a course",
	Args:    cobra.ExactArgs(1),
	PreRunE: requireRole(enums.RoleAdmin, enums.RoleTeacher),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		students, err := client.Courses.Students(cmd.Context(), id)
		if err != nil {
			return err
		}
		for _, s := range students {
			fmt.Printf("#%d %s <%s> progress %d%%\n", s.StudentID, s.FullName, s.Email, s.Progress)
		}
		return nil
	},
}

var enrollStudentID int64

var coursesEnrollCmd = &cobra.Command{
	Use:     "enroll <course-id>",
	Short:   "Enroll a student into a course",
	Args:    cobra.ExactArgs(1),
	PreRunE: requireRole(enums.RoleAdmin),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		enrollment, err := client.Courses.Enroll(cmd.Context(), models.EnrollmentCreate{
			StudentID: enrollStudentID,
			CourseID:  id,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Enrolled student #%d into course #%d\n", enrollment.StudentID, enrollment.CourseID)
		return nil
	},
}

var coursesAvailableCmd = &cobra.Command{
	Use:     "available",
	Short:   "List courses open for enrollment",
	PreRunE: requireRole(enums.RoleAdmin, enums.RoleStudent),
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Students see what matches their semester and degree, admins see
		// everything they can enroll students into.
		var courses []models.Course
		var err error
		if store.Session().User.Role == enums.RoleAdmin {
			courses, err = client.Courses.AvailableForEnrollment(cmd.Context())
		} else {
			courses, err = client.Courses.AvailableForStudent(cmd.Context())
		}
		if err != nil {
			return err
		}
		printCourses(courses)
		return nil
	},
}

var (
	updateTitle       string
	updateDescription string
	updateSemester    int
	updateDegreeTypes string
	updateActive      bool
)

var coursesUpdateCmd = &cobra.Command{
	Use:     "update <course-id>",
	Short:   "Update a course",
	Args:    cobra.ExactArgs(1),
	PreRunE: requireRole(enums.RoleAdmin, enums.RoleTeacher),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		var req models.CourseUpdate
		if cmd.Flags().Changed("title") {
			req.Title = &updateTitle
		}
		if cmd.Flags().Changed("description") {
			req.Description = &updateDescription
		}
		if cmd.Flags().Changed("semester") {
			req.Semester = &updateSemester
		}
		if cmd.Flags().Changed("degrees") {
			req.DegreeTypes = &updateDegreeTypes
		}
		if cmd.Flags().Changed("active") {
			req.IsActive = &updateActive
		}

		course, err := client.Courses.Update(cmd.Context(), id, req)
		if err != nil {
			return err
		}
		fmt.Printf("Updated course #%d %s\n", course.ID, course.Title)
		return nil
	},
}

func printCourses(courses []models.Course) {
	for _, c := range courses {
		line := fmt.Sprintf("#%d %s", c.ID, c.Title)
		if c.TeacherName != "" {
			line += " - " + c.TeacherName
		}
		if !c.IsActive {
			line += " (inactive)"
		}
		fmt.Println(line)
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func init() {
	coursesCreateCmd.Flags().StringVar(&courseTitle, "title", "", "course title")
	coursesCreateCmd.Flags().StringVar(&courseDescription, "description", "", "course description")
	coursesCreateCmd.Flags().IntVar(&courseSemester, "semester", 0, "target semester (1-8)")
	coursesCreateCmd.Flags().StringVar(&courseDegreeTypes, "degrees", "", "comma-separated degree types")
	_ = coursesCreateCmd.MarkFlagRequired("title")

	coursesUploadCmd.Flags().StringVar(&materialTitle, "title", "", "material title (defaults to file name)")

	coursesUpdateCmd.Flags().StringVar(&updateTitle, "title", "", "new title")
	coursesUpdateCmd.Flags().StringVar(&updateDescription, "description", "", "new description")
	coursesUpdateCmd.Flags().IntVar(&updateSemester, "semester", 0, "new target semester")
	coursesUpdateCmd.Flags().StringVar(&updateDegreeTypes, "degrees", "", "new degree types")
	coursesUpdateCmd.Flags().BoolVar(&updateActive, "active", true, "activate or deactivate the course")

	coursesEnrollCmd.Flags().Int64Var(&enrollStudentID, "student", 0, "student id to enroll")
	_ = coursesEnrollCmd.MarkFlagRequired("student")

	coursesCmd.AddCommand(coursesListCmd)
	coursesCmd.AddCommand(coursesShowCmd)
	coursesCmd.AddCommand(coursesCreateCmd)
	coursesCmd.AddCommand(coursesUpdateCmd)
	coursesCmd.AddCommand(coursesDeleteCmd)
	coursesCmd.AddCommand(coursesUploadCmd)
	coursesCmd.AddCommand(coursesStudentsCmd)
	coursesCmd.AddCommand(coursesEnrollCmd)
	coursesCmd.AddCommand(coursesAvailableCmd)
	rootCmd.AddCommand(coursesCmd)
}
