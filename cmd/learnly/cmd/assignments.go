package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/learnly/learnly-go/enums"
	"github.com/learnly/learnly-go/models"
	"github.com/learnly/learnly-go/utils"
)

var assignmentsCmd = &cobra.Command{
	Use:     "assignments",
	Aliases: []string{"assignment"},
	Short:   "Create, submit and grade assignments",
}

var (
	assignmentCourseID  int64
	assignmentTitle     string
	assignmentDesc      string
	assignmentType      string
	assignmentMaxScore  float64
	assignmentDue       string
	assignmentAllowLate bool
)

var assignmentsCreateCmd = &cobra.Command{
	Use:     "create",
	Short:   "Create an assignment",
	PreRunE: requireRole(enums.RoleTeacher),
	RunE: func(cmd *cobra.Command, _ []string) error {
		req := models.AssignmentCreate{
			CourseID:            assignmentCourseID,
			Title:               assignmentTitle,
			Description:         assignmentDesc,
			AssignmentType:      assignmentType,
			MaxScore:            assignmentMaxScore,
			AllowLateSubmission: assignmentAllowLate,
		}
		if assignmentDue != "" {
			due, err := time.ParseInLocation("2006-01-02 15:04", assignmentDue, time.Local)
			if err != nil {
				return fmt.Errorf("invalid due date %q, want YYYY-MM-DD HH:MM", assignmentDue)
			}
			req.DueDate = &due
		}

		assignment, err := client.Assignments.Create(cmd.Context(), req)
		if err != nil {
			return err
		}
		fmt.Printf("Created assignment #%d %s\n", assignment.ID, assignment.Title)
		return nil
	},
}

var assignmentsListCmd = &cobra.Command{
	Use:     "list <course-id>",
	Short:   "List assignments of a course",
	Args:    cobra.ExactArgs(1),
	PreRunE: requireRole(),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		assignments, err := client.Assignments.ByCourse(cmd.Context(), id)
		if err != nil {
			return err
		}
		for _, a := range assignments {
			fmt.Printf("#%d %s [%s] max %.0f, due %s, %d submissions\n",
				a.ID, a.Title, a.AssignmentType, a.MaxScore, utils.FormatDeadline(a.DueDate), a.SubmissionCount)
		}
		return nil
	},
}

var assignmentsAttachCmd = &cobra.Command{
	Use:     "attach <assignment-id> <file>",
	Short:   "Attach a reference file to an assignment",
	Args:    cobra.ExactArgs(2),
	PreRunE: requireRole(enums.RoleTeacher),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		content, err := os.ReadFile(args[1])
		if err != nil {
			return err
		}

		if err := client.Assignments.UploadAttachment(cmd.Context(), id, filepath.Base(args[1]), content); err != nil {
			return err
		}
		fmt.Printf("Attached %s to assignment #%d\n", filepath.Base(args[1]), id)
		return nil
	},
}

var (
	submitText string
	submitFile string
)

var assignmentsSubmitCmd = &cobra.Command{
	Use:     "submit <assignment-id>",
	Short:   "Hand in your submission",
	Args:    cobra.ExactArgs(1),
	PreRunE: requireRole(enums.RoleStudent),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if submitText == "" && submitFile == "" {
			return fmt.Errorf("nothing to submit: pass --text, --file or both")
		}

		var filename string
		var content []byte
		if submitFile != "" {
			content, err = os.ReadFile(submitFile)
			if err != nil {
				return err
			}
			filename = filepath.Base(submitFile)
		}

		submission, err := client.Assignments.Submit(cmd.Context(), id, submitText, filename, content)
		if err != nil {
			return err
		}

		fmt.Printf("Submitted (#%d)", submission.ID)
		if submission.IsLate {
			fmt.Print(" - marked late")
		}
		fmt.Println()
		return nil
	},
}

var assignmentsSubmissionsCmd = &cobra.Command{
	Use:     "submissions <assignment-id>",
	Short:   "List submissions for an assignment",
	Args:    cobra.ExactArgs(1),
	PreRunE: requireRole(enums.RoleTeacher),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		submissions, err := client.Assignments.Submissions(cmd.Context(), id)
		if err != nil {
			return err
		}
		printSubmissions(submissions)
		return nil
	},
}

var (
	gradeScore    float64
	gradeFeedback string
)

var assignmentsGradeCmd = &cobra.Command{
	Use:     "grade <submission-id>",
	Short:   "Grade a submission",
	Args:    cobra.ExactArgs(1),
	PreRunE: requireRole(enums.RoleTeacher),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		grade := models.SubmissionGrade{Feedback: gradeFeedback}
		if cmd.Flags().Changed("score") {
			grade.Score = &gradeScore
		}

		submission, err := client.Assignments.Grade(cmd.Context(), id, grade)
		if err != nil {
			return err
		}
		if submission.Score != nil {
			fmt.Printf("Graded submission #%d: %.1f\n", submission.ID, *submission.Score)
		} else {
			fmt.Printf("Updated feedback on submission #%d\n", submission.ID)
		}
		return nil
	},
}

var assignmentsMineCmd = &cobra.Command{
	Use:     "mine",
	Short:   "Show your submissions",
	PreRunE: requireRole(enums.RoleStudent),
	RunE: func(cmd *cobra.Command, _ []string) error {
		submissions, err := client.Assignments.MySubmissions(cmd.Context())
		if err != nil {
			return err
		}
		printSubmissions(submissions)
		return nil
	},
}

func printSubmissions(submissions []models.Submission) {
	for _, s := range submissions {
		line := fmt.Sprintf("#%d assignment #%d", s.ID, s.AssignmentID)
		if s.StudentName != "" {
			line += " by " + s.StudentName
		}
		if s.Score != nil {
			line += fmt.Sprintf(" score %.1f", *s.Score)
		} else {
			line += " ungraded"
		}
		if s.IsLate {
			line += " (late)"
		}
		fmt.Println(line)
	}
}

func init() {
	assignmentsCreateCmd.Flags().Int64Var(&assignmentCourseID, "course", 0, "course id")
	assignmentsCreateCmd.Flags().StringVar(&assignmentTitle, "title", "", "assignment title")
	assignmentsCreateCmd.Flags().StringVar(&assignmentDesc, "description", "", "assignment description")
	assignmentsCreateCmd.Flags().StringVar(&assignmentType, "type", enums.AssignmentTypeAssignment, "assignment, project or lab")
	assignmentsCreateCmd.Flags().Float64Var(&assignmentMaxScore, "max-score", 100, "maximum score")
	assignmentsCreateCmd.Flags().StringVar(&assignmentDue, "due", "", "due date, YYYY-MM-DD HH:MM local time")
	assignmentsCreateCmd.Flags().BoolVar(&assignmentAllowLate, "allow-late", false, "accept late submissions")
	_ = assignmentsCreateCmd.MarkFlagRequired("course")
	_ = assignmentsCreateCmd.MarkFlagRequired("title")

	assignmentsSubmitCmd.Flags().StringVar(&submitText, "text", "", "submission text")
	assignmentsSubmitCmd.Flags().StringVar(&submitFile, "file", "", "submission file")

	assignmentsGradeCmd.Flags().Float64Var(&gradeScore, "score", 0, "score to assign")
	assignmentsGradeCmd.Flags().StringVar(&gradeFeedback, "feedback", "", "feedback text")

	assignmentsCmd.AddCommand(assignmentsCreateCmd)
	assignmentsCmd.AddCommand(assignmentsListCmd)
	assignmentsCmd.AddCommand(assignmentsAttachCmd)
	assignmentsCmd.AddCommand(assignmentsSubmitCmd)
	assignmentsCmd.AddCommand(assignmentsSubmissionsCmd)
	assignmentsCmd.AddCommand(assignmentsGradeCmd)
	assignmentsCmd.AddCommand(assignmentsMineCmd)
	rootCmd.AddCommand(assignmentsCmd)
}
