package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/learnly/learnly-go/enums"
	"github.com/learnly/learnly-go/models"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Generate, take and review quizzes",
}

var (
	quizCourseID     int64
	quizTopic        string
	quizDifficulty   string
	quizNumQuestions int
	quizMaterialIDs  []int64
	quizAutoCreate   bool
)

var quizGenerateCmd = &cobra.Command{
	Use:     "generate",
	Short:   "Draft quiz questions from course materials",
	PreRunE: requireRole(enums.RoleTeacher),
	RunE: func(cmd *cobra.Command, _ []string) error {
		draft, err := client.Quiz.Generate(cmd.Context(), models.GenerateQuizRequest{
			CourseID:     quizCourseID,
			Topic:        quizTopic,
			Difficulty:   quizDifficulty,
			NumQuestions: quizNumQuestions,
			MaterialIDs:  quizMaterialIDs,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Drafted %q with %d questions:\n", draft.Title, len(draft.Questions))
		for i, q := range draft.Questions {
			fmt.Printf("%2d. [%s, %dpt] %s\n", i+1, q.Difficulty, q.Points, q.QuestionText)
		}

		if !quizAutoCreate {
			fmt.Println("\nRe-run with --create to publish this draft.")
			return nil
		}

		quiz, err := client.Quiz.Create(cmd.Context(), *draft)
		if err != nil {
			return err
		}
		fmt.Printf("Published quiz #%d %s\n", quiz.ID, quiz.Title)
		return nil
	},
}

var quizListCmd = &cobra.Command{
	Use:     "list <course-id>",
	Short:   "List quizzes of a course",
	Args:    cobra.ExactArgs(1),
	PreRunE: requireRole(),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		quizzes, err := client.Quiz.ByCourse(cmd.Context(), id)
		if err != nil {
			return err
		}
		for _, q := range quizzes {
			fmt.Printf("#%d %s (%s, %d questions)\n", q.ID, q.Title, q.Difficulty, len(q.Questions))
		}
		return nil
	},
}

var quizTakeCmd = &cobra.Command{
	Use:     "take <quiz-id>",
	Short:   "Take a quiz interactively",
	Args:    cobra.ExactArgs(1),
	PreRunE: requireRole(enums.RoleStudent),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		quiz, err := client.Quiz.Get(cmd.Context(), id)
		if err != nil {
			return err
		}
		if len(quiz.Questions) == 0 {
			return fmt.Errorf("quiz #%d has no questions", id)
		}

		fmt.Printf("%s (%s)\n\n", quiz.Title, quiz.Difficulty)

		answers := make([]models.QuizAnswer, 0, len(quiz.Questions))
		for i, q := range quiz.Questions {
			fmt.Printf("%d/%d %s\n", i+1, len(quiz.Questions), q.QuestionText)
			for j, opt := range q.Options {
				fmt.Printf("   %c) %s\n", 'a'+j, opt)
			}

			answer, err := readLine("Answer: ")
			if err != nil {
				return err
			}
			// A single letter picks the matching option for MCQs.
			if len(answer) == 1 && len(q.Options) > 0 {
				if idx := int(strings.ToLower(answer)[0] - 'a'); idx >= 0 && idx < len(q.Options) {
					answer = q.Options[idx]
				}
			}
			answers = append(answers, models.QuizAnswer{QuestionID: q.ID, StudentAnswer: answer})
		}

		attempt, err := client.Quiz.SubmitAttempt(cmd.Context(), models.QuizAttemptCreate{
			QuizID:  id,
			Answers: answers,
		})
		if err != nil {
			return err
		}

		fmt.Printf("\nScore: %.1f/%.1f (%.0f%%)\n", attempt.Score, attempt.MaxScore, attempt.Percentage)
		return nil
	},
}

var quizAttemptsCmd = &cobra.Command{
	Use:     "attempts",
	Short:   "Show your past quiz attempts",
	PreRunE: requireRole(enums.RoleStudent),
	RunE: func(cmd *cobra.Command, _ []string) error {
		attempts, err := client.Quiz.MyAttempts(cmd.Context())
		if err != nil {
			return err
		}
		printAttempts(attempts)
		return nil
	},
}

var quizStudentAttemptsCmd = &cobra.Command{
	Use:     "student-attempts <student-id>",
	Short:   "Show a student's quiz attempts",
	Args:    cobra.ExactArgs(1),
	PreRunE: requireRole(enums.RoleAdmin, enums.RoleTeacher),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		attempts, err := client.Quiz.StudentAttempts(cmd.Context(), id)
		if err != nil {
			return err
		}
		printAttempts(attempts)
		return nil
	},
}

func printAttempts(attempts []models.QuizAttempt) {
	for _, a := range attempts {
		line := fmt.Sprintf("attempt #%d quiz #%d %.1f/%.1f (%.0f%%)", a.ID, a.QuizID, a.Score, a.MaxScore, a.Percentage)
		if a.CompletedAt != nil {
			line += " completed " + a.CompletedAt.Local().Format("2006-01-02 15:04")
		}
		fmt.Println(line)
	}
}

func init() {
	quizGenerateCmd.Flags().Int64Var(&quizCourseID, "course", 0, "course id")
	quizGenerateCmd.Flags().StringVar(&quizTopic, "topic", "", "narrow generation to a topic")
	quizGenerateCmd.Flags().StringVar(&quizDifficulty, "difficulty", enums.QuizDifficultyMedium, "easy, medium or hard")
	quizGenerateCmd.Flags().IntVar(&quizNumQuestions, "questions", 5, "number of questions to draft")
	quizGenerateCmd.Flags().Int64SliceVar(&quizMaterialIDs, "materials", nil, "restrict to specific material ids")
	quizGenerateCmd.Flags().BoolVar(&quizAutoCreate, "create", false, "publish the draft immediately")
	_ = quizGenerateCmd.MarkFlagRequired("course")

	quizCmd.AddCommand(quizGenerateCmd)
	quizCmd.AddCommand(quizListCmd)
	quizCmd.AddCommand(quizTakeCmd)
	quizCmd.AddCommand(quizAttemptsCmd)
	quizCmd.AddCommand(quizStudentAttemptsCmd)
	rootCmd.AddCommand(quizCmd)
}
