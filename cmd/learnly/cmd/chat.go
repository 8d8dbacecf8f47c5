package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/learnly/learnly-go/enums"
	"github.com/learnly/learnly-go/models"
)

var (
	chatCourseID    int64
	chatMaterialIDs []int64
	chatShowSources bool
)

var chatCmd = &cobra.Command{
	Use:     "chat [question]",
	Short:   "Ask the AI assistant about a course",
	Args:    cobra.MaximumNArgs(1),
	PreRunE: requireRole(enums.RoleTeacher, enums.RoleStudent),
	RunE: func(cmd *cobra.Command, args []string) error {
		// One-shot mode when the question is given on the command line,
		// otherwise an interactive loop that keeps the conversation history.
		if len(args) > 0 {
			_, err := askOnce(cmd, args[0], nil)
			return err
		}

		fmt.Println("Chatting about course", chatCourseID, "(empty line to quit)")
		var history []models.ChatTurn
		for {
			question, err := readLine("> ")
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return err
			}
			if question == "" {
				return nil
			}

			answer, err := askOnce(cmd, question, history)
			if err != nil {
				return err
			}
			history = append(history,
				models.ChatTurn{Role: "user", Content: question},
				models.ChatTurn{Role: "assistant", Content: answer},
			)
		}
	},
}

func askOnce(cmd *cobra.Command, question string, history []models.ChatTurn) (string, error) {
	resp, err := client.Rag.Query(cmd.Context(), models.RagQueryRequest{
		Query:               question,
		CourseID:            chatCourseID,
		ConversationHistory: history,
		MaterialIDs:         chatMaterialIDs,
	})
	if err != nil {
		return "", err
	}

	fmt.Println(resp.Answer)
	for _, w := range resp.ModerationWarnings {
		fmt.Println("warning:", w)
	}
	if chatShowSources {
		for _, src := range resp.Sources {
			loc := ""
			if src.Page != nil {
				loc = fmt.Sprintf(" p.%d", *src.Page)
			}
			fmt.Printf("  source (%.2f)%s: %.80s\n", src.Score, loc, src.Content)
		}
	}
	return resp.Answer, nil
}

var chatHealthCmd = &cobra.Command{
	Use:     "health",
	Short:   "Check the AI assistant backend",
	PreRunE: requireRole(),
	RunE: func(cmd *cobra.Command, _ []string) error {
		health, err := client.Rag.Health(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("Status: %s\n", health.Status)
		if health.Ollama != "" {
			fmt.Printf("Ollama: %s\n", health.Ollama)
		}
		if health.VectorStore != "" {
			fmt.Printf("Vector store: %s\n", health.VectorStore)
		}
		return nil
	},
}

func init() {
	chatCmd.Flags().Int64Var(&chatCourseID, "course", 0, "course id to chat about")
	chatCmd.Flags().Int64SliceVar(&chatMaterialIDs, "materials", nil, "restrict answers to specific material ids")
	chatCmd.Flags().BoolVar(&chatShowSources, "sources", false, "show the retrieved source passages")
	_ = chatCmd.MarkFlagRequired("course")

	chatCmd.AddCommand(chatHealthCmd)
	rootCmd.AddCommand(chatCmd)
}
