package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/learnly/learnly-go/enums"
	"github.com/learnly/learnly-go/models"
)

var (
	signupEmail      string
	signupFullName   string
	signupRole       string
	signupSemester   int
	signupDegreeType string
)

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a LEARNLY account",
	RunE: func(cmd *cobra.Command, _ []string) error {
		password, err := readPassword("Password: ")
		if err != nil {
			return err
		}
		confirm, err := readPassword("Confirm password: ")
		if err != nil {
			return err
		}
		if password != confirm {
			// Caught inline, never sent to the network.
			return fmt.Errorf("passwords do not match")
		}

		req := models.SignupRequest{
			Email:      signupEmail,
			Password:   password,
			FullName:   signupFullName,
			Role:       enums.Role(signupRole),
			DegreeType: signupDegreeType,
		}
		if cmd.Flags().Changed("semester") {
			req.Semester = &signupSemester
		}

		tr, err := client.Auth.Signup(cmd.Context(), req)
		if err != nil {
			return err
		}

		fmt.Printf("Welcome to LEARNLY, %s! You are signed in as a %s.\n", tr.User.FullName, tr.User.Role)
		return nil
	},
}

func init() {
	signupCmd.Flags().StringVar(&signupEmail, "email", "", "account email")
	signupCmd.Flags().StringVar(&signupFullName, "name", "", "full name")
	signupCmd.Flags().StringVar(&signupRole, "role", string(enums.RoleStudent), "account role: admin, teacher or student")
	signupCmd.Flags().IntVar(&signupSemester, "semester", 0, "current semester, students only (1-8)")
	signupCmd.Flags().StringVar(&signupDegreeType, "degree", "", "degree type, students only")
	_ = signupCmd.MarkFlagRequired("email")
	_ = signupCmd.MarkFlagRequired("name")
	rootCmd.AddCommand(signupCmd)
}
