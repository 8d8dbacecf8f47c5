package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/learnly/learnly-go/session"
)

var whoamiCmd = &cobra.Command{
	Use:     "whoami",
	Short:   "Show the signed-in account",
	PreRunE: requireRole(),
	RunE: func(_ *cobra.Command, _ []string) error {
		sess := store.Session()

		fmt.Printf("%s <%s>\n", sess.User.FullName, sess.User.Email)
		fmt.Printf("Role: %s\n", sess.User.Role)
		if sess.User.Semester != nil {
			fmt.Printf("Semester: %d\n", *sess.User.Semester)
		}
		if sess.User.CompetencyScore != nil {
			fmt.Printf("Competency score: %d\n", *sess.User.CompetencyScore)
		}

		if exp, err := session.TokenExpiry(sess.AccessToken); err == nil {
			if remaining := time.Until(exp); remaining > 0 {
				fmt.Printf("Session valid for %s\n", remaining.Round(time.Second))
			} else {
				fmt.Println("Session expired; it will refresh on the next request.")
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
