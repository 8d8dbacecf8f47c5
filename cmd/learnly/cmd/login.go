package cmd

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/learnly/learnly-go/authflow"
	"github.com/learnly/learnly-go/models"
)

var (
	loginEmail  string
	loginGoogle bool
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in with email and password, or --google",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if loginGoogle {
			return googleLogin(cmd)
		}

		email := loginEmail
		if email == "" {
			var err error
			email, err = readLine("Email: ")
			if err != nil {
				return err
			}
		}

		password, err := readPassword("Password: ")
		if err != nil {
			return err
		}

		tr, err := client.Auth.Login(cmd.Context(), models.LoginRequest{
			Email:    email,
			Password: password,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Signed in as %s (%s)\n", tr.User.FullName, tr.User.Role)
		return nil
	},
}

func googleLogin(cmd *cobra.Command) error {
	flow := authflow.NewGoogleFlow(cfg.GoogleClientID)
	flow.Started = func(url string) {
		fmt.Println("Open this URL to sign in with Google:")
		fmt.Println("  " + url)
	}
	flow.OpenURL = openBrowser

	code, err := flow.Authorize(cmd.Context())
	if err != nil {
		return err
	}

	tr, err := client.Auth.GoogleAuth(cmd.Context(), code)
	if err != nil {
		return err
	}

	fmt.Printf("Signed in as %s (%s)\n", tr.User.FullName, tr.User.Role)
	return nil
}

func readLine(prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return string(raw), nil
}

func openBrowser(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email")
	loginCmd.Flags().BoolVar(&loginGoogle, "google", false, "sign in with Google")
	rootCmd.AddCommand(loginCmd)
}
