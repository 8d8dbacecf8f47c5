package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View and update your profile",
}

var profileShowCmd = &cobra.Command{
	Use:     "show",
	Short:   "Fetch the freshest profile from the backend",
	PreRunE: requireRole(),
	RunE: func(cmd *cobra.Command, _ []string) error {
		user, err := client.Auth.Me(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("%s <%s>\n", user.FullName, user.Email)
		fmt.Printf("Role: %s\n", user.Role)
		if user.Avatar != "" {
			fmt.Printf("Avatar: %s\n", user.Avatar)
		}
		if user.DegreeType != "" {
			fmt.Printf("Degree: %s\n", user.DegreeType)
		}
		return nil
	},
}

var profileAvatarCmd = &cobra.Command{
	Use:     "avatar <image-file>",
	Short:   "Upload a profile picture",
	Args:    cobra.ExactArgs(1),
	PreRunE: requireRole(),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		url, err := client.Users.UploadAvatar(cmd.Context(), filepath.Base(args[0]), content)
		if err != nil {
			return err
		}

		fmt.Printf("Avatar updated: %s\n", url)
		return nil
	},
}

var profileAvatarDeleteCmd = &cobra.Command{
	Use:     "avatar-delete",
	Short:   "Remove your profile picture",
	PreRunE: requireRole(),
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := client.Users.DeleteAvatar(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Avatar removed.")
		return nil
	},
}

func init() {
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileAvatarCmd)
	profileCmd.AddCommand(profileAvatarDeleteCmd)
	rootCmd.AddCommand(profileCmd)
}
