package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/learnly/learnly-go/api"
	"github.com/learnly/learnly-go/enums"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage platform users (admin)",
}

var (
	usersSkip  int
	usersLimit int
	usersRole  string
)

var usersListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List users",
	PreRunE: requireRole(enums.RoleAdmin),
	RunE: func(cmd *cobra.Command, _ []string) error {
		users, err := client.Users.List(cmd.Context(), api.ListUsersParams{
			Skip:  usersSkip,
			Limit: usersLimit,
			Role:  enums.Role(usersRole),
		})
		if err != nil {
			return err
		}

		for _, u := range users {
			status := "active"
			if !u.IsActive {
				status = "inactive"
			}
			fmt.Printf("#%d %s <%s> %s [%s]\n", u.ID, u.FullName, u.Email, u.Role, status)
		}
		return nil
	},
}

var usersShowCmd = &cobra.Command{
	Use:     "show <user-id>",
	Short:   "Show a user",
	Args:    cobra.ExactArgs(1),
	PreRunE: requireRole(enums.RoleAdmin),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		u, err := client.Users.Get(cmd.Context(), id)
		if err != nil {
			return err
		}

		fmt.Printf("%s <%s>\n", u.FullName, u.Email)
		fmt.Printf("Role: %s\n", u.Role)
		fmt.Printf("Active: %t  Verified: %t\n", u.IsActive, u.IsVerified)
		if u.Semester != nil {
			fmt.Printf("Semester: %d\n", *u.Semester)
		}
		if u.DegreeType != "" {
			fmt.Printf("Degree: %s\n", u.DegreeType)
		}
		return nil
	},
}

var usersActivateCmd = &cobra.Command{
	Use:     "activate <user-id>",
	Short:   "Reactivate a user account",
	Args:    cobra.ExactArgs(1),
	PreRunE: requireRole(enums.RoleAdmin),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := client.Users.Activate(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("User #%d activated\n", id)
		return nil
	},
}

var usersDeactivateCmd = &cobra.Command{
	Use:     "deactivate <user-id>",
	Short:   "Deactivate a user account",
	Args:    cobra.ExactArgs(1),
	PreRunE: requireRole(enums.RoleAdmin),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := client.Users.Deactivate(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("User #%d deactivated\n", id)
		return nil
	},
}

var usersDeleteCmd = &cobra.Command{
	Use:     "delete <user-id>",
	Short:   "Delete a user account",
	Args:    cobra.ExactArgs(1),
	PreRunE: requireRole(enums.RoleAdmin),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		confirm, err := readLine(fmt.Sprintf("Delete user #%d? This cannot be undone [y/N]: ", id))
		if err != nil {
			return err
		}
		if confirm != "y" && confirm != "Y" {
			fmt.Println("Aborted.")
			return nil
		}

		if err := client.Users.Delete(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("User #%d deleted\n", id)
		return nil
	},
}

var usersStatsCmd = &cobra.Command{
	Use:     "stats",
	Short:   "Show user counts by role",
	PreRunE: requireRole(enums.RoleAdmin),
	RunE: func(cmd *cobra.Command, _ []string) error {
		stats, err := client.Users.Stats(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Total:    %d\n", stats.TotalUsers)
		fmt.Printf("Admins:   %d\n", stats.Admins)
		fmt.Printf("Teachers: %d\n", stats.Teachers)
		fmt.Printf("Students: %d\n", stats.Students)
		fmt.Printf("Active:   %d\n", stats.ActiveUsers)
		return nil
	},
}

func init() {
	usersListCmd.Flags().IntVar(&usersSkip, "skip", 0, "offset into the result set")
	usersListCmd.Flags().IntVar(&usersLimit, "limit", 0, "maximum number of users to return")
	usersListCmd.Flags().StringVar(&usersRole, "role", "", "filter by role")

	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersShowCmd)
	usersCmd.AddCommand(usersActivateCmd)
	usersCmd.AddCommand(usersDeactivateCmd)
	usersCmd.AddCommand(usersDeleteCmd)
	usersCmd.AddCommand(usersStatsCmd)
	rootCmd.AddCommand(usersCmd)
}
