package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/learnly/learnly-go/api"
	"github.com/learnly/learnly-go/enums"
	"github.com/learnly/learnly-go/models"
)

var moderationCmd = &cobra.Command{
	Use:   "moderation",
	Short: "AI content moderation settings and logs (admin)",
}

var moderationSettingsCmd = &cobra.Command{
	Use:     "settings",
	Short:   "List moderation categories",
	PreRunE: requireRole(enums.RoleAdmin),
	RunE: func(cmd *cobra.Command, _ []string) error {
		settings, err := client.Moderation.Settings(cmd.Context())
		if err != nil {
			return err
		}
		for _, s := range settings {
			state := "enabled"
			if !s.IsEnabled {
				state = "disabled"
			}
			fmt.Printf("%-20s threshold %.2f [%s]\n", s.Category, s.Threshold, state)
		}
		return nil
	},
}

var (
	moderationThreshold float64
	moderationEnabled   bool
)

var moderationAddCmd = &cobra.Command{
	Use:     "add <category>",
	Short:   "Add a moderation category",
	Args:    cobra.ExactArgs(1),
	PreRunE: requireRole(enums.RoleAdmin),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := client.Moderation.CreateSettings(cmd.Context(), models.ModerationSettingsCreate{
			Category:  args[0],
			Threshold: moderationThreshold,
			IsEnabled: moderationEnabled,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Added category %s at threshold %.2f\n", settings.Category, settings.Threshold)
		return nil
	},
}

var moderationSetCmd = &cobra.Command{
	Use:     "set <category>",
	Short:   "Update a moderation category",
	Args:    cobra.ExactArgs(1),
	PreRunE: requireRole(enums.RoleAdmin),
	RunE: func(cmd *cobra.Command, args []string) error {
		var update models.ModerationSettingsUpdate
		if cmd.Flags().Changed("threshold") {
			update.Threshold = &moderationThreshold
		}
		if cmd.Flags().Changed("enabled") {
			update.IsEnabled = &moderationEnabled
		}
		if update.Threshold == nil && update.IsEnabled == nil {
			return fmt.Errorf("nothing to update: pass --threshold or --enabled")
		}

		settings, err := client.Moderation.UpdateSettings(cmd.Context(), args[0], update)
		if err != nil {
			return err
		}
		fmt.Printf("Category %s now at threshold %.2f, enabled=%t\n",
			settings.Category, settings.Threshold, settings.IsEnabled)
		return nil
	},
}

var (
	logsSkip        int
	logsLimit       int
	logsFlaggedOnly bool
)

var moderationLogsCmd = &cobra.Command{
	Use:     "logs",
	Short:   "Browse moderation audit logs",
	PreRunE: requireRole(enums.RoleAdmin),
	RunE: func(cmd *cobra.Command, _ []string) error {
		params := api.ListLogsParams{Skip: logsSkip, Limit: logsLimit}
		if cmd.Flags().Changed("flagged") {
			params.Flagged = &logsFlaggedOnly
		}

		logs, err := client.Moderation.Logs(cmd.Context(), params)
		if err != nil {
			return err
		}
		for _, l := range logs {
			mark := " "
			if l.Flagged {
				mark = "!"
			}
			fmt.Printf("%s #%d [%s %.2f] %.60s\n", mark, l.ID, l.Category, l.Confidence, l.Content)
		}
		return nil
	},
}

var moderationLogCmd = &cobra.Command{
	Use:     "log <log-id>",
	Short:   "Show one moderation log entry",
	Args:    cobra.ExactArgs(1),
	PreRunE: requireRole(enums.RoleAdmin),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		l, err := client.Moderation.Log(cmd.Context(), id)
		if err != nil {
			return err
		}

		fmt.Printf("Category:   %s\n", l.Category)
		fmt.Printf("Confidence: %.2f\n", l.Confidence)
		fmt.Printf("Flagged:    %t\n", l.Flagged)
		if l.ActionTaken != "" {
			fmt.Printf("Action:     %s\n", l.ActionTaken)
		}
		fmt.Println(l.Content)
		return nil
	},
}

var moderationStatsCmd = &cobra.Command{
	Use:     "stats",
	Short:   "Show moderation totals",
	PreRunE: requireRole(enums.RoleAdmin),
	RunE: func(cmd *cobra.Command, _ []string) error {
		stats, err := client.Moderation.Stats(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Checked:   %d\n", stats.TotalChecked)
		fmt.Printf("Flagged:   %d\n", stats.TotalFlagged)
		fmt.Printf("Pass rate: %.1f%%\n", stats.PassRate)

		categories := make([]string, 0, len(stats.Categories))
		for c := range stats.Categories {
			categories = append(categories, c)
		}
		sort.Strings(categories)
		for _, c := range categories {
			fmt.Printf("  %s: %d\n", c, stats.Categories[c])
		}
		return nil
	},
}

func init() {
	moderationAddCmd.Flags().Float64Var(&moderationThreshold, "threshold", 0.7, "confidence threshold, 0 to 1")
	moderationAddCmd.Flags().BoolVar(&moderationEnabled, "enabled", true, "enable the category")

	moderationSetCmd.Flags().Float64Var(&moderationThreshold, "threshold", 0, "confidence threshold, 0 to 1")
	moderationSetCmd.Flags().BoolVar(&moderationEnabled, "enabled", true, "enable or disable the category")

	moderationLogsCmd.Flags().IntVar(&logsSkip, "skip", 0, "offset into the result set")
	moderationLogsCmd.Flags().IntVar(&logsLimit, "limit", 0, "maximum number of entries")
	moderationLogsCmd.Flags().BoolVar(&logsFlaggedOnly, "flagged", false, "filter by flagged state")

	moderationCmd.AddCommand(moderationSettingsCmd)
	moderationCmd.AddCommand(moderationAddCmd)
	moderationCmd.AddCommand(moderationSetCmd)
	moderationCmd.AddCommand(moderationLogsCmd)
	moderationCmd.AddCommand(moderationLogCmd)
	moderationCmd.AddCommand(moderationStatsCmd)
	rootCmd.AddCommand(moderationCmd)
}
