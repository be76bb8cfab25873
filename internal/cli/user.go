package cli

import (
	"github.com/spf13/cobra"
)

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Profile commands",
	}

	cmd.AddCommand(newUserMeCmd())
	cmd.AddCommand(newUserUpdateCmd())

	return cmd
}

func newUserMeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the authenticated user's profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result User

			if err := client.Get("/api/users/me", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newUserUpdateCmd() *cobra.Command {
	var displayName, avatar, theme string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update the authenticated user's profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Only flags the caller actually set are sent, so unset
			// fields keep their stored values
			req := map[string]string{}
			if cmd.Flags().Changed("name") {
				req["display_name"] = displayName
			}
			if cmd.Flags().Changed("avatar") {
				req["avatar"] = avatar
			}
			if cmd.Flags().Changed("theme") {
				req["theme_preference"] = theme
			}

			var result User
			if err := client.Put("/api/users/me", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&displayName, "name", "", "Display name")
	cmd.Flags().StringVar(&avatar, "avatar", "", "Avatar identifier")
	cmd.Flags().StringVar(&theme, "theme", "", "Theme preference")

	return cmd
}
