package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/soalpich/soalpich-web/internal/model"
)

func newUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "User directory and follow commands",
	}

	cmd.AddCommand(newUsersListCmd())
	cmd.AddCommand(newUsersShowCmd())
	cmd.AddCommand(newUsersFollowCmd())
	cmd.AddCommand(newUsersUnfollowCmd())
	cmd.AddCommand(newUsersFollowersCmd())
	cmd.AddCommand(newUsersFollowingCmd())

	return cmd
}

func newUsersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all users",
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := client.Users(cmd.Context(), cfg.Token)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(users)
			return nil
		},
	}
}

func newUsersShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <user-id>",
		Short: "Show a single user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := client.UserByID(cmd.Context(), cfg.Token, args[0])
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(user)
			return nil
		},
	}
}

func newUsersFollowCmd() *cobra.Command {
	var role string

	cmd := &cobra.Command{
		Use:   "follow <user-id>",
		Short: "Follow a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := followUser(cmd, args[0], role, true); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Followed")
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "Target's role: designer, player (required)")
	_ = cmd.MarkFlagRequired("role")

	return cmd
}

func newUsersUnfollowCmd() *cobra.Command {
	var role string

	cmd := &cobra.Command{
		Use:   "unfollow <user-id>",
		Short: "Unfollow a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := followUser(cmd, args[0], role, false); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Unfollowed")
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "Target's role: designer, player (required)")
	_ = cmd.MarkFlagRequired("role")

	return cmd
}

func followUser(cmd *cobra.Command, id, role string, follow bool) error {
	r := model.Role(role)
	if !r.Valid() {
		return fmt.Errorf("--role must be %q or %q", model.RoleDesigner, model.RolePlayer)
	}

	switch {
	case follow && r == model.RoleDesigner:
		return client.FollowDesigner(cmd.Context(), cfg.Token, id)
	case follow:
		return client.FollowPlayer(cmd.Context(), cfg.Token, id)
	case r == model.RoleDesigner:
		return client.UnfollowDesigner(cmd.Context(), cfg.Token, id)
	default:
		return client.UnfollowPlayer(cmd.Context(), cfg.Token, id)
	}
}

func newUsersFollowersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "followers",
		Short: "List users following you",
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := client.Followers(cmd.Context(), cfg.Token)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(users)
			return nil
		},
	}
}

func newUsersFollowingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "following",
		Short: "List users you follow",
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := client.Following(cmd.Context(), cfg.Token)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(users)
			return nil
		},
	}
}
