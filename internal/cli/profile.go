package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Profile commands",
	}

	cmd.AddCommand(newProfileShowCmd())
	cmd.AddCommand(newProfileUpdateCmd())

	return cmd
}

func newProfileShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			identity, err := client.Profile(cmd.Context(), cfg.Token)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(identity)
			return nil
		},
	}
}

func newProfileUpdateCmd() *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(username) == "" {
				return fmt.Errorf("--username must not be empty")
			}

			identity, err := client.UpdateProfile(cmd.Context(), cfg.Token, strings.TrimSpace(username))
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(identity)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "New username (required)")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}
