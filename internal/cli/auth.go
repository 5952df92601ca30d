package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/soalpich/soalpich-web/internal/model"
)

func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authentication commands",
	}

	cmd.AddCommand(newAuthLoginCmd())
	cmd.AddCommand(newAuthRegisterCmd())
	cmd.AddCommand(newAuthLogoutCmd())
	cmd.AddCommand(newAuthWhoamiCmd())

	return cmd
}

func newAuthLoginCmd() *cobra.Command {
	var user, pass string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login and store the token",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := client.Login(cmd.Context(), user, pass)
			if err != nil {
				return err
			}

			if err := cfg.SaveToken(result.Token); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			identity, err := client.Profile(cmd.Context(), result.Token)
			if err != nil {
				// Token did not survive the round trip; drop it
				_ = cfg.ClearToken()
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(identity)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Username (required)")
	cmd.Flags().StringVar(&pass, "pass", "", "Password (required)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("pass")

	return cmd
}

func newAuthRegisterCmd() *cobra.Command {
	var user, pass, role string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := model.Role(role)
			if !r.Valid() {
				return fmt.Errorf("--role must be %q or %q", model.RoleDesigner, model.RolePlayer)
			}

			if err := client.Register(cmd.Context(), user, pass, r); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Registered. Run 'soalpich auth login' to sign in.")
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Username (required)")
	cmd.Flags().StringVar(&pass, "pass", "", "Password (required)")
	cmd.Flags().StringVar(&role, "role", "player", "Account role: designer, player")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("pass")

	return cmd
}

func newAuthLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.ClearToken(); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Logged out")
			return nil
		},
	}
}

func newAuthWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the authenticated user",
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
