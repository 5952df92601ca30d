package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newCategoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Category management commands (designer)",
	}

	cmd.AddCommand(newCategoryListCmd())
	cmd.AddCommand(newCategoryCreateCmd())
	cmd.AddCommand(newCategoryUpdateCmd())
	cmd.AddCommand(newCategoryDeleteCmd())

	return cmd
}

func newCategoryListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := client.Categories(cmd.Context(), cfg.Token)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(categories)
			return nil
		},
	}
}

func newCategoryCreateCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a category",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(name) == "" {
				return fmt.Errorf("--name must not be empty")
			}

			category, err := client.CreateCategory(cmd.Context(), cfg.Token, strings.TrimSpace(name))
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Created category %s (%s)", category.Name, category.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Category name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newCategoryUpdateCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "update <category-id>",
		Short: "Rename a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(name) == "" {
				return fmt.Errorf("--name must not be empty")
			}

			category, err := client.UpdateCategory(cmd.Context(), cfg.Token, args[0], strings.TrimSpace(name))
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Renamed category to %s", category.Name))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New category name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newCategoryDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <category-id>",
		Short: "Delete a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.DeleteCategory(cmd.Context(), cfg.Token, args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Category deleted")
			return nil
		},
	}
}
