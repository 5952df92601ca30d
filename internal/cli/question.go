package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/soalpich/soalpich-web/internal/gateway"
	"github.com/soalpich/soalpich-web/internal/model"
)

func newQuestionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "question",
		Short: "Question management commands (designer)",
	}

	cmd.AddCommand(newQuestionListCmd())
	cmd.AddCommand(newQuestionCreateCmd())
	cmd.AddCommand(newQuestionUpdateCmd())
	cmd.AddCommand(newQuestionDeleteCmd())

	return cmd
}

func newQuestionListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your questions",
		RunE: func(cmd *cobra.Command, args []string) error {
			questions, err := client.Questions(cmd.Context(), cfg.Token)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(questions)
			return nil
		},
	}
}

func questionInputFlags(cmd *cobra.Command, input *gateway.QuestionInput) {
	cmd.Flags().StringVar(&input.Text, "text", "", "Question text")
	cmd.Flags().StringSliceVar(&input.Options, "option", nil, "Answer option (repeatable)")
	cmd.Flags().IntVar(&input.CorrectAnswer, "correct", 0, "Index of the correct option")
	cmd.Flags().StringVar(&input.CategoryID, "category", "", "Category ID")
	cmd.Flags().IntVar(&input.Difficulty, "difficulty", model.DifficultyEasy, "Difficulty: 1 (easy) to 3 (hard)")
}

func validateQuestionInput(input gateway.QuestionInput) error {
	if input.Text == "" {
		return fmt.Errorf("--text is required")
	}
	if len(input.Options) < 2 {
		return fmt.Errorf("at least two --option values are required")
	}
	if input.CorrectAnswer < 0 || input.CorrectAnswer >= len(input.Options) {
		return fmt.Errorf("--correct must index one of the options")
	}
	if input.Difficulty < model.DifficultyEasy || input.Difficulty > model.DifficultyHard {
		return fmt.Errorf("--difficulty must be between %d and %d", model.DifficultyEasy, model.DifficultyHard)
	}
	return nil
}

func newQuestionCreateCmd() *cobra.Command {
	var input gateway.QuestionInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a question",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateQuestionInput(input); err != nil {
				return err
			}

			question, err := client.CreateQuestion(cmd.Context(), cfg.Token, input)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(*question)
			return nil
		},
	}

	questionInputFlags(cmd, &input)
	_ = cmd.MarkFlagRequired("text")
	_ = cmd.MarkFlagRequired("option")

	return cmd
}

func newQuestionUpdateCmd() *cobra.Command {
	var input gateway.QuestionInput

	cmd := &cobra.Command{
		Use:   "update <question-id>",
		Short: "Update a question",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateQuestionInput(input); err != nil {
				return err
			}

			question, err := client.UpdateQuestion(cmd.Context(), cfg.Token, args[0], input)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(*question)
			return nil
		},
	}

	questionInputFlags(cmd, &input)

	return cmd
}

func newQuestionDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <question-id>",
		Short: "Delete a question",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.DeleteQuestion(cmd.Context(), cfg.Token, args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Question deleted")
			return nil
		},
	}
}
