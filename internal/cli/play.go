package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/soalpich/soalpich-web/internal/gateway"
)

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Quiz commands (player)",
	}

	cmd.AddCommand(newPlayNextCmd())
	cmd.AddCommand(newPlayAnswerCmd())

	return cmd
}

func newPlayNextCmd() *cobra.Command {
	var category string
	var difficulty int

	cmd := &cobra.Command{
		Use:   "next",
		Short: "Fetch a question to answer",
		RunE: func(cmd *cobra.Command, args []string) error {
			if category != "" || difficulty != 0 {
				qs, ferr := client.FilteredQuestions(cmd.Context(), cfg.Token, gateway.QuestionFilters{
					Category:   category,
					Difficulty: difficulty,
				})
				if ferr != nil {
					return ferr
				}
				if len(qs) == 0 {
					return fmt.Errorf("no questions match the filter")
				}
				out := NewOutput(cfg.Output)
				out.Print(qs[0])
				return nil
			}

			qs, err := client.RandomQuestions(cmd.Context(), cfg.Token)
			if err != nil {
				return err
			}

			if len(qs) == 0 {
				return fmt.Errorf("no questions available")
			}

			out := NewOutput(cfg.Output)
			out.Print(qs[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Filter by category ID")
	cmd.Flags().IntVar(&difficulty, "difficulty", 0, "Filter by difficulty: 1 (easy) to 3 (hard)")

	return cmd
}

func newPlayAnswerCmd() *cobra.Command {
	var answer int

	cmd := &cobra.Command{
		Use:   "answer <question-id>",
		Short: "Submit an answer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := client.SubmitAnswer(cmd.Context(), cfg.Token, args[0], answer)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&answer, "answer", -1, "Index of the chosen option (required)")
	_ = cmd.MarkFlagRequired("answer")

	return cmd
}
