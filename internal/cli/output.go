package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/soalpich/soalpich-web/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case *model.Identity:
		o.printIdentity(v)
	case model.Question:
		o.printQuestion(v)
	case []model.Question:
		o.printQuestions(v)
	case []model.Category:
		o.printCategories(v)
	case *model.AnswerResult:
		o.printAnswerResult(v)
	case []model.LeaderboardEntry:
		o.printLeaderboard(v)
	case *model.User:
		o.printUser(v)
	case []model.User:
		o.printUsers(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printIdentity(identity *model.Identity) {
	fmt.Printf("User:  %s\n", identity.Username)
	fmt.Printf("ID:    %s\n", identity.ID)
	fmt.Printf("Role:  %s\n", identity.Role)
	if identity.Role == model.RolePlayer {
		fmt.Printf("Points: %d\n", identity.Points)
	}
}

func (o *Output) printQuestion(q model.Question) {
	fmt.Printf("Question: %s (id: %s)\n", q.Text, q.ID)
	for i, option := range q.Options {
		fmt.Printf("  [%d] %s\n", i, option)
	}
	fmt.Printf("Difficulty: %d\n", q.Difficulty)
	if q.Category != nil {
		fmt.Printf("Category: %s\n", q.Category.Name)
	}
}

func (o *Output) printQuestions(questions []model.Question) {
	if len(questions) == 0 {
		fmt.Println("No questions")
		return
	}
	for i, q := range questions {
		if i > 0 {
			fmt.Println()
		}
		o.printQuestion(q)
	}
}

func (o *Output) printCategories(categories []model.Category) {
	if len(categories) == 0 {
		fmt.Println("No categories")
		return
	}
	for _, c := range categories {
		fmt.Printf("%s  %s\n", c.ID, c.Name)
	}
}

func (o *Output) printAnswerResult(result *model.AnswerResult) {
	if result.Correct {
		fmt.Printf("Correct! +%d points\n", result.PointsEarned)
	} else {
		fmt.Println("Wrong answer")
	}
}

func (o *Output) printLeaderboard(entries []model.LeaderboardEntry) {
	if len(entries) == 0 {
		fmt.Println("Leaderboard is empty")
		return
	}
	for i, entry := range entries {
		fmt.Printf("%3d. %-20s %d\n", i+1, entry.Username, entry.Points)
	}
}

func (o *Output) printUser(u *model.User) {
	fmt.Printf("User:  %s\n", u.Username)
	fmt.Printf("ID:    %s\n", u.ID)
	fmt.Printf("Role:  %s\n", u.Role)
	if u.Role == model.RolePlayer {
		fmt.Printf("Points: %d\n", u.Points)
	}
}

func (o *Output) printUsers(users []model.User) {
	if len(users) == 0 {
		fmt.Println("No users")
		return
	}
	for _, u := range users {
		fmt.Printf("%s  %-20s %s\n", u.ID, u.Username, u.Role)
	}
}
