package model

import "encoding/json"

// Difficulty levels as used by the backend (1 = easy, 3 = hard)
const (
	DifficultyEasy   = 1
	DifficultyMedium = 2
	DifficultyHard   = 3
)

// Question is a quiz question as returned by the backend.
// Designers see CorrectAnswer; the player endpoints omit it.
type Question struct {
	ID            string    `json:"id"`
	Text          string    `json:"text"`
	Options       []string  `json:"options"`
	CorrectAnswer int       `json:"correctAnswer,omitempty"`
	Category      *Category `json:"category,omitempty"`
	Difficulty    int       `json:"difficulty"`
	Creator       string    `json:"creator,omitempty"`
}

type questionAlias Question

type questionWire struct {
	questionAlias
	MongoID string `json:"_id"`
}

// UnmarshalJSON decodes a question, accepting either "id" or "_id"
func (q *Question) UnmarshalJSON(data []byte) error {
	var w questionWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*q = Question(w.questionAlias)
	if q.ID == "" {
		q.ID = w.MongoID
	}
	return nil
}

// Category groups questions under a designer-chosen name
type Category struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Creator string `json:"creator,omitempty"`
}

type categoryAlias Category

type categoryWire struct {
	categoryAlias
	MongoID string `json:"_id"`
}

// UnmarshalJSON decodes a category, accepting either "id" or "_id"
func (c *Category) UnmarshalJSON(data []byte) error {
	var w categoryWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*c = Category(w.categoryAlias)
	if c.ID == "" {
		c.ID = w.MongoID
	}
	return nil
}

// AnswerResult is the backend's verdict on a submitted answer
type AnswerResult struct {
	Correct      bool `json:"correct"`
	PointsEarned int  `json:"pointsEarned"`
}

// LeaderboardEntry is one row of the player leaderboard
type LeaderboardEntry struct {
	Username string `json:"username"`
	Points   int    `json:"points"`
}
