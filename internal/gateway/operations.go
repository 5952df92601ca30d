package gateway

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/soalpich/soalpich-web/internal/model"
)

// LoginResult is the backend's response to a successful login
type LoginResult struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a bearer token
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	req := map[string]string{"username": username, "password": password}
	var result LoginResult
	if err := c.Post(ctx, "/api/auth/login", "", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Register creates a new account. It does not authenticate; callers are
// expected to follow up with Login using the same credentials.
func (c *Client) Register(ctx context.Context, username, password string, role model.Role) error {
	req := map[string]string{
		"username": username,
		"password": password,
		"role":     string(role),
	}
	return c.Post(ctx, "/api/auth/register", "", req, nil)
}

// Profile fetches the authenticated user's identity
func (c *Client) Profile(ctx context.Context, token string) (*model.Identity, error) {
	var identity model.Identity
	if err := c.Get(ctx, "/api/users/profile", token, &identity); err != nil {
		return nil, err
	}
	return &identity, nil
}

// UpdateProfile changes the authenticated user's username
func (c *Client) UpdateProfile(ctx context.Context, token, username string) (*model.Identity, error) {
	req := map[string]string{"username": username}
	var identity model.Identity
	if err := c.Put(ctx, "/api/users/profile", token, req, &identity); err != nil {
		return nil, err
	}
	return &identity, nil
}

// QuestionInput carries the fields for creating or updating a question
type QuestionInput struct {
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	CategoryID    string   `json:"categoryId,omitempty"`
	Difficulty    int      `json:"difficulty"`
}

// Questions lists the designer's own questions
func (c *Client) Questions(ctx context.Context, token string) ([]model.Question, error) {
	var questions []model.Question
	if err := c.Get(ctx, "/api/designer/questions", token, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// CreateQuestion adds a new question
func (c *Client) CreateQuestion(ctx context.Context, token string, input QuestionInput) (*model.Question, error) {
	var question model.Question
	if err := c.Post(ctx, "/api/designer/questions", token, input, &question); err != nil {
		return nil, err
	}
	return &question, nil
}

// UpdateQuestion replaces a question's fields
func (c *Client) UpdateQuestion(ctx context.Context, token, id string, input QuestionInput) (*model.Question, error) {
	var question model.Question
	if err := c.Put(ctx, "/api/designer/questions/"+url.PathEscape(id), token, input, &question); err != nil {
		return nil, err
	}
	return &question, nil
}

// DeleteQuestion removes a question
func (c *Client) DeleteQuestion(ctx context.Context, token, id string) error {
	return c.Delete(ctx, "/api/designer/questions/"+url.PathEscape(id), token)
}

// Categories lists the designer's categories
func (c *Client) Categories(ctx context.Context, token string) ([]model.Category, error) {
	var categories []model.Category
	if err := c.Get(ctx, "/api/designer/categories", token, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory adds a new category
func (c *Client) CreateCategory(ctx context.Context, token, name string) (*model.Category, error) {
	req := map[string]string{"name": name}
	var category model.Category
	if err := c.Post(ctx, "/api/designer/categories", token, req, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory renames a category
func (c *Client) UpdateCategory(ctx context.Context, token, id, name string) (*model.Category, error) {
	req := map[string]string{"name": name}
	var category model.Category
	if err := c.Put(ctx, "/api/designer/categories/"+url.PathEscape(id), token, req, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory removes a category
func (c *Client) DeleteCategory(ctx context.Context, token, id string) error {
	return c.Delete(ctx, "/api/designer/categories/"+url.PathEscape(id), token)
}

// QuestionFilters narrows the player question listing
type QuestionFilters struct {
	Category   string
	Difficulty int
}

// FilteredQuestions lists questions for a player, optionally filtered
func (c *Client) FilteredQuestions(ctx context.Context, token string, filters QuestionFilters) ([]model.Question, error) {
	params := url.Values{}
	if filters.Category != "" {
		params.Set("category", filters.Category)
	}
	if filters.Difficulty != 0 {
		params.Set("difficulty", strconv.Itoa(filters.Difficulty))
	}

	path := "/api/player/questions"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var questions []model.Question
	if err := c.Get(ctx, path, token, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// RandomQuestions fetches a random question set for a quiz round
func (c *Client) RandomQuestions(ctx context.Context, token string) ([]model.Question, error) {
	var questions []model.Question
	if err := c.Get(ctx, "/api/player/questions/random", token, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// SubmitAnswer submits an option index for a question.
// The backend owns correctness and scoring; repeat submissions are
// independent as far as the client is concerned.
func (c *Client) SubmitAnswer(ctx context.Context, token, questionID string, answer int) (*model.AnswerResult, error) {
	req := map[string]int{"answer": answer}
	var result model.AnswerResult
	path := fmt.Sprintf("/api/player/questions/%s/submit", url.PathEscape(questionID))
	if err := c.Post(ctx, path, token, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Leaderboard fetches the ranked player list
func (c *Client) Leaderboard(ctx context.Context, token string) ([]model.LeaderboardEntry, error) {
	var entries []model.LeaderboardEntry
	if err := c.Get(ctx, "/api/player/leaderboard", token, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// FollowDesigner starts following a designer
func (c *Client) FollowDesigner(ctx context.Context, token, designerID string) error {
	return c.Post(ctx, "/api/player/follow/designer/"+url.PathEscape(designerID), token, nil, nil)
}

// UnfollowDesigner stops following a designer
func (c *Client) UnfollowDesigner(ctx context.Context, token, designerID string) error {
	return c.Post(ctx, "/api/player/unfollow/designer/"+url.PathEscape(designerID), token, nil, nil)
}

// FollowPlayer starts following a player
func (c *Client) FollowPlayer(ctx context.Context, token, playerID string) error {
	return c.Post(ctx, "/api/player/follow/player/"+url.PathEscape(playerID), token, nil, nil)
}

// UnfollowPlayer stops following a player
func (c *Client) UnfollowPlayer(ctx context.Context, token, playerID string) error {
	return c.Post(ctx, "/api/player/unfollow/player/"+url.PathEscape(playerID), token, nil, nil)
}

// Followers lists users following the authenticated user
func (c *Client) Followers(ctx context.Context, token string) ([]model.User, error) {
	var users []model.User
	if err := c.Get(ctx, "/api/users/followers", token, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Following lists users the authenticated user follows
func (c *Client) Following(ctx context.Context, token string) ([]model.User, error) {
	var users []model.User
	if err := c.Get(ctx, "/api/users/following", token, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Users lists all platform users
func (c *Client) Users(ctx context.Context, token string) ([]model.User, error) {
	var users []model.User
	if err := c.Get(ctx, "/api/users", token, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UserByID fetches a single user
func (c *Client) UserByID(ctx context.Context, token, id string) (*model.User, error) {
	var user model.User
	if err := c.Get(ctx, "/api/users/"+url.PathEscape(id), token, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
