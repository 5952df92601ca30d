package gateway_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soalpich/soalpich-web/internal/gateway"
	"github.com/soalpich/soalpich-web/internal/gateway/gatewaytest"
	"github.com/soalpich/soalpich-web/internal/model"
)

func setupBackend(t *testing.T) (*gatewaytest.Backend, *gateway.Client) {
	t.Helper()

	backend := gatewaytest.NewBackend()
	t.Cleanup(backend.Close)

	return backend, gateway.NewClient(backend.URL())
}

func TestLoginAndProfile(t *testing.T) {
	backend, client := setupBackend(t)
	backend.AddUser("alice", "secret", model.RoleDesigner)
	ctx := context.Background()

	result, err := client.Login(ctx, "alice", "secret")
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)

	identity, err := client.Profile(ctx, result.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", identity.Username)
	assert.Equal(t, model.RoleDesigner, identity.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	backend, client := setupBackend(t)
	backend.AddUser("alice", "secret", model.RolePlayer)

	_, err := client.Login(context.Background(), "alice", "wrong")

	var apiErr *gateway.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
}

func TestRegisterThenLogin(t *testing.T) {
	_, client := setupBackend(t)
	ctx := context.Background()

	err := client.Register(ctx, "bob", "hunter2", model.RolePlayer)
	require.NoError(t, err)

	result, err := client.Login(ctx, "bob", "hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
}

func TestQuestionLifecycle(t *testing.T) {
	backend, client := setupBackend(t)
	id := backend.AddUser("dana", "pw", model.RoleDesigner)
	token := backend.IssueToken(id)
	ctx := context.Background()

	created, err := client.CreateQuestion(ctx, token, gateway.QuestionInput{
		Text:          "پایتخت ایران کجاست؟",
		Options:       []string{"تهران", "شیراز", "اصفهان", "تبریز"},
		CorrectAnswer: 0,
		Difficulty:    model.DifficultyEasy,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	questions, err := client.Questions(ctx, token)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "پایتخت ایران کجاست؟", questions[0].Text)

	updated, err := client.UpdateQuestion(ctx, token, created.ID, gateway.QuestionInput{
		Text:          "بزرگ‌ترین شهر ایران کدام است؟",
		Options:       []string{"تهران", "مشهد"},
		CorrectAnswer: 0,
		Difficulty:    model.DifficultyMedium,
	})
	require.NoError(t, err)
	assert.Equal(t, "بزرگ‌ترین شهر ایران کدام است؟", updated.Text)

	require.NoError(t, client.DeleteQuestion(ctx, token, created.ID))

	questions, err = client.Questions(ctx, token)
	require.NoError(t, err)
	assert.Empty(t, questions)
}

func TestCategoryLifecycle(t *testing.T) {
	backend, client := setupBackend(t)
	id := backend.AddUser("dana", "pw", model.RoleDesigner)
	token := backend.IssueToken(id)
	ctx := context.Background()

	created, err := client.CreateCategory(ctx, token, "عمومی")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "عمومی", created.Name)

	renamed, err := client.UpdateCategory(ctx, token, created.ID, "تاریخ")
	require.NoError(t, err)
	assert.Equal(t, "تاریخ", renamed.Name)

	require.NoError(t, client.DeleteCategory(ctx, token, created.ID))

	categories, err := client.Categories(ctx, token)
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestRandomQuestionsOmitAnswer(t *testing.T) {
	backend, client := setupBackend(t)
	backend.AddQuestion(model.Question{
		Text:          "۲ + ۲ چند است؟",
		Options:       []string{"۳", "۴", "۵"},
		CorrectAnswer: 1,
		Difficulty:    model.DifficultyEasy,
	})
	id := backend.AddUser("pat", "pw", model.RolePlayer)
	token := backend.IssueToken(id)

	questions, err := client.RandomQuestions(context.Background(), token)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Zero(t, questions[0].CorrectAnswer)
}

func TestSubmitAnswerAwardsPoints(t *testing.T) {
	backend, client := setupBackend(t)
	questionID := backend.AddQuestion(model.Question{
		Text:          "۲ + ۲ چند است؟",
		Options:       []string{"۳", "۴", "۵"},
		CorrectAnswer: 1,
		Difficulty:    model.DifficultyEasy,
	})
	userID := backend.AddUser("pat", "pw", model.RolePlayer)
	token := backend.IssueToken(userID)
	ctx := context.Background()

	result, err := client.SubmitAnswer(ctx, token, questionID, 1)
	require.NoError(t, err)
	assert.True(t, result.Correct)
	assert.Equal(t, gatewaytest.PointsPerCorrectAnswer, result.PointsEarned)
	assert.Equal(t, gatewaytest.PointsPerCorrectAnswer, backend.Points(userID))

	result, err = client.SubmitAnswer(ctx, token, questionID, 2)
	require.NoError(t, err)
	assert.False(t, result.Correct)
	assert.Zero(t, result.PointsEarned)
}

func TestLeaderboardSortedByPoints(t *testing.T) {
	backend, client := setupBackend(t)
	questionID := backend.AddQuestion(model.Question{
		Text:          "۲ + ۲ چند است؟",
		Options:       []string{"۳", "۴", "۵"},
		CorrectAnswer: 1,
		Difficulty:    model.DifficultyEasy,
	})

	low := backend.AddUser("low", "pw", model.RolePlayer)
	high := backend.AddUser("high", "pw", model.RolePlayer)
	highToken := backend.IssueToken(high)
	ctx := context.Background()

	_, err := client.SubmitAnswer(ctx, highToken, questionID, 1)
	require.NoError(t, err)

	entries, err := client.Leaderboard(ctx, backend.IssueToken(low))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "high", entries[0].Username)
	assert.Equal(t, gatewaytest.PointsPerCorrectAnswer, entries[0].Points)
}

func TestUserByID(t *testing.T) {
	backend, client := setupBackend(t)
	viewer := backend.AddUser("pat", "pw", model.RolePlayer)
	target := backend.AddUser("dana", "pw", model.RoleDesigner)
	token := backend.IssueToken(viewer)
	ctx := context.Background()

	user, err := client.UserByID(ctx, token, target)
	require.NoError(t, err)
	assert.Equal(t, target, user.ID)
	assert.Equal(t, "dana", user.Username)
	assert.Equal(t, model.RoleDesigner, user.Role)

	_, err = client.UserByID(ctx, token, "u404")
	var apiErr *gateway.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}

func TestFollowRoundTrip(t *testing.T) {
	backend, client := setupBackend(t)
	player := backend.AddUser("pat", "pw", model.RolePlayer)
	designer := backend.AddUser("dana", "pw", model.RoleDesigner)
	token := backend.IssueToken(player)
	ctx := context.Background()

	require.NoError(t, client.FollowDesigner(ctx, token, designer))

	following, err := client.Following(ctx, token)
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, "dana", following[0].Username)

	followers, err := client.Followers(ctx, backend.IssueToken(designer))
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, "pat", followers[0].Username)

	require.NoError(t, client.UnfollowDesigner(ctx, token, designer))

	following, err = client.Following(ctx, token)
	require.NoError(t, err)
	assert.Empty(t, following)
}

func TestRevokedTokenRejected(t *testing.T) {
	backend, client := setupBackend(t)
	id := backend.AddUser("pat", "pw", model.RolePlayer)
	token := backend.IssueToken(id)
	backend.RevokeToken(token)

	_, err := client.Profile(context.Background(), token)

	var apiErr *gateway.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
}
