package web_test

import (
	"net/http"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soalpich/soalpich-web/internal/gateway/gatewaytest"
	"github.com/soalpich/soalpich-web/internal/model"
)

func seedQuestion(ts *webTestServer) string {
	return ts.backend.AddQuestion(model.Question{
		Text:          "۲ + ۲ چند است؟",
		Options:       []string{"۳", "۴", "۵"},
		CorrectAnswer: 1,
		Difficulty:    model.DifficultyEasy,
	})
}

func TestQuizShowsQuestion(t *testing.T) {
	ts := newWebTestServer(t)
	seedQuestion(ts)
	ts.login("pat", "pw", model.RolePlayer)

	rr := ts.get("/player/quiz")
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assert.Contains(t, doc.Text(), "۲ + ۲ چند است؟")
	assert.Equal(t, 3, doc.Find(`input[name="answer"]`).Length())
}

func TestQuizEmptyNotice(t *testing.T) {
	ts := newWebTestServer(t)
	ts.login("pat", "pw", model.RolePlayer)

	rr := ts.get("/player/quiz")
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assert.Equal(t, 1, doc.Find("p.empty").Length())
}

func TestQuizDifficultyFilter(t *testing.T) {
	ts := newWebTestServer(t)
	seedQuestion(ts)
	ts.backend.AddQuestion(model.Question{
		Text:          "سوال سخت",
		Options:       []string{"الف", "ب"},
		CorrectAnswer: 1,
		Difficulty:    model.DifficultyHard,
	})
	ts.login("pat", "pw", model.RolePlayer)

	rr := ts.get("/player/quiz?difficulty=3")
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assert.Contains(t, doc.Text(), "سوال سخت")
	assert.NotContains(t, doc.Text(), "۲ + ۲ چند است؟")
}

func TestSubmitCorrectAnswer(t *testing.T) {
	ts := newWebTestServer(t)
	id := seedQuestion(ts)
	ts.login("pat", "pw", model.RolePlayer)

	rr := ts.post("/player/quiz/"+id+"/submit", url.Values{
		"answer": {"1"},
	})
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assert.Equal(t, 1, doc.Find("h2.correct").Length())
	assert.Zero(t, doc.Find("h2.wrong").Length())
}

func TestSubmitWrongAnswer(t *testing.T) {
	ts := newWebTestServer(t)
	id := seedQuestion(ts)
	ts.login("pat", "pw", model.RolePlayer)

	rr := ts.post("/player/quiz/"+id+"/submit", url.Values{
		"answer": {"2"},
	})
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assert.Equal(t, 1, doc.Find("h2.wrong").Length())
}

func TestSubmitWithoutChoiceRedirectsBack(t *testing.T) {
	ts := newWebTestServer(t)
	id := seedQuestion(ts)
	ts.login("pat", "pw", model.RolePlayer)

	rr := ts.post("/player/quiz/"+id+"/submit", url.Values{})
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/player/quiz", rr.Header().Get("Location"))
}

func TestLeaderboardPage(t *testing.T) {
	ts := newWebTestServer(t)
	id := seedQuestion(ts)
	ts.login("pat", "pw", model.RolePlayer)

	rr := ts.post("/player/quiz/"+id+"/submit", url.Values{
		"answer": {"1"},
	})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.get("/player/leaderboard")
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	row := doc.Find("tbody tr").First().Text()
	assert.Contains(t, row, "pat")
	assert.Contains(t, row, strconv.Itoa(gatewaytest.PointsPerCorrectAnswer))
}
