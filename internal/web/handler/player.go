package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/soalpich/soalpich-web/internal/gateway"
	"github.com/soalpich/soalpich-web/internal/model"
	"github.com/soalpich/soalpich-web/internal/web/middleware"
	"github.com/soalpich/soalpich-web/internal/web/templates/pages"
)

// PlayerHandler handles the quiz and leaderboard pages
type PlayerHandler struct {
	gateway *gateway.Client
}

// NewPlayerHandler creates a new PlayerHandler
func NewPlayerHandler(gw *gateway.Client) *PlayerHandler {
	return &PlayerHandler{
		gateway: gw,
	}
}

// Quiz fetches a question for the player. Without a difficulty filter
// the backend picks at random; with one, the filtered listing is used
// and the first question shown.
func (h *PlayerHandler) Quiz(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	difficulty, _ := strconv.Atoi(r.URL.Query().Get("difficulty"))

	var (
		questions []model.Question
		err       error
	)
	if difficulty >= model.DifficultyEasy && difficulty <= model.DifficultyHard {
		questions, err = h.gateway.FilteredQuestions(r.Context(), sess.Token, gateway.QuestionFilters{
			Difficulty: difficulty,
		})
	} else {
		difficulty = 0
		questions, err = h.gateway.RandomQuestions(r.Context(), sess.Token)
	}

	data := pages.QuizData{
		PageData:   pageData(r, "آزمون"),
		Difficulty: difficulty,
	}
	if err != nil {
		data.Error = apiErrorMessage(err, "خطا در دریافت سوال")
	} else if len(questions) > 0 {
		data.Question = &questions[0]
	}

	render(w, r, pages.Quiz(data))
}

// Submit sends the chosen option to the backend and shows the verdict.
// The backend owns correctness and scoring; the page never reveals the
// correct option on a wrong answer.
func (h *PlayerHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	sess := middleware.GetSession(r.Context())
	questionID := mux.Vars(r)["id"]

	answerValue := r.FormValue("answer")
	if answerValue == "" {
		middleware.SetFlash(w, "error", "یک گزینه را انتخاب کنید")
		http.Redirect(w, r, "/player/quiz", http.StatusSeeOther)
		return
	}
	answer, err := strconv.Atoi(answerValue)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	result, err := h.gateway.SubmitAnswer(r.Context(), sess.Token, questionID, answer)
	if err != nil {
		middleware.SetFlash(w, "error", apiErrorMessage(err, "ثبت پاسخ ناموفق بود"))
		http.Redirect(w, r, "/player/quiz", http.StatusSeeOther)
		return
	}

	data := pages.QuizData{
		PageData: pageData(r, "آزمون"),
		Result:   result,
	}
	render(w, r, pages.Quiz(data))
}

// Leaderboard renders the ranked player table
func (h *PlayerHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())

	entries, err := h.gateway.Leaderboard(r.Context(), sess.Token)
	if err != nil {
		middleware.SetFlash(w, "error", "خطا در دریافت جدول امتیازات")
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	data := pages.LeaderboardData{
		PageData: pageData(r, "جدول امتیازات"),
		Entries:  entries,
	}
	render(w, r, pages.Leaderboard(data))
}
