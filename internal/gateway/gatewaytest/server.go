// Package gatewaytest provides an in-memory stand-in for the quiz backend.
// It implements just enough of the backend API for client tests: token
// issuance, profile fetch, question and category CRUD, answer scoring,
// the leaderboard and the follow graph.
package gatewaytest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/gorilla/mux"

	"github.com/soalpich/soalpich-web/internal/model"
)

// PointsPerCorrectAnswer is awarded for each correct submission
const PointsPerCorrectAnswer = 10

type account struct {
	model.User
	password string
}

// Backend is a fake quiz backend suitable for httptest
type Backend struct {
	mu sync.Mutex

	nextID     int
	accounts   map[string]*account // by id
	byUsername map[string]string   // username -> id
	tokens     map[string]string   // token -> user id
	questions  map[string]*model.Question
	categories map[string]*model.Category
	following  map[string]map[string]bool // follower id -> followed ids

	server *httptest.Server
}

// NewBackend creates a fake backend and starts its test server
func NewBackend() *Backend {
	b := &Backend{
		accounts:   make(map[string]*account),
		byUsername: make(map[string]string),
		tokens:     make(map[string]string),
		questions:  make(map[string]*model.Question),
		categories: make(map[string]*model.Category),
		following:  make(map[string]map[string]bool),
	}

	r := mux.NewRouter()
	r.HandleFunc("/api/auth/login", b.login).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/register", b.register).Methods(http.MethodPost)
	r.HandleFunc("/api/users/profile", b.auth(b.profile)).Methods(http.MethodGet)
	r.HandleFunc("/api/users/profile", b.auth(b.updateProfile)).Methods(http.MethodPut)
	r.HandleFunc("/api/users/followers", b.auth(b.followers)).Methods(http.MethodGet)
	r.HandleFunc("/api/users/following", b.auth(b.followingList)).Methods(http.MethodGet)
	r.HandleFunc("/api/users", b.auth(b.users)).Methods(http.MethodGet)
	r.HandleFunc("/api/users/{id}", b.auth(b.userByID)).Methods(http.MethodGet)
	r.HandleFunc("/api/designer/questions", b.auth(b.listQuestions)).Methods(http.MethodGet)
	r.HandleFunc("/api/designer/questions", b.auth(b.createQuestion)).Methods(http.MethodPost)
	r.HandleFunc("/api/designer/questions/{id}", b.auth(b.updateQuestion)).Methods(http.MethodPut)
	r.HandleFunc("/api/designer/questions/{id}", b.auth(b.deleteQuestion)).Methods(http.MethodDelete)
	r.HandleFunc("/api/designer/categories", b.auth(b.listCategories)).Methods(http.MethodGet)
	r.HandleFunc("/api/designer/categories", b.auth(b.createCategory)).Methods(http.MethodPost)
	r.HandleFunc("/api/designer/categories/{id}", b.auth(b.updateCategory)).Methods(http.MethodPut)
	r.HandleFunc("/api/designer/categories/{id}", b.auth(b.deleteCategory)).Methods(http.MethodDelete)
	r.HandleFunc("/api/player/questions/random", b.auth(b.randomQuestions)).Methods(http.MethodGet)
	r.HandleFunc("/api/player/questions/{id}/submit", b.auth(b.submitAnswer)).Methods(http.MethodPost)
	r.HandleFunc("/api/player/questions", b.auth(b.playerQuestions)).Methods(http.MethodGet)
	r.HandleFunc("/api/player/leaderboard", b.auth(b.leaderboard)).Methods(http.MethodGet)
	r.HandleFunc("/api/player/follow/{role}/{id}", b.auth(b.follow)).Methods(http.MethodPost)
	r.HandleFunc("/api/player/unfollow/{role}/{id}", b.auth(b.unfollow)).Methods(http.MethodPost)

	b.server = httptest.NewServer(r)
	return b
}

// URL returns the backend's base URL
func (b *Backend) URL() string {
	return b.server.URL
}

// Close shuts down the test server
func (b *Backend) Close() {
	b.server.Close()
}

// AddUser registers an account directly and returns its id
func (b *Backend) AddUser(username, password string, role model.Role) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.addUserLocked(username, password, role)
}

func (b *Backend) addUserLocked(username, password string, role model.Role) string {
	id := b.newID("u")
	b.accounts[id] = &account{
		User:     model.User{ID: id, Username: username, Role: role},
		password: password,
	}
	b.byUsername[username] = id
	b.following[id] = make(map[string]bool)
	return id
}

// IssueToken mints a valid token for the given user id
func (b *Backend) IssueToken(userID string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	token := b.newID("tok")
	b.tokens[token] = userID
	return token
}

// RevokeToken invalidates a token, as an expired session would
func (b *Backend) RevokeToken(token string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.tokens, token)
}

// AddQuestion seeds a question and returns its id
func (b *Backend) AddQuestion(q model.Question) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	q.ID = b.newID("q")
	b.questions[q.ID] = &q
	return q.ID
}

// AddCategory seeds a category and returns its id
func (b *Backend) AddCategory(name string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	c := &model.Category{ID: b.newID("c"), Name: name}
	b.categories[c.ID] = c
	return c.ID
}

// Points returns a user's current point total
func (b *Backend) Points(userID string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.accounts[userID].Points
}

func (b *Backend) newID(prefix string) string {
	b.nextID++
	return fmt.Sprintf("%s_%d", prefix, b.nextID)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// auth wraps a handler with bearer-token authentication
func (b *Backend) auth(next func(w http.ResponseWriter, r *http.Request, userID string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		b.mu.Lock()
		userID, valid := b.tokens[token]
		b.mu.Unlock()
		if !valid {
			writeError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		next(w, r, userID)
	}
}

func (b *Backend) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	id, ok := b.byUsername[req.Username]
	if !ok || b.accounts[id].password != req.Password {
		writeError(w, http.StatusUnauthorized, "invalid username or password")
		return
	}

	token := b.newID("tok")
	b.tokens[token] = id
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (b *Backend) register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !model.Role(req.Role).Valid() {
		writeError(w, http.StatusBadRequest, "role must be designer or player")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.byUsername[req.Username]; exists {
		writeError(w, http.StatusConflict, "username already exists")
		return
	}

	id := b.addUserLocked(req.Username, req.Password, model.Role(req.Role))
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (b *Backend) profile(w http.ResponseWriter, _ *http.Request, userID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	acct := b.accounts[userID]
	writeJSON(w, http.StatusOK, model.Identity{
		ID:       acct.ID,
		Username: acct.Username,
		Role:     acct.Role,
		Points:   acct.Points,
	})
}

func (b *Backend) updateProfile(w http.ResponseWriter, r *http.Request, userID string) {
	var req struct {
		Username string `json:"username"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" {
		writeError(w, http.StatusBadRequest, "username is required")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	acct := b.accounts[userID]
	delete(b.byUsername, acct.Username)
	acct.Username = req.Username
	b.byUsername[req.Username] = userID

	writeJSON(w, http.StatusOK, model.Identity{
		ID:       acct.ID,
		Username: acct.Username,
		Role:     acct.Role,
		Points:   acct.Points,
	})
}

func (b *Backend) users(w http.ResponseWriter, _ *http.Request, _ string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	users := make([]model.User, 0, len(b.accounts))
	for _, acct := range b.accounts {
		users = append(users, acct.User)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	writeJSON(w, http.StatusOK, users)
}

func (b *Backend) userByID(w http.ResponseWriter, r *http.Request, _ string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	acct, ok := b.accounts[mux.Vars(r)["id"]]
	if !ok {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}
	writeJSON(w, http.StatusOK, acct.User)
}

func (b *Backend) followers(w http.ResponseWriter, _ *http.Request, userID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	users := []model.User{}
	for followerID, followed := range b.following {
		if followed[userID] {
			users = append(users, b.accounts[followerID].User)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	writeJSON(w, http.StatusOK, users)
}

func (b *Backend) followingList(w http.ResponseWriter, _ *http.Request, userID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	users := []model.User{}
	for id := range b.following[userID] {
		users = append(users, b.accounts[id].User)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	writeJSON(w, http.StatusOK, users)
}

func (b *Backend) follow(w http.ResponseWriter, r *http.Request, userID string) {
	vars := mux.Vars(r)

	b.mu.Lock()
	defer b.mu.Unlock()

	target, ok := b.accounts[vars["id"]]
	if !ok || string(target.Role) != vars["role"] {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}

	b.following[userID][target.ID] = true
	writeJSON(w, http.StatusOK, map[string]string{"status": "following"})
}

func (b *Backend) unfollow(w http.ResponseWriter, r *http.Request, userID string) {
	vars := mux.Vars(r)

	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.following[userID], vars["id"])
	writeJSON(w, http.StatusOK, map[string]string{"status": "unfollowed"})
}

func (b *Backend) listQuestions(w http.ResponseWriter, _ *http.Request, userID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	questions := []model.Question{}
	for _, q := range b.questions {
		if q.Creator == "" || q.Creator == userID {
			questions = append(questions, *q)
		}
	}
	sort.Slice(questions, func(i, j int) bool { return questions[i].ID < questions[j].ID })
	writeJSON(w, http.StatusOK, questions)
}

func (b *Backend) createQuestion(w http.ResponseWriter, r *http.Request, userID string) {
	var q model.Question
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	q.ID = b.newID("q")
	q.Creator = userID
	b.questions[q.ID] = &q
	writeJSON(w, http.StatusCreated, q)
}

func (b *Backend) updateQuestion(w http.ResponseWriter, r *http.Request, _ string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	q, ok := b.questions[mux.Vars(r)["id"]]
	if !ok {
		writeError(w, http.StatusNotFound, "question not found")
		return
	}

	var update model.Question
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	q.Text = update.Text
	q.Options = update.Options
	q.CorrectAnswer = update.CorrectAnswer
	q.Difficulty = update.Difficulty
	writeJSON(w, http.StatusOK, *q)
}

func (b *Backend) deleteQuestion(w http.ResponseWriter, r *http.Request, _ string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := mux.Vars(r)["id"]
	if _, ok := b.questions[id]; !ok {
		writeError(w, http.StatusNotFound, "question not found")
		return
	}
	delete(b.questions, id)
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (b *Backend) listCategories(w http.ResponseWriter, _ *http.Request, _ string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	categories := []model.Category{}
	for _, c := range b.categories {
		categories = append(categories, *c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	writeJSON(w, http.StatusOK, categories)
}

func (b *Backend) createCategory(w http.ResponseWriter, r *http.Request, userID string) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	c := &model.Category{ID: b.newID("c"), Name: req.Name, Creator: userID}
	b.categories[c.ID] = c
	writeJSON(w, http.StatusCreated, *c)
}

func (b *Backend) updateCategory(w http.ResponseWriter, r *http.Request, _ string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	c, ok := b.categories[mux.Vars(r)["id"]]
	if !ok {
		writeError(w, http.StatusNotFound, "category not found")
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	c.Name = req.Name
	writeJSON(w, http.StatusOK, *c)
}

func (b *Backend) deleteCategory(w http.ResponseWriter, r *http.Request, _ string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := mux.Vars(r)["id"]
	if _, ok := b.categories[id]; !ok {
		writeError(w, http.StatusNotFound, "category not found")
		return
	}
	delete(b.categories, id)
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// stripAnswer removes the correct answer before handing a question to a player
func stripAnswer(q model.Question) model.Question {
	q.CorrectAnswer = 0
	return q
}

func (b *Backend) playerQuestions(w http.ResponseWriter, r *http.Request, _ string) {
	category := r.URL.Query().Get("category")
	difficulty, _ := strconv.Atoi(r.URL.Query().Get("difficulty"))

	b.mu.Lock()
	defer b.mu.Unlock()

	questions := []model.Question{}
	for _, q := range b.questions {
		if category != "" && (q.Category == nil || q.Category.ID != category) {
			continue
		}
		if difficulty != 0 && q.Difficulty != difficulty {
			continue
		}
		questions = append(questions, stripAnswer(*q))
	}
	sort.Slice(questions, func(i, j int) bool { return questions[i].ID < questions[j].ID })
	writeJSON(w, http.StatusOK, questions)
}

func (b *Backend) randomQuestions(w http.ResponseWriter, _ *http.Request, _ string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	questions := []model.Question{}
	for _, q := range b.questions {
		questions = append(questions, stripAnswer(*q))
	}
	sort.Slice(questions, func(i, j int) bool { return questions[i].ID < questions[j].ID })
	writeJSON(w, http.StatusOK, questions)
}

func (b *Backend) submitAnswer(w http.ResponseWriter, r *http.Request, userID string) {
	var req struct {
		Answer int `json:"answer"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	q, ok := b.questions[mux.Vars(r)["id"]]
	if !ok {
		writeError(w, http.StatusNotFound, "question not found")
		return
	}

	result := model.AnswerResult{Correct: req.Answer == q.CorrectAnswer}
	if result.Correct {
		result.PointsEarned = PointsPerCorrectAnswer
		b.accounts[userID].Points += PointsPerCorrectAnswer
	}
	writeJSON(w, http.StatusOK, result)
}

func (b *Backend) leaderboard(w http.ResponseWriter, _ *http.Request, _ string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	entries := []model.LeaderboardEntry{}
	for _, acct := range b.accounts {
		if acct.Role == model.RolePlayer {
			entries = append(entries, model.LeaderboardEntry{
				Username: acct.Username,
				Points:   acct.Points,
			})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Points != entries[j].Points {
			return entries[i].Points > entries[j].Points
		}
		return entries[i].Username < entries[j].Username
	})
	writeJSON(w, http.StatusOK, entries)
}
