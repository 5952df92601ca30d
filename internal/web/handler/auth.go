package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/soalpich/soalpich-web/internal/gateway"
	"github.com/soalpich/soalpich-web/internal/model"
	"github.com/soalpich/soalpich-web/internal/session"
	"github.com/soalpich/soalpich-web/internal/web/middleware"
	"github.com/soalpich/soalpich-web/internal/web/templates/pages"
)

// AuthHandler handles authentication pages and actions
type AuthHandler struct {
	sessions *session.Manager
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(sessions *session.Manager) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
	}
}

// LoginPage renders the login form
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	if sess.IsAuthenticated() {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	data := pages.LoginData{
		PageData: pageData(r, "ورود"),
		Next:     r.URL.Query().Get("next"),
	}
	render(w, r, pages.Login(data))
}

// Login handles the login form submission
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderLoginError(w, r, "", "فرم ارسالی نامعتبر است")
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")
	next := r.FormValue("next")

	if username == "" || password == "" {
		h.renderLoginError(w, r, username, "نام کاربری و رمز عبور الزامی است")
		return
	}

	sid := middleware.EnsureSessionID(w, r)
	identity, err := h.sessions.Login(r.Context(), sid, username, password)
	if err != nil {
		if errors.Is(err, session.ErrLoginFailed) {
			h.renderLoginError(w, r, username, "نام کاربری یا رمز عبور اشتباه است")
		} else {
			h.renderLoginError(w, r, username, "خطا در برقراری ارتباط با سرور")
		}
		return
	}

	middleware.SetFlash(w, "success", "خوش آمدید، "+identity.Username)
	if next != "" && strings.HasPrefix(next, "/") {
		http.Redirect(w, r, next, http.StatusSeeOther)
	} else {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	}
}

func (h *AuthHandler) renderLoginError(w http.ResponseWriter, r *http.Request, username, message string) {
	data := pages.LoginData{
		PageData: pageData(r, "ورود"),
		Username: username,
		Error:    message,
	}
	render(w, r, pages.Login(data))
}

// RegisterPage renders the registration form
func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	if sess.IsAuthenticated() {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	data := pages.RegisterData{
		PageData:    pageData(r, "ثبت‌نام"),
		Role:        r.URL.Query().Get("type"),
		FieldErrors: make(map[string]string),
	}
	render(w, r, pages.Register(data))
}

// Register handles the registration form submission. Validation happens
// here before any backend call: presence checks, password confirmation
// and role membership.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")
	confirm := r.FormValue("password_confirm")
	role := model.Role(r.FormValue("role"))

	fieldErrors := make(map[string]string)
	if username == "" {
		fieldErrors["username"] = "نام کاربری الزامی است"
	}
	if password == "" {
		fieldErrors["password"] = "رمز عبور الزامی است"
	}
	if password != confirm {
		fieldErrors["password_confirm"] = "رمز عبور و تکرار آن یکسان نیستند"
	}
	if !role.Valid() {
		fieldErrors["role"] = "نقش انتخابی نامعتبر است"
	}

	if len(fieldErrors) > 0 {
		data := pages.RegisterData{
			PageData:    pageData(r, "ثبت‌نام"),
			Username:    username,
			Role:        string(role),
			FieldErrors: fieldErrors,
		}
		render(w, r, pages.Register(data))
		return
	}

	if err := h.sessions.Register(r.Context(), username, password, role); err != nil {
		message := "ثبت‌نام ناموفق بود"
		var apiErr *gateway.APIError
		if errors.As(err, &apiErr) {
			message = apiErr.Message
		}
		data := pages.RegisterData{
			PageData:    pageData(r, "ثبت‌نام"),
			Username:    username,
			Role:        string(role),
			Error:       message,
			FieldErrors: fieldErrors,
		}
		render(w, r, pages.Register(data))
		return
	}

	middleware.SetFlash(w, "success", "ثبت‌نام انجام شد؛ اکنون وارد شوید")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// Logout drops the persisted token and sends the user home
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if sid := middleware.SessionID(r); sid != "" {
		_ = h.sessions.Logout(r.Context(), sid)
	}

	middleware.SetFlash(w, "info", "از حساب خود خارج شدید")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
