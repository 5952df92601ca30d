package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/soalpich/soalpich-web/internal/gateway"
	"github.com/soalpich/soalpich-web/internal/model"
	"github.com/soalpich/soalpich-web/internal/web/middleware"
	"github.com/soalpich/soalpich-web/internal/web/templates/pages"
)

// UsersHandler handles the user directory and follow actions
type UsersHandler struct {
	gateway *gateway.Client
}

// NewUsersHandler creates a new UsersHandler
func NewUsersHandler(gw *gateway.Client) *UsersHandler {
	return &UsersHandler{
		gateway: gw,
	}
}

// List renders the user directory. The follow set is re-fetched on every
// load so the buttons reflect the backend's state, not a cached one.
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())

	users, err := h.gateway.Users(r.Context(), sess.Token)
	if err != nil {
		middleware.SetFlash(w, "error", "خطا در دریافت لیست کاربران")
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	following, err := h.gateway.Following(r.Context(), sess.Token)
	if err != nil {
		middleware.SetFlash(w, "error", "خطا در دریافت لیست دنبال‌شده‌ها")
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	followingSet := make(map[string]bool, len(following))
	for _, user := range following {
		followingSet[user.ID] = true
	}

	// Hide the viewer's own row
	visible := make([]model.User, 0, len(users))
	for _, user := range users {
		if sess.Identity != nil && user.ID == sess.Identity.ID {
			continue
		}
		visible = append(visible, user)
	}

	data := pages.UsersData{
		PageData:  pageData(r, "لیست کاربران"),
		Users:     visible,
		Following: followingSet,
	}
	render(w, r, pages.Users(data))
}

// Follow starts following a user, then reloads the directory
func (h *UsersHandler) Follow(w http.ResponseWriter, r *http.Request) {
	h.setFollowing(w, r, true)
}

// Unfollow stops following a user, then reloads the directory
func (h *UsersHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	h.setFollowing(w, r, false)
}

func (h *UsersHandler) setFollowing(w http.ResponseWriter, r *http.Request, follow bool) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	sess := middleware.GetSession(r.Context())
	id := mux.Vars(r)["id"]
	role := model.Role(r.FormValue("role"))

	if !role.Valid() {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	var err error
	switch {
	case follow && role == model.RoleDesigner:
		err = h.gateway.FollowDesigner(r.Context(), sess.Token, id)
	case follow:
		err = h.gateway.FollowPlayer(r.Context(), sess.Token, id)
	case role == model.RoleDesigner:
		err = h.gateway.UnfollowDesigner(r.Context(), sess.Token, id)
	default:
		err = h.gateway.UnfollowPlayer(r.Context(), sess.Token, id)
	}

	if err != nil {
		fallback := "دنبال کردن ناموفق بود"
		if !follow {
			fallback = "لغو دنبال کردن ناموفق بود"
		}
		middleware.SetFlash(w, "error", apiErrorMessage(err, fallback))
	}

	http.Redirect(w, r, "/users", http.StatusSeeOther)
}
