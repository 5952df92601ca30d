package handler

import (
	"net/http"
	"strings"

	"github.com/soalpich/soalpich-web/internal/gateway"
	"github.com/soalpich/soalpich-web/internal/web/middleware"
	"github.com/soalpich/soalpich-web/internal/web/templates/pages"
)

// ProfileHandler handles the profile page and updates
type ProfileHandler struct {
	gateway *gateway.Client
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(gw *gateway.Client) *ProfileHandler {
	return &ProfileHandler{
		gateway: gw,
	}
}

// View renders the profile with the follower and following lists
func (h *ProfileHandler) View(w http.ResponseWriter, r *http.Request) {
	h.renderProfile(w, r, "")
}

func (h *ProfileHandler) renderProfile(w http.ResponseWriter, r *http.Request, formError string) {
	sess := middleware.GetSession(r.Context())

	followers, err := h.gateway.Followers(r.Context(), sess.Token)
	if err != nil {
		middleware.SetFlash(w, "error", "خطا در دریافت دنبال‌کنندگان")
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	following, err := h.gateway.Following(r.Context(), sess.Token)
	if err != nil {
		middleware.SetFlash(w, "error", "خطا در دریافت دنبال‌شده‌ها")
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	data := pages.ProfileData{
		PageData:  pageData(r, "پروفایل"),
		Followers: followers,
		Following: following,
		Error:     formError,
	}
	render(w, r, pages.Profile(data))
}

// Update changes the username. The next page load re-fetches the
// identity, so the new name shows up without any client-side state.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	if username == "" {
		h.renderProfile(w, r, "نام کاربری الزامی است")
		return
	}

	sess := middleware.GetSession(r.Context())
	if _, err := h.gateway.UpdateProfile(r.Context(), sess.Token, username); err != nil {
		h.renderProfile(w, r, apiErrorMessage(err, "به‌روزرسانی پروفایل ناموفق بود"))
		return
	}

	middleware.SetFlash(w, "success", "پروفایل به‌روزرسانی شد")
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}
