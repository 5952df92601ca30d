package handler

import (
	"net/http"

	"github.com/soalpich/soalpich-web/internal/web/templates/pages"
)

// HomeHandler handles the landing page
type HomeHandler struct{}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// Home renders the landing page
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	data := pages.HomeData{
		PageData: pageData(r, "سوال‌پیچ"),
	}
	render(w, r, pages.Home(data))
}
