package handler

import (
	"net/http"

	"github.com/soalpich/soalpich-web/internal/web/templates/pages"
)

// DashboardHandler handles the post-login landing page
type DashboardHandler struct{}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

// View renders the role-aware dashboard
func (h *DashboardHandler) View(w http.ResponseWriter, r *http.Request) {
	data := pages.DashboardData{
		PageData: pageData(r, "داشبورد"),
	}
	render(w, r, pages.Dashboard(data))
}
