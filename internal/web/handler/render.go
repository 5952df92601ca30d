package handler

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/soalpich/soalpich-web/internal/web/middleware"
	"github.com/soalpich/soalpich-web/internal/web/templates/layout"
)

// render writes a component as the response body
func render(w http.ResponseWriter, r *http.Request, component templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := component.Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// pageData assembles the state every page shares from the request context
func pageData(r *http.Request, title string) layout.PageData {
	sess := middleware.GetSession(r.Context())
	return layout.PageData{
		Title:    title,
		Identity: sess.Identity,
		Flash:    middleware.GetFlash(r.Context()),
	}
}
