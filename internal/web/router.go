package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/soalpich/soalpich-web/internal/gateway"
	appmiddleware "github.com/soalpich/soalpich-web/internal/middleware"
	"github.com/soalpich/soalpich-web/internal/session"
	"github.com/soalpich/soalpich-web/internal/web/handler"
	"github.com/soalpich/soalpich-web/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger    *slog.Logger
	Sessions  *session.Manager
	Gateway   *gateway.Client
	StaticDir string // Path to static files directory
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create middleware
	loggingMiddleware := appmiddleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	flashMiddleware := middleware.Flash()
	authMiddleware := middleware.Auth(cfg.Sessions)
	optionalAuthMiddleware := middleware.OptionalAuth(cfg.Sessions)

	// Apply global middleware to all routes
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	// Create handlers
	homeHandler := handler.NewHomeHandler()
	authHandler := handler.NewAuthHandler(cfg.Sessions)
	dashboardHandler := handler.NewDashboardHandler()
	designerHandler := handler.NewDesignerHandler(cfg.Gateway)
	playerHandler := handler.NewPlayerHandler(cfg.Gateway)
	usersHandler := handler.NewUsersHandler(cfg.Gateway)
	profileHandler := handler.NewProfileHandler(cfg.Gateway)

	// Static files
	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	// Public routes (optional auth for showing the identity in the nav)
	public := r.NewRoute().Subrouter()
	public.Use(flashMiddleware)
	public.Use(optionalAuthMiddleware)
	public.HandleFunc("/", homeHandler.Home).Methods(http.MethodGet)
	public.HandleFunc("/login", authHandler.LoginPage).Methods(http.MethodGet)
	public.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)
	public.HandleFunc("/register", authHandler.RegisterPage).Methods(http.MethodGet)
	public.HandleFunc("/register", authHandler.Register).Methods(http.MethodPost)
	public.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)

	// Protected routes (require auth)
	protected := r.NewRoute().Subrouter()
	protected.Use(flashMiddleware)
	protected.Use(authMiddleware)

	protected.HandleFunc("/dashboard", dashboardHandler.View).Methods(http.MethodGet)

	// Designer routes
	protected.HandleFunc("/designer/questions", designerHandler.Questions).Methods(http.MethodGet)
	protected.HandleFunc("/designer/questions", designerHandler.CreateQuestion).Methods(http.MethodPost)
	protected.HandleFunc("/designer/questions/{id}/edit", designerHandler.EditQuestion).Methods(http.MethodGet)
	protected.HandleFunc("/designer/questions/{id}", designerHandler.UpdateQuestion).Methods(http.MethodPost)
	protected.HandleFunc("/designer/questions/{id}/delete", designerHandler.DeleteQuestion).Methods(http.MethodPost)
	protected.HandleFunc("/designer/categories", designerHandler.Categories).Methods(http.MethodGet)
	protected.HandleFunc("/designer/categories", designerHandler.CreateCategory).Methods(http.MethodPost)
	protected.HandleFunc("/designer/categories/{id}", designerHandler.UpdateCategory).Methods(http.MethodPost)
	protected.HandleFunc("/designer/categories/{id}/delete", designerHandler.DeleteCategory).Methods(http.MethodPost)

	// Player routes
	protected.HandleFunc("/player/quiz", playerHandler.Quiz).Methods(http.MethodGet)
	protected.HandleFunc("/player/quiz/{id}/submit", playerHandler.Submit).Methods(http.MethodPost)
	protected.HandleFunc("/player/leaderboard", playerHandler.Leaderboard).Methods(http.MethodGet)

	// Social routes
	protected.HandleFunc("/users", usersHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/users/{id}/follow", usersHandler.Follow).Methods(http.MethodPost)
	protected.HandleFunc("/users/{id}/unfollow", usersHandler.Unfollow).Methods(http.MethodPost)
	protected.HandleFunc("/profile", profileHandler.View).Methods(http.MethodGet)
	protected.HandleFunc("/profile", profileHandler.Update).Methods(http.MethodPost)

	return r
}
