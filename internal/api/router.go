package api

import (
	"github.com/gorilla/mux"

	"github.com/devfolio/content-service/internal/api/recovery"
	"github.com/devfolio/content-service/internal/config"
	"github.com/devfolio/content-service/internal/content"
	"github.com/devfolio/content-service/internal/seed"
	"github.com/devfolio/content-service/internal/store"
)

// NewRouter wires repositories and handlers into the HTTP surface. st may
// be nil when the store is not configured; every endpoint degrades per the
// repository contracts instead of failing to start.
func NewRouter(cfg *config.Config, st store.Store, notifier content.Notifier) *mux.Router {
	router := mux.NewRouter()
	router.Use(recovery.Middleware)

	settings := content.NewSettings(st, notifier)
	about := content.NewAboutMe(st, notifier)
	skills := content.NewSkills(st, notifier)
	portfolio := content.NewPortfolio(st, notifier)
	notFound := content.NewNotFoundPage(st, notifier)
	announcements := content.NewAnnouncements(st)
	messages := content.NewMessages(st)
	seeder := seed.New(settings, about, skills, portfolio, notFound)

	public := NewPublicHandler(settings, about, skills, portfolio, notFound, announcements, messages)
	admin := NewAdminHandler(settings, about, skills, portfolio, notFound, announcements, messages, seeder)
	health := NewHealthHandler(st)

	// Health endpoint
	router.HandleFunc("/api/health", health.CheckHealth).Methods("GET")

	// Public site endpoints
	router.HandleFunc("/api/site/settings", public.GetSettings).Methods("GET")
	router.HandleFunc("/api/site/about", public.GetAbout).Methods("GET")
	router.HandleFunc("/api/site/skills", public.GetSkills).Methods("GET")
	router.HandleFunc("/api/site/portfolio", public.GetPortfolio).Methods("GET")
	router.HandleFunc("/api/site/portfolio/{slug}", public.GetPortfolioItem).Methods("GET")
	router.HandleFunc("/api/site/not-found", public.GetNotFoundPage).Methods("GET")
	router.HandleFunc("/api/site/announcement", public.GetAnnouncement).Methods("GET")
	router.HandleFunc("/api/contact", public.SubmitContact).Methods("POST")

	// Admin endpoints, guarded by the credential check
	adminRouter := router.PathPrefix("/api/admin").Subrouter()
	adminRouter.Use(AdminAuth(cfg))
	adminRouter.HandleFunc("/settings", admin.SaveSettings).Methods("PUT", "POST")
	adminRouter.HandleFunc("/about", admin.SaveAbout).Methods("PUT", "POST")
	adminRouter.HandleFunc("/not-found", admin.SaveNotFoundPage).Methods("PUT", "POST")
	adminRouter.HandleFunc("/skills", admin.SaveSkill).Methods("POST")
	adminRouter.HandleFunc("/skills/options", admin.SkillOptions).Methods("GET")
	adminRouter.HandleFunc("/skills/{id}", admin.DeleteSkill).Methods("DELETE")
	adminRouter.HandleFunc("/portfolio", admin.SavePortfolioItem).Methods("POST")
	adminRouter.HandleFunc("/portfolio/{id}", admin.DeletePortfolioItem).Methods("DELETE")
	adminRouter.HandleFunc("/messages", admin.ListMessages).Methods("GET")
	adminRouter.HandleFunc("/messages/{id}", admin.DeleteMessage).Methods("DELETE")
	adminRouter.HandleFunc("/announcements", admin.CreateAnnouncement).Methods("POST")
	adminRouter.HandleFunc("/announcements", admin.ListAnnouncements).Methods("GET")
	adminRouter.HandleFunc("/announcements/{id}/deactivate", admin.DeactivateAnnouncement).Methods("POST")
	adminRouter.HandleFunc("/announcements/{id}", admin.DeleteAnnouncement).Methods("DELETE")
	adminRouter.HandleFunc("/seed", admin.Seed).Methods("POST")

	return router
}
