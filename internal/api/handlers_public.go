package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/devfolio/content-service/internal/api/respond"
	"github.com/devfolio/content-service/internal/content"
	"github.com/devfolio/content-service/internal/form"
)

// PublicHandler serves the read endpoints behind the public pages plus the
// contact form. Reads never fail: singletons fall back to defaults and
// lists to empty, so the site renders something in every failure mode.
type PublicHandler struct {
	settings      *content.Settings
	about         *content.AboutMe
	skills        *content.Skills
	portfolio     *content.Portfolio
	notFound      *content.NotFoundPage
	announcements *content.Announcements
	messages      *content.Messages
}

func NewPublicHandler(settings *content.Settings, about *content.AboutMe, skills *content.Skills, portfolio *content.Portfolio, notFound *content.NotFoundPage, announcements *content.Announcements, messages *content.Messages) *PublicHandler {
	return &PublicHandler{
		settings:      settings,
		about:         about,
		skills:        skills,
		portfolio:     portfolio,
		notFound:      notFound,
		announcements: announcements,
		messages:      messages,
	}
}

// GetSettings GET /api/site/settings
func (h *PublicHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, h.settings.Get(r.Context()))
}

// GetAbout GET /api/site/about
func (h *PublicHandler) GetAbout(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, h.about.Get(r.Context()))
}

// GetSkills GET /api/site/skills
func (h *PublicHandler) GetSkills(w http.ResponseWriter, r *http.Request) {
	skills := h.skills.List(r.Context())
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"skills": skills, "count": len(skills)})
}

// GetPortfolio GET /api/site/portfolio
func (h *PublicHandler) GetPortfolio(w http.ResponseWriter, r *http.Request) {
	items := h.portfolio.List(r.Context())
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"items": items, "count": len(items)})
}

// GetPortfolioItem GET /api/site/portfolio/{slug}
// Unknown slugs are the one public read that surfaces not-found, so the
// rendering layer can navigate to the 404 page.
func (h *PublicHandler) GetPortfolioItem(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	item, err := h.portfolio.GetBySlug(r.Context(), slug)
	if err != nil {
		respond.WriteNotFound(w, "no project with slug "+slug)
		return
	}
	respond.WriteJSON(w, http.StatusOK, item)
}

// GetNotFoundPage GET /api/site/not-found
func (h *PublicHandler) GetNotFoundPage(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, h.notFound.Get(r.Context()))
}

// GetAnnouncement GET /api/site/announcement
// Returns the newest active announcement; 404 when none is active. The live
// banner otherwise follows the push feed, this endpoint covers first paint.
func (h *PublicHandler) GetAnnouncement(w http.ResponseWriter, r *http.Request) {
	a, err := h.announcements.Active(r.Context())
	if err != nil {
		// Any failure degrades to "no banner", same as model.ErrNotFound.
		respond.WriteNotFound(w, "no active announcement")
		return
	}
	respond.WriteJSON(w, http.StatusOK, a)
}

// SubmitContact POST /api/contact
func (h *PublicHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respond.WriteBadRequest(w, "invalid form payload")
		return
	}
	in := contactInputFromForm(form.FromURLValues(r.PostForm))
	writeSave(w, h.messages.Submit(r.Context(), in))
}
