package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/devfolio/content-service/internal/api/respond"
	"github.com/devfolio/content-service/internal/content"
	"github.com/devfolio/content-service/internal/form"
	"github.com/devfolio/content-service/internal/model"
	"github.com/devfolio/content-service/internal/seed"
)

// AdminHandler serves the admin-panel endpoints: every mutating operation
// plus the message inbox and seeding.
type AdminHandler struct {
	settings      *content.Settings
	about         *content.AboutMe
	skills        *content.Skills
	portfolio     *content.Portfolio
	notFound      *content.NotFoundPage
	announcements *content.Announcements
	messages      *content.Messages
	seeder        *seed.Seeder
}

func NewAdminHandler(settings *content.Settings, about *content.AboutMe, skills *content.Skills, portfolio *content.Portfolio, notFound *content.NotFoundPage, announcements *content.Announcements, messages *content.Messages, seeder *seed.Seeder) *AdminHandler {
	return &AdminHandler{
		settings:      settings,
		about:         about,
		skills:        skills,
		portfolio:     portfolio,
		notFound:      notFound,
		announcements: announcements,
		messages:      messages,
		seeder:        seeder,
	}
}

func parseForm(w http.ResponseWriter, r *http.Request) (form.Values, bool) {
	if err := r.ParseForm(); err != nil {
		respond.WriteBadRequest(w, "invalid form payload")
		return nil, false
	}
	return form.FromURLValues(r.PostForm), true
}

// SaveSettings PUT /api/admin/settings
func (h *AdminHandler) SaveSettings(w http.ResponseWriter, r *http.Request) {
	v, ok := parseForm(w, r)
	if !ok {
		return
	}
	writeSave(w, h.settings.Save(r.Context(), settingsFromForm(v)))
}

// SaveAbout PUT /api/admin/about
func (h *AdminHandler) SaveAbout(w http.ResponseWriter, r *http.Request) {
	v, ok := parseForm(w, r)
	if !ok {
		return
	}
	writeSave(w, h.about.Save(r.Context(), aboutMeFromForm(v)))
}

// SaveNotFoundPage PUT /api/admin/not-found
func (h *AdminHandler) SaveNotFoundPage(w http.ResponseWriter, r *http.Request) {
	v, ok := parseForm(w, r)
	if !ok {
		return
	}
	writeSave(w, h.notFound.Save(r.Context(), notFoundPageFromForm(v)))
}

// SkillOptions GET /api/admin/skills/options
// The skill form is a closed pick list; this feeds its name and category
// dropdowns.
func (h *AdminHandler) SkillOptions(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"names":      model.SkillNames(),
		"categories": model.SkillCategories,
	})
}

// SaveSkill POST /api/admin/skills — creates when the form carries no id.
func (h *AdminHandler) SaveSkill(w http.ResponseWriter, r *http.Request) {
	v, ok := parseForm(w, r)
	if !ok {
		return
	}
	writeSave(w, h.skills.Save(r.Context(), skillInputFromForm(v)))
}

// DeleteSkill DELETE /api/admin/skills/{id}
func (h *AdminHandler) DeleteSkill(w http.ResponseWriter, r *http.Request) {
	writeDelete(w, h.skills.Delete(r.Context(), mux.Vars(r)["id"]))
}

// SavePortfolioItem POST /api/admin/portfolio — creates when the form
// carries no id.
func (h *AdminHandler) SavePortfolioItem(w http.ResponseWriter, r *http.Request) {
	v, ok := parseForm(w, r)
	if !ok {
		return
	}
	writeSave(w, h.portfolio.Save(r.Context(), portfolioInputFromForm(v)))
}

// DeletePortfolioItem DELETE /api/admin/portfolio/{id}
func (h *AdminHandler) DeletePortfolioItem(w http.ResponseWriter, r *http.Request) {
	writeDelete(w, h.portfolio.Delete(r.Context(), mux.Vars(r)["id"]))
}

// ListMessages GET /api/admin/messages
func (h *AdminHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	msgs := h.messages.List(r.Context())
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"messages": msgs, "count": len(msgs)})
}

// DeleteMessage DELETE /api/admin/messages/{id}
func (h *AdminHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	writeDelete(w, h.messages.Delete(r.Context(), mux.Vars(r)["id"]))
}

// CreateAnnouncement POST /api/admin/announcements
func (h *AdminHandler) CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	v, ok := parseForm(w, r)
	if !ok {
		return
	}
	writeSave(w, h.announcements.Create(r.Context(), v.Get("message")))
}

// ListAnnouncements GET /api/admin/announcements
func (h *AdminHandler) ListAnnouncements(w http.ResponseWriter, r *http.Request) {
	all := h.announcements.List(r.Context())
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"announcements": all, "count": len(all)})
}

// DeactivateAnnouncement POST /api/admin/announcements/{id}/deactivate
func (h *AdminHandler) DeactivateAnnouncement(w http.ResponseWriter, r *http.Request) {
	writeSave(w, h.announcements.Deactivate(r.Context(), mux.Vars(r)["id"]))
}

// DeleteAnnouncement DELETE /api/admin/announcements/{id}
func (h *AdminHandler) DeleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	writeDelete(w, h.announcements.Delete(r.Context(), mux.Vars(r)["id"]))
}

// Seed POST /api/admin/seed
func (h *AdminHandler) Seed(w http.ResponseWriter, r *http.Request) {
	res := h.seeder.SeedAll(r.Context())
	code := http.StatusOK
	if !res.Success {
		code = http.StatusInternalServerError
	}
	respond.WriteJSON(w, code, res)
}
