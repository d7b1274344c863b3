// Package seed bulk-initializes every content repository from the bundled
// default content. Used for environment bootstrap.
package seed

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/devfolio/content-service/internal/content"
	"github.com/devfolio/content-service/internal/model"
)

// StepResult records the outcome of one seeding step. The zero value (its
// initial state) reports status "error" with zero counts, which is what a
// step skipped after an earlier failure keeps.
type StepResult struct {
	Status  content.Status `json:"status"`
	Message string         `json:"message,omitempty"`
	Added   int            `json:"added"`
	Deleted int            `json:"deleted"`
}

// Result aggregates per-step outcomes. Success is true only when every step
// completed.
type Result struct {
	Success        bool       `json:"success"`
	SiteSettings   StepResult `json:"siteSettings"`
	AboutMe        StepResult `json:"aboutMe"`
	Skills         StepResult `json:"skills"`
	PortfolioItems StepResult `json:"portfolioItems"`
	NotFoundPage   StepResult `json:"notFoundPage"`
}

// Seeder sequences multi-collection seed writes.
type Seeder struct {
	settings     *content.Settings
	aboutMe      *content.AboutMe
	skills       *content.Skills
	portfolio    *content.Portfolio
	notFoundPage *content.NotFoundPage
}

func New(settings *content.Settings, aboutMe *content.AboutMe, skills *content.Skills, portfolio *content.Portfolio, notFoundPage *content.NotFoundPage) *Seeder {
	return &Seeder{
		settings:     settings,
		aboutMe:      aboutMe,
		skills:       skills,
		portfolio:    portfolio,
		notFoundPage: notFoundPage,
	}
}

// SeedAll runs the fixed sequence: settings, about-me, skills, portfolio,
// 404 page. A failing step aborts the remaining sequence; the partial
// results accumulated so far are returned with Success=false and the
// triggering error in that step's message.
func (s *Seeder) SeedAll(ctx context.Context) Result {
	res := Result{
		SiteSettings:   StepResult{Status: content.StatusError},
		AboutMe:        StepResult{Status: content.StatusError},
		Skills:         StepResult{Status: content.StatusError},
		PortfolioItems: StepResult{Status: content.StatusError},
		NotFoundPage:   StepResult{Status: content.StatusError},
	}

	if err := s.settings.Overwrite(ctx, model.DefaultSiteSettings()); err != nil {
		res.SiteSettings.Message = fmt.Sprintf("seeding site settings: %v", err)
		log.Error().Err(err).Msg("seed aborted at site settings")
		return res
	}
	res.SiteSettings = StepResult{Status: content.StatusSuccess, Message: "Site settings seeded.", Added: 1}

	about := model.DefaultAboutMe()
	ensureEntryIDs(&about)
	if err := s.aboutMe.Overwrite(ctx, about); err != nil {
		res.AboutMe.Message = fmt.Sprintf("seeding about-me: %v", err)
		log.Error().Err(err).Msg("seed aborted at about-me")
		return res
	}
	res.AboutMe = StepResult{Status: content.StatusSuccess, Message: "About section seeded.", Added: 1}

	deleted, added, err := s.skills.ReplaceAll(ctx, model.DefaultSkills())
	if err != nil {
		res.Skills = StepResult{Status: content.StatusError, Message: fmt.Sprintf("seeding skills: %v", err), Added: added, Deleted: deleted}
		log.Error().Err(err).Msg("seed aborted at skills")
		return res
	}
	res.Skills = StepResult{Status: content.StatusSuccess, Message: "Skills seeded.", Added: added, Deleted: deleted}

	deleted, added, err = s.portfolio.ReplaceAll(ctx, model.DefaultPortfolioItems())
	if err != nil {
		res.PortfolioItems = StepResult{Status: content.StatusError, Message: fmt.Sprintf("seeding portfolio: %v", err), Added: added, Deleted: deleted}
		log.Error().Err(err).Msg("seed aborted at portfolio")
		return res
	}
	res.PortfolioItems = StepResult{Status: content.StatusSuccess, Message: "Portfolio seeded.", Added: added, Deleted: deleted}

	if err := s.notFoundPage.Overwrite(ctx, model.DefaultNotFoundPage()); err != nil {
		res.NotFoundPage.Message = fmt.Sprintf("seeding 404 page: %v", err)
		log.Error().Err(err).Msg("seed aborted at 404 page")
		return res
	}
	res.NotFoundPage = StepResult{Status: content.StatusSuccess, Message: "404 page seeded.", Added: 1}

	res.Success = true
	log.Info().Msg("seed completed")
	return res
}

// ensureEntryIDs assigns ids to Experience/Education entries lacking one so
// seeded data satisfies the unique-id invariant.
func ensureEntryIDs(a *model.AboutMe) {
	for i := range a.Experience {
		if a.Experience[i].ID == "" {
			a.Experience[i].ID = "exp-" + uuid.NewString()
		}
	}
	for i := range a.Education {
		if a.Education[i].ID == "" {
			a.Education[i].ID = "edu-" + uuid.NewString()
		}
	}
}
