package content

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/devfolio/content-service/internal/model"
	"github.com/devfolio/content-service/internal/store"
	"github.com/devfolio/content-service/internal/validate"
)

// AboutMe is the repository for the profile singleton.
type AboutMe struct {
	store  store.Store
	notify Notifier
}

func NewAboutMe(s store.Store, n Notifier) *AboutMe {
	return &AboutMe{store: s, notify: n}
}

// Get returns the profile, falling back to bundled defaults. Experience and
// Education keep stored order; entries are never re-sorted.
func (r *AboutMe) Get(ctx context.Context) model.AboutMe {
	def := model.DefaultAboutMe()
	if r.store == nil {
		return def
	}
	data, err := r.store.Get(ctx, store.CollectionConfig, store.DocAboutMe)
	if err != nil {
		if err != model.ErrNotFound {
			log.Warn().Err(err).Str("doc", store.DocAboutMe).Msg("about-me read failed, serving defaults")
		}
		return def
	}
	return decodeAboutMe(data, def)
}

// Save validates and writes the profile. Callers are responsible for
// dropping incomplete Experience/Education entries beforehand (the form
// layer does); entries that survive must be fully populated with unique ids.
func (r *AboutMe) Save(ctx context.Context, a model.AboutMe) SaveResult {
	if fe := validate.AboutMe(a); !fe.Empty() {
		return validationResult(fe)
	}
	if r.store == nil {
		return configErrorResult()
	}
	// Experience and Education are written whole, not merged element-wise,
	// so removed entries actually disappear.
	if err := r.store.Set(ctx, store.CollectionConfig, store.DocAboutMe, encodeAboutMe(a), true); err != nil {
		log.Error().Err(err).Str("doc", store.DocAboutMe).Msg("about-me write failed")
		return storeErrorResult(err)
	}
	saved := r.Get(ctx)
	paths := AboutPaths()
	notifyRevalidate(ctx, r.notify, paths)
	return successResult("About section saved.", saved, paths)
}

// Overwrite replaces the whole profile document. Used by seeding.
func (r *AboutMe) Overwrite(ctx context.Context, a model.AboutMe) error {
	if r.store == nil {
		return model.ErrStoreUnavailable
	}
	return r.store.Set(ctx, store.CollectionConfig, store.DocAboutMe, encodeAboutMe(a), false)
}

func encodeAboutMe(a model.AboutMe) map[string]any {
	experience := make([]any, 0, len(a.Experience))
	for _, e := range a.Experience {
		experience = append(experience, map[string]any{
			"id":          e.ID,
			"role":        e.Role,
			"company":     e.Company,
			"period":      e.Period,
			"description": e.Description,
		})
	}
	education := make([]any, 0, len(a.Education))
	for _, e := range a.Education {
		education = append(education, map[string]any{
			"id":          e.ID,
			"degree":      e.Degree,
			"institution": e.Institution,
			"period":      e.Period,
		})
	}
	return map[string]any{
		"name":            a.Name,
		"title":           a.Title,
		"bio":             a.Bio,
		"profileImageUrl": a.ProfileImageURL,
		"dataAiHint":      a.ImageHint,
		"experience":      experience,
		"education":       education,
		"contact": map[string]any{
			"email":    a.Contact.Email,
			"linkedin": a.Contact.LinkedIn,
			"github":   a.Contact.GitHub,
		},
	}
}

func decodeAboutMe(data map[string]any, def model.AboutMe) model.AboutMe {
	out := model.AboutMe{
		Name:            strField(data, "name", def.Name),
		Title:           strField(data, "title", def.Title),
		Bio:             strField(data, "bio", def.Bio),
		ProfileImageURL: strField(data, "profileImageUrl", def.ProfileImageURL),
		ImageHint:       strField(data, "dataAiHint", def.ImageHint),
		Experience:      def.Experience,
		Education:       def.Education,
		Contact:         def.Contact,
	}
	if raw, ok := data["experience"]; ok && raw != nil {
		entries := sliceField(data, "experience")
		out.Experience = make([]model.Experience, 0, len(entries))
		for _, e := range entries {
			out.Experience = append(out.Experience, model.Experience{
				ID:          strField(e, "id", ""),
				Role:        strField(e, "role", ""),
				Company:     strField(e, "company", ""),
				Period:      strField(e, "period", ""),
				Description: strField(e, "description", ""),
			})
		}
	}
	if raw, ok := data["education"]; ok && raw != nil {
		entries := sliceField(data, "education")
		out.Education = make([]model.Education, 0, len(entries))
		for _, e := range entries {
			out.Education = append(out.Education, model.Education{
				ID:          strField(e, "id", ""),
				Degree:      strField(e, "degree", ""),
				Institution: strField(e, "institution", ""),
				Period:      strField(e, "period", ""),
			})
		}
	}
	if contact := mapField(data, "contact"); contact != nil {
		out.Contact = model.ContactLinks{
			Email:    strField(contact, "email", ""),
			LinkedIn: strField(contact, "linkedin", ""),
			GitHub:   strField(contact, "github", ""),
		}
	}
	return out
}
