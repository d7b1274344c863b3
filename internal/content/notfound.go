package content

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/devfolio/content-service/internal/model"
	"github.com/devfolio/content-service/internal/store"
	"github.com/devfolio/content-service/internal/validate"
)

// NotFoundPage is the repository for the 404-page copy singleton.
type NotFoundPage struct {
	store  store.Store
	notify Notifier
}

func NewNotFoundPage(s store.Store, n Notifier) *NotFoundPage {
	return &NotFoundPage{store: s, notify: n}
}

// Get returns the 404-page copy with per-field fallback to defaults.
func (r *NotFoundPage) Get(ctx context.Context) model.NotFoundPage {
	def := model.DefaultNotFoundPage()
	if r.store == nil {
		return def
	}
	data, err := r.store.Get(ctx, store.CollectionConfig, store.DocNotFoundPage)
	if err != nil {
		if err != model.ErrNotFound {
			log.Warn().Err(err).Str("doc", store.DocNotFoundPage).Msg("404-page read failed, serving defaults")
		}
		return def
	}
	return model.NotFoundPage{
		ImageSrc:   strField(data, "imageSrc", def.ImageSrc),
		ImageHint:  strField(data, "dataAiHint", def.ImageHint),
		Heading:    strField(data, "heading", def.Heading),
		Message:    strField(data, "message", def.Message),
		ButtonText: strField(data, "buttonText", def.ButtonText),
	}
}

// Overwrite replaces the whole copy document. Used by seeding.
func (r *NotFoundPage) Overwrite(ctx context.Context, p model.NotFoundPage) error {
	if r.store == nil {
		return model.ErrStoreUnavailable
	}
	doc := map[string]any{
		"imageSrc":   p.ImageSrc,
		"dataAiHint": p.ImageHint,
		"heading":    p.Heading,
		"message":    p.Message,
		"buttonText": p.ButtonText,
	}
	return r.store.Set(ctx, store.CollectionConfig, store.DocNotFoundPage, doc, false)
}

// Save validates and merge-writes the 404-page copy.
func (r *NotFoundPage) Save(ctx context.Context, p model.NotFoundPage) SaveResult {
	if fe := validate.NotFoundPage(p); !fe.Empty() {
		return validationResult(fe)
	}
	if r.store == nil {
		return configErrorResult()
	}
	doc := map[string]any{
		"imageSrc":   p.ImageSrc,
		"dataAiHint": p.ImageHint,
		"heading":    p.Heading,
		"message":    p.Message,
		"buttonText": p.ButtonText,
	}
	if err := r.store.Set(ctx, store.CollectionConfig, store.DocNotFoundPage, doc, true); err != nil {
		log.Error().Err(err).Str("doc", store.DocNotFoundPage).Msg("404-page write failed")
		return storeErrorResult(err)
	}
	saved := r.Get(ctx)
	paths := NotFoundPaths()
	notifyRevalidate(ctx, r.notify, paths)
	return successResult("404 page saved.", saved, paths)
}
