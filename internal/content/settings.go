package content

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/devfolio/content-service/internal/model"
	"github.com/devfolio/content-service/internal/store"
	"github.com/devfolio/content-service/internal/validate"
)

// Settings is the repository for the site-settings singleton.
type Settings struct {
	store  store.Store
	notify Notifier
}

// NewSettings creates the repository. A nil store is a valid state: reads
// fall back to defaults and writes report a configuration error.
func NewSettings(s store.Store, n Notifier) *Settings {
	return &Settings{store: s, notify: n}
}

// Get returns the site settings, falling back to bundled defaults for the
// whole document or any missing field. It never fails.
func (r *Settings) Get(ctx context.Context) model.SiteSettings {
	def := model.DefaultSiteSettings()
	if r.store == nil {
		return def
	}
	data, err := r.store.Get(ctx, store.CollectionConfig, store.DocSiteSettings)
	if err != nil {
		if err != model.ErrNotFound {
			log.Warn().Err(err).Str("doc", store.DocSiteSettings).Msg("settings read failed, serving defaults")
		}
		return def
	}
	return decodeSettings(data, def)
}

// Save validates and merge-writes the settings, then re-reads the document
// so the returned data reflects what was actually persisted.
func (r *Settings) Save(ctx context.Context, s model.SiteSettings) SaveResult {
	if fe := validate.SiteSettings(s); !fe.Empty() {
		return validationResult(fe)
	}
	if r.store == nil {
		return configErrorResult()
	}
	if err := r.store.Set(ctx, store.CollectionConfig, store.DocSiteSettings, encodeSettings(s), true); err != nil {
		log.Error().Err(err).Str("doc", store.DocSiteSettings).Msg("settings write failed")
		return storeErrorResult(err)
	}
	saved := r.Get(ctx)
	paths := SettingsPaths()
	notifyRevalidate(ctx, r.notify, paths)
	return successResult("Site settings saved.", saved, paths)
}

// Overwrite replaces the whole singleton, bypassing merge semantics. Used
// by seeding; inputs are trusted bundled content, not form submissions.
func (r *Settings) Overwrite(ctx context.Context, s model.SiteSettings) error {
	if r.store == nil {
		return model.ErrStoreUnavailable
	}
	return r.store.Set(ctx, store.CollectionConfig, store.DocSiteSettings, encodeSettings(s), false)
}

func encodeSettings(s model.SiteSettings) map[string]any {
	doc := map[string]any{
		"siteName":               s.SiteName,
		"defaultMetaDescription": s.DefaultMetaDescription,
		"defaultMetaKeywords":    s.DefaultMetaKeywords,
		"siteOgImageUrl":         s.SiteOGImageURL,
		"maintenanceMode":        s.MaintenanceMode,
	}
	if len(s.PageMetas) > 0 {
		metas := make(map[string]any, len(s.PageMetas))
		for page, meta := range s.PageMetas {
			metas[page] = map[string]any{"title": meta.Title, "description": meta.Description}
		}
		doc["pageMetas"] = metas
	}
	return doc
}

func decodeSettings(data map[string]any, def model.SiteSettings) model.SiteSettings {
	out := model.SiteSettings{
		SiteName:               strField(data, "siteName", def.SiteName),
		DefaultMetaDescription: strField(data, "defaultMetaDescription", def.DefaultMetaDescription),
		DefaultMetaKeywords:    strField(data, "defaultMetaKeywords", def.DefaultMetaKeywords),
		SiteOGImageURL:         strField(data, "siteOgImageUrl", def.SiteOGImageURL),
		MaintenanceMode:        boolField(data, "maintenanceMode", def.MaintenanceMode),
		PageMetas:              def.PageMetas,
	}
	if metas := mapField(data, "pageMetas"); metas != nil {
		out.PageMetas = make(map[string]model.PageMeta, len(metas))
		for page, raw := range metas {
			entry, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			out.PageMetas[page] = model.PageMeta{
				Title:       strField(entry, "title", ""),
				Description: strField(entry, "description", ""),
			}
		}
	}
	return out
}
