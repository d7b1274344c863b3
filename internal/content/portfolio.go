package content

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/devfolio/content-service/internal/model"
	"github.com/devfolio/content-service/internal/store"
	"github.com/devfolio/content-service/internal/validate"
)

// Portfolio is the repository for portfolio projects.
type Portfolio struct {
	store  store.Store
	notify Notifier
}

func NewPortfolio(s store.Store, n Notifier) *Portfolio {
	return &Portfolio{store: s, notify: n}
}

// List returns all projects, newest first. Malformed documents degrade to
// per-field defaults instead of failing the list.
func (r *Portfolio) List(ctx context.Context) []model.PortfolioItem {
	if r.store == nil {
		return nil
	}
	docs, err := r.store.List(ctx, store.CollectionPortfolio, store.Query{OrderBy: "createdAt", Desc: true})
	if err != nil {
		log.Warn().Err(err).Msg("portfolio list failed, serving empty")
		return nil
	}
	items := make([]model.PortfolioItem, 0, len(docs))
	for _, d := range docs {
		items = append(items, decodePortfolioItem(d))
	}
	return items
}

// GetBySlug returns the project routed at slug. Slugs are unique at write
// time; if legacy duplicates exist the first match wins.
func (r *Portfolio) GetBySlug(ctx context.Context, slug string) (model.PortfolioItem, error) {
	if r.store == nil {
		return model.PortfolioItem{}, model.ErrStoreUnavailable
	}
	docs, err := r.store.List(ctx, store.CollectionPortfolio, store.Query{
		Where: []store.Condition{{Field: "slug", Op: "==", Value: slug}},
		Limit: 1,
	})
	if err != nil {
		return model.PortfolioItem{}, err
	}
	if len(docs) == 0 {
		return model.PortfolioItem{}, model.ErrNotFound
	}
	return decodePortfolioItem(docs[0]), nil
}

// Get returns a project by store id.
func (r *Portfolio) Get(ctx context.Context, id string) (model.PortfolioItem, error) {
	if r.store == nil {
		return model.PortfolioItem{}, model.ErrStoreUnavailable
	}
	data, err := r.store.Get(ctx, store.CollectionPortfolio, id)
	if err != nil {
		return model.PortfolioItem{}, err
	}
	return decodePortfolioItem(store.Document{ID: id, Data: data}), nil
}

// Save validates and persists a project. Create assigns a store id and
// stamps createdAt; update preserves createdAt and restamps updatedAt. The
// written document is re-fetched so returned timestamps are store-resolved,
// not the in-memory sentinel. A slug already used by a different project is
// rejected as a field error before any write.
func (r *Portfolio) Save(ctx context.Context, in validate.PortfolioInput) SaveResult {
	item, fe := validate.Portfolio(in)
	if !fe.Empty() {
		return validationResult(fe)
	}
	if r.store == nil {
		return configErrorResult()
	}

	if taken, err := r.slugTaken(ctx, item.Slug, item.ID); err != nil {
		log.Error().Err(err).Str("slug", item.Slug).Msg("slug lookup failed")
		return storeErrorResult(err)
	} else if taken {
		fe.Add("slug", fmt.Sprintf("slug %q is already in use", item.Slug))
		return validationResult(fe)
	}

	doc := encodePortfolioItem(item)
	doc["updatedAt"] = store.ServerTimestamp

	id := item.ID
	if id == "" {
		doc["createdAt"] = store.ServerTimestamp
		newID, err := r.store.Add(ctx, store.CollectionPortfolio, doc)
		if err != nil {
			log.Error().Err(err).Str("slug", item.Slug).Msg("portfolio create failed")
			return storeErrorResult(err)
		}
		id = newID
	} else {
		if _, err := r.store.Get(ctx, store.CollectionPortfolio, id); err != nil {
			if err == model.ErrNotFound {
				return notFoundResult(fmt.Sprintf("Project %q not found.", id))
			}
			return storeErrorResult(err)
		}
		// Merge write: createdAt is absent from doc, so it is preserved.
		if err := r.store.Set(ctx, store.CollectionPortfolio, id, doc, true); err != nil {
			log.Error().Err(err).Str("projectId", id).Msg("portfolio update failed")
			return storeErrorResult(err)
		}
	}

	saved, err := r.Get(ctx, id)
	if err != nil {
		log.Warn().Err(err).Str("projectId", id).Msg("re-read after save failed")
		item.ID = id
		saved = item
	}
	paths := PortfolioPaths(saved.Slug)
	notifyRevalidate(ctx, r.notify, paths)
	msg := "Project updated."
	if item.ID == "" {
		msg = "Project created."
	}
	return successResult(msg, saved, paths)
}

// Delete removes a project; deleting an unknown id reports not-found.
func (r *Portfolio) Delete(ctx context.Context, id string) DeleteResult {
	if r.store == nil {
		return deleteUnavailable()
	}
	item, err := r.Get(ctx, id)
	if err != nil {
		if err == model.ErrNotFound {
			return deleteNotFound(fmt.Sprintf("Project %q not found.", id))
		}
		return deleteError("Failed to delete project: " + err.Error())
	}
	if err := r.store.Delete(ctx, store.CollectionPortfolio, id); err != nil {
		if err == model.ErrNotFound {
			return deleteNotFound(fmt.Sprintf("Project %q not found.", id))
		}
		log.Error().Err(err).Str("projectId", id).Msg("portfolio delete failed")
		return deleteError("Failed to delete project: " + err.Error())
	}
	notifyRevalidate(ctx, r.notify, PortfolioPaths(item.Slug))
	return deleteOK("Project deleted.")
}

// ReplaceAll clears the collection in one batch, then inserts items with
// store-assigned ids and server-stamped timestamps. Used by seeding.
func (r *Portfolio) ReplaceAll(ctx context.Context, items []model.PortfolioItem) (deleted, added int, err error) {
	if r.store == nil {
		return 0, 0, model.ErrStoreUnavailable
	}
	existing, err := r.store.List(ctx, store.CollectionPortfolio, store.Query{})
	if err != nil {
		return 0, 0, err
	}
	if len(existing) > 0 {
		clear := make([]store.WriteOp, 0, len(existing))
		for _, d := range existing {
			clear = append(clear, store.WriteOp{Kind: store.WriteDelete, Collection: store.CollectionPortfolio, ID: d.ID})
		}
		if err := r.store.BatchWrite(ctx, clear); err != nil {
			return 0, 0, err
		}
		deleted = len(existing)
	}

	for _, item := range items {
		doc := encodePortfolioItem(item)
		doc["createdAt"] = store.ServerTimestamp
		doc["updatedAt"] = store.ServerTimestamp
		if _, err := r.store.Add(ctx, store.CollectionPortfolio, doc); err != nil {
			return deleted, added, err
		}
		added++
	}
	return deleted, added, nil
}

func (r *Portfolio) slugTaken(ctx context.Context, slug, selfID string) (bool, error) {
	docs, err := r.store.List(ctx, store.CollectionPortfolio, store.Query{
		Where: []store.Condition{{Field: "slug", Op: "==", Value: slug}},
	})
	if err != nil {
		return false, err
	}
	for _, d := range docs {
		if d.ID != selfID {
			return true, nil
		}
	}
	return false, nil
}

func encodePortfolioItem(item model.PortfolioItem) map[string]any {
	images := make([]any, 0, len(item.Images))
	for _, img := range item.Images {
		images = append(images, img)
	}
	tags := make([]any, 0, len(item.Tags))
	for _, t := range item.Tags {
		tags = append(tags, t)
	}
	return map[string]any{
		"title":           item.Title,
		"description":     item.Description,
		"longDescription": item.LongDescription,
		"images":          images,
		"tags":            tags,
		"liveUrl":         item.LiveURL,
		"repoUrl":         item.RepoURL,
		"slug":            item.Slug,
		"dataAiHint":      item.ImageHint,
		"readmeContent":   item.ReadmeContent,
	}
}

func decodePortfolioItem(d store.Document) model.PortfolioItem {
	return model.PortfolioItem{
		ID:              d.ID,
		Title:           strField(d.Data, "title", "Untitled Project"),
		Description:     strField(d.Data, "description", ""),
		LongDescription: strField(d.Data, "longDescription", ""),
		Images:          strSliceField(d.Data, "images"),
		Tags:            strSliceField(d.Data, "tags"),
		LiveURL:         strField(d.Data, "liveUrl", ""),
		RepoURL:         strField(d.Data, "repoUrl", ""),
		Slug:            strField(d.Data, "slug", d.ID),
		ImageHint:       strField(d.Data, "dataAiHint", ""),
		ReadmeContent:   strField(d.Data, "readmeContent", ""),
		CreatedAt:       store.TimeField(d.Data, "createdAt"),
		UpdatedAt:       store.TimeField(d.Data, "updatedAt"),
	}
}
