package content

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/devfolio/content-service/internal/model"
	"github.com/devfolio/content-service/internal/store"
	"github.com/devfolio/content-service/internal/validate"
)

// Announcements is the repository for banner announcements. The write path
// only persists documents; the public banner consumes a push-subscription
// feed downstream, so no path revalidation happens here.
type Announcements struct {
	store store.Store
}

func NewAnnouncements(s store.Store) *Announcements {
	return &Announcements{store: s}
}

// Create persists a new announcement, active by default.
func (r *Announcements) Create(ctx context.Context, message string) SaveResult {
	if fe := validate.Announcement(message); !fe.Empty() {
		return validationResult(fe)
	}
	if r.store == nil {
		return configErrorResult()
	}
	id := uuid.NewString()
	doc := map[string]any{
		"message":   message,
		"isActive":  true,
		"createdAt": store.ServerTimestamp,
	}
	if err := r.store.Set(ctx, store.CollectionAnnouncements, id, doc, false); err != nil {
		log.Error().Err(err).Msg("announcement write failed")
		return storeErrorResult(err)
	}
	data, err := r.store.Get(ctx, store.CollectionAnnouncements, id)
	if err != nil {
		log.Warn().Err(err).Str("announcementId", id).Msg("re-read after save failed")
		return successResult("Announcement published.", model.Announcement{ID: id, Message: message, IsActive: true}, nil)
	}
	return successResult("Announcement published.", decodeAnnouncement(store.Document{ID: id, Data: data}), nil)
}

// List returns all announcements, newest first.
func (r *Announcements) List(ctx context.Context) []model.Announcement {
	if r.store == nil {
		return nil
	}
	docs, err := r.store.List(ctx, store.CollectionAnnouncements, store.Query{OrderBy: "createdAt", Desc: true})
	if err != nil {
		log.Warn().Err(err).Msg("announcements list failed, serving empty")
		return nil
	}
	out := make([]model.Announcement, 0, len(docs))
	for _, d := range docs {
		out = append(out, decodeAnnouncement(d))
	}
	return out
}

// Active returns the most recent active announcement.
func (r *Announcements) Active(ctx context.Context) (model.Announcement, error) {
	if r.store == nil {
		return model.Announcement{}, model.ErrStoreUnavailable
	}
	docs, err := r.store.List(ctx, store.CollectionAnnouncements, store.Query{
		Where:   []store.Condition{{Field: "isActive", Op: "==", Value: true}},
		OrderBy: "createdAt",
		Desc:    true,
		Limit:   1,
	})
	if err != nil {
		return model.Announcement{}, err
	}
	if len(docs) == 0 {
		return model.Announcement{}, model.ErrNotFound
	}
	return decodeAnnouncement(docs[0]), nil
}

// Deactivate clears the active flag; the document is retained.
func (r *Announcements) Deactivate(ctx context.Context, id string) SaveResult {
	if r.store == nil {
		return configErrorResult()
	}
	if _, err := r.store.Get(ctx, store.CollectionAnnouncements, id); err != nil {
		if err == model.ErrNotFound {
			return notFoundResult(fmt.Sprintf("Announcement %q not found.", id))
		}
		return storeErrorResult(err)
	}
	if err := r.store.Set(ctx, store.CollectionAnnouncements, id, map[string]any{"isActive": false}, true); err != nil {
		log.Error().Err(err).Str("announcementId", id).Msg("announcement deactivate failed")
		return storeErrorResult(err)
	}
	return successResult("Announcement deactivated.", nil, nil)
}

// Delete removes an announcement; an unknown id reports not-found.
func (r *Announcements) Delete(ctx context.Context, id string) DeleteResult {
	if r.store == nil {
		return deleteUnavailable()
	}
	if err := r.store.Delete(ctx, store.CollectionAnnouncements, id); err != nil {
		if err == model.ErrNotFound {
			return deleteNotFound(fmt.Sprintf("Announcement %q not found.", id))
		}
		log.Error().Err(err).Str("announcementId", id).Msg("announcement delete failed")
		return deleteError("Failed to delete announcement: " + err.Error())
	}
	return deleteOK("Announcement deleted.")
}

func decodeAnnouncement(d store.Document) model.Announcement {
	return model.Announcement{
		ID:        d.ID,
		Message:   strField(d.Data, "message", ""),
		CreatedAt: store.TimeField(d.Data, "createdAt"),
		IsActive:  boolField(d.Data, "isActive", true),
	}
}
