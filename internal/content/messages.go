package content

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/devfolio/content-service/internal/model"
	"github.com/devfolio/content-service/internal/store"
	"github.com/devfolio/content-service/internal/validate"
)

// Messages is the repository for contact-form submissions. Messages are
// write-once from the public form; the admin side only lists and deletes.
type Messages struct {
	store store.Store
}

func NewMessages(s store.Store) *Messages {
	return &Messages{store: s}
}

// Submit validates and persists a contact message with a server-assigned
// submission time. No revalidation: messages never render on public pages.
func (r *Messages) Submit(ctx context.Context, in validate.ContactInput) SaveResult {
	msg, fe := validate.Contact(in)
	if !fe.Empty() {
		return validationResult(fe)
	}
	if r.store == nil {
		return configErrorResult()
	}
	doc := map[string]any{
		"name":        msg.Name,
		"email":       msg.Email,
		"message":     msg.Message,
		"submittedAt": store.ServerTimestamp,
	}
	id, err := r.store.Add(ctx, store.CollectionMessages, doc)
	if err != nil {
		log.Error().Err(err).Msg("contact message write failed")
		return storeErrorResult(err)
	}
	msg.ID = id
	// Re-read so the returned data carries the store-resolved submission
	// time instead of the sentinel.
	if data, err := r.store.Get(ctx, store.CollectionMessages, id); err != nil {
		log.Warn().Err(err).Str("messageId", id).Msg("re-read after save failed")
	} else {
		msg = decodeMessage(store.Document{ID: id, Data: data})
	}
	return successResult("Thanks for reaching out! I'll get back to you soon.", msg, nil)
}

// List returns all messages, newest first.
func (r *Messages) List(ctx context.Context) []model.ContactMessage {
	if r.store == nil {
		return nil
	}
	docs, err := r.store.List(ctx, store.CollectionMessages, store.Query{OrderBy: "submittedAt", Desc: true})
	if err != nil {
		log.Warn().Err(err).Msg("messages list failed, serving empty")
		return nil
	}
	msgs := make([]model.ContactMessage, 0, len(docs))
	for _, d := range docs {
		msgs = append(msgs, decodeMessage(d))
	}
	return msgs
}

func decodeMessage(d store.Document) model.ContactMessage {
	return model.ContactMessage{
		ID:          d.ID,
		Name:        strField(d.Data, "name", ""),
		Email:       strField(d.Data, "email", ""),
		Message:     strField(d.Data, "message", ""),
		SubmittedAt: store.TimeField(d.Data, "submittedAt"),
	}
}

// Delete removes a message; an unknown id reports not-found.
func (r *Messages) Delete(ctx context.Context, id string) DeleteResult {
	if r.store == nil {
		return deleteUnavailable()
	}
	if err := r.store.Delete(ctx, store.CollectionMessages, id); err != nil {
		if err == model.ErrNotFound {
			return deleteNotFound(fmt.Sprintf("Message %q not found.", id))
		}
		log.Error().Err(err).Str("messageId", id).Msg("message delete failed")
		return deleteError("Failed to delete message: " + err.Error())
	}
	return deleteOK("Message deleted.")
}
