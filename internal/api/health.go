package api

import (
	"net/http"

	"github.com/devfolio/content-service/internal/api/respond"
	"github.com/devfolio/content-service/internal/model"
	"github.com/devfolio/content-service/internal/store"
)

// HealthHandler reports process liveness and document-store reachability.
type HealthHandler struct {
	store store.Store
}

func NewHealthHandler(s store.Store) *HealthHandler {
	return &HealthHandler{store: s}
}

// CheckHealth GET /api/health
// The service stays up without a store (reads serve defaults), so an
// unreachable store is reported as degraded, never as a failing check.
func (h *HealthHandler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	storeStatus := "ok"
	if h.store == nil {
		storeStatus = "unavailable"
	} else if _, err := h.store.Get(r.Context(), store.CollectionConfig, store.DocSiteSettings); err != nil && err != model.ErrNotFound {
		storeStatus = "unreachable"
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"store":  storeStatus,
	})
}
