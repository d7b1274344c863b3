package api

import (
	"net/http"

	"github.com/devfolio/content-service/internal/api/respond"
	"github.com/devfolio/content-service/internal/content"
)

// writeSave maps a repository save result to an HTTP status. The body is
// always the result itself so form clients get field errors back.
func writeSave(w http.ResponseWriter, res content.SaveResult) {
	code := http.StatusOK
	switch {
	case res.Status == content.StatusSuccess:
		code = http.StatusOK
	case res.ConfigError():
		code = http.StatusServiceUnavailable
	case res.NotFound():
		code = http.StatusNotFound
	case len(res.Errors) > 0:
		code = http.StatusBadRequest
	default:
		code = http.StatusInternalServerError
	}
	respond.WriteJSON(w, code, res)
}

func writeDelete(w http.ResponseWriter, res content.DeleteResult) {
	code := http.StatusOK
	switch {
	case res.Success:
		code = http.StatusOK
	case res.ConfigError():
		code = http.StatusServiceUnavailable
	case res.NotFound():
		code = http.StatusNotFound
	default:
		code = http.StatusInternalServerError
	}
	respond.WriteJSON(w, code, res)
}
