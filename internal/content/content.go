// Package content implements the repositories behind the site's content
// types. Each repository composes validation and the document store into
// fetch-with-fallback reads and validate-then-persist writes, and reports
// which public paths a successful write makes stale.
package content

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/devfolio/content-service/internal/validate"
)

// Status is the outcome discriminator of the mutating-operation contract.
// StatusIdle is the pre-submission state only; operations never return it.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// SaveResult is returned by every mutating repository operation.
type SaveResult struct {
	Message    string               `json:"message"`
	Status     Status               `json:"status"`
	Errors     validate.FieldErrors `json:"errors,omitempty"`
	Data       any                  `json:"data,omitempty"`
	Revalidate []string             `json:"revalidatePaths,omitempty"`

	configError bool
	notFound    bool
}

// ConfigError reports whether the operation failed because the store was
// never configured.
func (r SaveResult) ConfigError() bool { return r.configError }

// NotFound reports whether the operation's target did not exist.
func (r SaveResult) NotFound() bool { return r.notFound }

// DeleteResult is returned by delete operations.
type DeleteResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`

	configError bool
	notFound    bool
}

func (r DeleteResult) ConfigError() bool { return r.configError }
func (r DeleteResult) NotFound() bool    { return r.notFound }

const unavailableMessage = "Configuration error: document store is unavailable. Check the service environment."

func configErrorResult() SaveResult {
	return SaveResult{Message: unavailableMessage, Status: StatusError, configError: true}
}

func validationResult(fe validate.FieldErrors) SaveResult {
	return SaveResult{Message: "Validation failed. Please correct the highlighted fields.", Status: StatusError, Errors: fe}
}

func storeErrorResult(err error) SaveResult {
	return SaveResult{Message: "Failed to save: " + err.Error(), Status: StatusError}
}

func notFoundResult(msg string) SaveResult {
	return SaveResult{Message: msg, Status: StatusError, notFound: true}
}

func successResult(msg string, data any, paths []string) SaveResult {
	return SaveResult{Message: msg, Status: StatusSuccess, Data: data, Revalidate: paths}
}

func deleteOK(msg string) DeleteResult { return DeleteResult{Success: true, Message: msg} }

func deleteNotFound(msg string) DeleteResult { return DeleteResult{Message: msg, notFound: true} }

func deleteError(msg string) DeleteResult { return DeleteResult{Message: msg} }

func deleteUnavailable() DeleteResult {
	return DeleteResult{Message: unavailableMessage, configError: true}
}

// Notifier receives best-effort staleness hints after successful writes.
// Failures are logged by the caller and never propagated as write failures.
type Notifier interface {
	Invalidate(ctx context.Context, paths []string) error
}

type logNotifier struct{}

func (logNotifier) Invalidate(ctx context.Context, paths []string) error {
	log.Info().Strs("paths", paths).Msg("revalidation requested")
	return nil
}

// NewLogNotifier returns a Notifier that only logs the requested paths.
func NewLogNotifier() Notifier { return logNotifier{} }

// notifyRevalidate fires the staleness hint without letting a notifier
// failure affect the write outcome.
func notifyRevalidate(ctx context.Context, n Notifier, paths []string) {
	if n == nil || len(paths) == 0 {
		return
	}
	if err := n.Invalidate(ctx, paths); err != nil {
		log.Warn().Err(err).Strs("paths", paths).Msg("revalidation notify failed")
	}
}

// --- per-field defaulting helpers for store documents ---

func strField(m map[string]any, key, def string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return def
}

func boolField(m map[string]any, key string, def bool) bool {
	if v, ok := m[key].(bool); ok {
		return v
	}
	return def
}

// intPtrField reads an optional integer tolerating the numeric types the
// store decodes to.
func intPtrField(m map[string]any, key string) *int {
	switch v := m[key].(type) {
	case int:
		return &v
	case int64:
		n := int(v)
		return &n
	case float64:
		n := int(v)
		return &n
	}
	return nil
}

func strSliceField(m map[string]any, key string) []string {
	switch v := m[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func mapField(m map[string]any, key string) map[string]any {
	if v, ok := m[key].(map[string]any); ok {
		return v
	}
	return nil
}

func sliceField(m map[string]any, key string) []map[string]any {
	raw, ok := m[key].([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		if entry, ok := item.(map[string]any); ok {
			out = append(out, entry)
		}
	}
	return out
}
