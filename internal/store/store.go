// Package store defines the document-store contract the content repositories
// are written against. Implementations live under internal/store/<driver>/
// (firestore for deployments, memstore for tests and local development).
package store

import (
	"context"
	"time"
)

// Collection names used across the service.
const (
	CollectionConfig        = "config"
	CollectionSkills        = "skills"
	CollectionPortfolio     = "portfolioItems"
	CollectionMessages      = "contactMessages"
	CollectionAnnouncements = "announcements"
)

// Singleton document ids inside CollectionConfig.
const (
	DocSiteSettings = "siteSettings"
	DocAboutMe      = "aboutMe"
	DocNotFoundPage = "notFoundPage"
)

// serverTimestamp is the sentinel type for server-assigned write times.
type serverTimestamp struct{}

// ServerTimestamp is written in place of a time value; the store resolves it
// to the commit time. Reads must tolerate a not-yet-resolved value.
var ServerTimestamp = serverTimestamp{}

// IsServerTimestamp reports whether v is the server-timestamp sentinel.
func IsServerTimestamp(v any) bool {
	_, ok := v.(serverTimestamp)
	return ok
}

// Document is one record of a collection as returned by List.
type Document struct {
	ID   string
	Data map[string]any
}

// Condition is a single field filter. Op is one of "==", "<", "<=", ">", ">=".
type Condition struct {
	Field string
	Op    string
	Value any
}

// Query narrows and orders a List call. Zero value lists the whole collection
// in store-native order.
type Query struct {
	Where   []Condition
	OrderBy string
	Desc    bool
	Limit   int
}

// WriteKind discriminates batched operations.
type WriteKind int

const (
	WriteSet WriteKind = iota
	WriteDelete
)

// WriteOp is one entry of a batch. Batches commit atomically or not at all.
type WriteOp struct {
	Kind       WriteKind
	Collection string
	ID         string
	Data       map[string]any
	Merge      bool
}

// Store exposes the document operations the repositories rely on.
//
// Implementations return model.ErrNotFound when a Get or Delete target does
// not exist, and model.ErrStoreUnavailable when the backing client was never
// initialized. Repositories treat both as normal, recoverable conditions.
type Store interface {
	Get(ctx context.Context, collection, id string) (map[string]any, error)
	Set(ctx context.Context, collection, id string, data map[string]any, merge bool) error
	Add(ctx context.Context, collection string, data map[string]any) (string, error)
	Delete(ctx context.Context, collection, id string) error
	List(ctx context.Context, collection string, q Query) ([]Document, error)
	BatchWrite(ctx context.Context, ops []WriteOp) error
}

// TimeField reads a time value from document data, tolerating an unresolved
// server-timestamp sentinel or a missing field by falling back to now.
func TimeField(data map[string]any, key string) time.Time {
	switch v := data[key].(type) {
	case time.Time:
		return v
	case *time.Time:
		if v != nil {
			return *v
		}
	}
	return time.Now().UTC()
}
