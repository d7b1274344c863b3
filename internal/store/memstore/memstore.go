// Package memstore is an in-memory store.Store used by tests and local
// development. Semantics mirror the Firestore implementation: merge sets,
// auto-assigned ids for Add, atomic batches, resolved server timestamps.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/devfolio/content-service/internal/model"
	"github.com/devfolio/content-service/internal/store"
)

// Store keeps collections as maps guarded by one mutex.
type Store struct {
	mu          sync.Mutex
	collections map[string]map[string]map[string]any

	// failures maps "op:collection" (or "op") to an injected error, used by
	// tests to simulate transient store failures.
	failures map[string]error
}

// New returns an empty in-memory store.
func New() *Store {
	return &Store{
		collections: make(map[string]map[string]map[string]any),
		failures:    make(map[string]error),
	}
}

// FailWith makes every op of the given kind on collection return err.
// op is one of get, set, add, delete, list, batch; collection may be empty
// to match all collections. Pass a nil err to clear.
func (s *Store) FailWith(op, collection string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := op
	if collection != "" {
		key = op + ":" + collection
	}
	if err == nil {
		delete(s.failures, key)
		return
	}
	s.failures[key] = err
}

func (s *Store) injected(op, collection string) error {
	if err, ok := s.failures[op+":"+collection]; ok {
		return err
	}
	return s.failures[op]
}

// Len reports the number of documents in a collection.
func (s *Store) Len(collection string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.collections[collection])
}

func (s *Store) Get(ctx context.Context, collection, id string) (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.injected("get", collection); err != nil {
		return nil, err
	}
	doc, ok := s.collections[collection][id]
	if !ok {
		return nil, model.ErrNotFound
	}
	return cloneDoc(doc), nil
}

func (s *Store) Set(ctx context.Context, collection, id string, data map[string]any, merge bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.injected("set", collection); err != nil {
		return err
	}
	s.set(collection, id, data, merge)
	return nil
}

func (s *Store) Add(ctx context.Context, collection string, data map[string]any) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.injected("add", collection); err != nil {
		return "", err
	}
	id := strings.ReplaceAll(uuid.New().String(), "-", "")[:20]
	s.set(collection, id, data, false)
	return id, nil
}

func (s *Store) Delete(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.injected("delete", collection); err != nil {
		return err
	}
	if _, ok := s.collections[collection][id]; !ok {
		return model.ErrNotFound
	}
	delete(s.collections[collection], id)
	return nil
}

func (s *Store) List(ctx context.Context, collection string, q store.Query) ([]store.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.injected("list", collection); err != nil {
		return nil, err
	}

	var docs []store.Document
	for id, data := range s.collections[collection] {
		if matches(data, q.Where) {
			docs = append(docs, store.Document{ID: id, Data: cloneDoc(data)})
		}
	}
	// Deterministic base order before any explicit ordering.
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	if q.OrderBy != "" {
		field, desc := q.OrderBy, q.Desc
		sort.SliceStable(docs, func(i, j int) bool {
			if desc {
				return lessValue(docs[j].Data[field], docs[i].Data[field])
			}
			return lessValue(docs[i].Data[field], docs[j].Data[field])
		})
	}
	if q.Limit > 0 && len(docs) > q.Limit {
		docs = docs[:q.Limit]
	}
	return docs, nil
}

func (s *Store) BatchWrite(ctx context.Context, ops []store.WriteOp) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, op := range ops {
		if err := s.injected("batch", op.Collection); err != nil {
			return err
		}
	}
	// All checks passed; apply under the same lock so the batch is atomic
	// with respect to other callers.
	for _, op := range ops {
		switch op.Kind {
		case store.WriteSet:
			s.set(op.Collection, op.ID, op.Data, op.Merge)
		case store.WriteDelete:
			delete(s.collections[op.Collection], op.ID)
		}
	}
	return nil
}

func (s *Store) set(collection, id string, data map[string]any, merge bool) {
	if s.collections[collection] == nil {
		s.collections[collection] = make(map[string]map[string]any)
	}
	resolved := resolveSentinels(data)
	if merge {
		existing, ok := s.collections[collection][id]
		if ok {
			mergeDoc(existing, resolved)
			return
		}
	}
	s.collections[collection][id] = resolved
}

// mergeDoc applies MergeAll semantics: nested maps are merged field by
// field, every other value overwrites wholesale.
func mergeDoc(dst, src map[string]any) {
	for k, v := range src {
		if sv, ok := v.(map[string]any); ok {
			if dv, ok := dst[k].(map[string]any); ok {
				mergeDoc(dv, sv)
				continue
			}
		}
		dst[k] = v
	}
}

func resolveSentinels(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for k, v := range data {
		switch val := v.(type) {
		case map[string]any:
			out[k] = resolveSentinels(val)
		default:
			if store.IsServerTimestamp(v) {
				out[k] = time.Now().UTC()
			} else {
				out[k] = v
			}
		}
	}
	return out
}

func cloneDoc(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for k, v := range data {
		if nested, ok := v.(map[string]any); ok {
			out[k] = cloneDoc(nested)
			continue
		}
		out[k] = v
	}
	return out
}

func matches(data map[string]any, conds []store.Condition) bool {
	for _, c := range conds {
		v, ok := data[c.Field]
		if !ok {
			return false
		}
		switch c.Op {
		case "==":
			if !equalValue(v, c.Value) {
				return false
			}
		case "<":
			if !lessValue(v, c.Value) {
				return false
			}
		case "<=":
			if !lessValue(v, c.Value) && !equalValue(v, c.Value) {
				return false
			}
		case ">":
			if lessValue(v, c.Value) || equalValue(v, c.Value) {
				return false
			}
		case ">=":
			if lessValue(v, c.Value) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func equalValue(a, b any) bool {
	if at, aok := a.(time.Time); aok {
		bt, bok := b.(time.Time)
		return bok && at.Equal(bt)
	}
	return a == b
}

func lessValue(a, b any) bool {
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av < bv
	case int:
		bv, ok := b.(int)
		return ok && av < bv
	case int64:
		bv, ok := b.(int64)
		return ok && av < bv
	case float64:
		bv, ok := b.(float64)
		return ok && av < bv
	case time.Time:
		bv, ok := b.(time.Time)
		return ok && av.Before(bv)
	}
	return false
}
