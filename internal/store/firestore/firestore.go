// Package firestore backs the document-store contract with Cloud Firestore.
package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/devfolio/content-service/internal/model"
	"github.com/devfolio/content-service/internal/store"
)

// Store implements store.Store on a Firestore client.
type Store struct {
	client *firestore.Client
}

// New creates a Firestore-backed store for the given project.
func New(ctx context.Context, projectID string, opts ...option.ClientOption) (*Store, error) {
	if projectID == "" {
		return nil, fmt.Errorf("projectID must be provided to create a firestore store")
	}
	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}
	return &Store{client: client}, nil
}

// Close releases the underlying client.
func (s *Store) Close() error { return s.client.Close() }

func (s *Store) Get(ctx context.Context, collection, id string) (map[string]any, error) {
	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return snap.Data(), nil
}

func (s *Store) Set(ctx context.Context, collection, id string, data map[string]any, merge bool) error {
	ref := s.client.Collection(collection).Doc(id)
	if merge {
		_, err := ref.Set(ctx, resolveSentinels(data), firestore.MergeAll)
		return err
	}
	_, err := ref.Set(ctx, resolveSentinels(data))
	return err
}

func (s *Store) Add(ctx context.Context, collection string, data map[string]any) (string, error) {
	ref, _, err := s.client.Collection(collection).Add(ctx, resolveSentinels(data))
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

// Delete removes a document, reporting model.ErrNotFound for a missing
// target so callers can return a descriptive failure instead of silently
// succeeding (Firestore itself treats deletes of absent docs as no-ops).
func (s *Store) Delete(ctx context.Context, collection, id string) error {
	ref := s.client.Collection(collection).Doc(id)
	if _, err := ref.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return model.ErrNotFound
		}
		return err
	}
	_, err := ref.Delete(ctx)
	return err
}

func (s *Store) List(ctx context.Context, collection string, q store.Query) ([]store.Document, error) {
	query := s.client.Collection(collection).Query
	for _, c := range q.Where {
		query = query.Where(c.Field, c.Op, c.Value)
	}
	if q.OrderBy != "" {
		dir := firestore.Asc
		if q.Desc {
			dir = firestore.Desc
		}
		query = query.OrderBy(q.OrderBy, dir)
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	var docs []store.Document
	it := query.Documents(ctx)
	defer it.Stop()
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		docs = append(docs, store.Document{ID: snap.Ref.ID, Data: snap.Data()})
	}
	return docs, nil
}

func (s *Store) BatchWrite(ctx context.Context, ops []store.WriteOp) error {
	if len(ops) == 0 {
		return nil
	}
	batch := s.client.Batch()
	for _, op := range ops {
		ref := s.client.Collection(op.Collection).Doc(op.ID)
		switch op.Kind {
		case store.WriteSet:
			if op.Merge {
				batch.Set(ref, resolveSentinels(op.Data), firestore.MergeAll)
			} else {
				batch.Set(ref, resolveSentinels(op.Data))
			}
		case store.WriteDelete:
			batch.Delete(ref)
		}
	}
	_, err := batch.Commit(ctx)
	return err
}

// resolveSentinels rewrites the portable server-timestamp sentinel to the
// Firestore-native one, including inside nested maps.
func resolveSentinels(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for k, v := range data {
		switch val := v.(type) {
		case map[string]any:
			out[k] = resolveSentinels(val)
		default:
			if store.IsServerTimestamp(v) {
				out[k] = firestore.ServerTimestamp
			} else {
				out[k] = v
			}
		}
	}
	return out
}
