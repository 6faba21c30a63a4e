// Package storage persists provider-assigned identifiers between runs.
//
// Resolution itself never shares state between runs; what is stored here is
// the mapping from declared entity names to the identifiers a provisioning
// engine assigned, so that a later run resolves references against real
// identifiers instead of placeholders.
package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/weft/weft/entity"
	"github.com/weft/weft/resolve"
)

// The KVBackend is used for persisting key-value data.
type KVBackend interface {
	// Put creates or updates a key.
	Put(ctx context.Context, key string, value []byte) error

	// Get returns the given key. Returns ErrNotFound if the given key does
	// not exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Delete deletes a key. Returns ErrNotFound if the given key does not
	// exist.
	Delete(ctx context.Context, key string) error

	// Scan returns a key-value map of all keys matching the given prefix.
	Scan(ctx context.Context, prefix string) (map[string][]byte, error)
}

// An IDStore stores assigned identifiers, keyed by project, environment,
// kind, and entity name.
type IDStore struct {
	Backend KVBackend
}

func idKey(project, env string, kind entity.Kind, name string) string {
	return fmt.Sprintf("%s/%s/%s:%s", project, env, kind, name)
}

// Put stores the identifier for one entity.
func (s *IDStore) Put(ctx context.Context, project, env string, kind entity.Kind, name, id string) error {
	if err := s.Backend.Put(ctx, idKey(project, env, kind, name), []byte(id)); err != nil {
		return errors.Wrap(err, "store id")
	}
	return nil
}

// Delete removes the identifier for one entity.
func (s *IDStore) Delete(ctx context.Context, project, env string, kind entity.Kind, name string) error {
	if err := s.Backend.Delete(ctx, idKey(project, env, kind, name)); err != nil {
		return errors.Wrap(err, "delete id")
	}
	return nil
}

// Source returns a snapshot of all identifiers stored for a project and
// environment, usable as the resolver's identifier source. The snapshot is
// taken once; later writes to the store are not reflected.
func (s *IDStore) Source(ctx context.Context, project, env string) (resolve.IDSource, error) {
	values, err := s.Backend.Scan(ctx, fmt.Sprintf("%s/%s", project, env))
	if err != nil {
		return nil, errors.Wrap(err, "scan ids")
	}
	src := make(idSnapshot, len(values))
	for key, id := range values {
		// Key layout: project/env/kind:name
		slash := strings.LastIndex(key, "/")
		if slash == -1 {
			continue
		}
		src[key[slash+1:]] = string(id)
	}
	return src, nil
}

// idSnapshot maps "kind:name" to an assigned identifier.
type idSnapshot map[string]string

// ResourceID implements resolve.IDSource.
func (s idSnapshot) ResourceID(kind entity.Kind, name string) (string, bool) {
	id, ok := s[string(kind)+":"+name]
	return id, ok
}
