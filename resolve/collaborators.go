package resolve

import (
	"context"

	"github.com/weft/weft/entity"
)

// A ZoneDirectory lists availability zones within a region.
//
// The returned list is ordered; subnet declarations select a zone by index
// into it.
type ZoneDirectory interface {
	ListAvailabilityZones(ctx context.Context, region string) ([]string, error)
}

// An ImageCatalog looks up node image identifiers.
type ImageCatalog interface {
	LookupImage(ctx context.Context, kubernetesVersion, architecture string) (string, error)
}

// An IDSource provides identifiers assigned by a previous provisioning run.
//
// When a source has no identifier for an entity, the resolver falls back to
// a deterministic placeholder derived from the kind and name.
type IDSource interface {
	ResourceID(kind entity.Kind, name string) (id string, ok bool)
}

// StaticIDs is an IDSource backed by a fixed map. Primarily used in tests.
type StaticIDs map[entity.Kind]map[string]string

// ResourceID implements IDSource.
func (s StaticIDs) ResourceID(kind entity.Kind, name string) (string, bool) {
	id, ok := s[kind][name]
	return id, ok
}
