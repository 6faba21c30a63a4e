// Package provision defines the interface between the resolver and the
// engine that creates, updates, and destroys cloud resources.
//
// Provisioning itself is an external concern; this package only fixes the
// contract and provides a dry-run engine for previews and tests.
package provision

import (
	"context"

	"github.com/weft/weft/entity"
	"github.com/weft/weft/resolve"
)

// Assigned holds the identifiers the engine assigned during provisioning,
// per kind and entity name. Assigned identifiers feed back into resolution
// on subsequent runs, replacing placeholder identifiers.
type Assigned map[entity.Kind]map[string]string

// Add records an assigned identifier.
func (a Assigned) Add(kind entity.Kind, name, id string) {
	ids, ok := a[kind]
	if !ok {
		ids = make(map[string]string)
		a[kind] = ids
	}
	ids[name] = id
}

// An Engine provisions a resolved output graph against the target cloud.
//
// The output handed to an engine is fully consistent: every reference is
// resolved and every derived field computed. Engines must not mutate it.
type Engine interface {
	// Apply creates or updates all entities in the output, in kind
	// resolution order, and returns the identifiers it assigned.
	Apply(ctx context.Context, out *resolve.Output) (Assigned, error)

	// Destroy removes all entities in the output, in reverse kind order.
	Destroy(ctx context.Context, out *resolve.Output) error
}
