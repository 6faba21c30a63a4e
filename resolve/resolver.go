package resolve

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"github.com/weft/weft/entity"
	"github.com/weft/weft/resolve/internal/lookup"
	"github.com/weft/weft/suggest"
	"go.uber.org/zap"
)

// DefaultConcurrency is the default maximum concurrency used when resolving
// entities of one kind. Kinds are always resolved strictly in order.
var DefaultConcurrency = runtime.NumCPU() * 2

// A Resolver turns a validated entity catalog into a fully resolved output
// graph: every name reference becomes an identifier and derived defaults
// are computed.
//
// Resolution is a total recomputation per call; nothing is shared between
// runs except what the IDSource provides.
type Resolver struct {
	// Zones lists availability zones per region. Required when subnets are
	// declared.
	Zones ZoneDirectory

	// Images looks up node images by Kubernetes version and architecture.
	// Required when a nodegroup omits its instance image.
	Images ImageCatalog

	// IDs provides identifiers assigned by earlier provisioning runs. If
	// not set, or for entities it has no identifier for, a deterministic
	// placeholder is used.
	IDs IDSource

	// Logger logs resolution progress. If not set, logs are discarded.
	Logger *zap.Logger

	// Concurrency caps parallelism within one kind. If not set,
	// DefaultConcurrency is used.
	Concurrency int

	// StrictRules rejects security rules that declare both an explicit
	// CIDR and a peer security group, instead of letting the peer group
	// take precedence.
	StrictRules bool
}

// Resolve resolves all entities declared for one environment.
//
// Kinds resolve in the fixed order returned by entity.Order; an entity only
// ever references kinds that have already finished. The first error aborts
// the run; there is no partial output.
func (r *Resolver) Resolve(ctx context.Context, env string, catalog *entity.Catalog) (*Output, error) {
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("environment", env))

	c := r.Concurrency
	if c == 0 {
		c = DefaultConcurrency
	}

	rn := &run{
		catalog:     catalog,
		ids:         r.IDs,
		zones:       r.Zones,
		images:      r.Images,
		strict:      r.StrictRules,
		concurrency: c,
		index:       make(map[entity.Kind]map[string]string),
		azCache:     &lookup.Cache{},
		imageCache:  &lookup.Cache{},
	}

	logger.Info("Resolve")

	out := &Output{Environment: env}
	for _, kind := range entity.Order() {
		if err := rn.resolveKind(ctx, kind, out); err != nil {
			return nil, err
		}
		logger.Debug("Resolved kind",
			zap.String("kind", kind.String()),
			zap.Int("count", len(rn.index[kind])),
		)
	}

	logger.Info("Done")

	return out, nil
}

// A run holds the state for a single resolution pass: the progressively
// built name→ID indexes and the memoized external lookups.
type run struct {
	catalog     *entity.Catalog
	ids         IDSource
	zones       ZoneDirectory
	images      ImageCatalog
	strict      bool
	concurrency int

	// index holds one name→ID map per kind, added when the kind finishes
	// resolving. Reads only ever target kinds earlier in the order.
	index map[entity.Kind]map[string]string

	azCache    *lookup.Cache
	imageCache *lookup.Cache
}

func (rn *run) resolveKind(ctx context.Context, kind entity.Kind, out *Output) error {
	switch kind {
	case entity.KindVPC:
		return rn.resolveVPCs(out)
	case entity.KindSubnet:
		return rn.resolveSubnets(ctx, out)
	case entity.KindSecurityGroup:
		return rn.resolveSecurityGroups(out)
	case entity.KindInternetGateway:
		return rn.resolveInternetGateways(out)
	case entity.KindElasticIP:
		return rn.resolveElasticIPs(out)
	case entity.KindNATGateway:
		return rn.resolveNATGateways(out)
	case entity.KindRouteTable:
		return rn.resolveRouteTables(out)
	case entity.KindRouteTableAssociation:
		return rn.resolveRouteTableAssociations(out)
	case entity.KindSecurityRule:
		return rn.resolveSecurityRules(out)
	case entity.KindEndpoint:
		return rn.resolveEndpoints(out)
	case entity.KindCluster:
		return rn.resolveClusters(out)
	case entity.KindNodegroup:
		return rn.resolveNodegroups(ctx, out)
	}
	panic(fmt.Sprintf("resolve: no resolver for kind %q", kind))
}

// id returns the identifier for an entity, preferring identifiers assigned
// by a previous provisioning run over the deterministic placeholder.
func (rn *run) id(kind entity.Kind, name string) string {
	if rn.ids != nil {
		if id, ok := rn.ids.ResourceID(kind, name); ok {
			return id
		}
	}
	return kind.IDPrefix() + "-" + name
}

// ref resolves a single reference field through the index for the target
// kind.
func (rn *run) ref(from entity.Kind, fromName, field string, target entity.Kind, targetName string) (string, error) {
	ids := rn.index[target]
	if id, ok := ids[targetName]; ok {
		return id, nil
	}
	candidates := make([]string, 0, len(ids))
	for n := range ids {
		candidates = append(candidates, n)
	}
	return "", UnresolvedReferenceError{
		FromKind:   from,
		FromName:   fromName,
		Field:      field,
		TargetKind: target,
		TargetName: targetName,
		Suggestion: suggest.Name(targetName, candidates),
	}
}

// refList resolves a list of reference names in order. An empty input
// yields a nil list.
func (rn *run) refList(from entity.Kind, fromName, field string, target entity.Kind, names []string) ([]string, error) {
	if len(names) == 0 {
		return nil, nil
	}
	out := make([]string, len(names))
	for i, n := range names {
		id, err := rn.ref(from, fromName, field, target, n)
		if err != nil {
			return nil, err
		}
		out[i] = id
	}
	return out, nil
}

// sortedNames returns the declared names for a kind in lexical order, so
// entities resolve (and fail) in a stable order.
func (rn *run) sortedNames(kind entity.Kind) []string {
	names := rn.catalog.Names(kind)
	sort.Strings(names)
	return names
}

// azList returns the availability zones for a region, memoized for the run.
func (rn *run) azList(ctx context.Context, region string) ([]string, error) {
	v, err := rn.azCache.Do(region, func() (interface{}, error) {
		if rn.zones == nil {
			return nil, fmt.Errorf("no zone directory configured")
		}
		return rn.zones.ListAvailabilityZones(ctx, region)
	})
	if err != nil {
		return nil, err
	}
	return v.([]string), nil
}

// image returns the node image for a version/architecture pair, memoized
// for the run.
func (rn *run) image(ctx context.Context, version, arch string) (string, error) {
	v, err := rn.imageCache.Do(version+"/"+arch, func() (interface{}, error) {
		if rn.images == nil {
			return nil, fmt.Errorf("no image catalog configured")
		}
		return rn.images.LookupImage(ctx, version, arch)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}
