package resolve

import (
	"context"
	"sync"

	"github.com/weft/weft/entity"
	"golang.org/x/sync/errgroup"
)

func (rn *run) resolveClusters(out *Output) error {
	names := rn.sortedNames(entity.KindCluster)
	out.Clusters = make(map[string]Cluster, len(names))
	ids := make(map[string]string, len(names))

	for _, name := range names {
		d := rn.catalog.Clusters[name]
		subnetIDs, err := rn.refList(entity.KindCluster, name, "subnets", entity.KindSubnet, d.Subnets)
		if err != nil {
			return err
		}
		groupIDs, err := rn.refList(entity.KindCluster, name, "security_groups", entity.KindSecurityGroup, d.SecurityGroups)
		if err != nil {
			return err
		}
		id := rn.id(entity.KindCluster, name)
		out.Clusters[name] = Cluster{
			Name:             name,
			ID:               id,
			Version:          d.Version,
			RoleARN:          d.RoleARN,
			SubnetIDs:        subnetIDs,
			SecurityGroupIDs: groupIDs,
		}
		ids[name] = id
	}

	rn.index[entity.KindCluster] = ids
	return nil
}

// resolveNodegroups resolves nodegroups in parallel: image catalog lookups
// may involve I/O, and nodegroups are mutually independent.
func (rn *run) resolveNodegroups(ctx context.Context, out *Output) error {
	names := rn.sortedNames(entity.KindNodegroup)
	out.Nodegroups = make(map[string]Nodegroup, len(names))
	ids := make(map[string]string, len(names))

	g, ctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, rn.concurrency)
	var mu sync.Mutex

	for _, name := range names {
		name := name
		d := rn.catalog.Nodegroups[name]
		g.Go(func() error {
			sem <- struct{}{}
			defer func() { <-sem }()

			rec, err := rn.nodegroup(ctx, d, out)
			if err != nil {
				return err
			}
			mu.Lock()
			out.Nodegroups[name] = rec
			ids[name] = rec.ID
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	rn.index[entity.KindNodegroup] = ids
	return nil
}

func (rn *run) nodegroup(ctx context.Context, d entity.Nodegroup, out *Output) (Nodegroup, error) {
	clusterID, err := rn.ref(entity.KindNodegroup, d.Name, "cluster", entity.KindCluster, d.Cluster)
	if err != nil {
		return Nodegroup{}, err
	}

	// Clusters are fully resolved before any nodegroup starts.
	cluster := out.Clusters[d.Cluster]

	version := d.Version
	if version == "" {
		version = cluster.Version
	}
	arch := d.Architecture
	if arch == "" {
		arch = "x86_64"
	}

	subnetIDs, err := rn.refList(entity.KindNodegroup, d.Name, "subnets", entity.KindSubnet, d.Subnets)
	if err != nil {
		return Nodegroup{}, err
	}
	if subnetIDs == nil {
		// No subnets declared: the nodegroup follows its cluster.
		subnetIDs = cluster.SubnetIDs
	}

	image := d.InstanceImage
	if image == "" {
		image, err = rn.image(ctx, version, arch)
		if err != nil {
			return Nodegroup{}, ExternalLookupError{
				Kind:   entity.KindNodegroup,
				Name:   d.Name,
				Lookup: "image",
				Err:    err,
			}
		}
	}

	return Nodegroup{
		Name:          d.Name,
		ID:            rn.id(entity.KindNodegroup, d.Name),
		ClusterID:     clusterID,
		SubnetIDs:     subnetIDs,
		InstanceTypes: d.InstanceTypes,
		MinSize:       d.MinSize,
		MaxSize:       d.MaxSize,
		DesiredSize:   d.DesiredSize,
		InstanceImage: image,
		Version:       version,
		Architecture:  arch,
	}, nil
}
