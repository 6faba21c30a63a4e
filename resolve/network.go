package resolve

import (
	"context"
	"sync"

	"github.com/weft/weft/entity"
	"golang.org/x/sync/errgroup"
)

func (rn *run) resolveVPCs(out *Output) error {
	names := rn.sortedNames(entity.KindVPC)
	out.VPCs = make(map[string]VPC, len(names))
	ids := make(map[string]string, len(names))

	for _, name := range names {
		d := rn.catalog.VPCs[name]
		id := rn.id(entity.KindVPC, name)
		out.VPCs[name] = VPC{
			Name:               name,
			ID:                 id,
			CIDRBlock:          d.CIDRBlock,
			Region:             d.Region,
			Tenancy:            d.Tenancy,
			EnableDNSSupport:   d.EnableDNSSupport,
			EnableDNSHostnames: d.EnableDNSHostnames,
		}
		ids[name] = id
	}

	rn.index[entity.KindVPC] = ids
	return nil
}

// resolveSubnets resolves subnets of one kind wave in parallel: subnets are
// mutually independent and the zone lookup may involve I/O.
func (rn *run) resolveSubnets(ctx context.Context, out *Output) error {
	names := rn.sortedNames(entity.KindSubnet)
	out.Subnets = make(map[string]Subnet, len(names))
	ids := make(map[string]string, len(names))

	g, ctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, rn.concurrency)
	var mu sync.Mutex

	for _, name := range names {
		name := name
		d := rn.catalog.Subnets[name]
		g.Go(func() error {
			sem <- struct{}{}
			defer func() { <-sem }()

			rec, err := rn.subnet(ctx, d)
			if err != nil {
				return err
			}
			mu.Lock()
			out.Subnets[name] = rec
			ids[name] = rec.ID
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	rn.index[entity.KindSubnet] = ids
	return nil
}

func (rn *run) subnet(ctx context.Context, d entity.Subnet) (Subnet, error) {
	vpcID, err := rn.ref(entity.KindSubnet, d.Name, "vpc", entity.KindVPC, d.VPC)
	if err != nil {
		return Subnet{}, err
	}

	// The reference resolved, so the owning network is in the catalog.
	owner := rn.catalog.VPCs[d.VPC]

	zones, err := rn.azList(ctx, owner.Region)
	if err != nil {
		return Subnet{}, ExternalLookupError{
			Kind:   entity.KindSubnet,
			Name:   d.Name,
			Lookup: "availability zone",
			Err:    err,
		}
	}
	if d.AZIndex < 0 || d.AZIndex >= len(zones) {
		return Subnet{}, InvalidIndexError{
			Kind:  entity.KindSubnet,
			Name:  d.Name,
			Field: "az_index",
			Index: d.AZIndex,
			Count: len(zones),
		}
	}

	return Subnet{
		Name:             d.Name,
		ID:               rn.id(entity.KindSubnet, d.Name),
		VPCID:            vpcID,
		CIDRBlock:        d.CIDRBlock,
		AvailabilityZone: zones[d.AZIndex],
		Public:           d.Public,
	}, nil
}

func (rn *run) resolveSecurityGroups(out *Output) error {
	names := rn.sortedNames(entity.KindSecurityGroup)
	out.SecurityGroups = make(map[string]SecurityGroup, len(names))
	ids := make(map[string]string, len(names))

	for _, name := range names {
		d := rn.catalog.SecurityGroups[name]
		vpcID, err := rn.ref(entity.KindSecurityGroup, name, "vpc", entity.KindVPC, d.VPC)
		if err != nil {
			return err
		}
		id := rn.id(entity.KindSecurityGroup, name)
		out.SecurityGroups[name] = SecurityGroup{
			Name:        name,
			ID:          id,
			VPCID:       vpcID,
			Description: d.Description,
		}
		ids[name] = id
	}

	rn.index[entity.KindSecurityGroup] = ids
	return nil
}

func (rn *run) resolveInternetGateways(out *Output) error {
	names := rn.sortedNames(entity.KindInternetGateway)
	out.InternetGateways = make(map[string]InternetGateway, len(names))
	ids := make(map[string]string, len(names))

	for _, name := range names {
		d := rn.catalog.InternetGateways[name]
		vpcID, err := rn.ref(entity.KindInternetGateway, name, "vpc", entity.KindVPC, d.VPC)
		if err != nil {
			return err
		}
		id := rn.id(entity.KindInternetGateway, name)
		out.InternetGateways[name] = InternetGateway{Name: name, ID: id, VPCID: vpcID}
		ids[name] = id
	}

	rn.index[entity.KindInternetGateway] = ids
	return nil
}

func (rn *run) resolveElasticIPs(out *Output) error {
	names := rn.sortedNames(entity.KindElasticIP)
	out.ElasticIPs = make(map[string]ElasticIP, len(names))
	ids := make(map[string]string, len(names))

	for _, name := range names {
		d := rn.catalog.ElasticIPs[name]
		id := rn.id(entity.KindElasticIP, name)
		out.ElasticIPs[name] = ElasticIP{Name: name, ID: id, Domain: d.Domain}
		ids[name] = id
	}

	rn.index[entity.KindElasticIP] = ids
	return nil
}

func (rn *run) resolveNATGateways(out *Output) error {
	names := rn.sortedNames(entity.KindNATGateway)
	out.NATGateways = make(map[string]NATGateway, len(names))
	ids := make(map[string]string, len(names))

	for _, name := range names {
		d := rn.catalog.NATGateways[name]
		subnetID, err := rn.ref(entity.KindNATGateway, name, "subnet", entity.KindSubnet, d.Subnet)
		if err != nil {
			return err
		}
		allocID, err := rn.ref(entity.KindNATGateway, name, "elastic_ip", entity.KindElasticIP, d.ElasticIP)
		if err != nil {
			return err
		}
		id := rn.id(entity.KindNATGateway, name)
		out.NATGateways[name] = NATGateway{
			Name:         name,
			ID:           id,
			SubnetID:     subnetID,
			AllocationID: allocID,
		}
		ids[name] = id
	}

	rn.index[entity.KindNATGateway] = ids
	return nil
}

func (rn *run) resolveRouteTables(out *Output) error {
	names := rn.sortedNames(entity.KindRouteTable)
	out.RouteTables = make(map[string]RouteTable, len(names))
	ids := make(map[string]string, len(names))

	for _, name := range names {
		d := rn.catalog.RouteTables[name]
		vpcID, err := rn.ref(entity.KindRouteTable, name, "vpc", entity.KindVPC, d.VPC)
		if err != nil {
			return err
		}
		routes, err := rn.routes(name, d.Routes)
		if err != nil {
			return err
		}
		id := rn.id(entity.KindRouteTable, name)
		out.RouteTables[name] = RouteTable{
			Name:   name,
			ID:     id,
			VPCID:  vpcID,
			Routes: routes,
		}
		ids[name] = id
	}

	rn.index[entity.KindRouteTable] = ids
	return nil
}

// routes dereferences the target of each route entry. Internet and NAT
// gateway targets are name references; every other target key passes
// through verbatim as a provider identifier.
func (rn *run) routes(table string, decls []entity.Route) ([]Route, error) {
	if len(decls) == 0 {
		return nil, nil
	}
	out := make([]Route, len(decls))
	for i, d := range decls {
		var gatewayID string
		switch d.TargetType {
		case entity.TargetInternetGateway:
			id, err := rn.ref(entity.KindRouteTable, table, "target_key", entity.KindInternetGateway, d.TargetKey)
			if err != nil {
				return nil, err
			}
			gatewayID = id
		case entity.TargetNATGateway:
			id, err := rn.ref(entity.KindRouteTable, table, "target_key", entity.KindNATGateway, d.TargetKey)
			if err != nil {
				return nil, err
			}
			gatewayID = id
		default:
			// vgw, tgw, other: a literal provider identifier.
			gatewayID = d.TargetKey
		}
		out[i] = Route{
			Destination: d.Destination,
			TargetType:  d.TargetType,
			GatewayID:   gatewayID,
		}
	}
	return out, nil
}

func (rn *run) resolveRouteTableAssociations(out *Output) error {
	names := rn.sortedNames(entity.KindRouteTableAssociation)
	out.RouteTableAssociations = make(map[string]RouteTableAssociation, len(names))
	ids := make(map[string]string, len(names))

	for _, name := range names {
		d := rn.catalog.RouteTableAssociations[name]
		tableID, err := rn.ref(entity.KindRouteTableAssociation, name, "route_table", entity.KindRouteTable, d.RouteTable)
		if err != nil {
			return err
		}
		subnetID, err := rn.ref(entity.KindRouteTableAssociation, name, "subnet", entity.KindSubnet, d.Subnet)
		if err != nil {
			return err
		}
		id := rn.id(entity.KindRouteTableAssociation, name)
		out.RouteTableAssociations[name] = RouteTableAssociation{
			Name:         name,
			ID:           id,
			RouteTableID: tableID,
			SubnetID:     subnetID,
		}
		ids[name] = id
	}

	rn.index[entity.KindRouteTableAssociation] = ids
	return nil
}
