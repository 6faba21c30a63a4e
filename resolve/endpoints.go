package resolve

import (
	"fmt"

	"github.com/weft/weft/entity"
)

func (rn *run) resolveEndpoints(out *Output) error {
	names := rn.sortedNames(entity.KindEndpoint)
	out.Endpoints = make(map[string]Endpoint, len(names))
	ids := make(map[string]string, len(names))

	for _, name := range names {
		d := rn.catalog.Endpoints[name]
		rec, err := rn.endpoint(d)
		if err != nil {
			return err
		}
		out.Endpoints[name] = rec
		ids[name] = rec.ID
	}

	rn.index[entity.KindEndpoint] = ids
	return nil
}

func (rn *run) endpoint(d entity.Endpoint) (Endpoint, error) {
	vpcID, err := rn.ref(entity.KindEndpoint, d.Name, "vpc", entity.KindVPC, d.VPC)
	if err != nil {
		return Endpoint{}, err
	}

	rec := Endpoint{
		Name:       d.Name,
		ID:         rn.id(entity.KindEndpoint, d.Name),
		VPCID:      vpcID,
		Service:    d.Service,
		Type:       d.Type,
		PrivateDNS: d.PrivateDNS,
	}

	// Interface endpoints attach to subnets and security groups; gateway
	// endpoints attach to route tables. Exactly one set is populated.
	switch d.Type {
	case entity.EndpointInterface:
		rec.SubnetIDs, err = rn.refList(entity.KindEndpoint, d.Name, "subnets", entity.KindSubnet, d.Subnets)
		if err != nil {
			return Endpoint{}, err
		}
		rec.SecurityGroupIDs, err = rn.refList(entity.KindEndpoint, d.Name, "security_groups", entity.KindSecurityGroup, d.SecurityGroups)
		if err != nil {
			return Endpoint{}, err
		}
	case entity.EndpointGateway:
		rec.RouteTableIDs, err = rn.refList(entity.KindEndpoint, d.Name, "route_tables", entity.KindRouteTable, d.RouteTables)
		if err != nil {
			return Endpoint{}, err
		}
	default:
		return Endpoint{}, fmt.Errorf("endpoint %q: unknown endpoint_type %q", d.Name, d.Type)
	}

	return rec, nil
}
