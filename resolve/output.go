package resolve

import (
	"sort"

	"github.com/weft/weft/entity"
)

// Resolved records in this file are built exactly once by the resolver and
// never mutated afterwards. They combine the literal attributes of a
// declaration with resolved reference identifiers and derived fields.

// A VPC is a resolved network record.
type VPC struct {
	Name               string `json:"name"`
	ID                 string `json:"id"`
	CIDRBlock          string `json:"cidr_block"`
	Region             string `json:"region"`
	Tenancy            string `json:"tenancy,omitempty"`
	EnableDNSSupport   bool   `json:"enable_dns_support,omitempty"`
	EnableDNSHostnames bool   `json:"enable_dns_hostnames,omitempty"`
}

// A Subnet is a resolved subnet record.
type Subnet struct {
	Name             string `json:"name"`
	ID               string `json:"id"`
	VPCID            string `json:"vpc_id"`
	CIDRBlock        string `json:"cidr_block"`
	AvailabilityZone string `json:"availability_zone"`
	Public           bool   `json:"public,omitempty"`
}

// A SecurityGroup is a resolved security group record.
type SecurityGroup struct {
	Name        string `json:"name"`
	ID          string `json:"id"`
	VPCID       string `json:"vpc_id"`
	Description string `json:"description,omitempty"`
}

// An InternetGateway is a resolved internet gateway record.
type InternetGateway struct {
	Name  string `json:"name"`
	ID    string `json:"id"`
	VPCID string `json:"vpc_id"`
}

// An ElasticIP is a resolved address allocation record.
type ElasticIP struct {
	Name   string `json:"name"`
	ID     string `json:"id"`
	Domain string `json:"domain,omitempty"`
}

// A NATGateway is a resolved NAT gateway record.
type NATGateway struct {
	Name         string `json:"name"`
	ID           string `json:"id"`
	SubnetID     string `json:"subnet_id"`
	AllocationID string `json:"allocation_id"`
}

// A Route is a resolved route entry. GatewayID is the resolved identifier
// for igw/nat targets and the verbatim target key for all other targets.
type Route struct {
	Destination string             `json:"destination"`
	TargetType  entity.RouteTarget `json:"target_type"`
	GatewayID   string             `json:"gateway_id"`
}

// A RouteTable is a resolved route table record.
type RouteTable struct {
	Name   string  `json:"name"`
	ID     string  `json:"id"`
	VPCID  string  `json:"vpc_id"`
	Routes []Route `json:"routes,omitempty"`
}

// A RouteTableAssociation is a resolved route table attachment record.
type RouteTableAssociation struct {
	Name         string `json:"name"`
	ID           string `json:"id"`
	RouteTableID string `json:"route_table_id"`
	SubnetID     string `json:"subnet_id"`
}

// A SecurityRule is a resolved security rule record.
//
// Exactly one of CIDR and PeerGroupID is non-empty. When Protocol is the
// all-protocols sentinel, both port bounds are nil.
type SecurityRule struct {
	Name        string `json:"name"`
	ID          string `json:"id"`
	GroupID     string `json:"group_id"`
	Direction   string `json:"direction"`
	Protocol    string `json:"protocol"`
	FromPort    *int64 `json:"from_port,omitempty"`
	ToPort      *int64 `json:"to_port,omitempty"`
	CIDR        string `json:"cidr,omitempty"`
	PeerGroupID string `json:"peer_group_id,omitempty"`
}

// An Endpoint is a resolved VPC endpoint record. Interface endpoints carry
// subnet and security group identifiers; gateway endpoints carry route
// table identifiers. The two sets are never both populated.
type Endpoint struct {
	Name             string   `json:"name"`
	ID               string   `json:"id"`
	VPCID            string   `json:"vpc_id"`
	Service          string   `json:"service"`
	Type             string   `json:"endpoint_type"`
	SubnetIDs        []string `json:"subnet_ids,omitempty"`
	SecurityGroupIDs []string `json:"security_group_ids,omitempty"`
	RouteTableIDs    []string `json:"route_table_ids,omitempty"`
	PrivateDNS       bool     `json:"private_dns,omitempty"`
}

// A Cluster is a resolved control plane record.
type Cluster struct {
	Name             string   `json:"name"`
	ID               string   `json:"id"`
	Version          string   `json:"version"`
	RoleARN          string   `json:"role_arn,omitempty"`
	SubnetIDs        []string `json:"subnet_ids"`
	SecurityGroupIDs []string `json:"security_group_ids,omitempty"`
}

// A Nodegroup is a resolved worker group record.
type Nodegroup struct {
	Name          string   `json:"name"`
	ID            string   `json:"id"`
	ClusterID     string   `json:"cluster_id"`
	SubnetIDs     []string `json:"subnet_ids,omitempty"`
	InstanceTypes []string `json:"instance_types,omitempty"`
	MinSize       int64    `json:"min_size"`
	MaxSize       int64    `json:"max_size"`
	DesiredSize   int64    `json:"desired_size"`
	InstanceImage string   `json:"instance_image"`
	Version       string   `json:"version"`
	Architecture  string   `json:"architecture"`
}

// An Output is the fully resolved graph for one environment, ready for
// consumption by a provisioning engine. It is assembled once per run and
// read-only afterwards.
type Output struct {
	Environment string `json:"environment"`

	VPCs                   map[string]VPC                   `json:"vpcs,omitempty"`
	Subnets                map[string]Subnet                `json:"subnets,omitempty"`
	SecurityGroups         map[string]SecurityGroup         `json:"security_groups,omitempty"`
	InternetGateways       map[string]InternetGateway       `json:"internet_gateways,omitempty"`
	ElasticIPs             map[string]ElasticIP             `json:"elastic_ips,omitempty"`
	NATGateways            map[string]NATGateway            `json:"nat_gateways,omitempty"`
	RouteTables            map[string]RouteTable            `json:"route_tables,omitempty"`
	RouteTableAssociations map[string]RouteTableAssociation `json:"route_table_associations,omitempty"`
	SecurityRules          map[string]SecurityRule          `json:"security_rules,omitempty"`
	Endpoints              map[string]Endpoint              `json:"endpoints,omitempty"`
	Clusters               map[string]Cluster               `json:"clusters,omitempty"`
	Nodegroups             map[string]Nodegroup             `json:"nodegroups,omitempty"`
}

// A Ref pairs an entity with its resolved identifier.
type Ref struct {
	Kind entity.Kind
	Name string
	ID   string
}

// Refs returns every resolved entity in kind resolution order, names sorted
// within each kind. The result is deterministic for a given output.
func (o *Output) Refs() []Ref {
	var out []Ref
	for _, kind := range entity.Order() {
		ids := o.kindIDs(kind)
		names := make([]string, 0, len(ids))
		for name := range ids {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			out = append(out, Ref{Kind: kind, Name: name, ID: ids[name]})
		}
	}
	return out
}

func (o *Output) kindIDs(kind entity.Kind) map[string]string {
	ids := make(map[string]string)
	switch kind {
	case entity.KindVPC:
		for n, r := range o.VPCs {
			ids[n] = r.ID
		}
	case entity.KindSubnet:
		for n, r := range o.Subnets {
			ids[n] = r.ID
		}
	case entity.KindSecurityGroup:
		for n, r := range o.SecurityGroups {
			ids[n] = r.ID
		}
	case entity.KindInternetGateway:
		for n, r := range o.InternetGateways {
			ids[n] = r.ID
		}
	case entity.KindElasticIP:
		for n, r := range o.ElasticIPs {
			ids[n] = r.ID
		}
	case entity.KindNATGateway:
		for n, r := range o.NATGateways {
			ids[n] = r.ID
		}
	case entity.KindRouteTable:
		for n, r := range o.RouteTables {
			ids[n] = r.ID
		}
	case entity.KindRouteTableAssociation:
		for n, r := range o.RouteTableAssociations {
			ids[n] = r.ID
		}
	case entity.KindSecurityRule:
		for n, r := range o.SecurityRules {
			ids[n] = r.ID
		}
	case entity.KindEndpoint:
		for n, r := range o.Endpoints {
			ids[n] = r.ID
		}
	case entity.KindCluster:
		for n, r := range o.Clusters {
			ids[n] = r.ID
		}
	case entity.KindNodegroup:
		for n, r := range o.Nodegroups {
			ids[n] = r.ID
		}
	}
	return ids
}
