package entity

// Declarations in this file describe entities as the user wrote them.
// Reference fields hold the *name* of another entity, never an identifier;
// identifiers are attached during resolution.

// A VPC declares a virtual private network.
type VPC struct {
	// Name is a unique name (within the same kind and environment) for the
	// network.
	Name string `yaml:"name" validate:"required"`

	// CIDRBlock is the IPv4 address range for the network.
	CIDRBlock string `yaml:"cidr_block" validate:"required"`

	// Region the network is created in. Availability zones for subnets are
	// listed from this region.
	Region string `yaml:"region" validate:"required"`

	// Tenancy of instances launched into the network. Empty means default
	// tenancy.
	Tenancy string `yaml:"tenancy"`

	EnableDNSSupport   bool `yaml:"enable_dns_support"`
	EnableDNSHostnames bool `yaml:"enable_dns_hostnames"`
}

// A Subnet declares an address range within a VPC.
type Subnet struct {
	Name string `yaml:"name" validate:"required"`

	// VPC is the name of the owning network.
	VPC string `yaml:"vpc" validate:"required"`

	CIDRBlock string `yaml:"cidr_block" validate:"required"`

	// AZIndex selects the availability zone from the ordered zone list of
	// the owning network's region. An index outside the zone list is a hard
	// error.
	AZIndex int `yaml:"az_index"`

	// Public marks the subnet as publicly routable. Informational; routing
	// is controlled by route tables.
	Public bool `yaml:"public"`
}

// A SecurityGroup declares a named firewall group within a VPC. Rules are
// declared separately as SecurityRule entities.
type SecurityGroup struct {
	Name        string `yaml:"name" validate:"required"`
	VPC         string `yaml:"vpc" validate:"required"`
	Description string `yaml:"description"`
}

// An InternetGateway declares an internet egress/ingress path for a VPC.
type InternetGateway struct {
	Name string `yaml:"name" validate:"required"`
	VPC  string `yaml:"vpc" validate:"required"`
}

// An ElasticIP declares a static public address allocation.
type ElasticIP struct {
	Name string `yaml:"name" validate:"required"`

	// Domain the address is allocated in. Empty means the provider default.
	Domain string `yaml:"domain"`
}

// A NATGateway declares a NAT gateway placed in a subnet, using an elastic
// IP allocation.
type NATGateway struct {
	Name      string `yaml:"name" validate:"required"`
	Subnet    string `yaml:"subnet" validate:"required"`
	ElasticIP string `yaml:"elastic_ip" validate:"required"`
}

// A RouteTarget names the kind of target a route points at.
type RouteTarget string

// Route targets. Internet and NAT gateway targets are resolved by name;
// every other target is passed through verbatim as a provider identifier.
const (
	TargetInternetGateway RouteTarget = "igw"
	TargetNATGateway      RouteTarget = "nat"
	TargetVPNGateway      RouteTarget = "vgw"
	TargetTransitGateway  RouteTarget = "tgw"
	TargetOther           RouteTarget = "other"
)

// A Route declares a single route entry in a route table.
type Route struct {
	// Destination is the CIDR block the route applies to.
	Destination string `yaml:"destination" validate:"required"`

	// TargetType selects how TargetKey is interpreted.
	TargetType RouteTarget `yaml:"target_type" validate:"required"`

	// TargetKey is an entity name for igw/nat targets, and a literal
	// provider identifier for everything else.
	TargetKey string `yaml:"target_key" validate:"required"`
}

// A RouteTable declares a routing table within a VPC.
type RouteTable struct {
	Name   string  `yaml:"name" validate:"required"`
	VPC    string  `yaml:"vpc" validate:"required"`
	Routes []Route `yaml:"routes" validate:"omitempty,dive"`
}

// A RouteTableAssociation attaches a route table to a subnet.
type RouteTableAssociation struct {
	Name       string `yaml:"name" validate:"required"`
	RouteTable string `yaml:"route_table" validate:"required"`
	Subnet     string `yaml:"subnet" validate:"required"`
}

// A SecurityRule declares a single ingress or egress rule on a security
// group.
//
// The source of the rule is polymorphic on which optional fields are set:
// a peer security group reference takes precedence, then an explicit CIDR,
// and finally the CIDR block of the group's owning VPC.
type SecurityRule struct {
	Name string `yaml:"name" validate:"required"`

	// SecurityGroup is the name of the owning group.
	SecurityGroup string `yaml:"security_group" validate:"required"`

	// Direction is ingress or egress.
	Direction string `yaml:"direction" validate:"required"`

	// Protocol of the rule. The all-protocols sentinel ("-1" or "all")
	// removes any port restriction.
	Protocol string `yaml:"protocol" validate:"required"`

	FromPort *int64 `yaml:"from_port"`
	ToPort   *int64 `yaml:"to_port"`

	// CIDR is an explicit source/destination range.
	CIDR string `yaml:"cidr"`

	// PeerSecurityGroup is the name of a peer group to allow traffic
	// from/to instead of a CIDR range.
	PeerSecurityGroup string `yaml:"peer_security_group"`
}

// Endpoint types.
const (
	EndpointInterface = "interface"
	EndpointGateway   = "gateway"
)

// An Endpoint declares a VPC endpoint for a provider service.
//
// Interface endpoints attach to subnets and security groups; gateway
// endpoints attach to route tables. The two attachment sets are mutually
// exclusive.
type Endpoint struct {
	Name    string `yaml:"name" validate:"required"`
	VPC     string `yaml:"vpc" validate:"required"`
	Service string `yaml:"service" validate:"required"`

	// Type is interface or gateway.
	Type string `yaml:"endpoint_type" validate:"required"`

	Subnets        []string `yaml:"subnets"`
	SecurityGroups []string `yaml:"security_groups"`
	RouteTables    []string `yaml:"route_tables"`

	PrivateDNS bool `yaml:"private_dns"`
}

// A Cluster declares a managed Kubernetes control plane.
type Cluster struct {
	Name string `yaml:"name" validate:"required"`

	// Version is the Kubernetes version for the control plane. Nodegroups
	// without an explicit version inherit it.
	Version string `yaml:"version" validate:"required"`

	// RoleARN is the service role the control plane assumes. Passed through
	// verbatim.
	RoleARN string `yaml:"role_arn"`

	Subnets        []string `yaml:"subnets" validate:"required"`
	SecurityGroups []string `yaml:"security_groups"`
}

// A Nodegroup declares a group of worker nodes attached to a cluster.
type Nodegroup struct {
	Name    string `yaml:"name" validate:"required"`
	Cluster string `yaml:"cluster" validate:"required"`

	// Subnets the nodes are placed in. When empty, the nodegroup inherits
	// the subnets of its cluster.
	Subnets []string `yaml:"subnets"`

	InstanceTypes []string `yaml:"instance_types"`

	MinSize     int64 `yaml:"min_size"`
	MaxSize     int64 `yaml:"max_size"`
	DesiredSize int64 `yaml:"desired_size"`

	// InstanceImage is an explicit node image identifier. When empty, the
	// image is looked up from the image catalog by Kubernetes version and
	// architecture.
	InstanceImage string `yaml:"instance_image"`

	// Version overrides the cluster's Kubernetes version for the image
	// lookup.
	Version string `yaml:"version"`

	// Architecture of the node image. Defaults to x86_64.
	Architecture string `yaml:"architecture"`
}

// Declarations holds the raw declared entities for one environment, grouped
// by kind. A nil or missing group means no entities of that kind are
// configured, which is the normal case, not an error.
type Declarations struct {
	VPCs                   []VPC                   `yaml:"vpcs"`
	Subnets                []Subnet                `yaml:"subnets"`
	SecurityGroups         []SecurityGroup         `yaml:"security_groups"`
	InternetGateways       []InternetGateway       `yaml:"internet_gateways"`
	ElasticIPs             []ElasticIP             `yaml:"elastic_ips"`
	NATGateways            []NATGateway            `yaml:"nat_gateways"`
	RouteTables            []RouteTable            `yaml:"route_tables"`
	RouteTableAssociations []RouteTableAssociation `yaml:"route_table_associations"`
	SecurityRules          []SecurityRule          `yaml:"security_rules"`
	Endpoints              []Endpoint              `yaml:"endpoints"`
	Clusters               []Cluster               `yaml:"clusters"`
	Nodegroups             []Nodegroup             `yaml:"nodegroups"`
}

// Append adds all declarations from other. Duplicate names introduced by
// appending are caught when the catalog is built.
func (d *Declarations) Append(other *Declarations) {
	if other == nil {
		return
	}
	d.VPCs = append(d.VPCs, other.VPCs...)
	d.Subnets = append(d.Subnets, other.Subnets...)
	d.SecurityGroups = append(d.SecurityGroups, other.SecurityGroups...)
	d.InternetGateways = append(d.InternetGateways, other.InternetGateways...)
	d.ElasticIPs = append(d.ElasticIPs, other.ElasticIPs...)
	d.NATGateways = append(d.NATGateways, other.NATGateways...)
	d.RouteTables = append(d.RouteTables, other.RouteTables...)
	d.RouteTableAssociations = append(d.RouteTableAssociations, other.RouteTableAssociations...)
	d.SecurityRules = append(d.SecurityRules, other.SecurityRules...)
	d.Endpoints = append(d.Endpoints, other.Endpoints...)
	d.Clusters = append(d.Clusters, other.Clusters...)
	d.Nodegroups = append(d.Nodegroups, other.Nodegroups...)
}
