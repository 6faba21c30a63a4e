package entity

// A Kind identifies one of the closed set of entity kinds that can be
// declared in a configuration document.
type Kind string

// All supported entity kinds.
const (
	KindVPC                   Kind = "vpc"
	KindSubnet                Kind = "subnet"
	KindSecurityGroup         Kind = "security_group"
	KindInternetGateway       Kind = "internet_gateway"
	KindElasticIP             Kind = "elastic_ip"
	KindNATGateway            Kind = "nat_gateway"
	KindRouteTable            Kind = "route_table"
	KindRouteTableAssociation Kind = "route_table_association"
	KindSecurityRule          Kind = "security_rule"
	KindEndpoint              Kind = "endpoint"
	KindCluster               Kind = "cluster"
	KindNodegroup             Kind = "nodegroup"
)

// Kinds lists every entity kind. The order matches the canonical resolution
// order; Order() validates it against the declared dependencies.
var Kinds = []Kind{
	KindVPC,
	KindSubnet,
	KindSecurityGroup,
	KindInternetGateway,
	KindElasticIP,
	KindNATGateway,
	KindRouteTable,
	KindRouteTableAssociation,
	KindSecurityRule,
	KindEndpoint,
	KindCluster,
	KindNodegroup,
}

func (k Kind) String() string { return string(k) }

// IDPrefix returns the identifier prefix used when generating a placeholder
// identifier for an entity that has not been provisioned yet.
func (k Kind) IDPrefix() string {
	switch k {
	case KindVPC:
		return "vpc"
	case KindSubnet:
		return "subnet"
	case KindSecurityGroup:
		return "sg"
	case KindInternetGateway:
		return "igw"
	case KindElasticIP:
		return "eipalloc"
	case KindNATGateway:
		return "nat"
	case KindRouteTable:
		return "rtb"
	case KindRouteTableAssociation:
		return "rtbassoc"
	case KindSecurityRule:
		return "sgr"
	case KindEndpoint:
		return "vpce"
	case KindCluster:
		return "cluster"
	case KindNodegroup:
		return "ng"
	}
	return string(k)
}
