package entity

// A Catalog holds the declared entities for one environment, keyed by name.
//
// A catalog is only constructed through NewCatalog, which guarantees that
// names are unique per kind and that every declaration carries its
// kind-mandatory fields.
type Catalog struct {
	VPCs                   map[string]VPC
	Subnets                map[string]Subnet
	SecurityGroups         map[string]SecurityGroup
	InternetGateways       map[string]InternetGateway
	ElasticIPs             map[string]ElasticIP
	NATGateways            map[string]NATGateway
	RouteTables            map[string]RouteTable
	RouteTableAssociations map[string]RouteTableAssociation
	SecurityRules          map[string]SecurityRule
	Endpoints              map[string]Endpoint
	Clusters               map[string]Cluster
	Nodegroups             map[string]Nodegroup
}

// Names returns the declared names for a kind, unsorted.
func (c *Catalog) Names(kind Kind) []string {
	var out []string
	switch kind {
	case KindVPC:
		for n := range c.VPCs {
			out = append(out, n)
		}
	case KindSubnet:
		for n := range c.Subnets {
			out = append(out, n)
		}
	case KindSecurityGroup:
		for n := range c.SecurityGroups {
			out = append(out, n)
		}
	case KindInternetGateway:
		for n := range c.InternetGateways {
			out = append(out, n)
		}
	case KindElasticIP:
		for n := range c.ElasticIPs {
			out = append(out, n)
		}
	case KindNATGateway:
		for n := range c.NATGateways {
			out = append(out, n)
		}
	case KindRouteTable:
		for n := range c.RouteTables {
			out = append(out, n)
		}
	case KindRouteTableAssociation:
		for n := range c.RouteTableAssociations {
			out = append(out, n)
		}
	case KindSecurityRule:
		for n := range c.SecurityRules {
			out = append(out, n)
		}
	case KindEndpoint:
		for n := range c.Endpoints {
			out = append(out, n)
		}
	case KindCluster:
		for n := range c.Clusters {
			out = append(out, n)
		}
	case KindNodegroup:
		for n := range c.Nodegroups {
			out = append(out, n)
		}
	}
	return out
}

// NewCatalog builds a catalog from raw declarations.
//
// Returns DuplicateNameError if two entities of the same kind share a name,
// or MissingRequiredFieldError if a declaration is missing a mandatory
// field. The first error encountered aborts the build.
func NewCatalog(decls *Declarations) (*Catalog, error) {
	if decls == nil {
		decls = &Declarations{}
	}

	c := &Catalog{
		VPCs:                   make(map[string]VPC, len(decls.VPCs)),
		Subnets:                make(map[string]Subnet, len(decls.Subnets)),
		SecurityGroups:         make(map[string]SecurityGroup, len(decls.SecurityGroups)),
		InternetGateways:       make(map[string]InternetGateway, len(decls.InternetGateways)),
		ElasticIPs:             make(map[string]ElasticIP, len(decls.ElasticIPs)),
		NATGateways:            make(map[string]NATGateway, len(decls.NATGateways)),
		RouteTables:            make(map[string]RouteTable, len(decls.RouteTables)),
		RouteTableAssociations: make(map[string]RouteTableAssociation, len(decls.RouteTableAssociations)),
		SecurityRules:          make(map[string]SecurityRule, len(decls.SecurityRules)),
		Endpoints:              make(map[string]Endpoint, len(decls.Endpoints)),
		Clusters:               make(map[string]Cluster, len(decls.Clusters)),
		Nodegroups:             make(map[string]Nodegroup, len(decls.Nodegroups)),
	}

	for _, d := range decls.VPCs {
		if err := c.add(KindVPC, d.Name, d, func() bool { _, ok := c.VPCs[d.Name]; return ok }); err != nil {
			return nil, err
		}
		c.VPCs[d.Name] = d
	}
	for _, d := range decls.Subnets {
		if err := c.add(KindSubnet, d.Name, d, func() bool { _, ok := c.Subnets[d.Name]; return ok }); err != nil {
			return nil, err
		}
		c.Subnets[d.Name] = d
	}
	for _, d := range decls.SecurityGroups {
		if err := c.add(KindSecurityGroup, d.Name, d, func() bool { _, ok := c.SecurityGroups[d.Name]; return ok }); err != nil {
			return nil, err
		}
		c.SecurityGroups[d.Name] = d
	}
	for _, d := range decls.InternetGateways {
		if err := c.add(KindInternetGateway, d.Name, d, func() bool { _, ok := c.InternetGateways[d.Name]; return ok }); err != nil {
			return nil, err
		}
		c.InternetGateways[d.Name] = d
	}
	for _, d := range decls.ElasticIPs {
		if err := c.add(KindElasticIP, d.Name, d, func() bool { _, ok := c.ElasticIPs[d.Name]; return ok }); err != nil {
			return nil, err
		}
		c.ElasticIPs[d.Name] = d
	}
	for _, d := range decls.NATGateways {
		if err := c.add(KindNATGateway, d.Name, d, func() bool { _, ok := c.NATGateways[d.Name]; return ok }); err != nil {
			return nil, err
		}
		c.NATGateways[d.Name] = d
	}
	for _, d := range decls.RouteTables {
		if err := c.add(KindRouteTable, d.Name, d, func() bool { _, ok := c.RouteTables[d.Name]; return ok }); err != nil {
			return nil, err
		}
		c.RouteTables[d.Name] = d
	}
	for _, d := range decls.RouteTableAssociations {
		if err := c.add(KindRouteTableAssociation, d.Name, d, func() bool { _, ok := c.RouteTableAssociations[d.Name]; return ok }); err != nil {
			return nil, err
		}
		c.RouteTableAssociations[d.Name] = d
	}
	for _, d := range decls.SecurityRules {
		if err := c.add(KindSecurityRule, d.Name, d, func() bool { _, ok := c.SecurityRules[d.Name]; return ok }); err != nil {
			return nil, err
		}
		c.SecurityRules[d.Name] = d
	}
	for _, d := range decls.Endpoints {
		if err := c.add(KindEndpoint, d.Name, d, func() bool { _, ok := c.Endpoints[d.Name]; return ok }); err != nil {
			return nil, err
		}
		c.Endpoints[d.Name] = d
	}
	for _, d := range decls.Clusters {
		if err := c.add(KindCluster, d.Name, d, func() bool { _, ok := c.Clusters[d.Name]; return ok }); err != nil {
			return nil, err
		}
		c.Clusters[d.Name] = d
	}
	for _, d := range decls.Nodegroups {
		if err := c.add(KindNodegroup, d.Name, d, func() bool { _, ok := c.Nodegroups[d.Name]; return ok }); err != nil {
			return nil, err
		}
		c.Nodegroups[d.Name] = d
	}

	return c, nil
}

// add performs the shared per-declaration checks: mandatory fields, then
// name uniqueness within the kind.
func (c *Catalog) add(kind Kind, name string, decl interface{}, exists func() bool) error {
	if err := validateDecl(kind, name, decl); err != nil {
		return err
	}
	if exists() {
		return DuplicateNameError{Kind: kind, Name: name}
	}
	return nil
}
