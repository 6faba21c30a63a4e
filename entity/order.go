package entity

import (
	"fmt"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// dependsOn declares, per kind, the kinds that entities of that kind may
// reference. The relation is fixed at design time; resolution order is
// derived from it rather than relying on declaration conventions.
var dependsOn = map[Kind][]Kind{
	KindVPC:                   nil,
	KindSubnet:                {KindVPC},
	KindSecurityGroup:         {KindVPC},
	KindInternetGateway:       {KindVPC},
	KindElasticIP:             nil,
	KindNATGateway:            {KindSubnet, KindElasticIP},
	KindRouteTable:            {KindVPC, KindInternetGateway, KindNATGateway},
	KindRouteTableAssociation: {KindRouteTable, KindSubnet},
	KindSecurityRule:          {KindSecurityGroup},
	KindEndpoint:              {KindVPC, KindSubnet, KindSecurityGroup, KindRouteTable},
	KindCluster:               {KindVPC, KindSubnet, KindSecurityGroup},
	KindNodegroup:             {KindCluster, KindSubnet},
}

// DependsOn returns the kinds that entities of the given kind may reference.
func DependsOn(k Kind) []Kind {
	deps := dependsOn[k]
	out := make([]Kind, len(deps))
	copy(out, deps)
	return out
}

var resolutionOrder = mustOrder()

// Order returns the kind-level resolution order. Every kind appears exactly
// once, after all kinds it may reference. The order is fixed for the
// lifetime of the process.
func Order() []Kind {
	out := make([]Kind, len(resolutionOrder))
	copy(out, resolutionOrder)
	return out
}

type kindNode struct {
	graph.Node
	kind Kind
}

// mustOrder builds the kind dependency graph and returns a topological sort
// over it. The graph is defined at compile time; failing to sort it is a bug
// in the kind declarations, not a user error.
func mustOrder() []Kind {
	g := simple.NewDirectedGraph()

	nodes := make(map[Kind]*kindNode, len(Kinds))
	for _, k := range Kinds {
		n := &kindNode{Node: g.NewNode(), kind: k}
		g.AddNode(n)
		nodes[k] = n
	}

	for child, parents := range dependsOn {
		if _, ok := nodes[child]; !ok {
			panic(fmt.Sprintf("entity: dependency declared for unknown kind %q", child))
		}
		for _, parent := range parents {
			p, ok := nodes[parent]
			if !ok {
				panic(fmt.Sprintf("entity: %q depends on unknown kind %q", child, parent))
			}
			g.SetEdge(g.NewEdge(p, nodes[child]))
		}
	}

	sorted, err := topo.SortStabilized(g, nil)
	if err != nil {
		panic(fmt.Sprintf("entity: kind dependencies are cyclic: %v", err))
	}

	out := make([]Kind, len(sorted))
	for i, n := range sorted {
		out[i] = n.(*kindNode).kind
	}
	return out
}
