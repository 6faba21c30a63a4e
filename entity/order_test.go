package entity

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOrder(t *testing.T) {
	got := Order()

	want := []Kind{
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
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("Order() (-got +want)\n%s", diff)
	}
}

func TestOrderAfterDependencies(t *testing.T) {
	pos := make(map[Kind]int)
	for i, k := range Order() {
		if _, ok := pos[k]; ok {
			t.Fatalf("Order() lists %q twice", k)
		}
		pos[k] = i
	}
	if len(pos) != len(Kinds) {
		t.Fatalf("Order() has %d kinds, want %d", len(pos), len(Kinds))
	}

	for _, k := range Kinds {
		for _, dep := range DependsOn(k) {
			if pos[dep] >= pos[k] {
				t.Errorf("%q resolves at %d but its dependency %q at %d", k, pos[k], dep, pos[dep])
			}
		}
	}
}

func TestOrderCopies(t *testing.T) {
	a := Order()
	a[0] = KindNodegroup
	if b := Order(); b[0] != KindVPC {
		t.Errorf("Order() = %v, mutated by an earlier caller", b)
	}
}
