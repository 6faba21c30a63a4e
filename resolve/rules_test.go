package resolve

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/weft/weft/entity"
)

func TestClassifyRule(t *testing.T) {
	tests := []struct {
		name    string
		rule    entity.SecurityRule
		strict  bool
		want    ruleSource
		wantErr bool
	}{
		{
			name: "Peer",
			rule: entity.SecurityRule{Name: "r", PeerSecurityGroup: "db"},
			want: peerSource{group: "db"},
		},
		{
			name: "CIDR",
			rule: entity.SecurityRule{Name: "r", CIDR: "10.0.0.0/8"},
			want: cidrSource{cidr: "10.0.0.0/8"},
		},
		{
			name: "Neither",
			rule: entity.SecurityRule{Name: "r"},
			want: vpcSource{},
		},
		{
			name: "PeerWinsOverCIDR",
			rule: entity.SecurityRule{Name: "r", CIDR: "10.0.0.0/8", PeerSecurityGroup: "db"},
			want: peerSource{group: "db"},
		},
		{
			name:    "BothStrict",
			rule:    entity.SecurityRule{Name: "r", CIDR: "10.0.0.0/8", PeerSecurityGroup: "db"},
			strict:  true,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := classifyRule(tt.rule, tt.strict)
			if tt.wantErr {
				if _, ok := err.(AmbiguousRuleError); !ok {
					t.Fatalf("classifyRule() error = %v, want AmbiguousRuleError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("classifyRule() error = %v", err)
			}
			if diff := cmp.Diff(got, tt.want, cmp.AllowUnexported(peerSource{}, cidrSource{})); diff != "" {
				t.Errorf("classifyRule() (-got +want)\n%s", diff)
			}
		})
	}
}

func TestAllProtocols(t *testing.T) {
	for proto, want := range map[string]bool{
		"-1":  true,
		"all": true,
		"ALL": true,
		"tcp": false,
		"udp": false,
	} {
		if got := allProtocols(proto); got != want {
			t.Errorf("allProtocols(%q) = %t, want %t", proto, got, want)
		}
	}
}

func TestResolveSecurityRules(t *testing.T) {
	port := func(p int64) *int64 { return &p }

	decls := &entity.Declarations{
		VPCs: []entity.VPC{
			{Name: "main", CIDRBlock: "10.0.0.0/16", Region: "us-east-1"},
		},
		SecurityGroups: []entity.SecurityGroup{
			{Name: "app", VPC: "main"},
			{Name: "db", VPC: "main"},
		},
		SecurityRules: []entity.SecurityRule{
			{Name: "web-in", SecurityGroup: "app", Direction: "ingress", Protocol: "tcp",
				FromPort: port(443), ToPort: port(443), CIDR: "0.0.0.0/0"},
			{Name: "db-in", SecurityGroup: "db", Direction: "ingress", Protocol: "tcp",
				FromPort: port(5432), ToPort: port(5432), PeerSecurityGroup: "app",
				// The declared CIDR loses to the peer group.
				CIDR: "0.0.0.0/0"},
			{Name: "vpc-in", SecurityGroup: "app", Direction: "ingress", Protocol: "tcp",
				FromPort: port(8080), ToPort: port(8080)},
			{Name: "all-out", SecurityGroup: "app", Direction: "egress", Protocol: "-1",
				// Ports on an all-protocols rule are dropped.
				FromPort: port(0), ToPort: port(65535), CIDR: "0.0.0.0/0"},
		},
	}

	r := &Resolver{}
	got, err := r.Resolve(context.Background(), "prod", testCatalog(t, decls))
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	want := map[string]SecurityRule{
		"web-in": {
			Name: "web-in", ID: "sgr-web-in", GroupID: "sg-app",
			Direction: "ingress", Protocol: "tcp",
			FromPort: port(443), ToPort: port(443),
			CIDR: "0.0.0.0/0",
		},
		"db-in": {
			Name: "db-in", ID: "sgr-db-in", GroupID: "sg-db",
			Direction: "ingress", Protocol: "tcp",
			FromPort: port(5432), ToPort: port(5432),
			PeerGroupID: "sg-app",
		},
		"vpc-in": {
			Name: "vpc-in", ID: "sgr-vpc-in", GroupID: "sg-app",
			Direction: "ingress", Protocol: "tcp",
			FromPort: port(8080), ToPort: port(8080),
			CIDR: "10.0.0.0/16",
		},
		"all-out": {
			Name: "all-out", ID: "sgr-all-out", GroupID: "sg-app",
			Direction: "egress", Protocol: "-1",
			CIDR: "0.0.0.0/0",
		},
	}
	if diff := cmp.Diff(got.SecurityRules, want); diff != "" {
		t.Errorf("SecurityRules (-got +want)\n%s", diff)
	}
}

func TestResolveSecurityRulesStrict(t *testing.T) {
	decls := &entity.Declarations{
		VPCs: []entity.VPC{
			{Name: "main", CIDRBlock: "10.0.0.0/16", Region: "us-east-1"},
		},
		SecurityGroups: []entity.SecurityGroup{
			{Name: "app", VPC: "main"},
			{Name: "db", VPC: "main"},
		},
		SecurityRules: []entity.SecurityRule{
			{Name: "both", SecurityGroup: "db", Direction: "ingress", Protocol: "tcp",
				CIDR: "0.0.0.0/0", PeerSecurityGroup: "app"},
		},
	}

	r := &Resolver{StrictRules: true}
	_, err := r.Resolve(context.Background(), "prod", testCatalog(t, decls))
	if _, ok := err.(AmbiguousRuleError); !ok {
		t.Fatalf("Resolve() error = %T (%v), want AmbiguousRuleError", err, err)
	}
}

func TestResolveSecurityRuleUnknownPeer(t *testing.T) {
	decls := &entity.Declarations{
		VPCs: []entity.VPC{
			{Name: "main", CIDRBlock: "10.0.0.0/16", Region: "us-east-1"},
		},
		SecurityGroups: []entity.SecurityGroup{
			{Name: "app", VPC: "main"},
		},
		SecurityRules: []entity.SecurityRule{
			{Name: "bad", SecurityGroup: "app", Direction: "ingress", Protocol: "tcp",
				PeerSecurityGroup: "ap"},
		},
	}

	r := &Resolver{}
	_, err := r.Resolve(context.Background(), "prod", testCatalog(t, decls))
	ref, ok := err.(UnresolvedReferenceError)
	if !ok {
		t.Fatalf("Resolve() error = %T (%v), want UnresolvedReferenceError", err, err)
	}
	if ref.Field != "peer_security_group" || ref.Suggestion != "app" {
		t.Errorf("error = %+v, want peer_security_group reference with suggestion", ref)
	}
}
