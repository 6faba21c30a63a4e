package resolve

import (
	"strings"

	"github.com/weft/weft/entity"
)

// ruleSource is the closed set of security rule source shapes. A rule's
// shape is decided by which optional fields are present, never by a tag in
// the input.
type ruleSource interface {
	isRuleSource()
}

// peerSource allows traffic from/to another security group.
type peerSource struct {
	group string
}

// cidrSource allows traffic from/to an explicit address range.
type cidrSource struct {
	cidr string
}

// vpcSource falls back to the address range of the rule's owning VPC.
type vpcSource struct{}

func (peerSource) isRuleSource() {}
func (cidrSource) isRuleSource() {}
func (vpcSource) isRuleSource()  {}

// classifyRule decides the source shape for a security rule.
//
// A peer security group takes precedence over an explicit CIDR; with strict
// set, declaring both is rejected instead.
func classifyRule(d entity.SecurityRule, strict bool) (ruleSource, error) {
	hasPeer := d.PeerSecurityGroup != ""
	hasCIDR := d.CIDR != ""

	switch {
	case hasPeer && hasCIDR && strict:
		return nil, AmbiguousRuleError{Name: d.Name}
	case hasPeer:
		return peerSource{group: d.PeerSecurityGroup}, nil
	case hasCIDR:
		return cidrSource{cidr: d.CIDR}, nil
	default:
		return vpcSource{}, nil
	}
}

// allProtocols reports whether the protocol is the sentinel meaning no port
// restriction.
func allProtocols(protocol string) bool {
	return protocol == "-1" || strings.EqualFold(protocol, "all")
}

func (rn *run) resolveSecurityRules(out *Output) error {
	names := rn.sortedNames(entity.KindSecurityRule)
	out.SecurityRules = make(map[string]SecurityRule, len(names))
	ids := make(map[string]string, len(names))

	for _, name := range names {
		d := rn.catalog.SecurityRules[name]
		rec, err := rn.securityRule(d)
		if err != nil {
			return err
		}
		out.SecurityRules[name] = rec
		ids[name] = rec.ID
	}

	rn.index[entity.KindSecurityRule] = ids
	return nil
}

func (rn *run) securityRule(d entity.SecurityRule) (SecurityRule, error) {
	groupID, err := rn.ref(entity.KindSecurityRule, d.Name, "security_group", entity.KindSecurityGroup, d.SecurityGroup)
	if err != nil {
		return SecurityRule{}, err
	}

	src, err := classifyRule(d, rn.strict)
	if err != nil {
		return SecurityRule{}, err
	}

	var cidr, peerID string
	switch s := src.(type) {
	case peerSource:
		// The peer group wins; any declared CIDR is discarded.
		peerID, err = rn.ref(entity.KindSecurityRule, d.Name, "peer_security_group", entity.KindSecurityGroup, s.group)
		if err != nil {
			return SecurityRule{}, err
		}
	case cidrSource:
		cidr = s.cidr
	case vpcSource:
		// Neither declared: use the owning VPC's range, reached through the
		// rule's group, never re-declared on the rule.
		group := rn.catalog.SecurityGroups[d.SecurityGroup]
		vpc, ok := rn.catalog.VPCs[group.VPC]
		if !ok {
			return SecurityRule{}, UnresolvedReferenceError{
				FromKind:   entity.KindSecurityRule,
				FromName:   d.Name,
				Field:      "cidr",
				TargetKind: entity.KindVPC,
				TargetName: group.VPC,
			}
		}
		cidr = vpc.CIDRBlock
	}

	fromPort, toPort := d.FromPort, d.ToPort
	if allProtocols(d.Protocol) {
		// All-protocols rules carry no port restriction; declared bounds
		// are dropped, not rejected.
		fromPort, toPort = nil, nil
	}

	return SecurityRule{
		Name:        d.Name,
		ID:          rn.id(entity.KindSecurityRule, d.Name),
		GroupID:     groupID,
		Direction:   d.Direction,
		Protocol:    d.Protocol,
		FromPort:    fromPort,
		ToPort:      toPort,
		CIDR:        cidr,
		PeerGroupID: peerID,
	}, nil
}
