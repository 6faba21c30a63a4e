package resolve

import (
	"fmt"

	"github.com/weft/weft/entity"
)

// An UnresolvedReferenceError is returned when a reference field names an
// entity that is not present in the index for its target kind.
//
// A typo, a reference into another environment, and a reference to a kind
// that resolves later are indistinguishable at this point; the error carries
// all four identifiers so a human can tell them apart.
type UnresolvedReferenceError struct {
	FromKind   entity.Kind
	FromName   string
	Field      string
	TargetKind entity.Kind
	TargetName string

	// Suggestion is a declared name close to TargetName, if one exists.
	Suggestion string
}

func (e UnresolvedReferenceError) Error() string {
	msg := fmt.Sprintf("%s %q: field %q references unknown %s %q",
		e.FromKind, e.FromName, e.Field, e.TargetKind, e.TargetName)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}

// An AmbiguousRuleError is returned in strict mode when a security rule
// declares both an explicit CIDR and a peer security group.
type AmbiguousRuleError struct {
	Name string
}

func (e AmbiguousRuleError) Error() string {
	return fmt.Sprintf("security_rule %q: cidr and peer_security_group are mutually exclusive", e.Name)
}

// An InvalidIndexError is returned when an index-based selection is out of
// range. The index is never clamped.
type InvalidIndexError struct {
	Kind  entity.Kind
	Name  string
	Field string
	Index int
	Count int
}

func (e InvalidIndexError) Error() string {
	return fmt.Sprintf("%s %q: %s %d out of range (%d available)",
		e.Kind, e.Name, e.Field, e.Index, e.Count)
}

// An ExternalLookupError is returned when an external collaborator lookup
// (zone directory, image catalog) fails. The resolver does not retry; retry
// policy belongs to the collaborator.
type ExternalLookupError struct {
	Kind   entity.Kind
	Name   string
	Lookup string
	Err    error
}

func (e ExternalLookupError) Error() string {
	return fmt.Sprintf("%s %q: %s lookup: %v", e.Kind, e.Name, e.Lookup, e.Err)
}

// Cause returns the underlying collaborator error.
func (e ExternalLookupError) Cause() error { return e.Err }
