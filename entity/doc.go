// Package entity defines the closed set of infrastructure entity kinds, the
// typed declaration structs for each kind, the kind-level dependency order,
// and the validated per-environment catalog.
//
// Declarations are plain data as the user wrote them. Resolution of name
// references and derived defaults happens in the resolve package.
package entity
