// Package resolve turns a validated entity catalog into a fully resolved
// output graph.
//
// Resolution proceeds kind by kind in the fixed order declared in the
// entity package. As each kind finishes, its name→ID index becomes
// available to later kinds; a reference field is resolved by looking up the
// referenced name in the index for its target kind. Derived defaults
// (availability zones, node images, route targets, rule sources) are
// computed in the same pass. The assembled output is immutable; a new run
// starts again from raw declarations.
package resolve
