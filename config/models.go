package config

import (
	"sort"

	"github.com/weft/weft/entity"
)

// A Document is the root structure of the declared configuration: per
// environment, per kind, lists of named entity declarations.
type Document struct {
	// Project is an optional project name, used to scope persisted state.
	Project string `yaml:"project"`

	// Environments maps an environment name to the entities declared for
	// it. Environments are independent; references never cross them.
	Environments map[string]*entity.Declarations `yaml:"environments"`
}

// Environment returns the declarations for the named environment.
//
// An environment with no declarations, or one that is not present in the
// document at all, yields an empty declaration set, never an error. Callers
// must treat "nothing configured" as the normal case.
func (d *Document) Environment(name string) *entity.Declarations {
	if d == nil || d.Environments == nil {
		return &entity.Declarations{}
	}
	decls := d.Environments[name]
	if decls == nil {
		return &entity.Declarations{}
	}
	return decls
}

// EnvironmentNames returns the names of all declared environments,
// lexicographically sorted.
func (d *Document) EnvironmentNames() []string {
	if d == nil {
		return nil
	}
	names := make([]string, 0, len(d.Environments))
	for name := range d.Environments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Merge adds the contents of other into the document. Environments present
// in both have their declarations appended; duplicate entity names
// introduced by merging surface when the catalog is built.
func (d *Document) Merge(other *Document) {
	if other == nil {
		return
	}
	if d.Project == "" {
		d.Project = other.Project
	}
	for name, decls := range other.Environments {
		if d.Environments == nil {
			d.Environments = make(map[string]*entity.Declarations)
		}
		if existing, ok := d.Environments[name]; ok {
			existing.Append(decls)
			continue
		}
		d.Environments[name] = decls
	}
}
