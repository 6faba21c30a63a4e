package entity

import "fmt"

// A DuplicateNameError is returned when two entities of the same kind share
// a name within one environment.
type DuplicateNameError struct {
	Kind Kind
	Name string
}

func (e DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate %s name %q", e.Kind, e.Name)
}

// A MissingRequiredFieldError is returned when a declaration does not set a
// field that is mandatory for its kind.
type MissingRequiredFieldError struct {
	Kind  Kind
	Name  string
	Field string
}

func (e MissingRequiredFieldError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%s: missing required field %q", e.Kind, e.Field)
	}
	return fmt.Sprintf("%s %q: missing required field %q", e.Kind, e.Name, e.Field)
}
