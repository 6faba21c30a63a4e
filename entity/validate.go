package entity

import (
	"reflect"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/go-playground/validator.v9"
)

var check = validator.New()

func init() {
	// Report field names as they appear in the configuration document.
	check.RegisterTagNameFunc(func(fld reflect.StructField) string {
		tag := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if tag == "-" {
			return ""
		}
		return tag
	})
}

// validateDecl checks the kind-mandatory fields of a single declaration.
func validateDecl(kind Kind, name string, decl interface{}) error {
	err := check.Struct(decl)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// InvalidValidationError; indicates a non-struct declaration, which
		// is a bug in the catalog.
		return errors.Wrapf(err, "validate %s %q", kind, name)
	}
	fe := verrs[0]
	if fe.Tag() == "required" {
		return MissingRequiredFieldError{Kind: kind, Name: name, Field: fe.Field()}
	}
	return errors.Wrapf(verrs, "validate %s %q", kind, name)
}
