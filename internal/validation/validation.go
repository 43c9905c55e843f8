// Package validation contains the logic for validating request data.
//
// It uses the validator library to enforce rules (required fields,
// length bounds) declared in struct tags, and extracts failures into
// the field-error format clients receive.
package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance. validator.Validate caches
// struct metadata, so a single instance is reused across requests.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report json field names ("user_name") instead of Go field names
	// ("UserName") so field errors match the request payload.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	return v
}

// Struct runs tag-based validation on v and returns
// validator.ValidationErrors on failure.
func Struct(v any) error {
	return validate.Struct(v)
}
