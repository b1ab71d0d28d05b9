package dto

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func init() {
	// Report field names from json tags instead of struct field names.
	validate.RegisterTagNameFunc(useJSONTagNames)
}

func useJSONTagNames(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// Validate runs struct tag validation over a decoded request.
func Validate(req any) error {
	return validate.Struct(req)
}

// ValidationFields flattens validator errors into a field-to-message map for
// error responses. Returns nil if err is not a validation error.
func ValidationFields(err error) map[string]string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}

	fields := make(map[string]string, len(errs))
	for _, fieldError := range errs {
		var message string
		switch fieldError.Tag() {
		case "required":
			message = "this field is required"
		case "oneof":
			message = "must be one of: " + fieldError.Param()
		case "max":
			message = "value is too long (maximum " + fieldError.Param() + ")"
		default:
			message = "invalid value"
		}
		fields[fieldError.Field()] = message
	}

	return fields
}
