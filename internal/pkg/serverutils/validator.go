// FILE: internal/pkg/serverutils/validator.go
package serverutils

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest checks a DTO's `validate` tags and reports the first
// violation as a 400 ApiError.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			first := errs[0]
			return NewValidationError(fmt.Sprintf("Field '%s' failed on '%s' validation", first.Field(), first.Tag()))
		}
		return NewValidationError(err.Error())
	}
	return nil
}
