package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var errMsgs []string
	for _, fieldErr := range err.(validator.ValidationErrors) {
		msg := fmt.Sprintf("field %s failed on %q", fieldErr.Namespace(), fieldErr.Tag())
		if fieldErr.Param() != "" {
			msg += fmt.Sprintf(" (param %s)", fieldErr.Param())
		}
		errMsgs = append(errMsgs, msg)
	}

	return fmt.Errorf("validation failed: %s", strings.Join(errMsgs, "; "))
}
