package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// bindingError renders a ShouldBindJSON failure into the body of a 400
// response, flattening validator field errors into one readable message.
func bindingError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs[i] = fmt.Sprintf("%s is required", jsonField(fe))
		case "email":
			msgs[i] = fmt.Sprintf("%s must be a valid email address", jsonField(fe))
		case "min":
			msgs[i] = fmt.Sprintf("%s must be at least %s characters", jsonField(fe), fe.Param())
		default:
			msgs[i] = fmt.Sprintf("%s is invalid", jsonField(fe))
		}
	}
	return strings.Join(msgs, "; ")
}

// jsonField spells a struct field the way the request body does.
func jsonField(fe validator.FieldError) string {
	name := fe.Field()
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}
