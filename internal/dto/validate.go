package dto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

// validate reuses the gin "binding" tags so requests that do not arrive over
// HTTP (CLI, scheduler, tests) get exactly the same checks.
var validate = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName("binding")
	return v
}()

// Validate checks req against its binding tags. Failures wrap apperrors.ErrValidation.
func Validate(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		msgs := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			msgs = append(msgs, fmt.Sprintf("%s failed on '%s'", fe.Namespace(), fe.Tag()))
		}
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, strings.Join(msgs, "; "))
	}
	return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
}
