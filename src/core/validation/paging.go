package validation

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"jokecatalog/src/core/domain"
)

var structValidator = validator.New(validator.WithRequiredStructEnabled())

// Paging checks the constraints declared on domain.PagingFilter.
// Page is reported before Limit when both are out of range.
func Paging(filter domain.PagingFilter) error {
	err := structValidator.Struct(filter)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	switch verrs[0].Field() {
	case "Page":
		return domain.PagingPageInvalid()
	case "Limit":
		return domain.PagingLimitInvalid()
	default:
		return domain.NewValidationError(verrs[0].Field(), verrs[0].Tag(), verrs[0].Error())
	}
}
