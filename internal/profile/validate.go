// Package profile validates raw user profiles and condenses them into the
// bounded summaries the rest of the pipeline consumes.
package profile

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/career-compass/internal/types"
)

// validate is a shared validator instance; validator.Validate is safe for
// concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a user profile against the input schema. It returns a
// *ValidationError describing the first violation found, or nil when the
// profile is acceptable. No partial computation happens on invalid input.
func Validate(userProfile *types.UserProfile) error {
	if userProfile == nil {
		return &ValidationError{Message: "profile is nil"}
	}

	if err := validate.Struct(userProfile); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			first := fieldErrs[0]
			return &ValidationError{
				Field:   first.Namespace(),
				Message: "failed " + first.Tag() + " constraint",
			}
		}
		return &ValidationError{Message: err.Error()}
	}

	if userProfile.SalaryExpectations.Min < 0 || userProfile.SalaryExpectations.Max < 0 {
		return &ValidationError{Field: "salary_expectations", Message: "salary must not be negative"}
	}
	if !userProfile.SalaryExpectations.IsZero() &&
		userProfile.SalaryExpectations.Min > userProfile.SalaryExpectations.Max {
		return &ValidationError{Field: "salary_expectations", Message: "min exceeds max"}
	}

	return nil
}
