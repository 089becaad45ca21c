package usecase

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	domainErrors "github.com/polkiloo/userhub/internal/domain/errors"
	"github.com/polkiloo/userhub/internal/domain/model"
)

const (
	minPasswordLength = 6
	// bcrypt only accepts this many bytes of input.
	maxPasswordBytes = 72
)

var errPasswordTooLong = errors.New("Password must be at most 72 bytes long")

var (
	registrationFields = []string{"firstName", "lastName", "email", "password"}
	credentialFields   = []string{"email", "password"}
)

func validateRegistration(r model.Registration) error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.Required.Error("First name is required")),
		validation.Field(&r.LastName, validation.Required.Error("Last name is required")),
		validation.Field(&r.Email,
			validation.Required.Error("Invalid email format"),
			is.Email.Error("Invalid email format"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("Password must be at least 6 characters long"),
			validation.Length(minPasswordLength, 0).Error("Password must be at least 6 characters long"),
			validation.By(maxBytes(maxPasswordBytes, errPasswordTooLong)),
		),
	)
	return toValidationError(err, registrationFields)
}

func validateCredentials(c model.Credentials) error {
	err := validation.ValidateStruct(&c,
		validation.Field(&c.Email,
			validation.Required.Error("Invalid email format"),
			is.Email.Error("Invalid email format"),
		),
		validation.Field(&c.Password, validation.Required.Error("Password is required")),
	)
	return toValidationError(err, credentialFields)
}

// maxBytes limits the byte length of a string; ozzo Length counts runes.
func maxBytes(limit int, err error) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if len(s) > limit {
			return err
		}
		return nil
	}
}

// toValidationError flattens ozzo field errors into the taxonomy, keeping
// fields in form order.
func toValidationError(err error, order []string) error {
	if err == nil {
		return nil
	}
	var errs validation.Errors
	if !errors.As(err, &errs) {
		return err
	}
	fields := make([]domainErrors.FieldError, 0, len(errs))
	for _, name := range order {
		if fieldErr, ok := errs[name]; ok && fieldErr != nil {
			fields = append(fields, domainErrors.FieldError{Field: name, Message: fieldErr.Error()})
		}
	}
	return domainErrors.Validation(fields)
}
