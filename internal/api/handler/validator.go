package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps form field names to user-facing messages. It implements
// error so echo's c.Validate can return it directly.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	msgs := make([]string, 0, len(fe))
	for field, msg := range fe {
		msgs = append(msgs, field+": "+msg)
	}
	return strings.Join(msgs, "; ")
}

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	return &echoValidator{v: validator.New()}
}

// Validate satisfies the echo.Validator interface. Struct validation
// failures come back as FieldErrors keyed by the form field name.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			fields := make(FieldErrors, len(ve))
			for _, fe := range ve {
				fields[fieldName(fe)] = fieldMessage(fe)
			}
			return fields
		}
		return err
	}
	return nil
}

// fieldName converts the struct field name to its form counterpart
// (Password2 → password2, ImageURL → image_url, JobType → job_type).
func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && name[i-1] >= 'a' && name[i-1] <= 'z' {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return strings.ReplaceAll(b.String(), "u_r_l", "url")
}

// fieldMessage converts a single ValidationError into a human-readable message.
func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Please enter a valid email address."
	case "eqfield":
		return "Passwords must match."
	case "min":
		return fmt.Sprintf("Must be at least %s characters long.", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters long.", fe.Param())
	case "oneof":
		return "Please choose one of the listed options."
	default:
		return fmt.Sprintf("Failed validation (%s).", fe.Tag())
	}
}
