package wizard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// FieldError is one failed rule, attributed to the step that owns the
// field. These never reach the network; they are resolved locally.
type FieldError struct {
	Field   string
	Step    int
	Message string
}

// ValidateDraft normalizes the draft then runs every field rule, returning
// nil when the draft is ready to submit.
func ValidateDraft(d *Draft) []FieldError {
	d.normalize()

	err := validate.Struct(d)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "Draft", Step: StepBasicInfo, Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		field := fieldPath(fe)
		step, _ := stepForField(field)
		out = append(out, FieldError{
			Field:   field,
			Step:    step,
			Message: messageFor(field, fe),
		})
	}
	return out
}

// fieldPath strips the root struct name from the validator namespace:
// "Draft.Tenants[0].Email" -> "Tenants[0].Email".
func fieldPath(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

// ruleKey collapses slice indexes so "Tenants[3].Email" and
// "Tenants[0].Email" share one message entry.
func ruleKey(field string) string {
	var b strings.Builder
	skip := false
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case '[':
			skip = true
		case ']':
			skip = false
		default:
			if !skip {
				b.WriteByte(field[i])
			}
		}
	}
	return b.String()
}

// messages reproduces the form's user-facing copy, keyed by field and rule.
var messages = map[string]map[string]string{
	"Name": {
		"required": "Property name is required",
		"min":      "Name must be at least 3 characters",
		"max":      "Name must be less than 50 characters",
	},
	"Type": {
		"required": "Property type is required",
		"oneof":    "Invalid property type",
	},
	"Currency": {
		"required": "Currency is required",
		"oneof":    "Invalid currency",
	},
	"Value": {
		"gte": "Value must be a non-negative number",
	},
	"Location.Address": {
		"required": "Address is required",
		"min":      "Address must be at least 5 characters",
		"max":      "Address must be less than 200 characters",
	},
	"Location.City": {
		"required": "City is required",
		"min":      "City must be at least 2 characters",
		"max":      "City must be less than 100 characters",
	},
	"Location.Country": {
		"required": "Country is required",
		"min":      "Country must be at least 2 characters",
		"max":      "Country must be less than 100 characters",
	},
	"Location.PostalCode": {
		"required": "Postal code is required",
		"min":      "Postal code must be at least 2 characters",
		"max":      "Postal code must be less than 20 characters",
	},
	"Tenants.Name": {
		"required": "Name is required",
		"min":      "Name must be at least 2 characters",
	},
	"Tenants.Email": {
		"required": "Email is required",
		"email":    "Invalid email address",
	},
}

func messageFor(field string, fe validator.FieldError) string {
	if byTag, ok := messages[ruleKey(field)]; ok {
		if msg, ok := byTag[fe.Tag()]; ok {
			return msg
		}
	}
	return fmt.Sprintf("%s is invalid", field)
}
