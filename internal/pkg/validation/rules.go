package validation

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/yigit/studentrecords/internal/pkg/apperrors"
)

// Column limits of the schema in migrations/.
const (
	PersonNameMaxLength     = 100
	EmailMaxLength          = 200
	PhoneMaxLength          = 30
	AddressMaxLength        = 300
	CourseNameMaxLength     = 200
	CourseCodeMaxLength     = 20
	DepartmentNameMaxLength = 100
	DepartmentCodeMaxLength = 20
)

// CourseCodePattern accepts upper-case codes such as CS101 or MATH-201.
var CourseCodePattern = regexp.MustCompile(`^[A-Z0-9][A-Z0-9-]*$`)

// StringRule checks one string field. Lengths count runes.
type StringRule struct {
	Field    string
	Value    string
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
	// PatternHint completes "<field> must ..." when Pattern does not match.
	PatternHint string
}

// Required starts a rule for a mandatory field.
func Required(field, value string) *StringRule {
	return &StringRule{Field: field, Value: value, Required: true}
}

// Optional starts a rule for a field that may be empty.
func Optional(field string, value *string) *StringRule {
	r := &StringRule{Field: field}
	if value != nil {
		r.Value = *value
	}
	return r
}

func (r *StringRule) WithMaxLength(max int) *StringRule {
	r.MaxLen = max
	return r
}

func (r *StringRule) WithPattern(pattern *regexp.Regexp, hint string) *StringRule {
	r.Pattern = pattern
	r.PatternHint = hint
	return r
}

// Validate returns a validation error naming the field, or nil.
func (r *StringRule) Validate() error {
	if r.Value == "" {
		if r.Required {
			return apperrors.NewValidationError(r.Field, fmt.Sprintf("%s cannot be empty", r.Field))
		}
		return nil
	}

	if r.MaxLen > 0 && utf8.RuneCountInString(r.Value) > r.MaxLen {
		return apperrors.NewValidationError(r.Field, fmt.Sprintf("%s must be at most %d characters", r.Field, r.MaxLen))
	}

	if r.Pattern != nil && !r.Pattern.MatchString(r.Value) {
		return apperrors.NewValidationError(r.Field, fmt.Sprintf("%s must %s", r.Field, r.PatternHint))
	}

	return nil
}

// First runs the rules in order and returns the first failure.
func First(rules ...*StringRule) error {
	for _, r := range rules {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	return nil
}
