package validate

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"vendorhub/internal/domain"
	"vendorhub/internal/schema"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneChars   = regexp.MustCompile(`^\+?[0-9 ()./-]+$`)
)

const (
	minPhoneDigits = 7
	maxPhoneDigits = 15
)

// Validate applies the registry rules to every field, in registry order,
// and returns the field-to-message mapping. Absence of a key means the
// field has no error. Unknown names in the form are reported too, so a
// drifted draft file cannot silently reach the wire.
func Validate(form *domain.Form) map[string]string {
	errs := make(map[string]string)

	for _, field := range schema.Fields() {
		value, present := form.Get(field.Name)

		if !present || value.Empty() {
			if field.Required {
				if field.Kind == schema.Boolean {
					// An absent agreement flag is not an accepted one.
					errs[field.Name] = "must be accepted"
				} else {
					errs[field.Name] = fmt.Sprintf("%s is required", field.Name)
				}
			}
			if !present {
				continue
			}
		}

		if msg := checkKind(field, value); msg != "" {
			errs[field.Name] = msg
		}
	}

	known := schema.Names()
	for _, name := range form.Names() {
		if !lo.Contains(known, name) {
			errs[name] = "unknown field"
		}
	}

	return errs
}

// Valid reports whether the form would pass Validate with no errors.
func Valid(form *domain.Form) bool {
	return len(Validate(form)) == 0
}

func checkKind(field schema.Field, value domain.Value) string {
	switch field.Kind {
	case schema.Email:
		if value.Empty() {
			return ""
		}
		if !emailPattern.MatchString(value.Text) {
			return "invalid email"
		}
	case schema.Phone:
		if value.Empty() {
			return ""
		}
		if !validPhone(value.Text) {
			return "invalid phone number"
		}
	case schema.Number:
		if value.Kind == domain.BoolValue {
			return "must be a number"
		}
		if value.Kind == domain.TextValue {
			if value.Empty() {
				return ""
			}
			n, err := strconv.ParseFloat(strings.TrimSpace(value.Text), 64)
			if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
				return "must be a number"
			}
			return ""
		}
		if math.IsInf(value.Num, 0) || math.IsNaN(value.Num) {
			return "must be a number"
		}
	case schema.Boolean:
		// Agreement flags must be explicitly accepted.
		if value.Kind != domain.BoolValue || !value.Bool {
			return "must be accepted"
		}
	case schema.Enum:
		if value.Empty() {
			return ""
		}
		if !lo.Contains(field.Values, value.Text) {
			return "invalid value"
		}
	default:
		if value.Kind != domain.TextValue {
			return "invalid value"
		}
		if field.Pattern != nil && !value.Empty() && !field.Pattern.MatchString(value.Text) {
			return "invalid format"
		}
	}
	return ""
}

func validPhone(s string) bool {
	if !phoneChars.MatchString(strings.TrimSpace(s)) {
		return false
	}
	digits := lo.CountBy([]rune(s), func(r rune) bool {
		return r >= '0' && r <= '9'
	})
	return digits >= minPhoneDigits && digits <= maxPhoneDigits
}
