// internal/user/validate.go
//
// Userdesk – client-side field validation.
//
// Context
//   The server enforces these same rules; the client runs them first so forms
//   can highlight problems before any network round trip.  ValidateField is
//   the single source of truth: the form controller calls it per keystroke
//   and blur, and ValidateRecord sweeps a whole payload with it before bulk
//   operations.  Every rule returns a complete, user-facing sentence, or the
//   empty string when the value passes.
//
// Workflow
//   •  ValidateField dispatches on the canonical field key.  Unknown keys
//      validate clean so callers can pass through extra fields untouched.
//   •  ValidateRecord walks FieldOrder.  With isUpdate true, fields absent
//      from the map are skipped entirely (partial-update semantics); present
//      fields are validated even when empty.
//   •  Length rules operate on the trimmed value.  Pattern rules operate on
//      the raw value, matching the server's behavior.
//
//------------------------------------------------------------------------------

package user

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Validation limits mirror the server's contract.
const (
	nameMin     = 2
	nameMax     = 50
	aboutMin    = 10
	aboutMax    = 250
	mobileMin   = 10
	countryMin  = 2
	countryMax  = 20
	maxAgeYears = 120
)

var (
	lettersRe = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	mobileRe  = regexp.MustCompile(`^[+]?[\d\s\-()]{10,15}$`)
	emailRe   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ValidateField checks one field value against the server's rules and returns
// a user-facing message, or "" when the value is acceptable.
func ValidateField(field, value string) string {
	switch field {
	case FieldName:
		return validateName(value)
	case FieldAboutYou:
		return validateAboutYou(value)
	case FieldBirthday:
		return validateBirthday(value)
	case FieldMobileNumber:
		return validateMobileNumber(value)
	case FieldEmail:
		return validateEmail(value)
	case FieldCountry:
		return validateCountry(value)
	}
	return ""
}

// ValidateRecord validates a whole payload and returns every violation in
// FieldOrder.  With isUpdate true, only fields present in the map are
// checked, so a partial update is never penalized for what it omits.
func ValidateRecord(fields map[string]string, isUpdate bool) []string {
	var msgs []string
	for _, f := range FieldOrder {
		v, present := fields[f]
		if isUpdate && !present {
			continue
		}
		if msg := ValidateField(f, v); msg != "" {
			msgs = append(msgs, msg)
		}
	}
	return msgs
}

// -----------------------------------------------------------------------------
// Per-field rules
// -----------------------------------------------------------------------------

func validateName(v string) string {
	t := strings.TrimSpace(v)
	if t == "" {
		return "Name is required."
	}
	if len(t) < nameMin || len(t) > nameMax {
		return fmt.Sprintf("Name must be between %d and %d characters.", nameMin, nameMax)
	}
	if !lettersRe.MatchString(v) {
		return "Name may only contain letters and spaces."
	}
	return ""
}

func validateAboutYou(v string) string {
	t := strings.TrimSpace(v)
	if t == "" {
		return "About you is required."
	}
	if len(t) < aboutMin || len(t) > aboutMax {
		return fmt.Sprintf("About you must be between %d and %d characters.", aboutMin, aboutMax)
	}
	return ""
}

func validateBirthday(v string) string {
	t := strings.TrimSpace(v)
	if t == "" {
		return "Birthday is required."
	}
	d, err := time.Parse(DateLayout, t)
	if err != nil {
		return "Birthday must be a valid date in YYYY-MM-DD format."
	}
	now := time.Now().UTC()
	if d.After(now) {
		return "Birthday cannot be in the future."
	}
	// Naive year subtraction, same approximation the server applies.
	if now.Year()-d.Year() > maxAgeYears {
		return fmt.Sprintf("Age cannot exceed %d years.", maxAgeYears)
	}
	return ""
}

func validateMobileNumber(v string) string {
	t := strings.TrimSpace(v)
	if t == "" {
		return "Mobile number is required."
	}
	if len(t) < mobileMin {
		return fmt.Sprintf("Mobile number must be at least %d characters.", mobileMin)
	}
	if !mobileRe.MatchString(t) {
		return "Mobile number format is invalid."
	}
	return ""
}

func validateEmail(v string) string {
	t := strings.TrimSpace(v)
	if t == "" {
		return "Email is required."
	}
	if !emailRe.MatchString(t) {
		return "Email address is invalid."
	}
	return ""
}

func validateCountry(v string) string {
	t := strings.TrimSpace(v)
	if t == "" {
		return "Country is required."
	}
	if len(t) < countryMin || len(t) > countryMax {
		return fmt.Sprintf("Country must be between %d and %d characters.", countryMin, countryMax)
	}
	if !lettersRe.MatchString(v) {
		return "Country may only contain letters and spaces."
	}
	return ""
}
