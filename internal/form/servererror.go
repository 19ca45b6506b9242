// internal/form/servererror.go
//
// Userdesk – server-error to field mapping.
//
// Context
//   The server reports uniqueness violations as free-text messages, not
//   structured codes.  Until it grows codes, the only way to attach "email
//   already exists" to the email field is to look at the words.  That
//   fragility is confined to this one function so a structured mapping can
//   replace it without touching the controller.  Anything unrecognized lands
//   under the general key and renders as a banner.
//
//------------------------------------------------------------------------------

package form

import (
	"strings"

	"github.com/yanizio/userdesk/internal/user"
)

// classifyServerError maps a failed API call to the error-map entry it
// should populate.  Substring matching is a best-effort bridge, not a
// contract; unmatched messages go to GeneralField.
func classifyServerError(err error) (field, msg string) {
	msg = err.Error()
	lower := strings.ToLower(msg)

	switch {
	case strings.Contains(lower, "email already exists"):
		return user.FieldEmail, msg
	case strings.Contains(lower, "mobile number"):
		return user.FieldMobileNumber, msg
	}
	return GeneralField, msg
}
