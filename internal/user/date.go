// internal/user/date.go
//
// Userdesk – date normalization for API payloads.
//
// Context
//   The server stores birthdays as plain calendar dates.  Values arriving at
//   the client come in three shapes: an already-canonical "YYYY-MM-DD"
//   string, a time.Time, or nothing at all.  NormalizeDate funnels all three
//   into the canonical string, and reports absence instead of erroring on
//   anything else.  "Unrecognized format → no value" is deliberate policy,
//   not an oversight: the form layer treats a missing date as an empty field
//   and lets validation produce the user-facing message.
//
//------------------------------------------------------------------------------

package user

import (
	"regexp"
	"time"
)

// DateLayout is the canonical wire format for calendar dates.
const DateLayout = "2006-01-02"

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// NormalizeDate converts v to the canonical "YYYY-MM-DD" string.  The second
// return is false when v carries no usable date: nil, a zero time, a string
// in any other layout, or an unrecognized type.  Canonical strings pass
// through unchanged; time values are rendered as their UTC calendar date.
func NormalizeDate(v any) (string, bool) {
	switch d := v.(type) {
	case nil:
		return "", false
	case string:
		if dateRe.MatchString(d) {
			return d, true
		}
		return "", false
	case time.Time:
		if d.IsZero() {
			return "", false
		}
		return d.UTC().Format(DateLayout), true
	case *time.Time:
		if d == nil || d.IsZero() {
			return "", false
		}
		return d.UTC().Format(DateLayout), true
	}
	return "", false
}
