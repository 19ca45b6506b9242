// Package user defines the user-record model the remote API serves, plus the
// client-side validation and date-normalization rules that mirror the server's
// contract.  The structs here are inert: no handles, no goroutines, safe to
// log or JSON-encode.
package user

import "time"

// Canonical field keys.  These match the JSON keys the API exchanges, and are
// the keys used by form state, validation, and error maps throughout the app.
const (
	FieldName         = "name"
	FieldAboutYou     = "aboutYou"
	FieldBirthday     = "birthday"
	FieldMobileNumber = "mobileNumber"
	FieldEmail        = "email"
	FieldCountry      = "country"
)

// FieldOrder lists the editable fields in canonical display order.  Record
// validation and form rendering iterate this slice so output is stable.
var FieldOrder = []string{
	FieldName,
	FieldAboutYou,
	FieldBirthday,
	FieldMobileNumber,
	FieldEmail,
	FieldCountry,
}

// Record is one user row as the server returns it.  ID and CreatedAt are
// server-assigned; the client never writes them.
type Record struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	AboutYou     string    `json:"aboutYou"`
	Birthday     string    `json:"birthday"`
	MobileNumber string    `json:"mobileNumber"`
	Email        string    `json:"email"`
	Country      string    `json:"country"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Fields returns the editable fields keyed by their canonical names.  Used to
// seed edit forms and to feed ValidateRecord.
func (r Record) Fields() map[string]string {
	return map[string]string{
		FieldName:         r.Name,
		FieldAboutYou:     r.AboutYou,
		FieldBirthday:     r.Birthday,
		FieldMobileNumber: r.MobileNumber,
		FieldEmail:        r.Email,
		FieldCountry:      r.Country,
	}
}

// Label returns the human-readable label for a canonical field key.  Unknown
// keys are returned unchanged so callers can render them without a lookup.
func Label(field string) string {
	switch field {
	case FieldName:
		return "Name"
	case FieldAboutYou:
		return "About you"
	case FieldBirthday:
		return "Birthday"
	case FieldMobileNumber:
		return "Mobile number"
	case FieldEmail:
		return "Email"
	case FieldCountry:
		return "Country"
	}
	return field
}
