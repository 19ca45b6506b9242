// internal/form/controller.go
//
// Userdesk – form controller for create and edit flows.
//
// Context
//   A Controller owns the working state of one user form: field values, the
//   per-field error map, the touched set, and the loading and success flags.
//   The presentation layer (console prompts today) reports keystrokes, blurs,
//   and the submit action; the controller decides what to validate, when to
//   call the API, and how to map failures back onto fields.  One controller
//   per form instance, owned exclusively by its caller; it is not safe for
//   concurrent use and does not need to be.
//
// Workflow
//   •  States run Idle → Validating → Submitting → Success or Failed.  A
//      failed submission returns to Idle with errors populated, so the form
//      stays editable.  Success is terminal until Reset.
//   •  SetField revalidates only after the field has been touched, so the
//      user is not scolded mid-first-keystroke.  Blur touches and validates.
//   •  Submit validates and touches every field first.  Any field error
//      blocks the network call outright.  Otherwise the payload is built
//      (birthday normalized to YYYY-MM-DD) and sent via Create or Update.
//   •  On success the caller's success callback runs if set; otherwise a
//      navigate callback is scheduled after a short delay, matching the
//      "flash the confirmation, then return to the list" flow.
//   •  The loading flag is the advisory in-flight guard: a second Submit
//      while one is running is refused without touching the network.
//
//------------------------------------------------------------------------------

package form

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/yanizio/userdesk/internal/api"
	"github.com/yanizio/userdesk/internal/metrics"
	"github.com/yanizio/userdesk/internal/user"
)

// GeneralField is the synthetic error-map key for failures that do not belong
// to any single field.
const GeneralField = "general"

// successNavDelay is how long the success confirmation stays up before the
// scheduled navigate callback fires.
const successNavDelay = 1500 * time.Millisecond

// ErrSubmitInFlight is returned by Submit when a previous submission has not
// finished.  The network is never touched in that case.
var ErrSubmitInFlight = errors.New("a submission is already in flight")

// State is the controller's position in the submit lifecycle.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateSubmitting
	StateSuccess
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	}
	return "unknown"
}

// Mode selects create or edit semantics.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}

// Controller drives one form instance.  Construct with NewCreate or NewEdit.
type Controller struct {
	mode     Mode
	recordID int64

	client *api.Client
	log    *zap.SugaredLogger

	values  map[string]string
	errs    map[string]string
	touched map[string]bool

	state   State
	loading bool
	success bool

	// OnSuccess, when set, runs immediately after a successful submit.
	// Navigate, when set and OnSuccess is not, is scheduled after navDelay.
	OnSuccess func()
	Navigate  func()
	navDelay  time.Duration
}

// NewCreate returns an empty controller in create mode.
func NewCreate(client *api.Client, log *zap.SugaredLogger) *Controller {
	if log == nil {
		log = zap.S()
	}
	return &Controller{
		mode:     ModeCreate,
		client:   client,
		log:      log,
		values:   make(map[string]string),
		errs:     make(map[string]string),
		touched:  make(map[string]bool),
		navDelay: successNavDelay,
	}
}

// NewEdit fetches the record and returns a controller seeded with its fields.
func NewEdit(ctx context.Context, client *api.Client, log *zap.SugaredLogger, id int64) (*Controller, error) {
	rec, err := client.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	c := NewCreate(client, log)
	c.mode = ModeEdit
	c.recordID = rec.ID
	for f, v := range rec.Fields() {
		c.values[f] = v
	}
	if d, ok := user.NormalizeDate(c.values[user.FieldBirthday]); ok {
		c.values[user.FieldBirthday] = d
	}
	return c, nil
}

// -----------------------------------------------------------------------------
// Field events
// -----------------------------------------------------------------------------

// SetField records a new value.  A field that has already been touched is
// revalidated live; an untouched one waits for its first blur.
func (c *Controller) SetField(field, value string) {
	c.values[field] = value
	if c.touched[field] {
		c.setFieldError(field, user.ValidateField(field, value))
	}
}

// Blur marks the field touched and validates it.
func (c *Controller) Blur(field string) {
	c.touched[field] = true
	c.setFieldError(field, user.ValidateField(field, c.values[field]))
}

// Value returns the current value of a field.
func (c *Controller) Value(field string) string { return c.values[field] }

// FieldError returns the current error message for a field, or "".
func (c *Controller) FieldError(field string) string { return c.errs[field] }

// Errors returns the non-empty entries of the error map, including the
// general key.  The map is a copy; mutating it does not affect the form.
func (c *Controller) Errors() map[string]string {
	out := make(map[string]string, len(c.errs))
	for f, msg := range c.errs {
		if msg != "" {
			out[f] = msg
		}
	}
	return out
}

// Touched reports whether the field has lost focus at least once.
func (c *Controller) Touched(field string) bool { return c.touched[field] }

// State returns the controller's lifecycle state.
func (c *Controller) State() State { return c.state }

// Loading reports whether a submission is in flight.
func (c *Controller) Loading() bool { return c.loading }

// Success reports whether the last submission succeeded.
func (c *Controller) Success() bool { return c.success }

// Mode returns create or edit.
func (c *Controller) Mode() Mode { return c.mode }

// Reset clears errors, touched state, and the success flag so a new edit
// cycle can begin.  Field values are kept.
func (c *Controller) Reset() {
	c.errs = make(map[string]string)
	c.touched = make(map[string]bool)
	c.state = StateIdle
	c.success = false
}

// -----------------------------------------------------------------------------
// Submission
// -----------------------------------------------------------------------------

// Submit validates every field and, when all pass, sends the form to the
// API.  Validation failures never reach the network; they land in the error
// map and the controller stays idle and editable.  The returned error is
// non-nil only for the in-flight guard.
func (c *Controller) Submit(ctx context.Context) error {
	if c.loading {
		return ErrSubmitInFlight
	}
	if c.state == StateSuccess {
		// Terminal until Reset.
		return nil
	}

	c.state = StateValidating
	clean := true
	for _, f := range user.FieldOrder {
		c.touched[f] = true
		msg := user.ValidateField(f, c.values[f])
		c.setFieldError(f, msg)
		if msg != "" {
			clean = false
		}
	}
	delete(c.errs, GeneralField)

	if !clean {
		metrics.ValidationFailuresTotal.Inc()
		metrics.FormSubmitsTotal.WithLabelValues(c.mode.String(), "blocked").Inc()
		c.state = StateIdle
		return nil
	}

	c.state = StateSubmitting
	c.loading = true

	var err error
	if c.mode == ModeEdit {
		_, err = c.client.Update(ctx, c.recordID, c.payload())
	} else {
		_, err = c.client.Create(ctx, c.payload())
	}
	c.loading = false

	if err != nil {
		metrics.FormSubmitsTotal.WithLabelValues(c.mode.String(), "error").Inc()
		c.log.Errorw("form submit failed", "mode", c.mode.String(), "id", c.recordID, "err", err)
		c.applyServerError(err)
		c.state = StateIdle
		return nil
	}

	metrics.FormSubmitsTotal.WithLabelValues(c.mode.String(), "ok").Inc()
	c.state = StateSuccess
	c.success = true

	switch {
	case c.OnSuccess != nil:
		c.OnSuccess()
	case c.Navigate != nil:
		time.AfterFunc(c.navDelay, c.Navigate)
	}
	return nil
}

// payload builds the JSON body for Create or Update.  Birthday goes through
// date normalization so a pasted timestamp still reaches the server as a
// plain calendar date.
func (c *Controller) payload() map[string]any {
	out := make(map[string]any, len(user.FieldOrder))
	for _, f := range user.FieldOrder {
		v := c.values[f]
		if f == user.FieldBirthday {
			if d, ok := user.NormalizeDate(v); ok {
				v = d
			}
		}
		out[f] = v
	}
	return out
}

// applyServerError routes an API failure into the error map: classified
// messages attach to their field, everything else lands under the general
// key.
func (c *Controller) applyServerError(err error) {
	field, msg := classifyServerError(err)
	c.errs[field] = msg
}

func (c *Controller) setFieldError(field, msg string) {
	if msg == "" {
		delete(c.errs, field)
		return
	}
	c.errs[field] = msg
}
