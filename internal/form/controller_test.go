// internal/form/controller_test.go
//
// Controller tests drive the full submit flow against an httptest server
// speaking the API envelope.

package form

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/yanizio/userdesk/internal/api"
	"github.com/yanizio/userdesk/internal/user"
)

// validFields is a payload that passes every client-side rule.
var validFields = map[string]string{
	user.FieldName:         "Test User",
	user.FieldAboutYou:     "I enjoy long walks and short tests.",
	user.FieldBirthday:     "1990-05-04",
	user.FieldMobileNumber: "+1 555 123 4567",
	user.FieldEmail:        "test@example.com",
	user.FieldCountry:      "USA",
}

func fillForm(c *Controller, fields map[string]string) {
	for f, v := range fields {
		c.SetField(f, v)
	}
}

func envelopeOK(payload any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"error": false, "payload": payload})
	}
}

func newClient(ts *httptest.Server) *api.Client {
	return api.New(api.Config{BaseURL: ts.URL, Log: zap.NewNop().Sugar()})
}

func TestSubmit_ValidCreateReachesServer(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		envelopeOK("User created successfully")(w, r)
	}))
	defer ts.Close()

	c := NewCreate(newClient(ts), zap.NewNop().Sugar())
	fillForm(c, validFields)

	if err := c.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if gotMethod != http.MethodPost || gotPath != "/api/users" {
		t.Fatalf("request = %s %s, want POST /api/users", gotMethod, gotPath)
	}
	for f, want := range validFields {
		if gotBody[f] != want {
			t.Fatalf("body[%s] = %v, want %q", f, gotBody[f], want)
		}
	}
	if c.State() != StateSuccess || !c.Success() {
		t.Fatalf("state = %v, success = %v, want success", c.State(), c.Success())
	}
	if c.Loading() {
		t.Fatal("loading still set after submit")
	}
}

func TestSubmit_InvalidNameBlocksNetwork(t *testing.T) {
	called := false
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		envelopeOK("should not happen")(w, r)
	}))
	defer ts.Close()

	c := NewCreate(newClient(ts), zap.NewNop().Sugar())
	fillForm(c, validFields)
	c.SetField(user.FieldName, "T")

	if err := c.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if called {
		t.Fatal("network call made despite validation error")
	}
	if c.FieldError(user.FieldName) == "" {
		t.Fatal("name error not populated")
	}
	if c.State() != StateIdle {
		t.Fatalf("state = %v, want idle (editable)", c.State())
	}
	// Every field is touched after a submit attempt.
	for _, f := range user.FieldOrder {
		if !c.Touched(f) {
			t.Fatalf("field %s not touched after submit", f)
		}
	}
}

func TestSetField_RevalidatesOnlyAfterTouch(t *testing.T) {
	c := NewCreate(nil, zap.NewNop().Sugar())

	c.SetField(user.FieldEmail, "bad")
	if msg := c.FieldError(user.FieldEmail); msg != "" {
		t.Fatalf("untouched field validated early: %q", msg)
	}

	c.Blur(user.FieldEmail)
	if msg := c.FieldError(user.FieldEmail); msg == "" {
		t.Fatal("blur did not validate")
	}

	c.SetField(user.FieldEmail, "a@b.com")
	if msg := c.FieldError(user.FieldEmail); msg != "" {
		t.Fatalf("error not cleared on valid input: %q", msg)
	}
}

func TestSubmit_MapsUniquenessErrorToEmailField(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"error": true, "payload": "Email already exists"})
	}))
	defer ts.Close()

	c := NewCreate(newClient(ts), zap.NewNop().Sugar())
	fillForm(c, validFields)

	if err := c.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if msg := c.FieldError(user.FieldEmail); msg != "Email already exists" {
		t.Fatalf("email error = %q, want the server message", msg)
	}
	if c.State() != StateIdle || c.Success() {
		t.Fatalf("state = %v after failure, want idle and not success", c.State())
	}
}

func TestSubmit_UnmatchedServerErrorGoesGeneral(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{"error": true, "payload": "database unavailable"})
	}))
	defer ts.Close()

	c := NewCreate(newClient(ts), zap.NewNop().Sugar())
	fillForm(c, validFields)

	if err := c.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if msg := c.FieldError(GeneralField); msg != "database unavailable" {
		t.Fatalf("general error = %q, want the server message", msg)
	}
}

func TestSubmit_InFlightGuard(t *testing.T) {
	c := NewCreate(nil, zap.NewNop().Sugar())
	fillForm(c, validFields)
	c.loading = true

	if err := c.Submit(context.Background()); err != ErrSubmitInFlight {
		t.Fatalf("Submit while loading = %v, want ErrSubmitInFlight", err)
	}
}

func TestSubmit_SuccessCallbackPreemptsNavigation(t *testing.T) {
	ts := httptest.NewServer(envelopeOK("User created successfully"))
	defer ts.Close()

	c := NewCreate(newClient(ts), zap.NewNop().Sugar())
	fillForm(c, validFields)

	succeeded := false
	c.OnSuccess = func() { succeeded = true }
	c.Navigate = func() { t.Error("navigate fired despite OnSuccess") }

	if err := c.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !succeeded {
		t.Fatal("OnSuccess not invoked")
	}
}

func TestSubmit_NavigationScheduledAfterDelay(t *testing.T) {
	ts := httptest.NewServer(envelopeOK("User created successfully"))
	defer ts.Close()

	c := NewCreate(newClient(ts), zap.NewNop().Sugar())
	fillForm(c, validFields)

	navigated := make(chan struct{})
	c.Navigate = func() { close(navigated) }
	c.navDelay = time.Millisecond

	if err := c.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	select {
	case <-navigated:
	case <-time.After(time.Second):
		t.Fatal("navigate callback never fired")
	}
}

func TestNewEdit_SeedsFieldsAndSubmitsPut(t *testing.T) {
	var gotMethod, gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			envelopeOK(map[string]any{
				"id": 42, "name": "Alice", "aboutYou": "Ten characters or so.",
				"birthday": "1990-05-04", "mobileNumber": "+1 555 123 4567",
				"email": "alice@example.com", "country": "USA",
			})(w, r)
			return
		}
		gotMethod, gotPath = r.Method, r.URL.Path
		envelopeOK("User updated successfully")(w, r)
	}))
	defer ts.Close()

	c, err := NewEdit(context.Background(), newClient(ts), zap.NewNop().Sugar(), 42)
	if err != nil {
		t.Fatalf("NewEdit: %v", err)
	}
	if got := c.Value(user.FieldName); got != "Alice" {
		t.Fatalf("seeded name = %q, want Alice", got)
	}
	if c.Mode() != ModeEdit {
		t.Fatalf("mode = %v, want edit", c.Mode())
	}

	c.SetField(user.FieldCountry, "Canada")
	if err := c.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if gotMethod != http.MethodPut || gotPath != "/api/users/42" {
		t.Fatalf("request = %s %s, want PUT /api/users/42", gotMethod, gotPath)
	}
	if c.State() != StateSuccess {
		t.Fatalf("state = %v, want success", c.State())
	}
}
