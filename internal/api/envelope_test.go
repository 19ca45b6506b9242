// internal/api/envelope_test.go
//
// Unit-tests for envelope unwrapping.

package api

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
)

func fakeResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestUnwrap_SuccessReturnsPayload(t *testing.T) {
	res := fakeResponse(200, `{"error":false,"payload":{"id":7}}`)

	payload, err := unwrap(res)
	if err != nil {
		t.Fatalf("unwrap: %v", err)
	}
	if string(payload) != `{"id":7}` {
		t.Fatalf("payload = %s, want {\"id\":7}", payload)
	}
}

func TestUnwrap_LogicalError(t *testing.T) {
	res := fakeResponse(200, `{"error":true,"payload":"email already exists"}`)

	_, err := unwrap(res)
	var le *LogicalError
	if !errors.As(err, &le) {
		t.Fatalf("unwrap error = %T (%v), want *LogicalError", err, err)
	}
	if le.Message != "email already exists" {
		t.Fatalf("message = %q, want the payload text", le.Message)
	}
}

func TestUnwrap_LogicalErrorDefaultMessage(t *testing.T) {
	res := fakeResponse(200, `{"error":true}`)

	_, err := unwrap(res)
	var le *LogicalError
	if !errors.As(err, &le) {
		t.Fatalf("unwrap error = %T, want *LogicalError", err)
	}
	if le.Message != "An error occurred" {
		t.Fatalf("message = %q, want default", le.Message)
	}
}

func TestUnwrap_HTTPErrorCarriesPayload(t *testing.T) {
	res := fakeResponse(404, `{"error":true,"payload":"User not found"}`)

	_, err := unwrap(res)
	var re *RequestError
	if !errors.As(err, &re) {
		t.Fatalf("unwrap error = %T (%v), want *RequestError", err, err)
	}
	if re.Status != 404 {
		t.Fatalf("status = %d, want 404", re.Status)
	}
	if re.Message != "User not found" {
		t.Fatalf("message = %q, want the payload text", re.Message)
	}
}

func TestUnwrap_HTTPErrorWithoutPayload(t *testing.T) {
	res := fakeResponse(502, "bad gateway")

	_, err := unwrap(res)
	var re *RequestError
	if !errors.As(err, &re) {
		t.Fatalf("unwrap error = %T, want *RequestError", err)
	}
	if re.Message != "HTTP error: 502" {
		t.Fatalf("message = %q, want generic status line", re.Message)
	}
}
