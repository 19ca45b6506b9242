// internal/api/envelope.go
//
// Userdesk – response envelope unwrapping.
//
// Context
//   Every response from the user API follows one envelope: a JSON object
//   with an "error" flag and a "payload" of arbitrary shape.  unwrap reads
//   the body once, decides success or failure from the HTTP status and the
//   flag, and hands back the raw payload for the caller to decode.  One
//   attempt per call; retries are the caller's business, and nobody retries
//   today.
//
// Workflow
//   •  Non-2xx status → RequestError carrying the payload as message, or
//      "HTTP error: <status>" when the body yields nothing usable.
//   •  2xx with error:true → LogicalError carrying the payload as message,
//      defaulting to "An error occurred".
//   •  Otherwise the raw payload is returned verbatim.
//
//------------------------------------------------------------------------------

package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// envelope is the wire shape every endpoint answers with.
type envelope struct {
	Error   bool            `json:"error"`
	Payload json.RawMessage `json:"payload"`
}

// unwrap consumes the response body and returns the envelope payload, or the
// error the envelope encodes.  The body is always fully read so the
// connection can be reused.
func unwrap(res *http.Response) (json.RawMessage, error) {
	body, readErr := io.ReadAll(res.Body)

	var env envelope
	decoded := readErr == nil && json.Unmarshal(body, &env) == nil

	if res.StatusCode < 200 || res.StatusCode > 299 {
		msg := fmt.Sprintf("HTTP error: %d", res.StatusCode)
		if decoded {
			if s := payloadText(env.Payload); s != "" {
				msg = s
			}
		}
		return nil, &RequestError{Status: res.StatusCode, Message: msg}
	}

	if !decoded {
		if readErr != nil {
			return nil, fmt.Errorf("read response body: %w", readErr)
		}
		return nil, fmt.Errorf("decode response envelope: %q", truncate(body, 120))
	}

	if env.Error {
		msg := payloadText(env.Payload)
		if msg == "" {
			msg = "An error occurred"
		}
		return nil, &LogicalError{Message: msg}
	}

	return env.Payload, nil
}

// payloadText renders a payload as a human-readable message.  JSON strings
// are unquoted; null and absent payloads become ""; anything structured is
// passed through as its JSON text.
func payloadText(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "…"
}
