// internal/api/errors.go
//
// Userdesk – API error taxonomy.
//
// Context
//   Three failure shapes leave this package, one per stage of a call.  An
//   ArgumentError means the call never reached the network: a required
//   parameter was missing client-side.  A RequestError means the server
//   answered with a non-2xx status.  A LogicalError means the transport
//   succeeded but the response envelope carried error:true.  All three are
//   plain structs matched with errors.As; callers decide presentation.
//
//------------------------------------------------------------------------------

package api

import "fmt"

// ArgumentError reports a missing or invalid call parameter, detected before
// any request is issued.
type ArgumentError struct {
	Op     string // operation name, e.g. "get"
	Reason string // what was wrong
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// RequestError reports a non-success HTTP status.  Message is the envelope
// payload rendered as text, or a generic status line when the body carried
// no usable payload.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string { return e.Message }

// LogicalError reports a response that arrived with a success status but an
// envelope flagged error:true.  The server's payload becomes the message.
type LogicalError struct {
	Message string
}

func (e *LogicalError) Error() string { return e.Message }
