// internal/api/client.go
//
// Userdesk – HTTP client for the user-record API.
//
// Context
//   One Client instance wraps the remote API for the whole process.  It is
//   stateless between calls: no session, no persistent handles beyond the
//   pooled transport.  Every operation takes a context, makes exactly one
//   attempt, logs the outcome with operation context at this boundary, and
//   propagates the unwrapped error unchanged.  Mutual exclusion between
//   submissions is the form controller's concern, not enforced here; two
//   goroutines may call concurrently and each call is independent.
//
// Workflow
//   •  New builds the client from Config: base URL (default
//      http://localhost:3000), timeout, and logger.
//   •  Each operation validates its arguments, then funnels through do(),
//      which stamps Content-Type and X-Request-Id, times the round trip,
//      updates the Prometheus instruments, and unwraps the envelope.
//   •  Get, Update, and Delete reject id == 0 up front.  The server has
//      never issued id 0, and rejecting it mirrors the contract as deployed;
//      see DESIGN.md before loosening this.
//
//------------------------------------------------------------------------------

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-cleanhttp"
	"go.uber.org/zap"

	"github.com/yanizio/userdesk/internal/metrics"
	"github.com/yanizio/userdesk/internal/user"
)

// DefaultBaseURL is used when Config.BaseURL is empty.
const DefaultBaseURL = "http://localhost:3000"

const usersPath = "/api/users"

// Config carries everything New needs.  Zero fields take defaults.
type Config struct {
	BaseURL string        // scheme and host of the API server
	Timeout time.Duration // per-request; 0 means 30 s
	Log     *zap.SugaredLogger
}

// Client is safe for concurrent use.  Create once at startup.
type Client struct {
	base string
	http *http.Client
	log  *zap.SugaredLogger
}

// New constructs a Client.  The transport comes from cleanhttp so the client
// never shares state with http.DefaultClient.
func New(cfg Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	log := cfg.Log
	if log == nil {
		log = zap.S()
	}

	httpCli := cleanhttp.DefaultPooledClient()
	httpCli.Timeout = timeout

	return &Client{base: base, http: httpCli, log: log}
}

// -----------------------------------------------------------------------------
// Operations
// -----------------------------------------------------------------------------

// List fetches one page of users matching f.  Zero fields of p take the
// documented defaults.
func (c *Client) List(ctx context.Context, f Filters, p Page) (*ListResult, error) {
	p = p.withDefaults()

	var q Query
	q.Add("name", f.Name).
		Add("email", f.Email).
		Add("country", f.Country).
		Add("fromDate", f.FromDate).
		Add("toDate", f.ToDate).
		Add("search", f.Search).
		AddInt("page", p.Page).
		AddInt("limit", p.Limit).
		Add("sortBy", p.SortBy).
		Add("sortOrder", p.SortOrder)

	payload, err := c.do(ctx, "list", http.MethodGet, usersPath+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var out ListResult
	if err := json.Unmarshal(payload, &out); err != nil {
		return nil, fmt.Errorf("decode list payload: %w", err)
	}
	return &out, nil
}

// Get fetches one user by id.
func (c *Client) Get(ctx context.Context, id int64) (*user.Record, error) {
	if id == 0 {
		return nil, c.argErr("get", "user id is required")
	}

	payload, err := c.do(ctx, "get", http.MethodGet, fmt.Sprintf("%s/%d", usersPath, id), nil)
	if err != nil {
		return nil, err
	}

	var rec user.Record
	if err := json.Unmarshal(payload, &rec); err != nil {
		return nil, fmt.Errorf("decode user payload: %w", err)
	}
	return &rec, nil
}

// Create posts a new user.  The returned string is the server's success
// message.
func (c *Client) Create(ctx context.Context, fields map[string]any) (string, error) {
	if len(fields) == 0 {
		return "", c.argErr("create", "user data is required")
	}

	payload, err := c.do(ctx, "create", http.MethodPost, usersPath, fields)
	if err != nil {
		return "", err
	}
	return payloadText(payload), nil
}

// Update sends a partial field set for an existing user.
func (c *Client) Update(ctx context.Context, id int64, fields map[string]any) (string, error) {
	if id == 0 {
		return "", c.argErr("update", "user id is required")
	}
	if len(fields) == 0 {
		return "", c.argErr("update", "user data is required")
	}

	payload, err := c.do(ctx, "update", http.MethodPut, fmt.Sprintf("%s/%d", usersPath, id), fields)
	if err != nil {
		return "", err
	}
	return payloadText(payload), nil
}

// Delete removes one user by id.
func (c *Client) Delete(ctx context.Context, id int64) (string, error) {
	if id == 0 {
		return "", c.argErr("delete", "user id is required")
	}

	payload, err := c.do(ctx, "delete", http.MethodDelete, fmt.Sprintf("%s/%d", usersPath, id), nil)
	if err != nil {
		return "", err
	}
	return payloadText(payload), nil
}

// -----------------------------------------------------------------------------
// Internals
// -----------------------------------------------------------------------------

// do performs one request and unwraps the envelope.  It owns the boundary
// concerns: headers, request id, timing, metrics, and the success log line.
func (c *Client) do(ctx context.Context, op, method, path string, body any) (json.RawMessage, error) {
	var buf *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%s: encode body: %w", op, err)
		}
		buf = bytes.NewBuffer(raw)
	} else {
		buf = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, buf)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", op, err)
	}
	reqID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", reqID)

	start := time.Now()
	res, err := c.http.Do(req)
	elapsed := time.Since(start)
	metrics.APIRequestSeconds.WithLabelValues(op).Observe(elapsed.Seconds())

	if err != nil {
		metrics.APIRequestsTotal.WithLabelValues(op, "error").Inc()
		c.log.Errorw("api request failed", "op", op, "path", path, "request_id", reqID, "err", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer res.Body.Close()

	payload, err := unwrap(res)
	if err != nil {
		metrics.APIRequestsTotal.WithLabelValues(op, "error").Inc()
		c.log.Errorw("api response error",
			"op", op, "path", path, "request_id", reqID, "status", res.StatusCode, "err", err)
		return nil, err
	}

	metrics.APIRequestsTotal.WithLabelValues(op, "ok").Inc()
	c.log.Infow("api call ok",
		"op", op, "path", path, "request_id", reqID, "status", res.StatusCode, "elapsed", elapsed)
	return payload, nil
}

func (c *Client) argErr(op, reason string) error {
	err := &ArgumentError{Op: op, Reason: reason}
	c.log.Errorw("api argument error", "op", op, "err", err)
	return err
}
