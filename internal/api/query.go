// internal/api/query.go
//
// Userdesk – query-string builder.
//
// Context
//   The list endpoint takes its filters and pagination as URL parameters, and
//   the server documents them in a fixed order.  url.Values re-sorts keys
//   alphabetically on Encode, so this small builder keeps insertion order
//   instead.  Entries with empty values are dropped at Add time; the empty
//   builder encodes to "" so callers can append the result unconditionally.
//
//------------------------------------------------------------------------------

package api

import (
	"net/url"
	"strconv"
	"strings"
)

type queryPair struct {
	key, val string
}

// Query accumulates URL parameters in insertion order.  The zero value is
// ready to use.
type Query struct {
	pairs []queryPair
}

// Add appends key=value unless value is empty.  Returns the receiver so
// calls chain.
func (q *Query) Add(key, value string) *Query {
	if value == "" {
		return q
	}
	q.pairs = append(q.pairs, queryPair{key, value})
	return q
}

// AddInt appends key=v unless v is zero, which the API treats as unset.
func (q *Query) AddInt(key string, v int) *Query {
	if v == 0 {
		return q
	}
	return q.Add(key, strconv.Itoa(v))
}

// Encode renders the accumulated pairs as "?k=v&k2=v2", percent-encoded, in
// insertion order.  With no pairs it returns "".
func (q *Query) Encode() string {
	if len(q.pairs) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteByte('?')
	for i, p := range q.pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.val))
	}
	return b.String()
}
