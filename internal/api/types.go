// internal/api/types.go
//
// Userdesk – list-endpoint parameter and result types.
//
// Context
//   Filters and Page mirror the query parameters the list endpoint accepts.
//   Zero values mean "not applied"; the client forwards only what is set.
//   ListResult is the decoded list payload: rows plus the server's
//   pagination metadata, passed through as the server computed it.
//
//------------------------------------------------------------------------------

package api

import "github.com/yanizio/userdesk/internal/user"

// Sort directions accepted by the list endpoint.
const (
	SortAsc  = "ASC"
	SortDesc = "DESC"
)

// Pagination defaults applied when the caller leaves Page fields zero.
const (
	DefaultPage      = 1
	DefaultLimit     = 10
	DefaultSortBy    = "createdAt"
	DefaultSortOrder = SortDesc
)

// Filters narrows the user list.  Empty fields are omitted from the request.
// FromDate and ToDate bound createdAt inclusively; Search matches a substring
// across fields, all interpreted server-side.
type Filters struct {
	Name     string
	Email    string
	Country  string
	FromDate string
	ToDate   string
	Search   string
}

// Page selects one page of results.  Zero fields take the defaults above.
type Page struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// withDefaults returns a copy with every zero field filled in.
func (p Page) withDefaults() Page {
	if p.Page == 0 {
		p.Page = DefaultPage
	}
	if p.Limit == 0 {
		p.Limit = DefaultLimit
	}
	if p.SortBy == "" {
		p.SortBy = DefaultSortBy
	}
	if p.SortOrder == "" {
		p.SortOrder = DefaultSortOrder
	}
	return p
}

// PageMeta is the server's pagination block on list responses.
type PageMeta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// ListResult is the decoded payload of a list call.
type ListResult struct {
	Users      []user.Record `json:"users"`
	Pagination PageMeta      `json:"pagination"`
}
