// internal/browse/controller.go
//
// Userdesk – list-view controller.
//
// Context
//   The browse controller owns everything the user-list screen shows:
//   current filters, pagination, fetched rows, the server's page metadata,
//   and the last error.  Presentation calls Load after any state change and
//   renders what it finds here.  Like the form controller, one instance per
//   screen, exclusively owned, no locking.
//
// Workflow
//   •  Changing filters or the search term resets to page one; stale offsets
//      against a narrowed result set would otherwise show an empty page.
//   •  SortBy toggles direction when the same column is picked twice, and
//      starts ascending on a new column.
//   •  Delete removes the row server-side and reloads.  When the deleted row
//      was the last one on the final page, the page number steps back by one
//      before reloading so the user is not left staring at an empty page.
//
//------------------------------------------------------------------------------

package browse

import (
	"context"

	"go.uber.org/zap"

	"github.com/yanizio/userdesk/internal/api"
	"github.com/yanizio/userdesk/internal/user"
)

// Controller drives one user-list screen.
type Controller struct {
	client *api.Client
	log    *zap.SugaredLogger

	filters api.Filters
	page    api.Page

	rows    []user.Record
	meta    api.PageMeta
	loading bool
	lastErr string
}

// New returns a controller with default pagination and no filters.
func New(client *api.Client, log *zap.SugaredLogger) *Controller {
	if log == nil {
		log = zap.S()
	}
	return &Controller{client: client, log: log}
}

// Rows returns the most recently loaded page of users.
func (c *Controller) Rows() []user.Record { return c.rows }

// Meta returns the server's pagination metadata from the last load.
func (c *Controller) Meta() api.PageMeta { return c.meta }

// Filters returns the active filter set.
func (c *Controller) Filters() api.Filters { return c.filters }

// Loading reports whether a fetch is in flight.
func (c *Controller) Loading() bool { return c.loading }

// LastError returns the message from the most recent failed operation, or
// "".  A successful Load clears it.
func (c *Controller) LastError() string { return c.lastErr }

// Load fetches the current page with the current filters.
func (c *Controller) Load(ctx context.Context) error {
	c.loading = true
	res, err := c.client.List(ctx, c.filters, c.page)
	c.loading = false

	if err != nil {
		c.lastErr = err.Error()
		c.log.Errorw("browse load failed", "page", c.page.Page, "err", err)
		return err
	}

	c.rows = res.Users
	c.meta = res.Pagination
	c.lastErr = ""
	return nil
}

// SetFilters replaces the filter set and resets to page one.
func (c *Controller) SetFilters(ctx context.Context, f api.Filters) error {
	c.filters = f
	c.page.Page = api.DefaultPage
	return c.Load(ctx)
}

// Search sets the cross-field search term and resets to page one.
func (c *Controller) Search(ctx context.Context, term string) error {
	c.filters.Search = term
	c.page.Page = api.DefaultPage
	return c.Load(ctx)
}

// GoTo loads page n, clamped to the known page range.
func (c *Controller) GoTo(ctx context.Context, n int) error {
	if n < 1 {
		n = 1
	}
	if c.meta.TotalPages > 0 && n > c.meta.TotalPages {
		n = c.meta.TotalPages
	}
	c.page.Page = n
	return c.Load(ctx)
}

// Next advances one page; past the last page it reloads the current one.
func (c *Controller) Next(ctx context.Context) error {
	return c.GoTo(ctx, c.currentPage()+1)
}

// Prev steps back one page; page one reloads itself.
func (c *Controller) Prev(ctx context.Context) error {
	return c.GoTo(ctx, c.currentPage()-1)
}

// SortBy sorts on column, toggling direction when the column is already the
// active sort key.  A new column starts ascending.
func (c *Controller) SortBy(ctx context.Context, column string) error {
	current := c.page.SortBy
	if current == "" {
		current = api.DefaultSortBy
	}

	if current == column {
		if c.page.SortOrder == api.SortAsc {
			c.page.SortOrder = api.SortDesc
		} else {
			c.page.SortOrder = api.SortAsc
		}
	} else {
		c.page.SortBy = column
		c.page.SortOrder = api.SortAsc
	}
	return c.Load(ctx)
}

// Delete removes one user and reloads the list.  Deleting the last row of
// the final page steps the page number back first.
func (c *Controller) Delete(ctx context.Context, id int64) error {
	if _, err := c.client.Delete(ctx, id); err != nil {
		c.lastErr = err.Error()
		c.log.Errorw("browse delete failed", "id", id, "err", err)
		return err
	}

	if len(c.rows) == 1 && c.currentPage() > 1 && c.currentPage() == c.meta.TotalPages {
		c.page.Page = c.currentPage() - 1
	}
	return c.Load(ctx)
}

func (c *Controller) currentPage() int {
	if c.page.Page == 0 {
		return api.DefaultPage
	}
	return c.page.Page
}
