package uadmin

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Controller owns the client-side state for a paginated, filtered view
// over the user collection: the current page, the selected detail
// record, an in-flight flag, and the last failure message. All
// mutations are confirm-then-refetch: after a successful create,
// update, or delete the controller re-issues the last query verbatim so
// the visible list reflects the same page and filters the caller was
// viewing.
//
// The loading and error fields are shared by every operation, so when a
// caller deliberately fires two operations concurrently the flag only
// means "some operation is in flight" and the earlier completion can
// clear it while the other is still outstanding. List fetches carry a
// sequence number and a completion that is no longer the most recently
// issued fetch is discarded wholesale, so a slow page-2 response cannot
// overwrite a page-3 result that already landed.
//
// State reads and writes are guarded by a mutex; the network call
// itself runs outside the lock. Change notifications are synchronous
// and fire on the calling goroutine.
type Controller struct {
	users UsersClient

	mu       sync.Mutex
	active   ListQuery
	page     *UserPage
	selected *User
	loading  bool
	errMsg   string
	listSeq  uint64

	subscribers map[int]func()
	nextSub     int
}

// NewController creates a controller over the given users client. The
// active query starts at the first page with default sizing.
func NewController(users UsersClient) *Controller {
	return &Controller{
		users:       users,
		active:      NewListQuery(),
		subscribers: make(map[int]func()),
	}
}

// CurrentPage returns the last successfully loaded page, or nil before
// the first load. Failed fetches never clear it.
func (c *Controller) CurrentPage() *UserPage {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.page
}

// Selected returns the last successfully loaded detail record, or nil.
func (c *Controller) Selected() *User {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.selected
}

// Loading reports whether an operation issued by this controller is
// outstanding.
func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.loading
}

// ErrorMessage returns the failure message of the last completed
// operation, or "" when it succeeded or the error was cleared.
func (c *Controller) ErrorMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.errMsg
}

// ActiveQuery returns the replay target: the parameters of the last
// issued list fetch, whether or not that fetch succeeded.
func (c *Controller) ActiveQuery() ListQuery {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.active
}

// Subscribe registers a change notification callback and returns its
// cancel function. Callbacks run synchronously on the goroutine that
// triggered the change.
func (c *Controller) Subscribe(fn func()) func() {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subscribers[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subscribers, id)
		c.mu.Unlock()
	}
}

// Query issues a list fetch for the given parameters and stores them as
// the active query. On success the current page is replaced; on failure
// the error message is set and the previous page is kept, since stale
// data beats a blank screen. The loading flag is cleared and
// subscribers are notified on every path.
func (c *Controller) Query(ctx context.Context, query ListQuery) {
	c.mu.Lock()
	c.loading = true
	c.errMsg = ""
	c.active = query
	c.listSeq++
	seq := c.listSeq
	c.mu.Unlock()
	c.notify()

	page, err := c.users.List(ctx, query)

	c.mu.Lock()
	if seq != c.listSeq {
		// Superseded by a newer fetch; discard without touching state.
		c.mu.Unlock()

		return
	}

	if err != nil {
		c.errMsg = normalizeError(err)
	} else {
		c.page = page
	}

	c.loading = false
	c.mu.Unlock()
	c.notify()
}

// Refresh re-issues the active query verbatim. Used after mutations and
// for pull-to-refresh style reloads.
func (c *Controller) Refresh(ctx context.Context) {
	c.Query(ctx, c.ActiveQuery())
}

// LoadDetail fetches a single record by ID and, on success, stores it
// as the selected record. It shares the loading and error fields with
// Query; see the type comment for the concurrent-invocation caveat.
func (c *Controller) LoadDetail(ctx context.Context, id string) (*User, error) {
	c.begin()

	user, err := c.users.Get(ctx, id)

	c.mu.Lock()
	if err != nil {
		c.errMsg = normalizeError(err)
	} else {
		c.selected = user
	}

	c.loading = false
	c.mu.Unlock()
	c.notify()

	return user, err
}

// Create creates a user and, on success, refreshes the list with the
// unchanged active query. The returned result reflects the create
// itself; if the follow-up refresh fails, ErrorMessage reports the
// refresh failure even though the create succeeded.
func (c *Controller) Create(ctx context.Context, request *UserCreateRequest) (map[string]any, error) {
	c.begin()

	result, err := c.users.Create(ctx, request)
	if err != nil {
		c.fail(err)

		return nil, err
	}

	c.end()
	c.Refresh(ctx)

	return result, nil
}

// Update updates a user and, on success, refreshes the list with the
// unchanged active query. The returned error reflects the update
// itself; a refresh failure only surfaces through ErrorMessage.
func (c *Controller) Update(ctx context.Context, id string, request *UserUpdateRequest) error {
	c.begin()

	err := c.users.Update(ctx, id, request)
	if err != nil {
		c.fail(err)

		return err
	}

	c.end()
	c.Refresh(ctx)

	return nil
}

// Delete removes a user and, on success, refreshes the list with the
// unchanged active query.
func (c *Controller) Delete(ctx context.Context, id string) error {
	c.begin()

	err := c.users.Delete(ctx, id)
	if err != nil {
		c.fail(err)

		return err
	}

	c.end()
	c.Refresh(ctx)

	return nil
}

// ResetPassword resets a user's credential and returns the server's
// result payload. No list refresh follows: a credential reset does not
// change what the list displays.
func (c *Controller) ResetPassword(ctx context.Context, id string) (map[string]any, error) {
	c.begin()

	result, err := c.users.ResetPassword(ctx, id)
	if err != nil {
		c.fail(err)

		return nil, err
	}

	c.end()

	return result, nil
}

// ClearError clears the error message and notifies. Loading state and
// loaded data are untouched.
func (c *Controller) ClearError() {
	c.mu.Lock()
	c.errMsg = ""
	c.mu.Unlock()
	c.notify()
}

// begin marks an operation as in flight and clears the previous error.
func (c *Controller) begin() {
	c.mu.Lock()
	c.loading = true
	c.errMsg = ""
	c.mu.Unlock()
	c.notify()
}

// end clears the loading flag after a successful operation.
func (c *Controller) end() {
	c.mu.Lock()
	c.loading = false
	c.mu.Unlock()
	c.notify()
}

// fail records a normalized failure and clears the loading flag.
func (c *Controller) fail(err error) {
	c.mu.Lock()
	c.errMsg = normalizeError(err)
	c.loading = false
	c.mu.Unlock()
	c.notify()
}

// notify invokes subscribers outside the lock so callbacks may read
// controller state.
func (c *Controller) notify() {
	c.mu.Lock()
	callbacks := make([]func(), 0, len(c.subscribers))

	for _, fn := range c.subscribers {
		callbacks = append(callbacks, fn)
	}
	c.mu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
}

// normalizeError is the controller's fault boundary: server-reported
// messages pass through verbatim, everything else is wrapped uniformly
// so no raw fault reaches the presentation layer.
func normalizeError(err error) string {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}

	return fmt.Sprintf("an error occurred: %v", err)
}
