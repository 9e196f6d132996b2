// Package notion implements the store.Store interface against the Notion API.
package notion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jomei/notionapi"

	"tasksync/internal/config"
	"tasksync/internal/store"
)

const (
	// TitleProperty is the database property holding the task name.
	TitleProperty = "Name"

	// StatusProperty is the database property holding the task status.
	StatusProperty = "Status"

	// PageSize is the number of pages fetched per query.
	PageSize = 100

	// APITimeout is the timeout for API calls.
	APITimeout = 10 * time.Second
)

// Client implements store.Store using the Notion API.
// Tasks are pages in a database; name and status are typed properties.
type Client struct {
	api        *notionapi.Client
	databaseID notionapi.DatabaseID
}

// New creates a Notion client from the configured credentials.
// Returns store.ErrNotConfigured when the token or database id is missing.
func New(cfg *config.Config) (*Client, error) {
	if !cfg.HasNotionCredentials() {
		return nil, store.ErrNotConfigured
	}
	return &Client{
		api:        notionapi.NewClient(notionapi.Token(cfg.NotionToken)),
		databaseID: notionapi.DatabaseID(cfg.NotionDatabaseID),
	}, nil
}

// NewWithHTTPClient creates a client with a custom HTTP client (for testing).
func NewWithHTTPClient(token, databaseID string, httpClient *http.Client) *Client {
	return &Client{
		api:        notionapi.NewClient(notionapi.Token(token), notionapi.WithHTTPClient(httpClient)),
		databaseID: notionapi.DatabaseID(databaseID),
	}
}

// List queries the database for non-archived pages and maps each one to a
// task. A page with a missing or empty name or status fails the whole call.
func (c *Client) List(ctx context.Context, filter store.Status) ([]store.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	req := &notionapi.DatabaseQueryRequest{PageSize: PageSize}
	if filter != store.AnyStatus {
		if !filter.Valid() {
			return nil, fmt.Errorf("%w: %s", store.ErrInvalidStatus, filter)
		}
		req.Filter = notionapi.PropertyFilter{
			Property: StatusProperty,
			Status:   &notionapi.StatusFilterCondition{Equals: string(filter)},
		}
	}

	var tasks []store.Task
	for {
		resp, err := c.api.Database.Query(ctx, c.databaseID, req)
		if err != nil {
			slog.Debug("notion query failed", "error", err)
			return nil, wrapError(err)
		}
		for _, page := range resp.Results {
			t, err := pageTask(page)
			if err != nil {
				return nil, err
			}
			tasks = append(tasks, t)
		}
		if !resp.HasMore {
			break
		}
		req.StartCursor = resp.NextCursor
	}

	return tasks, nil
}

// Add creates a page under the parent database and returns the task with
// the id Notion assigned to it.
func (c *Client) Add(ctx context.Context, name string, status store.Status) (store.Task, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return store.Task{}, store.ErrEmptyName
	}
	if status == store.AnyStatus {
		status = store.StatusNotStarted
	}
	if !status.Valid() {
		return store.Task{}, fmt.Errorf("%w: %s", store.ErrInvalidStatus, status)
	}

	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	page, err := c.api.Page.Create(ctx, &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: c.databaseID,
		},
		Properties: notionapi.Properties{
			TitleProperty: notionapi.TitleProperty{
				Title: []notionapi.RichText{
					{Text: &notionapi.Text{Content: name}},
				},
			},
			StatusProperty: notionapi.StatusProperty{
				Status: notionapi.Option{Name: string(status)},
			},
		},
	})
	if err != nil {
		slog.Debug("notion create failed", "error", err)
		return store.Task{}, wrapError(err)
	}

	return store.Task{ID: string(page.ID), Name: name, Status: status}, nil
}

// UpdateStatus sets the status property on a page.
func (c *Client) UpdateStatus(ctx context.Context, id string, status store.Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %s", store.ErrInvalidStatus, status)
	}

	return c.updatePage(ctx, id, notionapi.Properties{
		StatusProperty: notionapi.StatusProperty{
			Status: notionapi.Option{Name: string(status)},
		},
	}, false)
}

// UpdateName sets the title property on a page.
func (c *Client) UpdateName(ctx context.Context, id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return store.ErrEmptyName
	}

	return c.updatePage(ctx, id, notionapi.Properties{
		TitleProperty: notionapi.TitleProperty{
			Title: []notionapi.RichText{
				{Text: &notionapi.Text{Content: name}},
			},
		},
	}, false)
}

// Delete archives the page. Notion keeps it restorable.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.updatePage(ctx, id, notionapi.Properties{}, true)
}

// Restore unarchives the page.
func (c *Client) Restore(ctx context.Context, id string) error {
	return c.updatePage(ctx, id, notionapi.Properties{}, false)
}

// ClearAll archives every non-archived page, one call per page.
func (c *Client) ClearAll(ctx context.Context) (int, error) {
	return c.clear(ctx, store.AnyStatus)
}

// ClearByStatus archives every non-archived page with the given status.
func (c *Client) ClearByStatus(ctx context.Context, status store.Status) (int, error) {
	if !status.Valid() {
		return 0, fmt.Errorf("%w: %s", store.ErrInvalidStatus, status)
	}
	return c.clear(ctx, status)
}

// Close implements store.Store. The API client holds no connection state.
func (c *Client) Close() error { return nil }

// clear lists matching tasks then archives each individually. There is no
// batch endpoint; a failure partway leaves earlier tasks archived, so the
// count and the failed ids are both reported.
func (c *Client) clear(ctx context.Context, filter store.Status) (int, error) {
	tasks, err := c.List(ctx, filter)
	if err != nil {
		return 0, err
	}

	cleared := 0
	var failed []string
	var cause error
	for _, t := range tasks {
		if err := c.Delete(ctx, t.ID); err != nil {
			if cause == nil {
				cause = err
			}
			failed = append(failed, t.ID)
			continue
		}
		cleared++
	}

	if len(failed) > 0 {
		return cleared, &store.ClearError{FailedIDs: failed, Cause: cause}
	}
	return cleared, nil
}

// updatePage issues a page update. The properties map must be non-nil even
// when empty; the API rejects a null properties field.
func (c *Client) updatePage(ctx context.Context, id string, props notionapi.Properties, archived bool) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	_, err := c.api.Page.Update(ctx, notionapi.PageID(id), &notionapi.PageUpdateRequest{
		Properties: props,
		Archived:   archived,
	})
	if err != nil {
		slog.Debug("notion update failed", "page", id, "error", err)
		return wrapError(err)
	}
	return nil
}

// pageTask maps a page to the uniform task shape.
// The status property may be a native status or a select, depending on how
// the database column was created.
func pageTask(page notionapi.Page) (store.Task, error) {
	t := store.Task{ID: string(page.ID)}

	title, ok := page.Properties[TitleProperty].(*notionapi.TitleProperty)
	if !ok || len(title.Title) == 0 {
		return store.Task{}, fmt.Errorf("page %s: missing %s property", page.ID, TitleProperty)
	}
	t.Name = richTextContent(title.Title[0])
	if t.Name == "" {
		return store.Task{}, fmt.Errorf("page %s: empty %s property", page.ID, TitleProperty)
	}

	switch prop := page.Properties[StatusProperty].(type) {
	case *notionapi.StatusProperty:
		t.Status = store.Status(prop.Status.Name)
	case *notionapi.SelectProperty:
		t.Status = store.Status(prop.Select.Name)
	default:
		return store.Task{}, fmt.Errorf("page %s: missing %s property", page.ID, StatusProperty)
	}
	if !t.Status.Valid() {
		return store.Task{}, fmt.Errorf("page %s: %w: %s", page.ID, store.ErrInvalidStatus, t.Status)
	}

	return t, nil
}

func richTextContent(rt notionapi.RichText) string {
	if rt.Text != nil && rt.Text.Content != "" {
		return rt.Text.Content
	}
	return rt.PlainText
}

// wrapError maps API errors to short stable messages.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return errors.New("request timed out")
	}

	var apiErr *notionapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Status {
		case http.StatusUnauthorized, http.StatusForbidden:
			return errors.New("notion token rejected (check NOTION_AUTH_TOKEN)")
		case http.StatusNotFound:
			return errors.New("not found")
		}
	}

	return err
}
