package input

import (
	"filefinder/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State          *state.AppState
	ConfirmDeletes bool
}

// CurrentIndex returns the current selected index
func (c *ModelContext) CurrentIndex() int {
	return c.State.SelectedIndex
}

// TotalItems returns the number of rows currently listed
func (c *ModelContext) TotalItems() int {
	return len(c.State.Visible)
}

// SelectedPath returns the absolute path under the cursor, or ""
func (c *ModelContext) SelectedPath() string {
	if item, ok := c.State.SelectedItem(); ok {
		return item.Path
	}
	return ""
}

func (c *ModelContext) SelectedIsDir() bool {
	item, ok := c.State.SelectedItem()
	return ok && item.IsDir
}

func (c *ModelContext) SearchEnabled() bool {
	return c.State.SearchEnabled()
}

func (c *ModelContext) Query() string {
	return c.State.Search.Query
}

func (c *ModelContext) NarrowQuery() string {
	return c.State.NarrowQuery
}

// ConfirmDelete reports whether deletes go through the y/n prompt
func (c *ModelContext) ConfirmDelete() bool {
	return c.ConfirmDeletes
}
