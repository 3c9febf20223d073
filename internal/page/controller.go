// Package page holds the state behind one rendered page: which property, if
// any, the detail dialog is showing.
package page

import (
	"fmt"

	"github.com/yourorg/housing-site/catalog"
)

// Dialog is the read view handed to the detail dialog. Open is derived from
// Property and is never stored separately.
type Dialog struct {
	Property *catalog.Property
	Open     bool
}

// Controller owns the selection for a single page. It is not safe for
// concurrent use; callers serialize access.
type Controller struct {
	catalog  *catalog.Catalog
	selected *catalog.Property
}

func New(c *catalog.Catalog) *Controller {
	return &Controller{catalog: c}
}

func (c *Controller) Catalog() *catalog.Catalog { return c.catalog }

// Select is the listing card callback. The stored value is the catalog's
// record for p.ID, so a caller cannot smuggle in an edited copy.
func (c *Controller) Select(p catalog.Property) error {
	return c.SelectID(p.ID)
}

func (c *Controller) SelectID(id int) error {
	p, ok := c.catalog.Lookup(id)
	if !ok {
		return fmt.Errorf("%w: %d", catalog.ErrNotFound, id)
	}
	c.selected = &p
	return nil
}

// Close is the dialog's close callback.
func (c *Controller) Close() { c.selected = nil }

func (c *Controller) Selected() (catalog.Property, bool) {
	if c.selected == nil {
		return catalog.Property{}, false
	}
	return *c.selected, true
}

func (c *Controller) Dialog() Dialog {
	p, ok := c.Selected()
	if !ok {
		return Dialog{}
	}
	return Dialog{Property: &p, Open: true}
}
