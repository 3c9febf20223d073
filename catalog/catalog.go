package catalog

import (
	"errors"
	"fmt"
)

// Catalog is the fixed, ordered set of properties shown on the site. It has
// no mutators; callers only ever receive copies of its records.
type Catalog struct {
	items []Property
	byID  map[int]int
}

// New validates props and builds a Catalog preserving their order. Every
// malformed record is reported, joined into one error.
func New(props []Property) (*Catalog, error) {
	c := &Catalog{
		items: make([]Property, 0, len(props)),
		byID:  make(map[int]int, len(props)),
	}
	var joined error
	for _, p := range props {
		n, err := normalize(p)
		if err != nil {
			joined = errors.Join(joined, err)
			continue
		}
		if _, dup := c.byID[n.ID]; dup {
			joined = errors.Join(joined, fmt.Errorf("%w: %d", ErrDuplicateID, n.ID))
			continue
		}
		c.byID[n.ID] = len(c.items)
		c.items = append(c.items, n)
	}
	if joined != nil {
		return nil, joined
	}
	return c, nil
}

func (c *Catalog) Len() int { return len(c.items) }

// All returns the properties in catalog order.
func (c *Catalog) All() []Property {
	out := make([]Property, len(c.items))
	for i, p := range c.items {
		out[i] = p.clone()
	}
	return out
}

func (c *Catalog) Lookup(id int) (Property, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Property{}, false
	}
	return c.items[i].clone(), true
}

func mustNew(props []Property) *Catalog {
	c, err := New(props)
	if err != nil {
		panic(err)
	}
	return c
}
