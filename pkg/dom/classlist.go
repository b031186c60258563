package dom

import "strings"

// ClassList is an ordered set of CSS class names.
type ClassList struct {
	names []string
}

// Add appends names not already present.
func (c *ClassList) Add(names ...string) {
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || c.Contains(name) {
			continue
		}
		c.names = append(c.names, name)
	}
}

// Remove drops the given names.
func (c *ClassList) Remove(names ...string) {
	if len(c.names) == 0 {
		return
	}
	out := c.names[:0]
	for _, existing := range c.names {
		drop := false
		for _, name := range names {
			if existing == name {
				drop = true
				break
			}
		}
		if !drop {
			out = append(out, existing)
		}
	}
	c.names = out
}

// Contains reports whether name is present.
func (c *ClassList) Contains(name string) bool {
	for _, existing := range c.names {
		if existing == name {
			return true
		}
	}
	return false
}

// Values returns a copy of the names in insertion order.
func (c *ClassList) Values() []string {
	if len(c.names) == 0 {
		return nil
	}
	return append([]string(nil), c.names...)
}

// String joins the names the way a class attribute does.
func (c *ClassList) String() string {
	return strings.Join(c.names, " ")
}
