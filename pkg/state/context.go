package state

import "fmt"

// Context is a type-erased, single-value slot owned by one loop invocation.
// The zero value is an empty Context ready to use.
type Context struct {
	// value always holds a *T so GetMut can hand out a stable pointer.
	value any
}

// New creates an empty Context.
func New() *Context {
	return &Context{}
}

// With creates a Context already holding v.
func With[T any](v T) *Context {
	c := New()
	Set(c, v)
	return c
}

// Set replaces whatever the Context holds with v, now typed T.
func Set[T any](c *Context, v T) {
	c.value = &v
}

// Get returns the stored value if its type is exactly T.
// An empty Context and a Context holding another type both return false.
func Get[T any](c *Context) (T, bool) {
	p, ok := GetMut[T](c)
	if !ok {
		var zero T
		return zero, false
	}
	return *p, true
}

// GetMut returns a pointer to the stored value if its type is exactly T.
// Writes through the pointer are seen by later reads. The pointer must not be
// kept beyond the handler call that obtained it.
func GetMut[T any](c *Context) (*T, bool) {
	if c == nil {
		return nil, false
	}
	p, ok := c.value.(*T)
	return p, ok
}

// Empty reports whether nothing is stored.
func (c *Context) Empty() bool {
	return c == nil || c.value == nil
}

// TypeName returns the Go type of the stored value, or "" when empty.
func (c *Context) TypeName() string {
	if c.Empty() {
		return ""
	}
	// value is *T; drop the pointer marker.
	return fmt.Sprintf("%T", c.value)[1:]
}

// Clear drops the stored value.
func (c *Context) Clear() {
	c.value = nil
}
