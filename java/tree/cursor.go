package tree

// Cursor is the path from the root of a walk to the node being visited. A
// cursor is only valid while its node is being visited.
type Cursor struct {
	parent   *Cursor
	value    Tree
	messages map[string]any
	skip     bool
}

// NewCursor returns a cursor for value positioned under parent.
func NewCursor(parent *Cursor, value Tree) *Cursor {
	return &Cursor{parent: parent, value: value}
}

// SkipChildren keeps Walk from descending below the node of c. It only has
// an effect when called before the children are visited, from a pre-visit.
func (c *Cursor) SkipChildren() {
	c.skip = true
}

// Parent returns the enclosing cursor, or nil at the root.
func (c *Cursor) Parent() *Cursor {
	if c == nil {
		return nil
	}
	return c.parent
}

func (c *Cursor) Value() Tree {
	if c == nil {
		return nil
	}
	return c.value
}

// ParentTree returns the closest enclosing node, skipping cursors that do
// not hold one.
func (c *Cursor) ParentTree() Tree {
	for p := c.Parent(); p != nil; p = p.parent {
		if !IsNil(p.value) {
			return p.value
		}
	}
	return nil
}

// Depth is the number of cursors between c and the root.
func (c *Cursor) Depth() int {
	d := 0
	for p := c.Parent(); p != nil; p = p.parent {
		d++
	}
	return d
}

// Path returns the nodes from the root down to c.
func (c *Cursor) Path() []Tree {
	var path []Tree
	for p := c; p != nil; p = p.parent {
		if !IsNil(p.value) {
			path = append(path, p.value)
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// PutMessage stores a value visible to this cursor and its descendants.
func (c *Cursor) PutMessage(key string, value any) {
	if c.messages == nil {
		c.messages = make(map[string]any)
	}
	c.messages[key] = value
}

// Message returns a value stored on this cursor only.
func (c *Cursor) Message(key string) (any, bool) {
	if c == nil || c.messages == nil {
		return nil, false
	}
	v, ok := c.messages[key]
	return v, ok
}

// NearestMessage searches c and its ancestors for key.
func (c *Cursor) NearestMessage(key string) (any, bool) {
	for p := c; p != nil; p = p.parent {
		if v, ok := p.Message(key); ok {
			return v, true
		}
	}
	return nil, false
}

// FirstEnclosing returns the closest node of type T starting at c itself.
func FirstEnclosing[T Tree](c *Cursor) (T, bool) {
	for p := c; p != nil; p = p.parent {
		if t, ok := p.value.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// CursorFor rebuilds the cursor path from root down to the node with the
// given id, or returns nil when no such node exists.
func CursorFor(root Tree, id ID) *Cursor {
	var found *Cursor
	Inspect(root, func(t Tree, c *Cursor) bool {
		if found != nil {
			return false
		}
		if IDOf(t) == id {
			found = detach(c)
			return false
		}
		return true
	})
	return found
}

// detach copies the cursor chain so it outlives the walk that built it.
func detach(c *Cursor) *Cursor {
	if c == nil {
		return nil
	}
	return &Cursor{parent: detach(c.parent), value: c.value}
}
