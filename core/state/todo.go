package state

// TodoList holds the to-do items in the order they were added. The user
// numbers them from 1.
type TodoList struct {
	items []string
}

// NewTodoList creates a list holding a copy of items.
func NewTodoList(items []string) *TodoList {
	return &TodoList{items: append([]string(nil), items...)}
}

// Add appends an item.
func (t *TodoList) Add(item string) {
	t.items = append(t.items, item)
}

// Remove deletes the n-th item, counting from 1. It reports false when no
// such item exists.
func (t *TodoList) Remove(n int) (string, bool) {
	if n < 1 || n > len(t.items) {
		return "", false
	}

	removed := t.items[n-1]
	t.items = append(t.items[:n-1], t.items[n:]...)
	return removed, true
}

// Items returns a copy of the items.
func (t *TodoList) Items() []string {
	return append([]string{}, t.items...)
}

func (t *TodoList) Len() int {
	return len(t.items)
}
