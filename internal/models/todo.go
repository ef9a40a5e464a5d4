package models

import "fmt"

// Todo represents a single todo item.
type Todo struct {
	ID   uint64 `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// DOMID returns the stable element id targeting this todo's fragment.
// It is derived solely from the todo's id, so re-rendering the same todo
// always addresses the same element.
func (t Todo) DOMID() string {
	return fmt.Sprintf("todo-%d", t.ID)
}

// TogglePath returns the URL path that toggles this todo's done state.
func (t Todo) TogglePath() string {
	return fmt.Sprintf("/%d/done", t.ID)
}

// Summary reports how many todos are completed out of the total.
type Summary struct {
	Completed int
	Total     int
}
