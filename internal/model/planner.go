package model

// PlannerItem is a date-stamped planner entry. Unlike tasks, planner items
// are persisted as one flat list and filtered by date at read time.
type PlannerItem struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date"` // date key the item is planned for
	Done  bool   `json:"done,omitempty"`
	Note  string `json:"note,omitempty"`
}
