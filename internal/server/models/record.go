package models

// Record is the paginated demo entity. ID is assigned by the store,
// monotonically increasing and never reused.
type Record struct {
	ID       int64
	Name     string
	Message  string
	Priority int
}
