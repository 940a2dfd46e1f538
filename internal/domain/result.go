package domain

// Result is a competitor's placement within one category of an event.
// Positions are unique per (event, category); a competitor gets at most
// one result per (event, category).
type Result struct {
	ID           uint   `json:"id"`
	EventID      uint   `json:"event_id"`
	CategoryID   uint   `json:"category_id"`
	CompetitorID uint   `json:"competitor_id"`
	Position     int    `json:"position"`
	Notes        string `json:"notes,omitempty"`
}
