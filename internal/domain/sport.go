package domain

type Sport struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// SportLevel is an optional skill tier within a sport (e.g. amateur, pro).
// Names are unique per sport.
type SportLevel struct {
	ID      uint   `json:"id"`
	SportID uint   `json:"sport_id"`
	Name    string `json:"name"`
}
