package domain

// Category restricts who may compete: age and weight brackets plus gender,
// optionally narrowed to a sport level. Unique per (sport, name).
type Category struct {
	ID        uint     `json:"id"`
	SportID   uint     `json:"sport_id"`
	Name      string   `json:"name"`
	MinAge    *int     `json:"min_age,omitempty"`
	MaxAge    *int     `json:"max_age,omitempty"`
	MinWeight *float64 `json:"min_weight,omitempty"`
	MaxWeight *float64 `json:"max_weight,omitempty"`
	GenderID  uint     `json:"gender_id"`
	LevelID   *uint    `json:"level_id,omitempty"`
}
