package domain

import "time"

// Role names as stored in the user_types reference table.
const (
	RoleAdmin      = "ADMIN"
	RoleOrganizer  = "ORGANIZER"
	RoleCompetitor = "COMPETITOR"
)

type UserType struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type Gender struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type User struct {
	ID           uint      `json:"id"`
	DNI          string    `json:"dni"`
	TypeID       uint      `json:"type_id"`
	Role         string    `json:"role"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	DateOfBirth  time.Time `json:"date_of_birth"`
	GenderID     uint      `json:"gender_id"`
	Country      string    `json:"country"`
	City         string    `json:"city"`
	Phone        string    `json:"phone,omitempty"`
	Avatar       string    `json:"avatar,omitempty"`
	IsVerified   bool      `json:"is_verified"`
	CreatedAt    time.Time `json:"created_at"`
}

// Age returns the user's age in whole years at the given instant.
func (u User) Age(now time.Time) int {
	years := now.Year() - u.DateOfBirth.Year()
	if u.DateOfBirth.AddDate(years, 0, 0).After(now) {
		years--
	}

	return years
}
