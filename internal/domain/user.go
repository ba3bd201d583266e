package domain

import "time"

type User struct {
	ID              uint      `json:"id"`
	Email           string    `json:"email"`
	Password        string    `json:"-"`
	Name            string    `json:"name"`
	Role            string    `json:"role"` // "admin" or "player"
	CurrentHandicap *float64  `json:"current_handicap"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// PlayingHandicap is the handicap applied to a round submitted now.
// An unset handicap plays off scratch.
func (u User) PlayingHandicap() float64 {
	if u.CurrentHandicap == nil {
		return 0
	}

	return *u.CurrentHandicap
}
