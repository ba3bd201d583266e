package domain

import "time"

// Hole is immutable once created. StrokeIndex is the 1-18 difficulty
// rank used for handicap stroke allocation; courses without rated
// holes leave it nil.
type Hole struct {
	ID          uint `json:"id"`
	CourseID    uint `json:"course_id"`
	HoleNumber  int  `json:"hole_number"`
	Par         int  `json:"par"`
	StrokeIndex *int `json:"stroke_index"`
}

type Course struct {
	ID        uint      `json:"id"`
	ClubID    uint      `json:"club_id"`
	Name      string    `json:"name"`
	Par       int       `json:"par"`
	Holes     []Hole    `json:"holes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
