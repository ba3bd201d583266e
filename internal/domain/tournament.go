package domain

import "time"

type TournamentFormat string

const (
	FormatStrokePlay TournamentFormat = "Stroke Play"
	FormatStableford TournamentFormat = "Stableford"
)

type TournamentStatus string

const (
	StatusUpcoming  TournamentStatus = "upcoming"
	StatusCompleted TournamentStatus = "completed"
)

// Tournament status moves one way, upcoming to completed. Only major
// tournaments trigger handicap adjustment on completion.
type Tournament struct {
	ID        uint              `json:"id"`
	ClubID    uint              `json:"club_id"`
	CourseID  uint              `json:"course_id"`
	Course    Course            `json:"course,omitempty"`
	Name      string            `json:"name"`
	Date      time.Time         `json:"date"`
	Format    TournamentFormat  `json:"format"`
	IsMajor   bool              `json:"is_major"`
	Status    TournamentStatus  `json:"status"`
	Scores    []TournamentScore `json:"scores,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// Participant joins a user to a tournament. Flight is a grouping tag
// consumed by tee-time planning, not by scoring.
type Participant struct {
	ID           uint      `json:"id"`
	TournamentID uint      `json:"tournament_id"`
	UserID       uint      `json:"user_id"`
	UserName     string    `json:"user_name,omitempty"`
	Role         string    `json:"role"`
	Flight       string    `json:"flight,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
