package domain

import "time"

// TournamentScore is unique per (tournament, user). HandicapAtTime is
// snapshotted at submission and never re-read from the live handicap,
// so past scores stay historically accurate. StablefordPoints is only
// populated for Stableford tournaments; Position only after completion.
type TournamentScore struct {
	ID                 uint        `json:"id"`
	TournamentID       uint        `json:"tournament_id"`
	UserID             uint        `json:"user_id"`
	UserName           string      `json:"user_name,omitempty"`
	GrossScore         int         `json:"gross_score"`
	HandicapAtTime     float64     `json:"handicap_at_time"`
	NetScore           int         `json:"net_score"`
	StablefordPoints   *int        `json:"stableford_points"`
	Position           *int        `json:"position"`
	HandicapAdjustment int         `json:"handicap_adjustment"`
	HoleScores         []HoleScore `json:"hole_scores,omitempty"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
}

type HoleScore struct {
	ID                uint `json:"id"`
	TournamentScoreID uint `json:"tournament_score_id"`
	HoleID            uint `json:"hole_id"`
	Strokes           int  `json:"strokes"`
	StablefordPoints  *int `json:"stableford_points"`
}
