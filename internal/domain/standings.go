package domain

import "time"

type StandingsTournament struct {
	ID   uint      `json:"id"`
	Name string    `json:"name"`
	Date time.Time `json:"date"`
}

type TournamentResult struct {
	TournamentName string `json:"tournament_name"`
	Points         int    `json:"points"`
	Position       int    `json:"position"`
}

type PlayerStanding struct {
	UserID            uint               `json:"user_id"`
	Name              string             `json:"name"`
	TournamentsPlayed int                `json:"tournaments_played"`
	TotalPoints       int                `json:"total_points"`
	Best5Points       int                `json:"best_5_points"`
	AveragePoints     float64            `json:"average_points"`
	Results           []TournamentResult `json:"results"`
}

// StandingsReport ranks a season's players by their best five
// tournament results.
type StandingsReport struct {
	Year        int                   `json:"year"`
	Tournaments []StandingsTournament `json:"tournaments"`
	Standings   []PlayerStanding      `json:"standings"`
}
