package service

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/fairwaylabs/society-api/internal/domain"
	"github.com/fairwaylabs/society-api/internal/scoring"
)

const bestResultsCounted = 5

type StandingsService struct {
	tournamentRepo TournamentRepository
}

func NewStandingsService(tournamentRepo TournamentRepository) *StandingsService {
	return &StandingsService{
		tournamentRepo: tournamentRepo,
	}
}

// YearStandings aggregates a season. Every completed tournament in
// the calendar year contributes points per finishing position; each
// player's total, best-five sum, and per-tournament average roll up
// into a table ranked by the best-five sum. Scores recorded before
// positions existed fall back to their stored order.
func (s *StandingsService) YearStandings(ctx context.Context, clubID uint, year int) (domain.StandingsReport, error) {
	tournaments, err := s.tournamentRepo.FindCompletedInYear(ctx, clubID, year)
	if err != nil {
		return domain.StandingsReport{}, fmt.Errorf("s.tournamentRepo.FindCompletedInYear -> %w", err)
	}

	report := domain.StandingsReport{
		Year:        year,
		Tournaments: make([]domain.StandingsTournament, 0, len(tournaments)),
		Standings:   []domain.PlayerStanding{},
	}

	players := make(map[uint]*domain.PlayerStanding)
	var order []uint

	for _, tournament := range tournaments {
		report.Tournaments = append(report.Tournaments, domain.StandingsTournament{
			ID:   tournament.ID,
			Name: tournament.Name,
			Date: tournament.Date,
		})

		for i, score := range tournament.Scores {
			position := i + 1
			if score.Position != nil {
				position = *score.Position
			}
			points := scoring.PositionPoints(position)

			player, ok := players[score.UserID]
			if !ok {
				player = &domain.PlayerStanding{
					UserID: score.UserID,
					Name:   score.UserName,
				}
				players[score.UserID] = player
				order = append(order, score.UserID)
			}

			player.Results = append(player.Results, domain.TournamentResult{
				TournamentName: tournament.Name,
				Points:         points,
				Position:       position,
			})
			player.TotalPoints += points
			player.TournamentsPlayed++
		}
	}

	for _, userID := range order {
		player := players[userID]

		points := make([]int, len(player.Results))
		for i, result := range player.Results {
			points[i] = result.Points
		}
		sort.Sort(sort.Reverse(sort.IntSlice(points)))

		counted := bestResultsCounted
		if len(points) < counted {
			counted = len(points)
		}
		for _, p := range points[:counted] {
			player.Best5Points += p
		}

		player.AveragePoints = roundToTenth(float64(player.TotalPoints) / float64(player.TournamentsPlayed))

		report.Standings = append(report.Standings, *player)
	}

	sort.SliceStable(report.Standings, func(i, j int) bool {
		return report.Standings[i].Best5Points > report.Standings[j].Best5Points
	})

	return report, nil
}

func roundToTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
