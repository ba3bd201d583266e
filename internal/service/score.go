package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fairwaylabs/society-api/internal/domain"
	"github.com/fairwaylabs/society-api/internal/repository"
	"github.com/fairwaylabs/society-api/internal/scoring"
)

var (
	ErrTournamentNotFound = repository.ErrTournamentNotFound
	ErrScoreNotFound      = repository.ErrScoreNotFound

	ErrMissingScores     = errors.New("either a gross score or hole scores must be supplied")
	ErrHoleCountMismatch = errors.New("hole scores must cover every hole on the course")
	ErrUnknownHole       = errors.New("hole does not belong to the tournament's course")
	ErrStrokesOutOfRange = errors.New("strokes must be between 1 and 15")
)

const (
	minStrokes = 1
	maxStrokes = 15
)

// HoleSubmission is one hole line of a score submission.
type HoleSubmission struct {
	HoleID  uint
	Strokes int
}

type ScoreRepository interface {
	Upsert(ctx context.Context, score domain.TournamentScore, holes []domain.HoleScore, holesSupplied bool) (domain.TournamentScore, error)
	FindByTournamentAndUser(ctx context.Context, tournamentID, userID uint) (domain.TournamentScore, error)
	FindByTournamentByNet(ctx context.Context, tournamentID uint) ([]domain.TournamentScore, error)
	FindByTournamentByPoints(ctx context.Context, tournamentID uint) ([]domain.TournamentScore, error)
}

type ScoreService struct {
	repo           ScoreRepository
	tournamentRepo TournamentRepository
	userRepo       UserRepository
}

func NewScoreService(repo ScoreRepository, tournamentRepo TournamentRepository, userRepo UserRepository) *ScoreService {
	return &ScoreService{
		repo:           repo,
		tournamentRepo: tournamentRepo,
		userRepo:       userRepo,
	}
}

// SubmitScore records a player's round. Hole-by-hole submissions are
// validated against the tournament's course and scored per hole; a
// bare gross score is the legacy path and is accepted as given. The
// player's live handicap is snapshotted onto the score. Resubmitting
// updates the same score, it never duplicates it.
func (s *ScoreService) SubmitScore(ctx context.Context, tournamentID, userID uint, gross *int, holes []HoleSubmission) (domain.TournamentScore, error) {
	tournament, err := s.tournamentRepo.FindByID(ctx, tournamentID)
	if err != nil {
		if errors.Is(err, repository.ErrTournamentNotFound) {
			return domain.TournamentScore{}, ErrTournamentNotFound
		}

		return domain.TournamentScore{}, fmt.Errorf("s.tournamentRepo.FindByID -> %w", err)
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.TournamentScore{}, ErrUserNotFound
		}

		return domain.TournamentScore{}, fmt.Errorf("s.userRepo.FindByID -> %w", err)
	}

	holesSupplied := len(holes) > 0
	if gross == nil && !holesSupplied {
		return domain.TournamentScore{}, ErrMissingScores
	}

	courseHoles := make(map[uint]domain.Hole, len(tournament.Course.Holes))
	for _, h := range tournament.Course.Holes {
		courseHoles[h.ID] = h
	}

	var finalGross int
	if holesSupplied {
		if len(holes) != len(tournament.Course.Holes) {
			return domain.TournamentScore{}, ErrHoleCountMismatch
		}

		for _, h := range holes {
			if _, ok := courseHoles[h.HoleID]; !ok {
				return domain.TournamentScore{}, ErrUnknownHole
			}
			if h.Strokes < minStrokes || h.Strokes > maxStrokes {
				return domain.TournamentScore{}, ErrStrokesOutOfRange
			}

			finalGross += h.Strokes
		}
	} else {
		finalGross = *gross
	}

	handicap := user.PlayingHandicap()

	score := domain.TournamentScore{
		TournamentID:   tournamentID,
		UserID:         userID,
		GrossScore:     finalGross,
		HandicapAtTime: handicap,
		NetScore:       scoring.NetScore(finalGross, handicap),
	}

	var holeScores []domain.HoleScore
	if holesSupplied {
		holeScores = make([]domain.HoleScore, len(holes))

		if tournament.Format == domain.FormatStableford {
			total := 0
			for i, h := range holes {
				hole := courseHoles[h.HoleID]
				handicapStrokes := scoring.StrokesForHole(handicap, hole.StrokeIndex)
				points := scoring.StablefordPoints(h.Strokes, hole.Par, handicapStrokes)
				total += points

				p := points
				holeScores[i] = domain.HoleScore{
					HoleID:           h.HoleID,
					Strokes:          h.Strokes,
					StablefordPoints: &p,
				}
			}

			score.StablefordPoints = &total
		} else {
			for i, h := range holes {
				holeScores[i] = domain.HoleScore{
					HoleID:  h.HoleID,
					Strokes: h.Strokes,
				}
			}
		}
	}

	saved, err := s.repo.Upsert(ctx, score, holeScores, holesSupplied)
	if err != nil {
		return domain.TournamentScore{}, fmt.Errorf("s.repo.Upsert -> %w", err)
	}

	return saved, nil
}

// Leaderboard orders a tournament's scores by Stableford points for
// Stableford events and by net score for everything else.
func (s *ScoreService) Leaderboard(ctx context.Context, tournamentID uint) ([]domain.TournamentScore, error) {
	tournament, err := s.tournamentRepo.FindByID(ctx, tournamentID)
	if err != nil {
		if errors.Is(err, repository.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}

		return nil, fmt.Errorf("s.tournamentRepo.FindByID -> %w", err)
	}

	if tournament.Format == domain.FormatStableford {
		scores, err := s.repo.FindByTournamentByPoints(ctx, tournamentID)
		if err != nil {
			return nil, fmt.Errorf("s.repo.FindByTournamentByPoints -> %w", err)
		}

		return scores, nil
	}

	scores, err := s.repo.FindByTournamentByNet(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByTournamentByNet -> %w", err)
	}

	return scores, nil
}

func (s *ScoreService) GetScore(ctx context.Context, tournamentID, userID uint) (domain.TournamentScore, error) {
	score, err := s.repo.FindByTournamentAndUser(ctx, tournamentID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrScoreNotFound) {
			return domain.TournamentScore{}, ErrScoreNotFound
		}

		return domain.TournamentScore{}, fmt.Errorf("s.repo.FindByTournamentAndUser -> %w", err)
	}

	return score, nil
}
