package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/fairwaylabs/society-api/internal/domain"
	"github.com/fairwaylabs/society-api/internal/repository"
)

var (
	ErrTournamentCompleted = repository.ErrTournamentCompleted
	ErrCourseNotFound      = repository.ErrCourseNotFound
	ErrNoScoresRecorded    = errors.New("no scores found")
)

const (
	winnerAdjustment    = -2
	lastPlaceAdjustment = 1
)

type TournamentRepository interface {
	Create(ctx context.Context, tournament domain.Tournament) (domain.Tournament, error)
	FindByID(ctx context.Context, id uint) (domain.Tournament, error)
	FindByClub(ctx context.Context, clubID uint) ([]domain.Tournament, error)
	FindParticipants(ctx context.Context, tournamentID uint) ([]domain.Participant, error)
	FindCompletedInYear(ctx context.Context, clubID uint, year int) ([]domain.Tournament, error)
	Complete(ctx context.Context, tournamentID uint, placements []repository.ScorePlacement, changes []repository.HandicapChange) error
}

type CourseRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Course, error)
	FindAll(ctx context.Context) ([]domain.Course, error)
}

type TournamentService struct {
	repo       TournamentRepository
	courseRepo CourseRepository
	scoreRepo  ScoreRepository
	userRepo   UserRepository
	now        func() time.Time
}

func NewTournamentService(repo TournamentRepository, courseRepo CourseRepository, scoreRepo ScoreRepository, userRepo UserRepository) *TournamentService {
	return &TournamentService{
		repo:       repo,
		courseRepo: courseRepo,
		scoreRepo:  scoreRepo,
		userRepo:   userRepo,
		now:        time.Now,
	}
}

func (s *TournamentService) CreateTournament(ctx context.Context, tournament domain.Tournament) (domain.Tournament, error) {
	if _, err := s.courseRepo.FindByID(ctx, tournament.CourseID); err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return domain.Tournament{}, ErrCourseNotFound
		}

		return domain.Tournament{}, fmt.Errorf("s.courseRepo.FindByID -> %w", err)
	}

	tournament.Status = domain.StatusUpcoming

	created, err := s.repo.Create(ctx, tournament)
	if err != nil {
		return domain.Tournament{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *TournamentService) GetTournament(ctx context.Context, id uint) (domain.Tournament, error) {
	tournament, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTournamentNotFound) {
			return domain.Tournament{}, ErrTournamentNotFound
		}

		return domain.Tournament{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return tournament, nil
}

func (s *TournamentService) ListTournaments(ctx context.Context, clubID uint) ([]domain.Tournament, error) {
	tournaments, err := s.repo.FindByClub(ctx, clubID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByClub -> %w", err)
	}

	return tournaments, nil
}

func (s *TournamentService) GetParticipants(ctx context.Context, tournamentID uint) ([]domain.Participant, error) {
	if _, err := s.GetTournament(ctx, tournamentID); err != nil {
		return nil, err
	}

	participants, err := s.repo.FindParticipants(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindParticipants -> %w", err)
	}

	return participants, nil
}

// CompleteTournament finalizes a tournament. Majors are ranked by
// ascending net score: first place takes a two-stroke cut, last place
// gets one back, and both changes are written to the live handicap
// with a ledger entry. Every write lands in one transaction together
// with the status flip, and the flip is conditional, so a second
// completion call loses the race cleanly instead of adjusting twice.
//
// Ranking is by net score even for Stableford events. That mirrors the
// long-standing behavior the society has run with; changing it to
// points-based ranking needs a product decision first.
func (s *TournamentService) CompleteTournament(ctx context.Context, tournamentID uint) (domain.Tournament, error) {
	tournament, err := s.GetTournament(ctx, tournamentID)
	if err != nil {
		return domain.Tournament{}, err
	}

	if tournament.Status == domain.StatusCompleted {
		return domain.Tournament{}, ErrTournamentCompleted
	}

	var (
		placements []repository.ScorePlacement
		changes    []repository.HandicapChange
	)

	if tournament.IsMajor {
		scores, err := s.scoreRepo.FindByTournamentByNet(ctx, tournamentID)
		if err != nil {
			return domain.Tournament{}, fmt.Errorf("s.scoreRepo.FindByTournamentByNet -> %w", err)
		}
		if len(scores) == 0 {
			return domain.Tournament{}, ErrNoScoresRecorded
		}

		placements = make([]repository.ScorePlacement, 0, len(scores))

		for i, score := range scores {
			adjustment := 0
			var reason domain.HandicapReason

			if i == 0 {
				adjustment = winnerAdjustment
				reason = domain.ReasonTournamentWin
			} else if i == len(scores)-1 {
				adjustment = lastPlaceAdjustment
				reason = domain.ReasonTournamentLast
			}

			placements = append(placements, repository.ScorePlacement{
				ScoreID:    score.ID,
				Position:   i + 1,
				Adjustment: adjustment,
			})

			if adjustment == 0 {
				continue
			}

			user, err := s.userRepo.FindByID(ctx, score.UserID)
			if err != nil {
				return domain.Tournament{}, fmt.Errorf("s.userRepo.FindByID -> %w", err)
			}

			newHandicap := user.PlayingHandicap() + float64(adjustment)
			if newHandicap < 0 {
				newHandicap = 0
			}

			changes = append(changes, repository.HandicapChange{
				UserID:        score.UserID,
				NewHandicap:   newHandicap,
				Reason:        reason,
				TournamentID:  tournamentID,
				EffectiveDate: s.now(),
			})
		}
	}

	if err := s.repo.Complete(ctx, tournamentID, placements, changes); err != nil {
		if errors.Is(err, repository.ErrTournamentCompleted) {
			return domain.Tournament{}, ErrTournamentCompleted
		}

		return domain.Tournament{}, fmt.Errorf("s.repo.Complete -> %w", err)
	}

	zap.L().Info("tournament completed",
		zap.Uint("tournament_id", tournamentID),
		zap.Bool("is_major", tournament.IsMajor),
		zap.Int("handicap_changes", len(changes)),
	)

	completed, err := s.GetTournament(ctx, tournamentID)
	if err != nil {
		return domain.Tournament{}, err
	}

	scores, err := s.scoreRepo.FindByTournamentByNet(ctx, tournamentID)
	if err != nil {
		return domain.Tournament{}, fmt.Errorf("s.scoreRepo.FindByTournamentByNet -> %w", err)
	}
	completed.Scores = scores

	return completed, nil
}
