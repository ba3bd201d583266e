package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/fairwaylabs/society-api/internal/domain"
	"github.com/fairwaylabs/society-api/internal/repository/dao"
)

var (
	ErrTournamentNotFound  = dao.ErrTournamentNotFound
	ErrTournamentCompleted = dao.ErrTournamentCompleted
)

// ScorePlacement is one score's finishing position and handicap delta,
// computed by the service and persisted by Complete.
type ScorePlacement struct {
	ScoreID    uint
	Position   int
	Adjustment int
}

// HandicapChange is one player's new live handicap and its ledger
// entry, persisted by Complete alongside the placements.
type HandicapChange struct {
	UserID        uint
	NewHandicap   float64
	Reason        domain.HandicapReason
	TournamentID  uint
	EffectiveDate time.Time
}

type TournamentDAO interface {
	Insert(ctx context.Context, tournament dao.Tournament) (dao.Tournament, error)
	FindByID(ctx context.Context, id uint) (dao.Tournament, error)
	FindByClub(ctx context.Context, clubID uint) ([]dao.Tournament, error)
	FindParticipants(ctx context.Context, tournamentID uint) ([]dao.Participant, error)
	FindCompletedInYear(ctx context.Context, clubID uint, year int) ([]dao.Tournament, error)
	Complete(ctx context.Context, tournamentID uint, placements []dao.ScorePlacement, changes []dao.HandicapChange) error
}

type TournamentRepository struct {
	dao TournamentDAO
}

func NewTournamentRepository(dao TournamentDAO) *TournamentRepository {
	return &TournamentRepository{
		dao: dao,
	}
}

func tournamentDomainToDao(t domain.Tournament) dao.Tournament {
	return dao.Tournament{
		ID:       t.ID,
		ClubID:   t.ClubID,
		CourseID: t.CourseID,
		Name:     t.Name,
		Date:     t.Date,
		Format:   string(t.Format),
		IsMajor:  t.IsMajor,
		Status:   string(t.Status),
	}
}

func tournamentDaoToDomain(t dao.Tournament) domain.Tournament {
	tournament := domain.Tournament{
		ID:        t.ID,
		ClubID:    t.ClubID,
		CourseID:  t.CourseID,
		Name:      t.Name,
		Date:      t.Date,
		Format:    domain.TournamentFormat(t.Format),
		IsMajor:   t.IsMajor,
		Status:    domain.TournamentStatus(t.Status),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}

	if t.Course.ID != 0 {
		tournament.Course = courseDaoToDomain(t.Course)
	}

	if len(t.Scores) > 0 {
		tournament.Scores = scoresDaoToDomain(t.Scores)
	}

	return tournament
}

func participantDaoToDomain(p dao.Participant) domain.Participant {
	return domain.Participant{
		ID:           p.ID,
		TournamentID: p.TournamentID,
		UserID:       p.UserID,
		UserName:     p.User.Name,
		Role:         p.Role,
		Flight:       p.Flight,
		CreatedAt:    p.CreatedAt,
	}
}

func (r *TournamentRepository) Create(ctx context.Context, tournament domain.Tournament) (domain.Tournament, error) {
	created, err := r.dao.Insert(ctx, tournamentDomainToDao(tournament))
	if err != nil {
		return domain.Tournament{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return tournamentDaoToDomain(created), nil
}

func (r *TournamentRepository) FindByID(ctx context.Context, id uint) (domain.Tournament, error) {
	tournament, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Tournament{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return tournamentDaoToDomain(tournament), nil
}

func (r *TournamentRepository) FindByClub(ctx context.Context, clubID uint) ([]domain.Tournament, error) {
	tournaments, err := r.dao.FindByClub(ctx, clubID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByClub -> %w", err)
	}

	out := make([]domain.Tournament, len(tournaments))
	for i, t := range tournaments {
		out[i] = tournamentDaoToDomain(t)
	}

	return out, nil
}

func (r *TournamentRepository) FindParticipants(ctx context.Context, tournamentID uint) ([]domain.Participant, error) {
	participants, err := r.dao.FindParticipants(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindParticipants -> %w", err)
	}

	out := make([]domain.Participant, len(participants))
	for i, p := range participants {
		out[i] = participantDaoToDomain(p)
	}

	return out, nil
}

func (r *TournamentRepository) FindCompletedInYear(ctx context.Context, clubID uint, year int) ([]domain.Tournament, error) {
	tournaments, err := r.dao.FindCompletedInYear(ctx, clubID, year)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindCompletedInYear -> %w", err)
	}

	out := make([]domain.Tournament, len(tournaments))
	for i, t := range tournaments {
		out[i] = tournamentDaoToDomain(t)
	}

	return out, nil
}

func (r *TournamentRepository) Complete(ctx context.Context, tournamentID uint, placements []ScorePlacement, changes []HandicapChange) error {
	placementsDAO := make([]dao.ScorePlacement, len(placements))
	for i, p := range placements {
		placementsDAO[i] = dao.ScorePlacement{
			ScoreID:    p.ScoreID,
			Position:   p.Position,
			Adjustment: p.Adjustment,
		}
	}

	changesDAO := make([]dao.HandicapChange, len(changes))
	for i, c := range changes {
		tid := c.TournamentID
		changesDAO[i] = dao.HandicapChange{
			UserID:      c.UserID,
			NewHandicap: c.NewHandicap,
			History: dao.HandicapHistory{
				UserID:        c.UserID,
				HandicapIndex: c.NewHandicap,
				Reason:        string(c.Reason),
				EffectiveDate: c.EffectiveDate,
				TournamentID:  &tid,
			},
		}
	}

	if err := r.dao.Complete(ctx, tournamentID, placementsDAO, changesDAO); err != nil {
		return fmt.Errorf("r.dao.Complete -> %w", err)
	}

	return nil
}
