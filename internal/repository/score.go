package repository

import (
	"context"
	"fmt"

	"github.com/fairwaylabs/society-api/internal/domain"
	"github.com/fairwaylabs/society-api/internal/repository/dao"
)

var ErrScoreNotFound = dao.ErrScoreNotFound

type ScoreDAO interface {
	Upsert(ctx context.Context, score dao.TournamentScore, holes []dao.HoleScore, holesSupplied bool) (dao.TournamentScore, error)
	FindByTournamentAndUser(ctx context.Context, tournamentID, userID uint) (dao.TournamentScore, error)
	FindByTournamentByNet(ctx context.Context, tournamentID uint) ([]dao.TournamentScore, error)
	FindByTournamentByPoints(ctx context.Context, tournamentID uint) ([]dao.TournamentScore, error)
}

type ScoreRepository struct {
	dao ScoreDAO
}

func NewScoreRepository(dao ScoreDAO) *ScoreRepository {
	return &ScoreRepository{
		dao: dao,
	}
}

func scoreDomainToDao(s domain.TournamentScore) dao.TournamentScore {
	return dao.TournamentScore{
		ID:                 s.ID,
		TournamentID:       s.TournamentID,
		UserID:             s.UserID,
		GrossScore:         s.GrossScore,
		HandicapAtTime:     s.HandicapAtTime,
		NetScore:           s.NetScore,
		StablefordPoints:   s.StablefordPoints,
		Position:           s.Position,
		HandicapAdjustment: s.HandicapAdjustment,
	}
}

func scoreDaoToDomain(s dao.TournamentScore) domain.TournamentScore {
	score := domain.TournamentScore{
		ID:                 s.ID,
		TournamentID:       s.TournamentID,
		UserID:             s.UserID,
		UserName:           s.User.Name,
		GrossScore:         s.GrossScore,
		HandicapAtTime:     s.HandicapAtTime,
		NetScore:           s.NetScore,
		StablefordPoints:   s.StablefordPoints,
		Position:           s.Position,
		HandicapAdjustment: s.HandicapAdjustment,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}

	if len(s.HoleScores) > 0 {
		score.HoleScores = make([]domain.HoleScore, len(s.HoleScores))
		for i, hs := range s.HoleScores {
			score.HoleScores[i] = domain.HoleScore{
				ID:                hs.ID,
				TournamentScoreID: hs.TournamentScoreID,
				HoleID:            hs.HoleID,
				Strokes:           hs.Strokes,
				StablefordPoints:  hs.StablefordPoints,
			}
		}
	}

	return score
}

func scoresDaoToDomain(scores []dao.TournamentScore) []domain.TournamentScore {
	out := make([]domain.TournamentScore, len(scores))
	for i, s := range scores {
		out[i] = scoreDaoToDomain(s)
	}

	return out
}

func (r *ScoreRepository) Upsert(ctx context.Context, score domain.TournamentScore, holes []domain.HoleScore, holesSupplied bool) (domain.TournamentScore, error) {
	holesDAO := make([]dao.HoleScore, len(holes))
	for i, h := range holes {
		holesDAO[i] = dao.HoleScore{
			HoleID:           h.HoleID,
			Strokes:          h.Strokes,
			StablefordPoints: h.StablefordPoints,
		}
	}

	saved, err := r.dao.Upsert(ctx, scoreDomainToDao(score), holesDAO, holesSupplied)
	if err != nil {
		return domain.TournamentScore{}, fmt.Errorf("r.dao.Upsert -> %w", err)
	}

	return scoreDaoToDomain(saved), nil
}

func (r *ScoreRepository) FindByTournamentAndUser(ctx context.Context, tournamentID, userID uint) (domain.TournamentScore, error) {
	score, err := r.dao.FindByTournamentAndUser(ctx, tournamentID, userID)
	if err != nil {
		return domain.TournamentScore{}, fmt.Errorf("r.dao.FindByTournamentAndUser -> %w", err)
	}

	return scoreDaoToDomain(score), nil
}

func (r *ScoreRepository) FindByTournamentByNet(ctx context.Context, tournamentID uint) ([]domain.TournamentScore, error) {
	scores, err := r.dao.FindByTournamentByNet(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByTournamentByNet -> %w", err)
	}

	return scoresDaoToDomain(scores), nil
}

func (r *ScoreRepository) FindByTournamentByPoints(ctx context.Context, tournamentID uint) ([]domain.TournamentScore, error) {
	scores, err := r.dao.FindByTournamentByPoints(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByTournamentByPoints -> %w", err)
	}

	return scoresDaoToDomain(scores), nil
}
