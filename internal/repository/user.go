package repository

import (
	"context"
	"fmt"

	"github.com/fairwaylabs/society-api/internal/domain"
	"github.com/fairwaylabs/society-api/internal/repository/dao"
)

var (
	ErrUserNotFound    = dao.ErrUserNotFound
	ErrUserEmailExists = dao.ErrUserEmailExists
)

type UserDAO interface {
	Insert(ctx context.Context, user dao.User) (dao.User, error)
	FindByID(ctx context.Context, id uint) (dao.User, error)
	FindByEmail(ctx context.Context, email string) (dao.User, error)
	SetHandicap(ctx context.Context, userID uint, handicap float64, history dao.HandicapHistory) error
	FindHandicapHistory(ctx context.Context, userID uint) ([]dao.HandicapHistory, error)
}

type UserRepository struct {
	dao UserDAO
}

func NewUserRepository(dao UserDAO) *UserRepository {
	return &UserRepository{
		dao: dao,
	}
}

func (r *UserRepository) domainToDao(u domain.User) dao.User {
	return dao.User{
		ID:              u.ID,
		Email:           u.Email,
		Password:        u.Password,
		Role:            u.Role,
		Name:            u.Name,
		CurrentHandicap: u.CurrentHandicap,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

func (r *UserRepository) daoToDomain(u dao.User) domain.User {
	return domain.User{
		ID:              u.ID,
		Email:           u.Email,
		Password:        u.Password,
		Role:            u.Role,
		Name:            u.Name,
		CurrentHandicap: u.CurrentHandicap,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

func historyDaoToDomain(h dao.HandicapHistory) domain.HandicapHistory {
	return domain.HandicapHistory{
		ID:            h.ID,
		UserID:        h.UserID,
		HandicapIndex: h.HandicapIndex,
		Reason:        domain.HandicapReason(h.Reason),
		EffectiveDate: h.EffectiveDate,
		TournamentID:  h.TournamentID,
	}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(user))
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (domain.User, error) {
	user, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(user), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	user, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	return r.daoToDomain(user), nil
}

func (r *UserRepository) SetHandicap(ctx context.Context, userID uint, handicap float64, history domain.HandicapHistory) error {
	historyDAO := dao.HandicapHistory{
		UserID:        history.UserID,
		HandicapIndex: history.HandicapIndex,
		Reason:        string(history.Reason),
		EffectiveDate: history.EffectiveDate,
		TournamentID:  history.TournamentID,
	}

	if err := r.dao.SetHandicap(ctx, userID, handicap, historyDAO); err != nil {
		return fmt.Errorf("r.dao.SetHandicap -> %w", err)
	}

	return nil
}

func (r *UserRepository) FindHandicapHistory(ctx context.Context, userID uint) ([]domain.HandicapHistory, error) {
	entries, err := r.dao.FindHandicapHistory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindHandicapHistory -> %w", err)
	}

	history := make([]domain.HandicapHistory, len(entries))
	for i, entry := range entries {
		history[i] = historyDaoToDomain(entry)
	}

	return history, nil
}
