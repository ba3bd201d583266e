package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fairwaylabs/society-api/internal/domain"
	"github.com/fairwaylabs/society-api/internal/repository"
)

var ErrUserNotFound = repository.ErrUserNotFound

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
	SetHandicap(ctx context.Context, userID uint, handicap float64, history domain.HandicapHistory) error
	FindHandicapHistory(ctx context.Context, userID uint) ([]domain.HandicapHistory, error)
}

type UserService struct {
	repo UserRepository
	now  func() time.Time
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
		now:  time.Now,
	}
}

func (s *UserService) GetUser(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, ErrUserNotFound
		}

		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return user, nil
}

func (s *UserService) GetHandicapHistory(ctx context.Context, userID uint) ([]domain.HandicapHistory, error) {
	if _, err := s.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	history, err := s.repo.FindHandicapHistory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindHandicapHistory -> %w", err)
	}

	return history, nil
}

// SetHandicap is the manual adjustment path. The first handicap a
// player ever receives is recorded as initial_handicap, later writes
// as manual_adjustment. The live value and its ledger row commit
// together and the value never goes below zero.
func (s *UserService) SetHandicap(ctx context.Context, userID uint, handicap float64) (domain.User, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}

	if handicap < 0 {
		handicap = 0
	}

	reason := domain.ReasonManualAdjustment
	if user.CurrentHandicap == nil {
		reason = domain.ReasonInitialHandicap
	}

	history := domain.HandicapHistory{
		UserID:        userID,
		HandicapIndex: handicap,
		Reason:        reason,
		EffectiveDate: s.now(),
	}

	if err := s.repo.SetHandicap(ctx, userID, handicap, history); err != nil {
		return domain.User{}, fmt.Errorf("s.repo.SetHandicap -> %w", err)
	}

	return s.GetUser(ctx, userID)
}
