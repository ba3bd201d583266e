package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrScoreNotFound = errors.New("score not found")

type TournamentScore struct {
	ID           uint `gorm:"primaryKey"`
	TournamentID uint `gorm:"not null;uniqueIndex:idx_score_tournament_user"`
	UserID       uint `gorm:"not null;uniqueIndex:idx_score_tournament_user"`
	User         User `gorm:"foreignKey:UserID"`

	GrossScore     int     `gorm:"not null"`
	HandicapAtTime float64 `gorm:"not null"`
	NetScore       int     `gorm:"not null"`

	StablefordPoints   *int
	Position           *int
	HandicapAdjustment int `gorm:"not null;default:0"`

	HoleScores []HoleScore `gorm:"foreignKey:TournamentScoreID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type HoleScore struct {
	ID                uint `gorm:"primaryKey"`
	TournamentScoreID uint `gorm:"not null;index"`
	HoleID            uint `gorm:"not null"`
	Strokes           int  `gorm:"not null"`
	StablefordPoints  *int
}

type ScoreDAO struct {
	db *gorm.DB
}

func NewScoreDAO(db *gorm.DB) *ScoreDAO {
	return &ScoreDAO{
		db: db,
	}
}

// Upsert persists a submission as one atomic unit. An existing
// (tournament, user) score keeps its row: the header is updated and,
// when hole detail was supplied, the old hole rows are deleted and
// fully replaced inside the same transaction. A first submission
// ensures a participant row exists before the score is inserted, so a
// reader never observes a score without its participant or with a
// half-written hole set.
func (d *ScoreDAO) Upsert(ctx context.Context, score TournamentScore, holes []HoleScore, holesSupplied bool) (TournamentScore, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing TournamentScore
		result := tx.Where("tournament_id = ? AND user_id = ?", score.TournamentID, score.UserID).
			First(&existing)

		switch {
		case result.Error == nil:
			err := tx.Model(&TournamentScore{}).
				Where("id = ?", existing.ID).
				Updates(map[string]interface{}{
					"gross_score":       score.GrossScore,
					"handicap_at_time":  score.HandicapAtTime,
					"net_score":         score.NetScore,
					"stableford_points": score.StablefordPoints,
				}).Error
			if err != nil {
				return err
			}

			score.ID = existing.ID

			if holesSupplied {
				if err := tx.Where("tournament_score_id = ?", existing.ID).Delete(&HoleScore{}).Error; err != nil {
					return err
				}
			}

		case errors.Is(result.Error, gorm.ErrRecordNotFound):
			participant := Participant{
				TournamentID: score.TournamentID,
				UserID:       score.UserID,
				Role:         "player",
			}
			err := tx.Where("tournament_id = ? AND user_id = ?", score.TournamentID, score.UserID).
				FirstOrCreate(&participant).Error
			if err != nil {
				return err
			}

			if err := tx.Create(&score).Error; err != nil {
				return err
			}

		default:
			return result.Error
		}

		if holesSupplied {
			for i := range holes {
				holes[i].ID = 0
				holes[i].TournamentScoreID = score.ID
			}
			if len(holes) > 0 {
				if err := tx.Create(&holes).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})
	if err != nil {
		return TournamentScore{}, err
	}

	return d.findByID(ctx, score.ID)
}

func (d *ScoreDAO) findByID(ctx context.Context, id uint) (TournamentScore, error) {
	var score TournamentScore

	result := d.db.WithContext(ctx).
		Preload("HoleScores", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("User").
		First(&score, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return TournamentScore{}, ErrScoreNotFound
		}

		return TournamentScore{}, result.Error
	}

	return score, nil
}

func (d *ScoreDAO) FindByTournamentAndUser(ctx context.Context, tournamentID, userID uint) (TournamentScore, error) {
	var score TournamentScore

	result := d.db.WithContext(ctx).
		Preload("HoleScores", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("User").
		Where("tournament_id = ? AND user_id = ?", tournamentID, userID).
		First(&score)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return TournamentScore{}, ErrScoreNotFound
		}

		return TournamentScore{}, result.Error
	}

	return score, nil
}

// FindByTournamentByNet returns a tournament's scores lowest net
// first, the order used for finishing positions.
func (d *ScoreDAO) FindByTournamentByNet(ctx context.Context, tournamentID uint) ([]TournamentScore, error) {
	var scores []TournamentScore

	result := d.db.WithContext(ctx).
		Preload("User").
		Where("tournament_id = ?", tournamentID).
		Order("net_score ASC, id ASC").
		Find(&scores)
	if result.Error != nil {
		return nil, result.Error
	}

	return scores, nil
}

// FindByTournamentByPoints returns a tournament's scores highest
// Stableford points first, the leaderboard order for Stableford
// events.
func (d *ScoreDAO) FindByTournamentByPoints(ctx context.Context, tournamentID uint) ([]TournamentScore, error) {
	var scores []TournamentScore

	result := d.db.WithContext(ctx).
		Preload("User").
		Where("tournament_id = ?", tournamentID).
		Order("stableford_points DESC NULLS LAST, id ASC").
		Find(&scores)
	if result.Error != nil {
		return nil, result.Error
	}

	return scores, nil
}
