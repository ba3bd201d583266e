package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrTournamentNotFound  = errors.New("tournament not found")
	ErrTournamentCompleted = errors.New("tournament already completed")
)

type Tournament struct {
	ID       uint       `gorm:"primaryKey"`
	ClubID   uint       `gorm:"not null;index"`
	CourseID uint       `gorm:"not null"`
	Course   Course     `gorm:"foreignKey:CourseID"`
	Name     string     `gorm:"not null"`
	Date     time.Time  `gorm:"not null"`
	Format   string     `gorm:"not null"`
	IsMajor  bool       `gorm:"not null;default:false"`
	Status   string     `gorm:"not null;default:upcoming"`

	Scores []TournamentScore `gorm:"foreignKey:TournamentID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Participant struct {
	ID           uint   `gorm:"primaryKey"`
	TournamentID uint   `gorm:"not null;uniqueIndex:idx_participant_tournament_user"`
	UserID       uint   `gorm:"not null;uniqueIndex:idx_participant_tournament_user"`
	User         User   `gorm:"foreignKey:UserID"`
	Role         string `gorm:"not null;default:player"`
	Flight       string

	CreatedAt time.Time
}

// ScorePlacement carries one score's computed finishing data into the
// completion transaction.
type ScorePlacement struct {
	ScoreID    uint
	Position   int
	Adjustment int
}

// HandicapChange carries one player's new live handicap plus its
// ledger row into the completion transaction.
type HandicapChange struct {
	UserID      uint
	NewHandicap float64
	History     HandicapHistory
}

type TournamentDAO struct {
	db *gorm.DB
}

func NewTournamentDAO(db *gorm.DB) *TournamentDAO {
	return &TournamentDAO{
		db: db,
	}
}

func (d *TournamentDAO) Insert(ctx context.Context, tournament Tournament) (Tournament, error) {
	result := d.db.WithContext(ctx).Create(&tournament)
	if result.Error != nil {
		return Tournament{}, result.Error
	}

	return tournament, nil
}

func (d *TournamentDAO) FindByID(ctx context.Context, id uint) (Tournament, error) {
	var tournament Tournament

	result := d.db.WithContext(ctx).
		Preload("Course.Holes", func(db *gorm.DB) *gorm.DB {
			return db.Order("hole_number ASC")
		}).
		Preload("Course").
		First(&tournament, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Tournament{}, ErrTournamentNotFound
		}

		return Tournament{}, result.Error
	}

	return tournament, nil
}

func (d *TournamentDAO) FindByClub(ctx context.Context, clubID uint) ([]Tournament, error) {
	var tournaments []Tournament

	query := d.db.WithContext(ctx).Order("date DESC")
	if clubID != 0 {
		query = query.Where("club_id = ?", clubID)
	}

	result := query.Find(&tournaments)
	if result.Error != nil {
		return nil, result.Error
	}

	return tournaments, nil
}

func (d *TournamentDAO) FindParticipants(ctx context.Context, tournamentID uint) ([]Participant, error) {
	var participants []Participant

	result := d.db.WithContext(ctx).
		Preload("User").
		Where("tournament_id = ?", tournamentID).
		Order("id ASC").
		Find(&participants)
	if result.Error != nil {
		return nil, result.Error
	}

	return participants, nil
}

// FindCompletedInYear returns completed tournaments dated within the
// calendar year, scores and scorers included, oldest first.
func (d *TournamentDAO) FindCompletedInYear(ctx context.Context, clubID uint, year int) ([]Tournament, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	var tournaments []Tournament

	query := d.db.WithContext(ctx).
		Preload("Scores", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC NULLS LAST, net_score ASC")
		}).
		Preload("Scores.User").
		Where("status = ?", "completed").
		Where("date >= ? AND date < ?", start, end)
	if clubID != 0 {
		query = query.Where("club_id = ?", clubID)
	}

	result := query.Order("date ASC").Find(&tournaments)
	if result.Error != nil {
		return nil, result.Error
	}

	return tournaments, nil
}

// Complete flips the status with a conditional update so two racing
// completion calls cannot both pass. Placements, handicap writes, and
// ledger rows commit with the flip or not at all.
func (d *TournamentDAO) Complete(ctx context.Context, tournamentID uint, placements []ScorePlacement, changes []HandicapChange) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&Tournament{}).
			Where("id = ? AND status <> ?", tournamentID, "completed").
			Update("status", "completed")
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&Tournament{}).Where("id = ?", tournamentID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return ErrTournamentNotFound
			}

			return ErrTournamentCompleted
		}

		for _, p := range placements {
			err := tx.Model(&TournamentScore{}).
				Where("id = ?", p.ScoreID).
				Updates(map[string]interface{}{
					"position":            p.Position,
					"handicap_adjustment": p.Adjustment,
				}).Error
			if err != nil {
				return err
			}
		}

		for _, c := range changes {
			result := tx.Model(&User{}).
				Where("id = ?", c.UserID).
				Update("current_handicap", c.NewHandicap)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrUserNotFound
			}

			history := c.History
			if err := tx.Create(&history).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
