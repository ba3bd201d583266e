package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Course{},
		&Hole{},
		&Tournament{},
		&Participant{},
		&TournamentScore{},
		&HoleScore{},
		&HandicapHistory{},
	)
}
