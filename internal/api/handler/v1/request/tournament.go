package request

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

const dateLayout = "02/01/2006"

type CreateTournamentRequest struct {
	Name     string `json:"name"`
	Date     string `json:"date" format:"DD/MM/YYYY"`
	Format   string `json:"format"`
	IsMajor  bool   `json:"is_major"`
	CourseID uint   `json:"course_id"`
	ClubID   uint   `json:"club_id"`
}

func (req *CreateTournamentRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Date, validation.Required),
		validation.Field(&req.Format, validation.Required, validation.In("Stroke Play", "Stableford")),
		validation.Field(&req.CourseID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.ClubID, validation.Required, validation.Min(uint(1))),
	)
	if err != nil {
		return err
	}

	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return fmt.Errorf("date must be in DD/MM/YYYY format")
	}

	return nil
}

// ParsedDate assumes Validate has already succeeded.
func (req *CreateTournamentRequest) ParsedDate() time.Time {
	t, _ := time.Parse(dateLayout, req.Date)
	return t
}
