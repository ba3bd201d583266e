package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
)

var errMissingScoreData = errors.New("either gross_score or hole_scores must be provided")

type HoleScoreEntry struct {
	HoleID  uint `json:"hole_id"`
	Strokes int  `json:"strokes"`
}

type SubmitScoreRequest struct {
	UserID     *uint            `json:"user_id,omitempty"`
	GrossScore *int             `json:"gross_score,omitempty"`
	HoleScores []HoleScoreEntry `json:"hole_scores,omitempty"`
}

func (req *SubmitScoreRequest) Validate() error {
	if req.GrossScore == nil && len(req.HoleScores) == 0 {
		return errMissingScoreData
	}

	// A bare gross total is the legacy path and is accepted as given;
	// only positivity is checked here.
	return validation.ValidateStruct(
		req,
		validation.Field(&req.GrossScore, validation.Min(1)),
		validation.Field(&req.HoleScores, validation.Each(validation.By(validateHoleScoreEntry))),
	)
}

func validateHoleScoreEntry(value interface{}) error {
	entry, ok := value.(HoleScoreEntry)
	if !ok {
		return errors.New("invalid hole score entry")
	}

	return validation.ValidateStruct(&entry,
		validation.Field(&entry.HoleID, validation.Required, validation.Min(uint(1))),
		validation.Field(&entry.Strokes, validation.Required, validation.Min(1), validation.Max(15)),
	)
}
