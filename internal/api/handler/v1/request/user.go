package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type SetHandicapRequest struct {
	Handicap float64 `json:"handicap"`
}

func (req *SetHandicapRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Handicap, validation.Min(0.0), validation.Max(54.0)),
	)
}
