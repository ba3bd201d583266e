package domain

import "time"

type HandicapReason string

const (
	ReasonTournamentWin    HandicapReason = "tournament_win"
	ReasonTournamentLast   HandicapReason = "tournament_last"
	ReasonManualAdjustment HandicapReason = "manual_adjustment"
	ReasonInitialHandicap  HandicapReason = "initial_handicap"
)

// HandicapHistory is an append-only ledger. HandicapIndex holds the
// new value after the change took effect.
type HandicapHistory struct {
	ID            uint           `json:"id"`
	UserID        uint           `json:"user_id"`
	HandicapIndex float64        `json:"handicap_index"`
	Reason        HandicapReason `json:"reason"`
	EffectiveDate time.Time      `json:"effective_date"`
	TournamentID  *uint          `json:"tournament_id,omitempty"`
}
