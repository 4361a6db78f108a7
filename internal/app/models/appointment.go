package models

import (
	"barbero-service/internal/pkg/utils"
	"time"
)

// CancellationCutoffHours is the window before the slot during which a
// booking can no longer be canceled.
const CancellationCutoffHours = 2

type Appointment struct {
	ID          string    `json:"id,omitempty" bson:"_id,omitempty"`
	RequesterID string    `json:"requester_id" bson:"requesterId"`
	ProviderID  string    `json:"provider_id" bson:"providerId"`
	Date        time.Time `json:"date" bson:"date"`
	// CanceledAt is stored as an explicit null while the appointment is
	// active; the partial unique index on (providerId, date) filters on it.
	CanceledAt *time.Time `json:"canceled_at" bson:"canceledAt"`
	TimeModel  `bson:",inline"`
}

func (a *Appointment) IsCanceled() bool {
	return a.CanceledAt != nil
}

func (a *Appointment) IsPast(now time.Time) bool {
	return a.Date.Before(now)
}

// IsCancelable reports whether now is still strictly before the cutoff.
func (a *Appointment) IsCancelable(now time.Time) bool {
	return now.Before(utils.SubtractHours(a.Date, CancellationCutoffHours))
}
