package models

import "time"

type Notification struct {
	ID          string     `bson:"_id,omitempty"`
	RecipientID string     `bson:"recipientId"`
	Content     string     `bson:"content"`
	ReadAt      *time.Time `bson:"readAt,omitempty"`
	CreatedAt   time.Time  `bson:"createdAt"`
}

// CancellationMailJob is the message handed to the mail queue when a booking
// is canceled. The worker owns it from there; delivery failures never roll
// back the cancellation.
type CancellationMailJob struct {
	ID            string      `json:"id"`
	Appointment   Appointment `json:"appointment"`
	ProviderName  string      `json:"provider_name"`
	ProviderEmail string      `json:"provider_email"`
	RequesterName string      `json:"requester_name"`
	FailedCount   int         `json:"failed_count"`
}
