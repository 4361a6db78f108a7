package responses

import "time"

type Appointment struct {
	ID         string               `json:"id"`
	Date       time.Time            `json:"date"`
	Past       bool                 `json:"past"`
	Cancelable bool                 `json:"cancelable"`
	CanceledAt *time.Time           `json:"canceled_at,omitempty"`
	Provider   *AppointmentProvider `json:"provider,omitempty"`
}

type AppointmentProvider struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type AvailabilitySlot struct {
	Time      string `json:"time"`
	Value     string `json:"value"`
	Available bool   `json:"available"`
}
