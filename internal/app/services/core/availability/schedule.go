package availability

import (
	"barbero-service/internal/app/models"
	"barbero-service/internal/pkg/dto/responses"
	"time"
)

// Schedule is the ordered list of hour labels a provider can be booked at.
type Schedule []string

// DefaultSchedule covers the working day, one slot per hour.
var DefaultSchedule = Schedule{
	"08:00",
	"09:00",
	"10:00",
	"11:00",
	"12:00",
	"13:00",
	"14:00",
	"15:00",
	"16:00",
	"17:00",
	"18:00",
	"19:00",
	"20:00",
	"21:00",
	"22:00",
}

const slotValueLayout = "2006-01-02T15:04:05"

// SlotsFor maps every label of the schedule onto the given day and marks it
// available when it is still strictly in the future and no active appointment
// occupies the same hour. The input order is preserved.
func (s Schedule) SlotsFor(date time.Time, appointments []models.Appointment, now time.Time) []responses.AvailabilitySlot {
	booked := make(map[string]bool, len(appointments))
	for _, appointment := range appointments {
		booked[appointment.Date.Format("15:04")] = true
	}

	slots := make([]responses.AvailabilitySlot, 0, len(s))
	for _, label := range s {
		hhmm, err := time.Parse("15:04", label)
		if err != nil {
			continue
		}
		value := time.Date(date.Year(), date.Month(), date.Day(), hhmm.Hour(), hhmm.Minute(), 0, 0, date.Location())
		slots = append(slots, responses.AvailabilitySlot{
			Time:      label,
			Value:     value.Format(slotValueLayout),
			Available: value.After(now) && !booked[label],
		})
	}
	return slots
}
