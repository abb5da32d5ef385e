package booking

import (
	"time"

	"stilrandevu/config"
	"stilrandevu/models"
)

// GenerateDays produces the next count bookable calendar days strictly after
// today, today itself excluded. Pure function of the given date: calling it
// again with the same input yields the same sequence.
func GenerateDays(today time.Time, count int) []models.DaySlot {
	base := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	days := make([]models.DaySlot, 0, count)
	for i := 1; i <= count; i++ {
		d := base.AddDate(0, 0, i)
		days = append(days, models.DaySlot{
			Date:       d,
			DateStr:    d.Format("2006-01-02"),
			Weekday:    d.Format("Mon"),
			DayOfMonth: d.Day(),
			Label:      d.Format("Mon, 2 Jan 2006"),
		})
	}
	return days
}

// BookingHours returns the ordered time-of-day options offered for every
// bookable day. The set is configuration, not computed.
func BookingHours() []string {
	return config.AppConfig.BookingHours
}
