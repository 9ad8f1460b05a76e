// Package schedule derives a recurring shift calendar from a user's assigned
// shift type. Nothing here is persisted; the calendar is recomputed on every
// read.
package schedule

import "time"

const (
	ShiftMorning   = "MORNING"
	ShiftAfternoon = "AFTERNOON"
	ShiftNight     = "NIGHT"
)

type Shift struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Notes string    `json:"notes,omitempty"`
}

// Generate emits one shift per weekday in [from, to] inclusive, with fixed
// start/end hours per shift type. NIGHT runs 22:00 into 06:00 the next day.
// Saturdays and Sundays are skipped.
func Generate(shiftType string, from, to time.Time) []Shift {
	shifts := []Shift{}

	cursor := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())

	at := func(day time.Time, hour int) time.Time {
		return time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location())
	}

	for !cursor.After(to) {
		day := cursor.Weekday()
		if day >= time.Monday && day <= time.Friday {
			switch shiftType {
			case ShiftMorning:
				shifts = append(shifts, Shift{
					Start: at(cursor, 6),
					End:   at(cursor, 14),
					Notes: "Mon–Fri 6:00 AM – 2:00 PM",
				})
			case ShiftAfternoon:
				shifts = append(shifts, Shift{
					Start: at(cursor, 14),
					End:   at(cursor, 22),
					Notes: "Mon–Fri 2:00 PM – 10:00 PM",
				})
			case ShiftNight:
				shifts = append(shifts, Shift{
					Start: at(cursor, 22),
					End:   at(cursor.AddDate(0, 0, 1), 6),
					Notes: "Mon–Fri 10:00 PM – 6:00 AM",
				})
			}
		}

		cursor = cursor.AddDate(0, 0, 1)
	}

	return shifts
}
