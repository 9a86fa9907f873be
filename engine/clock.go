package engine

// Time-of-day periods used by template filters and dialogue conditions.
const (
	PeriodMorning = "morning"
	PeriodDay     = "day"
	PeriodEvening = "evening"
	PeriodNight   = "night"
)

// PeriodOfHour maps a game hour (0..24) to its time-of-day period.
// Hour 24 wraps to night, same as hour 0.
func PeriodOfHour(hour int) string {
	h := hour % 24
	switch {
	case h >= 5 && h < 11:
		return PeriodMorning
	case h >= 11 && h < 17:
		return PeriodDay
	case h >= 17 && h < 22:
		return PeriodEvening
	default:
		return PeriodNight
	}
}
