package booking

import "time"

const (
	// DayCount is the length of the viewing window shown to the client.
	DayCount = 7

	// SlotStep is the viewing-slot granularity.
	SlotStep = time.Hour

	openHour    = 8
	openMinute  = 30
	closeHour   = 19
	closeMinute = 0
)

type Slot struct {
	Start time.Time
}

func (s Slot) End() time.Time {
	return s.Start.Add(SlotStep)
}

type DaySchedule struct {
	Date  time.Time // midnight, same location as "now"
	Slots []Slot
}

// Schedule produces the bookable slots for the DayCount-day window starting
// at now's day. Day 0 opens at the first half-hour boundary at or before
// now+1h (10:15 -> 11:00, 10:45 -> 11:30), never earlier than 08:30; later
// days open at 08:30. Slots step hourly while the start is before 19:00, so
// a day 0 opening at or past 19:00 yields an empty slot list, not an error.
// Nothing here is persisted; the schedule is recomputed on every call.
func Schedule(now time.Time) []DaySchedule {
	days := make([]DaySchedule, 0, DayCount)
	for i := 0; i < DayCount; i++ {
		date := midnight(now).AddDate(0, 0, i)

		start := openAt(date)
		if i == 0 {
			if first := firstStartToday(now); first.After(start) {
				start = first
			}
		}

		closing := time.Date(date.Year(), date.Month(), date.Day(), closeHour, closeMinute, 0, 0, date.Location())
		var slots []Slot
		for t := start; t.Before(closing); t = t.Add(SlotStep) {
			slots = append(slots, Slot{Start: t})
		}

		days = append(days, DaySchedule{Date: date, Slots: slots})
	}
	return days
}

// Bookable reports whether start is a slot Schedule(now) would emit.
func Bookable(now, start time.Time) bool {
	if !start.After(now) {
		return false
	}
	for _, day := range Schedule(now) {
		for _, slot := range day.Slots {
			if slot.Start.Equal(start) {
				return true
			}
		}
	}
	return false
}

// firstStartToday floors now+1h to the previous half-hour boundary.
func firstStartToday(now time.Time) time.Time {
	t := now.Add(time.Hour)
	minute := 0
	if t.Minute() >= 30 {
		minute = 30
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), minute, 0, 0, t.Location())
}

func openAt(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), openHour, openMinute, 0, 0, date.Location())
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
