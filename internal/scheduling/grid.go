package scheduling

import "strings"

// DefaultWeeklyCapacity is the number of bookable slots per classroom in a
// five-day week of five slots per day.
const DefaultWeeklyCapacity = 25

// Grid is the fixed weekly set of days and time slots lessons are placed on.
type Grid struct {
	days  []string
	slots []string
}

// NewGrid builds a grid from day names and time slot labels.
func NewGrid(days, slots []string) Grid {
	return Grid{
		days:  append([]string(nil), days...),
		slots: append([]string(nil), slots...),
	}
}

// Days returns the configured day names in order.
func (g Grid) Days() []string {
	return append([]string(nil), g.days...)
}

// TimeSlots returns the configured time slot labels in order.
func (g Grid) TimeSlots() []string {
	return append([]string(nil), g.slots...)
}

// Capacity is the number of bookable (day, slot) pairs per classroom.
func (g Grid) Capacity() int {
	return len(g.days) * len(g.slots)
}

// NormalizeDay maps user input onto a configured day name. Matching ignores case
// and accepts an unambiguous prefix of at least three letters ("mon", "Tue").
func (g Grid) NormalizeDay(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	for _, day := range g.days {
		if strings.EqualFold(day, raw) {
			return day, true
		}
	}
	if len(raw) < 3 {
		return "", false
	}

	match := ""
	for _, day := range g.days {
		if len(day) >= len(raw) && strings.EqualFold(day[:len(raw)], raw) {
			if match != "" {
				return "", false
			}
			match = day
		}
	}
	return match, match != ""
}

// HasTimeSlot reports whether slot is one of the configured labels.
func (g Grid) HasTimeSlot(slot string) bool {
	slot = strings.TrimSpace(slot)
	for _, s := range g.slots {
		if s == slot {
			return true
		}
	}
	return false
}
