// Package scheduling holds the conflict rules of the weekly lesson schedule.
//
// A lesson is admissible when no existing lesson shares its professor or its
// classroom on the same day and time slot. Validate answers that question for a
// candidate; Schedule applies it as a gate in front of every mutation so the two
// double-booking invariants hold after each successful Add and Reassign.
//
// Lessons are addressable both by the id the schedule generates for them and by
// their ordinal position. Positions are compacted on Cancel, so a position read
// before a cancellation may point at a different lesson afterwards; ids never move.
//
// Nothing in this package locks. Callers sharing a Schedule between goroutines
// must hold one lock across each call (see repository.ScheduleRepository).
package scheduling
