package domain

import "time"

// CandidateSlot is one bookable start produced by the availability engine.
// It is a computed value, never persisted.
type CandidateSlot struct {
	ProfessionalID  int64
	StartAt         time.Time
	DurationMinutes int
}

// EndAt returns the exclusive end instant of the slot.
func (s *CandidateSlot) EndAt() time.Time {
	return s.StartAt.Add(time.Duration(s.DurationMinutes) * time.Minute)
}
