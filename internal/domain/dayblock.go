package domain

import "time"

// DayBlock marks a professional fully unavailable on a specific calendar
// date (vacation, sick leave). At most one block exists per
// (professional, date) pair — enforced by the storage layer.
type DayBlock struct {
	ID             int64
	ProfessionalID int64
	BlockedDate    time.Time // date only, time part zero
	Reason         *string

	CreatedAt time.Time
}

// Matches reports whether the block applies to the given professional/date.
func (b *DayBlock) Matches(professionalID int64, date time.Time) bool {
	if b.ProfessionalID != professionalID {
		return false
	}
	y1, m1, d1 := b.BlockedDate.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
