package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/domain"
	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/pkg/ptr"
	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/pkg/types"
)

var brt = time.FixedZone("BRT", -3*60*60)

const testProfessionalID = int64(7)

// monFri0918 is the baseline calendar: Mon-Fri 09:00-18:00, no override.
func monFri0918() *domain.BusinessCalendar {
	return &domain.BusinessCalendar{
		BusinessID:  1,
		WorkingDays: []int{1, 2, 3, 4, 5},
		OpeningTime: "09:00",
		ClosingTime: "18:00",
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, brt)
}

func at(day time.Time, hour, min int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, brt)
}

func appt(start time.Time, durationMin int, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ProfessionalID:  testProfessionalID,
		StartAt:         start,
		DurationMinutes: durationMin,
		Status:          status,
	}
}

func starts(slots []domain.CandidateSlot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.StartAt.Format("15:04")
	}
	return out
}

// A Monday far in the past relative to nothing: now is fixed well before it,
// so the past-slot filter never interferes unless a test wants it to.
var (
	monday   = date(2025, time.October, 13)
	saturday = date(2025, time.October, 18)
	sunday   = date(2025, time.October, 19)
	earlyNow = at(date(2025, time.October, 1), 12, 0)
)

func TestListAvailableSlots_FullOpenDay(t *testing.T) {
	slots, err := ListAvailableSlots(monFri0918(), testProfessionalID, 30, monday, nil, nil, earlyNow)
	require.NoError(t, err)

	// 09:00 .. 17:30 at a 30-minute step
	require.Len(t, slots, 18)
	assert.Equal(t, "09:00", slots[0].StartAt.Format("15:04"))
	assert.Equal(t, "17:30", slots[len(slots)-1].StartAt.Format("15:04"))

	for _, s := range slots {
		assert.Equal(t, testProfessionalID, s.ProfessionalID)
		assert.Equal(t, 30, s.DurationMinutes)
	}
}

func TestListAvailableSlots_ExistingAppointmentRemovesOnlyItsSlot(t *testing.T) {
	existing := []*domain.Appointment{
		appt(at(monday, 10, 0), 30, domain.StatusConfirmed),
	}

	slots, err := ListAvailableSlots(monFri0918(), testProfessionalID, 30, monday, nil, existing, earlyNow)
	require.NoError(t, err)

	got := starts(slots)
	assert.NotContains(t, got, "10:00")
	assert.Contains(t, got, "09:00")
	assert.Contains(t, got, "09:30")
	assert.Contains(t, got, "10:30")
	assert.Contains(t, got, "11:00")
	assert.Contains(t, got, "17:30")
	assert.Len(t, slots, 17)
}

func TestListAvailableSlots_ClosedWeekday(t *testing.T) {
	slots, err := ListAvailableSlots(monFri0918(), testProfessionalID, 30, sunday, nil, nil, earlyNow)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestListAvailableSlots_ZeroWorkingDays(t *testing.T) {
	cal := monFri0918()
	cal.WorkingDays = nil

	for _, d := range []time.Time{monday, saturday, sunday} {
		slots, err := ListAvailableSlots(cal, testProfessionalID, 30, d, nil, nil, earlyNow)
		require.NoError(t, err)
		assert.Empty(t, slots)
	}
}

func TestListAvailableSlots_DayBlockWinsOverEverything(t *testing.T) {
	cal := monFri0918()
	cal.WorkingDays = []int{0, 1, 2, 3, 4, 5, 6}
	blocks := []*domain.DayBlock{
		{ProfessionalID: testProfessionalID, BlockedDate: monday, Reason: ptr.Ptr("Férias")},
	}

	slots, err := ListAvailableSlots(cal, testProfessionalID, 30, monday, blocks, nil, earlyNow)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestListAvailableSlots_BlockForOtherProfessionalOrDateIgnored(t *testing.T) {
	blocks := []*domain.DayBlock{
		{ProfessionalID: 99, BlockedDate: monday},
		{ProfessionalID: testProfessionalID, BlockedDate: monday.AddDate(0, 0, 1)},
	}

	slots, err := ListAvailableSlots(monFri0918(), testProfessionalID, 30, monday, blocks, nil, earlyNow)
	require.NoError(t, err)
	assert.Len(t, slots, 18)
}

func TestListAvailableSlots_ServiceMustFitInsideHours(t *testing.T) {
	// 90-minute service: the last start that still fits before 18:00 is 16:30
	slots, err := ListAvailableSlots(monFri0918(), testProfessionalID, 90, monday, nil, nil, earlyNow)
	require.NoError(t, err)

	require.NotEmpty(t, slots)
	last := slots[len(slots)-1]
	assert.Equal(t, "16:30", last.StartAt.Format("15:04"))
	closing := at(monday, 18, 0)
	for _, s := range slots {
		assert.False(t, s.EndAt().After(closing), "slot %s overruns closing", s.StartAt.Format("15:04"))
	}
}

func TestListAvailableSlots_DurationLongerThanWindow(t *testing.T) {
	cal := monFri0918()
	cal.OpeningTime = "09:00"
	cal.ClosingTime = "10:00"

	slots, err := ListAvailableSlots(cal, testProfessionalID, 90, monday, nil, nil, earlyNow)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestListAvailableSlots_SaturdayOverride(t *testing.T) {
	cal := monFri0918()
	cal.WorkingDays = []int{1, 2, 3, 4, 5, 6}
	cal.SaturdayOpeningTime = ptr.Ptr(types.TimeString("09:00"))
	cal.SaturdayClosingTime = ptr.Ptr(types.TimeString("13:00"))

	slots, err := ListAvailableSlots(cal, testProfessionalID, 30, saturday, nil, nil, earlyNow)
	require.NoError(t, err)

	require.NotEmpty(t, slots)
	closing := at(saturday, 13, 0)
	for _, s := range slots {
		assert.True(t, s.StartAt.Before(closing))
		assert.False(t, s.EndAt().After(closing))
	}
	assert.Equal(t, "12:30", slots[len(slots)-1].StartAt.Format("15:04"))

	// a regular weekday still uses the default bounds
	weekday, err := ListAvailableSlots(cal, testProfessionalID, 30, monday, nil, nil, earlyNow)
	require.NoError(t, err)
	assert.Equal(t, "17:30", weekday[len(weekday)-1].StartAt.Format("15:04"))
}

func TestListAvailableSlots_SaturdayOverrideNeedsBothBounds(t *testing.T) {
	cal := monFri0918()
	cal.WorkingDays = []int{6}
	cal.SaturdayOpeningTime = ptr.Ptr(types.TimeString("08:00"))
	// closing override missing: defaults apply

	slots, err := ListAvailableSlots(cal, testProfessionalID, 30, saturday, nil, nil, earlyNow)
	require.NoError(t, err)
	require.NotEmpty(t, slots)
	assert.Equal(t, "09:00", slots[0].StartAt.Format("15:04"))
	assert.Equal(t, "17:30", slots[len(slots)-1].StartAt.Format("15:04"))
}

func TestListAvailableSlots_CancelledAppointmentsNeverBlock(t *testing.T) {
	existing := []*domain.Appointment{
		appt(at(monday, 10, 0), 30, domain.StatusCancelled),
	}

	slots, err := ListAvailableSlots(monFri0918(), testProfessionalID, 30, monday, nil, existing, earlyNow)
	require.NoError(t, err)
	assert.Contains(t, starts(slots), "10:00")
	assert.Len(t, slots, 18)
}

func TestListAvailableSlots_OtherProfessionalAppointmentsIgnored(t *testing.T) {
	other := &domain.Appointment{
		ProfessionalID:  99,
		StartAt:         at(monday, 10, 0),
		DurationMinutes: 480,
		Status:          domain.StatusConfirmed,
	}

	slots, err := ListAvailableSlots(monFri0918(), testProfessionalID, 30, monday, nil, []*domain.Appointment{other}, earlyNow)
	require.NoError(t, err)
	assert.Len(t, slots, 18)
}

func TestListAvailableSlots_PastSlotsExcludedToday(t *testing.T) {
	now := at(monday, 11, 10)

	slots, err := ListAvailableSlots(monFri0918(), testProfessionalID, 30, monday, nil, nil, now)
	require.NoError(t, err)

	require.NotEmpty(t, slots)
	assert.Equal(t, "11:30", slots[0].StartAt.Format("15:04"))
	for _, s := range slots {
		assert.True(t, s.StartAt.After(now))
	}
}

func TestListAvailableSlots_StartExactlyAtNowExcluded(t *testing.T) {
	now := at(monday, 11, 0)

	slots, err := ListAvailableSlots(monFri0918(), testProfessionalID, 30, monday, nil, nil, now)
	require.NoError(t, err)
	assert.NotContains(t, starts(slots), "11:00")
	assert.Contains(t, starts(slots), "11:30")
}

func TestListAvailableSlots_BorderingAppointmentsDoNotConflict(t *testing.T) {
	// half-open rule: an appointment 09:30-10:00 leaves both 09:00 and 10:00 free
	existing := []*domain.Appointment{
		appt(at(monday, 9, 30), 30, domain.StatusConfirmed),
	}

	slots, err := ListAvailableSlots(monFri0918(), testProfessionalID, 30, monday, nil, existing, earlyNow)
	require.NoError(t, err)

	got := starts(slots)
	assert.Contains(t, got, "09:00")
	assert.NotContains(t, got, "09:30")
	assert.Contains(t, got, "10:00")
}

func TestListAvailableSlots_LongAppointmentShadowsSeveralSlots(t *testing.T) {
	// 10:00-11:30 removes 09:30 (for 60-min service), 10:00, 10:30, 11:00
	existing := []*domain.Appointment{
		appt(at(monday, 10, 0), 90, domain.StatusConfirmed),
	}

	slots, err := ListAvailableSlots(monFri0918(), testProfessionalID, 60, monday, nil, existing, earlyNow)
	require.NoError(t, err)

	got := starts(slots)
	assert.Contains(t, got, "09:00")
	assert.NotContains(t, got, "09:30")
	assert.NotContains(t, got, "10:00")
	assert.NotContains(t, got, "10:30")
	assert.NotContains(t, got, "11:00")
	assert.Contains(t, got, "11:30")
}

func TestListAvailableSlots_ZeroDurationAppointmentIsAPoint(t *testing.T) {
	// a 10:15 point conflicts only with the slot strictly containing it
	existing := []*domain.Appointment{
		appt(at(monday, 10, 15), 0, domain.StatusConfirmed),
	}

	slots, err := ListAvailableSlots(monFri0918(), testProfessionalID, 30, monday, nil, existing, earlyNow)
	require.NoError(t, err)

	got := starts(slots)
	assert.NotContains(t, got, "10:00")
	assert.Contains(t, got, "09:30")
	assert.Contains(t, got, "10:30")

	// a point exactly on a slot boundary conflicts with nothing
	boundary := []*domain.Appointment{
		appt(at(monday, 10, 0), 0, domain.StatusConfirmed),
	}
	slots, err = ListAvailableSlots(monFri0918(), testProfessionalID, 30, monday, nil, boundary, earlyNow)
	require.NoError(t, err)
	assert.Len(t, slots, 18)
}

func TestListAvailableSlots_Idempotent(t *testing.T) {
	existing := []*domain.Appointment{
		appt(at(monday, 10, 0), 30, domain.StatusConfirmed),
		appt(at(monday, 14, 0), 60, domain.StatusPending),
	}
	blocks := []*domain.DayBlock{
		{ProfessionalID: 99, BlockedDate: monday},
	}

	first, err := ListAvailableSlots(monFri0918(), testProfessionalID, 30, monday, blocks, existing, earlyNow)
	require.NoError(t, err)
	second, err := ListAvailableSlots(monFri0918(), testProfessionalID, 30, monday, blocks, existing, earlyNow)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestListAvailableSlots_SlotsAscending(t *testing.T) {
	slots, err := ListAvailableSlots(monFri0918(), testProfessionalID, 30, monday, nil, nil, earlyNow)
	require.NoError(t, err)

	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].StartAt.Before(slots[i].StartAt))
	}
}

func TestListAvailableSlots_InvalidCalendar(t *testing.T) {
	cal := monFri0918()
	cal.OpeningTime = "18:00"
	cal.ClosingTime = "09:00"

	_, err := ListAvailableSlots(cal, testProfessionalID, 30, monday, nil, nil, earlyNow)
	assert.ErrorIs(t, err, ErrInvalidCalendar)

	equal := monFri0918()
	equal.OpeningTime = "09:00"
	equal.ClosingTime = "09:00"
	_, err = ListAvailableSlots(equal, testProfessionalID, 30, monday, nil, nil, earlyNow)
	assert.ErrorIs(t, err, ErrInvalidCalendar)
}

func TestListAvailableSlots_InvalidSaturdayOverride(t *testing.T) {
	cal := monFri0918()
	cal.WorkingDays = []int{6}
	cal.SaturdayOpeningTime = ptr.Ptr(types.TimeString("14:00"))
	cal.SaturdayClosingTime = ptr.Ptr(types.TimeString("10:00"))

	_, err := ListAvailableSlots(cal, testProfessionalID, 30, saturday, nil, nil, earlyNow)
	assert.ErrorIs(t, err, ErrInvalidCalendar)
}

func TestListAvailableSlots_InvalidDuration(t *testing.T) {
	_, err := ListAvailableSlots(monFri0918(), testProfessionalID, 0, monday, nil, nil, earlyNow)
	assert.ErrorIs(t, err, ErrInvalidServiceDuration)

	_, err = ListAvailableSlots(monFri0918(), testProfessionalID, -15, monday, nil, nil, earlyNow)
	assert.ErrorIs(t, err, ErrInvalidServiceDuration)
}

func TestEffectiveHours(t *testing.T) {
	cal := monFri0918()
	cal.SaturdayOpeningTime = ptr.Ptr(types.TimeString("10:00"))
	cal.SaturdayClosingTime = ptr.Ptr(types.TimeString("14:00"))

	open, close, err := EffectiveHours(cal, monday)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("09:00"), open)
	assert.Equal(t, types.TimeString("18:00"), close)

	open, close, err = EffectiveHours(cal, saturday)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:00"), open)
	assert.Equal(t, types.TimeString("14:00"), close)
}

func TestIsSlotStillAvailable(t *testing.T) {
	taken := []*domain.Appointment{
		appt(at(monday, 10, 0), 30, domain.StatusConfirmed),
	}

	tests := []struct {
		name     string
		start    time.Time
		duration int
		want     bool
	}{
		{"free slot", at(monday, 11, 0), 30, true},
		{"exact collision", at(monday, 10, 0), 30, false},
		{"partial overlap from before", at(monday, 9, 45), 30, false},
		{"partial overlap from after", at(monday, 10, 15), 30, false},
		{"long slot swallowing appointment", at(monday, 9, 30), 120, false},
		{"ends exactly at appointment start", at(monday, 9, 30), 30, true},
		{"starts exactly at appointment end", at(monday, 10, 30), 30, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := IsSlotStillAvailable(testProfessionalID, tc.start, tc.duration, taken)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestIsSlotStillAvailable_IgnoresCancelledAndOthers(t *testing.T) {
	appointments := []*domain.Appointment{
		appt(at(monday, 10, 0), 30, domain.StatusCancelled),
		{ProfessionalID: 99, StartAt: at(monday, 10, 0), DurationMinutes: 30, Status: domain.StatusConfirmed},
	}

	assert.True(t, IsSlotStillAvailable(testProfessionalID, at(monday, 10, 0), 30, appointments))
}

func TestIsSlotStillAvailable_NonPositiveDuration(t *testing.T) {
	assert.False(t, IsSlotStillAvailable(testProfessionalID, at(monday, 10, 0), 0, nil))
}
