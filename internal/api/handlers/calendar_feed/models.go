package calendar_feed

import (
	"net/url"
	"strconv"
	"time"

	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/domain"
)

// Feed sources
const (
	SourceAppointment = "appointment"
	SourceDayBlock    = "day_block"
)

const defaultFeedDays = 7

// FeedQuery holds the parsed query parameters
type FeedQuery struct {
	BusinessID     int64
	ProfessionalID *int64
	StartDate      time.Time
	EndDate        time.Time
}

// ParseQuery parses the feed query parameters. The period defaults to the
// next 7 days starting today.
func ParseQuery(businessID int64, query url.Values, now time.Time) (*FeedQuery, error) {
	q := &FeedQuery{
		BusinessID: businessID,
		StartDate:  time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
	}
	q.EndDate = q.StartDate.AddDate(0, 0, defaultFeedDays)

	if raw := query.Get("professionalId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		q.ProfessionalID = &id
	}

	if raw := query.Get("startDate"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		q.StartDate = date
		q.EndDate = date.AddDate(0, 0, defaultFeedDays)
	}

	if raw := query.Get("endDate"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		// end date is inclusive in the query, exclusive in the feed
		q.EndDate = date.AddDate(0, 0, 1)
	}

	return q, nil
}

// BusyInterval is one occupied interval in the free/busy feed
type BusyInterval struct {
	ProfessionalID int64     `json:"professionalId"`
	StartAt        time.Time `json:"startAt"`
	EndAt          time.Time `json:"endAt"`
	Source         string    `json:"source"` // "appointment" or "day_block"
}

// FeedResponse is the free/busy projection consumed by the external
// calendar integration
type FeedResponse struct {
	BusinessID int64          `json:"businessId"`
	StartDate  string         `json:"startDate"`
	EndDate    string         `json:"endDate"`
	Busy       []BusyInterval `json:"busy"`
}
