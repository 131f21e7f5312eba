package get_business_appointments

import (
	"net/url"
	"strconv"
	"time"

	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/domain"
	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/service/appointments/models"
)

// ParseQuery builds the service request from the query parameters.
// Supported: professionalId, startDate, endDate (YYYY-MM-DD, endDate
// exclusive), status, includeCancelled.
func ParseQuery(businessID int64, query url.Values) (*models.GetBusinessAppointmentsRequest, error) {
	req := &models.GetBusinessAppointmentsRequest{BusinessID: businessID}

	if s := query.Get("professionalId"); s != "" {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, err
		}
		req.ProfessionalID = &id
	}

	if s := query.Get("startDate"); s != "" {
		t, err := time.Parse(domain.DateFormat, s)
		if err != nil {
			return nil, err
		}
		req.StartDate = &t
	}

	if s := query.Get("endDate"); s != "" {
		t, err := time.Parse(domain.DateFormat, s)
		if err != nil {
			return nil, err
		}
		req.EndDate = &t
	}

	if s := query.Get("status"); s != "" {
		req.Status = &s
	}

	if s := query.Get("includeCancelled"); s != "" {
		include, err := strconv.ParseBool(s)
		if err != nil {
			return nil, err
		}
		req.IncludeCancelled = include
	}

	return req, nil
}
