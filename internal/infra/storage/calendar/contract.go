package calendar

import (
	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/pkg/dbmetrics"
)

// Reuse the dbmetrics executor interfaces for database access
type DBExecutor = dbmetrics.DBExecutor
