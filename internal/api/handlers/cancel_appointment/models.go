package cancel_appointment

// CancelAppointmentRequest HTTP request model
type CancelAppointmentRequest struct {
	BusinessID         *int64 `json:"businessId,omitempty"` // set when the business cancels
	CancellationReason string `json:"cancellationReason"`
}
