package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/mariageovanaslins2000-design/AgendaFacil-BookingService/internal/api/handlers"
)

const correlationIDKey contextKey = "correlationID"

// WebhookLogger is the logging surface the webhook middleware needs
type WebhookLogger interface {
	Warn(format string, v ...interface{})
}

// WebhookAuth guards the n8n bot endpoints with a shared secret in
// X-Webhook-Token and tags every request with a correlation id, echoed back
// in X-Request-ID so the bot can reference it on support escalations.
func WebhookAuth(token string, log WebhookLogger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// A missing secret must fail closed: an empty configured token
			// would otherwise match requests that simply omit the header.
			got := r.Header.Get("X-Webhook-Token")
			if token == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				log.Warn("Webhook request rejected: invalid token from %s", r.RemoteAddr)
				handlers.RespondUnauthorized(w, "token de webhook inválido")
				return
			}

			correlationID := uuid.NewString()
			w.Header().Set("X-Request-ID", correlationID)

			ctx := context.WithValue(r.Context(), correlationIDKey, correlationID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetCorrelationID extracts the webhook correlation id from the context
func GetCorrelationID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(correlationIDKey).(string)
	return id, ok
}
