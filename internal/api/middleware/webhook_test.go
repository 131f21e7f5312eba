package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	warns int
}

func (l *recordingLogger) Warn(format string, v ...interface{}) { l.warns++ }

func callWebhookAuth(t *testing.T, token, header string) (*httptest.ResponseRecorder, bool, string) {
	t.Helper()

	reached := false
	var correlationID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		correlationID, _ = GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/webhooks/n8n/find-slots", nil)
	if header != "" {
		req.Header.Set("X-Webhook-Token", header)
	}
	rec := httptest.NewRecorder()

	WebhookAuth(token, &recordingLogger{})(next).ServeHTTP(rec, req)
	return rec, reached, correlationID
}

func TestWebhookAuth_ValidToken(t *testing.T) {
	rec, reached, correlationID := callWebhookAuth(t, "secret", "secret")

	require.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, correlationID)
	assert.Equal(t, correlationID, rec.Header().Get("X-Request-ID"))
}

func TestWebhookAuth_WrongToken(t *testing.T) {
	rec, reached, _ := callWebhookAuth(t, "secret", "other")

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWebhookAuth_MissingHeader(t *testing.T) {
	rec, reached, _ := callWebhookAuth(t, "secret", "")

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWebhookAuth_EmptyConfiguredTokenFailsClosed(t *testing.T) {
	// An unset secret must never turn into "no auth": a request with no
	// header would otherwise compare empty against empty and pass.
	rec, reached, _ := callWebhookAuth(t, "", "")

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
