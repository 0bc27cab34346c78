package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shenikar/resqnet/internal/config"
	"github.com/shenikar/resqnet/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(t *testing.T, url string) *WebhookWorker {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		WebhookURL:        url,
		WebhookSecret:     "s3cret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	}
	return NewWebhookWorker(nil, logger, cfg)
}

func testPayload(t *testing.T) (WebhookEvent, string) {
	t.Helper()
	event := NewIncidentEvent(EventIncidentReported, &models.Incident{ID: "INC1_0", Type: models.TypeFlood}, time.Now())
	raw, err := json.Marshal(event)
	require.NoError(t, err)
	return event, string(raw)
}

func TestProcessWebhookEvent_SignsPayload(t *testing.T) {
	var gotBody, gotSignature string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotSignature = r.Header.Get("X-Webhook-Signature")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	worker := newTestWorker(t, srv.URL)
	event, payload := testPayload(t)

	ok := worker.processWebhookEvent(context.Background(), event, payload)

	require.True(t, ok)
	assert.Equal(t, payload, gotBody)
	assert.Equal(t, generateHMACSHA256(payload, "s3cret"), gotSignature)
}

func TestProcessWebhookEvent_RetriesThenSucceeds(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	worker := newTestWorker(t, srv.URL)
	event, payload := testPayload(t)

	assert.True(t, worker.processWebhookEvent(context.Background(), event, payload))
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestProcessWebhookEvent_GivesUp(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	worker := newTestWorker(t, srv.URL)
	event, payload := testPayload(t)

	assert.False(t, worker.processWebhookEvent(context.Background(), event, payload))
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestProcessWebhookEvent_NoURL(t *testing.T) {
	worker := newTestWorker(t, "")
	event, payload := testPayload(t)

	assert.False(t, worker.processWebhookEvent(context.Background(), event, payload))
}

func TestSleepCtx_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, sleepCtx(ctx, time.Hour))
	assert.True(t, sleepCtx(context.Background(), time.Millisecond))
}
