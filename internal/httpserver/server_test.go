package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"customer-support/config"
	"customer-support/internal/app"
	"customer-support/pkg/log"
)

func newTestServer(t *testing.T) *HTTPServer {
	t.Helper()
	l := log.NewNop()

	a, err := app.Build(context.Background(), &config.Config{
		Conversation:   config.ConversationConfig{MaxHistory: 10},
		Routing:        config.RoutingConfig{MinScore: 0.1},
		Refund:         config.RefundConfig{WindowDays: 30, ProcessingFee: 2.99, FeeThreshold: 50},
		TransactionLog: config.TransactionLogConfig{DSN: filepath.Join(t.TempDir(), "tx.db")},
	}, l)
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })

	srv, err := New(l, Config{
		Port:            8080,
		Mode:            gin.TestMode,
		Environment:     "development",
		ConversationUC:  a.UseCase,
		RateLimitPerMin: 600,
	})
	require.NoError(t, err)
	return srv
}

func post(h http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestSystemRoutes(t *testing.T) {
	h := newTestServer(t).Handler()

	tests := map[string]string{
		"/health": statusHealthy,
		"/ready":  statusReady,
		"/live":   statusAlive,
	}

	for path, want := range tests {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, w.Code)
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

			var body struct {
				Data probeResp `json:"data"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, want, body.Data.Status)
			assert.Equal(t, ServiceName, body.Data.Service)
		})
	}
}

func TestRefundConversation(t *testing.T) {
	h := newTestServer(t).Handler()

	type data struct {
		Agent         string `json:"agent"`
		Route         string `json:"route"`
		Category      string `json:"category"`
		TransactionID string `json:"transaction_id"`
	}
	var body struct {
		Data data `json:"data"`
	}

	w := post(h, "/api/v1/chat", `{"session_id":"e2e","message":"Process a refund"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "RefundAgent", body.Data.Agent)
	assert.Equal(t, "refund_request", body.Data.Category)

	w = post(h, "/api/v1/chat", `{"session_id":"e2e","message":"12345"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "RefundAgent", body.Data.Agent)
	assert.Equal(t, "pending_slot", body.Data.Route)
	assert.Equal(t, "refund_processed", body.Data.Category)
	assert.Len(t, body.Data.TransactionID, 36)
	firstTxn := body.Data.TransactionID

	body.Data = data{}
	w = post(h, "/api/v1/chat", `{"session_id":"e2e","message":"refund 12345 again"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "refund_ineligible", body.Data.Category)
	assert.Equal(t, firstTxn, body.Data.TransactionID)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/sessions/e2e", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCompatRun(t *testing.T) {
	h := newTestServer(t).Handler()

	w := post(h, "/api/run", `{"message":"hello"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Response string `json:"response"`
		Status   string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	assert.Contains(t, body.Response, "Welcome")
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"missing mode", Config{Port: 8080}},
		{"missing port", Config{Mode: gin.TestMode}},
		{"missing usecase", Config{Port: 8080, Mode: gin.TestMode}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(log.NewNop(), tt.cfg)
			assert.Error(t, err)
		})
	}

	_, err := New(nil, Config{Port: 8080, Mode: gin.TestMode})
	assert.Error(t, err)
}

func TestRun_Shutdown(t *testing.T) {
	srv := newTestServer(t)
	srv.port = 0

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
