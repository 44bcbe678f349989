package app_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gymcore/gymcore/payment-service/internal/app"
	"github.com/gymcore/gymcore/pkg/bus/memory"
	"github.com/gymcore/gymcore/pkg/config"
	"github.com/gymcore/gymcore/pkg/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureIsPublished(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}
	cfg.APP.ServiceName = app.ServiceName
	cfg.DB.DRIVER = "sqlite"
	cfg.DB.SQLitePath = fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	cfg.Bus.Driver = "memory"
	cfg.Outbox.PollInterval = time.Second

	a := &app.App{}
	t.Cleanup(func() { _ = a.Close() })
	require.NoError(t, a.Initialize(context.Background(), cfg))
	b, ok := a.Bus.(*memory.Bus)
	require.True(t, ok)

	body := `{"membershipId":"m1","userId":"u1","amount":"29.99","currency":"USD","transactionId":"t1","completedAt":"2025-03-01T10:00:00Z"}`
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/payments/captures", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		a.Router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusCreated, w.Code)
	}

	published := b.PublishedWith(events.RKPaymentCompleted)
	require.Len(t, published, 1)
	assert.True(t, published[0].Persistent)

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/payments/t1", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
