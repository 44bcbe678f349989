package app_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gymcore/gymcore/auth-service/internal/app"
	"github.com/gymcore/gymcore/pkg/bus"
	"github.com/gymcore/gymcore/pkg/bus/memory"
	"github.com/gymcore/gymcore/pkg/config"
	"github.com/gymcore/gymcore/pkg/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// projection mimics a downstream consumer: one row per user id, last write wins.
type projection struct {
	mu    sync.Mutex
	users map[string]events.UserCreated
}

func (p *projection) handle(ctx context.Context, msg bus.Message) error {
	evt, err := events.Decode[events.UserCreated](msg.Body)
	if err != nil {
		return bus.Permanent(err)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.users[evt.ID] = evt
	return nil
}

func (p *projection) len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.users)
}

func newApp(t *testing.T) (*app.App, *memory.Bus) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}
	cfg.APP.ServiceName = app.ServiceName
	cfg.DB.DRIVER = "sqlite"
	cfg.DB.SQLitePath = fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	cfg.Bus.Driver = "memory"

	a := &app.App{}
	t.Cleanup(func() { _ = a.Close() })
	require.NoError(t, a.Initialize(context.Background(), cfg))
	b, ok := a.Bus.(*memory.Bus)
	require.True(t, ok)
	return a, b
}

func register(t *testing.T, a *app.App, email string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":"s3cret-pass","firstName":"Ana","lastName":"Diaz"}`, email)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestResyncCatchesUpMissedUsers(t *testing.T) {
	ctx := context.Background()
	a, b := newApp(t)
	p := &projection{users: map[string]events.UserCreated{}}
	require.NoError(t, b.Subscribe(ctx, "user.*", p.handle))

	register(t, a, "first@gym.co")
	b.FailPublish(errors.New("broker down"))
	register(t, a, "second@gym.co")
	register(t, a, "third@gym.co")
	b.FailPublish(nil)
	assert.Equal(t, 1, p.len())

	summary, err := a.Resync.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 3, summary.Published)
	assert.Equal(t, 3, p.len())

	summary, err = a.Resync.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Published)
	assert.Equal(t, 3, p.len())
	assert.Empty(t, b.DeadLetters())
}
