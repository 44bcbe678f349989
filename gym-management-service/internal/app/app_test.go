package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gymcore/gymcore/gym-management-service/internal/app"
	"github.com/gymcore/gymcore/gym-management-service/internal/models"
	"github.com/gymcore/gymcore/pkg/bus"
	"github.com/gymcore/gymcore/pkg/bus/memory"
	"github.com/gymcore/gymcore/pkg/config"
	"github.com/gymcore/gymcore/pkg/dbtest"
	"github.com/gymcore/gymcore/pkg/events"
	"github.com/gymcore/gymcore/pkg/outbox"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.APP.ServiceName = app.ServiceName
	cfg.APP.PORT = "0"
	cfg.DB.DRIVER = "sqlite"
	cfg.DB.SQLitePath = fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	cfg.Bus.Driver = "memory"
	cfg.Bus.RetryMaxAttempts = 2
	cfg.Bus.RetryBaseDelay = time.Millisecond
	cfg.Membership.Period = 30 * 24 * time.Hour
	cfg.Membership.ExpiryInterval = time.Hour
	return cfg
}

func initApp(t *testing.T) (*app.App, *memory.Bus) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	a := &app.App{}
	t.Cleanup(func() { _ = a.Close() })
	require.NoError(t, a.Initialize(context.Background(), testConfig()))

	b, ok := a.Bus.(*memory.Bus)
	require.True(t, ok)
	return a, b
}

func newApp(t *testing.T) (*app.App, *memory.Bus) {
	t.Helper()
	a, b := initApp(t)
	require.NoError(t, a.Events.Subscribe(context.Background(), a.Bus))
	return a, b
}

func do(t *testing.T, a *app.App, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	return w
}

// producer stands in for an upstream service: it writes events through its own outbox
// and relays them to the shared bus.
type producer struct {
	db    *gorm.DB
	relay *outbox.Relay
}

func newProducer(t *testing.T, b *memory.Bus) *producer {
	db := dbtest.Open(t, &outbox.Event{})
	return &producer{db: db, relay: outbox.NewRelay(db, b, outbox.RelayConfig{}, nil)}
}

func (p *producer) emit(t *testing.T, key string, payload any) {
	t.Helper()
	var id string
	require.NoError(t, p.db.Transaction(func(tx *gorm.DB) error {
		evt, err := outbox.Enqueue(tx, key, payload)
		if err != nil {
			return err
		}
		id = evt.ID
		return nil
	}))
	require.NoError(t, p.relay.Dispatch(context.Background(), id))
}

func TestRegisterJoinPayActivates(t *testing.T) {
	a, b := newApp(t)
	auth := newProducer(t, b)
	payments := newProducer(t, b)

	w := do(t, a, http.MethodPost, "/gyms", `{"name":"Iron Temple"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var gym models.Gym
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &gym))

	auth.emit(t, events.RKUserCreated, events.UserCreated{ID: "u1", Email: "ana@gym.co", FirstName: "Ana", Role: "MEMBER"})

	w = do(t, a, http.MethodPost, "/gyms/join", fmt.Sprintf(`{"uniqueCode":%q,"userId":"u1"}`, gym.UniqueCode))
	require.Equal(t, http.StatusCreated, w.Code)
	var pending models.Membership
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pending))
	assert.Equal(t, models.StatusPendingPayment, pending.Status)

	completedAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	payment := events.PaymentCompleted{
		MembershipID:  pending.ID,
		UserID:        "u1",
		Amount:        decimal.RequireFromString("29.99"),
		Currency:      "USD",
		TransactionID: "t1",
		CompletedAt:   completedAt,
	}
	payments.emit(t, events.RKPaymentCompleted, payment)
	payments.emit(t, events.RKPaymentCompleted, payment)

	got, err := a.Memberships.GetMembership(context.Background(), pending.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, got.Status)
	assert.True(t, completedAt.Equal(got.StartDate))
	assert.True(t, completedAt.Add(30*24*time.Hour).Equal(got.EndDate))
	assert.Empty(t, b.DeadLetters())

	var user models.User
	require.NoError(t, a.DB.First(&user, "id = ?", "u1").Error)
	require.NotNil(t, user.GymID)
	assert.Equal(t, gym.ID, *user.GymID)
}

func TestUnknownMembershipIsDeadLettered(t *testing.T) {
	a, b := newApp(t)
	payments := newProducer(t, b)

	payments.emit(t, events.RKPaymentCompleted, events.PaymentCompleted{
		MembershipID:  "missing",
		Amount:        decimal.RequireFromString("10"),
		Currency:      "USD",
		TransactionID: "t9",
		CompletedAt:   time.Now().UTC(),
	})

	dead := b.DeadLetters()
	require.Len(t, dead, 1)
	assert.Equal(t, 1, dead[0].Result.Attempts)

	var count int64
	require.NoError(t, a.DB.Model(&models.Membership{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestHealth(t *testing.T) {
	a, _ := newApp(t)

	w := do(t, a, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func createGym(t *testing.T, a *app.App) models.Gym {
	t.Helper()
	w := do(t, a, http.MethodPost, "/gyms", `{"name":"Iron Temple"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var gym models.Gym
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &gym))
	return gym
}

func joinGym(t *testing.T, a *app.App, gym models.Gym, userID string) models.Membership {
	t.Helper()
	w := do(t, a, http.MethodPost, "/gyms/join", fmt.Sprintf(`{"uniqueCode":%q,"userId":%q}`, gym.UniqueCode, userID))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var m models.Membership
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	return m
}

func TestSecondPaymentRenewsActiveMembership(t *testing.T) {
	a, b := newApp(t)
	auth := newProducer(t, b)
	payments := newProducer(t, b)
	gym := createGym(t, a)
	auth.emit(t, events.RKUserCreated, events.UserCreated{ID: "u1", Email: "ana@gym.co", FirstName: "Ana", Role: "MEMBER"})
	pending := joinGym(t, a, gym, "u1")
	period := 30 * 24 * time.Hour
	firstAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	renewAt := firstAt.Add(20 * 24 * time.Hour)

	payments.emit(t, events.RKPaymentCompleted, events.PaymentCompleted{
		MembershipID:  pending.ID,
		UserID:        "u1",
		Amount:        decimal.RequireFromString("29.99"),
		Currency:      "USD",
		TransactionID: "t1",
		CompletedAt:   firstAt,
	})
	payments.emit(t, events.RKPaymentCompleted, events.PaymentCompleted{
		MembershipID:  pending.ID,
		UserID:        "u1",
		Amount:        decimal.RequireFromString("29.99"),
		Currency:      "USD",
		TransactionID: "t2",
		CompletedAt:   renewAt,
	})

	got, err := a.Memberships.GetMembership(context.Background(), pending.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, got.Status)
	assert.True(t, firstAt.Equal(got.StartDate))
	assert.True(t, firstAt.Add(2*period).Equal(got.EndDate), "renewal extends from the previous end date, got %s", got.EndDate)
	require.NotNil(t, got.TransactionID)
	assert.Equal(t, "t2", *got.TransactionID)
	assert.Empty(t, b.DeadLetters())

	var ledger int64
	require.NoError(t, a.DB.Model(&models.MembershipPayment{}).Where("membership_id = ?", pending.ID).Count(&ledger).Error)
	assert.EqualValues(t, 2, ledger)
}

func TestReplayedUserCreatedKeepsJoinedGym(t *testing.T) {
	a, b := newApp(t)
	auth := newProducer(t, b)
	gym := createGym(t, a)
	created := events.UserCreated{ID: "u1", Email: "ana@gym.co", FirstName: "Ana", Role: "MEMBER"}
	auth.emit(t, events.RKUserCreated, created)
	joinGym(t, a, gym, "u1")

	created.LastName = "Diaz"
	auth.emit(t, events.RKUserCreated, created)
	auth.emit(t, events.RKUserCreated, created)

	var users []models.User
	require.NoError(t, a.DB.Find(&users, "id = ?", "u1").Error)
	require.Len(t, users, 1)
	assert.Equal(t, "Diaz", users[0].LastName)
	require.NotNil(t, users[0].GymID)
	assert.Equal(t, gym.ID, *users[0].GymID)
	assert.Empty(t, b.DeadLetters())
}

func TestRunExitsWhenBrokerConnectionIsLost(t *testing.T) {
	a, b := initApp(t)

	done := make(chan error, 1)
	go func() { done <- a.Run(context.Background()) }()

	b.Disconnect(errors.New("connection reset by peer"))

	w := do(t, a, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	select {
	case err := <-done:
		assert.ErrorIs(t, err, bus.ErrConnectionLost)
		assert.Contains(t, err.Error(), "connection reset by peer")
	case <-time.After(5 * time.Second):
		t.Fatal("Run kept serving after the broker connection was lost")
	}
}
