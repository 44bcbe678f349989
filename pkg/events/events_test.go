package events_test

import (
	"testing"
	"time"

	"github.com/gymcore/gymcore/pkg/events"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeUserCreated(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
		want    events.UserCreated
	}{
		{
			name: "full payload",
			body: `{"id":"u1","email":"a@b.co","firstName":"Ana","lastName":"Ruiz","role":"MEMBER","gymId":"g1"}`,
			want: events.UserCreated{ID: "u1", Email: "a@b.co", FirstName: "Ana", LastName: "Ruiz", Role: "MEMBER", GymID: "g1"},
		},
		{
			name: "unknown fields ignored and null gym",
			body: `{"id":"u1","email":"a@b.co","gymId":null,"phone":"123"}`,
			want: events.UserCreated{ID: "u1", Email: "a@b.co"},
		},
		{name: "missing id", body: `{"email":"a@b.co"}`, wantErr: true},
		{name: "missing email", body: `{"id":"u1"}`, wantErr: true},
		{name: "not json", body: `{`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := events.Decode[events.UserCreated]([]byte(tt.body))
			if tt.wantErr {
				assert.ErrorIs(t, err, events.ErrMalformed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodePaymentCompleted(t *testing.T) {
	body := `{"membershipId":"m1","amount":29.99,"currency":"USD","transactionId":"t1","completedAt":"2025-03-01T10:00:00Z"}`

	got, err := events.Decode[events.PaymentCompleted]([]byte(body))

	require.NoError(t, err)
	assert.Equal(t, "m1", got.MembershipID)
	assert.True(t, decimal.RequireFromString("29.99").Equal(got.Amount))
	assert.Equal(t, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC), got.CompletedAt.UTC())
	assert.False(t, got.IsSale())
}

func TestDecodePaymentCompleted_StringAmountAndSale(t *testing.T) {
	body := `{"saleId":"s1","amount":"12.50","currency":"USD","transactionId":"t2","completedAt":"2025-03-01T10:00:00Z"}`

	got, err := events.Decode[events.PaymentCompleted]([]byte(body))

	require.NoError(t, err)
	assert.True(t, got.IsSale())
	assert.Equal(t, "12.5", got.Amount.String())
}

func TestDecodePaymentCompleted_Invalid(t *testing.T) {
	tests := map[string]string{
		"no membership nor sale": `{"amount":1,"currency":"USD","transactionId":"t1","completedAt":"2025-03-01T10:00:00Z"}`,
		"no transaction":         `{"membershipId":"m1","amount":1,"currency":"USD","completedAt":"2025-03-01T10:00:00Z"}`,
		"no completedAt":         `{"membershipId":"m1","amount":1,"currency":"USD","transactionId":"t1"}`,
		"negative amount":        `{"membershipId":"m1","amount":-1,"currency":"USD","transactionId":"t1","completedAt":"2025-03-01T10:00:00Z"}`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := events.Decode[events.PaymentCompleted]([]byte(body))
			assert.ErrorIs(t, err, events.ErrMalformed)
		})
	}
}
