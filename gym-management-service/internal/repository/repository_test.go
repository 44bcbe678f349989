package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gymcore/gymcore/gym-management-service/internal/models"
	"github.com/gymcore/gymcore/gym-management-service/internal/repository"
	"github.com/gymcore/gymcore/pkg/dbtest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openDB(t *testing.T) *gorm.DB {
	return dbtest.Open(t, &models.User{}, &models.Gym{}, &models.Membership{}, &models.MembershipPayment{})
}

func strPtr(s string) *string { return &s }

func TestUserRepository_UpsertKeepsOneRow(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	repo := repository.NewUserRepository(db)

	require.NoError(t, repo.Upsert(ctx, &models.User{ID: "u1", Email: "old@gym.co", Role: "MEMBER"}, false))
	require.NoError(t, repo.Upsert(ctx, &models.User{ID: "u1", Email: "new@gym.co", FirstName: "Ana", Role: "MANAGER"}, false))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	got, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "new@gym.co", got.Email)
	assert.Equal(t, "Ana", got.FirstName)
	assert.Equal(t, "MANAGER", got.Role)
}

func TestUserRepository_UpsertGymOnlyWhenRequested(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	repo := repository.NewUserRepository(db)

	require.NoError(t, repo.Upsert(ctx, &models.User{ID: "u1", Email: "a@gym.co", Role: "MEMBER", GymID: strPtr("g1")}, true))
	require.NoError(t, repo.Upsert(ctx, &models.User{ID: "u1", Email: "a@gym.co", Role: "MEMBER"}, false))

	got, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, got.GymID)
	assert.Equal(t, "g1", *got.GymID)

	require.NoError(t, repo.Upsert(ctx, &models.User{ID: "u1", Email: "a@gym.co", Role: "MEMBER", GymID: strPtr("g2")}, true))
	got, err = repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "g2", *got.GymID)

	_, err = repo.GetByID(ctx, "nobody")
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}

func seedMembership(t *testing.T, db *gorm.DB) *models.Membership {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, repository.NewUserRepository(db).Upsert(ctx, &models.User{ID: "u1", Email: "a@gym.co", Role: "MEMBER"}, false))
	m := &models.Membership{
		UserID:    "u1",
		GymID:     "g1",
		Status:    models.StatusPendingPayment,
		StartDate: models.PlaceholderDate,
		EndDate:   models.PlaceholderDate,
	}
	require.NoError(t, repository.NewMembershipRepository(db).CreatePending(ctx, m))
	return m
}

func TestMembershipRepository_CreatePending(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	repo := repository.NewMembershipRepository(db)
	m := seedMembership(t, db)

	user, err := repository.NewUserRepository(db).GetByID(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, user.GymID)
	assert.Equal(t, "g1", *user.GymID)

	dup := &models.Membership{UserID: "u1", GymID: "g1", Status: models.StatusPendingPayment, StartDate: models.PlaceholderDate, EndDate: models.PlaceholderDate}
	assert.ErrorIs(t, repo.CreatePending(ctx, dup), models.ErrAlreadyMember)

	orphan := &models.Membership{UserID: "ghost", GymID: "g1", Status: models.StatusPendingPayment, StartDate: models.PlaceholderDate, EndDate: models.PlaceholderDate}
	assert.ErrorIs(t, repo.CreatePending(ctx, orphan), models.ErrUserNotFound)
	_, err = repo.FindByUserAndGym(ctx, "ghost", "g1")
	assert.ErrorIs(t, err, models.ErrMembershipNotFound)

	found, err := repo.FindByUserAndGym(ctx, "u1", "g1")
	require.NoError(t, err)
	assert.Equal(t, m.ID, found.ID)
}

func payment(membershipID, txID string, at time.Time) *models.MembershipPayment {
	return &models.MembershipPayment{
		TransactionID: txID,
		MembershipID:  membershipID,
		Amount:        decimal.RequireFromString("29.99"),
		Currency:      "USD",
		CompletedAt:   at,
		AppliedAt:     time.Now().UTC(),
	}
}

func TestMembershipRepository_ApplyPaymentIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	repo := repository.NewMembershipRepository(db)
	m := seedMembership(t, db)
	completedAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	apply := func(m *models.Membership) error { return m.ApplyPayment("t1", completedAt, 30*24*time.Hour) }

	first, applied, err := repo.ApplyPayment(ctx, m.ID, payment(m.ID, "t1", completedAt), apply)
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, models.StatusActive, first.Status)

	for i := 0; i < 3; i++ {
		again, applied, err := repo.ApplyPayment(ctx, m.ID, payment(m.ID, "t1", completedAt), apply)
		require.NoError(t, err)
		assert.False(t, applied)
		assert.True(t, first.EndDate.Equal(again.EndDate))
	}

	stored, err := repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.True(t, completedAt.Add(30*24*time.Hour).Equal(stored.EndDate))
	n, err := repo.CountPayments(ctx, m.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestMembershipRepository_ApplyPaymentRejectsTransactionOfAnotherMembership(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	repo := repository.NewMembershipRepository(db)
	first := seedMembership(t, db)
	require.NoError(t, repository.NewUserRepository(db).Upsert(ctx, &models.User{ID: "u2", Email: "b@gym.co", Role: "MEMBER"}, false))
	second := &models.Membership{UserID: "u2", GymID: "g1", Status: models.StatusPendingPayment, StartDate: models.PlaceholderDate, EndDate: models.PlaceholderDate}
	require.NoError(t, repo.CreatePending(ctx, second))
	completedAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	_, applied, err := repo.ApplyPayment(ctx, first.ID, payment(first.ID, "t1", completedAt), func(m *models.Membership) error {
		return m.ApplyPayment("t1", completedAt, 30*24*time.Hour)
	})
	require.NoError(t, err)
	require.True(t, applied)

	_, applied, err = repo.ApplyPayment(ctx, second.ID, payment(second.ID, "t1", completedAt), func(m *models.Membership) error {
		return m.ApplyPayment("t1", completedAt, 30*24*time.Hour)
	})
	assert.ErrorIs(t, err, models.ErrTransactionMismatch)
	assert.False(t, applied)

	untouched, err := repo.GetByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPendingPayment, untouched.Status)
	n, err := repo.CountPayments(ctx, second.ID)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestMembershipRepository_ApplyPaymentUnknownMembership(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	repo := repository.NewMembershipRepository(db)

	_, _, err := repo.ApplyPayment(ctx, "missing", payment("missing", "t9", time.Now()), func(m *models.Membership) error { return nil })

	assert.ErrorIs(t, err, models.ErrMembershipNotFound)
	var count int64
	require.NoError(t, db.Model(&models.Membership{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&models.MembershipPayment{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestMembershipRepository_ApplyErrorRollsBackLedger(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	repo := repository.NewMembershipRepository(db)
	m := seedMembership(t, db)

	_, _, err := repo.ApplyPayment(ctx, m.ID, payment(m.ID, "t1", time.Now()), func(m *models.Membership) error {
		return models.ErrMembershipBanned
	})
	assert.ErrorIs(t, err, models.ErrMembershipBanned)

	n, err := repo.CountPayments(ctx, m.ID)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestMembershipRepository_UpdateAndExpire(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	repo := repository.NewMembershipRepository(db)
	m := seedMembership(t, db)
	now := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	_, err := repo.Update(ctx, m.ID, func(m *models.Membership) error {
		return m.ApplyPayment("t1", now.Add(-40*24*time.Hour), 30*24*time.Hour)
	})
	require.NoError(t, err)

	expired, err := repo.ExpireDue(ctx, now)
	require.NoError(t, err)
	assert.EqualValues(t, 1, expired)

	stored, err := repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusExpired, stored.Status)

	expired, err = repo.ExpireDue(ctx, now)
	require.NoError(t, err)
	assert.Zero(t, expired)

	_, err = repo.Update(ctx, "missing", func(m *models.Membership) error { return nil })
	assert.True(t, errors.Is(err, models.ErrMembershipNotFound))
}
