package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gymcore/gymcore/auth-service/internal/models"
	"github.com/gymcore/gymcore/auth-service/internal/models/dto"
	"github.com/gymcore/gymcore/auth-service/internal/service"
	"github.com/gymcore/gymcore/auth-service/internal/service/mocks"
	"github.com/gymcore/gymcore/pkg/bus"
	"github.com/gymcore/gymcore/pkg/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegister_Success(t *testing.T) {
	mockRepo := mocks.NewMockUserRepo(t)
	mockDispatcher := mocks.NewMockDispatcher(t)
	svc := service.NewRegistrationService(mockRepo, mockDispatcher)
	ctx := context.Background()

	mockRepo.EXPECT().
		CreateWithEvent(ctx, mock.AnythingOfType("*models.User")).
		Run(func(ctx context.Context, user *models.User) {
			user.ID = "u1"
			assert.Equal(t, "ana@gym.co", user.Email)
			assert.Equal(t, models.RoleMember, user.Role)
			require.NotNil(t, user.GymID)
			assert.Equal(t, "g1", *user.GymID)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret-pass")))
		}).
		Return("evt-1", nil).
		Once()
	mockDispatcher.EXPECT().Dispatch(ctx, "evt-1").Return(nil).Once()

	user, err := svc.Register(ctx, &dto.RegisterUser{
		Email:     "  Ana@Gym.co ",
		Password:  "s3cret-pass",
		FirstName: "Ana",
		LastName:  "Diaz",
		GymID:     "g1",
	})

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
}

func TestRegister_DispatchFailureStillRegisters(t *testing.T) {
	mockRepo := mocks.NewMockUserRepo(t)
	mockDispatcher := mocks.NewMockDispatcher(t)
	svc := service.NewRegistrationService(mockRepo, mockDispatcher)

	mockRepo.EXPECT().CreateWithEvent(mock.Anything, mock.Anything).Return("evt-1", nil).Once()
	mockDispatcher.EXPECT().Dispatch(mock.Anything, "evt-1").Return(errors.New("broker unavailable")).Once()

	user, err := svc.Register(context.Background(), &dto.RegisterUser{Email: "a@gym.co", Password: "s3cret-pass"})

	require.NoError(t, err)
	assert.Nil(t, user.GymID)
}

func TestRegister_EmailTaken(t *testing.T) {
	mockRepo := mocks.NewMockUserRepo(t)
	mockDispatcher := mocks.NewMockDispatcher(t)
	svc := service.NewRegistrationService(mockRepo, mockDispatcher)

	mockRepo.EXPECT().CreateWithEvent(mock.Anything, mock.Anything).Return("", models.ErrEmailTaken).Once()

	_, err := svc.Register(context.Background(), &dto.RegisterUser{Email: "a@gym.co", Password: "s3cret-pass"})

	assert.ErrorIs(t, err, models.ErrEmailTaken)
	mockDispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
}

func TestInitOwner(t *testing.T) {
	ctx := context.Background()
	in := service.OwnerInput{Email: "Owner@Gym.co", Password: "s3cret-pass", FirstName: "System", LastName: "Owner"}

	t.Run("creates and dispatches", func(t *testing.T) {
		mockRepo := mocks.NewMockUserRepo(t)
		mockDispatcher := mocks.NewMockDispatcher(t)
		svc := service.NewOwnerService(mockRepo, mockDispatcher)

		mockRepo.EXPECT().
			CreateOwnerIfAbsent(ctx, mock.AnythingOfType("*models.User")).
			RunAndReturn(func(ctx context.Context, owner *models.User) (*models.User, string, error) {
				assert.Equal(t, models.RoleOwner, owner.Role)
				assert.Equal(t, "owner@gym.co", owner.Email)
				owner.ID = "o1"
				return owner, "evt-1", nil
			}).
			Once()
		mockDispatcher.EXPECT().Dispatch(ctx, "evt-1").Return(nil).Once()

		owner, created, err := svc.InitOwner(ctx, in)
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, "o1", owner.ID)
	})

	t.Run("existing owner is a no-op", func(t *testing.T) {
		mockRepo := mocks.NewMockUserRepo(t)
		mockDispatcher := mocks.NewMockDispatcher(t)
		svc := service.NewOwnerService(mockRepo, mockDispatcher)

		mockRepo.EXPECT().CreateOwnerIfAbsent(ctx, mock.Anything).Return(&models.User{ID: "o0", Role: models.RoleOwner}, "", nil).Once()

		owner, created, err := svc.InitOwner(ctx, in)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, "o0", owner.ID)
		mockDispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
	})

	t.Run("missing credentials", func(t *testing.T) {
		svc := service.NewOwnerService(mocks.NewMockUserRepo(t), mocks.NewMockDispatcher(t))

		_, _, err := svc.InitOwner(ctx, service.OwnerInput{Email: "owner@gym.co"})
		assert.ErrorIs(t, err, service.ErrOwnerCredentialsRequired)

		_, _, err = svc.InitOwner(ctx, service.OwnerInput{Password: "s3cret-pass"})
		assert.ErrorIs(t, err, service.ErrOwnerCredentialsRequired)
	})
}

func users() []models.User {
	gym := "g1"
	return []models.User{
		{ID: "u1", Email: "a@gym.co", Role: models.RoleOwner},
		{ID: "u2", Email: "b@gym.co", Role: models.RoleMember, GymID: &gym},
		{ID: "u3", Email: "c@gym.co", Role: models.RoleMember},
	}
}

func TestResync_PublishesEveryUser(t *testing.T) {
	mockRepo := mocks.NewMockUserRepo(t)
	mockPublisher := mocks.NewMockPublisher(t)
	svc := service.NewResyncService(mockRepo, mockPublisher)
	var seen []events.UserCreated

	mockRepo.EXPECT().ListAll(mock.Anything).Return(users(), nil).Once()
	mockPublisher.EXPECT().
		Publish(mock.Anything, mock.AnythingOfType("bus.Message")).
		Run(func(ctx context.Context, msg bus.Message) {
			assert.Equal(t, events.RKUserCreated, msg.RoutingKey)
			assert.True(t, msg.Persistent)
			evt, err := events.Decode[events.UserCreated](msg.Body)
			require.NoError(t, err)
			seen = append(seen, evt)
		}).
		Return(nil).
		Times(3)

	summary, err := svc.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, service.Summary{Total: 3, Published: 3}, summary)
	require.Len(t, seen, 3)
	assert.Equal(t, "u1", seen[0].ID)
	assert.Equal(t, "OWNER", seen[0].Role)
	assert.Equal(t, "g1", seen[1].GymID)
}

func TestResync_AbortsOnFirstFailure(t *testing.T) {
	mockRepo := mocks.NewMockUserRepo(t)
	mockPublisher := mocks.NewMockPublisher(t)
	svc := service.NewResyncService(mockRepo, mockPublisher)
	expectedError := errors.New("channel closed")

	mockRepo.EXPECT().ListAll(mock.Anything).Return(users(), nil).Once()
	mockPublisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
	mockPublisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(expectedError).Once()

	summary, err := svc.Run(context.Background())

	assert.ErrorIs(t, err, expectedError)
	assert.Equal(t, service.Summary{Total: 3, Published: 1}, summary)
}

func TestResync_NoUsers(t *testing.T) {
	mockRepo := mocks.NewMockUserRepo(t)
	mockPublisher := mocks.NewMockPublisher(t)
	svc := service.NewResyncService(mockRepo, mockPublisher)

	mockRepo.EXPECT().ListAll(mock.Anything).Return(nil, nil).Once()

	summary, err := svc.Run(context.Background())

	require.NoError(t, err)
	assert.Zero(t, summary.Total)
	mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}
