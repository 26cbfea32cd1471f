package subscription_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lunahq/luna/pkg/logger"
	"github.com/lunahq/luna/pkg/subscription"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Get(ctx context.Context, id uuid.UUID) (subscription.Account, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(subscription.Account), args.Error(1)
}

func (m *mockStore) Save(ctx context.Context, acc subscription.Account) error {
	args := m.Called(ctx, acc)
	return args.Error(0)
}

// clock is a settable time source for moving across trial boundaries.
type clock struct{ t time.Time }

func (c *clock) Now() time.Time { return c.t }

func newFreeAccount() subscription.Account {
	return subscription.Account{
		ID:     uuid.New(),
		Name:   "Test",
		Plan:   subscription.PlanFree,
		Status: subscription.StatusFree,
	}
}

func TestService_TrialLifecycle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	acc := newFreeAccount()
	clk := &clock{t: baseTime}
	svc := subscription.NewService(subscription.NewInMemStore(acc), subscription.WithClock(clk.Now))

	sub, err := svc.GetSubscription(ctx, acc.ID)
	require.NoError(t, err)
	assert.True(t, sub.CanStartTrial)
	assert.False(t, svc.HasFeature(ctx, acc.ID, subscription.FeatureCalendarSync))

	started, err := svc.StartTrial(ctx, acc.ID)
	require.NoError(t, err)
	require.True(t, started)

	sub, err = svc.GetSubscription(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, subscription.StatusTrialing, sub.Status)
	assert.True(t, svc.HasFeature(ctx, acc.ID, subscription.FeatureCalendarSync))
	firstEnd := *sub.TrialEndsAt

	clk.t = baseTime.AddDate(0, 0, 3)
	started, err = svc.StartTrial(ctx, acc.ID)
	require.NoError(t, err)
	assert.False(t, started)

	stored, err := svc.GetAccount(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, firstEnd, *stored.TrialEndsAt)

	clk.t = baseTime.AddDate(0, 0, 15)
	sub, err = svc.GetSubscription(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, subscription.StatusExpired, sub.Status)
	assert.Equal(t, subscription.PlanFree, sub.Plan)
	assert.False(t, svc.HasFeature(ctx, acc.ID, subscription.FeatureCalendarSync))

	stored, err = svc.GetAccount(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, subscription.PlanProMonthly, stored.Plan, "collapse never rewrites the stored plan")
	assert.Equal(t, subscription.StatusTrialing, stored.Status)
}

func TestService_ChangePlan(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("subscribe then upgrade then downgrade", func(t *testing.T) {
		t.Parallel()
		acc := newFreeAccount()
		svc := subscription.NewService(subscription.NewInMemStore(acc), subscription.WithClock(func() time.Time { return baseTime }))

		kind, err := svc.ChangePlan(ctx, acc.ID, subscription.PlanProMonthly)
		require.NoError(t, err)
		assert.Equal(t, subscription.ChangeSubscribe, kind)

		kind, err = svc.ChangePlan(ctx, acc.ID, subscription.PlanFamilyDuo)
		require.NoError(t, err)
		assert.Equal(t, subscription.ChangeUpgrade, kind)
		assert.True(t, svc.HasFeature(ctx, acc.ID, subscription.FeatureFamilyFeatures))

		kind, err = svc.ChangePlan(ctx, acc.ID, subscription.PlanProYearly)
		require.NoError(t, err)
		assert.Equal(t, subscription.ChangeDowngrade, kind)
		assert.False(t, svc.HasFeature(ctx, acc.ID, subscription.FeatureFamilyFeatures))
	})

	t.Run("current plan is a no-op", func(t *testing.T) {
		t.Parallel()
		acc := newFreeAccount()
		acc.Plan = subscription.PlanProMonthly
		acc.Status = subscription.StatusActive

		store := &mockStore{}
		store.On("Get", mock.Anything, acc.ID).Return(acc, nil)
		svc := subscription.NewService(store)

		kind, err := svc.ChangePlan(ctx, acc.ID, subscription.PlanProMonthly)
		require.NoError(t, err)
		assert.Equal(t, subscription.ChangeCurrent, kind)
		store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("canceled plan is bought again as a subscribe", func(t *testing.T) {
		t.Parallel()
		acc := newFreeAccount()
		acc.Plan = subscription.PlanProMonthly
		acc.Status = subscription.StatusCanceled
		svc := subscription.NewService(subscription.NewInMemStore(acc))

		kind, err := svc.ChangePlan(ctx, acc.ID, subscription.PlanProMonthly)
		require.NoError(t, err)
		assert.Equal(t, subscription.ChangeSubscribe, kind)
	})

	t.Run("unknown plan", func(t *testing.T) {
		t.Parallel()
		svc := subscription.NewService(subscription.NewInMemStore())
		_, err := svc.ChangePlan(ctx, uuid.New(), "GOLD")
		assert.ErrorIs(t, err, subscription.ErrPlanNotFound)
	})

	t.Run("save failure is wrapped", func(t *testing.T) {
		t.Parallel()
		acc := newFreeAccount()
		saveErr := errors.New("disk full")

		store := &mockStore{}
		store.On("Get", mock.Anything, acc.ID).Return(acc, nil)
		store.On("Save", mock.Anything, mock.Anything).Return(saveErr)
		svc := subscription.NewService(store)

		_, err := svc.ChangePlan(ctx, acc.ID, subscription.PlanLifetime)
		assert.ErrorIs(t, err, subscription.ErrFailedToSaveAccount)
		assert.ErrorIs(t, err, saveErr)
	})
}

func TestService_Cancel(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	acc := newFreeAccount()
	svc := subscription.NewService(subscription.NewInMemStore(acc))

	assert.ErrorIs(t, svc.Cancel(ctx, acc.ID), subscription.ErrInvalidSubscriptionState)

	_, err := svc.ChangePlan(ctx, acc.ID, subscription.PlanFamilyPlus)
	require.NoError(t, err)
	require.NoError(t, svc.Cancel(ctx, acc.ID))

	sub, err := svc.GetSubscription(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, subscription.StatusCanceled, sub.Status)
	assert.False(t, sub.IsActive)
	assert.Equal(t, subscription.PlanFree, sub.Plan)
}

func TestService_MissingAccount(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := subscription.NewService(subscription.NewInMemStore())
	id := uuid.New()

	_, err := svc.GetSubscription(ctx, id)
	assert.ErrorIs(t, err, subscription.ErrAccountNotFound)
	assert.False(t, svc.HasFeature(ctx, id, subscription.FeatureDailyCheckIns))

	started, err := svc.StartTrial(ctx, id)
	assert.ErrorIs(t, err, subscription.ErrAccountNotFound)
	assert.False(t, started)

	assert.ErrorIs(t, svc.Cancel(ctx, id), subscription.ErrAccountNotFound)
}

func TestService_Quote(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	acc := newFreeAccount()
	acc.Plan = subscription.PlanFamilyDuo
	acc.Status = subscription.StatusActive
	svc := subscription.NewService(subscription.NewInMemStore(acc))

	q, err := svc.Quote(ctx, acc.ID, subscription.PlanProMonthly, subscription.PaymentCard, 0)
	require.NoError(t, err)
	assert.Equal(t, subscription.ChangeDowngrade, q.Change)
	assert.Equal(t, int64(1499), q.Total.Amount)
}

func TestService_LogsMutations(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	buf := &bytes.Buffer{}
	acc := newFreeAccount()
	svc := subscription.NewService(
		subscription.NewInMemStore(acc),
		subscription.WithLogger(logger.New(logger.WithOutput(buf))),
		subscription.WithClock(func() time.Time { return baseTime }),
	)

	_, err := svc.StartTrial(ctx, acc.ID)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "trial started")
	assert.Contains(t, buf.String(), acc.ID.String())
}

func TestNewService_PanicsWithoutStore(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { subscription.NewService(nil) })
}
