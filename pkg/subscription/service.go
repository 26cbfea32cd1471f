package subscription

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lunahq/luna/pkg/logger"
)

// Service defines the public interface for account subscription management.
// Every call names the account explicitly; there is no ambient current user.
type Service interface {
	GetAccount(ctx context.Context, accountID uuid.UUID) (Account, error)
	GetSubscription(ctx context.Context, accountID uuid.UUID) (EffectiveSubscription, error)
	HasFeature(ctx context.Context, accountID uuid.UUID, key FeatureKey) bool

	StartTrial(ctx context.Context, accountID uuid.UUID) (bool, error)
	ChangePlan(ctx context.Context, accountID uuid.UUID, target PlanID) (ChangeKind, error)
	Cancel(ctx context.Context, accountID uuid.UUID) error
	Quote(ctx context.Context, accountID uuid.UUID, target PlanID, method PaymentMethod, btcUSD float64) (CheckoutQuote, error)
}

type service struct {
	store  AccountStore
	now    func() time.Time
	logger *slog.Logger
}

// NewService creates a Service backed by store.
// Panics if store is nil to fail fast during initialization.
func NewService(store AccountStore, opts ...ServiceOption) Service {
	if store == nil {
		panic("subscription: AccountStore is required")
	}

	s := &service{
		store:  store,
		now:    time.Now,
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) GetAccount(ctx context.Context, accountID uuid.UUID) (Account, error) {
	return s.store.Get(ctx, accountID)
}

// GetSubscription resolves the account against the current clock.
func (s *service) GetSubscription(ctx context.Context, accountID uuid.UUID) (EffectiveSubscription, error) {
	acc, err := s.store.Get(ctx, accountID)
	if err != nil {
		return EffectiveSubscription{}, err
	}
	return Resolve(acc, s.now()), nil
}

// HasFeature returns false on any error to fail closed.
func (s *service) HasFeature(ctx context.Context, accountID uuid.UUID, key FeatureKey) bool {
	sub, err := s.GetSubscription(ctx, accountID)
	if err != nil {
		return false
	}
	return sub.Can(key)
}

// StartTrial returns false with a nil error when the account already used its trial.
func (s *service) StartTrial(ctx context.Context, accountID uuid.UUID) (bool, error) {
	acc, err := s.store.Get(ctx, accountID)
	if err != nil {
		return false, err
	}

	if !StartTrial(&acc, s.now()) {
		s.logger.InfoContext(ctx, "trial refused", logger.AccountID(accountID), logger.Event("trial_refused"))
		return false, nil
	}

	if err := s.store.Save(ctx, acc); err != nil {
		return false, errors.Join(ErrFailedToSaveAccount, err)
	}

	s.logger.InfoContext(ctx, "trial started",
		logger.AccountID(accountID),
		logger.Plan(string(acc.Plan)),
		slog.Time("trial_ends_at", *acc.TrialEndsAt),
	)
	return true, nil
}

// ChangePlan classifies the move from the effective plan to target and applies it.
// Moving to the current plan is a no-op.
func (s *service) ChangePlan(ctx context.Context, accountID uuid.UUID, target PlanID) (ChangeKind, error) {
	if !target.Valid() {
		return "", ErrPlanNotFound
	}

	acc, err := s.store.Get(ctx, accountID)
	if err != nil {
		return "", err
	}

	current := Resolve(acc, s.now()).Plan
	kind := Classify(current, target)
	if kind == ChangeCurrent {
		return kind, nil
	}

	if err := Purchase(&acc, target); err != nil {
		return "", err
	}
	if err := s.store.Save(ctx, acc); err != nil {
		return "", errors.Join(ErrFailedToSaveAccount, err)
	}

	s.logger.InfoContext(ctx, "plan changed",
		logger.AccountID(accountID),
		slog.String("from", string(current)),
		logger.Plan(string(target)),
		slog.String("change", string(kind)),
		logger.Status(string(acc.Status)),
	)
	return kind, nil
}

func (s *service) Cancel(ctx context.Context, accountID uuid.UUID) error {
	acc, err := s.store.Get(ctx, accountID)
	if err != nil {
		return err
	}

	if err := Cancel(&acc); err != nil {
		return err
	}
	if err := s.store.Save(ctx, acc); err != nil {
		return errors.Join(ErrFailedToSaveAccount, err)
	}

	s.logger.InfoContext(ctx, "subscription canceled", logger.AccountID(accountID), logger.Plan(string(acc.Plan)))
	return nil
}

// Quote prices a checkout against the account's effective plan.
func (s *service) Quote(ctx context.Context, accountID uuid.UUID, target PlanID, method PaymentMethod, btcUSD float64) (CheckoutQuote, error) {
	sub, err := s.GetSubscription(ctx, accountID)
	if err != nil {
		return CheckoutQuote{}, err
	}
	return Quote(sub.Plan, target, method, btcUSD)
}
