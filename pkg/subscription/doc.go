// Package subscription implements the LUNA plan catalog and the rules that turn a
// stored account into an effective subscription.
//
// The catalog is a fixed, read-only set of seven plans (FREE, two Pro cadences,
// LIFETIME and three family tiers). Every plan carries the same Features record, so
// entitlement checks never need to know which plan they are looking at.
//
// # Core Components
//
//   - Lookup and Plans: catalog access; unknown identifiers resolve to FREE
//   - Resolve: derives an EffectiveSubscription from an Account at a given instant
//   - HasFeature and EffectiveSubscription.Can: fail-closed feature checks
//   - StartTrial: one-time 14 day Pro Monthly trial
//   - Classify: labels a move between plans (current, subscribe, upgrade, downgrade, switch)
//   - Purchase, Cancel and Quote: mock checkout flow, nothing is charged
//   - Service: the same operations bound to an AccountStore and a clock
//
// # Effective Subscription
//
// Resolve never mutates the account. A trial whose end date has passed is reported
// as EXPIRED on the free plan while the stored record keeps saying TRIALING:
//
//	sub := subscription.Resolve(acc, time.Now())
//	if sub.Can(subscription.FeatureCalendarSync) {
//		// sync calendar
//	}
//
// Only ACTIVE, TRIALING and LIFETIME statuses grant the stored plan. Anything else
// falls back to the free plan's features.
//
// # Service
//
// Service is the entry point used by the HTTP layer:
//
//	store := subscription.NewInMemStore(mockdata.NewSeedAccount())
//	svc := subscription.NewService(store,
//		subscription.WithLogger(log),
//		subscription.WithClock(time.Now),
//	)
//
//	started, err := svc.StartTrial(ctx, accountID)
//	if err != nil {
//		return err
//	}
//	if !started {
//		// trial was already used
//	}
//
// HasFeature on the service returns false for any lookup error, so a missing
// account never gains access to anything.
//
// # Error Handling
//
// Operations return sentinel errors that can be matched with errors.Is:
//
//   - ErrPlanNotFound: target is not a catalog plan
//   - ErrAccountNotFound: no account with the given ID
//   - ErrInvalidSubscriptionState: cancel on a status that cannot be canceled
//   - ErrInvalidPaymentMethod: checkout method is neither card nor crypto
//   - ErrFailedToSaveAccount: store write failed, joined with the store's error
package subscription
