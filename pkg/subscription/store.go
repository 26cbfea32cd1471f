package subscription

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// AccountStore defines the interface for account storage.
type AccountStore interface {
	// Get retrieves an account by ID.
	// Returns ErrAccountNotFound if no account exists.
	Get(ctx context.Context, id uuid.UUID) (Account, error)

	// Save creates or replaces an account keyed by its ID.
	Save(ctx context.Context, account Account) error
}

type inMemStore struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]Account
}

// NewInMemStore returns an AccountStore that lives for the lifetime of the process.
// Seed accounts are copied so later changes by the caller are not visible to the store.
func NewInMemStore(seed ...Account) AccountStore {
	s := &inMemStore{accounts: make(map[uuid.UUID]Account, len(seed))}
	for _, acc := range seed {
		s.accounts[acc.ID] = acc.Clone()
	}
	return s
}

func (s *inMemStore) Get(_ context.Context, id uuid.UUID) (Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.accounts[id]
	if !ok {
		return Account{}, ErrAccountNotFound
	}
	return acc.Clone(), nil
}

func (s *inMemStore) Save(_ context.Context, account Account) error {
	if account.ID == uuid.Nil {
		return ErrMissingAccountID
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[account.ID] = account.Clone()
	return nil
}
