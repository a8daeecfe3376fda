package repositories

import (
	"context"
	"sync"
	"time"

	"railway-booking/internal/module/ledger/models/entity"
	"railway-booking/internal/pkg/errors"

	"github.com/google/uuid"
)

// memoryRepositories keeps the whole ledger in process. Same contract as
// the sqlx implementation; a per-source mutex replaces the row lock, so
// cross-source operations never contend.
type memoryRepositories struct {
	mu      sync.RWMutex
	sources map[int64]*memorySource
	nextID  int64
}

type memorySource struct {
	mu           sync.Mutex
	source       entity.FundingSource
	transactions []entity.Transaction
}

func NewMemory() Repositories {
	return &memoryRepositories{
		sources: make(map[int64]*memorySource),
	}
}

func (r *memoryRepositories) CreateSource(ctx context.Context, source entity.FundingSource) (entity.FundingSource, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	source.ID = r.nextID
	source.CreatedAt = time.Now()
	r.sources[source.ID] = &memorySource{source: source}
	return source, nil
}

func (r *memoryRepositories) FindSource(ctx context.Context, sourceID int64) (entity.FundingSource, error) {
	r.mu.RLock()
	ms, ok := r.sources[sourceID]
	r.mu.RUnlock()
	if !ok {
		return entity.FundingSource{}, nil
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.source, nil
}

func (r *memoryRepositories) FindSourceForUser(ctx context.Context, userID int64, kind string) (entity.FundingSource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var found entity.FundingSource
	for _, ms := range r.sources {
		ms.mu.Lock()
		source := ms.source
		ms.mu.Unlock()
		if source.UserID == userID && source.Kind == kind {
			if found.ID == 0 || source.ID < found.ID {
				found = source
			}
		}
	}
	return found, nil
}

func (r *memoryRepositories) FindSourcesByUser(ctx context.Context, userID int64) ([]entity.FundingSource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var sources []entity.FundingSource
	for _, ms := range r.sources {
		ms.mu.Lock()
		source := ms.source
		ms.mu.Unlock()
		if source.UserID == userID {
			sources = append(sources, source)
		}
	}
	return sources, nil
}

func (r *memoryRepositories) DeactivateSource(ctx context.Context, userID int64, sourceID int64) error {
	r.mu.RLock()
	ms, ok := r.sources[sourceID]
	r.mu.RUnlock()
	if !ok {
		return errors.SourceNotFound("funding source not found")
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()
	if ms.source.UserID != userID {
		return errors.SourceNotFound("funding source not found")
	}
	ms.source.IsActive = false
	return nil
}

func (r *memoryRepositories) Debit(ctx context.Context, sourceID int64, amount float64, referenceID string, description string) (string, error) {
	if amount <= 0 {
		return "", errors.ValidationError("debit amount must be positive")
	}

	r.mu.RLock()
	ms, ok := r.sources[sourceID]
	r.mu.RUnlock()
	if !ok {
		return "", errors.SourceNotFound("funding source not found")
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()

	if !ms.source.IsActive {
		return "", errors.SourceInactive("funding source is inactive")
	}
	if ms.source.Balance < amount {
		return "", errors.InsufficientBalance("insufficient balance on funding source")
	}

	transactionID := uuid.NewString()
	ms.source.Balance -= amount
	ms.transactions = append(ms.transactions, entity.Transaction{
		ID:          transactionID,
		SourceID:    sourceID,
		Type:        entity.TransactionTypeDebit,
		Amount:      amount,
		Description: description,
		ReferenceID: referenceID,
		CreatedAt:   time.Now(),
	})
	return transactionID, nil
}

func (r *memoryRepositories) Credit(ctx context.Context, sourceID int64, amount float64, referenceID string, description string) (string, error) {
	if amount <= 0 {
		return "", errors.ValidationError("credit amount must be positive")
	}

	r.mu.RLock()
	ms, ok := r.sources[sourceID]
	r.mu.RUnlock()
	if !ok {
		return "", errors.SourceNotFound("funding source not found")
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()

	if !ms.source.IsActive {
		return "", errors.SourceInactive("funding source is inactive")
	}

	transactionID := uuid.NewString()
	ms.source.Balance += amount
	ms.transactions = append(ms.transactions, entity.Transaction{
		ID:          transactionID,
		SourceID:    sourceID,
		Type:        entity.TransactionTypeCredit,
		Amount:      amount,
		Description: description,
		ReferenceID: referenceID,
		CreatedAt:   time.Now(),
	})
	return transactionID, nil
}

func (r *memoryRepositories) BalanceOf(ctx context.Context, sourceID int64) (float64, error) {
	r.mu.RLock()
	ms, ok := r.sources[sourceID]
	r.mu.RUnlock()
	if !ok {
		return 0, errors.SourceNotFound("funding source not found")
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.source.Balance, nil
}

func (r *memoryRepositories) TransactionsOf(ctx context.Context, sourceID int64) ([]entity.Transaction, error) {
	r.mu.RLock()
	ms, ok := r.sources[sourceID]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.SourceNotFound("funding source not found")
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()
	transactions := make([]entity.Transaction, len(ms.transactions))
	copy(transactions, ms.transactions)
	return transactions, nil
}

func (r *memoryRepositories) FindCreditByReference(ctx context.Context, referenceID string) (entity.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, ms := range r.sources {
		ms.mu.Lock()
		for _, transaction := range ms.transactions {
			if transaction.Type == entity.TransactionTypeCredit && transaction.ReferenceID == referenceID {
				ms.mu.Unlock()
				return transaction, nil
			}
		}
		ms.mu.Unlock()
	}
	return entity.Transaction{}, nil
}
