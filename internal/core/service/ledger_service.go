package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/asadbek201001/Ilmhub-Coin-system/internal/core/authz"
	"github.com/asadbek201001/Ilmhub-Coin-system/internal/core/domain"
	"github.com/asadbek201001/Ilmhub-Coin-system/internal/core/ports"
)

// LedgerService implements coin grants and purchases. All mutations for a
// given student are serialized through a per-student lock, so a grant and a
// purchase racing on the same balance can never lose an update.
type LedgerService struct {
	users        ports.UserRepository
	items        ports.ItemRepository
	transactions ports.TransactionRepository
	locks        keyedMutex
	logger       zerolog.Logger
}

func NewLedgerService(
	users ports.UserRepository,
	items ports.ItemRepository,
	transactions ports.TransactionRepository,
	logger zerolog.Logger,
) *LedgerService {
	return &LedgerService{
		users:        users,
		items:        items,
		transactions: transactions,
		logger:       logger,
	}
}

// GrantCoins increments the student's balance and appends a "received"
// transaction. If the append fails, the balance write is compensated before
// returning, so balance and ledger never diverge.
func (s *LedgerService) GrantCoins(ctx context.Context, actorID, studentID string, amount int, reason string) (int, error) {
	actor, err := s.users.Get(ctx, actorID)
	if err != nil {
		return 0, domain.ErrNotAuthorized
	}
	if !authz.CanPerform(actor.Role, authz.OpGrantCoins) {
		return 0, domain.ErrNotAuthorized
	}
	if amount <= 0 {
		return 0, domain.ErrInvalidAmount
	}

	target, err := s.users.FindByStudentID(ctx, studentID)
	if err != nil {
		return 0, err
	}

	unlock := s.locks.lock(target.ID)
	defer unlock()

	// Re-read under the lock; the index lookup above may be stale.
	student, err := s.users.Get(ctx, target.ID)
	if err != nil {
		return 0, fmt.Errorf("grant coins: reload student: %w", err)
	}

	previous := student.CoinBalance
	student.CoinBalance += amount
	if err := s.users.Save(ctx, student); err != nil {
		return 0, fmt.Errorf("grant coins: update balance: %w", err)
	}

	tx := &domain.Transaction{
		ID:        uuid.NewString(),
		StudentID: studentID,
		TeacherID: actor.ID,
		Type:      domain.TransactionReceived,
		Amount:    amount,
		Reason:    reason,
		Timestamp: time.Now().UTC(),
	}
	if err := s.transactions.Append(ctx, tx); err != nil {
		student.CoinBalance = previous
		if rbErr := s.users.Save(ctx, student); rbErr != nil {
			s.logger.Error().Err(rbErr).Str("student_id", studentID).Msg("balance rollback failed after append error")
		}
		return 0, fmt.Errorf("grant coins: append transaction: %w", err)
	}

	s.logger.Info().
		Str("teacher_id", actor.ID).
		Str("student_id", studentID).
		Int("amount", amount).
		Int("new_balance", student.CoinBalance).
		Msg("coins granted")

	return student.CoinBalance, nil
}

// PurchaseItem debits the acting student by the item's price, appends a
// "purchase" transaction, and bumps the item's purchase counter best-effort.
func (s *LedgerService) PurchaseItem(ctx context.Context, actorID, itemID string) (int, error) {
	actor, err := s.users.Get(ctx, actorID)
	if err != nil {
		return 0, domain.ErrNotAuthorized
	}
	if !authz.CanPerform(actor.Role, authz.OpPurchaseItem) {
		return 0, domain.ErrNotAuthorized
	}

	item, err := s.items.Get(ctx, itemID)
	if err != nil {
		return 0, err
	}
	if !item.Available {
		return 0, domain.ErrItemUnavailable
	}

	unlock := s.locks.lock(actor.ID)
	defer unlock()

	student, err := s.users.Get(ctx, actor.ID)
	if err != nil {
		return 0, fmt.Errorf("purchase item: reload student: %w", err)
	}
	if student.CoinBalance < item.Price {
		return 0, domain.ErrInsufficientBalance
	}

	previous := student.CoinBalance
	student.CoinBalance -= item.Price
	if err := s.users.Save(ctx, student); err != nil {
		return 0, fmt.Errorf("purchase item: update balance: %w", err)
	}

	tx := &domain.Transaction{
		ID:        uuid.NewString(),
		StudentID: student.StudentID,
		ItemID:    item.ID,
		ItemName:  item.Name,
		Type:      domain.TransactionPurchase,
		Amount:    -item.Price,
		Timestamp: time.Now().UTC(),
	}
	if err := s.transactions.Append(ctx, tx); err != nil {
		student.CoinBalance = previous
		if rbErr := s.users.Save(ctx, student); rbErr != nil {
			s.logger.Error().Err(rbErr).Str("student_id", student.StudentID).Msg("balance rollback failed after append error")
		}
		return 0, fmt.Errorf("purchase item: append transaction: %w", err)
	}

	// Informational counter only; a failure here must not fail the purchase.
	item.PurchaseCount++
	if err := s.items.Save(ctx, item); err != nil {
		s.logger.Warn().Err(err).Str("item_id", item.ID).Msg("purchase count update failed")
	}

	s.logger.Info().
		Str("student_id", student.StudentID).
		Str("item_id", item.ID).
		Int("price", item.Price).
		Int("new_balance", student.CoinBalance).
		Msg("item purchased")

	return student.CoinBalance, nil
}

// ListTransactions returns the student's ledger entries sorted newest first.
func (s *LedgerService) ListTransactions(ctx context.Context, studentID string) ([]*domain.Transaction, error) {
	txs, err := s.transactions.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	sort.Slice(txs, func(i, j int) bool {
		return txs[i].Timestamp.After(txs[j].Timestamp)
	})
	return txs, nil
}

// keyedMutex serializes work per key. Entries are never evicted; the map is
// bounded by the number of students seen by this process.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (k *keyedMutex) lock(key string) (unlock func()) {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]*sync.Mutex)
	}
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}
