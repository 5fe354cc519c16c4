package ports

import (
	"context"

	"github.com/asadbek201001/Ilmhub-Coin-system/internal/core/domain"
)

// LedgerService applies balance-changing operations. Every successful
// mutation is reflected by exactly one transaction record, and a student's
// coin balance is never observed negative.
type LedgerService interface {
	// GrantCoins increments the target student's balance by amount and
	// appends a "received" transaction. actorID must resolve to a teacher.
	// Returns the new balance.
	GrantCoins(ctx context.Context, actorID, studentID string, amount int, reason string) (int, error)

	// PurchaseItem decrements the acting student's balance by the item's
	// price and appends a "purchase" transaction. Returns the new balance.
	PurchaseItem(ctx context.Context, actorID, itemID string) (int, error)

	// ListTransactions returns the student's ledger entries, newest first.
	ListTransactions(ctx context.Context, studentID string) ([]*domain.Transaction, error)
}
