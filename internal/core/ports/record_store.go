package ports

import (
	"context"

	"github.com/asadbek201001/Ilmhub-Coin-system/internal/core/domain"
)

// UserRepository persists user records in the record store.
type UserRepository interface {
	// Get returns the user with the given primary id, or domain.ErrUserNotFound.
	Get(ctx context.Context, id string) (*domain.User, error)
	// Save creates or replaces the user record and keeps the studentId
	// secondary index in sync.
	Save(ctx context.Context, user *domain.User) error
	// List returns all user records in no guaranteed order.
	List(ctx context.Context) ([]*domain.User, error)
	// FindByStudentID returns the student holding the given 10-digit
	// studentId, or domain.ErrStudentNotFound.
	FindByStudentID(ctx context.Context, studentID string) (*domain.User, error)
}

// ItemRepository persists catalog items.
type ItemRepository interface {
	// Get returns the item with the given id, or domain.ErrItemNotFound.
	Get(ctx context.Context, id string) (*domain.Item, error)
	Save(ctx context.Context, item *domain.Item) error
	List(ctx context.Context) ([]*domain.Item, error)
}

// TransactionRepository is the append-only ledger log. Entries are never
// mutated or deleted once appended.
type TransactionRepository interface {
	// Append records a new transaction. Re-appending an existing id returns
	// domain.ErrDuplicateTransaction.
	Append(ctx context.Context, tx *domain.Transaction) error
	// ListByStudent returns all entries for the given studentId in no
	// guaranteed order; callers sort as needed.
	ListByStudent(ctx context.Context, studentID string) ([]*domain.Transaction, error)
}

// CredentialRepository is the identity-provider credential store.
type CredentialRepository interface {
	// Create stores a new credential; a duplicate email returns domain.ErrUserExists.
	Create(ctx context.Context, cred *domain.Credential) error
	// FindByEmail returns the credential for the email, or domain.ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*domain.Credential, error)
}
