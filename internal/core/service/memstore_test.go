package service

import (
	"context"
	"sync"

	"github.com/asadbek201001/Ilmhub-Coin-system/internal/core/domain"
)

// memStore is a thread-safe in-memory record store used by the service tests.
// FindByStudentID deliberately scans all users, mirroring the prefix-scan
// semantics of the real store and serving as the correctness reference for
// the indexed lookup.
type memStore struct {
	mu           sync.Mutex
	users        map[string]*domain.User
	items        map[string]*domain.Item
	transactions map[string]*domain.Transaction

	appendErr   error // if set, Append fails with this error
	userSaveErr error // if set, the next Save fails with this error
}

func newMemStore() *memStore {
	return &memStore{
		users:        make(map[string]*domain.User),
		items:        make(map[string]*domain.Item),
		transactions: make(map[string]*domain.Transaction),
	}
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	return &clone
}

func cloneItem(i *domain.Item) *domain.Item {
	clone := *i
	return &clone
}

func (m *memStore) Get(_ context.Context, id string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (m *memStore) Save(_ context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.userSaveErr != nil {
		err := m.userSaveErr
		m.userSaveErr = nil
		return err
	}
	m.users[user.ID] = cloneUser(user)
	return nil
}

func (m *memStore) List(_ context.Context) ([]*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (m *memStore) FindByStudentID(_ context.Context, studentID string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Role == domain.RoleStudent && u.StudentID == studentID {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrStudentNotFound
}

func (m *memStore) GetItem(_ context.Context, id string) (*domain.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, ok := m.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	return cloneItem(i), nil
}

func (m *memStore) SaveItem(_ context.Context, item *domain.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[item.ID] = cloneItem(item)
	return nil
}

func (m *memStore) ListItems(_ context.Context) ([]*domain.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.Item, 0, len(m.items))
	for _, i := range m.items {
		out = append(out, cloneItem(i))
	}
	return out, nil
}

func (m *memStore) Append(_ context.Context, tx *domain.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.appendErr != nil {
		return m.appendErr
	}
	if _, exists := m.transactions[tx.ID]; exists {
		return domain.ErrDuplicateTransaction
	}
	clone := *tx
	m.transactions[tx.ID] = &clone
	return nil
}

func (m *memStore) ListByStudent(_ context.Context, studentID string) ([]*domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.Transaction, 0)
	for _, tx := range m.transactions {
		if tx.StudentID == studentID {
			clone := *tx
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (m *memStore) transactionCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.transactions)
}

// itemAdapter narrows memStore to the item repository interface.
type itemAdapter struct{ *memStore }

func (a itemAdapter) Get(ctx context.Context, id string) (*domain.Item, error) {
	return a.GetItem(ctx, id)
}

func (a itemAdapter) Save(ctx context.Context, item *domain.Item) error {
	return a.SaveItem(ctx, item)
}

func (a itemAdapter) List(ctx context.Context) ([]*domain.Item, error) {
	return a.ListItems(ctx)
}

// memCredentials is an in-memory credential store.
type memCredentials struct {
	mu      sync.Mutex
	byEmail map[string]*domain.Credential
}

func newMemCredentials() *memCredentials {
	return &memCredentials{byEmail: make(map[string]*domain.Credential)}
}

func (m *memCredentials) Create(_ context.Context, cred *domain.Credential) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.byEmail[cred.Email]; exists {
		return domain.ErrUserExists
	}
	clone := *cred
	m.byEmail[cred.Email] = &clone
	return nil
}

func (m *memCredentials) FindByEmail(_ context.Context, email string) (*domain.Credential, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cred, ok := m.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *cred
	return &clone, nil
}
