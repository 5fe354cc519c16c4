package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/asadbek201001/Ilmhub-Coin-system/internal/core/domain"
)

// Key namespaces in the record store. Every record is a JSON value under a
// prefixed key, enumerable with SCAN.
const (
	userPrefix        = "user:"
	itemPrefix        = "item:"
	transactionPrefix = "transaction:"

	// studentIndexKey is a hash mapping studentId -> user primary id, so
	// student lookup does not need a full prefix scan.
	studentIndexKey = "idx:student_id"

	scanBatch = 100
)

// RecordStore implements the user, item, and transaction repositories over a
// single Redis keyspace.
type RecordStore struct {
	client *redis.Client
}

func NewRecordStore(client *redis.Client) *RecordStore {
	return &RecordStore{client: client}
}

// --- users ---

func (s *RecordStore) Get(ctx context.Context, id string) (*domain.User, error) {
	raw, err := s.client.Get(ctx, userPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	var user domain.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("decode user %s: %w", id, err)
	}
	return &user, nil
}

// Save writes the user record and keeps the studentId index in sync. Both
// writes go through one pipeline so a crash between them cannot leave the
// index pointing at a missing record.
func (s *RecordStore) Save(ctx context.Context, user *domain.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user %s: %w", user.ID, err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, userPrefix+user.ID, raw, 0)
	if user.StudentID != "" {
		pipe.HSet(ctx, studentIndexKey, user.StudentID, user.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save user %s: %w", user.ID, err)
	}
	return nil
}

func (s *RecordStore) List(ctx context.Context) ([]*domain.User, error) {
	values, err := s.scanPrefix(ctx, userPrefix)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	users := make([]*domain.User, 0, len(values))
	for _, raw := range values {
		var user domain.User
		if err := json.Unmarshal(raw, &user); err != nil {
			return nil, fmt.Errorf("decode user record: %w", err)
		}
		users = append(users, &user)
	}
	return users, nil
}

func (s *RecordStore) FindByStudentID(ctx context.Context, studentID string) (*domain.User, error) {
	id, err := s.client.HGet(ctx, studentIndexKey, studentID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrStudentNotFound
		}
		return nil, fmt.Errorf("student index lookup: %w", err)
	}
	user, err := s.Get(ctx, id)
	if errors.Is(err, domain.ErrUserNotFound) {
		// stale index entry
		return nil, domain.ErrStudentNotFound
	}
	return user, err
}

// --- items ---

func (s *RecordStore) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	raw, err := s.client.Get(ctx, itemPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	var item domain.Item
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, fmt.Errorf("decode item %s: %w", id, err)
	}
	return &item, nil
}

func (s *RecordStore) SaveItem(ctx context.Context, item *domain.Item) error {
	raw, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("encode item %s: %w", item.ID, err)
	}
	if err := s.client.Set(ctx, itemPrefix+item.ID, raw, 0).Err(); err != nil {
		return fmt.Errorf("save item %s: %w", item.ID, err)
	}
	return nil
}

func (s *RecordStore) ListItems(ctx context.Context) ([]*domain.Item, error) {
	values, err := s.scanPrefix(ctx, itemPrefix)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	items := make([]*domain.Item, 0, len(values))
	for _, raw := range values {
		var item domain.Item
		if err := json.Unmarshal(raw, &item); err != nil {
			return nil, fmt.Errorf("decode item record: %w", err)
		}
		items = append(items, &item)
	}
	return items, nil
}

// ItemStore narrows RecordStore to the item repository interface. The user
// repository already claims the bare Get/Save/List method names.
type ItemStore struct {
	*RecordStore
}

func (s ItemStore) Get(ctx context.Context, id string) (*domain.Item, error) {
	return s.GetItem(ctx, id)
}

func (s ItemStore) Save(ctx context.Context, item *domain.Item) error {
	return s.SaveItem(ctx, item)
}

func (s ItemStore) List(ctx context.Context) ([]*domain.Item, error) {
	return s.ListItems(ctx)
}

// --- transactions ---

// Append writes a ledger entry with SETNX, so an id can never be written
// twice and existing entries can never be replaced.
func (s *RecordStore) Append(ctx context.Context, tx *domain.Transaction) error {
	raw, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("encode transaction %s: %w", tx.ID, err)
	}
	ok, err := s.client.SetNX(ctx, transactionPrefix+tx.ID, raw, 0).Result()
	if err != nil {
		return fmt.Errorf("append transaction %s: %w", tx.ID, err)
	}
	if !ok {
		return domain.ErrDuplicateTransaction
	}
	return nil
}

func (s *RecordStore) ListByStudent(ctx context.Context, studentID string) ([]*domain.Transaction, error) {
	values, err := s.scanPrefix(ctx, transactionPrefix)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	txs := make([]*domain.Transaction, 0)
	for _, raw := range values {
		var tx domain.Transaction
		if err := json.Unmarshal(raw, &tx); err != nil {
			return nil, fmt.Errorf("decode transaction record: %w", err)
		}
		if tx.StudentID == studentID {
			txs = append(txs, &tx)
		}
	}
	return txs, nil
}

// scanPrefix collects every value stored under the prefix using SCAN + MGET.
// Keys deleted between the scan and the fetch are skipped.
func (s *RecordStore) scanPrefix(ctx context.Context, prefix string) ([][]byte, error) {
	var keys []string
	iter := s.client.Scan(ctx, 0, prefix+"*", scanBatch).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", prefix, err)
	}
	if len(keys) == 0 {
		return nil, nil
	}

	values := make([][]byte, 0, len(keys))
	for start := 0; start < len(keys); start += scanBatch {
		end := start + scanBatch
		if end > len(keys) {
			end = len(keys)
		}
		batch, err := s.client.MGet(ctx, keys[start:end]...).Result()
		if err != nil {
			return nil, fmt.Errorf("mget %s: %w", prefix, err)
		}
		for _, v := range batch {
			str, ok := v.(string)
			if !ok {
				continue
			}
			values = append(values, []byte(str))
		}
	}
	return values, nil
}
