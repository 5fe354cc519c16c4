package domain

import "time"

// TransactionType distinguishes ledger entry kinds.
type TransactionType string

const (
	// TransactionReceived records a teacher grant; Amount is positive.
	TransactionReceived TransactionType = "received"
	// TransactionPurchase records an item purchase; Amount is negative.
	TransactionPurchase TransactionType = "purchase"
)

// Transaction is an immutable, append-only ledger entry. StudentID is the
// student's 10-digit identifier, not the user record's primary key. The sum
// of a student's transaction amounts always reconciles to their coin balance.
type Transaction struct {
	ID        string          `json:"id"`
	StudentID string          `json:"studentId"`
	TeacherID string          `json:"teacherId,omitempty"`
	ItemID    string          `json:"itemId,omitempty"`
	ItemName  string          `json:"itemName,omitempty"`
	Type      TransactionType `json:"type"`
	Amount    int             `json:"amount"`
	Reason    string          `json:"reason,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}
