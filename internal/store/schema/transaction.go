package schema

import (
	"time"
)

// TransactionType classifies an ingested payment transaction
type TransactionType string

const (
	// TransactionTypePaid marks a payment accepted for order fulfilment
	TransactionTypePaid TransactionType = "paid"
	// TransactionTypeFailed marks a payment rejected during validation
	TransactionTypeFailed TransactionType = "failed"
)

// Transaction represents the transactions table - inbound ledger transfers
// recorded by the watcher
type Transaction struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Hash is the ledger transaction hash; uniqueness makes ingestion idempotent
	Hash string `gorm:"column:hash;not null;uniqueIndex;type:text"`
	// LogicalTime is the ledger ordering key of the transaction
	LogicalTime uint64 `gorm:"column:logical_time;not null"`
	// SenderAddress is the payer's wallet address
	SenderAddress string `gorm:"column:sender_address;not null;type:text"`
	// DeclaredValue is the amount actually transferred, in nanotons
	DeclaredValue uint64 `gorm:"column:declared_value;not null"`
	// ExpectedValue is the order's price at validation time, in nanotons
	ExpectedValue uint64 `gorm:"column:expected_value;not null;default:0"`
	// Type records the validation outcome (paid or failed)
	Type TransactionType `gorm:"column:type;not null;type:text"`
	// Comment is the raw transfer comment carrying the order reference
	Comment string `gorm:"column:comment;not null;default:'';type:text"`
	// FailedReason explains a failed classification
	FailedReason *string `gorm:"column:failed_reason;type:text"`
	// IsProcessed indicates the materializer has consumed this transaction
	IsProcessed bool `gorm:"column:is_processed;not null;default:false;index"`
	// CreatedAt is when the transaction was ingested
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}
