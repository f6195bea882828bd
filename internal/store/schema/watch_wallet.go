package schema

import (
	"time"
)

// WatchWallet represents the watch_wallets table - receiving wallets whose
// inbound transfers are scanned for order payments
type WatchWallet struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Address is the wallet account address on the ledger
	Address string `gorm:"column:address;not null;uniqueIndex;type:text"`
	// LastCheckedLT is the ingestion cursor: the logical time of the newest
	// transaction already ingested for this wallet
	LastCheckedLT uint64 `gorm:"column:last_checked_lt;not null;default:0"`
	// CreatedAt is when this wallet was registered for watching
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is when the cursor was last advanced
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the WatchWallet model
func (WatchWallet) TableName() string {
	return "watch_wallets"
}
