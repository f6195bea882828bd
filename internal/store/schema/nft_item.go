package schema

import (
	"time"
)

// NFTItemState tracks an item's progress through the minting pipeline
type NFTItemState string

const (
	// NFTItemStateCreated means the item is materialized but not yet submitted
	NFTItemStateCreated NFTItemState = "created"
	// NFTItemStateMintRequest means a mint was submitted and awaits confirmation
	NFTItemStateMintRequest NFTItemState = "mint_request"
	// NFTItemStateMinted means the item is confirmed on-chain
	NFTItemStateMinted NFTItemState = "minted"
	// NFTItemStateFailed means minting was abandoned
	NFTItemStateFailed NFTItemState = "failed"
)

// NFTItem represents the nft_items table - one row per NFT to be minted for
// a paid order
type NFTItem struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// CollectionID references the collection the item belongs to
	CollectionID uint64 `gorm:"column:collection_id;not null;index;index:idx_nft_items_collection_index,priority:1"`
	// OwnerAddress is the buyer's wallet that will own the minted NFT
	OwnerAddress string `gorm:"column:owner_address;not null;type:text"`
	// OrderID is the off-chain order this item fulfils
	OrderID string `gorm:"column:order_id;not null;index;type:text"`
	// TransactionID references the payment transaction that produced the item
	TransactionID *uint64 `gorm:"column:transaction_id"`
	// Index is the on-chain item index within the collection, assigned at
	// dispatch time; nil until then
	Index *int64 `gorm:"column:index;index:idx_nft_items_collection_index,priority:2"`
	// Address is the item contract address once observed on-chain
	Address *string `gorm:"column:address;type:text"`
	// MetadataURL is the published item metadata location
	MetadataURL *string `gorm:"column:metadata_url;type:text"`
	// State is the item's pipeline state
	State NFTItemState `gorm:"column:state;not null;default:'created';type:text;index"`
	// TryCount counts confirmation poll attempts that found no on-chain item
	TryCount int `gorm:"column:try_count;not null;default:0"`
	// FailReason explains a failed state
	FailReason *string `gorm:"column:fail_reason;type:text"`
	// CreatedAt is when the item was materialized
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is when the item last changed state
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the NFTItem model
func (NFTItem) TableName() string {
	return "nft_items"
}
