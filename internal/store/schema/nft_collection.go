package schema

import (
	"time"

	"gorm.io/datatypes"
)

// NFTCollection represents the nft_collections table - deployed NFT
// collection contracts that items are minted into
type NFTCollection struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Address is the collection contract address on the ledger
	Address string `gorm:"column:address;not null;uniqueIndex;type:text"`
	// MetadataURL is the published collection-level metadata location
	MetadataURL string `gorm:"column:metadata_url;not null;default:'';type:text"`
	// ItemMetadata is the JSON template for per-item metadata (name,
	// description, image) that the dispatcher publishes for each mint
	ItemMetadata datatypes.JSON `gorm:"column:item_metadata;type:jsonb"`
	// CreatedAt is when the collection was registered
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`

	// Associations
	Items []NFTItem `gorm:"foreignKey:CollectionID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the NFTCollection model
func (NFTCollection) TableName() string {
	return "nft_collections"
}
