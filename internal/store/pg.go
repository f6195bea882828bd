package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/onton-live/nft-minter/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// CreateWatchWallet registers a wallet for payment watching
func (s *pgStore) CreateWatchWallet(ctx context.Context, address string) (*schema.WatchWallet, error) {
	wallet := schema.WatchWallet{Address: address}
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "address"}},
		DoNothing: true,
	}).Create(&wallet).Error; err != nil {
		return nil, fmt.Errorf("failed to create watch wallet: %w", err)
	}

	// Conflict leaves the ID unset; fetch the existing row
	if wallet.ID == 0 {
		if err := s.db.WithContext(ctx).Where("address = ?", address).First(&wallet).Error; err != nil {
			return nil, fmt.Errorf("failed to fetch watch wallet: %w", err)
		}
	}

	return &wallet, nil
}

// ListWatchWallets retrieves all wallets registered for payment watching
func (s *pgStore) ListWatchWallets(ctx context.Context) ([]schema.WatchWallet, error) {
	var wallets []schema.WatchWallet
	if err := s.db.WithContext(ctx).Order("id").Find(&wallets).Error; err != nil {
		return nil, fmt.Errorf("failed to list watch wallets: %w", err)
	}
	return wallets, nil
}

// UpdateWalletCursor advances a wallet's ingestion cursor
func (s *pgStore) UpdateWalletCursor(ctx context.Context, walletID uint64, lastCheckedLT uint64) error {
	if err := s.db.WithContext(ctx).
		Model(&schema.WatchWallet{}).
		Where("id = ?", walletID).
		Update("last_checked_lt", lastCheckedLT).Error; err != nil {
		return fmt.Errorf("failed to update wallet cursor: %w", err)
	}
	return nil
}

// GetTransactionByHash retrieves an ingested transaction by its ledger hash
func (s *pgStore) GetTransactionByHash(ctx context.Context, hash string) (*schema.Transaction, error) {
	var transaction schema.Transaction
	if err := s.db.WithContext(ctx).Where("hash = ?", hash).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get transaction by hash: %w", err)
	}
	return &transaction, nil
}

// CreateTransaction records a validated inbound transfer. Inserting the same
// hash twice is a no-op and returns the existing row.
func (s *pgStore) CreateTransaction(ctx context.Context, input CreateTransactionInput) (*schema.Transaction, error) {
	transaction := schema.Transaction{
		Hash:          input.Hash,
		LogicalTime:   input.LogicalTime,
		SenderAddress: input.SenderAddress,
		DeclaredValue: input.DeclaredValue,
		ExpectedValue: input.ExpectedValue,
		Type:          input.Type,
		Comment:       input.Comment,
		FailedReason:  input.FailedReason,
		// Rejected payments are terminal; only paid rows queue for materialization
		IsProcessed: input.Type == schema.TransactionTypeFailed,
	}

	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "hash"}},
		DoNothing: true,
	}).Create(&transaction).Error; err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	// Conflict leaves the ID unset; fetch the existing row
	if transaction.ID == 0 {
		return s.GetTransactionByHash(ctx, input.Hash)
	}

	return &transaction, nil
}

// ListUnprocessedTransactions retrieves paid transactions awaiting materialization
func (s *pgStore) ListUnprocessedTransactions(ctx context.Context) ([]schema.Transaction, error) {
	var transactions []schema.Transaction
	if err := s.db.WithContext(ctx).
		Where("type = ? AND is_processed = ?", schema.TransactionTypePaid, false).
		Order("logical_time").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to list unprocessed transactions: %w", err)
	}
	return transactions, nil
}

// MarkTransactionProcessed marks a transaction as consumed by the materializer
func (s *pgStore) MarkTransactionProcessed(ctx context.Context, transactionID uint64) error {
	if err := s.db.WithContext(ctx).
		Model(&schema.Transaction{}).
		Where("id = ?", transactionID).
		Update("is_processed", true).Error; err != nil {
		return fmt.Errorf("failed to mark transaction processed: %w", err)
	}
	return nil
}

// MarkTransactionFailed reclassifies a transaction as failed with a reason
// and marks it processed so it is not revisited
func (s *pgStore) MarkTransactionFailed(ctx context.Context, transactionID uint64, reason string) error {
	if err := s.db.WithContext(ctx).
		Model(&schema.Transaction{}).
		Where("id = ?", transactionID).
		Updates(map[string]interface{}{
			"type":          schema.TransactionTypeFailed,
			"failed_reason": reason,
			"is_processed":  true,
		}).Error; err != nil {
		return fmt.Errorf("failed to mark transaction failed: %w", err)
	}
	return nil
}

// CreateCollection registers a deployed collection contract
func (s *pgStore) CreateCollection(ctx context.Context, input CreateCollectionInput) (*schema.NFTCollection, error) {
	collection := schema.NFTCollection{
		Address:      input.Address,
		MetadataURL:  input.MetadataURL,
		ItemMetadata: input.ItemMetadata,
	}
	if err := s.db.WithContext(ctx).Create(&collection).Error; err != nil {
		return nil, fmt.Errorf("failed to create collection: %w", err)
	}
	return &collection, nil
}

// GetCollectionByAddress retrieves a collection by its contract address
func (s *pgStore) GetCollectionByAddress(ctx context.Context, address string) (*schema.NFTCollection, error) {
	var collection schema.NFTCollection
	if err := s.db.WithContext(ctx).Where("address = ?", address).First(&collection).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get collection by address: %w", err)
	}
	return &collection, nil
}

// GetCollectionByID retrieves a collection by its internal ID
func (s *pgStore) GetCollectionByID(ctx context.Context, collectionID uint64) (*schema.NFTCollection, error) {
	var collection schema.NFTCollection
	if err := s.db.WithContext(ctx).Where("id = ?", collectionID).First(&collection).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get collection by id: %w", err)
	}
	return &collection, nil
}

// ListCollections retrieves all registered collections
func (s *pgStore) ListCollections(ctx context.Context) ([]schema.NFTCollection, error) {
	var collections []schema.NFTCollection
	if err := s.db.WithContext(ctx).Order("id").Find(&collections).Error; err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return collections, nil
}

// ListCollectionsWithPendingItems retrieves collections that have items in
// the created state, ready for dispatch
func (s *pgStore) ListCollectionsWithPendingItems(ctx context.Context) ([]schema.NFTCollection, error) {
	var collections []schema.NFTCollection
	if err := s.db.WithContext(ctx).
		Distinct("nft_collections.*").
		Joins("JOIN nft_items ON nft_items.collection_id = nft_collections.id").
		Where("nft_items.state = ?", schema.NFTItemStateCreated).
		Order("nft_collections.id").
		Find(&collections).Error; err != nil {
		return nil, fmt.Errorf("failed to list collections with pending items: %w", err)
	}
	return collections, nil
}

// CreateNFTItem materializes a new item in the created state
func (s *pgStore) CreateNFTItem(ctx context.Context, input CreateNFTItemInput) (*schema.NFTItem, error) {
	item := schema.NFTItem{
		CollectionID:  input.CollectionID,
		OwnerAddress:  input.OwnerAddress,
		OrderID:       input.OrderID,
		TransactionID: &input.TransactionID,
		State:         schema.NFTItemStateCreated,
	}

	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to create nft item: %w", err)
	}

	return &item, nil
}

// ListItemsByState retrieves items of a collection in a given state, ordered by creation
func (s *pgStore) ListItemsByState(ctx context.Context, collectionID uint64, state schema.NFTItemState) ([]schema.NFTItem, error) {
	var items []schema.NFTItem
	if err := s.db.WithContext(ctx).
		Where("collection_id = ? AND state = ?", collectionID, state).
		Order("id").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list items by state: %w", err)
	}
	return items, nil
}

// CountItemsByState counts a collection's items in a given state
func (s *pgStore) CountItemsByState(ctx context.Context, collectionID uint64, state schema.NFTItemState) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).
		Model(&schema.NFTItem{}).
		Where("collection_id = ? AND state = ?", collectionID, state).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count items by state: %w", err)
	}
	return count, nil
}

// ListMintRequestItems retrieves all items awaiting on-chain confirmation
func (s *pgStore) ListMintRequestItems(ctx context.Context) ([]schema.NFTItem, error) {
	var items []schema.NFTItem
	if err := s.db.WithContext(ctx).
		Where("state = ?", schema.NFTItemStateMintRequest).
		Order("id").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list mint request items: %w", err)
	}
	return items, nil
}

// ListCollectionItems retrieves a page of a collection's items
func (s *pgStore) ListCollectionItems(ctx context.Context, collectionID uint64, limit int, offset int) ([]schema.NFTItem, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).
		Model(&schema.NFTItem{}).
		Where("collection_id = ?", collectionID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count collection items: %w", err)
	}

	var items []schema.NFTItem
	if err := s.db.WithContext(ctx).
		Where("collection_id = ?", collectionID).
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&items).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list collection items: %w", err)
	}

	return items, total, nil
}

// GetItemByOrderID retrieves the item fulfilling an order
func (s *pgStore) GetItemByOrderID(ctx context.Context, orderID string) (*schema.NFTItem, error) {
	var item schema.NFTItem
	if err := s.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id DESC").
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get item by order id: %w", err)
	}
	return &item, nil
}

// MarkItemMintRequested assigns an on-chain index and moves the item to the
// mint_request state
func (s *pgStore) MarkItemMintRequested(ctx context.Context, itemID uint64, index int64) error {
	if err := s.db.WithContext(ctx).
		Model(&schema.NFTItem{}).
		Where("id = ?", itemID).
		Updates(map[string]interface{}{
			"index": index,
			"state": schema.NFTItemStateMintRequest,
		}).Error; err != nil {
		return fmt.Errorf("failed to mark item mint requested: %w", err)
	}
	return nil
}

// SetItemMetadataURL records the published metadata location of an item
func (s *pgStore) SetItemMetadataURL(ctx context.Context, itemID uint64, metadataURL string) error {
	if err := s.db.WithContext(ctx).
		Model(&schema.NFTItem{}).
		Where("id = ?", itemID).
		Update("metadata_url", metadataURL).Error; err != nil {
		return fmt.Errorf("failed to set item metadata url: %w", err)
	}
	return nil
}

// UpdateItemMinted records on-chain confirmation of an item
func (s *pgStore) UpdateItemMinted(ctx context.Context, itemID uint64, address string) error {
	if err := s.db.WithContext(ctx).
		Model(&schema.NFTItem{}).
		Where("id = ?", itemID).
		Updates(map[string]interface{}{
			"state":   schema.NFTItemStateMinted,
			"address": address,
		}).Error; err != nil {
		return fmt.Errorf("failed to update item minted: %w", err)
	}
	return nil
}

// UpdateItemFailed abandons an item with a reason
func (s *pgStore) UpdateItemFailed(ctx context.Context, itemID uint64, reason string) error {
	if err := s.db.WithContext(ctx).
		Model(&schema.NFTItem{}).
		Where("id = ?", itemID).
		Updates(map[string]interface{}{
			"state":       schema.NFTItemStateFailed,
			"fail_reason": reason,
		}).Error; err != nil {
		return fmt.Errorf("failed to update item failed: %w", err)
	}
	return nil
}

// IncrementItemTryCount bumps an item's confirmation attempt counter
func (s *pgStore) IncrementItemTryCount(ctx context.Context, itemID uint64) error {
	if err := s.db.WithContext(ctx).
		Model(&schema.NFTItem{}).
		Where("id = ?", itemID).
		Update("try_count", gorm.Expr("try_count + 1")).Error; err != nil {
		return fmt.Errorf("failed to increment item try count: %w", err)
	}
	return nil
}

// ListMintedItemsBefore retrieves minted items whose last update is older
// than the cutoff, ordered by collection and index
func (s *pgStore) ListMintedItemsBefore(ctx context.Context, cutoff time.Time) ([]schema.NFTItem, error) {
	var items []schema.NFTItem
	if err := s.db.WithContext(ctx).
		Where("state = ? AND updated_at < ?", schema.NFTItemStateMinted, cutoff).
		Order("collection_id, index, id").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list minted items before cutoff: %w", err)
	}
	return items, nil
}

// UpdateItemOwner corrects an item's recorded owner
func (s *pgStore) UpdateItemOwner(ctx context.Context, itemID uint64, ownerAddress string) error {
	if err := s.db.WithContext(ctx).
		Model(&schema.NFTItem{}).
		Where("id = ?", itemID).
		Update("owner_address", ownerAddress).Error; err != nil {
		return fmt.Errorf("failed to update item owner: %w", err)
	}
	return nil
}

// RequeueForMint sends an item back to the created state with its index
// cleared so the dispatcher assigns a fresh one
func (s *pgStore) RequeueForMint(ctx context.Context, itemID uint64) error {
	if err := s.db.WithContext(ctx).
		Model(&schema.NFTItem{}).
		Where("id = ?", itemID).
		Updates(map[string]interface{}{
			"state":       schema.NFTItemStateCreated,
			"index":       nil,
			"address":     nil,
			"try_count":   0,
			"fail_reason": nil,
		}).Error; err != nil {
		return fmt.Errorf("failed to requeue item for mint: %w", err)
	}
	return nil
}

// Atomic runs fn inside a single database transaction
func (s *pgStore) Atomic(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&pgStore{db: tx})
	})
}
