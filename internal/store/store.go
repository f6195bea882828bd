package store

import (
	"context"
	"time"

	"github.com/onton-live/nft-minter/internal/store/schema"
)

// CreateTransactionInput carries a validated inbound transfer for ingestion
type CreateTransactionInput struct {
	Hash          string
	LogicalTime   uint64
	SenderAddress string
	DeclaredValue uint64
	ExpectedValue uint64
	Type          schema.TransactionType
	Comment       string
	FailedReason  *string
}

// CreateNFTItemInput carries a new item materialized from a paid transaction
type CreateNFTItemInput struct {
	CollectionID  uint64
	OwnerAddress  string
	OrderID       string
	TransactionID uint64
}

// CreateCollectionInput carries a new collection registration
type CreateCollectionInput struct {
	Address      string
	MetadataURL  string
	ItemMetadata []byte
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// CreateWatchWallet registers a wallet for payment watching
	CreateWatchWallet(ctx context.Context, address string) (*schema.WatchWallet, error)
	// ListWatchWallets retrieves all wallets registered for payment watching
	ListWatchWallets(ctx context.Context) ([]schema.WatchWallet, error)
	// UpdateWalletCursor advances a wallet's ingestion cursor
	UpdateWalletCursor(ctx context.Context, walletID uint64, lastCheckedLT uint64) error

	// GetTransactionByHash retrieves an ingested transaction by its ledger hash
	GetTransactionByHash(ctx context.Context, hash string) (*schema.Transaction, error)
	// CreateTransaction records a validated inbound transfer
	CreateTransaction(ctx context.Context, input CreateTransactionInput) (*schema.Transaction, error)
	// ListUnprocessedTransactions retrieves paid transactions awaiting materialization
	ListUnprocessedTransactions(ctx context.Context) ([]schema.Transaction, error)
	// MarkTransactionProcessed marks a transaction as consumed by the materializer
	MarkTransactionProcessed(ctx context.Context, transactionID uint64) error
	// MarkTransactionFailed reclassifies a transaction as failed with a reason
	// and marks it processed so it is not revisited
	MarkTransactionFailed(ctx context.Context, transactionID uint64, reason string) error

	// CreateCollection registers a deployed collection contract
	CreateCollection(ctx context.Context, input CreateCollectionInput) (*schema.NFTCollection, error)
	// GetCollectionByAddress retrieves a collection by its contract address
	GetCollectionByAddress(ctx context.Context, address string) (*schema.NFTCollection, error)
	// GetCollectionByID retrieves a collection by its internal ID
	GetCollectionByID(ctx context.Context, collectionID uint64) (*schema.NFTCollection, error)
	// ListCollections retrieves all registered collections
	ListCollections(ctx context.Context) ([]schema.NFTCollection, error)
	// ListCollectionsWithPendingItems retrieves collections that have items in
	// the created state, ready for dispatch
	ListCollectionsWithPendingItems(ctx context.Context) ([]schema.NFTCollection, error)

	// CreateNFTItem materializes a new item in the created state
	CreateNFTItem(ctx context.Context, input CreateNFTItemInput) (*schema.NFTItem, error)
	// ListItemsByState retrieves items of a collection in a given state,
	// ordered by creation
	ListItemsByState(ctx context.Context, collectionID uint64, state schema.NFTItemState) ([]schema.NFTItem, error)
	// CountItemsByState counts a collection's items in a given state
	CountItemsByState(ctx context.Context, collectionID uint64, state schema.NFTItemState) (int64, error)
	// ListMintRequestItems retrieves all items awaiting on-chain confirmation
	ListMintRequestItems(ctx context.Context) ([]schema.NFTItem, error)
	// ListCollectionItems retrieves a page of a collection's items
	ListCollectionItems(ctx context.Context, collectionID uint64, limit int, offset int) ([]schema.NFTItem, int64, error)
	// GetItemByOrderID retrieves the item fulfilling an order
	GetItemByOrderID(ctx context.Context, orderID string) (*schema.NFTItem, error)
	// MarkItemMintRequested assigns an on-chain index and moves the item to
	// the mint_request state
	MarkItemMintRequested(ctx context.Context, itemID uint64, index int64) error
	// SetItemMetadataURL records the published metadata location of an item
	SetItemMetadataURL(ctx context.Context, itemID uint64, metadataURL string) error
	// UpdateItemMinted records on-chain confirmation of an item
	UpdateItemMinted(ctx context.Context, itemID uint64, address string) error
	// UpdateItemFailed abandons an item with a reason
	UpdateItemFailed(ctx context.Context, itemID uint64, reason string) error
	// IncrementItemTryCount bumps an item's confirmation attempt counter
	IncrementItemTryCount(ctx context.Context, itemID uint64) error

	// ListMintedItemsBefore retrieves minted items whose last update is older
	// than the cutoff, ordered by collection and index
	ListMintedItemsBefore(ctx context.Context, cutoff time.Time) ([]schema.NFTItem, error)
	// UpdateItemOwner corrects an item's recorded owner
	UpdateItemOwner(ctx context.Context, itemID uint64, ownerAddress string) error
	// RequeueForMint sends an item back to the created state with its index
	// cleared so the dispatcher assigns a fresh one
	RequeueForMint(ctx context.Context, itemID uint64) error

	// Atomic runs fn inside a single database transaction. The Store passed to
	// fn executes against that transaction; returning an error rolls it back.
	Atomic(ctx context.Context, fn func(Store) error) error
}
