package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onton-live/nft-minter/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

var testTxSeq int

// buildTestTransaction creates a paid transaction input with a unique hash
func buildTestTransaction(lt uint64, orderID string) CreateTransactionInput {
	testTxSeq++
	return CreateTransactionInput{
		Hash:          fmt.Sprintf("hash-%d-%d", lt, testTxSeq),
		LogicalTime:   lt,
		SenderAddress: "EQBuyer0000000000000000000000000000000000000000",
		DeclaredValue: 1_500_000_000,
		ExpectedValue: 1_500_000_000,
		Type:          schema.TransactionTypePaid,
		Comment:       "order=" + orderID,
	}
}

func createTestCollection(t *testing.T, s Store, address string) *schema.NFTCollection {
	collection, err := s.CreateCollection(context.Background(), CreateCollectionInput{
		Address:      address,
		MetadataURL:  "https://cdn.example.com/" + address + ".json",
		ItemMetadata: []byte(`{"name":"Ticket","description":"Event ticket","image":"https://cdn.example.com/ticket.png"}`),
	})
	require.NoError(t, err)
	require.NotNil(t, collection)
	return collection
}

func createTestItem(t *testing.T, s Store, collectionID uint64, orderID string) *schema.NFTItem {
	ctx := context.Background()
	tx, err := s.CreateTransaction(ctx, buildTestTransaction(100, orderID))
	require.NoError(t, err)

	item, err := s.CreateNFTItem(ctx, CreateNFTItemInput{
		CollectionID:  collectionID,
		OwnerAddress:  "EQOwner0000000000000000000000000000000000000000",
		OrderID:       orderID,
		TransactionID: tx.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, item)
	return item
}

// =============================================================================
// Test: watch wallets
// =============================================================================

func testWatchWallets(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("create and list", func(t *testing.T) {
		wallet, err := s.CreateWatchWallet(ctx, "EQWallet1")
		require.NoError(t, err)
		require.NotZero(t, wallet.ID)
		assert.Equal(t, uint64(0), wallet.LastCheckedLT)

		_, err = s.CreateWatchWallet(ctx, "EQWallet2")
		require.NoError(t, err)

		wallets, err := s.ListWatchWallets(ctx)
		require.NoError(t, err)
		require.Len(t, wallets, 2)
		assert.Equal(t, "EQWallet1", wallets[0].Address)
		assert.Equal(t, "EQWallet2", wallets[1].Address)
	})

	t.Run("advance cursor", func(t *testing.T) {
		wallet, err := s.CreateWatchWallet(ctx, "EQWallet3")
		require.NoError(t, err)

		err = s.UpdateWalletCursor(ctx, wallet.ID, 123456)
		require.NoError(t, err)

		wallets, err := s.ListWatchWallets(ctx)
		require.NoError(t, err)
		for _, w := range wallets {
			if w.ID == wallet.ID {
				assert.Equal(t, uint64(123456), w.LastCheckedLT)
			}
		}
	})
}

// =============================================================================
// Test: transactions
// =============================================================================

func testTransactions(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("create and get by hash", func(t *testing.T) {
		input := buildTestTransaction(200, "order-a")
		tx, err := s.CreateTransaction(ctx, input)
		require.NoError(t, err)
		require.NotZero(t, tx.ID)

		got, err := s.GetTransactionByHash(ctx, input.Hash)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, tx.ID, got.ID)
		assert.Equal(t, input.LogicalTime, got.LogicalTime)
		assert.Equal(t, input.DeclaredValue, got.DeclaredValue)
		assert.Equal(t, schema.TransactionTypePaid, got.Type)
		assert.False(t, got.IsProcessed)
	})

	t.Run("get unknown hash returns nil", func(t *testing.T) {
		got, err := s.GetTransactionByHash(ctx, "no-such-hash")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("duplicate hash is a no-op", func(t *testing.T) {
		input := buildTestTransaction(201, "order-b")
		first, err := s.CreateTransaction(ctx, input)
		require.NoError(t, err)

		second, err := s.CreateTransaction(ctx, input)
		require.NoError(t, err)
		require.NotNil(t, second)
		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("list unprocessed in logical time order", func(t *testing.T) {
		late := buildTestTransaction(400, "order-late")
		early := buildTestTransaction(300, "order-early")

		_, err := s.CreateTransaction(ctx, late)
		require.NoError(t, err)
		_, err = s.CreateTransaction(ctx, early)
		require.NoError(t, err)

		failed := buildTestTransaction(350, "order-failed")
		failed.Type = schema.TransactionTypeFailed
		_, err = s.CreateTransaction(ctx, failed)
		require.NoError(t, err)

		transactions, err := s.ListUnprocessedTransactions(ctx)
		require.NoError(t, err)

		var lts []uint64
		for _, tx := range transactions {
			assert.Equal(t, schema.TransactionTypePaid, tx.Type)
			assert.False(t, tx.IsProcessed)
			lts = append(lts, tx.LogicalTime)
		}
		for i := 1; i < len(lts); i++ {
			assert.LessOrEqual(t, lts[i-1], lts[i])
		}
	})

	t.Run("mark processed removes from queue", func(t *testing.T) {
		tx, err := s.CreateTransaction(ctx, buildTestTransaction(500, "order-c"))
		require.NoError(t, err)

		err = s.MarkTransactionProcessed(ctx, tx.ID)
		require.NoError(t, err)

		transactions, err := s.ListUnprocessedTransactions(ctx)
		require.NoError(t, err)
		for _, got := range transactions {
			assert.NotEqual(t, tx.ID, got.ID)
		}
	})

	t.Run("mark failed records reason and processes", func(t *testing.T) {
		tx, err := s.CreateTransaction(ctx, buildTestTransaction(600, "order-d"))
		require.NoError(t, err)

		err = s.MarkTransactionFailed(ctx, tx.ID, "order not found")
		require.NoError(t, err)

		got, err := s.GetTransactionByHash(ctx, tx.Hash)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, schema.TransactionTypeFailed, got.Type)
		require.NotNil(t, got.FailedReason)
		assert.Equal(t, "order not found", *got.FailedReason)
		assert.True(t, got.IsProcessed)
	})
}

// =============================================================================
// Test: collections
// =============================================================================

func testCollections(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		collection := createTestCollection(t, s, "EQCollection1")

		byAddress, err := s.GetCollectionByAddress(ctx, collection.Address)
		require.NoError(t, err)
		require.NotNil(t, byAddress)
		assert.Equal(t, collection.ID, byAddress.ID)

		byID, err := s.GetCollectionByID(ctx, collection.ID)
		require.NoError(t, err)
		require.NotNil(t, byID)
		assert.Equal(t, collection.Address, byID.Address)
	})

	t.Run("unknown collection returns nil", func(t *testing.T) {
		got, err := s.GetCollectionByAddress(ctx, "EQUnknown")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("pending items filter", func(t *testing.T) {
		pending := createTestCollection(t, s, "EQCollectionPending")
		idle := createTestCollection(t, s, "EQCollectionIdle")

		createTestItem(t, s, pending.ID, "order-pending")

		collections, err := s.ListCollectionsWithPendingItems(ctx)
		require.NoError(t, err)

		var addresses []string
		for _, c := range collections {
			addresses = append(addresses, c.Address)
		}
		assert.Contains(t, addresses, pending.Address)
		assert.NotContains(t, addresses, idle.Address)
	})
}

// =============================================================================
// Test: nft items
// =============================================================================

func testNFTItems(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("lifecycle created to minted", func(t *testing.T) {
		collection := createTestCollection(t, s, "EQItemsLifecycle")
		item := createTestItem(t, s, collection.ID, "order-life")

		assert.Equal(t, schema.NFTItemStateCreated, item.State)
		assert.Nil(t, item.Index)

		err := s.MarkItemMintRequested(ctx, item.ID, 7)
		require.NoError(t, err)

		err = s.SetItemMetadataURL(ctx, item.ID, "https://cdn.example.com/meta/abc.json")
		require.NoError(t, err)

		pending, err := s.ListMintRequestItems(ctx)
		require.NoError(t, err)
		require.Len(t, pending, 1)
		require.NotNil(t, pending[0].Index)
		assert.Equal(t, int64(7), *pending[0].Index)
		require.NotNil(t, pending[0].MetadataURL)

		err = s.UpdateItemMinted(ctx, item.ID, "EQItemAddress1")
		require.NoError(t, err)

		got, err := s.GetItemByOrderID(ctx, "order-life")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, schema.NFTItemStateMinted, got.State)
		require.NotNil(t, got.Address)
		assert.Equal(t, "EQItemAddress1", *got.Address)

		pending, err = s.ListMintRequestItems(ctx)
		require.NoError(t, err)
		assert.Empty(t, pending)
	})

	t.Run("failure path", func(t *testing.T) {
		collection := createTestCollection(t, s, "EQItemsFailure")
		item := createTestItem(t, s, collection.ID, "order-fail")

		err := s.IncrementItemTryCount(ctx, item.ID)
		require.NoError(t, err)
		err = s.IncrementItemTryCount(ctx, item.ID)
		require.NoError(t, err)

		got, err := s.GetItemByOrderID(ctx, "order-fail")
		require.NoError(t, err)
		assert.Equal(t, 2, got.TryCount)

		err = s.UpdateItemFailed(ctx, item.ID, "not found after 10 attempts")
		require.NoError(t, err)

		got, err = s.GetItemByOrderID(ctx, "order-fail")
		require.NoError(t, err)
		assert.Equal(t, schema.NFTItemStateFailed, got.State)
		require.NotNil(t, got.FailReason)
		assert.Equal(t, "not found after 10 attempts", *got.FailReason)
	})

	t.Run("list and count by state", func(t *testing.T) {
		collection := createTestCollection(t, s, "EQItemsByState")
		first := createTestItem(t, s, collection.ID, "order-s1")
		createTestItem(t, s, collection.ID, "order-s2")

		items, err := s.ListItemsByState(ctx, collection.ID, schema.NFTItemStateCreated)
		require.NoError(t, err)
		assert.Len(t, items, 2)
		assert.Equal(t, first.ID, items[0].ID)

		count, err := s.CountItemsByState(ctx, collection.ID, schema.NFTItemStateCreated)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)

		count, err = s.CountItemsByState(ctx, collection.ID, schema.NFTItemStateMintRequest)
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})

	t.Run("paged listing", func(t *testing.T) {
		collection := createTestCollection(t, s, "EQItemsPaged")
		for i := range 5 {
			createTestItem(t, s, collection.ID, fmt.Sprintf("order-p%d", i))
		}

		items, total, err := s.ListCollectionItems(ctx, collection.ID, 2, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(5), total)
		assert.Len(t, items, 2)

		items, total, err = s.ListCollectionItems(ctx, collection.ID, 2, 4)
		require.NoError(t, err)
		assert.Equal(t, int64(5), total)
		assert.Len(t, items, 1)
	})

	t.Run("requeue clears mint progress", func(t *testing.T) {
		collection := createTestCollection(t, s, "EQItemsRequeue")
		item := createTestItem(t, s, collection.ID, "order-requeue")

		err := s.MarkItemMintRequested(ctx, item.ID, 3)
		require.NoError(t, err)
		err = s.UpdateItemMinted(ctx, item.ID, "EQDupAddress")
		require.NoError(t, err)

		err = s.RequeueForMint(ctx, item.ID)
		require.NoError(t, err)

		got, err := s.GetItemByOrderID(ctx, "order-requeue")
		require.NoError(t, err)
		assert.Equal(t, schema.NFTItemStateCreated, got.State)
		assert.Nil(t, got.Index)
		assert.Nil(t, got.Address)
		assert.Equal(t, 0, got.TryCount)
	})
}

// =============================================================================
// Test: reconciliation queries
// =============================================================================

func testReconciliationQueries(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("minted before cutoff", func(t *testing.T) {
		collection := createTestCollection(t, s, "EQReconcile")
		item := createTestItem(t, s, collection.ID, "order-old")

		err := s.MarkItemMintRequested(ctx, item.ID, 1)
		require.NoError(t, err)
		err = s.UpdateItemMinted(ctx, item.ID, "EQOldItem")
		require.NoError(t, err)

		// The item was just updated, so a past cutoff excludes it
		items, err := s.ListMintedItemsBefore(ctx, time.Now().Add(-time.Hour))
		require.NoError(t, err)
		assert.Empty(t, items)

		items, err = s.ListMintedItemsBefore(ctx, time.Now().Add(time.Hour))
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, item.ID, items[0].ID)
	})

	t.Run("owner correction", func(t *testing.T) {
		collection := createTestCollection(t, s, "EQReconcileOwner")
		item := createTestItem(t, s, collection.ID, "order-owner")

		err := s.UpdateItemOwner(ctx, item.ID, "EQNewOwner")
		require.NoError(t, err)

		got, err := s.GetItemByOrderID(ctx, "order-owner")
		require.NoError(t, err)
		assert.Equal(t, "EQNewOwner", got.OwnerAddress)
	})
}

// =============================================================================
// Test: atomic units
// =============================================================================

func testAtomic(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("commit applies all writes", func(t *testing.T) {
		collection := createTestCollection(t, s, "EQAtomicCommit")
		tx, err := s.CreateTransaction(ctx, buildTestTransaction(700, "order-atomic"))
		require.NoError(t, err)

		err = s.Atomic(ctx, func(txStore Store) error {
			if err := txStore.MarkTransactionProcessed(ctx, tx.ID); err != nil {
				return err
			}
			_, err := txStore.CreateNFTItem(ctx, CreateNFTItemInput{
				CollectionID:  collection.ID,
				OwnerAddress:  "EQAtomicOwner",
				OrderID:       "order-atomic",
				TransactionID: tx.ID,
			})
			return err
		})
		require.NoError(t, err)

		got, err := s.GetTransactionByHash(ctx, tx.Hash)
		require.NoError(t, err)
		assert.True(t, got.IsProcessed)

		item, err := s.GetItemByOrderID(ctx, "order-atomic")
		require.NoError(t, err)
		require.NotNil(t, item)
	})

	t.Run("error rolls back all writes", func(t *testing.T) {
		collection := createTestCollection(t, s, "EQAtomicRollback")
		tx, err := s.CreateTransaction(ctx, buildTestTransaction(701, "order-rollback"))
		require.NoError(t, err)

		err = s.Atomic(ctx, func(txStore Store) error {
			if err := txStore.MarkTransactionProcessed(ctx, tx.ID); err != nil {
				return err
			}
			if _, err := txStore.CreateNFTItem(ctx, CreateNFTItemInput{
				CollectionID:  collection.ID,
				OwnerAddress:  "EQAtomicOwner",
				OrderID:       "order-rollback",
				TransactionID: tx.ID,
			}); err != nil {
				return err
			}
			return fmt.Errorf("boom")
		})
		require.Error(t, err)

		got, err := s.GetTransactionByHash(ctx, tx.Hash)
		require.NoError(t, err)
		assert.False(t, got.IsProcessed)

		item, err := s.GetItemByOrderID(ctx, "order-rollback")
		require.NoError(t, err)
		assert.Nil(t, item)
	})
}

// RunStoreTests runs the full store test suite against an implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"WatchWallets", testWatchWallets},
		{"Transactions", testTransactions},
		{"Collections", testCollections},
		{"NFTItems", testNFTItems},
		{"ReconciliationQueries", testReconciliationQueries},
		{"Atomic", testAtomic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, s)
		})
	}
}
