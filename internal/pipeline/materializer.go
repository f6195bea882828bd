package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/onton-live/nft-minter/internal/domain"
	"github.com/onton-live/nft-minter/internal/logger"
	"github.com/onton-live/nft-minter/internal/providers/orders"
	"github.com/onton-live/nft-minter/internal/store"
	"github.com/onton-live/nft-minter/internal/store/schema"
)

// Materializer turns accepted payments into items awaiting mint. Each
// transaction is consumed inside one transactional unit so a partial failure
// can never leave it marked processed without its item, or vice versa.
type Materializer struct {
	store  store.Store
	orders orders.Client
}

// NewMaterializer creates the order materialization stage
func NewMaterializer(st store.Store, ordersClient orders.Client) *Materializer {
	return &Materializer{
		store:  st,
		orders: ordersClient,
	}
}

// Name returns the stage name
func (m *Materializer) Name() string {
	return "order-materializer"
}

// Run materializes all unprocessed paid transactions. Terminal failures mark
// the transaction failed; transient ones leave it queued for the next run.
func (m *Materializer) Run(ctx context.Context) error {
	transactions, err := m.store.ListUnprocessedTransactions(ctx)
	if err != nil {
		return fmt.Errorf("failed to list unprocessed transactions: %w", err)
	}

	for _, tx := range transactions {
		if err := m.materialize(ctx, tx); err != nil {
			logger.ErrorCtx(ctx, err,
				zap.Uint64("transaction_id", tx.ID),
				zap.String("hash", tx.Hash))

			if domain.IsTerminal(err) {
				if markErr := m.store.MarkTransactionFailed(ctx, tx.ID, err.Error()); markErr != nil {
					logger.ErrorCtx(ctx, markErr, zap.Uint64("transaction_id", tx.ID))
				}
			}
		}
	}

	return nil
}

// materialize consumes one paid transaction: marks it processed, creates the
// item, and patches the order, all in one transactional unit
func (m *Materializer) materialize(ctx context.Context, tx schema.Transaction) error {
	orderID, err := domain.ParseOrderComment(tx.Comment)
	if err != nil {
		return fmt.Errorf("transaction %d carries no order reference: %w", tx.ID, err)
	}

	return m.store.Atomic(ctx, func(s store.Store) error {
		if err := s.MarkTransactionProcessed(ctx, tx.ID); err != nil {
			return fmt.Errorf("failed to mark transaction %d processed: %w", tx.ID, err)
		}

		// Re-fetch so a state change since ingestion is observed
		order, err := m.orders.GetOrder(ctx, orderID)
		if err != nil {
			return fmt.Errorf("failed to re-fetch order %s: %w", orderID, err)
		}

		collection, err := s.GetCollectionByAddress(ctx, order.NFTCollectionAddress)
		if err != nil {
			return fmt.Errorf("failed to resolve collection %s: %w", order.NFTCollectionAddress, err)
		}
		if collection == nil {
			return fmt.Errorf("collection %s: %w", order.NFTCollectionAddress, domain.ErrCollectionNotFound)
		}

		item, err := s.CreateNFTItem(ctx, store.CreateNFTItemInput{
			CollectionID:  collection.ID,
			OwnerAddress:  tx.SenderAddress,
			OrderID:       orderID,
			TransactionID: tx.ID,
		})
		if err != nil {
			return fmt.Errorf("failed to create item for order %s: %w", orderID, err)
		}

		if err := m.orders.UpdateOrder(ctx, orderID, domain.OrderPatch{
			State:         domain.OrderStateMintRequest,
			TransactionID: &tx.ID,
		}); err != nil {
			return fmt.Errorf("failed to patch order %s to mint_request: %w", orderID, err)
		}

		logger.InfoCtx(ctx, "order materialized",
			zap.String("order_id", orderID),
			zap.Uint64("item_id", item.ID),
			zap.Uint64("collection_id", collection.ID))

		return nil
	})
}
