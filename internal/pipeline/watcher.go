package pipeline

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/onton-live/nft-minter/internal/domain"
	"github.com/onton-live/nft-minter/internal/logger"
	"github.com/onton-live/nft-minter/internal/providers/orders"
	"github.com/onton-live/nft-minter/internal/providers/toncenter"
	"github.com/onton-live/nft-minter/internal/store"
	"github.com/onton-live/nft-minter/internal/store/schema"
)

const (
	reasonOrderNotFound     = "order not found"
	reasonAlreadyProcessed  = "already processed"
	reasonInsufficientValue = "insufficient value"
)

// Watcher ingests inbound payments for every watched wallet. It classifies
// each transfer against its order and records the outcome; accepted payments
// queue for materialization.
type Watcher struct {
	store  store.Store
	ledger toncenter.Client
	orders orders.Client
}

// NewWatcher creates the payment ingestion stage
func NewWatcher(st store.Store, ledger toncenter.Client, ordersClient orders.Client) *Watcher {
	return &Watcher{
		store:  st,
		ledger: ledger,
		orders: ordersClient,
	}
}

// Name returns the stage name
func (w *Watcher) Name() string {
	return "transaction-watcher"
}

// Run ingests new transactions for all watched wallets. A wallet whose fetch
// or ingestion fails is skipped with its cursor untouched, so the next run
// revisits the same transactions.
func (w *Watcher) Run(ctx context.Context) error {
	wallets, err := w.store.ListWatchWallets(ctx)
	if err != nil {
		return fmt.Errorf("failed to list watch wallets: %w", err)
	}

	for _, wallet := range wallets {
		if err := w.processWallet(ctx, wallet); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("wallet", wallet.Address))
			continue
		}
	}

	return nil
}

func (w *Watcher) processWallet(ctx context.Context, wallet schema.WatchWallet) error {
	transactions, err := w.ledger.GetTransactions(ctx, wallet.Address, wallet.LastCheckedLT)
	if err != nil {
		return fmt.Errorf("failed to fetch transactions for wallet %s: %w", wallet.Address, err)
	}

	if len(transactions) == 0 {
		return nil
	}

	logger.DebugCtx(ctx, "ingesting wallet transactions",
		zap.String("wallet", wallet.Address),
		zap.Int("count", len(transactions)))

	var lastLT uint64
	for _, tx := range transactions {
		if err := w.processTransaction(ctx, tx); err != nil {
			// Stop before advancing past the failed transaction so ascending
			// order is preserved on the next run
			return err
		}
		lastLT = tx.LogicalTime
	}

	if lastLT > wallet.LastCheckedLT {
		if err := w.store.UpdateWalletCursor(ctx, wallet.ID, lastLT); err != nil {
			return fmt.Errorf("failed to advance cursor for wallet %s: %w", wallet.Address, err)
		}
	}

	return nil
}

// processTransaction classifies one inbound transfer. Transfers whose comment
// does not carry an order reference are not payments and are ignored outright.
func (w *Watcher) processTransaction(ctx context.Context, tx toncenter.Transaction) error {
	existing, err := w.store.GetTransactionByHash(ctx, tx.Hash)
	if err != nil {
		return fmt.Errorf("failed to look up transaction %s: %w", tx.Hash, err)
	}
	if existing != nil {
		return nil
	}

	orderID, err := domain.ParseOrderComment(tx.Comment)
	if err != nil {
		return nil
	}

	order, err := w.orders.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return w.recordRejected(ctx, tx, 0, reasonOrderNotFound)
		}
		return err
	}

	switch {
	case tx.Value != order.TotalPrice:
		return w.recordRejected(ctx, tx, order.TotalPrice, reasonInsufficientValue)
	case !order.Payable():
		return w.recordRejected(ctx, tx, order.TotalPrice, reasonAlreadyProcessed)
	}

	_, err = w.store.CreateTransaction(ctx, store.CreateTransactionInput{
		Hash:          tx.Hash,
		LogicalTime:   tx.LogicalTime,
		SenderAddress: tx.Sender,
		DeclaredValue: tx.Value,
		ExpectedValue: order.TotalPrice,
		Type:          schema.TransactionTypePaid,
		Comment:       tx.Comment,
	})
	if err != nil {
		return fmt.Errorf("failed to record paid transaction %s: %w", tx.Hash, err)
	}

	logger.InfoCtx(ctx, "payment accepted",
		zap.String("hash", tx.Hash),
		zap.String("order_id", orderID),
		zap.Uint64("value", tx.Value))

	return nil
}

func (w *Watcher) recordRejected(ctx context.Context, tx toncenter.Transaction, expected uint64, reason string) error {
	_, err := w.store.CreateTransaction(ctx, store.CreateTransactionInput{
		Hash:          tx.Hash,
		LogicalTime:   tx.LogicalTime,
		SenderAddress: tx.Sender,
		DeclaredValue: tx.Value,
		ExpectedValue: expected,
		Type:          schema.TransactionTypeFailed,
		Comment:       tx.Comment,
		FailedReason:  &reason,
	})
	if err != nil {
		return fmt.Errorf("failed to record rejected transaction %s: %w", tx.Hash, err)
	}

	logger.WarnCtx(ctx, "payment rejected",
		zap.String("hash", tx.Hash),
		zap.String("reason", reason),
		zap.Uint64("declared_value", tx.Value),
		zap.Uint64("expected_value", expected))

	return nil
}
