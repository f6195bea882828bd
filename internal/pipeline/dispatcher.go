package pipeline

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/onton-live/nft-minter/internal/logger"
	"github.com/onton-live/nft-minter/internal/metadata"
	"github.com/onton-live/nft-minter/internal/providers/tonchain"
	"github.com/onton-live/nft-minter/internal/store"
	"github.com/onton-live/nft-minter/internal/store/schema"
)

// maxChunkSize is the ledger's per-message batch ceiling
const maxChunkSize = 100

// DispatcherConfig holds configuration for the batch mint dispatcher
type DispatcherConfig struct {
	// BatchSize caps items per submitted chunk, at most maxChunkSize
	BatchSize int
	// WalletWaitAttempts bounds seqno confirmation polling per chunk
	WalletWaitAttempts int
	// WalletWaitInterval spaces seqno confirmation polls
	WalletWaitInterval time.Duration
}

// Dispatcher submits batched mint messages for materialized items. Indices
// are assigned sequentially from the collection's on-chain tail and persisted
// before submission, so a crash mid-flight still reads as in flight.
type Dispatcher struct {
	config      DispatcherConfig
	store       store.Store
	wallet      tonchain.Wallet
	publisher   metadata.Publisher
	submitRetry RetryPolicy
}

// NewDispatcher creates the batch mint dispatch stage
func NewDispatcher(
	config DispatcherConfig,
	st store.Store,
	wallet tonchain.Wallet,
	publisher metadata.Publisher,
	submitRetry RetryPolicy,
) *Dispatcher {
	if config.BatchSize <= 0 || config.BatchSize > maxChunkSize {
		config.BatchSize = maxChunkSize
	}

	return &Dispatcher{
		config:      config,
		store:       st,
		wallet:      wallet,
		publisher:   publisher,
		submitRetry: submitRetry,
	}
}

// Name returns the stage name
func (d *Dispatcher) Name() string {
	return "batch-mint-dispatcher"
}

// Run dispatches pending items collection by collection. A collection that
// fails mid-dispatch is logged and skipped; the others still run.
func (d *Dispatcher) Run(ctx context.Context) error {
	collections, err := d.store.ListCollectionsWithPendingItems(ctx)
	if err != nil {
		return fmt.Errorf("failed to list collections with pending items: %w", err)
	}

	for _, collection := range collections {
		if err := d.dispatchCollection(ctx, collection); err != nil {
			logger.ErrorCtx(ctx, err,
				zap.Uint64("collection_id", collection.ID),
				zap.String("collection", collection.Address))
			continue
		}
	}

	return nil
}

// dispatchCollection assigns indices, publishes metadata, and submits mint
// chunks for one collection's created items
func (d *Dispatcher) dispatchCollection(ctx context.Context, collection schema.NFTCollection) error {
	// A batch already in flight owns the index range after the on-chain tail;
	// assigning more now would collide
	inFlight, err := d.store.CountItemsByState(ctx, collection.ID, schema.NFTItemStateMintRequest)
	if err != nil {
		return fmt.Errorf("failed to count in-flight items: %w", err)
	}
	if inFlight > 0 {
		logger.InfoCtx(ctx, "batch in flight, skipping collection",
			zap.String("collection", collection.Address),
			zap.Int64("in_flight", inFlight))
		return nil
	}

	items, err := d.store.ListItemsByState(ctx, collection.ID, schema.NFTItemStateCreated)
	if err != nil {
		return fmt.Errorf("failed to list created items: %w", err)
	}
	if len(items) == 0 {
		return nil
	}

	lastIndex, err := d.wallet.LastMintedIndex(ctx, collection.Address)
	if err != nil {
		return fmt.Errorf("failed to read last minted index: %w", err)
	}

	// Items staged before a preparation failure are already mint_request, so
	// they must still be submitted or they would sit in flight with nothing
	// on-chain until the poller abandons them
	mints, prepErr := d.prepareItems(ctx, collection, items, lastIndex+1)
	if prepErr != nil && len(mints) > 0 {
		logger.WarnCtx(ctx, "staging failed mid-collection, submitting staged items",
			zap.String("collection", collection.Address),
			zap.Int("staged", len(mints)),
			zap.Error(prepErr))
	}
	if len(mints) == 0 {
		return prepErr
	}

	for start := 0; start < len(mints); start += d.config.BatchSize {
		end := start + d.config.BatchSize
		if end > len(mints) {
			end = len(mints)
		}

		if err := d.submitChunk(ctx, collection.Address, mints[start:end]); err != nil {
			return err
		}
	}

	return prepErr
}

// prepareItems publishes each item's metadata and persists its assigned index
// with the mint_request state before anything goes on-chain. On failure the
// items staged so far are returned alongside the error; the failed item and
// the rest stay created for the next run.
func (d *Dispatcher) prepareItems(
	ctx context.Context,
	collection schema.NFTCollection,
	items []schema.NFTItem,
	nextIndex int64,
) ([]tonchain.MintItem, error) {
	mints := make([]tonchain.MintItem, 0, len(items))

	for _, item := range items {
		meta, err := metadata.ItemMetadataFromTemplate(collection.ItemMetadata, item.OrderID)
		if err != nil {
			return mints, fmt.Errorf("failed to build metadata for item %d: %w", item.ID, err)
		}

		metadataURL, err := d.publisher.PublishItemMetadata(ctx, meta)
		if err != nil {
			return mints, fmt.Errorf("failed to publish metadata for item %d: %w", item.ID, err)
		}

		index := nextIndex
		if err := d.store.Atomic(ctx, func(s store.Store) error {
			if err := s.SetItemMetadataURL(ctx, item.ID, metadataURL); err != nil {
				return err
			}
			return s.MarkItemMintRequested(ctx, item.ID, index)
		}); err != nil {
			return mints, fmt.Errorf("failed to stage item %d for mint: %w", item.ID, err)
		}

		mints = append(mints, tonchain.MintItem{
			Index:        index,
			OwnerAddress: item.OwnerAddress,
			MetadataURL:  metadataURL,
		})
		nextIndex++
	}

	return mints, nil
}

// submitChunk submits one mint chunk and waits for the wallet seqno to
// advance, serializing chunks on the signing wallet
func (d *Dispatcher) submitChunk(ctx context.Context, collectionAddress string, chunk []tonchain.MintItem) error {
	seqno, err := d.wallet.Seqno(ctx)
	if err != nil {
		return fmt.Errorf("failed to read wallet seqno: %w", err)
	}

	if err := d.submitRetry.Do(ctx, func() error {
		return d.wallet.SendBatchMint(ctx, collectionAddress, chunk)
	}); err != nil {
		return fmt.Errorf("failed to submit mint chunk: %w", err)
	}

	if err := d.wallet.WaitSeqno(ctx, seqno, d.config.WalletWaitAttempts, d.config.WalletWaitInterval); err != nil {
		// Items stay mint_request; the status poller resolves their true state
		logger.WarnCtx(ctx, "seqno confirmation timed out, leaving chunk in flight",
			zap.String("collection", collectionAddress),
			zap.Int("chunk_size", len(chunk)),
			zap.Uint64("seqno", seqno),
			zap.Error(err))
	}

	return nil
}
