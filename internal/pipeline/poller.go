package pipeline

import (
	"context"
	"fmt"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/onton-live/nft-minter/internal/adapter"
	"github.com/onton-live/nft-minter/internal/domain"
	"github.com/onton-live/nft-minter/internal/logger"
	"github.com/onton-live/nft-minter/internal/metadata"
	"github.com/onton-live/nft-minter/internal/providers/orders"
	"github.com/onton-live/nft-minter/internal/providers/toncenter"
	"github.com/onton-live/nft-minter/internal/store"
	"github.com/onton-live/nft-minter/internal/store/schema"
)

const (
	reasonWrongOrderID       = "wrong order id"
	reasonNotFoundFmt        = "not found after %d attempts"
	reasonMetaUnreachableFmt = "metadata unreachable after %d attempts"
)

// PollerConfig holds configuration for the mint status poller
type PollerConfig struct {
	// FailTryCount is the ceiling of not-found checks before an item fails
	FailTryCount int
	// PoolSize caps concurrent item checks
	PoolSize int
}

// Poller confirms in-flight mints against the ledger. Items found on-chain
// with matching metadata become minted; items absent past the try ceiling
// fail.
type Poller struct {
	config PollerConfig
	store  store.Store
	ledger toncenter.Client
	orders orders.Client
	http   adapter.HTTPClient
}

// NewPoller creates the mint status polling stage
func NewPoller(
	config PollerConfig,
	st store.Store,
	ledger toncenter.Client,
	ordersClient orders.Client,
	httpClient adapter.HTTPClient,
) *Poller {
	if config.PoolSize <= 0 {
		config.PoolSize = 1
	}

	return &Poller{
		config: config,
		store:  st,
		ledger: ledger,
		orders: ordersClient,
		http:   httpClient,
	}
}

// Name returns the stage name
func (p *Poller) Name() string {
	return "mint-status-poller"
}

// Run checks every in-flight item concurrently. Item checks only write their
// own row, so the pool needs no cross-item coordination.
func (p *Poller) Run(ctx context.Context) error {
	items, err := p.store.ListMintRequestItems(ctx)
	if err != nil {
		return fmt.Errorf("failed to list in-flight items: %w", err)
	}
	if len(items) == 0 {
		return nil
	}

	pool := pond.NewPool(p.config.PoolSize, pond.WithContext(ctx))
	for _, item := range items {
		pool.Submit(func() {
			p.checkItem(ctx, item)
		})
	}
	pool.StopAndWait()

	return nil
}

// checkItem resolves one in-flight item's on-chain state. Transient errors
// are logged and leave the item untouched for the next run.
func (p *Poller) checkItem(ctx context.Context, item schema.NFTItem) {
	if item.Index == nil {
		logger.ErrorCtx(ctx, fmt.Errorf("in-flight item %d has no assigned index", item.ID))
		return
	}

	collection, err := p.store.GetCollectionByID(ctx, item.CollectionID)
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.Uint64("item_id", item.ID))
		return
	}
	if collection == nil {
		logger.ErrorCtx(ctx, fmt.Errorf("item %d references unknown collection %d", item.ID, item.CollectionID))
		return
	}

	onChain, err := p.ledger.GetNftItem(ctx, collection.Address, *item.Index)
	if err != nil {
		logger.ErrorCtx(ctx, err,
			zap.Uint64("item_id", item.ID),
			zap.Int64("index", *item.Index))
		return
	}

	if onChain == nil {
		p.recordMissedCheck(ctx, item, reasonNotFoundFmt)
		return
	}

	p.confirmItem(ctx, item, onChain)
}

// recordMissedCheck bumps the try counter and fails the item once the
// ceiling is reached. Both an absent on-chain item and unreachable published
// metadata count, so neither can keep an item in flight forever.
func (p *Poller) recordMissedCheck(ctx context.Context, item schema.NFTItem, reasonFmt string) {
	attempts := item.TryCount + 1
	if attempts >= p.config.FailTryCount {
		reason := fmt.Sprintf(reasonFmt, attempts)
		if err := p.store.UpdateItemFailed(ctx, item.ID, reason); err != nil {
			logger.ErrorCtx(ctx, err, zap.Uint64("item_id", item.ID))
			return
		}
		logger.WarnCtx(ctx, "mint abandoned",
			zap.Uint64("item_id", item.ID),
			zap.String("order_id", item.OrderID),
			zap.String("reason", reason))
		return
	}

	if err := p.store.IncrementItemTryCount(ctx, item.ID); err != nil {
		logger.ErrorCtx(ctx, err, zap.Uint64("item_id", item.ID))
	}
}

// confirmItem verifies the on-chain item fulfils this order, then records the
// mint and patches the order in one transactional unit
func (p *Poller) confirmItem(ctx context.Context, item schema.NFTItem, onChain *toncenter.NftItem) {
	var meta metadata.ItemMetadata
	if err := p.http.Get(ctx, onChain.ContentURI, &meta); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to fetch item metadata: %w", err),
			zap.Uint64("item_id", item.ID),
			zap.String("uri", onChain.ContentURI))
		p.recordMissedCheck(ctx, item, reasonMetaUnreachableFmt)
		return
	}

	if meta.Attributes.OrderID != item.OrderID {
		// Another order's item landed on this index; the order stays untouched
		if err := p.store.UpdateItemFailed(ctx, item.ID, reasonWrongOrderID); err != nil {
			logger.ErrorCtx(ctx, err, zap.Uint64("item_id", item.ID))
			return
		}
		logger.WarnCtx(ctx, "on-chain item belongs to another order",
			zap.Uint64("item_id", item.ID),
			zap.String("order_id", item.OrderID),
			zap.String("on_chain_order_id", meta.Attributes.OrderID),
			zap.Int64("index", *item.Index))
		return
	}

	err := p.store.Atomic(ctx, func(s store.Store) error {
		if err := s.UpdateItemMinted(ctx, item.ID, onChain.Address); err != nil {
			return fmt.Errorf("failed to record minted item %d: %w", item.ID, err)
		}
		if err := p.orders.UpdateOrder(ctx, item.OrderID, domain.OrderPatch{
			State:      domain.OrderStateMinted,
			NFTAddress: &onChain.Address,
		}); err != nil {
			return fmt.Errorf("failed to patch order %s to minted: %w", item.OrderID, err)
		}
		return nil
	})
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.Uint64("item_id", item.ID))
		return
	}

	logger.InfoCtx(ctx, "mint confirmed",
		zap.Uint64("item_id", item.ID),
		zap.String("order_id", item.OrderID),
		zap.String("nft_address", onChain.Address))
}
