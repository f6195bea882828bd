package reconciler

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/onton-live/nft-minter/internal/adapter"
	"github.com/onton-live/nft-minter/internal/logger"
	"github.com/onton-live/nft-minter/internal/pipeline"
	"github.com/onton-live/nft-minter/internal/providers/toncenter"
	"github.com/onton-live/nft-minter/internal/store"
	"github.com/onton-live/nft-minter/internal/store/schema"
)

// Config holds configuration for the drift reconciler
type Config struct {
	// MintedBefore limits the sweep to items minted at least this long ago,
	// keeping the hot mint path out of scope
	MintedBefore time.Duration
	// CacheTTL bounds how long fetched on-chain state is reused
	CacheTTL time.Duration
}

// Reconciler repairs minted rows that drifted from on-chain truth: duplicate
// rows minted under the same collection index are resolved against the item's
// transfer lineage, and rows that cannot be resolved are queued for a fresh
// mint. Safe to re-run; every update is conditioned on current row state.
type Reconciler struct {
	config     Config
	store      store.Store
	ledger     toncenter.Client
	dispatcher pipeline.Stage
	clock      adapter.Clock
	chainCache *cache.Cache
}

// onChainState is one cached ledger lookup for a duplicate group
type onChainState struct {
	item      *toncenter.NftItem
	transfers []toncenter.NftTransfer
}

// groupKey identifies a duplicate set
type groupKey struct {
	collectionID uint64
	index        int64
}

// New creates a drift reconciler. The dispatcher is invoked once at the end
// of a run when items were queued for re-mint.
func New(
	config Config,
	st store.Store,
	ledger toncenter.Client,
	dispatcher pipeline.Stage,
	clock adapter.Clock,
) *Reconciler {
	return &Reconciler{
		config:     config,
		store:      st,
		ledger:     ledger,
		dispatcher: dispatcher,
		clock:      clock,
		chainCache: cache.New(config.CacheTTL, 2*config.CacheTTL),
	}
}

// Run executes one reconciliation sweep
func (r *Reconciler) Run(ctx context.Context) error {
	cutoff := r.clock.Now().Add(-r.config.MintedBefore)

	items, err := r.store.ListMintedItemsBefore(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to list minted items: %w", err)
	}

	duplicates := findDuplicates(items)
	if len(duplicates) == 0 {
		logger.InfoCtx(ctx, "no duplicate minted rows found",
			zap.Int("items_scanned", len(items)))
		return nil
	}

	logger.InfoCtx(ctx, "reconciling duplicate minted rows",
		zap.Int("items_scanned", len(items)),
		zap.Int("duplicate_groups", len(duplicates)))

	var requeued int
	for key, rows := range duplicates {
		n, err := r.reconcileGroup(ctx, key, rows)
		if err != nil {
			logger.ErrorCtx(ctx, err,
				zap.Uint64("collection_id", key.collectionID),
				zap.Int64("index", key.index))
			continue
		}
		requeued += n
	}

	if requeued > 0 {
		logger.InfoCtx(ctx, "dispatching re-mints for unreconcilable rows",
			zap.Int("requeued", requeued))
		if err := r.dispatcher.Run(ctx); err != nil {
			return fmt.Errorf("failed to dispatch re-mints: %w", err)
		}
	}

	return nil
}

// findDuplicates groups minted rows by collection and index, keeping only
// groups holding more than one row
func findDuplicates(items []schema.NFTItem) map[groupKey][]schema.NFTItem {
	groups := make(map[groupKey][]schema.NFTItem)
	for _, item := range items {
		if item.Index == nil {
			continue
		}
		key := groupKey{collectionID: item.CollectionID, index: *item.Index}
		groups[key] = append(groups[key], item)
	}

	for key, rows := range groups {
		if len(rows) < 2 {
			delete(groups, key)
		}
	}

	return groups
}

// reconcileGroup resolves one duplicate set against on-chain truth and
// returns how many rows were queued for re-mint
func (r *Reconciler) reconcileGroup(ctx context.Context, key groupKey, rows []schema.NFTItem) (int, error) {
	collection, err := r.store.GetCollectionByID(ctx, key.collectionID)
	if err != nil {
		return 0, fmt.Errorf("failed to load collection %d: %w", key.collectionID, err)
	}
	if collection == nil {
		return 0, fmt.Errorf("duplicate group references unknown collection %d", key.collectionID)
	}

	state, err := r.fetchOnChainState(ctx, collection.Address, key.index)
	if err != nil {
		return 0, err
	}

	// No item on-chain at all: every row is wrong, re-mint them all
	if state.item == nil {
		var requeued int
		for _, row := range rows {
			if err := r.store.RequeueForMint(ctx, row.ID); err != nil {
				return requeued, fmt.Errorf("failed to requeue item %d: %w", row.ID, err)
			}
			requeued++
		}
		logger.WarnCtx(ctx, "no on-chain item for duplicate group, re-minting all rows",
			zap.String("collection", collection.Address),
			zap.Int64("index", key.index),
			zap.Int("rows", len(rows)))
		return requeued, nil
	}

	// With no transfer history the on-chain owner is the original owner.
	// Otherwise the oldest transfer's previous owner identifies which local
	// row the on-chain item was actually minted for.
	reference := state.item.OwnerAddress
	if len(state.transfers) > 0 {
		reference = state.transfers[0].OldOwner
	}

	var requeued int
	for _, row := range rows {
		if row.OwnerAddress != reference {
			if err := r.store.RequeueForMint(ctx, row.ID); err != nil {
				return requeued, fmt.Errorf("failed to requeue item %d: %w", row.ID, err)
			}
			requeued++
			logger.InfoCtx(ctx, "row has no matching transfer lineage, queued for re-mint",
				zap.Uint64("item_id", row.ID),
				zap.String("owner", row.OwnerAddress),
				zap.String("reference", reference))
			continue
		}

		if row.OwnerAddress != state.item.OwnerAddress {
			if err := r.store.UpdateItemOwner(ctx, row.ID, state.item.OwnerAddress); err != nil {
				return requeued, fmt.Errorf("failed to update owner of item %d: %w", row.ID, err)
			}
			logger.InfoCtx(ctx, "corrected item owner from transfer lineage",
				zap.Uint64("item_id", row.ID),
				zap.String("old_owner", row.OwnerAddress),
				zap.String("new_owner", state.item.OwnerAddress))
		}
	}

	return requeued, nil
}

// fetchOnChainState loads an item's on-chain record and transfer history,
// reusing cached results across rows and re-runs
func (r *Reconciler) fetchOnChainState(ctx context.Context, collectionAddress string, index int64) (*onChainState, error) {
	cacheKey := fmt.Sprintf("%s:%d", collectionAddress, index)
	if cached, found := r.chainCache.Get(cacheKey); found {
		return cached.(*onChainState), nil
	}

	item, err := r.ledger.GetNftItem(ctx, collectionAddress, index)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch on-chain item: %w", err)
	}

	state := &onChainState{item: item}
	if item != nil {
		transfers, err := r.ledger.GetItemTransfers(ctx, item.Address)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch item transfers: %w", err)
		}
		state.transfers = transfers
	}

	r.chainCache.Set(cacheKey, state, cache.DefaultExpiration)
	return state, nil
}
