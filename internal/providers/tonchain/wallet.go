package tonchain

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/xssnick/tonutils-go/address"
	"github.com/xssnick/tonutils-go/liteclient"
	"github.com/xssnick/tonutils-go/tlb"
	"github.com/xssnick/tonutils-go/ton"
	"github.com/xssnick/tonutils-go/ton/wallet"
	"github.com/xssnick/tonutils-go/tvm/cell"
	"go.uber.org/zap"

	"github.com/onton-live/nft-minter/internal/adapter"
	"github.com/onton-live/nft-minter/internal/logger"
)

const (
	// opBatchMint is the collection contract's batch deploy opcode
	opBatchMint = 2

	// itemDeployAmount is the value forwarded to each deployed item contract
	itemDeployAmount = 50_000_000 // 0.05 TON
	// itemDeployFee covers gas on top of the forwarded value, per item
	itemDeployFee = 55_000_000 // 0.055 TON
)

// MintItem describes one NFT to deploy in a batch
type MintItem struct {
	Index        int64
	OwnerAddress string
	MetadataURL  string
}

// Wallet defines write access to the ledger through the minting wallet
//
//go:generate mockgen -source=wallet.go -destination=../../mocks/tonchain.go -package=mocks -mock_names=Wallet=MockWallet
type Wallet interface {
	// Seqno returns the wallet's current sequence number
	Seqno(ctx context.Context) (uint64, error)
	// LastMintedIndex returns the highest item index minted into a collection,
	// or -1 for an empty collection
	LastMintedIndex(ctx context.Context, collectionAddress string) (int64, error)
	// SendBatchMint submits a single batch deploy message for the given items
	SendBatchMint(ctx context.Context, collectionAddress string, items []MintItem) error
	// WaitSeqno polls until the wallet seqno advances past seqno, giving up
	// after the configured number of attempts
	WaitSeqno(ctx context.Context, seqno uint64, attempts int, interval time.Duration) error
}

type tonWallet struct {
	api    ton.APIClientWrapped
	wallet *wallet.Wallet
	clock  adapter.Clock
}

// Connect dials the lite-server network from a global config URL and opens
// the minting wallet from its mnemonic
func Connect(ctx context.Context, configURL string, mnemonic string, version string, clock adapter.Clock) (Wallet, error) {
	pool := liteclient.NewConnectionPool()
	if err := pool.AddConnectionsFromConfigUrl(ctx, configURL); err != nil {
		return nil, fmt.Errorf("failed to add liteserver connections: %w", err)
	}

	api := ton.NewAPIClient(pool).WithRetry()

	ver, err := walletVersion(version)
	if err != nil {
		return nil, err
	}

	w, err := wallet.FromSeed(api, strings.Fields(mnemonic), ver)
	if err != nil {
		return nil, fmt.Errorf("failed to open wallet from seed: %w", err)
	}

	return &tonWallet{
		api:    api,
		wallet: w,
		clock:  clock,
	}, nil
}

func walletVersion(version string) (wallet.Version, error) {
	switch version {
	case "v3r1":
		return wallet.V3R1, nil
	case "v3r2":
		return wallet.V3R2, nil
	case "v4r2", "":
		return wallet.V4R2, nil
	default:
		return 0, fmt.Errorf("unsupported wallet version %q", version)
	}
}

// Seqno returns the wallet's current sequence number. A wallet with no
// outgoing transactions yet has seqno 0.
func (t *tonWallet) Seqno(ctx context.Context) (uint64, error) {
	block, err := t.api.CurrentMasterchainInfo(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get masterchain info: %w", err)
	}

	res, err := t.api.RunGetMethod(ctx, block, t.wallet.WalletAddress(), "seqno")
	if err != nil {
		return 0, fmt.Errorf("failed to run seqno get method: %w", err)
	}

	seqno, err := res.Int(0)
	if err != nil {
		return 0, fmt.Errorf("failed to read seqno result: %w", err)
	}

	return seqno.Uint64(), nil
}

// LastMintedIndex reads get_collection_data and returns next_item_index - 1
func (t *tonWallet) LastMintedIndex(ctx context.Context, collectionAddress string) (int64, error) {
	addr, err := address.ParseAddr(collectionAddress)
	if err != nil {
		return 0, fmt.Errorf("failed to parse collection address: %w", err)
	}

	block, err := t.api.CurrentMasterchainInfo(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get masterchain info: %w", err)
	}

	res, err := t.api.RunGetMethod(ctx, block, addr, "get_collection_data")
	if err != nil {
		return 0, fmt.Errorf("failed to run get_collection_data: %w", err)
	}

	nextIndex, err := res.Int(0)
	if err != nil {
		return 0, fmt.Errorf("failed to read next item index: %w", err)
	}

	return nextIndex.Int64() - 1, nil
}

// SendBatchMint submits a single batch deploy message for the given items
func (t *tonWallet) SendBatchMint(ctx context.Context, collectionAddress string, items []MintItem) error {
	if len(items) == 0 {
		return nil
	}

	addr, err := address.ParseAddr(collectionAddress)
	if err != nil {
		return fmt.Errorf("failed to parse collection address: %w", err)
	}

	queryID := uint64(t.clock.Now().UnixNano())
	body, err := buildBatchMintBody(items, queryID)
	if err != nil {
		return err
	}

	amount := tlb.FromNanoTONU(uint64(len(items)) * itemDeployFee)

	msg := &wallet.Message{
		// Pay transfer fees separately, ignore action errors so one bad item
		// cannot bounce the whole batch
		Mode: 1 + 2,
		InternalMessage: &tlb.InternalMessage{
			IHRDisabled: true,
			Bounce:      true,
			DstAddr:     addr,
			Amount:      amount,
			Body:        body,
		},
	}

	logger.Info("submitting batch mint",
		zap.String("collection", collectionAddress),
		zap.Int("items", len(items)),
		zap.String("amount", amount.String()))

	if err := t.wallet.Send(ctx, msg, false); err != nil {
		return fmt.Errorf("failed to send batch mint message: %w", err)
	}

	return nil
}

// buildBatchMintBody constructs the collection batch deploy payload: a
// 64-bit-keyed dictionary of item index to {deploy value, owner, content}
func buildBatchMintBody(items []MintItem, queryID uint64) (*cell.Cell, error) {
	dict := cell.NewDict(64)

	for _, item := range items {
		owner, err := address.ParseAddr(item.OwnerAddress)
		if err != nil {
			return nil, fmt.Errorf("failed to parse owner address for index %d: %w", item.Index, err)
		}

		content := cell.BeginCell().
			MustStoreStringSnake(item.MetadataURL).
			EndCell()

		nft := cell.BeginCell().
			MustStoreAddr(owner).
			MustStoreRef(content).
			EndCell()

		value := cell.BeginCell().
			MustStoreBigCoins(big.NewInt(itemDeployAmount)).
			MustStoreRef(nft).
			EndCell()

		if err := dict.SetIntKey(big.NewInt(item.Index), value); err != nil {
			return nil, fmt.Errorf("failed to set dict key for index %d: %w", item.Index, err)
		}
	}

	return cell.BeginCell().
		MustStoreUInt(opBatchMint, 32).
		MustStoreUInt(queryID, 64).
		MustStoreDict(dict).
		EndCell(), nil
}

// WaitSeqno polls until the wallet seqno advances past seqno
func (t *tonWallet) WaitSeqno(ctx context.Context, seqno uint64, attempts int, interval time.Duration) error {
	for i := 0; i < attempts; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.clock.After(interval):
		}

		current, err := t.Seqno(ctx)
		if err != nil {
			logger.Warn("failed to read wallet seqno while waiting", zap.Error(err))
			continue
		}

		if current > seqno {
			return nil
		}
	}

	return fmt.Errorf("wallet seqno did not advance past %d after %d attempts", seqno, attempts)
}
