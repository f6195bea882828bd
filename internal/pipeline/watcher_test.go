package pipeline_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onton-live/nft-minter/internal/domain"
	"github.com/onton-live/nft-minter/internal/logger"
	"github.com/onton-live/nft-minter/internal/mocks"
	"github.com/onton-live/nft-minter/internal/pipeline"
	"github.com/onton-live/nft-minter/internal/providers/toncenter"
	"github.com/onton-live/nft-minter/internal/store"
	"github.com/onton-live/nft-minter/internal/store/schema"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

// testWatcherMocks contains all the mocks needed for testing the watcher
type testWatcherMocks struct {
	ctrl    *gomock.Controller
	store   *mocks.MockStore
	ledger  *mocks.MockToncenterClient
	orders  *mocks.MockOrdersClient
	watcher *pipeline.Watcher
}

func setupTestWatcher(t *testing.T) *testWatcherMocks {
	ctrl := gomock.NewController(t)

	tm := &testWatcherMocks{
		ctrl:   ctrl,
		store:  mocks.NewMockStore(ctrl),
		ledger: mocks.NewMockToncenterClient(ctrl),
		orders: mocks.NewMockOrdersClient(ctrl),
	}
	tm.watcher = pipeline.NewWatcher(tm.store, tm.ledger, tm.orders)

	return tm
}

var testWallet = schema.WatchWallet{
	ID:            1,
	Address:       "EQWallet",
	LastCheckedLT: 100,
}

func paymentTransaction(hash string, lt uint64, value uint64, comment string) toncenter.Transaction {
	return toncenter.Transaction{
		Hash:        hash,
		LogicalTime: lt,
		Sender:      "EQBuyer",
		Value:       value,
		Comment:     comment,
	}
}

func TestWatcher_Run_AcceptsMatchingPayment(t *testing.T) {
	tm := setupTestWatcher(t)
	defer tm.ctrl.Finish()

	tx := paymentTransaction("h1", 200, 5_000_000_000, "order=abc123")

	tm.store.EXPECT().ListWatchWallets(gomock.Any()).Return([]schema.WatchWallet{testWallet}, nil)
	tm.ledger.EXPECT().GetTransactions(gomock.Any(), "EQWallet", uint64(100)).
		Return([]toncenter.Transaction{tx}, nil)
	tm.store.EXPECT().GetTransactionByHash(gomock.Any(), "h1").Return(nil, nil)
	tm.orders.EXPECT().GetOrder(gomock.Any(), "abc123").Return(&domain.Order{
		ID:                   "abc123",
		TotalPrice:           5_000_000_000,
		NFTCollectionAddress: "EQCollection",
		State:                domain.OrderStateCreated,
	}, nil)
	tm.store.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.CreateTransactionInput) (*schema.Transaction, error) {
			assert.Equal(t, "h1", input.Hash)
			assert.Equal(t, schema.TransactionTypePaid, input.Type)
			assert.Equal(t, uint64(5_000_000_000), input.DeclaredValue)
			assert.Equal(t, uint64(5_000_000_000), input.ExpectedValue)
			assert.Equal(t, "EQBuyer", input.SenderAddress)
			assert.Nil(t, input.FailedReason)
			return &schema.Transaction{ID: 10}, nil
		})
	tm.store.EXPECT().UpdateWalletCursor(gomock.Any(), uint64(1), uint64(200)).Return(nil)

	require.NoError(t, tm.watcher.Run(context.Background()))
}

func TestWatcher_Run_RejectsValueMismatch(t *testing.T) {
	tm := setupTestWatcher(t)
	defer tm.ctrl.Finish()

	tx := paymentTransaction("h1", 200, 5_000_000_000, "order=abc123")

	tm.store.EXPECT().ListWatchWallets(gomock.Any()).Return([]schema.WatchWallet{testWallet}, nil)
	tm.ledger.EXPECT().GetTransactions(gomock.Any(), "EQWallet", uint64(100)).
		Return([]toncenter.Transaction{tx}, nil)
	tm.store.EXPECT().GetTransactionByHash(gomock.Any(), "h1").Return(nil, nil)
	tm.orders.EXPECT().GetOrder(gomock.Any(), "abc123").Return(&domain.Order{
		ID:         "abc123",
		TotalPrice: 7_000_000_000,
		State:      domain.OrderStateCreated,
	}, nil)
	tm.store.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.CreateTransactionInput) (*schema.Transaction, error) {
			assert.Equal(t, schema.TransactionTypeFailed, input.Type)
			require.NotNil(t, input.FailedReason)
			assert.Equal(t, "insufficient value", *input.FailedReason)
			assert.Equal(t, uint64(7_000_000_000), input.ExpectedValue)
			return &schema.Transaction{ID: 10}, nil
		})
	tm.store.EXPECT().UpdateWalletCursor(gomock.Any(), uint64(1), uint64(200)).Return(nil)

	require.NoError(t, tm.watcher.Run(context.Background()))
}

func TestWatcher_Run_RejectsDuplicateDelivery(t *testing.T) {
	tm := setupTestWatcher(t)
	defer tm.ctrl.Finish()

	tx := paymentTransaction("h1", 200, 5_000_000_000, "order=abc123")

	tm.store.EXPECT().ListWatchWallets(gomock.Any()).Return([]schema.WatchWallet{testWallet}, nil)
	tm.ledger.EXPECT().GetTransactions(gomock.Any(), "EQWallet", uint64(100)).
		Return([]toncenter.Transaction{tx}, nil)
	tm.store.EXPECT().GetTransactionByHash(gomock.Any(), "h1").Return(nil, nil)
	tm.orders.EXPECT().GetOrder(gomock.Any(), "abc123").Return(&domain.Order{
		ID:         "abc123",
		TotalPrice: 5_000_000_000,
		State:      domain.OrderStateMinted,
	}, nil)
	tm.store.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.CreateTransactionInput) (*schema.Transaction, error) {
			assert.Equal(t, schema.TransactionTypeFailed, input.Type)
			require.NotNil(t, input.FailedReason)
			assert.Equal(t, "already processed", *input.FailedReason)
			return &schema.Transaction{ID: 10}, nil
		})
	tm.store.EXPECT().UpdateWalletCursor(gomock.Any(), uint64(1), uint64(200)).Return(nil)

	require.NoError(t, tm.watcher.Run(context.Background()))
}

func TestWatcher_Run_RejectsUnknownOrder(t *testing.T) {
	tm := setupTestWatcher(t)
	defer tm.ctrl.Finish()

	tx := paymentTransaction("h1", 200, 5_000_000_000, "order=ghost")

	tm.store.EXPECT().ListWatchWallets(gomock.Any()).Return([]schema.WatchWallet{testWallet}, nil)
	tm.ledger.EXPECT().GetTransactions(gomock.Any(), "EQWallet", uint64(100)).
		Return([]toncenter.Transaction{tx}, nil)
	tm.store.EXPECT().GetTransactionByHash(gomock.Any(), "h1").Return(nil, nil)
	tm.orders.EXPECT().GetOrder(gomock.Any(), "ghost").
		Return(nil, fmt.Errorf("order ghost: %w", domain.ErrOrderNotFound))
	tm.store.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.CreateTransactionInput) (*schema.Transaction, error) {
			assert.Equal(t, schema.TransactionTypeFailed, input.Type)
			require.NotNil(t, input.FailedReason)
			assert.Equal(t, "order not found", *input.FailedReason)
			return &schema.Transaction{ID: 10}, nil
		})
	tm.store.EXPECT().UpdateWalletCursor(gomock.Any(), uint64(1), uint64(200)).Return(nil)

	require.NoError(t, tm.watcher.Run(context.Background()))
}

func TestWatcher_Run_IgnoresNonOrderComments(t *testing.T) {
	tm := setupTestWatcher(t)
	defer tm.ctrl.Finish()

	transactions := []toncenter.Transaction{
		paymentTransaction("h1", 200, 1_000_000_000, "hello there"),
		paymentTransaction("h2", 201, 1_000_000_000, ""),
	}

	tm.store.EXPECT().ListWatchWallets(gomock.Any()).Return([]schema.WatchWallet{testWallet}, nil)
	tm.ledger.EXPECT().GetTransactions(gomock.Any(), "EQWallet", uint64(100)).
		Return(transactions, nil)
	tm.store.EXPECT().GetTransactionByHash(gomock.Any(), "h1").Return(nil, nil)
	tm.store.EXPECT().GetTransactionByHash(gomock.Any(), "h2").Return(nil, nil)
	// No transaction rows are persisted, but the cursor still advances
	tm.store.EXPECT().UpdateWalletCursor(gomock.Any(), uint64(1), uint64(201)).Return(nil)

	require.NoError(t, tm.watcher.Run(context.Background()))
}

func TestWatcher_Run_SkipsAlreadyIngested(t *testing.T) {
	tm := setupTestWatcher(t)
	defer tm.ctrl.Finish()

	tx := paymentTransaction("h1", 200, 5_000_000_000, "order=abc123")

	tm.store.EXPECT().ListWatchWallets(gomock.Any()).Return([]schema.WatchWallet{testWallet}, nil)
	tm.ledger.EXPECT().GetTransactions(gomock.Any(), "EQWallet", uint64(100)).
		Return([]toncenter.Transaction{tx}, nil)
	tm.store.EXPECT().GetTransactionByHash(gomock.Any(), "h1").
		Return(&schema.Transaction{ID: 10, Hash: "h1"}, nil)
	tm.store.EXPECT().UpdateWalletCursor(gomock.Any(), uint64(1), uint64(200)).Return(nil)

	require.NoError(t, tm.watcher.Run(context.Background()))
}

func TestWatcher_Run_FetchErrorLeavesCursorUntouched(t *testing.T) {
	tm := setupTestWatcher(t)
	defer tm.ctrl.Finish()

	broken := schema.WatchWallet{ID: 1, Address: "EQBroken", LastCheckedLT: 50}
	healthy := schema.WatchWallet{ID: 2, Address: "EQHealthy", LastCheckedLT: 100}

	tm.store.EXPECT().ListWatchWallets(gomock.Any()).
		Return([]schema.WatchWallet{broken, healthy}, nil)
	tm.ledger.EXPECT().GetTransactions(gomock.Any(), "EQBroken", uint64(50)).
		Return(nil, errors.New("rate limited"))
	// The healthy wallet is still processed this run
	tm.ledger.EXPECT().GetTransactions(gomock.Any(), "EQHealthy", uint64(100)).
		Return(nil, nil)

	require.NoError(t, tm.watcher.Run(context.Background()))
}

func TestWatcher_Run_TransientGatewayErrorStopsBeforeCursor(t *testing.T) {
	tm := setupTestWatcher(t)
	defer tm.ctrl.Finish()

	tx := paymentTransaction("h1", 200, 5_000_000_000, "order=abc123")

	tm.store.EXPECT().ListWatchWallets(gomock.Any()).Return([]schema.WatchWallet{testWallet}, nil)
	tm.ledger.EXPECT().GetTransactions(gomock.Any(), "EQWallet", uint64(100)).
		Return([]toncenter.Transaction{tx}, nil)
	tm.store.EXPECT().GetTransactionByHash(gomock.Any(), "h1").Return(nil, nil)
	tm.orders.EXPECT().GetOrder(gomock.Any(), "abc123").
		Return(nil, errors.New("gateway timeout"))
	// No CreateTransaction, no UpdateWalletCursor: the whole wallet retries
	// next run

	require.NoError(t, tm.watcher.Run(context.Background()))
}
