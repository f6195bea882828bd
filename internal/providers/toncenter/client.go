package toncenter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Transaction is a decoded inbound ledger transaction
type Transaction struct {
	Hash        string
	LogicalTime uint64
	Sender      string
	// Value is the transferred amount in nanotons
	Value uint64
	// Comment is the decoded text comment of the inbound message, empty when
	// the message carries none
	Comment string
}

// NftItem is a decoded on-chain NFT item
type NftItem struct {
	Address      string
	OwnerAddress string
	Index        int64
	// ContentURI points at the item's off-chain metadata JSON
	ContentURI string
}

// NftTransfer is a decoded NFT ownership transfer
type NftTransfer struct {
	OldOwner    string
	NewOwner    string
	LogicalTime uint64
}

// Client defines read access to the ledger indexer API
//
//go:generate mockgen -source=client.go -destination=../../mocks/toncenter.go -package=mocks -mock_names=Client=MockToncenterClient
type Client interface {
	// GetTransactions retrieves transactions of an account with logical time
	// strictly ordered ascending, starting from startLT (inclusive)
	GetTransactions(ctx context.Context, account string, startLT uint64) ([]Transaction, error)
	// GetNftItem retrieves an item of a collection by index; nil when the item
	// does not exist on-chain yet
	GetNftItem(ctx context.Context, collectionAddress string, index int64) (*NftItem, error)
	// GetItemTransfers retrieves an item's ownership transfers ordered by
	// logical time ascending
	GetItemTransfers(ctx context.Context, itemAddress string) ([]NftTransfer, error)
}

// HTTPGetter is the transport used by the client
type HTTPGetter interface {
	Get(ctx context.Context, url string, result interface{}) error
}

const (
	transactionsPageLimit = 128
	transfersPageLimit    = 100
)

type client struct {
	endpoint string
	apiKey   string
	http     HTTPGetter
}

// NewClient creates a ledger indexer API client
func NewClient(endpoint string, apiKey string, httpClient HTTPGetter) Client {
	return &client{
		endpoint: endpoint,
		apiKey:   apiKey,
		http:     httpClient,
	}
}

// Wire types. The API serializes 64-bit integers as strings; they are decoded
// into typed values here so callers never see raw payloads.

type rawMessageContent struct {
	Decoded *struct {
		Type    string `json:"type"`
		Comment string `json:"comment"`
	} `json:"decoded"`
}

type rawMessage struct {
	Source         string             `json:"source"`
	Destination    string             `json:"destination"`
	Value          string             `json:"value"`
	MessageContent *rawMessageContent `json:"message_content"`
}

type rawTransaction struct {
	Hash  string      `json:"hash"`
	LT    string      `json:"lt"`
	InMsg *rawMessage `json:"in_msg"`
}

type transactionsResponse struct {
	Transactions []rawTransaction `json:"transactions"`
}

type rawNftItem struct {
	Address      string `json:"address"`
	OwnerAddress string `json:"owner_address"`
	Index        string `json:"index"`
	Content      *struct {
		URI string `json:"uri"`
	} `json:"content"`
}

type nftItemsResponse struct {
	NftItems []rawNftItem `json:"nft_items"`
}

type rawNftTransfer struct {
	OldOwner      string `json:"old_owner"`
	NewOwner      string `json:"new_owner"`
	TransactionLT string `json:"transaction_lt"`
}

type nftTransfersResponse struct {
	NftTransfers []rawNftTransfer `json:"nft_transfers"`
}

// GetTransactions retrieves transactions of an account in ascending logical
// time order, starting from startLT
func (c *client) GetTransactions(ctx context.Context, account string, startLT uint64) ([]Transaction, error) {
	params := url.Values{}
	params.Set("account", account)
	params.Set("sort", "asc")
	params.Set("limit", strconv.Itoa(transactionsPageLimit))
	if startLT > 0 {
		params.Set("start_lt", strconv.FormatUint(startLT, 10))
	}

	var resp transactionsResponse
	if err := c.http.Get(ctx, c.buildURL("/api/v3/transactions", params), &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	transactions := make([]Transaction, 0, len(resp.Transactions))
	for _, raw := range resp.Transactions {
		decoded, err := decodeTransaction(raw)
		if err != nil {
			return nil, err
		}
		// Outbound and system transactions carry no inbound transfer
		if decoded == nil {
			continue
		}
		transactions = append(transactions, *decoded)
	}

	return transactions, nil
}

// GetNftItem retrieves an item of a collection by index
func (c *client) GetNftItem(ctx context.Context, collectionAddress string, index int64) (*NftItem, error) {
	params := url.Values{}
	params.Set("collection_address", collectionAddress)
	params.Set("index", strconv.FormatInt(index, 10))
	params.Set("limit", "1")

	var resp nftItemsResponse
	if err := c.http.Get(ctx, c.buildURL("/api/v3/nft/items", params), &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch nft item: %w", err)
	}

	if len(resp.NftItems) == 0 {
		return nil, nil
	}

	return decodeNftItem(resp.NftItems[0])
}

// GetItemTransfers retrieves an item's ownership transfers in ascending order
func (c *client) GetItemTransfers(ctx context.Context, itemAddress string) ([]NftTransfer, error) {
	params := url.Values{}
	params.Set("item_address", itemAddress)
	params.Set("sort", "asc")
	params.Set("limit", strconv.Itoa(transfersPageLimit))

	var resp nftTransfersResponse
	if err := c.http.Get(ctx, c.buildURL("/api/v3/nft/transfers", params), &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch nft transfers: %w", err)
	}

	transfers := make([]NftTransfer, 0, len(resp.NftTransfers))
	for _, raw := range resp.NftTransfers {
		lt, err := parseUint(raw.TransactionLT, "transfer lt")
		if err != nil {
			return nil, err
		}
		transfers = append(transfers, NftTransfer{
			OldOwner:    raw.OldOwner,
			NewOwner:    raw.NewOwner,
			LogicalTime: lt,
		})
	}

	return transfers, nil
}

func (c *client) buildURL(path string, params url.Values) string {
	if c.apiKey != "" {
		params.Set("api_key", c.apiKey)
	}
	return c.endpoint + path + "?" + params.Encode()
}

func decodeTransaction(raw rawTransaction) (*Transaction, error) {
	if raw.InMsg == nil || raw.InMsg.Source == "" {
		return nil, nil
	}

	lt, err := parseUint(raw.LT, "transaction lt")
	if err != nil {
		return nil, err
	}

	value, err := parseUint(raw.InMsg.Value, "transaction value")
	if err != nil {
		return nil, err
	}

	var comment string
	if raw.InMsg.MessageContent != nil && raw.InMsg.MessageContent.Decoded != nil {
		comment = raw.InMsg.MessageContent.Decoded.Comment
	}

	return &Transaction{
		Hash:        raw.Hash,
		LogicalTime: lt,
		Sender:      raw.InMsg.Source,
		Value:       value,
		Comment:     comment,
	}, nil
}

func decodeNftItem(raw rawNftItem) (*NftItem, error) {
	index, err := strconv.ParseInt(raw.Index, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse nft item index %q: %w", raw.Index, err)
	}

	item := NftItem{
		Address:      raw.Address,
		OwnerAddress: raw.OwnerAddress,
		Index:        index,
	}
	if raw.Content != nil {
		item.ContentURI = raw.Content.URI
	}

	return &item, nil
}

func parseUint(s string, field string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s %q: %w", field, s, err)
	}
	return v, nil
}
