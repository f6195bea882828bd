package domain

// OrderState represents the lifecycle state of an off-chain purchase order
type OrderState string

const (
	// OrderStateCreated is the initial state of a paid-for order
	OrderStateCreated OrderState = "created"
	// OrderStateMintRequest means a mint has been queued for the order
	OrderStateMintRequest OrderState = "mint_request"
	// OrderStateMinted means the order's NFT is confirmed on-chain
	OrderStateMinted OrderState = "minted"
	// OrderStateFailed means payment or minting failed
	OrderStateFailed OrderState = "failed"
	// OrderStateValidationFailed is a terminal branch reachable from created
	OrderStateValidationFailed OrderState = "validation_failed"
)

// Order is the order gateway's view of a purchase order. The pipeline never
// writes the backing store directly; it reads and patches through the gateway.
type Order struct {
	ID                   string     `json:"id"`
	TotalPrice           uint64     `json:"total_price,string"`
	NFTCollectionAddress string     `json:"nft_collection_address"`
	State                OrderState `json:"state"`
}

// Payable reports whether an incoming payment for the order should be
// accepted. Orders that already advanced past created (or previously failed
// and are being retried by the buyer) are payable; anything else is a
// duplicate delivery.
func (o *Order) Payable() bool {
	return o.State == OrderStateCreated || o.State == OrderStateFailed
}

// OrderPatch is the mutation sent to the order gateway
type OrderPatch struct {
	State         OrderState `json:"state"`
	TransactionID *uint64    `json:"transaction_id,omitempty"`
	NFTAddress    *string    `json:"nft_address,omitempty"`
}
