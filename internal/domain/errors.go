package domain

import "errors"

var (
	// ErrOrderNotFound is returned when the order gateway answers 404 for an order id
	ErrOrderNotFound = errors.New("order not found")

	// ErrCollectionNotFound is returned when a collection address has no local record
	ErrCollectionNotFound = errors.New("collection not found")

	// ErrMalformedComment is returned when a transaction comment does not carry a usable order id
	ErrMalformedComment = errors.New("malformed order comment")

	// ErrItemNotFound is returned when an NFT item is not found on-chain
	ErrItemNotFound = errors.New("nft item not found")
)

// IsTerminal reports whether an error is a business-rule rejection that must
// not be retried. Everything else is treated as transient and revisited on
// the next pipeline tick.
func IsTerminal(err error) bool {
	return errors.Is(err, ErrOrderNotFound) ||
		errors.Is(err, ErrCollectionNotFound) ||
		errors.Is(err, ErrMalformedComment)
}
