package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/onton-live/nft-minter/internal/domain"
)

func TestParseOrderComment(t *testing.T) {
	testCases := []struct {
		name    string
		comment string
		orderID string
		err     error
	}{
		{
			name:    "valid comment",
			comment: "order=a1b2c3",
			orderID: "a1b2c3",
		},
		{
			name:    "surrounding whitespace",
			comment: "  order=a1b2c3 ",
			orderID: "a1b2c3",
		},
		{
			name:    "missing prefix",
			comment: "thanks for the tickets",
			err:     domain.ErrMalformedComment,
		},
		{
			name:    "empty id",
			comment: "order=",
			err:     domain.ErrMalformedComment,
		},
		{
			name:    "empty comment",
			comment: "",
			err:     domain.ErrMalformedComment,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orderID, err := domain.ParseOrderComment(tc.comment)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tc.orderID, orderID)
		})
	}
}

func TestOrderPayable(t *testing.T) {
	testCases := []struct {
		state   domain.OrderState
		payable bool
	}{
		{domain.OrderStateCreated, true},
		{domain.OrderStateFailed, true},
		{domain.OrderStateMintRequest, false},
		{domain.OrderStateMinted, false},
		{domain.OrderStateValidationFailed, false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.state), func(t *testing.T) {
			order := domain.Order{State: tc.state}
			assert.Equal(t, tc.payable, order.Payable())
		})
	}
}
