package adxtest

import (
	"testing"

	"github.com/prebid/openrtb/v20/openrtb2"
	"github.com/stretchr/testify/assert"
)

func TestNewBid(t *testing.T) {
	testCases := []struct {
		desc            string
		withSizeAndDeal bool
		expected        *openrtb2.Bid
	}{
		{
			desc:            "base",
			withSizeAndDeal: false,
			expected: &openrtb2.Bid{
				ID:    "0",
				ImpID: "1",
				AdID:  "2",
				CrID:  "4",
				Price: 1.2,
				AdM:   "<blink>hello world</blink>",
			},
		},
		{
			desc:            "size-and-deal",
			withSizeAndDeal: true,
			expected: &openrtb2.Bid{
				ID:     "0",
				ImpID:  "1",
				AdID:   "2",
				CrID:   "4",
				Price:  1.2,
				AdM:    "<blink>hello world</blink>",
				CID:    "3",
				DealID: "5",
				W:      200,
				H:      220,
			},
		},
	}

	for _, test := range testCases {
		assert.Equal(t, test.expected, NewBid(test.withSizeAndDeal), test.desc)
	}
}

func TestNewBidResultsAreIndependent(t *testing.T) {
	first := NewBid(true)
	first.Price = 0

	assert.Equal(t, 1.2, NewBid(true).Price)
}
