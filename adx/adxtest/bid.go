package adxtest

import "github.com/prebid/openrtb/v20/openrtb2"

// NewBid returns the response bid the adapter tests map back to AdX. withSizeAndDeal adds the
// campaign, the deal and an explicit creative size.
func NewBid(withSizeAndDeal bool) *openrtb2.Bid {
	bid := &openrtb2.Bid{
		ID:    "0",
		ImpID: "1",
		AdID:  "2",
		CrID:  "4",
		Price: 1.2,
		AdM:   "<blink>hello world</blink>",
	}
	if withSizeAndDeal {
		bid.CID = "3"
		bid.DealID = "5"
		bid.W = 200
		bid.H = 220
	}
	return bid
}
