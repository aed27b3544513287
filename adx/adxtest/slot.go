package adxtest

import (
	"github.com/prebid/adx-fixtures/adx"
	"github.com/xorcare/pointer"
)

const dealCPMMicros = 1200000

// newAdSlot builds the slot for shape. Each index i in [1, shape) adds one matching ad data
// entry, and entry i carries i-1 deals and pricing rules, so the total price term count grows
// triangularly with shape.
func newAdSlot(shape int) *adx.AdSlot {
	slot := &adx.AdSlot{
		ID:                        pointer.Int32(1),
		Width:                     Sizes(shape, 100),
		Height:                    Sizes(shape, 200),
		AllowedVendorType:         Sample[int32](shape, 10, 94, 97),
		ExcludedSensitiveCategory: Sample[int32](shape, 0, 3, 4),
		ExcludedAttribute:         Sample[int32](shape, 1, 2, 3, 32 /* MraidType: Mraid 1.0 */),
		ExcludedProductCategory:   Sample[int32](shape, 1, 2, 999),
	}

	channel := "pack-anon-x::y"
	if shape%2 == 0 {
		channel = "afv_user_id_PewDiePie"
	}
	for i := 1; i < shape; i++ {
		slot.AdBlockKey = pointer.Int64(int64(i))
		slot.SlotVisibility = adx.SlotVisibilityAboveTheFold.Enum()
		slot.TargetableChannel = append(slot.TargetableChannel, channel)
		slot.MatchingAdData = append(slot.MatchingAdData, newMatchingAdData(i))
	}
	return slot
}

func newMatchingAdData(i int) *adx.MatchingAdData {
	mad := &adx.MatchingAdData{
		AdGroupID: pointer.Int64(int64(100 + i)),
	}
	if i < 2 {
		return mad
	}

	mad.MinimumCPMMicros = pointer.Int64(int64(10000 + i))
	for j := 2; j <= i; j++ {
		deal := &adx.DirectDeal{DirectDealID: pointer.Int64(int64(10*i + j))}
		rule := &adx.BuyerPricingRule{}
		if j >= 3 {
			deal.FixedCPMMicros = pointer.Int64(dealCPMMicros)
			rule.MinimumCPMMicros = pointer.Int64(dealCPMMicros)
		}
		mad.DirectDeal = append(mad.DirectDeal, deal)
		mad.PricingRule = append(mad.PricingRule, rule)
	}
	return mad
}
