// Package adx models the subset of the DoubleClick Ad Exchange network bid request that the
// fixtures populate.
//
// Optional scalar fields are pointers so that "unset" and "set to the zero value" stay distinct,
// the same way proto2 has-bits behave on the wire. Byte fields follow the protobuf Go convention:
// nil is unset, a non-nil empty slice is set but empty.
package adx

// BidRequest is one bid opportunity offered by the exchange.
type BidRequest struct {
	ID                              []byte              `json:"id,omitempty"`
	GoogleUserID                    *string             `json:"google_user_id,omitempty"`
	ConstrainedUsageGoogleUserID    *string             `json:"constrained_usage_google_user_id,omitempty"`
	HostedMatchData                 []byte              `json:"hosted_match_data,omitempty"`
	ConstrainedUsageHostedMatchData []byte              `json:"constrained_usage_hosted_match_data,omitempty"`
	UserDataTreatment               []UserDataTreatment `json:"user_data_treatment,omitempty"`
	IP                              []byte              `json:"ip,omitempty"`
	UserAgent                       *string             `json:"user_agent,omitempty"`
	URL                             *string             `json:"url,omitempty"`
	AnonymousID                     *string             `json:"anonymous_id,omitempty"`
	SellerNetworkID                 *int32              `json:"seller_network_id,omitempty"`
	GeoCriteriaID                   *int32              `json:"geo_criteria_id,omitempty"`
	PostalCode                      *string             `json:"postal_code,omitempty"`
	PostalCodePrefix                *string             `json:"postal_code_prefix,omitempty"`
	EncryptedHyperlocalSet          []byte              `json:"encrypted_hyperlocal_set,omitempty"`
	UserDemographic                 *UserDemographic    `json:"user_demographic,omitempty"`
	DetectedLanguage                []string            `json:"detected_language,omitempty"`
	DetectedVertical                []*Vertical         `json:"detected_vertical,omitempty"`
	DetectedContentLabel            []int32             `json:"detected_content_label,omitempty"`
	Mobile                          *Mobile             `json:"mobile,omitempty"`
	Video                           *Video              `json:"video,omitempty"`
	AdSlot                          []*AdSlot           `json:"adslot,omitempty"`
}

// Vertical is a detected content vertical with its confidence weight.
type Vertical struct {
	ID     *int32   `json:"id,omitempty"`
	Weight *float32 `json:"weight,omitempty"`
}

type UserDemographic struct {
	Gender  *Gender `json:"gender,omitempty"`
	AgeLow  *int32  `json:"age_low,omitempty"`
	AgeHigh *int32  `json:"age_high,omitempty"`
}

// AdSlot is one ad placement within a BidRequest. Width and Height are parallel lists: the i-th
// width pairs with the i-th height.
type AdSlot struct {
	ID                        *int32            `json:"id,omitempty"`
	AdBlockKey                *int64            `json:"ad_block_key,omitempty"`
	Width                     []int32           `json:"width,omitempty"`
	Height                    []int32           `json:"height,omitempty"`
	AllowedVendorType         []int32           `json:"allowed_vendor_type,omitempty"`
	ExcludedSensitiveCategory []int32           `json:"excluded_sensitive_category,omitempty"`
	ExcludedAttribute         []int32           `json:"excluded_attribute,omitempty"`
	ExcludedProductCategory   []int32           `json:"excluded_product_category,omitempty"`
	SlotVisibility            *SlotVisibility   `json:"slot_visibility,omitempty"`
	TargetableChannel         []string          `json:"targetable_channel,omitempty"`
	MatchingAdData            []*MatchingAdData `json:"matching_ad_data,omitempty"`
}

// MatchingAdData is a candidate ad group for the slot, with the price terms that apply to it.
type MatchingAdData struct {
	AdGroupID        *int64              `json:"adgroup_id,omitempty"`
	MinimumCPMMicros *int64              `json:"minimum_cpm_micros,omitempty"`
	DirectDeal       []*DirectDeal       `json:"direct_deal,omitempty"`
	PricingRule      []*BuyerPricingRule `json:"pricing_rule,omitempty"`
}

type DirectDeal struct {
	DirectDealID   *int64 `json:"direct_deal_id,omitempty"`
	FixedCPMMicros *int64 `json:"fixed_cpm_micros,omitempty"`
}

type BuyerPricingRule struct {
	MinimumCPMMicros *int64 `json:"minimum_cpm_micros,omitempty"`
}

// Mobile carries the app and device context of a mobile request.
type Mobile struct {
	AppID                               *string           `json:"app_id,omitempty"`
	MobileDeviceType                    *MobileDeviceType `json:"mobile_device_type,omitempty"`
	OSVersion                           *DeviceOSVersion  `json:"os_version,omitempty"`
	Model                               *string           `json:"model,omitempty"`
	EncryptedHashedIDFA                 []byte            `json:"encrypted_hashed_idfa,omitempty"`
	ConstrainedUsageEncryptedHashedIDFA []byte            `json:"constrained_usage_encrypted_hashed_idfa,omitempty"`
	AppName                             *string           `json:"app_name,omitempty"`
	AppRating                           *float32          `json:"app_rating,omitempty"`
	IsInterstitialRequest               *bool             `json:"is_interstitial_request,omitempty"`
}

type DeviceOSVersion struct {
	OSVersionMajor *int32 `json:"os_version_major,omitempty"`
	OSVersionMinor *int32 `json:"os_version_minor,omitempty"`
	OSVersionMicro *int32 `json:"os_version_micro,omitempty"`
}

// Video describes an in-stream video opportunity.
type Video struct {
	AllowedVideoFormats []VideoFormat    `json:"allowed_video_formats,omitempty"`
	MinAdDuration       *int32           `json:"min_ad_duration,omitempty"`
	MaxAdDuration       *int32           `json:"max_ad_duration,omitempty"`
	VideoAdStartDelay   *int32           `json:"videoad_start_delay,omitempty"`
	CompanionSlot       []*CompanionSlot `json:"companion_slot,omitempty"`
}

type CompanionSlot struct {
	Width          []int32          `json:"width,omitempty"`
	Height         []int32          `json:"height,omitempty"`
	CreativeFormat []CreativeFormat `json:"creative_format,omitempty"`
}
