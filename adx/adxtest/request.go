package adxtest

import (
	"github.com/prebid/adx-fixtures/adx"
	"github.com/xorcare/pointer"
)

// NoSlot is the shape that builds a request without an ad slot.
const NoSlot = -1

// RequestID is the id of every generated request.
const RequestID = "01234567890123456789"

type requestOptions struct {
	encrypter HyperlocalEncrypter
	mobile    bool
	video     bool
}

// RequestOption customizes NewRequest.
type RequestOption func(*requestOptions)

// WithMobile attaches NewMobile(shape) to the request.
func WithMobile() RequestOption {
	return func(o *requestOptions) {
		o.mobile = true
	}
}

// WithVideo attaches NewVideo(shape) to the request.
func WithVideo() RequestOption {
	return func(o *requestOptions) {
		o.video = true
	}
}

// WithHyperlocalEncrypter replaces the test-key encrypter used for the hyperlocal payloads of
// shapes 3 and up.
func WithHyperlocalEncrypter(encrypter HyperlocalEncrypter) RequestOption {
	return func(o *requestOptions) {
		o.encrypter = encrypter
	}
}

// NewDefaultRequest is the minimal request: shape 0, not child directed.
func NewDefaultRequest() (*adx.BidRequest, error) {
	return NewRequest(0, false)
}

// NewRequest builds the request for shape. The repeated content fields hold min(shape, pool)
// entries, the geo payload is chosen by geoVariantFor, and unless shape is NoSlot there is exactly
// one ad slot with shape sizes. With coppa the request is tagged for child directed treatment.
//
// The only error source is the hyperlocal encrypter.
func NewRequest(shape int, coppa bool, opts ...RequestOption) (*adx.BidRequest, error) {
	options := &requestOptions{}
	for _, opt := range opts {
		opt(options)
	}

	verticals := Sample(shape,
		newVertical(1, 0.25),
		newVertical(99, 0.33),
		newVertical(2, 0.75),
		newVertical(99, 0.99))

	req := &adx.BidRequest{
		ID:                              []byte(RequestID),
		GoogleUserID:                    pointer.String("john"),
		ConstrainedUsageGoogleUserID:    pointer.String("j"),
		HostedMatchData:                 []byte{0xEC, 0x22, 0xE6, 0x9C, 0xC8, 0xB0, 0x4A, 0xCA, 0xBB, 0x6C, 0xD4, 0xDA, 0x88, 0xFB, 0x33, 0xB6},
		ConstrainedUsageHostedMatchData: []byte{},
		DetectedContentLabel:            Sample[int32](shape, 40, 41, 999),
		DetectedLanguage:                Sample(shape, "en", "en_US", "pt", "pt_BR"),
		DetectedVertical:                verticals,
	}

	if err := geoVariantFor(shape)(req, options); err != nil {
		return nil, err
	}

	if shape != NoSlot {
		req.AdSlot = []*adx.AdSlot{newAdSlot(shape)}
	}
	if coppa {
		req.UserDataTreatment = []adx.UserDataTreatment{adx.TagForChildDirectedTreatment}
	}
	if options.mobile {
		req.Mobile = NewMobile(shape)
	}
	if options.video {
		req.Video = NewVideo(shape)
	}
	return req, nil
}

func newVertical(id int32, weight float32) *adx.Vertical {
	return &adx.Vertical{ID: pointer.Int32(id), Weight: pointer.Float32(weight)}
}

// geoVariant fills in the geo and identity fields of one shape. Variants never touch each
// other's fields.
type geoVariant func(req *adx.BidRequest, options *requestOptions) error

// geoVariantFor maps every shape to exactly one variant:
//
//	shape <= 0  none (covers NoSlot and the default request)
//	shape == 1  IPv4 address, user agent, geo criteria
//	shape == 2  IPv6 address, URL, postal code, demographic, malformed hyperlocal
//	shape == 3  empty demographic, postal code prefix, encrypted center point
//	shape >= 4  zero geo criteria id, encrypted empty hyperlocal set
func geoVariantFor(shape int) geoVariant {
	switch {
	case shape <= 0:
		return noGeo
	case shape == 1:
		return ipv4Geo
	case shape == 2:
		return ipv6Geo
	case shape == 3:
		return postalCodePrefixGeo
	default:
		return emptyHyperlocalGeo
	}
}

func noGeo(*adx.BidRequest, *requestOptions) error {
	return nil
}

func ipv4Geo(req *adx.BidRequest, _ *requestOptions) error {
	req.IP = []byte{192, 168, 1}
	req.UserAgent = pointer.String("Chrome")
	req.GeoCriteriaID = pointer.Int32(9058770)
	req.AnonymousID = pointer.String("mysite.com")
	req.SellerNetworkID = pointer.Int32(1)
	return nil
}

func ipv6Geo(req *adx.BidRequest, _ *requestOptions) error {
	req.IP = []byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x1F, 0x2F, 0x3F, 0x4F, 0x5F, 0x6F}
	req.URL = pointer.String("mysite.com/newsfeed")
	req.PostalCode = pointer.String("10011")
	req.UserDemographic = &adx.UserDemographic{
		Gender:  adx.GenderFemale.Enum(),
		AgeLow:  pointer.Int32(18),
		AgeHigh: pointer.Int32(24),
	}
	// Not encrypted: too short to hold an IV and signature, so decrypting it must fail.
	req.EncryptedHyperlocalSet = []byte{1, 2, 3}
	return nil
}

func postalCodePrefixGeo(req *adx.BidRequest, options *requestOptions) error {
	encrypted, err := EncryptHyperlocal(options.encrypter, &adx.HyperlocalSet{
		CenterPoint: &adx.Point{
			Latitude:  pointer.Float32(45),
			Longitude: pointer.Float32(90),
		},
	})
	if err != nil {
		return err
	}
	req.UserDemographic = &adx.UserDemographic{}
	req.PostalCodePrefix = pointer.String("100")
	req.EncryptedHyperlocalSet = encrypted
	return nil
}

func emptyHyperlocalGeo(req *adx.BidRequest, options *requestOptions) error {
	encrypted, err := EncryptHyperlocal(options.encrypter, &adx.HyperlocalSet{})
	if err != nil {
		return err
	}
	// Zero is not a valid geo criteria id.
	req.GeoCriteriaID = pointer.Int32(0)
	req.EncryptedHyperlocalSet = encrypted
	return nil
}
