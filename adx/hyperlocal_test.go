package adx

import (
	"testing"

	"github.com/prebid/adx-fixtures/errortypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xorcare/pointer"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestHyperlocalSetMarshal(t *testing.T) {
	testCases := []struct {
		desc     string
		set      *HyperlocalSet
		expected []byte
	}{
		{
			desc:     "nil",
			set:      nil,
			expected: []byte{},
		},
		{
			desc:     "empty",
			set:      &HyperlocalSet{},
			expected: []byte{},
		},
		{
			desc: "center-point",
			set: &HyperlocalSet{
				CenterPoint: &Point{Latitude: pointer.Float32(45), Longitude: pointer.Float32(90)},
			},
			expected: []byte{
				0x12, 0x0A,
				0x0D, 0x00, 0x00, 0x34, 0x42,
				0x15, 0x00, 0x00, 0xB4, 0x42,
			},
		},
		{
			desc: "one-corner-latitude-only",
			set: &HyperlocalSet{
				Hyperlocal: []*Hyperlocal{{Corners: []*Point{{Latitude: pointer.Float32(1)}}}},
			},
			expected: []byte{
				0x0A, 0x07,
				0x0A, 0x05,
				0x0D, 0x00, 0x00, 0x80, 0x3F,
			},
		},
	}

	for _, test := range testCases {
		actual := test.set.Marshal()
		assert.NotNil(t, actual, test.desc)
		assert.Equal(t, test.expected, actual, test.desc)
	}
}

func TestHyperlocalSetRoundTrip(t *testing.T) {
	set := &HyperlocalSet{
		Hyperlocal: []*Hyperlocal{
			{Corners: []*Point{
				{Latitude: pointer.Float32(40.7), Longitude: pointer.Float32(-74)},
				{Latitude: pointer.Float32(40.8), Longitude: pointer.Float32(-73.9)},
			}},
			{},
		},
		CenterPoint: &Point{Latitude: pointer.Float32(40.75), Longitude: pointer.Float32(-73.95)},
	}

	actual, err := UnmarshalHyperlocalSet(set.Marshal())
	require.NoError(t, err)
	assert.Equal(t, set.Hyperlocal[0], actual.Hyperlocal[0])
	assert.Empty(t, actual.Hyperlocal[1].Corners)
	assert.Equal(t, set.CenterPoint, actual.CenterPoint)
}

func TestUnmarshalHyperlocalSetSkipsUnknownFields(t *testing.T) {
	b := protowire.AppendTag(nil, 9, protowire.VarintType)
	b = protowire.AppendVarint(b, 300)
	b = append(b, (&HyperlocalSet{CenterPoint: &Point{Latitude: pointer.Float32(1)}}).Marshal()...)

	actual, err := UnmarshalHyperlocalSet(b)
	require.NoError(t, err)
	require.NotNil(t, actual.CenterPoint)
	assert.Equal(t, float32(1), *actual.CenterPoint.Latitude)
	assert.Nil(t, actual.CenterPoint.Longitude)
}

func TestUnmarshalHyperlocalSetMalformed(t *testing.T) {
	testCases := []struct {
		desc  string
		given []byte
	}{
		{
			desc:  "truncated-length",
			given: []byte{0x12, 0x0A, 0x0D},
		},
		{
			desc:  "truncated-fixed32",
			given: []byte{0x12, 0x03, 0x0D, 0x00, 0x00},
		},
		{
			desc:  "not-protobuf",
			given: []byte{1, 2, 3},
		},
	}

	for _, test := range testCases {
		_, err := UnmarshalHyperlocalSet(test.given)
		if assert.Error(t, err, test.desc) {
			assert.IsType(t, &errortypes.FailedToUnmarshal{}, err, test.desc)
		}
	}
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "ABOVE_THE_FOLD", SlotVisibilityAboveTheFold.String())
	assert.Equal(t, "HIGHEND_PHONE", MobileDeviceTypeHighendPhone.String())
	assert.Equal(t, "FEMALE", GenderFemale.String())
	assert.Equal(t, "TAG_FOR_CHILD_DIRECTED_TREATMENT", TagForChildDirectedTreatment.String())
	assert.Equal(t, "VIDEO_HTML5", VideoFormatHTML5.String())
	assert.Equal(t, "IMAGE_CREATIVE", CreativeFormatImage.String())
	assert.Equal(t, "7", SlotVisibility(7).String())
}

func TestEnumPointersAreCopies(t *testing.T) {
	v := SlotVisibilityBelowTheFold
	p := v.Enum()
	*p = SlotVisibilityAboveTheFold
	assert.Equal(t, SlotVisibilityBelowTheFold, v)
}
