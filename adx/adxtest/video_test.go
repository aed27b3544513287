package adxtest

import (
	"testing"

	"github.com/prebid/adx-fixtures/adx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVideo(t *testing.T) {
	testCases := []struct {
		desc               string
		shape              int
		expectedFormats    []adx.VideoFormat
		expectCompanion    bool
		expectedStartDelay *int32
		expectedCreatives  []adx.CreativeFormat
	}{
		{
			desc:            "no-slot",
			shape:           NoSlot,
			expectedFormats: []adx.VideoFormat{},
		},
		{
			desc:            "default",
			shape:           0,
			expectedFormats: []adx.VideoFormat{},
			expectCompanion: true,
		},
		{
			desc:            "one",
			shape:           1,
			expectedFormats: []adx.VideoFormat{adx.VideoFormatFlash},
			expectCompanion: true,
		},
		{
			desc:               "two",
			shape:              2,
			expectedFormats:    []adx.VideoFormat{adx.VideoFormatFlash, adx.VideoFormatHTML5},
			expectCompanion:    true,
			expectedStartDelay: int32Ptr(5),
			expectedCreatives:  []adx.CreativeFormat{adx.CreativeFormatImage},
		},
		{
			desc:               "five",
			shape:              5,
			expectedFormats:    []adx.VideoFormat{adx.VideoFormatFlash, adx.VideoFormatHTML5},
			expectCompanion:    true,
			expectedStartDelay: int32Ptr(5),
			expectedCreatives:  []adx.CreativeFormat{adx.CreativeFormatImage},
		},
	}

	for _, test := range testCases {
		video := NewVideo(test.shape)

		assert.Equal(t, test.expectedFormats, video.AllowedVideoFormats, test.desc)
		assert.Equal(t, int32(15), *video.MinAdDuration, test.desc)
		assert.Equal(t, int32(60), *video.MaxAdDuration, test.desc)
		assert.Equal(t, test.expectedStartDelay, video.VideoAdStartDelay, test.desc)

		if !test.expectCompanion {
			assert.Nil(t, video.CompanionSlot, test.desc)
			continue
		}
		require.Len(t, video.CompanionSlot, 1, test.desc)
		companion := video.CompanionSlot[0]
		assert.Equal(t, Sizes(test.shape, 100), companion.Width, test.desc)
		assert.Equal(t, Sizes(test.shape, 200), companion.Height, test.desc)
		assert.Equal(t, test.expectedCreatives, companion.CreativeFormat, test.desc)
	}
}

func int32Ptr(v int32) *int32 {
	return &v
}
