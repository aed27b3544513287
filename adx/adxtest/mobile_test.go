package adxtest

import (
	"testing"

	"github.com/prebid/adx-fixtures/adx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMobileEvenShapes(t *testing.T) {
	for _, shape := range []int{0, 2, 4, -2} {
		mobile := NewMobile(shape)
		require.NotNil(t, mobile, "shape %d", shape)

		assert.Equal(t, "com.mygame", *mobile.AppID, "shape %d", shape)
		assert.Equal(t, adx.MobileDeviceTypeHighendPhone, *mobile.MobileDeviceType, "shape %d", shape)
		require.NotNil(t, mobile.OSVersion, "shape %d", shape)
		assert.Equal(t, int32(3), *mobile.OSVersion.OSVersionMajor, "shape %d", shape)
		assert.Equal(t, int32(2), *mobile.OSVersion.OSVersionMinor, "shape %d", shape)
		assert.Equal(t, int32(1), *mobile.OSVersion.OSVersionMicro, "shape %d", shape)
		assert.Equal(t, "MotoX", *mobile.Model, "shape %d", shape)
		assert.Equal(t, []byte{}, mobile.EncryptedHashedIDFA, "shape %d", shape)
		assert.NotNil(t, mobile.ConstrainedUsageEncryptedHashedIDFA, "shape %d", shape)
		assert.Equal(t, "Tic-Tac-Toe", *mobile.AppName, "shape %d", shape)
		assert.Equal(t, float32(4.2), *mobile.AppRating, "shape %d", shape)
		assert.True(t, *mobile.IsInterstitialRequest, "shape %d", shape)
	}
}

func TestNewMobileOddShapes(t *testing.T) {
	for _, shape := range []int{NoSlot, 1, 3, 5} {
		assert.Equal(t, &adx.Mobile{}, NewMobile(shape), "shape %d", shape)
	}
}
