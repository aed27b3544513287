package adxtest

import (
	"github.com/prebid/adx-fixtures/adx"
	"github.com/xorcare/pointer"
)

// NewMobile returns a full device profile for even shapes and an empty Mobile for odd ones.
func NewMobile(shape int) *adx.Mobile {
	if shape%2 != 0 {
		return &adx.Mobile{}
	}
	return &adx.Mobile{
		AppID:            pointer.String("com.mygame"),
		MobileDeviceType: adx.MobileDeviceTypeHighendPhone.Enum(),
		OSVersion: &adx.DeviceOSVersion{
			OSVersionMajor: pointer.Int32(3),
			OSVersionMinor: pointer.Int32(2),
			OSVersionMicro: pointer.Int32(1),
		},
		Model:                               pointer.String("MotoX"),
		EncryptedHashedIDFA:                 []byte{},
		ConstrainedUsageEncryptedHashedIDFA: []byte{},
		AppName:                             pointer.String("Tic-Tac-Toe"),
		AppRating:                           pointer.Float32(4.2),
		IsInterstitialRequest:               pointer.Bool(true),
	}
}
