package adxtest

import (
	"github.com/prebid/adx-fixtures/adx"
	"github.com/xorcare/pointer"
)

// NewVideo builds the video context for shape. Unless shape is NoSlot it has one companion
// slot sized like the ad slot; from shape 2 on it also has a start delay and the companion
// takes image creatives.
func NewVideo(shape int) *adx.Video {
	video := &adx.Video{
		AllowedVideoFormats: Sample(shape, adx.VideoFormatFlash, adx.VideoFormatHTML5),
		MinAdDuration:       pointer.Int32(15),
		MaxAdDuration:       pointer.Int32(60),
	}
	if shape == NoSlot {
		return video
	}

	companion := &adx.CompanionSlot{
		Width:  Sizes(shape, 100),
		Height: Sizes(shape, 200),
	}
	if shape >= 2 {
		video.VideoAdStartDelay = pointer.Int32(5)
		companion.CreativeFormat = append(companion.CreativeFormat, adx.CreativeFormatImage)
	}
	video.CompanionSlot = []*adx.CompanionSlot{companion}
	return video
}
