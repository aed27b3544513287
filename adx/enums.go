package adx

import "strconv"

type SlotVisibility int32

const (
	SlotVisibilityNoDetection  SlotVisibility = 0
	SlotVisibilityAboveTheFold SlotVisibility = 1
	SlotVisibilityBelowTheFold SlotVisibility = 2
)

// Enum returns a pointer to a copy of v, for populating optional fields.
func (v SlotVisibility) Enum() *SlotVisibility {
	return &v
}

func (v SlotVisibility) String() string {
	switch v {
	case SlotVisibilityNoDetection:
		return "NO_DETECTION"
	case SlotVisibilityAboveTheFold:
		return "ABOVE_THE_FOLD"
	case SlotVisibilityBelowTheFold:
		return "BELOW_THE_FOLD"
	}
	return strconv.Itoa(int(v))
}

type MobileDeviceType int32

const (
	MobileDeviceTypeUnknown      MobileDeviceType = 0
	MobileDeviceTypeHighendPhone MobileDeviceType = 1
	MobileDeviceTypeTablet       MobileDeviceType = 2
)

func (t MobileDeviceType) Enum() *MobileDeviceType {
	return &t
}

func (t MobileDeviceType) String() string {
	switch t {
	case MobileDeviceTypeUnknown:
		return "UNKNOWN_DEVICE"
	case MobileDeviceTypeHighendPhone:
		return "HIGHEND_PHONE"
	case MobileDeviceTypeTablet:
		return "TABLET"
	}
	return strconv.Itoa(int(t))
}

type Gender int32

const (
	GenderUnknown Gender = 0
	GenderMale    Gender = 1
	GenderFemale  Gender = 2
)

func (g Gender) Enum() *Gender {
	return &g
}

func (g Gender) String() string {
	switch g {
	case GenderUnknown:
		return "UNKNOWN"
	case GenderMale:
		return "MALE"
	case GenderFemale:
		return "FEMALE"
	}
	return strconv.Itoa(int(g))
}

// UserDataTreatment lists restrictions on how user data in the request may be used.
type UserDataTreatment int32

const (
	TagForChildDirectedTreatment UserDataTreatment = 0
)

func (t UserDataTreatment) String() string {
	if t == TagForChildDirectedTreatment {
		return "TAG_FOR_CHILD_DIRECTED_TREATMENT"
	}
	return strconv.Itoa(int(t))
}

type VideoFormat int32

const (
	VideoFormatFlash VideoFormat = 0
	VideoFormatHTML5 VideoFormat = 1
)

func (f VideoFormat) String() string {
	switch f {
	case VideoFormatFlash:
		return "VIDEO_FLASH"
	case VideoFormatHTML5:
		return "VIDEO_HTML5"
	}
	return strconv.Itoa(int(f))
}

type CreativeFormat int32

const (
	CreativeFormatImage CreativeFormat = 0
	CreativeFormatFlash CreativeFormat = 1
	CreativeFormatHTML  CreativeFormat = 2
)

func (f CreativeFormat) String() string {
	switch f {
	case CreativeFormatImage:
		return "IMAGE_CREATIVE"
	case CreativeFormatFlash:
		return "FLASH_CREATIVE"
	case CreativeFormatHTML:
		return "HTML_CREATIVE"
	}
	return strconv.Itoa(int(f))
}
