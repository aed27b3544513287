package adx

import (
	"fmt"
	"math"

	"github.com/prebid/adx-fixtures/errortypes"
	"google.golang.org/protobuf/encoding/protowire"
)

// HyperlocalSet is the plaintext of BidRequest.EncryptedHyperlocalSet: zero or more hyperlocal
// regions and, optionally, their center point.
type HyperlocalSet struct {
	Hyperlocal  []*Hyperlocal `json:"hyperlocal,omitempty"`
	CenterPoint *Point        `json:"center_point,omitempty"`
}

// Hyperlocal is a polygon given by its corners.
type Hyperlocal struct {
	Corners []*Point `json:"corners,omitempty"`
}

type Point struct {
	Latitude  *float32 `json:"latitude,omitempty"`
	Longitude *float32 `json:"longitude,omitempty"`
}

const (
	hyperlocalSetHyperlocalField  protowire.Number = 1
	hyperlocalSetCenterPointField protowire.Number = 2
	hyperlocalCornersField        protowire.Number = 1
	pointLatitudeField            protowire.Number = 1
	pointLongitudeField           protowire.Number = 2
)

// Marshal encodes the set in protobuf wire format, fields in ascending number order.
// An empty set encodes to an empty, non-nil slice.
func (s *HyperlocalSet) Marshal() []byte {
	b := []byte{}
	if s == nil {
		return b
	}
	for _, h := range s.Hyperlocal {
		b = protowire.AppendTag(b, hyperlocalSetHyperlocalField, protowire.BytesType)
		b = protowire.AppendBytes(b, h.marshal())
	}
	if s.CenterPoint != nil {
		b = protowire.AppendTag(b, hyperlocalSetCenterPointField, protowire.BytesType)
		b = protowire.AppendBytes(b, s.CenterPoint.marshal())
	}
	return b
}

func (h *Hyperlocal) marshal() []byte {
	var b []byte
	for _, corner := range h.Corners {
		b = protowire.AppendTag(b, hyperlocalCornersField, protowire.BytesType)
		b = protowire.AppendBytes(b, corner.marshal())
	}
	return b
}

func (p *Point) marshal() []byte {
	var b []byte
	if p.Latitude != nil {
		b = protowire.AppendTag(b, pointLatitudeField, protowire.Fixed32Type)
		b = protowire.AppendFixed32(b, math.Float32bits(*p.Latitude))
	}
	if p.Longitude != nil {
		b = protowire.AppendTag(b, pointLongitudeField, protowire.Fixed32Type)
		b = protowire.AppendFixed32(b, math.Float32bits(*p.Longitude))
	}
	return b
}

// UnmarshalHyperlocalSet parses wire bytes produced by Marshal (or by the exchange).
// Unknown fields are skipped.
func UnmarshalHyperlocalSet(b []byte) (*HyperlocalSet, error) {
	set := &HyperlocalSet{}
	err := walkFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if typ != protowire.BytesType {
			return 0, nil
		}
		v, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return n, nil
		}
		switch num {
		case hyperlocalSetHyperlocalField:
			h, err := unmarshalHyperlocal(v)
			if err != nil {
				return 0, err
			}
			set.Hyperlocal = append(set.Hyperlocal, h)
		case hyperlocalSetCenterPointField:
			p, err := unmarshalPoint(v)
			if err != nil {
				return 0, err
			}
			set.CenterPoint = p
		}
		return n, nil
	})
	if err != nil {
		return nil, err
	}
	return set, nil
}

func unmarshalHyperlocal(b []byte) (*Hyperlocal, error) {
	h := &Hyperlocal{}
	err := walkFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num != hyperlocalCornersField || typ != protowire.BytesType {
			return 0, nil
		}
		v, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return n, nil
		}
		p, err := unmarshalPoint(v)
		if err != nil {
			return 0, err
		}
		h.Corners = append(h.Corners, p)
		return n, nil
	})
	if err != nil {
		return nil, err
	}
	return h, nil
}

func unmarshalPoint(b []byte) (*Point, error) {
	p := &Point{}
	err := walkFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if typ != protowire.Fixed32Type {
			return 0, nil
		}
		v, n := protowire.ConsumeFixed32(b)
		if n < 0 {
			return n, nil
		}
		f := math.Float32frombits(v)
		switch num {
		case pointLatitudeField:
			p.Latitude = &f
		case pointLongitudeField:
			p.Longitude = &f
		}
		return n, nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// walkFields calls fn for every field in b with the bytes following the tag. fn reports how many
// of those bytes it consumed; zero means the field should be skipped and a negative count is a
// protowire error code.
func walkFields(b []byte, fn func(num protowire.Number, typ protowire.Type, b []byte) (int, error)) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return parseError(n)
		}
		b = b[n:]

		n, err := fn(num, typ, b)
		if err != nil {
			return err
		}
		if n == 0 {
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return parseError(n)
		}
		b = b[n:]
	}
	return nil
}

func parseError(n int) error {
	return &errortypes.FailedToUnmarshal{
		Message: fmt.Sprintf("adx: malformed wire data: %v", protowire.ParseError(n)),
	}
}
