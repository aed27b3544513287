// Package crypto implements the DoubleClick Ad Exchange encryption scheme used for price,
// advertising id and hyperlocal fields.
//
// A framed message is laid out as
//
//	initialization vector (16) | payload XOR pad | signature (4)
//
// where the pad is produced 20 bytes at a time by HMAC-SHA1 over the IV and a section counter,
// and the signature is the head of HMAC-SHA1 over the plaintext and the IV.
package crypto

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"fmt"
	"hash"

	"github.com/prebid/adx-fixtures/errortypes"
)

const (
	InitVectorSize = 16
	SignatureSize  = 4
	Overhead       = InitVectorSize + SignatureSize

	counterPageSize = sha1.Size
	counterSections = 3*256 + 1

	// MaxPayloadSize is the largest payload the section counter can cover.
	MaxPayloadSize = counterPageSize * counterSections
)

// Keys holds the exchange-issued key material.
type Keys struct {
	encryption []byte
	integrity  []byte
}

// NewKeys copies the raw key material. Both keys must be non-empty.
func NewKeys(encryption, integrity []byte) (*Keys, error) {
	if len(encryption) == 0 || len(integrity) == 0 {
		return nil, &errortypes.BadInput{Message: "crypto: encryption and integrity keys must not be empty"}
	}
	return &Keys{
		encryption: append([]byte(nil), encryption...),
		integrity:  append([]byte(nil), integrity...),
	}, nil
}

// KeysFromWebSafeBase64 decodes keys in the padded web-safe base64 form the exchange UI shows.
func KeysFromWebSafeBase64(encryption, integrity string) (*Keys, error) {
	e, err := base64.URLEncoding.DecodeString(encryption)
	if err != nil {
		return nil, &errortypes.BadInput{Message: fmt.Sprintf("crypto: bad encryption key: %v", err)}
	}
	i, err := base64.URLEncoding.DecodeString(integrity)
	if err != nil {
		return nil, &errortypes.BadInput{Message: fmt.Sprintf("crypto: bad integrity key: %v", err)}
	}
	return NewKeys(e, i)
}

// Crypto encrypts and decrypts framed messages with one set of keys.
// It holds no mutable state and is safe for concurrent use.
type Crypto struct {
	keys *Keys
}

func New(keys *Keys) *Crypto {
	return &Crypto{keys: keys}
}

// Encrypt takes a framed buffer whose IV and payload are filled in, and returns a new buffer
// with the payload encrypted and the signature written. The input is not modified.
func (c *Crypto) Encrypt(plainData []byte) ([]byte, error) {
	if err := checkFrame(plainData); err != nil {
		return nil, err
	}
	work := append([]byte(nil), plainData...)
	payload := work[InitVectorSize : len(work)-SignatureSize]

	signature := c.sign(payload, work[:InitVectorSize])
	copy(work[len(work)-SignatureSize:], signature)
	c.xorPad(work)
	return work, nil
}

// Decrypt reverses Encrypt, returning the framed buffer with the payload in the clear.
func (c *Crypto) Decrypt(cipherData []byte) ([]byte, error) {
	if err := checkFrame(cipherData); err != nil {
		return nil, err
	}
	work := append([]byte(nil), cipherData...)
	c.xorPad(work)

	payload := work[InitVectorSize : len(work)-SignatureSize]
	signature := c.sign(payload, work[:InitVectorSize])
	if !hmac.Equal(signature, work[len(work)-SignatureSize:]) {
		return nil, &errortypes.SignatureMismatch{Message: "crypto: signature mismatch"}
	}
	return work, nil
}

func (c *Crypto) sign(payload, initVector []byte) []byte {
	mac := hmac.New(sha1.New, c.keys.integrity)
	mac.Write(payload)
	mac.Write(initVector)
	return mac.Sum(nil)[:SignatureSize]
}

// xorPad applies the keystream to the payload region of work in place. The counter appended to
// the IV is empty for the first section, then a single byte starting at zero; each time the
// last counter byte wraps, the counter grows by one byte.
func (c *Crypto) xorPad(work []byte) {
	payloadSize := len(work) - Overhead
	sections := (payloadSize + counterPageSize - 1) / counterPageSize
	mac := hmac.New(sha1.New, c.keys.encryption)

	var counter []byte
	for section := 0; section < sections; section++ {
		pad := hmacPad(mac, work[:InitVectorSize], counter)

		base := InitVectorSize + section*counterPageSize
		size := payloadSize - section*counterPageSize
		if size > counterPageSize {
			size = counterPageSize
		}
		for i := 0; i < size; i++ {
			work[base+i] ^= pad[i]
		}

		if len(counter) == 0 {
			counter = append(counter, 0)
			continue
		}
		counter[len(counter)-1]++
		if counter[len(counter)-1] == 0 {
			counter = append(counter, 0)
		}
	}
}

func hmacPad(mac hash.Hash, initVector, counter []byte) []byte {
	mac.Reset()
	mac.Write(initVector)
	mac.Write(counter)
	return mac.Sum(nil)
}

func checkFrame(data []byte) error {
	if len(data) < Overhead {
		return &errortypes.BadInput{
			Message: fmt.Sprintf("crypto: message is %d bytes, needs at least %d", len(data), Overhead),
		}
	}
	if len(data)-Overhead > MaxPayloadSize {
		return &errortypes.BadInput{
			Message: fmt.Sprintf("crypto: payload is %d bytes, exceeds limit of %d", len(data)-Overhead, MaxPayloadSize),
		}
	}
	return nil
}

// frame lays out iv, room for the payload and room for the signature.
func frame(payload, initVector []byte) ([]byte, error) {
	if len(initVector) != InitVectorSize {
		return nil, &errortypes.BadInput{
			Message: fmt.Sprintf("crypto: initialization vector is %d bytes, must be %d", len(initVector), InitVectorSize),
		}
	}
	data := make([]byte, 0, len(payload)+Overhead)
	data = append(data, initVector...)
	data = append(data, payload...)
	return append(data, make([]byte, SignatureSize)...), nil
}
