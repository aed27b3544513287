package adxtest

import (
	"github.com/prebid/adx-fixtures/adx"
	"github.com/prebid/adx-fixtures/adx/crypto"
)

// Key material the fixtures encrypt with, in web-safe base64. These are the published AdX sample
// keys, so payloads can be checked against any independent implementation.
const (
	TestEncryptionKey = "sIxwz7yw62yrfoLGt12lIHKuYrK_S5kLuApI2BQe7Ac="
	TestIntegrityKey  = "v3fsVcMBMMHYzRhi7SpM0sdqwzvAxM6KPTu9OtVod5I="
)

// HyperlocalEncrypter encrypts a serialized hyperlocal set. *crypto.Hyperlocal implements it.
type HyperlocalEncrypter interface {
	EncryptHyperlocal(plainData, initVector []byte) ([]byte, error)
}

// TestKeys decodes TestEncryptionKey and TestIntegrityKey.
func TestKeys() (*crypto.Keys, error) {
	return crypto.KeysFromWebSafeBase64(TestEncryptionKey, TestIntegrityKey)
}

// EncryptHyperlocal serializes set and encrypts it with encrypter under an all-zero IV, so the
// output is the same on every run. A nil encrypter means the test keys. Encrypter errors are
// returned as is.
func EncryptHyperlocal(encrypter HyperlocalEncrypter, set *adx.HyperlocalSet) ([]byte, error) {
	if encrypter == nil {
		keys, err := TestKeys()
		if err != nil {
			return nil, err
		}
		encrypter = crypto.NewHyperlocal(keys)
	}
	return encrypter.EncryptHyperlocal(set.Marshal(), make([]byte, crypto.InitVectorSize))
}
