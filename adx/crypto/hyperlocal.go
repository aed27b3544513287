package crypto

// Hyperlocal encrypts and decrypts BidRequest.EncryptedHyperlocalSet payloads.
type Hyperlocal struct {
	crypto *Crypto
}

func NewHyperlocal(keys *Keys) *Hyperlocal {
	return &Hyperlocal{crypto: New(keys)}
}

// EncryptHyperlocal encrypts the serialized hyperlocal set under the given 16-byte IV.
func (h *Hyperlocal) EncryptHyperlocal(plainData, initVector []byte) ([]byte, error) {
	data, err := frame(plainData, initVector)
	if err != nil {
		return nil, err
	}
	return h.crypto.Encrypt(data)
}

// DecryptHyperlocal returns the serialized hyperlocal set carried by cipherData.
func (h *Hyperlocal) DecryptHyperlocal(cipherData []byte) ([]byte, error) {
	plain, err := h.crypto.Decrypt(cipherData)
	if err != nil {
		return nil, err
	}
	return plain[InitVectorSize : len(plain)-SignatureSize], nil
}
