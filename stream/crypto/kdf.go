package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
)

// Domain-separation labels fixed by the STREAM protocol. Keys derived under
// different labels are cryptographically independent even though both come
// from the same shared secret.
var (
	encryptionKeyString         = []byte("ilp_stream_encryption")
	fulfillmentGenerationString = []byte("ilp_stream_fulfillment")
)

// HMACSHA256 returns the HMAC-SHA-256 of message under the provided secret
// key. The key may be any length.
func HMACSHA256(key, message []byte) [32]byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(message)
	var out [32]byte
	mac.Sum(out[:0])
	return out
}

// HashSHA256 returns the 32-byte SHA-256 digest of preimage.
func HashSHA256(preimage []byte) [32]byte {
	return sha256.Sum256(preimage)
}
