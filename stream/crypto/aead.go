package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
)

const (
	// NonceLength is the AES-GCM nonce size used on the wire.
	NonceLength = 12
	// AuthTagLength is the AES-GCM authentication tag size.
	AuthTagLength = 16
	// EnvelopeOverhead is the fixed per-envelope overhead (nonce + tag).
	EnvelopeOverhead = NonceLength + AuthTagLength
)

var (
	ErrEnvelopeTooShort     = errors.New("crypto: envelope too short")
	ErrAuthenticationFailed = errors.New("crypto: authentication failed")
)

// newAESGCM builds the AEAD for a 32-byte derived key. Construction can only
// fail on a malformed key length, which derivation rules out; if it happens
// anyway the security invariants do not hold and the process stops.
func newAESGCM(key []byte) cipher.AEAD {
	block, err := aes.NewCipher(key)
	if err != nil {
		panic("crypto: failed to construct AES cipher: " + err.Error())
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		panic("crypto: failed to construct GCM: " + err.Error())
	}
	return aead
}

// Encrypt seals plaintext under a key derived from the shared secret and the
// encryption label, using AES-256-GCM with a fresh random nonce and empty
// additional data.
//
// Envelope format:
//
//	12 bytes: nonce
//	16 bytes: auth tag
//	N bytes:  ciphertext body
//
// Note the tag precedes the body on the wire, unlike the cipher's natural
// append order.
func Encrypt(sharedSecret, plaintext []byte) []byte {
	var nonce [NonceLength]byte
	randomBytes(nonce[:])
	return encryptWithNonce(sharedSecret, plaintext, nonce)
}

// encryptWithNonce is Encrypt with a caller-supplied nonce. Only tests use
// it, for deterministic vectors: reusing a nonce under the same derived key
// breaks GCM, so production callers always go through Encrypt.
func encryptWithNonce(sharedSecret, plaintext []byte, nonce [NonceLength]byte) []byte {
	key := HMACSHA256(sharedSecret, encryptionKeyString)
	aead := newAESGCM(key[:])

	// Seal appends body || tag; the wire wants nonce || tag || body.
	sealed := aead.Seal(nil, nonce[:], plaintext, nil)
	tagAt := len(sealed) - AuthTagLength

	envelope := make([]byte, 0, NonceLength+len(sealed))
	envelope = append(envelope, nonce[:]...)
	envelope = append(envelope, sealed[tagAt:]...)
	envelope = append(envelope, sealed[:tagAt]...)
	return envelope
}

// Decrypt opens an envelope produced by Encrypt (or a peer implementation)
// with the same shared secret.
//
// Envelopes shorter than 16 bytes are rejected as malformed before any
// cipher work. For anything at least that long, the first 12 bytes are the
// nonce and up to the next 16 the tag; an envelope shorter than the full
// 28-byte overhead therefore reaches the cipher with a truncated tag and
// fails authentication rather than being rejected on length. That lenient
// split matches the original wire fixtures and keeps every post-parse
// failure indistinguishable to the caller.
func Decrypt(sharedSecret, envelope []byte) ([]byte, error) {
	if len(envelope) < AuthTagLength {
		return nil, ErrEnvelopeTooShort
	}
	key := HMACSHA256(sharedSecret, encryptionKeyString)
	aead := newAESGCM(key[:])

	nonce := envelope[:NonceLength]
	rest := envelope[NonceLength:]
	tagLen := AuthTagLength
	if len(rest) < tagLen {
		tagLen = len(rest)
	}

	// GCM expects body || tag.
	ciphertext := make([]byte, 0, len(rest))
	ciphertext = append(ciphertext, rest[tagLen:]...)
	ciphertext = append(ciphertext, rest[:tagLen]...)

	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}
	return plaintext, nil
}
