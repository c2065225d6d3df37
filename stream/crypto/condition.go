package crypto

const (
	// ConditionLength is the size of a condition or fulfillment.
	ConditionLength = 32
	// TokenLength is the size of a correlation token.
	TokenLength = 18
)

// GenerateFulfillment computes the fulfillment for the given data: the
// HMAC-SHA-256 of data under a subkey derived from the shared secret and
// the fulfillment label. Deterministic; both endpoints compute the same
// value independently.
func GenerateFulfillment(sharedSecret, data []byte) [32]byte {
	key := HMACSHA256(sharedSecret, fulfillmentGenerationString)
	return HMACSHA256(key[:], data)
}

// GenerateCondition computes the condition matching GenerateFulfillment for
// the same inputs: the SHA-256 of the fulfillment. The condition can be
// published; only a holder of the shared secret can produce its preimage.
func GenerateCondition(sharedSecret, data []byte) [32]byte {
	fulfillment := GenerateFulfillment(sharedSecret, data)
	return HashSHA256(fulfillment[:])
}

// RandomCondition returns 32 random bytes: a condition with no known
// fulfillment, used to make a transfer deliberately unfulfillable.
func RandomCondition() [32]byte {
	var condition [ConditionLength]byte
	randomBytes(condition[:])
	return condition
}

// GenerateToken returns an 18-byte random identifier for caller-side
// correlation. Unrelated to the hash-lock scheme.
func GenerateToken() [18]byte {
	var token [TokenLength]byte
	randomBytes(token[:])
	return token
}
