package crypto

import "crypto/rand"

// randomBytes fills b from the OS entropy source. Failure to obtain
// randomness means nonces and conditions would become predictable, so the
// process stops rather than continuing degraded.
func randomBytes(b []byte) {
	if _, err := rand.Read(b); err != nil {
		panic("crypto: entropy source failed: " + err.Error())
	}
}
