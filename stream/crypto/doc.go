// Package crypto implements the pre-shared-key cryptographic primitives of
// the STREAM protocol.
//
// Design goals:
//   - Byte-for-byte interoperability with peer STREAM implementations
//   - Deterministic hash-lock conditions and fulfillments (HMAC-SHA-256)
//   - Payload encryption via AES-256-GCM with a fixed wire envelope
//   - Domain-separated subkeys derived from a single shared secret
//   - No state between calls; every function is safe for concurrent use
//
// Both endpoints of a STREAM connection hold the same shared secret and
// independently compute identical conditions, fulfillments, and encryption
// keys from it without further negotiation. Nothing here knows about
// streams, packets, or transports; callers own the shared secret and the
// bytes that come back.
package crypto
