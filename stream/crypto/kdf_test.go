package crypto

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func mustDecodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// RFC 4231 test case 2.
func TestHMACSHA256(t *testing.T) {
	key := []byte("Jefe")
	message := []byte("what do ya want for nothing?")
	want := mustDecodeHex("5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843")

	got := HMACSHA256(key, message)
	if !bytes.Equal(got[:], want) {
		t.Fatalf("HMACSHA256 mismatch\ngot:  %x\nwant: %x", got, want)
	}
}

// RFC 4231 test case 6 uses a key longer than the hash block; the
// implementation must accept arbitrary-length keys.
func TestHMACSHA256LongKey(t *testing.T) {
	key := bytes.Repeat([]byte{0xaa}, 131)
	message := []byte("Test Using Larger Than Block-Size Key - Hash Key First")
	want := mustDecodeHex("60e431591ee0b67f0d8a26aacbf5b77f8e0bc6213728c5140546040f0ee37f54")

	got := HMACSHA256(key, message)
	if !bytes.Equal(got[:], want) {
		t.Fatalf("HMACSHA256 mismatch\ngot:  %x\nwant: %x", got, want)
	}
}

func TestHashSHA256(t *testing.T) {
	want := mustDecodeHex("ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad")
	got := HashSHA256([]byte("abc"))
	if !bytes.Equal(got[:], want) {
		t.Fatalf("HashSHA256 mismatch\ngot:  %x\nwant: %x", got, want)
	}
}

func TestSubkeyDomainSeparation(t *testing.T) {
	secret := []byte("a shared secret")
	encKey := HMACSHA256(secret, encryptionKeyString)
	fulfillKey := HMACSHA256(secret, fulfillmentGenerationString)
	if encKey == fulfillKey {
		t.Fatalf("encryption and fulfillment subkeys must differ")
	}
}
