// Package wallet turns raw key material into its Base58 text form and back.
package wallet

import (
	"github.com/mkohlhaas/b58key/keyerror"
)

// Solana keypair: 32 byte ed25519 seed followed by the 32 byte public key.
// NOTE: a private key in plaintext. Kept as is; replace before using this key for anything.
var privateKeyArray = [KeySize]int{
	165, 161, 94, 31, 122, 184, 65, 104, 113, 238, 88, 38, 218, 34, 140, 250,
	181, 109, 168, 204, 128, 176, 105, 33, 34, 170, 50, 93, 140, 235, 16, 70,
	236, 151, 86, 206, 25, 141, 117, 171, 19, 235, 28, 14, 99, 60, 238, 62,
	52, 193, 113, 137, 101, 64, 23, 4, 64, 10, 163, 132, 179, 14, 40, 167,
}

// Returns a copy of the built-in key array.
func PrivateKeyArray() []int {
	array := privateKeyArray
	return array[:]
}

// Converts a key array into bytes.
// Every element must be in 0..255.
func KeyBytes(array []int) ([]byte, error) {
	key := make([]byte, len(array))
	for i, v := range array {
		if v < 0 || v > 255 {
			return nil, &keyerror.InvalidInputError{Index: i, Value: v}
		}
		key[i] = byte(v)
	}
	return key, nil
}

// Base58 text of a key array.
func EncodeKey(array []int) (string, error) {
	key, err := KeyBytes(array)
	if err != nil {
		return "", err
	}
	return string(Base58Encode(key)), nil
}
