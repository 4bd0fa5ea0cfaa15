package wallet

import (
	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

func Base58Encode(input []byte) []byte {
	encode := base58.Encode(input)
	return []byte(encode)
}

// Fails on characters outside the alphabet (0 O I l + / ...).
func Base58Decode(input []byte) ([]byte, error) {
	decode, err := base58.Decode(string(input))
	if err != nil {
		return nil, errors.Wrap(err, "base58 decode")
	}
	return decode, nil
}
