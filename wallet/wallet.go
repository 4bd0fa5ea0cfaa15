package wallet

import (
	"bytes"

	"github.com/mkohlhaas/b58key/keyerror"
	"github.com/pkg/errors"
	"golang.org/x/crypto/ed25519"
)

const (
	KeySize  = ed25519.PrivateKeySize
	seedSize = ed25519.SeedSize
)

// A keypair is the 64 byte secret key: seed, then public key.
type Keypair struct {
	PrivateKey ed25519.PrivateKey
}

// Parses a 64 byte secret key.
// The public half must be the one derived from the seed.
func KeypairFromSecretKey(secretKey []byte) (*Keypair, error) {
	if len(secretKey) != KeySize {
		return nil, errors.Wrapf(keyerror.ErrInvalidKeyLength, "got %d bytes, want %d", len(secretKey), KeySize)
	}
	derived := ed25519.NewKeyFromSeed(secretKey[:seedSize])
	if !bytes.Equal(derived[seedSize:], secretKey[seedSize:]) {
		return nil, keyerror.ErrKeyMismatch
	}
	return &Keypair{derived}, nil
}

// Parses a Base58 encoded secret key.
func KeypairFromBase58(encoded string) (*Keypair, error) {
	secretKey, err := Base58Decode([]byte(encoded))
	if err != nil {
		return nil, err
	}
	return KeypairFromSecretKey(secretKey)
}

// Base58 public key, the Solana account address.
func (kp *Keypair) PublicKey() string {
	pub := kp.PrivateKey.Public().(ed25519.PublicKey)
	return string(Base58Encode(pub))
}

// Base58 of the whole 64 byte secret key.
func (kp *Keypair) SecretKey() string {
	return string(Base58Encode(kp.PrivateKey))
}
