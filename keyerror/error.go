// Package keyerror holds the error values shared by the key tools.
package keyerror

import (
	"fmt"
	"log"

	"github.com/pkg/errors"
)

var (
	// Returned when an element of a key array does not fit in a byte.
	ErrInvalidInput = errors.New("invalid input")
	// Returned when a secret key is not 64 bytes long.
	ErrInvalidKeyLength = errors.New("invalid key length")
	// Returned when the public half of a secret key does not match its seed.
	ErrKeyMismatch = errors.New("public key does not match seed")
)

// InvalidInputError reports the first out-of-range element of a key array.
type InvalidInputError struct {
	Index int
	Value int
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s: element %d is %d, want 0-255", ErrInvalidInput, e.Index, e.Value)
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Prints error and panics.
func Handle(err error) {
	if err != nil {
		log.Panic(err)
	}
}
