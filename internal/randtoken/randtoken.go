// Package randtoken generates random default values for build parameters.
package randtoken

import (
	"math/rand/v2"
)

// Length is the number of characters in every generated value.
const Length = 12

// Alphabet is the character set values are drawn from.
const Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Generate returns a random value of Length characters, each drawn
// uniformly from Alphabet. It uses the shared package-level source in
// math/rand/v2, which is safe for concurrent use. Values are build
// labels, not secrets, so the source is not cryptographically secure.
func Generate() string {
	b := make([]byte, Length)
	for i := range b {
		b[i] = Alphabet[rand.IntN(len(Alphabet))]
	}
	return string(b)
}
