package crypto

import (
	"crypto/rand"
	"math/big"
)

const AlphanumericAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// RandomString returns a cryptographically secure random string of the
// given length drawn from alphabet. Panics on an empty alphabet or if the
// system randomness source fails; neither is recoverable at runtime.
func RandomString(length int, alphabet string) string {
	if len(alphabet) == 0 {
		panic("crypto: empty alphabet")
	}
	max := big.NewInt(int64(len(alphabet)))
	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic(err)
		}
		b[i] = alphabet[n.Int64()]
	}
	return string(b)
}
