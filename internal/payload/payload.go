// Package payload generates the random alphanumeric strings the client sends.
package payload

import "math/rand/v2"

// Alphabet is the set payload characters are drawn from.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Generate returns length characters drawn uniformly, with repetition, from
// Alphabet. Non-positive lengths yield an empty string.
func Generate(length int) string {
	if length <= 0 {
		return ""
	}
	b := make([]byte, length)
	for i := range b {
		b[i] = Alphabet[rand.IntN(len(Alphabet))]
	}
	return string(b)
}
