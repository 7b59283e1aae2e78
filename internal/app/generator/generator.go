// Package generator produces the random short codes.
package generator

import "crypto/rand"

// Alphabet is the 64-symbol URL-safe set the codes are drawn from.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

// CodeLength is the length of every generated code.
const CodeLength = 8

// Generate returns a code of the given length drawn uniformly from Alphabet
// using the system CSPRNG. The 64-symbol alphabet divides a byte evenly, so
// the modulo introduces no bias.
func Generate(length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = Alphabet[int(b)%len(Alphabet)]
	}
	return string(buf), nil
}
