package test

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

const passwordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!#%*-_"

// RandomPassword returns a password of exactly n characters.
func RandomPassword(n int) string {
	if n <= 0 {
		n = 1
	}
	var b strings.Builder
	b.Grow(n)
	for range n {
		b.WriteByte(passwordAlphabet[rand.IntN(len(passwordAlphabet))])
	}
	return b.String()
}

// RandomEmail returns a unique-enough lower-case address under example.com.
func RandomEmail() string {
	return fmt.Sprintf("user%08d@example.com", rand.IntN(100_000_000))
}
