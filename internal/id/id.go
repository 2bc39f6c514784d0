package id

import "crypto/rand"

const (
	alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	length   = 16
)

// GenerateID creates a random 16-character lowercase alphanumeric ID.
func GenerateID() string {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		panic("crypto/rand failed: " + err.Error())
	}
	for i := range b {
		b[i] = alphabet[int(b[i])%len(alphabet)]
	}
	return string(b)
}

// Valid reports whether s has the shape GenerateID produces. It lets callers
// accept an id from an untrusted source, such as a request header, without
// logging arbitrary text.
func Valid(s string) bool {
	if len(s) != length {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}
