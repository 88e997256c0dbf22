// Package token generates the bearer credentials embedded in share links.
package token

import (
	"crypto/rand"
)

const (
	alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	length   = 12
	prefix   = "share_"
)

// New returns an unguessable share token: a fixed prefix followed by 12
// characters drawn from a 36-character alphabet (~62 bits of entropy).
// Collisions are treated as negligible and are not checked.
func New() string {
	buf := make([]byte, length)
	_, _ = rand.Read(buf)
	out := make([]byte, 0, len(prefix)+length)
	out = append(out, prefix...)
	for _, b := range buf {
		out = append(out, alphabet[int(b)%len(alphabet)])
	}
	return string(out)
}
