// Package nonce issues short-lived anti-forgery proofs scoped to a single
// action name and user. A nonce is an HMAC over (tick, action, user) where a
// tick covers twelve hours; verification accepts the current and the previous
// tick, so a nonce stays valid for twelve to twenty-four hours.
package nonce

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

const tickSeconds = 12 * 3600

// Generate returns the nonce for action and userID at now.
func Generate(secret []byte, action, userID string, now time.Time) string {
	return compute(secret, action, userID, now.Unix()/tickSeconds)
}

// Verify reports whether value is a nonce for action and userID issued in the
// current or previous tick.
func Verify(secret []byte, value, action, userID string, now time.Time) bool {
	if value == "" {
		return false
	}
	tick := now.Unix() / tickSeconds
	for _, t := range []int64{tick, tick - 1} {
		if hmac.Equal([]byte(value), []byte(compute(secret, action, userID, t))) {
			return true
		}
	}
	return false
}

func compute(secret []byte, action, userID string, tick int64) string {
	mac := hmac.New(sha256.New, secret)
	fmt.Fprintf(mac, "%d|%s|%s", tick, action, userID)
	return hex.EncodeToString(mac.Sum(nil))[:10]
}
