package nonce

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func TestVerifyRoundTrip(t *testing.T) {
	now := time.Unix(1700000000, 0)
	value := Generate(secret, "share", "user-1", now)
	require.Len(t, value, 10)
	require.True(t, Verify(secret, value, "share", "user-1", now))
}

func TestVerifyScopedToAction(t *testing.T) {
	now := time.Unix(1700000000, 0)
	value := Generate(secret, "share", "user-1", now)
	require.False(t, Verify(secret, value, "delete", "user-1", now))
	require.False(t, Verify(secret, value, "extend", "user-1", now))
}

func TestVerifyScopedToUser(t *testing.T) {
	now := time.Unix(1700000000, 0)
	value := Generate(secret, "share", "user-1", now)
	require.False(t, Verify(secret, value, "share", "user-2", now))
}

func TestVerifyTickWindow(t *testing.T) {
	now := time.Unix(1700000000, 0)
	value := Generate(secret, "extend", "user-1", now)
	// Still valid one tick later, rejected after two.
	require.True(t, Verify(secret, value, "extend", "user-1", now.Add(12*time.Hour)))
	require.False(t, Verify(secret, value, "extend", "user-1", now.Add(24*time.Hour)))
}

func TestVerifyEmpty(t *testing.T) {
	require.False(t, Verify(secret, "", "share", "user-1", time.Now()))
}
