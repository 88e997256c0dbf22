package token

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFormat(t *testing.T) {
	tok := New()
	require.True(t, strings.HasPrefix(tok, "share_"))
	require.Len(t, tok, len("share_")+12)
	for _, r := range strings.TrimPrefix(tok, "share_") {
		require.Contains(t, alphabet, string(r))
	}
}

func TestNewUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 10000; i++ {
		tok := New()
		_, dup := seen[tok]
		require.False(t, dup, "duplicate token %s", tok)
		seen[tok] = struct{}{}
	}
}
