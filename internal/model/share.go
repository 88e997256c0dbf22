package model

// Share grants anonymous read access to one non-published document until
// ExpiresAt. The token is the whole credential; there is no per-viewer grant.
type Share struct {
	DocumentID string `json:"id"`
	Token      string `json:"token"`
	ExpiresAt  int64  `json:"expires"`
}

// Expired reports whether the share is past its expiry at nowUnix. Expiry is
// derived on read; an expired share stays in the store until revoked or purged.
func (s Share) Expired(nowUnix int64) bool {
	return s.ExpiresAt < nowUnix
}

// ShareMap is the whole persisted share state: owner id to that owner's shares
// in insertion order. It is loaded and saved as a single unit.
type ShareMap map[string][]Share

// Clone deep-copies the map so callers can mutate their view without touching
// the source.
func (m ShareMap) Clone() ShareMap {
	out := make(ShareMap, len(m))
	for owner, shares := range m {
		copied := make([]Share, len(shares))
		copy(copied, shares)
		out[owner] = copied
	}
	return out
}
