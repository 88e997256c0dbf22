package model

const (
	StatusDraft     = "draft"
	StatusScheduled = "scheduled"
	StatusPending   = "pending"
	StatusPublished = "published"
)

type Document struct {
	ID      string `json:"id"`
	UserID  string `json:"user_id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Status  string `json:"status"`
	Ctime   int64  `json:"ctime"`
	Mtime   int64  `json:"mtime"`
}

// Shareable reports whether the document is in a state that may be exposed
// through a share link. Published documents are already public.
func (d *Document) Shareable() bool {
	return d.Status == StatusDraft || d.Status == StatusScheduled || d.Status == StatusPending
}
