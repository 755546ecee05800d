package models

// Notice is a short user-facing message that clients dismiss after DismissAfterMs.
type Notice struct {
	Kind           NoticeKind `json:"kind"`
	Message        string     `json:"message"`
	DismissAfterMs int64      `json:"dismiss_after_ms"`
}
