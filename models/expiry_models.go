package models

// LinkExpiryResponse reports how long a signed download link stays valid.
type LinkExpiryResponse struct {
	URL              SafeURLString `json:"url"`
	ExpiresAt        int64         `json:"expires_at,omitempty"` // seconds since epoch
	RemainingSeconds int64         `json:"remaining_seconds"`
	Display          string        `json:"display"` // localized countdown or expired label
	Expired          bool          `json:"expired"`
	Error            string        `json:"error,omitempty"`
}
