package models

// ResolveLinkRequest defines the expected JSON input
type ResolveLinkRequest struct {
	URL string `json:"url" binding:"required,url"`
}

// ResolveLinkResponse defines the JSON output
type ResolveLinkResponse struct {
	OriginalURL SafeURLString `json:"original_url"`
	FinalURL    SafeURLString `json:"final_url,omitempty"`
	ErrorKind   string        `json:"error_kind,omitempty"`
	Error       string        `json:"error,omitempty"`
}
