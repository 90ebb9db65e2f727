package models

// InspectLinkResponse is the output for the link inspection endpoint: the
// link is resolved first, then the final URL is fetched with device headers.
type InspectLinkResponse struct {
	RequestURL  SafeURLString       `json:"request_url"`
	ResolvedURL SafeURLString       `json:"resolved_url,omitempty"`
	FinalURL    SafeURLString       `json:"final_url,omitempty"`
	StatusCode  int                 `json:"status_code,omitempty"`
	Status      string              `json:"status,omitempty"`
	Headers     map[string][]string `json:"headers,omitempty"`
	Error       string              `json:"error,omitempty"`
}
