package models

// DeviceHeadersResponse previews the header set that would be sent for a URL.
type DeviceHeadersResponse struct {
	URL     SafeURLString     `json:"url"`
	Headers map[string]string `json:"headers"`
}

// DeviceInfoResponse is the detected platform identity snapshot.
type DeviceInfoResponse struct {
	Release string `json:"release,omitempty"`
	Model   string `json:"model,omitempty"`
	Brand   string `json:"brand,omitempty"`
	Locale  string `json:"locale"`
}
