package resolver

import (
	"strconv"
	"strings"
)

// queryValue returns the value of the first query segment with the prefix
// "key=". The query string is split on literal '&' with no URL decoding:
// the ids and signatures carried by download links must round-trip exactly
// as the server minted them.
func queryValue(rawURL, key string) string {
	i := strings.IndexByte(rawURL, '?')
	if i < 0 {
		return ""
	}
	prefix := key + "="
	for _, seg := range strings.Split(rawURL[i+1:], "&") {
		if v, ok := strings.CutPrefix(seg, prefix); ok {
			return v
		}
	}
	return ""
}

// ExtractExpires returns the value of the first "Expires" query parameter
// as seconds since epoch. The second return is false when the parameter is
// absent or not an integer; extraction never fails.
func ExtractExpires(rawURL string) (int64, bool) {
	v := queryValue(rawURL, "Expires")
	if v == "" {
		return 0, false
	}
	ts, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return ts, true
}
