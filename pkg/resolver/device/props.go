package device

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

// Provider looks up device/system properties by key. Implementations must
// never fail: an unknown key, an empty value, or an unavailable lookup
// mechanism all resolve to the given default.
type Provider interface {
	Get(key, def string) string
}

// MapProvider serves properties from a static map. Useful for tests and for
// CLI/config overrides.
type MapProvider map[string]string

func (m MapProvider) Get(key, def string) string {
	if v := m[key]; v != "" {
		return v
	}
	return def
}

// ExecProvider resolves properties by invoking an external accessor binary
// (typically Android's getprop) once per lookup.
type ExecProvider struct {
	// Bin is the accessor binary. Defaults to "getprop".
	Bin string
	// Timeout bounds a single lookup. Defaults to 2 seconds.
	Timeout time.Duration
}

func (p ExecProvider) Get(key, def string) string {
	bin := p.Bin
	if bin == "" {
		bin = "getprop"
	}
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, bin, key).Output()
	if err != nil {
		return def
	}
	v := strings.TrimSpace(string(out))
	if v == "" {
		return def
	}
	return v
}

// Overlay layers a primary provider over a fallback one. Keys the primary
// cannot resolve are retried against the fallback before defaulting.
type Overlay struct {
	Primary  Provider
	Fallback Provider
}

func (o Overlay) Get(key, def string) string {
	if v := o.Primary.Get(key, ""); v != "" {
		return v
	}
	return o.Fallback.Get(key, def)
}
