package device

// Info is a snapshot of the platform identity values that back the request
// headers when the more specific properties are absent.
type Info struct {
	Release string // Android platform release, e.g. "14"
	Model   string // marketing model name
	Brand   string // device brand
	Locale  string // BCP-47 locale, e.g. "en-US"
}

// DetectInfo reads the well-known identity properties through the provider.
// The locale falls back to "en-US" so the language header always has a
// value even on hosts without any property source.
func DetectInfo(p Provider) Info {
	return Info{
		Release: p.Get("ro.build.version.release", ""),
		Model:   p.Get("ro.product.model", ""),
		Brand:   p.Get("ro.product.brand", ""),
		Locale:  p.Get("persist.sys.locale", "en-US"),
	}
}
