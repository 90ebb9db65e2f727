package resolver

import (
	"strconv"
	"strings"
	"time"

	"github.com/vit0-9/otalink_api/pkg/resolver/device"
)

// userID identifies this client family to the download servers.
const userID = "oplus-ota|16000015"

// HeaderBuilder assembles the device-derived header set the download
// servers require on every hop. It is pure given its provider: no network,
// no mutable state, and missing properties always fall back to defaults.
type HeaderBuilder struct {
	Props device.Provider
	Info  device.Info

	// Now overrides the clock for the ts header. Nil means time.Now.
	Now func() time.Time
}

// NewHeaderBuilder detects the platform identity snapshot through p and
// returns a builder using it for fallbacks.
func NewHeaderBuilder(p device.Provider) *HeaderBuilder {
	return &HeaderBuilder{Props: p, Info: device.DetectInfo(p)}
}

// Build returns the header set for one request to rawURL. The set is
// rebuilt per hop: ts moves with the clock and id follows the current URL's
// "g" query parameter. Keys are exact wire names; callers must set them on
// a request without MIME canonicalization.
func (b *HeaderBuilder) Build(rawURL string) map[string]string {
	h := map[string]string{}

	h["language"] = b.Props.Get("persist.sys.locale", b.Info.Locale)
	h["androidVersion"] = "Android " + b.Info.Release
	h["colorOSVersion"] = "ColorOS" + strings.ReplaceAll(b.Props.Get("ro.build.version.oplusrom", ""), "V", "")
	setIfPresent(h, "otaVersion", b.Props.Get("ro.build.version.ota", ""))
	h["model"] = b.Props.Get("ro.product.name", b.Info.Model)
	h["mode"] = b.Props.Get("sys.ota.test", "0")
	setIfPresent(h, "nvCarrier", b.Props.Get("ro.build.oplus_nv_id", ""))
	h["brand"] = b.Info.Brand
	setIfPresent(h, "osType", b.Props.Get("ro.oplus.image.my_stock.type", ""))
	h["operator"] = b.Props.Get("persist.sys.channel.info",
		b.Props.Get("ro.oplus.pipeline.carrier", "default"))
	setIfPresent(h, "prjNum", b.Props.Get("ro.separate.soft", ""))
	setIfPresent(h, "id", queryValue(rawURL, "g"))
	h["ts"] = strconv.FormatInt(b.now().UnixMilli(), 10)
	h["userId"] = userID

	return h
}

func (b *HeaderBuilder) now() time.Time {
	if b.Now != nil {
		return b.Now()
	}
	return time.Now()
}

func setIfPresent(h map[string]string, name, value string) {
	if value != "" {
		h[name] = value
	}
}
