// Package browser sorts user agents into compatibility tiers.
package browser

import (
	"strings"

	"github.com/avct/uasurfer"
)

type Tier int

const (
	TierUnknown Tier = iota
	TierLegacy
	TierModern
)

// legacyIEMajor is the first Internet Explorer release outside the legacy tier.
const legacyIEMajor = 9

func (t Tier) String() string {
	switch t {
	case TierLegacy:
		return "legacy"
	case TierModern:
		return "modern"
	default:
		return "unknown"
	}
}

// Classify reports the tier for a navigator.userAgent string.
func Classify(userAgent string) Tier {
	if strings.TrimSpace(userAgent) == "" {
		return TierUnknown
	}
	ua := uasurfer.Parse(userAgent)
	switch ua.Browser.Name {
	case uasurfer.BrowserUnknown:
		return TierUnknown
	case uasurfer.BrowserIE:
		if ua.Browser.Version.Major < legacyIEMajor {
			return TierLegacy
		}
	}
	return TierModern
}
