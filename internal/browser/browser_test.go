package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	for _, tc := range []struct {
		description string
		userAgent   string
		expect      Tier
	}{
		{
			description: "empty",
			userAgent:   "",
			expect:      TierUnknown,
		},
		{
			description: "IE 8",
			userAgent:   "Mozilla/4.0 (compatible; MSIE 8.0; Windows NT 6.1; Trident/4.0)",
			expect:      TierLegacy,
		},
		{
			description: "IE 7",
			userAgent:   "Mozilla/4.0 (compatible; MSIE 7.0; Windows NT 6.0)",
			expect:      TierLegacy,
		},
		{
			description: "Chrome",
			userAgent:   "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/118.0.0.0 Safari/537.36",
			expect:      TierModern,
		},
	} {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expect, Classify(tc.userAgent))
		})
	}
}

func TestTierString(t *testing.T) {
	assert.Equal(t, "legacy", TierLegacy.String())
	assert.Equal(t, "modern", TierModern.String())
	assert.Equal(t, "unknown", Tier(42).String())
}
