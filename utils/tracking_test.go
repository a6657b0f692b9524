package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateTrackingNumberFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^MNT-[A-Z0-9]+-[A-Z0-9]{4}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := GenerateTrackingNumber()
		assert.Regexp(t, pattern, code)
		assert.False(t, seen[code], "duplicate tracking code %s", code)
		seen[code] = true
	}
}

func TestNormalizeTrackingNumber(t *testing.T) {
	assert.Equal(t, "MNT-ABC-1234", NormalizeTrackingNumber("  mnt-abc-1234 "))
	assert.Equal(t, "MNT-ABC-1234", NormalizeTrackingNumber("MNT-ABC-1234"))
	assert.Equal(t, "", NormalizeTrackingNumber("   "))
}
