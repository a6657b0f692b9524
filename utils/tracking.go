package utils

import (
	"crypto/rand"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// trackingAlphabet excludes nothing fancy; codes are read back over WhatsApp,
// upper-case alphanumerics are enough.
const trackingAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateTrackingNumber builds a human-presented order code:
// MNT-<creation time, base36>-<4 random chars>, all upper-case. Uniqueness
// rides on the millisecond timestamp; the random suffix keeps two orders in
// the same millisecond from colliding in practice.
func GenerateTrackingNumber() string {
	ts := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))

	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		// crypto/rand failing is effectively unheard of; fall back to time bits
		// rather than returning a malformed code.
		nano := time.Now().UnixNano()
		for i := range suffix {
			suffix[i] = byte(nano >> (8 * i))
		}
	}
	for i, b := range suffix {
		suffix[i] = trackingAlphabet[int(b)%len(trackingAlphabet)]
	}

	return fmt.Sprintf("MNT-%s-%s", ts, suffix)
}

// NormalizeTrackingNumber upper-cases and trims a lookup query so customer
// input matches the generated form exactly.
func NormalizeTrackingNumber(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
