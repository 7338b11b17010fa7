package util

import (
	"crypto/sha256"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// Round2 rounds a monetary amount to two decimal places.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// RandomHash returns a hex SHA-256 digest of a fresh UUID, usable as a
// synthetic video file reference or payment token.
func RandomHash() string {
	sum := sha256.Sum256([]byte(uuid.NewString()))

	return fmt.Sprintf("%x", sum)
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
