// Package daily derives a stable word-of-the-day index per language.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns HMAC(salt, lang|YYYY-MM-DD) % n.
// Each language gets its own sequence.
func WordIndex(date time.Time, salt, lang string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(lang + "|" + DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes give an even enough spread for small lists
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}
