// Package ids generates and matches short entity identifiers.
package ids

import (
	"crypto/sha256"
	"encoding/base32"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

// DefaultLength is the standard length for generated IDs.
const DefaultLength = 8

var sequence atomic.Uint64

// Generate creates a deterministic, lowercase base32 ID derived from input.
func Generate(input string, length int) string {
	hash := sha256.Sum256([]byte(input))
	encoded := base32.StdEncoding.EncodeToString(hash[:])
	if length <= 0 {
		return ""
	}
	if length > len(encoded) {
		length = len(encoded)
	}
	return strings.ToLower(encoded[:length])
}

// GenerateUnique creates an ID from input and timestamp, mixed with a
// process-wide counter. Wall-clock timestamps alone can collide under rapid
// successive calls; the counter disambiguates them, so back-to-back calls
// with identical input always yield distinct IDs.
func GenerateUnique(input string, timestamp time.Time, length int) string {
	n := sequence.Add(1)
	return Generate(input+timestamp.Format(time.RFC3339Nano)+"#"+strconv.FormatUint(n, 10), length)
}
