// Package utils contains shared helper functions. Everything here is a
// pure function of its inputs.
package utils

import (
	"fmt"
	"strings"
	"time"
)

// DefaultTimestampFormat is the display format used across the dashboard.
const DefaultTimestampFormat = "2006-01-02 15:04:05"

// FormatTimestamp renders a time in the given layout, falling back to the
// dashboard default when layout is empty.
func FormatTimestamp(t time.Time, layout string) string {
	if layout == "" {
		layout = DefaultTimestampFormat
	}
	return t.Format(layout)
}

// TruncateString shortens text to maxLength runes including the suffix,
// appending the suffix only when truncation happened.
func TruncateString(text string, maxLength int, suffix string) (string, error) {
	if maxLength < len(suffix) {
		return "", fmt.Errorf("max length %d is shorter than suffix %q", maxLength, suffix)
	}
	if len(text) <= maxLength {
		return text, nil
	}
	return text[:maxLength-len(suffix)] + suffix, nil
}

// ValidEmail does a basic shape check on an email address. Real validation
// belongs to whatever auth backend eventually replaces the session stub.
func ValidEmail(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	return strings.Contains(domain, ".")
}

// ChunkSlice splits items into chunks of at most size elements, preserving
// order. The final chunk may be shorter.
func ChunkSlice[T any](items []T, size int) ([][]T, error) {
	if size <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", size)
	}
	var chunks [][]T
	for i := 0; i < len(items); i += size {
		end := i + size
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[i:end])
	}
	return chunks, nil
}

// MergeMaps merges two maps into a new one. When preferSecond is true,
// values from b win on key conflicts.
func MergeMaps[K comparable, V any](a, b map[K]V, preferSecond bool) map[K]V {
	merged := make(map[K]V, len(a)+len(b))
	for k, v := range a {
		merged[k] = v
	}
	for k, v := range b {
		if _, exists := merged[k]; !exists || preferSecond {
			merged[k] = v
		}
	}
	return merged
}

// SafeGet returns the value for key, or def when the key is absent.
func SafeGet[K comparable, V any](m map[K]V, key K, def V) V {
	if v, ok := m[key]; ok {
		return v
	}
	return def
}

// Percentage computes part/total as a percentage rounded to the given
// number of decimals. A zero total yields 0 rather than a division error.
func Percentage(part, total float64, decimals int) float64 {
	if total == 0 {
		return 0
	}
	pct := part / total * 100
	shift := 1.0
	for i := 0; i < decimals; i++ {
		shift *= 10
	}
	if pct >= 0 {
		return float64(int64(pct*shift+0.5)) / shift
	}
	return float64(int64(pct*shift-0.5)) / shift
}

// FormatFileSize renders a byte count using binary units, e.g. "1.5 KB".
func FormatFileSize(sizeBytes int64) string {
	size := float64(sizeBytes)
	for _, unit := range []string{"B", "KB", "MB", "GB", "TB"} {
		if size < 1024 {
			return fmt.Sprintf("%.1f %s", size, unit)
		}
		size /= 1024
	}
	return fmt.Sprintf("%.1f PB", size)
}
