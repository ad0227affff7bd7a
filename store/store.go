// Package store provides persistent translation mapping stores.
package store

import (
	"strings"

	"github.com/hanscan/hanscan"
)

// MappingStore is an alias to the main package interface.
type MappingStore = hanscan.MappingStore

// Filter returns a copy of m with keys and values trimmed, dropping entries
// whose key or value is empty or whitespace-only.
func Filter(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		k = strings.TrimSpace(k)
		v = strings.TrimSpace(v)
		if k == "" || v == "" {
			continue
		}
		out[k] = v
	}
	return out
}

// Merge copies delta entries into dst, value winning on key collision.
// Entries that are blank or where key equals value (a no-op translation
// carries no information) are silently dropped. Returns the number of
// entries applied.
func Merge(dst, delta map[string]string) int {
	applied := 0
	for k, v := range delta {
		k = strings.TrimSpace(k)
		v = strings.TrimSpace(v)
		if k == "" || v == "" || k == v {
			continue
		}
		dst[k] = v
		applied++
	}
	return applied
}

// Unmapped returns the words absent from mapping, preserving input order.
func Unmapped(mapping map[string]string, words []string) []string {
	var out []string
	for _, w := range words {
		if _, ok := mapping[w]; !ok {
			out = append(out, w)
		}
	}
	return out
}

// Stats summarizes a mapping: entries whose value differs from the key are
// counted as translated, the rest as unchanged.
type Stats struct {
	Total      int
	Translated int
	Unchanged  int
}

// ComputeStats returns mapping statistics.
func ComputeStats(m map[string]string) Stats {
	s := Stats{Total: len(m)}
	for k, v := range m {
		if k != v {
			s.Translated++
		} else {
			s.Unchanged++
		}
	}
	return s
}
