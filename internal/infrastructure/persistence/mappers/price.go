package mappers

import (
	"fmt"
	"strconv"
	"strings"
)

// The price column is NUMERIC(10,2) and gorm scans it as a string. The domain
// holds cents, so the boundary converts both ways without ever touching
// floating point.

func formatPriceCents(cents uint64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

func parsePriceCents(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty price")
	}

	whole, frac := s, "0"
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		whole, frac = s[:idx], s[idx+1:]
	}
	if len(frac) > 2 {
		frac = frac[:2]
	}
	for len(frac) < 2 {
		frac += "0"
	}

	w, err := strconv.ParseUint(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q: %w", s, err)
	}
	f, err := strconv.ParseUint(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q: %w", s, err)
	}
	return w*100 + f, nil
}
