package service

import (
	"fmt"
	"strconv"
	"strings"
)

// NextRegNumber produces the next registration number in an event's
// sequence. The latest number's trailing digits are incremented with
// their zero padding preserved, so "AMASI24-0041" yields
// "AMASI24-0042". When the event has no registrations yet, the
// sequence starts at fallbackPrefix-0001.
func NextRegNumber(latest, fallbackPrefix string) string {
	latest = strings.TrimSpace(latest)
	if latest == "" {
		return fallbackPrefix + "-0001"
	}
	i := len(latest)
	for i > 0 && latest[i-1] >= '0' && latest[i-1] <= '9' {
		i--
	}
	prefix, digits := latest[:i], latest[i:]
	if digits == "" {
		return latest + "-0001"
	}
	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		// Suffix longer than uint64; restart the counter under the
		// same prefix rather than failing the transfer.
		return prefix + "0001"
	}
	return fmt.Sprintf("%s%0*d", prefix, len(digits), n+1)
}

// DefaultRegPrefix builds the fallback prefix for events whose
// sequence has not started yet.
func DefaultRegPrefix(eventID uint64) string {
	return fmt.Sprintf("EVT%d", eventID)
}
