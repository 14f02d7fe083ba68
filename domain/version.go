package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidVersion is returned when a version string cannot take part in a
// comparison. Callers holding optional versions must check for absence
// before comparing.
var ErrInvalidVersion = errors.New("invalid version")

// CompareVersions totally orders two dependency version strings, returning
// a negative value when a < b, zero when equal, and a positive value when
// a > b.
//
// Versions follow a loose grammar: dot-separated segments that are either
// purely numeric or letter-bearing (pre-release labels such as "beta").
// Numeric segments compare numerically and outrank letter-bearing ones at
// the same position; letter-bearing segments compare lexicographically. A
// trailing numeric segment makes a version newer than its prefix, while a
// trailing pre-release segment makes it older:
//
//	1.7.0.1 > 1.7.0 > 1.7.0.beta > 1.7.0.alpha
func CompareVersions(a, b string) (int, error) {
	if a == "" || b == "" {
		return 0, fmt.Errorf("%w: version string must not be empty", ErrInvalidVersion)
	}

	segmentsA := strings.Split(a, ".")
	segmentsB := strings.Split(b, ".")

	for i := 0; i < len(segmentsA) || i < len(segmentsB); i++ {
		switch {
		case i >= len(segmentsA):
			return -trailingRank(segmentsB[i]), nil
		case i >= len(segmentsB):
			return trailingRank(segmentsA[i]), nil
		}

		if cmp := compareSegments(segmentsA[i], segmentsB[i]); cmp != 0 {
			return cmp, nil
		}
	}

	return 0, nil
}

// trailingRank decides how the first extra segment of the longer version
// ranks against the exhausted one: numeric continuations are newer,
// pre-release suffixes are older.
func trailingRank(segment string) int {
	if isNumericSegment(segment) {
		return 1
	}
	return -1
}

func compareSegments(a, b string) int {
	aNumeric := isNumericSegment(a)
	bNumeric := isNumericSegment(b)

	switch {
	case aNumeric && bNumeric:
		aValue, _ := strconv.Atoi(a)
		bValue, _ := strconv.Atoi(b)
		switch {
		case aValue < bValue:
			return -1
		case aValue > bValue:
			return 1
		}
		return 0
	case aNumeric:
		return 1
	case bNumeric:
		return -1
	}

	return strings.Compare(a, b)
}

func isNumericSegment(segment string) bool {
	if segment == "" {
		return false
	}
	for _, r := range segment {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
