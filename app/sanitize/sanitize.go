// Package sanitize turns loose user and import input into in-range integers.
package sanitize

import (
	"math"
	"strconv"
	"strings"
)

// ParseInt reads an optional sign followed by leading decimal digits, ignoring
// anything after them ("40 hrs" is 40, "12.9" is 12). Input with no leading digits
// yields 0.
func ParseInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// overflow
		if s[0] == '-' {
			return 0
		}
		return math.MaxInt
	}
	return n
}

// Clamp limits n to [lo, hi].
func Clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// Count parses a non-negative counter. Negative or unparseable input becomes 0.
func Count(s string) int {
	n := ParseInt(s)
	if n < 0 {
		return 0
	}
	return n
}

// Ranged parses s and clamps it to [lo, hi].
func Ranged(s string, lo, hi int) int {
	return Clamp(ParseInt(s), lo, hi)
}

const (
	MaxCredit     = 5
	MaxMarks      = 50
	MaxTarget     = 100
	DefaultTarget = 75
)

func Credit(s string) int { return Ranged(s, 0, MaxCredit) }

func Marks(s string) int { return Ranged(s, 0, MaxMarks) }

func Target(s string) int { return Ranged(s, 0, MaxTarget) }
