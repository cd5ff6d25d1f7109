package domain

import (
	"sort"
	"strconv"
	"strings"
)

// HourSet is a set of hour-of-day markers (0..23).
// It is persisted as a hyphen-joined string of zero-padded two-digit
// tokens sorted ascending, e.g. {2, 9} -> "02-09".
type HourSet map[int]struct{}

// NewHourSet builds a set from the given hours. Out-of-range values are ignored.
func NewHourSet(hours ...int) HourSet {
	s := make(HourSet, len(hours))
	for _, h := range hours {
		if IsValidHour(h) {
			s[h] = struct{}{}
		}
	}
	return s
}

// ParseHourSet decodes the persisted encoding. Non-numeric and
// out-of-range tokens are discarded defensively.
func ParseHourSet(encoded string) HourSet {
	s := make(HourSet)
	for _, token := range strings.Split(encoded, "-") {
		h, err := strconv.Atoi(strings.TrimSpace(token))
		if err != nil || !IsValidHour(h) {
			continue
		}
		s[h] = struct{}{}
	}
	return s
}

// Encode renders the set in its persisted form. An empty set encodes
// to the empty string, which by contract means "delete the row".
func (s HourSet) Encode() string {
	hours := s.Sorted()
	tokens := make([]string, len(hours))
	for i, h := range hours {
		tokens[i] = padHour(h)
	}
	return strings.Join(tokens, "-")
}

// Sorted returns the hours in ascending order.
func (s HourSet) Sorted() []int {
	hours := make([]int, 0, len(s))
	for h := range s {
		hours = append(hours, h)
	}
	sort.Ints(hours)
	return hours
}

// Contains reports whether the set holds the given hour.
func (s HourSet) Contains(hour int) bool {
	_, ok := s[hour]
	return ok
}

// ContainsAll reports whether other is a subset of s.
func (s HourSet) ContainsAll(other HourSet) bool {
	for h := range other {
		if !s.Contains(h) {
			return false
		}
	}
	return true
}

// Intersects reports whether the two sets share at least one hour.
func (s HourSet) Intersects(other HourSet) bool {
	for h := range other {
		if s.Contains(h) {
			return true
		}
	}
	return false
}

// Union returns a new set with the hours of both sets.
func (s HourSet) Union(other HourSet) HourSet {
	result := make(HourSet, len(s)+len(other))
	for h := range s {
		result[h] = struct{}{}
	}
	for h := range other {
		result[h] = struct{}{}
	}
	return result
}

// Subtract returns a new set with the hours of s that are not in other.
// Subtracting hours that are already absent is a no-op, which keeps
// release operations idempotent.
func (s HourSet) Subtract(other HourSet) HourSet {
	result := make(HourSet, len(s))
	for h := range s {
		if !other.Contains(h) {
			result[h] = struct{}{}
		}
	}
	return result
}

// Equal reports whether both sets hold exactly the same hours.
func (s HourSet) Equal(other HourSet) bool {
	if len(s) != len(other) {
		return false
	}
	return s.ContainsAll(other)
}

// IsEmpty reports whether the set holds no hours.
func (s HourSet) IsEmpty() bool {
	return len(s) == 0
}

// Len returns the number of hours in the set.
func (s HourSet) Len() int {
	return len(s)
}

// Min returns the earliest hour. The set must be non-empty.
func (s HourSet) Min() int {
	min := -1
	for h := range s {
		if min == -1 || h < min {
			min = h
		}
	}
	return min
}

// Max returns the latest hour. The set must be non-empty.
func (s HourSet) Max() int {
	max := -1
	for h := range s {
		if h > max {
			max = h
		}
	}
	return max
}

// IsValidHour reports whether h is a valid hour-of-day marker.
func IsValidHour(h int) bool {
	return h >= 0 && h < HoursPerDay
}

func padHour(h int) string {
	if h < 10 {
		return "0" + strconv.Itoa(h)
	}
	return strconv.Itoa(h)
}
