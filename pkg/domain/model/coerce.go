package model

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// sheetsEpoch is day zero of spreadsheet serial dates
var sheetsEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"1/2/2006",
	"1/2/2006 15:04:05",
	"2006/01/02",
	"2-Jan-2006",
	"2 Jan 2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// thousandsPattern matches numbers whose commas separate groups of three digits
var thousandsPattern = regexp.MustCompile(`^[+-]?\d{1,3}(,\d{3})+(\.\d+)?$`)

// ParseNumber parses a numeric cell. "50%" yields 0.5 and thousands separators are ignored.
// ok is false for empty, non-numeric, NaN and infinite values, and for commas used any other
// way, such as a decimal comma.
func ParseNumber(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}

	percent := strings.HasSuffix(s, "%")
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	if strings.Contains(s, ",") {
		if !thousandsPattern.MatchString(s) {
			return 0, false
		}
		s = strings.ReplaceAll(s, ",", "")
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	if percent {
		v /= 100
	}
	return v, true
}

// ParseNumberOrZero returns the parsed number or 0
func ParseNumberOrZero(raw string) float64 {
	v, ok := ParseNumber(raw)
	if !ok {
		return 0
	}
	return v
}

// ParseFraction parses a completion fraction. Values outside [0, 1] or unparseable cells yield 0.
func ParseFraction(raw string) float64 {
	v, ok := ParseNumber(raw)
	if !ok || v < 0 || v > 1 {
		return 0
	}
	return v
}

// ParseProgress parses a progress cell clamped to [0, 1], so over-delivered work counts as done.
// Unparseable cells yield 0.
func ParseProgress(raw string) float64 {
	v, ok := ParseNumber(raw)
	if !ok {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}

// ParseLevel parses a 1..5 likelihood or impact rating. 0 is the unknown bucket and is returned
// for non-numeric, non-integral and out-of-range cells.
func ParseLevel(raw string) int {
	v, ok := ParseNumber(raw)
	if !ok || v != math.Trunc(v) || v < 1 || v > 5 {
		return 0
	}
	return int(v)
}

// ParseDate parses a date cell in any of the layouts the workbook has used, or a spreadsheet
// serial number. It returns nil when the cell is empty or unparseable.
func ParseDate(raw string) *time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}

	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 0 && serial < 2958466 {
		days := math.Floor(serial)
		frac := serial - days
		t := sheetsEpoch.AddDate(0, 0, int(days)).Add(time.Duration(frac * float64(24*time.Hour)))
		return &t
	}

	return nil
}

// CalendarTime returns t's wall clock in UTC, the zone date cells are parsed in.
// Comparing it with parsed cells compares calendar dates, whatever the server's zone.
func CalendarTime(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// NormalizeName lower-cases a person name and collapses whitespace
func NormalizeName(raw string) string {
	return strings.Join(strings.Fields(strings.ToLower(raw)), " ")
}

// SplitNames splits a free-text "Assigned To" cell on commas into normalized names
func SplitNames(raw string) []string {
	var names []string
	for _, part := range strings.Split(raw, ",") {
		if name := NormalizeName(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}
