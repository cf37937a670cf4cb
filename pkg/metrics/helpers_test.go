package metrics_test

import (
	"math"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func approx(t *testing.T, expected, actual float64) {
	t.Helper()
	gt.True(t, math.Abs(expected-actual) < 1e-9)
}

func isBounded(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0 && v <= 100
}
