// Package health holds the reading validation, classification, and trend
// rules for the daily tracker. Thresholds mirror the advisory copy shown to
// the user; none of this is medical-grade logic.
package health

import (
	"errors"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/drpriyanshi/companion-tui/internal/domain"
	"github.com/drpriyanshi/companion-tui/internal/lang"
)

var (
	// ErrNotNumeric is reported when any of the three fields fails to parse.
	ErrNotNumeric = errors.New("please enter valid numbers for all fields")
	// ErrOutOfRange is reported when a blood pressure value falls outside
	// the accepted band (systolic 50-250, diastolic 30-150).
	ErrOutOfRange = errors.New("blood pressure values seem unusual, please check and try again")
)

// Reading is a parsed, not-yet-validated form submission.
type Reading struct {
	Systolic  int
	Diastolic int
	Insulin   float64
	Notes     string
}

// ParseReading converts raw form fields into a Reading. Whitespace is
// trimmed; any parse failure yields ErrNotNumeric.
func ParseReading(systolic, diastolic, insulin, notes string) (Reading, error) {
	sys, err := strconv.Atoi(strings.TrimSpace(systolic))
	if err != nil {
		return Reading{}, ErrNotNumeric
	}
	dia, err := strconv.Atoi(strings.TrimSpace(diastolic))
	if err != nil {
		return Reading{}, ErrNotNumeric
	}
	ins, err := strconv.ParseFloat(strings.TrimSpace(insulin), 64)
	if err != nil {
		return Reading{}, ErrNotNumeric
	}
	return Reading{Systolic: sys, Diastolic: dia, Insulin: ins, Notes: strings.TrimSpace(notes)}, nil
}

// Validate range-checks a reading. Boundary values are accepted.
func Validate(r Reading) error {
	if r.Systolic < 50 || r.Systolic > 250 || r.Diastolic < 30 || r.Diastolic > 150 {
		return ErrOutOfRange
	}
	return nil
}

// Status is a three-way classification of a vital.
type Status string

const (
	StatusNormal Status = "normal"
	StatusHigh   Status = "high"
	StatusLow    Status = "low"
)

// ClassifyBloodPressure applies the advisory thresholds: high wins over low.
func ClassifyBloodPressure(systolic, diastolic int) Status {
	if systolic >= 140 || diastolic >= 90 {
		return StatusHigh
	}
	if systolic < 90 || diastolic < 60 {
		return StatusLow
	}
	return StatusNormal
}

// ClassifyInsulin buckets an insulin level in units.
func ClassifyInsulin(level float64) Status {
	if level > 25 {
		return StatusHigh
	}
	if level < 2 {
		return StatusLow
	}
	return StatusNormal
}

// BPAdvisory selects the localized advisory for a blood pressure status.
func BPAdvisory(c lang.Content, s Status) string {
	switch s {
	case StatusHigh:
		return c.HighBPMessage
	case StatusLow:
		return c.LowBPMessage
	default:
		return c.NormalBPMessage
	}
}

// InsulinAdvisory selects the localized advisory for an insulin status.
func InsulinAdvisory(c lang.Content, s Status) string {
	switch s {
	case StatusHigh:
		return c.HighInsulinMessage
	case StatusLow:
		return c.LowInsulinMessage
	default:
		return c.NormalInsulinMessage
	}
}

// Trend classifies the change between two successive readings.
type Trend string

const (
	TrendStable    Trend = "stable"
	TrendIncreased Trend = "increased"
	TrendDecreased Trend = "decreased"
)

// CompareTrend computes the percent change from previous to current. A
// change under 5% in magnitude counts as stable. A zero previous reading
// has no finite percentage, so it classifies by delta sign alone.
func CompareTrend(previous, current float64) Trend {
	diff := current - previous
	if previous == 0 {
		if diff == 0 {
			return TrendStable
		}
		if diff > 0 {
			return TrendIncreased
		}
		return TrendDecreased
	}
	percent := diff / previous * 100
	if math.Abs(percent) < 5 {
		return TrendStable
	}
	if diff > 0 {
		return TrendIncreased
	}
	return TrendDecreased
}

// Mean averages the systolic and diastolic components for trend comparison.
func Mean(bp domain.BloodPressure) float64 {
	return float64(bp.Systolic+bp.Diastolic) / 2
}

// SortByDateDesc orders entries newest-date first, in place.
func SortByDateDesc(entries []domain.HealthData) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date > entries[j].Date
	})
}

// PreviousReading returns the second-most-recent entry by date, i.e. the
// one a fresh save for today should be compared against. Nil when fewer
// than two entries exist.
func PreviousReading(entries []domain.HealthData) *domain.HealthData {
	if len(entries) < 2 {
		return nil
	}
	sorted := make([]domain.HealthData, len(entries))
	copy(sorted, entries)
	SortByDateDesc(sorted)
	prev := sorted[1]
	return &prev
}
