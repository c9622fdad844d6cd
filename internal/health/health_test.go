package health

import (
	"testing"

	"github.com/drpriyanshi/companion-tui/internal/domain"
	"github.com/drpriyanshi/companion-tui/internal/lang"
)

func TestValidateBoundaries(t *testing.T) {
	cases := []struct {
		systolic, diastolic int
		ok                  bool
	}{
		{50, 80, true},
		{250, 80, true},
		{120, 30, true},
		{120, 150, true},
		{49, 80, false},
		{251, 80, false},
		{120, 29, false},
		{120, 151, false},
	}
	for _, c := range cases {
		err := Validate(Reading{Systolic: c.systolic, Diastolic: c.diastolic, Insulin: 10})
		if c.ok && err != nil {
			t.Fatalf("%d/%d should validate, got %v", c.systolic, c.diastolic, err)
		}
		if !c.ok && err == nil {
			t.Fatalf("%d/%d should be rejected", c.systolic, c.diastolic)
		}
	}
}

func TestParseReadingRejectsNonNumeric(t *testing.T) {
	if _, err := ParseReading("abc", "80", "10", ""); err != ErrNotNumeric {
		t.Fatalf("expected ErrNotNumeric, got %v", err)
	}
	if _, err := ParseReading("120", "80", "", ""); err != ErrNotNumeric {
		t.Fatalf("expected ErrNotNumeric for empty insulin, got %v", err)
	}
	r, err := ParseReading(" 120 ", "80", "15.5", " feeling fine ")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if r.Systolic != 120 || r.Diastolic != 80 || r.Insulin != 15.5 || r.Notes != "feeling fine" {
		t.Fatalf("unexpected reading: %+v", r)
	}
}

func TestClassifyBloodPressureCrossings(t *testing.T) {
	cases := []struct {
		systolic, diastolic int
		want                Status
	}{
		{139, 89, StatusNormal},
		{140, 89, StatusHigh},
		{89, 60, StatusLow},
		{90, 60, StatusNormal},
		{120, 90, StatusHigh},
		{120, 59, StatusLow},
	}
	for _, c := range cases {
		if got := ClassifyBloodPressure(c.systolic, c.diastolic); got != c.want {
			t.Fatalf("%d/%d: got %s want %s", c.systolic, c.diastolic, got, c.want)
		}
	}
}

func TestClassifyInsulinCrossings(t *testing.T) {
	cases := []struct {
		level float64
		want  Status
	}{
		{2.0, StatusNormal},
		{1.9, StatusLow},
		{25.0, StatusNormal},
		{25.1, StatusHigh},
	}
	for _, c := range cases {
		if got := ClassifyInsulin(c.level); got != c.want {
			t.Fatalf("insulin %.1f: got %s want %s", c.level, got, c.want)
		}
	}
}

func TestCompareTrend(t *testing.T) {
	if got := CompareTrend(100, 104); got != TrendStable {
		t.Fatalf("104 vs 100 should be stable, got %s", got)
	}
	if got := CompareTrend(100, 106); got != TrendIncreased {
		t.Fatalf("106 vs 100 should be increased, got %s", got)
	}
	if got := CompareTrend(100, 94); got != TrendDecreased {
		t.Fatalf("94 vs 100 should be decreased, got %s", got)
	}
	if got := CompareTrend(0, 5); got != TrendIncreased {
		t.Fatalf("zero previous with positive delta should be increased, got %s", got)
	}
	if got := CompareTrend(0, 0); got != TrendStable {
		t.Fatalf("zero previous and current should be stable, got %s", got)
	}
}

func TestPreviousReading(t *testing.T) {
	if got := PreviousReading([]domain.HealthData{{Date: "2025-08-29"}}); got != nil {
		t.Fatal("single entry should have no previous reading")
	}
	entries := []domain.HealthData{
		{ID: "a", Date: "2025-08-27"},
		{ID: "b", Date: "2025-08-29"},
		{ID: "c", Date: "2025-08-28"},
	}
	prev := PreviousReading(entries)
	if prev == nil || prev.ID != "c" {
		t.Fatalf("expected entry c as previous reading, got %+v", prev)
	}
	// input order must be untouched
	if entries[0].ID != "a" || entries[2].ID != "c" {
		t.Fatal("PreviousReading mutated its input")
	}
}

func TestAdvisorySelection(t *testing.T) {
	c := lang.For(domain.LanguageEnglish)
	if BPAdvisory(c, StatusHigh) != c.HighBPMessage {
		t.Fatal("high BP advisory not selected")
	}
	if InsulinAdvisory(c, StatusLow) != c.LowInsulinMessage {
		t.Fatal("low insulin advisory not selected")
	}
	if BPAdvisory(c, StatusNormal) != c.NormalBPMessage {
		t.Fatal("normal BP advisory not selected")
	}
}
