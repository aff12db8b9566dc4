package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/saadjs/glp-cli/internal/model"
)

func TestParseDateRoundTrip(t *testing.T) {
	t.Parallel()

	d, err := model.ParseDate("2026-03-09")
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	if d.String() != "2026-03-09" {
		t.Fatalf("expected 2026-03-09, got %s", d)
	}
	if _, err := model.ParseDate("09/03/2026"); err == nil {
		t.Fatalf("expected error for non-ISO date")
	}
}

func TestDateOrdering(t *testing.T) {
	t.Parallel()

	earlier := model.NewDate(2026, time.February, 28)
	later := model.NewDate(2026, time.March, 1)

	if !earlier.Before(later) || later.Before(earlier) {
		t.Fatalf("expected %s < %s", earlier, later)
	}
	if earlier.Compare(later) != -1 || later.Compare(earlier) != 1 {
		t.Fatalf("unexpected compare results")
	}
	if !earlier.AddDays(1).Equal(later) {
		t.Fatalf("expected AddDays(1) to cross the month boundary")
	}
}

func TestDateOfUsesCalendarDay(t *testing.T) {
	t.Parallel()

	instant := time.Date(2026, time.March, 9, 23, 59, 59, 0, time.UTC)
	if got := model.DateOf(instant).String(); got != "2026-03-09" {
		t.Fatalf("expected 2026-03-09, got %s", got)
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	t.Parallel()

	d := model.NewDate(2026, time.March, 9)
	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `"2026-03-09"` {
		t.Fatalf("unexpected JSON form %s", raw)
	}

	var back model.Date
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(d) {
		t.Fatalf("round trip mismatch: %s != %s", back, d)
	}
}
