package tracker

import (
	"reflect"
	"testing"
	"time"

	"github.com/saadjs/glp-cli/internal/model"
)

func day(dayOfMarch int) model.Date {
	return model.NewDate(2026, time.March, dayOfMarch)
}

func TestReconcileReplacesSameDateEntry(t *testing.T) {
	t.Parallel()

	stale := model.DailyLog{Date: day(10), WaterIntakeML: 100}
	history := []model.DailyLog{
		{Date: day(9)},
		stale,
		{Date: day(8)},
	}
	today := model.DailyLog{Date: day(10), WaterIntakeML: 750}

	got := reconcile(history, today)
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	if got[0].WaterIntakeML != 750 {
		t.Fatalf("expected today's snapshot to replace the stale entry, got %+v", got[0])
	}
}

func TestReconcileSortsDescending(t *testing.T) {
	t.Parallel()

	history := []model.DailyLog{
		{Date: day(3)},
		{Date: day(12)},
		{Date: day(7)},
	}
	got := reconcile(history, model.DailyLog{Date: day(9)})

	want := []model.Date{day(12), day(9), day(7), day(3)}
	for i, entry := range got {
		if !entry.Date.Equal(want[i]) {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], entry.Date)
		}
	}
}

func TestReconcileIdempotent(t *testing.T) {
	t.Parallel()

	history := []model.DailyLog{
		{Date: day(9), WaterIntakeML: 200},
		{Date: day(8)},
	}
	today := model.DailyLog{Date: day(10), WaterIntakeML: 500}

	once := reconcile(history, today)
	twice := reconcile(once, today)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("reconcile is not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestReconcileNeverDuplicatesDates(t *testing.T) {
	t.Parallel()

	history := []model.DailyLog{{Date: day(10)}, {Date: day(9)}}
	today := model.DailyLog{Date: day(10), StepsTaken: 4000}

	for i := 0; i < 3; i++ {
		today.StepsTaken += 100
		history = reconcile(history, today)

		seen := map[string]bool{}
		for _, entry := range history {
			key := entry.Date.String()
			if seen[key] {
				t.Fatalf("duplicate date %s after pass %d", key, i+1)
			}
			seen[key] = true
		}
	}
}
