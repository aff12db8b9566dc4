package analytics_test

import (
	"strings"
	"testing"
	"time"

	"github.com/saadjs/glp-cli/internal/analytics"
	"github.com/saadjs/glp-cli/internal/model"
)

func day(dayOfMarch int) model.Date {
	return model.NewDate(2026, time.March, dayOfMarch)
}

func TestSeriesKeepsTrailingSevenAscending(t *testing.T) {
	t.Parallel()

	var history []model.DailyLog
	for d := 1; d <= 10; d++ {
		history = append(history, model.DailyLog{Date: day(d), CaloriesConsumed: d * 100})
	}
	today := model.DailyLog{Date: day(11), CaloriesConsumed: 1100}

	series := analytics.Series(history, today, nil)
	if len(series) != 7 {
		t.Fatalf("expected 7 points, got %d", len(series))
	}
	if !series[0].Date.Equal(day(5)) {
		t.Fatalf("expected window to start at 2026-03-05, got %s", series[0].Date)
	}
	for i := 1; i < len(series); i++ {
		if !series[i-1].Date.Before(series[i].Date) {
			t.Fatalf("series not ascending at %d", i)
		}
	}
	if last := series[len(series)-1]; !last.Date.Equal(day(11)) || last.Calories != 1100 {
		t.Fatalf("expected live today record last, got %+v", last)
	}
}

func TestSeriesDropsStaleTodayEntry(t *testing.T) {
	t.Parallel()

	history := []model.DailyLog{
		{Date: day(9), CaloriesConsumed: 1500},
		{Date: day(10), CaloriesConsumed: 400}, // stale snapshot of today
	}
	today := model.DailyLog{Date: day(10), CaloriesConsumed: 1800}

	series := analytics.Series(history, today, nil)
	if len(series) != 2 {
		t.Fatalf("expected 2 points, got %d", len(series))
	}
	if series[1].Calories != 1800 {
		t.Fatalf("expected the live record to win over the stale history entry, got %+v", series[1])
	}
}

func TestSeriesWeightFallsBackToStartWeight(t *testing.T) {
	t.Parallel()

	profile := &model.UserProfile{StartWeightKg: 90}
	history := []model.DailyLog{{Date: day(9), WeightKg: 0}}
	today := model.DailyLog{Date: day(10), WeightKg: 88.5}

	series := analytics.Series(history, today, profile)
	if series[0].WeightKg != 90 {
		t.Fatalf("expected unset weight to fall back to 90, got %.1f", series[0].WeightKg)
	}
	if series[1].WeightKg != 88.5 {
		t.Fatalf("expected recorded weight kept, got %.1f", series[1].WeightKg)
	}
}

func TestSymptomScoreSumsSeverities(t *testing.T) {
	t.Parallel()

	log := model.DailyLog{
		Date: day(10),
		Symptoms: &model.SymptomLog{
			Symptoms: map[string]int{"nausea": 2, "headache": 1},
		},
	}
	if got := analytics.SymptomScore(log); got != 3 {
		t.Fatalf("expected symptom score 3, got %d", got)
	}
	if got := analytics.SymptomScore(model.DailyLog{Date: day(10)}); got != 0 {
		t.Fatalf("expected score 0 without a symptom log, got %d", got)
	}

	series := analytics.Series(nil, log, nil)
	if series[0].SymptomScore != 3 {
		t.Fatalf("expected chart point score 3, got %d", series[0].SymptomScore)
	}
}

func seriesWithWeights(weights ...float64) []analytics.Point {
	points := make([]analytics.Point, 0, len(weights))
	for i, w := range weights {
		points = append(points, analytics.Point{Date: day(i + 1), WeightKg: w})
	}
	return points
}

func TestClinicalNoteReportsWeightReduction(t *testing.T) {
	t.Parallel()

	series := seriesWithWeights(85, 85, 84.8, 84.5, 84.3, 84.1, 84.0)
	note := analytics.ClinicalNote(series, model.DefaultGoals)
	if !strings.Contains(note, "net reduction of 1.0kg") {
		t.Fatalf("expected a 1.0kg reduction phrase, got %q", note)
	}
}

func TestClinicalNoteWeightPhrases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		weights []float64
		want    string
	}{
		{"stable within band", []float64{85, 85.05}, "stable weight"},
		{"increase", []float64{85, 85.5}, "increase of 0.5kg"},
		{"reduction", []float64{85, 84.2}, "net reduction of 0.8kg"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			note := analytics.ClinicalNote(seriesWithWeights(tc.weights...), model.DefaultGoals)
			if !strings.Contains(note, tc.want) {
				t.Fatalf("expected %q in note, got %q", tc.want, note)
			}
		})
	}
}

func TestClinicalNoteDietPhrases(t *testing.T) {
	t.Parallel()

	goals := model.UserGoals{Calories: 2000}
	note := func(avg int) string {
		return analytics.ClinicalNote([]analytics.Point{
			{Date: day(1), WeightKg: 85, Calories: avg},
			{Date: day(2), WeightKg: 85, Calories: avg},
		}, goals)
	}

	if got := note(1400); !strings.Contains(got, "significantly below target") {
		t.Fatalf("expected below-target phrase, got %q", got)
	}
	if got := note(2000); !strings.Contains(got, "aligns with protocol") {
		t.Fatalf("expected aligned phrase, got %q", got)
	}
	if got := note(2600); !strings.Contains(got, "exceeds daily targets") {
		t.Fatalf("expected exceeds phrase, got %q", got)
	}
}

func TestClinicalNoteSymptomTiers(t *testing.T) {
	t.Parallel()

	note := func(score int) string {
		return analytics.ClinicalNote([]analytics.Point{
			{Date: day(1), WeightKg: 85, Calories: 2000, SymptomScore: score},
		}, model.DefaultGoals)
	}

	if got := note(0); !strings.Contains(got, "No significant adverse events") {
		t.Fatalf("expected no-events phrase, got %q", got)
	}
	if got := note(4); !strings.Contains(got, "Mild side effects") {
		t.Fatalf("expected mild phrase at score 4, got %q", got)
	}
	if got := note(5); !strings.Contains(got, "Moderate side effect burden") {
		t.Fatalf("expected moderate phrase at score 5, got %q", got)
	}
}

func TestClinicalNoteEmptySeries(t *testing.T) {
	t.Parallel()

	note := analytics.ClinicalNote(nil, model.DefaultGoals)
	if !strings.Contains(note, "No clinical data recorded yet") {
		t.Fatalf("expected empty-series message, got %q", note)
	}
}
