// Package analytics derives chart series and a narrative summary from the
// daily log history. Everything here is a pure fold over in-memory records,
// recomputed on every read; nothing is cached.
package analytics

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/saadjs/glp-cli/internal/model"
)

// Point is one chart-ready day.
type Point struct {
	Day          string     `json:"day"`
	Date         model.Date `json:"date"`
	WeightKg     float64    `json:"weight"`
	Calories     int        `json:"calories"`
	Burned       int        `json:"burned"`
	ProteinG     float64    `json:"protein"`
	SymptomScore int        `json:"symptomScore"`
}

const seriesWindow = 7

// Series merges history with the live today record, drops any history entry
// that duplicates today's date, sorts ascending, and keeps the trailing
// window. A day with no recorded weight falls back to the profile start
// weight so the weight chart never dips to zero.
func Series(history []model.DailyLog, today model.DailyLog, profile *model.UserProfile) []Point {
	combined := make([]model.DailyLog, 0, len(history)+1)
	for _, entry := range history {
		if entry.Date.Equal(today.Date) {
			continue
		}
		combined = append(combined, entry)
	}
	combined = append(combined, today)
	sort.SliceStable(combined, func(i, j int) bool {
		return combined[i].Date.Before(combined[j].Date)
	})
	if len(combined) > seriesWindow {
		combined = combined[len(combined)-seriesWindow:]
	}

	startWeight := 0.0
	if profile != nil {
		startWeight = profile.StartWeightKg
	}

	points := make([]Point, 0, len(combined))
	for _, entry := range combined {
		weight := entry.WeightKg
		if weight <= 0 {
			weight = startWeight
		}
		points = append(points, Point{
			Day:          entry.Date.WeekdayShort(),
			Date:         entry.Date,
			WeightKg:     weight,
			Calories:     entry.CaloriesConsumed,
			Burned:       entry.CaloriesBurned,
			ProteinG:     entry.ProteinConsumedG,
			SymptomScore: SymptomScore(entry),
		})
	}
	return points
}

// SymptomScore sums the recorded severities for a day; 0 when nothing was
// logged.
func SymptomScore(log model.DailyLog) int {
	if log.Symptoms == nil {
		return 0
	}
	total := 0
	for _, severity := range log.Symptoms.Symptoms {
		total += severity
	}
	return total
}

// Clinical note thresholds. Fixed by the reporting contract, not tunable.
const (
	weightStableBandKg  = 0.1
	calorieDeviationCap = 500
	mildSymptomCeiling  = 4
)

const emptyNote = "No clinical data recorded yet. Log your daily metrics to generate a report."

// ClinicalNote folds a chart series into a three-phrase narrative: weight
// trend across the window, average intake against the calorie goal, and peak
// single-day symptom burden.
func ClinicalNote(series []Point, goals model.UserGoals) string {
	if len(series) == 0 {
		return emptyNote
	}

	deltaW := series[len(series)-1].WeightKg - series[0].WeightKg
	weightPhrase := "Stable weight"
	if deltaW < -weightStableBandKg {
		weightPhrase = fmt.Sprintf("Net reduction of %.1fkg", math.Abs(deltaW))
	} else if deltaW > weightStableBandKg {
		weightPhrase = fmt.Sprintf("Increase of %.1fkg", math.Abs(deltaW))
	}

	totalCal := 0
	for _, p := range series {
		totalCal += p.Calories
	}
	avgCal := float64(totalCal) / float64(len(series))
	calDiff := avgCal - float64(goals.Calories)
	dietPhrase := "Caloric intake aligns with protocol."
	if calDiff < -calorieDeviationCap {
		dietPhrase = "Caloric intake significantly below target."
	} else if calDiff > calorieDeviationCap {
		dietPhrase = "Caloric intake exceeds daily targets."
	}

	maxSymptom := 0
	for _, p := range series {
		if p.SymptomScore > maxSymptom {
			maxSymptom = p.SymptomScore
		}
	}
	symptomPhrase := "No significant adverse events reported."
	if maxSymptom > mildSymptomCeiling {
		symptomPhrase = "Moderate side effect burden detected."
	} else if maxSymptom > 0 {
		symptomPhrase = "Mild side effects reported."
	}

	return fmt.Sprintf("Patient demonstrates %s over the current period. %s %s Adherence monitoring active.",
		strings.ToLower(weightPhrase), dietPhrase, symptomPhrase)
}
