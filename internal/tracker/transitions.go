package tracker

import (
	"math"

	"github.com/saadjs/glp-cli/internal/model"
)

// Transitions are pure (state, input) -> state functions over the live daily
// log. They never fail; range handling is part of the transition itself.

const maxWaterML = 5000

func addWater(log model.DailyLog, deltaML int) model.DailyLog {
	log.WaterIntakeML = clampInt(log.WaterIntakeML+deltaML, 0, maxWaterML)
	return log
}

func addProtein(log model.DailyLog, deltaG float64) model.DailyLog {
	log.ProteinConsumedG = math.Max(0, log.ProteinConsumedG+deltaG)
	return log
}

func addFiber(log model.DailyLog, deltaG float64) model.DailyLog {
	log.FiberConsumedG = math.Max(0, log.FiberConsumedG+deltaG)
	return log
}

// addActivity accumulates without clamping; callers own delta sanity.
func addActivity(log model.DailyLog, steps, minutes, calories int) model.DailyLog {
	log.StepsTaken += steps
	log.ActiveMinutes += minutes
	log.CaloriesBurned += calories
	return log
}

// logFood prepends the food and bumps the aggregate totals, each rounded to
// the nearest whole unit. Aggregates are not re-derived from the food list:
// manual protein/fiber bumps contribute to the same totals.
func logFood(log model.DailyLog, food model.FoodItem) model.DailyLog {
	log.CaloriesConsumed = int(math.Round(float64(log.CaloriesConsumed) + food.Calories))
	log.ProteinConsumedG = math.Round(log.ProteinConsumedG + food.ProteinG)
	log.FiberConsumedG = math.Round(log.FiberConsumedG + food.FiberG)
	log.Foods = append([]model.FoodItem{food}, log.Foods...)
	return log
}

// logSymptom replaces the day's symptom log wholesale, never merges.
func logSymptom(log model.DailyLog, entry model.SymptomLog) model.DailyLog {
	log.Symptoms = &entry
	return log
}

func setWeight(log model.DailyLog, weightKg float64) model.DailyLog {
	log.WeightKg = weightKg
	return log
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
