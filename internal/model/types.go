package model

import "time"

// DailyLog aggregates one calendar day of tracking data. Exactly one logical
// DailyLog exists per date; the tracker keeps the live "today" record and the
// history array reconciled so the same date never appears twice.
type DailyLog struct {
	Date             Date        `json:"date"`
	WaterIntakeML    int         `json:"waterIntake"`
	CaloriesConsumed int         `json:"caloriesConsumed"`
	ProteinConsumedG float64     `json:"proteinConsumed"`
	FiberConsumedG   float64     `json:"fiberConsumed"`
	StepsTaken       int         `json:"stepsTaken"`
	ActiveMinutes    int         `json:"activeMinutes"`
	CaloriesBurned   int         `json:"caloriesBurned"`
	MedicationTaken  bool        `json:"medicationTaken"`
	WeightKg         float64     `json:"weight"`
	Foods            []FoodItem  `json:"foods"`
	Symptoms         *SymptomLog `json:"symptoms,omitempty"`
}

// FoodItem is append-only: once logged it is never mutated or removed.
type FoodItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Calories  float64   `json:"calories"`
	ProteinG  float64   `json:"protein"`
	CarbsG    float64   `json:"carbs"`
	FatG      float64   `json:"fat"`
	FiberG    float64   `json:"fiber"`
	Timestamp time.Time `json:"timestamp"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	AIAdvice  string    `json:"aiAdvice,omitempty"`
}

// SymptomLog records side-effect severities for a day, keyed by symptom name.
// Severity runs 0-3. A day's symptom log is replaced wholesale on each save.
type SymptomLog struct {
	ID       string         `json:"id"`
	Date     time.Time      `json:"date"`
	Symptoms map[string]int `json:"symptoms"`
	Notes    string         `json:"notes,omitempty"`
}

type Pace string

const (
	PaceSlow     Pace = "slow"
	PaceModerate Pace = "moderate"
	PaceFast     Pace = "fast"
)

type UserGoals struct {
	Calories int     `json:"calories"`
	ProteinG float64 `json:"protein"`
	FiberG   float64 `json:"fiber"`
	WaterML  int     `json:"water"`
	WeightKg float64 `json:"weight"`
	Steps    int     `json:"steps"`
	Pace     Pace    `json:"pace,omitempty"`
}

type PhotoEntry struct {
	ID       string  `json:"id"`
	Date     Date    `json:"date"`
	WeightKg float64 `json:"weight"`
	ImageURL string  `json:"imageUrl,omitempty"`
	Note     string  `json:"note,omitempty"`
}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

type UserProfile struct {
	Name              string        `json:"name"`
	Email             string        `json:"email"`
	HeightCm          float64       `json:"height"`
	StartWeightKg     float64       `json:"startWeight"`
	BirthDate         string        `json:"birthDate"`
	Gender            Gender        `json:"gender"`
	ActivityLevel     ActivityLevel `json:"activityLevel"`
	Motivations       []string      `json:"motivations,omitempty"`
	FearedSideEffects []string      `json:"fearedSideEffects,omitempty"`
	ProgressPhotos    []PhotoEntry  `json:"progressPhotos,omitempty"`
	HealthSync        bool          `json:"healthSync,omitempty"`
}

// MedicationSchedule tracks the injection plan and a sparse per-date adherence
// map keyed by YYYY-MM-DD. The map and the DailyLog MedicationTaken flag are
// stored independently; only a toggle for today's date updates both.
type MedicationSchedule struct {
	DrugName      string          `json:"drugName"`
	Dosage        string          `json:"dosage"`
	Frequency     string          `json:"frequency"`
	InjectionDay  int             `json:"injectionDay"`
	InjectionSite string          `json:"injectionSite,omitempty"`
	History       map[string]bool `json:"history"`
	StartDate     time.Time       `json:"startDate"`
}

type ShoppingCategory string

const (
	CategoryProtein   ShoppingCategory = "protein"
	CategoryFiber     ShoppingCategory = "fiber"
	CategoryHydration ShoppingCategory = "hydration"
	CategorySnack     ShoppingCategory = "snack"
)

// ShoppingItem lives in an ephemeral list that the generator replaces
// wholesale; the checked flag is the only per-item mutation that persists
// between generations of the same list.
type ShoppingItem struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Category ShoppingCategory `json:"category"`
	Checked  bool             `json:"isChecked"`
	Reason   string           `json:"reason,omitempty"`
}

type PsychologyTip struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
}
