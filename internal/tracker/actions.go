package tracker

import (
	"strings"
	"time"

	"github.com/saadjs/glp-cli/internal/model"
	"github.com/saadjs/glp-cli/internal/shopping"
	"github.com/saadjs/glp-cli/internal/state"
)

// AddWater shifts today's water intake by deltaML, clamped to [0, 5000] ml.
// Negative deltas undo prior pours.
func (t *Tracker) AddWater(deltaML int) error {
	t.today = addWater(t.today, deltaML)
	return t.syncToday()
}

// AddProtein shifts today's protein total by deltaG grams, floored at zero.
func (t *Tracker) AddProtein(deltaG float64) error {
	t.today = addProtein(t.today, deltaG)
	return t.syncToday()
}

// AddFiber shifts today's fiber total by deltaG grams, floored at zero.
func (t *Tracker) AddFiber(deltaG float64) error {
	t.today = addFiber(t.today, deltaG)
	return t.syncToday()
}

// AddActivity accumulates steps, active minutes, and calories burned.
func (t *Tracker) AddActivity(steps, minutes, calories int) error {
	t.today = addActivity(t.today, steps, minutes, calories)
	return t.syncToday()
}

// LogFood records a food entry at the head of today's list and bumps the
// calorie, protein, and fiber aggregates atomically with it. A missing id or
// timestamp is filled in.
func (t *Tracker) LogFood(food model.FoodItem) (model.FoodItem, error) {
	if food.ID == "" {
		food.ID = t.newID()
	}
	if food.Timestamp.IsZero() {
		food.Timestamp = t.clock()
	}
	t.today = logFood(t.today, food)
	return food, t.syncToday()
}

// LogSymptom replaces today's symptom log wholesale with a freshly tagged
// entry. Severities outside 0-3 are the caller's mistake to prevent.
func (t *Tracker) LogSymptom(symptoms map[string]int, notes string) error {
	entry := model.SymptomLog{
		ID:       t.newID(),
		Date:     t.clock(),
		Symptoms: symptoms,
		Notes:    notes,
	}
	t.today = logSymptom(t.today, entry)
	return t.syncToday()
}

// ToggleMedication flips the adherence flag for date in the schedule history.
// When date is today the daily log's MedicationTaken flag flips with it; for
// any other date only the schedule map changes. The two stores drift for
// historical dates on purpose: the flag drives the daily dashboard, the map
// drives the weekly tracker.
func (t *Tracker) ToggleMedication(date model.Date) error {
	if t.medication.History == nil {
		t.medication.History = map[string]bool{}
	}
	key := date.String()
	t.medication.History[key] = !t.medication.History[key]
	if err := t.store.SetJSON(state.KeyMedication, t.medication); err != nil {
		return err
	}
	if date.Equal(t.today.Date) {
		t.today.MedicationTaken = !t.today.MedicationTaken
		return t.syncToday()
	}
	return nil
}

// UpdateWeight replaces today's weight wholesale. Validation (> 0) is the
// caller's job; the transition itself is total.
func (t *Tracker) UpdateWeight(weightKg float64) error {
	t.today = setWeight(t.today, weightKg)
	return t.syncToday()
}

// UpdateGoals replaces the goals record wholesale.
func (t *Tracker) UpdateGoals(goals model.UserGoals) error {
	t.goals = goals
	return t.store.SetJSON(state.KeyGoals, t.goals)
}

// ProfileUpdate is a partial patch; nil fields are left untouched.
type ProfileUpdate struct {
	Name          *string
	Email         *string
	HeightCm      *float64
	StartWeightKg *float64
	BirthDate     *string
	Gender        *model.Gender
	ActivityLevel *model.ActivityLevel
}

// UpdateProfile applies a partial patch. Without an existing profile this is
// a no-op: edits before onboarding go nowhere.
func (t *Tracker) UpdateProfile(patch ProfileUpdate) error {
	if t.profile == nil {
		return nil
	}
	if patch.Name != nil {
		t.profile.Name = *patch.Name
	}
	if patch.Email != nil {
		t.profile.Email = *patch.Email
	}
	if patch.HeightCm != nil {
		t.profile.HeightCm = *patch.HeightCm
	}
	if patch.StartWeightKg != nil {
		t.profile.StartWeightKg = *patch.StartWeightKg
	}
	if patch.BirthDate != nil {
		t.profile.BirthDate = *patch.BirthDate
	}
	if patch.Gender != nil {
		t.profile.Gender = *patch.Gender
	}
	if patch.ActivityLevel != nil {
		t.profile.ActivityLevel = *patch.ActivityLevel
	}
	return t.store.SetJSON(state.KeyProfile, t.profile)
}

// CompleteOnboarding installs the full profile, goals, and medication records,
// seeds today's weight from the start weight, and marks the session
// authenticated.
func (t *Tracker) CompleteOnboarding(profile model.UserProfile, goals model.UserGoals, meds model.MedicationSchedule) error {
	if meds.History == nil {
		meds.History = map[string]bool{}
	}
	t.profile = &profile
	t.goals = goals
	t.medication = meds
	t.authed = true

	if err := t.store.SetJSON(state.KeyProfile, t.profile); err != nil {
		return err
	}
	if err := t.store.SetJSON(state.KeyGoals, t.goals); err != nil {
		return err
	}
	if err := t.store.SetJSON(state.KeyMedication, t.medication); err != nil {
		return err
	}
	if err := t.store.Set(state.KeyAuth, "true"); err != nil {
		return err
	}
	t.today = setWeight(t.today, profile.StartWeightKg)
	return t.syncToday()
}

// AddProgressPhoto appends to the profile's photo timeline. Photos are never
// edited or removed.
func (t *Tracker) AddProgressPhoto(photo model.PhotoEntry) error {
	if t.profile == nil {
		return nil
	}
	if photo.ID == "" {
		photo.ID = t.newID()
	}
	if photo.Date.IsZero() {
		photo.Date = model.DateOf(t.clock())
	}
	t.profile.ProgressPhotos = append(t.profile.ProgressPhotos, photo)
	return t.store.SetJSON(state.KeyProfile, t.profile)
}

// ToggleHealthSync flips the profile's health-sync flag and reports the new
// state.
func (t *Tracker) ToggleHealthSync() (bool, error) {
	if t.profile == nil {
		return false, nil
	}
	t.profile.HealthSync = !t.profile.HealthSync
	return t.profile.HealthSync, t.store.SetJSON(state.KeyProfile, t.profile)
}

// Login marks the session authenticated. The email lands on the profile when
// one exists; before onboarding there is no profile record to hold it yet.
func (t *Tracker) Login(email string) error {
	t.authed = true
	if err := t.store.Set(state.KeyAuth, "true"); err != nil {
		return err
	}
	email = strings.TrimSpace(email)
	if t.profile == nil || email == "" {
		return nil
	}
	t.profile.Email = email
	return t.store.SetJSON(state.KeyProfile, t.profile)
}

// Logout clears the entire persisted namespace and resets in-memory state to
// first-run defaults.
func (t *Tracker) Logout() error {
	if err := t.store.Clear(); err != nil {
		return err
	}
	t.authed = false
	t.profile = nil
	t.goals = model.DefaultGoals
	t.medication = model.InitialMedication(t.clock())
	t.history = nil
	t.shopping = nil
	t.fasting = time.Time{}
	t.theme = "light"
	t.today = model.DailyLog{Date: model.DateOf(t.clock())}
	return nil
}

// ToggleFasting starts a fasting session, or ends the active one. Reports
// whether a session is active after the toggle.
func (t *Tracker) ToggleFasting() (bool, error) {
	if !t.fasting.IsZero() {
		t.fasting = time.Time{}
		return false, t.store.Remove(state.KeyFasting)
	}
	t.fasting = t.clock()
	return true, t.store.Set(state.KeyFasting, t.fasting.Format(time.RFC3339))
}

// SetTheme persists the theme preference; anything but "dark" is "light".
func (t *Tracker) SetTheme(theme string) error {
	if theme != "dark" {
		theme = "light"
	}
	t.theme = theme
	return t.store.Set(state.KeyTheme, theme)
}

// ToggleTheme flips between light and dark and reports the new theme.
func (t *Tracker) ToggleTheme() (string, error) {
	next := "light"
	if t.theme == "light" {
		next = "dark"
	}
	return next, t.SetTheme(next)
}

// RegenerateShopping rebuilds the list from current goals, replacing it
// wholesale. Checked state from the previous list is discarded.
func (t *Tracker) RegenerateShopping() ([]model.ShoppingItem, error) {
	t.shopping = shopping.Generate(t.goals)
	return t.shopping, t.store.SetJSON(state.KeyShopping, t.shopping)
}

// ToggleShoppingItem flips one item's checked flag. Reports whether the id
// matched anything.
func (t *Tracker) ToggleShoppingItem(id string) (bool, error) {
	for i := range t.shopping {
		if t.shopping[i].ID == id {
			t.shopping[i].Checked = !t.shopping[i].Checked
			return true, t.store.SetJSON(state.KeyShopping, t.shopping)
		}
	}
	return false, nil
}

// GeminiKey reads the stored API key, if any.
func (t *Tracker) GeminiKey() (string, bool, error) {
	return t.store.Get(state.KeyGeminiKey)
}

// SetGeminiKey stores the API key used by the food scanner and coach.
func (t *Tracker) SetGeminiKey(key string) error {
	return t.store.Set(state.KeyGeminiKey, key)
}
