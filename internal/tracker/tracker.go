// Package tracker owns the application state: the live "today" daily log, the
// reconciled history, and the profile, goals, medication, and shopping
// registries. Every mutation flows through a pure transition and is persisted
// before the method returns, so a command that exits cleanly has written all
// of its effects.
package tracker

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/saadjs/glp-cli/internal/model"
	"github.com/saadjs/glp-cli/internal/state"
)

type Tracker struct {
	store *state.Store
	clock func() time.Time
	newID func() string

	today      model.DailyLog
	history    []model.DailyLog
	profile    *model.UserProfile
	goals      model.UserGoals
	medication model.MedicationSchedule
	shopping   []model.ShoppingItem
	fasting    time.Time
	theme      string
	authed     bool
}

// Load reads the full state namespace and materializes the container.
// Missing or unreadable records fall back to defaults. If no daily log exists
// for the current date a fresh one is created with its weight seeded from the
// profile start weight; this is the only day-rollover trigger.
func Load(st *state.Store, clock func() time.Time) (*Tracker, error) {
	if clock == nil {
		clock = time.Now
	}
	t := &Tracker{
		store: st,
		clock: clock,
		newID: uuid.NewString,
		goals: model.DefaultGoals,
		theme: "light",
	}
	t.medication = model.InitialMedication(clock())

	if raw, found, err := st.Get(state.KeyAuth); err != nil {
		return nil, err
	} else if found {
		t.authed = raw == "true"
	}
	if raw, found, err := st.Get(state.KeyTheme); err != nil {
		return nil, err
	} else if found && (raw == "light" || raw == "dark") {
		t.theme = raw
	}

	var profile model.UserProfile
	if found, err := st.GetJSON(state.KeyProfile, &profile); err != nil {
		return nil, err
	} else if found {
		t.profile = &profile
	}
	if _, err := st.GetJSON(state.KeyGoals, &t.goals); err != nil {
		return nil, err
	}
	if _, err := st.GetJSON(state.KeyMedication, &t.medication); err != nil {
		return nil, err
	}
	if t.medication.History == nil {
		t.medication.History = map[string]bool{}
	}
	if _, err := st.GetJSON(state.KeyHistory, &t.history); err != nil {
		return nil, err
	}
	if _, err := st.GetJSON(state.KeyShopping, &t.shopping); err != nil {
		return nil, err
	}
	if raw, found, err := st.Get(state.KeyFasting); err != nil {
		return nil, err
	} else if found {
		start, perr := time.Parse(time.RFC3339, raw)
		if perr != nil {
			// Corrupt timestamps read as absent; drop the key so the next
			// toggle starts from a clean slate.
			if err := st.Remove(state.KeyFasting); err != nil {
				return nil, err
			}
		} else {
			t.fasting = start
		}
	}

	today := model.DateOf(clock())
	var log model.DailyLog
	found, err := st.GetJSON(state.LogKey(today.String()), &log)
	if err != nil {
		return nil, err
	}
	if found {
		if log.Date.IsZero() {
			log.Date = today
		}
		t.today = log
	} else {
		t.today = model.DailyLog{Date: today}
		if t.profile != nil {
			t.today.WeightKg = t.profile.StartWeightKg
		}
	}

	if err := t.syncToday(); err != nil {
		return nil, fmt.Errorf("sync today on load: %w", err)
	}
	return t, nil
}

// Read accessors. Returned slices and maps are shared state; callers must not
// mutate them.

func (t *Tracker) Today() model.DailyLog                { return t.today }
func (t *Tracker) History() []model.DailyLog            { return t.history }
func (t *Tracker) Goals() model.UserGoals               { return t.goals }
func (t *Tracker) Profile() *model.UserProfile          { return t.profile }
func (t *Tracker) Medication() model.MedicationSchedule { return t.medication }
func (t *Tracker) Shopping() []model.ShoppingItem       { return t.shopping }
func (t *Tracker) Theme() string                        { return t.theme }
func (t *Tracker) Authenticated() bool                  { return t.authed }

func (t *Tracker) TodayDate() model.Date { return model.DateOf(t.clock()) }

func (t *Tracker) FastingStart() (time.Time, bool) {
	return t.fasting, !t.fasting.IsZero()
}

// syncToday reconciles the live record into history and persists both under
// their own keys. Runs after every today-record mutation.
func (t *Tracker) syncToday() error {
	t.history = reconcile(t.history, t.today)
	if err := t.store.SetJSON(state.LogKey(t.today.Date.String()), t.today); err != nil {
		return err
	}
	return t.store.SetJSON(state.KeyHistory, t.history)
}
