package state_test

import (
	"path/filepath"
	"testing"

	"github.com/saadjs/glp-cli/internal/db"
	"github.com/saadjs/glp-cli/internal/state"
)

func newTestStore(t *testing.T) *state.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "glp.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { sqldb.Close() })
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return state.New(sqldb)
}

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	if err := st.Set(state.KeyTheme, "dark"); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, found, err := st.Get(state.KeyTheme)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !found || got != "dark" {
		t.Fatalf("expected dark, got %q (found=%v)", got, found)
	}

	if err := st.Set(state.KeyTheme, "light"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _, err = st.Get(state.KeyTheme)
	if err != nil {
		t.Fatalf("get after overwrite: %v", err)
	}
	if got != "light" {
		t.Fatalf("expected light, got %q", got)
	}

	if err := st.Remove(state.KeyTheme); err != nil {
		t.Fatalf("remove: %v", err)
	}
	_, found, err = st.Get(state.KeyTheme)
	if err != nil {
		t.Fatalf("get after remove: %v", err)
	}
	if found {
		t.Fatalf("expected key to be absent after remove")
	}
}

func TestGetJSONTreatsCorruptValueAsAbsent(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	if err := st.Set(state.KeyGoals, `{"calories": not json`); err != nil {
		t.Fatalf("set corrupt value: %v", err)
	}

	var goals struct {
		Calories int `json:"calories"`
	}
	found, err := st.GetJSON(state.KeyGoals, &goals)
	if err != nil {
		t.Fatalf("get json: %v", err)
	}
	if found {
		t.Fatalf("corrupt value should read as absent")
	}
}

func TestGetJSONLeavesDestinationUntouchedOnTypeError(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	// Valid JSON syntax, wrong type mid-object: Unmarshal fills calories
	// before failing on protein. The prefilled destination must keep its
	// defaults, not a half-decoded record.
	if err := st.Set(state.KeyGoals, `{"calories": 5000, "protein": "oops"}`); err != nil {
		t.Fatalf("set corrupt value: %v", err)
	}

	goals := struct {
		Calories int     `json:"calories"`
		Protein  float64 `json:"protein"`
	}{Calories: 2000, Protein: 130}
	found, err := st.GetJSON(state.KeyGoals, &goals)
	if err != nil {
		t.Fatalf("get json: %v", err)
	}
	if found {
		t.Fatalf("corrupt value should read as absent")
	}
	if goals.Calories != 2000 || goals.Protein != 130 {
		t.Fatalf("destination mutated by corrupt read: %+v", goals)
	}
}

func TestGetJSONRejectsNonPointerDestination(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	if err := st.Set(state.KeyGoals, `{}`); err != nil {
		t.Fatalf("set: %v", err)
	}
	var goals struct{}
	if _, err := st.GetJSON(state.KeyGoals, goals); err == nil {
		t.Fatalf("expected error for non-pointer destination")
	}
}

func TestClearWipesNamespace(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	keys := []string{state.KeyAuth, state.KeyGoals, state.LogKey("2026-03-01")}
	for _, k := range keys {
		if err := st.Set(k, "x"); err != nil {
			t.Fatalf("set %s: %v", k, err)
		}
	}
	if err := st.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	for _, k := range keys {
		if _, found, err := st.Get(k); err != nil || found {
			t.Fatalf("expected %s gone after clear (found=%v err=%v)", k, found, err)
		}
	}
}

func TestEmptyKeyRejected(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	if err := st.Set("  ", "x"); err == nil {
		t.Fatalf("expected error for blank key")
	}
	if _, _, err := st.Get(""); err == nil {
		t.Fatalf("expected error for empty key")
	}
}
