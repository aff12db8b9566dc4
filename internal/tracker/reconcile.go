package tracker

import (
	"sort"

	"github.com/saadjs/glp-cli/internal/model"
)

// reconcile folds the live today record into the history: any existing entry
// for the same date is replaced, never merged, and the result is sorted
// newest first. Running it again with the same inputs yields the same array,
// and no two entries ever share a date.
func reconcile(history []model.DailyLog, today model.DailyLog) []model.DailyLog {
	out := make([]model.DailyLog, 0, len(history)+1)
	for _, entry := range history {
		if entry.Date.Equal(today.Date) {
			continue
		}
		out = append(out, entry)
	}
	out = append(out, today)
	sort.SliceStable(out, func(i, j int) bool {
		return out[j].Date.Before(out[i].Date)
	})
	return out
}
