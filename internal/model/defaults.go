package model

import "time"

// DefaultGoals are applied until the user edits their targets.
var DefaultGoals = UserGoals{
	Calories: 2000,
	ProteinG: 130,
	FiberG:   30,
	WaterML:  2500,
	WeightKg: 75,
	Steps:    10000,
}

// InitialMedication is the schedule seeded before onboarding completes.
// Injection day 4 is Thursday.
func InitialMedication(now time.Time) MedicationSchedule {
	return MedicationSchedule{
		DrugName:     "Semaglutide",
		Dosage:       "0.26mg",
		Frequency:    "Weekly",
		InjectionDay: 4,
		History:      map[string]bool{},
		StartDate:    now,
	}
}

var PsychologyTips = []PsychologyTip{
	{
		ID:       "1",
		Title:    "Hunger is not an emergency",
		Content:  "Physical hunger builds gradually. Emotional hunger hits suddenly. Pause for 5 minutes before eating.",
		Category: "mindset",
	},
	{
		ID:       "2",
		Title:    "The 20-minute rule",
		Content:  "It takes 20 minutes for your brain to register fullness. Eat slowly to let your body catch up.",
		Category: "science",
	},
	{
		ID:       "3",
		Title:    "Slip-ups are data",
		Content:  "Overate? Don't beat yourself up. Ask \"why\" it happened and learn for next time.",
		Category: "mindset",
	},
	{
		ID:       "4",
		Title:    "Volume Eating",
		Content:  "Prioritize low-calorie, high-volume foods (like leafy greens) to feel full without the calorie density.",
		Category: "science",
	},
	{
		ID:       "5",
		Title:    "Environment Design",
		Content:  "Keep healthy snacks visible and hide the junk. We eat what we see.",
		Category: "habit",
	},
}
