package glp

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saadjs/glp-cli/internal/model"
	"github.com/saadjs/glp-cli/internal/tracker"
)

var (
	onboardName        string
	onboardEmail       string
	onboardHeight      float64
	onboardStartWeight float64
	onboardBirthDate   string
	onboardGender      string
	onboardActivity    string

	onboardDrug         string
	onboardDosage       string
	onboardFrequency    string
	onboardInjectionDay int
)

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Set up the profile, goals, and medication schedule",
	Long:  "Creates the user profile and medication schedule and marks the session active. Goal flags from `glp goals set` apply afterwards; defaults are used until then.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(onboardName) == "" {
			return fmt.Errorf("--name is required")
		}
		if onboardStartWeight <= 0 {
			return fmt.Errorf("--start-weight must be > 0")
		}
		gender, err := parseGender(onboardGender)
		if err != nil {
			return err
		}
		activity, err := parseActivityLevel(onboardActivity)
		if err != nil {
			return err
		}
		if onboardInjectionDay < 0 || onboardInjectionDay > 6 {
			return fmt.Errorf("--injection-day must be 0-6 (0 = Sunday)")
		}

		return withTracker(func(tr *tracker.Tracker) error {
			profile := model.UserProfile{
				Name:          strings.TrimSpace(onboardName),
				Email:         strings.TrimSpace(onboardEmail),
				HeightCm:      onboardHeight,
				StartWeightKg: onboardStartWeight,
				BirthDate:     strings.TrimSpace(onboardBirthDate),
				Gender:        gender,
				ActivityLevel: activity,
			}
			meds := tr.Medication()
			if cmd.Flags().Changed("drug") {
				meds.DrugName = strings.TrimSpace(onboardDrug)
			}
			if cmd.Flags().Changed("dosage") {
				meds.Dosage = strings.TrimSpace(onboardDosage)
			}
			if cmd.Flags().Changed("frequency") {
				meds.Frequency = strings.TrimSpace(onboardFrequency)
			}
			if cmd.Flags().Changed("injection-day") {
				meds.InjectionDay = onboardInjectionDay
			}

			if err := tr.CompleteOnboarding(profile, tr.Goals(), meds); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s. Today's log is seeded at %.1f kg.\n",
				profile.Name, profile.StartWeightKg)
			return nil
		})
	},
}

func init() {
	onboardCmd.Flags().StringVar(&onboardName, "name", "", "Display name")
	onboardCmd.Flags().StringVar(&onboardEmail, "email", "", "Email")
	onboardCmd.Flags().Float64Var(&onboardHeight, "height", 0, "Height (cm)")
	onboardCmd.Flags().Float64Var(&onboardStartWeight, "start-weight", 0, "Start weight (kg)")
	onboardCmd.Flags().StringVar(&onboardBirthDate, "birth-date", "", "Birth date YYYY-MM-DD")
	onboardCmd.Flags().StringVar(&onboardGender, "gender", "other", "male, female, or other")
	onboardCmd.Flags().StringVar(&onboardActivity, "activity", "moderate", "sedentary, light, moderate, active, or very_active")
	onboardCmd.Flags().StringVar(&onboardDrug, "drug", "", "Medication name")
	onboardCmd.Flags().StringVar(&onboardDosage, "dosage", "", "Dosage label")
	onboardCmd.Flags().StringVar(&onboardFrequency, "frequency", "", "Frequency label")
	onboardCmd.Flags().IntVar(&onboardInjectionDay, "injection-day", 4, "Injection day of week, 0 = Sunday")
	rootCmd.AddCommand(onboardCmd)
}
