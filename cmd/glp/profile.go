package glp

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saadjs/glp-cli/internal/model"
	"github.com/saadjs/glp-cli/internal/tracker"
)

var (
	profileName        string
	profileEmail       string
	profileHeight      float64
	profileStartWeight float64
	profileBirthDate   string
	profileGender      string
	profileActivity    string

	photoWeight float64
	photoImage  string
	photoNote   string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View or edit the user profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(tr *tracker.Tracker) error {
			p := tr.Profile()
			out := cmd.OutOrStdout()
			if p == nil {
				fmt.Fprintln(out, "No profile yet. Run `glp onboard` first.")
				return nil
			}
			fmt.Fprintf(out, "Name: %s <%s>\n", p.Name, p.Email)
			fmt.Fprintf(out, "Height: %.0f cm | Start weight: %.1f kg\n", p.HeightCm, p.StartWeightKg)
			fmt.Fprintf(out, "Born: %s | Gender: %s | Activity: %s\n", p.BirthDate, p.Gender, p.ActivityLevel)
			if p.HealthSync {
				fmt.Fprintln(out, "Health sync: on")
			}
			if len(p.ProgressPhotos) > 0 {
				fmt.Fprintf(out, "Progress photos: %d\n", len(p.ProgressPhotos))
				for _, photo := range p.ProgressPhotos {
					fmt.Fprintf(out, "  %s  %.1f kg  %s\n", photo.Date, photo.WeightKg, photo.Note)
				}
			}
			return nil
		})
	},
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Patch profile fields; unset flags are untouched",
	RunE: func(cmd *cobra.Command, args []string) error {
		var patch tracker.ProfileUpdate
		if cmd.Flags().Changed("name") {
			patch.Name = &profileName
		}
		if cmd.Flags().Changed("email") {
			patch.Email = &profileEmail
		}
		if cmd.Flags().Changed("height") {
			patch.HeightCm = &profileHeight
		}
		if cmd.Flags().Changed("start-weight") {
			patch.StartWeightKg = &profileStartWeight
		}
		if cmd.Flags().Changed("birth-date") {
			patch.BirthDate = &profileBirthDate
		}
		if cmd.Flags().Changed("gender") {
			gender, err := parseGender(profileGender)
			if err != nil {
				return err
			}
			patch.Gender = &gender
		}
		if cmd.Flags().Changed("activity") {
			level, err := parseActivityLevel(profileActivity)
			if err != nil {
				return err
			}
			patch.ActivityLevel = &level
		}
		return withTracker(func(tr *tracker.Tracker) error {
			if tr.Profile() == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No profile yet. Run `glp onboard` first.")
				return nil
			}
			if err := tr.UpdateProfile(patch); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Profile updated")
			return nil
		})
	},
}

var profilePhotoCmd = &cobra.Command{
	Use:   "photo",
	Short: "Manage progress photos",
}

var profilePhotoAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Append a progress photo entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		if photoWeight <= 0 {
			return fmt.Errorf("--weight must be > 0")
		}
		return withTracker(func(tr *tracker.Tracker) error {
			if tr.Profile() == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No profile yet. Run `glp onboard` first.")
				return nil
			}
			if err := tr.AddProgressPhoto(model.PhotoEntry{
				WeightKg: photoWeight,
				ImageURL: strings.TrimSpace(photoImage),
				Note:     strings.TrimSpace(photoNote),
			}); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Photo added")
			return nil
		})
	},
}

var profileSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Toggle health-platform sync",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(tr *tracker.Tracker) error {
			if tr.Profile() == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No profile yet. Run `glp onboard` first.")
				return nil
			}
			on, err := tr.ToggleHealthSync()
			if err != nil {
				return err
			}
			if on {
				fmt.Fprintln(cmd.OutOrStdout(), "Health sync: on")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Health sync: off")
			}
			return nil
		})
	},
}

func parseGender(raw string) (model.Gender, error) {
	switch model.Gender(raw) {
	case model.GenderMale, model.GenderFemale, model.GenderOther:
		return model.Gender(raw), nil
	default:
		return "", fmt.Errorf("invalid gender %q (expected male, female, or other)", raw)
	}
}

func parseActivityLevel(raw string) (model.ActivityLevel, error) {
	switch model.ActivityLevel(raw) {
	case model.ActivitySedentary, model.ActivityLight, model.ActivityModerate,
		model.ActivityActive, model.ActivityVeryActive:
		return model.ActivityLevel(raw), nil
	default:
		return "", fmt.Errorf("invalid activity level %q", raw)
	}
}

func init() {
	profileUpdateCmd.Flags().StringVar(&profileName, "name", "", "Display name")
	profileUpdateCmd.Flags().StringVar(&profileEmail, "email", "", "Email")
	profileUpdateCmd.Flags().Float64Var(&profileHeight, "height", 0, "Height (cm)")
	profileUpdateCmd.Flags().Float64Var(&profileStartWeight, "start-weight", 0, "Start weight (kg)")
	profileUpdateCmd.Flags().StringVar(&profileBirthDate, "birth-date", "", "Birth date YYYY-MM-DD")
	profileUpdateCmd.Flags().StringVar(&profileGender, "gender", "", "male, female, or other")
	profileUpdateCmd.Flags().StringVar(&profileActivity, "activity", "", "sedentary, light, moderate, active, or very_active")

	profilePhotoAddCmd.Flags().Float64Var(&photoWeight, "weight", 0, "Weight at the time of the photo (kg)")
	profilePhotoAddCmd.Flags().StringVar(&photoImage, "image", "", "Image path or URL")
	profilePhotoAddCmd.Flags().StringVar(&photoNote, "note", "", "Note")

	profilePhotoCmd.AddCommand(profilePhotoAddCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileUpdateCmd)
	profileCmd.AddCommand(profilePhotoCmd)
	profileCmd.AddCommand(profileSyncCmd)
	rootCmd.AddCommand(profileCmd)
}
