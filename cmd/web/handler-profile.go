package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mkarvo/fitsoul/internal/contexthelpers"
	"github.com/mkarvo/fitsoul/internal/fitness"
	"github.com/mkarvo/fitsoul/internal/profile"
)

type selectOption struct {
	Value string
	Label string
}

type profileTemplateData struct {
	BaseTemplateData
	Flash   string
	Profile profile.Profile
	// Errors lists the validation failures from the last submission.
	Errors []string
	// HasBodyStats reports whether weight and height are both present.
	HasBodyStats bool
	// BMI and Category are only meaningful when HasBodyStats is true.
	BMI      float64
	Category fitness.BMICategory
	// CalorieNeeds is the estimated daily maintenance calories.
	CalorieNeeds int

	SexOptions        []selectOption
	GoalOptions       []selectOption
	ExperienceOptions []selectOption
}

func sexOptions() []selectOption {
	return []selectOption{
		{Value: string(profile.SexMale), Label: "Male"},
		{Value: string(profile.SexFemale), Label: "Female"},
	}
}

func goalOptions() []selectOption {
	return []selectOption{
		{Value: string(profile.GoalLoseWeight), Label: "Lose weight"},
		{Value: string(profile.GoalBuildMuscle), Label: "Build muscle"},
		{Value: string(profile.GoalImproveFitness), Label: "Improve fitness"},
		{Value: string(profile.GoalToneBody), Label: "Tone body"},
	}
}

func experienceOptions() []selectOption {
	return []selectOption{
		{Value: string(profile.ExperienceBeginner), Label: "Beginner"},
		{Value: string(profile.ExperienceIntermediate), Label: "Intermediate"},
		{Value: string(profile.ExperienceAdvanced), Label: "Advanced"},
	}
}

func (app *application) newProfileTemplateData(r *http.Request, prof profile.Profile) profileTemplateData {
	data := profileTemplateData{
		BaseTemplateData:  newBaseTemplateData(r),
		Profile:           prof,
		SexOptions:        sexOptions(),
		GoalOptions:       goalOptions(),
		ExperienceOptions: experienceOptions(),
	}
	if prof.WeightKg > 0 && prof.HeightCm > 0 {
		data.HasBodyStats = true
		data.BMI = fitness.RoundedBMI(prof.WeightKg, prof.HeightCm)
		data.Category = fitness.CategoryForBMI(data.BMI)

		normalized := prof.Normalized()
		level := fitness.ActivityFor(normalized.Goal, normalized.ExperienceLevel)
		data.CalorieNeeds = fitness.CalorieNeeds(
			normalized.WeightKg, normalized.HeightCm, normalized.Age, normalized.Sex, level)
	}
	return data
}

func (app *application) profileGET(w http.ResponseWriter, r *http.Request) {
	prof, err := app.profileService.GetOrZero(r.Context())
	if err != nil {
		app.serverError(w, r, fmt.Errorf("get profile: %w", err))
		return
	}

	data := app.newProfileTemplateData(r, prof)
	data.Flash = app.popFlash(r)

	app.render(w, r, http.StatusOK, "profile", data)
}

// profileFromForm builds a profile from the submitted form. Empty fields stay
// absent. Returned errors are user-facing validation messages.
func profileFromForm(r *http.Request) (profile.Profile, []string) {
	var (
		prof profile.Profile
		errs []string
	)

	prof.Name = strings.TrimSpace(r.PostForm.Get("name"))

	if v := r.PostForm.Get("age"); v != "" {
		age, err := strconv.Atoi(v)
		if err != nil || age <= 0 {
			errs = append(errs, "Age must be a positive number")
		} else {
			prof.Age = age
		}
	}
	if v := r.PostForm.Get("sex"); v != "" {
		sex, err := profile.ParseSex(v)
		if err != nil {
			errs = append(errs, "Unknown sex")
		} else {
			prof.Sex = sex
		}
	}
	if v := r.PostForm.Get("weight"); v != "" {
		weight, err := strconv.ParseFloat(v, 64)
		if err != nil || weight <= 0 {
			errs = append(errs, "Weight must be a positive number")
		} else {
			prof.WeightKg = weight
		}
	}
	if v := r.PostForm.Get("height"); v != "" {
		height, err := strconv.ParseFloat(v, 64)
		if err != nil || height <= 0 {
			errs = append(errs, "Height must be a positive number")
		} else {
			prof.HeightCm = height
		}
	}
	if v := r.PostForm.Get("goal"); v != "" {
		goal, err := profile.ParseGoal(v)
		if err != nil {
			errs = append(errs, "Unknown goal")
		} else {
			prof.Goal = goal
		}
	}
	if v := r.PostForm.Get("experience_level"); v != "" {
		level, err := profile.ParseExperienceLevel(v)
		if err != nil {
			errs = append(errs, "Unknown experience level")
		} else {
			prof.ExperienceLevel = level
		}
	}

	prof.MenstrualTracking = r.PostForm.Get("menstrual_tracking") == "on"
	if v := r.PostForm.Get("last_period_date"); v != "" {
		date, err := time.Parse("2006-01-02", v)
		if err != nil {
			errs = append(errs, "Last period date must be a valid date")
		} else {
			prof.LastPeriodDate = date
		}
	}
	if v := r.PostForm.Get("cycle_duration"); v != "" {
		duration, err := strconv.Atoi(v)
		if err != nil || duration <= 0 {
			errs = append(errs, "Cycle duration must be a positive number")
		} else {
			prof.CycleDuration = duration
		}
	}

	return prof, errs
}

func (app *application) profilePOST(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.serverError(w, r, fmt.Errorf("parse form: %w", err))
		return
	}

	prof, errs := profileFromForm(r)
	if len(errs) > 0 {
		data := app.newProfileTemplateData(r, prof)
		data.Errors = errs
		app.render(w, r, http.StatusUnprocessableEntity, "profile", data)
		return
	}

	if err := app.profileService.Set(r.Context(), prof); err != nil {
		app.serverError(w, r, fmt.Errorf("save profile: %w", err))
		return
	}

	app.flash(r, "Profile saved")
	redirect(w, r, "/profile")
}

func (app *application) exportUserDataGET(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := contexthelpers.AuthenticatedUserID(ctx)

	exportPath, err := app.db.ExportUserDB(ctx, userID, os.TempDir())
	if err != nil {
		app.serverError(w, r, fmt.Errorf("export user data: %w", err))
		return
	}

	// Clean up the temporary file when done
	defer func() {
		if removeErr := os.Remove(exportPath); removeErr != nil {
			app.logger.LogAttrs(ctx, slog.LevelWarn, "failed to remove temporary export file",
				slog.String("path", exportPath), slog.Any("error", removeErr))
		}
	}()

	file, err := os.Open(exportPath)
	if err != nil {
		app.serverError(w, r, fmt.Errorf("open export file: %w", err))
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			app.logger.LogAttrs(ctx, slog.LevelWarn, "failed to close export file",
				slog.String("path", exportPath), slog.Any("error", closeErr))
		}
	}()

	// Set headers for file download
	filename := filepath.Base(exportPath)
	w.Header().Set("Content-Type", "application/x-sqlite3")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	// Stream the file to the client
	if _, err = io.Copy(w, file); err != nil {
		app.logger.LogAttrs(ctx, slog.LevelError, "failed to stream export file to client",
			slog.String("path", exportPath), slog.Any("error", err))
		return
	}
}
