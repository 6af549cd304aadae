package main

import (
	"net/http"

	"github.com/mkarvo/fitsoul/internal/plan"
)

type homeTemplateData struct {
	BaseTemplateData
	Flash string
	// Name is the user's display name from the profile, may be empty.
	Name string
	// Today is the weekday name of the current calendar day.
	Today plan.Weekday
	// Progress holds the completion rollups over both weekly plans.
	Progress plan.ProgressStats
	// Nutrition is the sum of calories and macros over today's completed meals.
	Nutrition plan.Nutrition
}

func (app *application) home(w http.ResponseWriter, r *http.Request) {
	data := homeTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
	}

	// Only fetch plan data for authenticated users
	if data.Authenticated {
		ctx := r.Context()
		data.Flash = app.popFlash(r)
		data.Today = app.planService.Today()

		prof, err := app.profileService.GetOrZero(ctx)
		if err != nil {
			app.serverError(w, r, err)
			return
		}
		data.Name = prof.Name

		if data.Progress, err = app.planService.ProgressStats(ctx); err != nil {
			app.serverError(w, r, err)
			return
		}
		if data.Nutrition, err = app.planService.TodayNutrition(ctx); err != nil {
			app.serverError(w, r, err)
			return
		}
	}

	app.render(w, r, http.StatusOK, "home", data)
}
