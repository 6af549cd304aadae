package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/mkarvo/fitsoul/internal/plan"
)

type workoutTemplateData struct {
	BaseTemplateData
	Flash string
	Today plan.Weekday
	Days  []plan.WorkoutDay
}

func (app *application) workoutsGET(w http.ResponseWriter, r *http.Request) {
	plans, err := app.planService.Plans(r.Context())
	if err != nil {
		app.serverError(w, r, fmt.Errorf("get plans: %w", err))
		return
	}

	data := workoutTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		Flash:            app.popFlash(r),
		Today:            app.planService.Today(),
		Days:             plans.Workout,
	}

	app.render(w, r, http.StatusOK, "workout", data)
}

func (app *application) exerciseCompletePOST(w http.ResponseWriter, r *http.Request) {
	day, ok := app.parseDayParam(w, r)
	if !ok {
		return
	}
	index, ok := app.parseIndexParam(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		app.serverError(w, r, fmt.Errorf("parse form: %w", err))
		return
	}
	completed := r.PostForm.Get("completed") == "true"

	err := app.planService.SetExerciseCompleted(r.Context(), day, index, completed)
	switch {
	case errors.Is(err, plan.ErrNotToday):
		app.flash(r, "Only today's exercises can be updated")
	case errors.Is(err, plan.ErrNotFound):
		http.NotFound(w, r)
		return
	case err != nil:
		app.serverError(w, r, fmt.Errorf("set exercise completed: %w", err))
		return
	}

	redirect(w, r, "/workouts")
}
