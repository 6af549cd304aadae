package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/mkarvo/fitsoul/internal/plan"
)

// dietDayView pairs a meal day with its nutrition rollup.
type dietDayView struct {
	plan.MealDay
	Totals plan.Nutrition
}

type dietTemplateData struct {
	BaseTemplateData
	Flash string
	Today plan.Weekday
	Days  []dietDayView
	// TodayNutrition sums only the completed meals of the current day.
	TodayNutrition plan.Nutrition
}

func (app *application) dietGET(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	plans, err := app.planService.Plans(ctx)
	if err != nil {
		app.serverError(w, r, fmt.Errorf("get plans: %w", err))
		return
	}

	days := make([]dietDayView, len(plans.Diet))
	for i, day := range plans.Diet {
		var totals plan.Nutrition
		if totals, err = app.planService.DailyTotals(ctx, day.Day); err != nil {
			app.serverError(w, r, fmt.Errorf("daily totals: %w", err))
			return
		}
		days[i] = dietDayView{MealDay: day, Totals: totals}
	}

	data := dietTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		Flash:            app.popFlash(r),
		Today:            app.planService.Today(),
		Days:             days,
	}
	if data.TodayNutrition, err = app.planService.TodayNutrition(ctx); err != nil {
		app.serverError(w, r, fmt.Errorf("today nutrition: %w", err))
		return
	}

	app.render(w, r, http.StatusOK, "diet", data)
}

func (app *application) mealCompletePOST(w http.ResponseWriter, r *http.Request) {
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

	err := app.planService.SetMealCompleted(r.Context(), day, index, completed)
	switch {
	case errors.Is(err, plan.ErrNotToday):
		app.flash(r, "Only today's meals can be updated")
	case errors.Is(err, plan.ErrNotFound):
		http.NotFound(w, r)
		return
	case err != nil:
		app.serverError(w, r, fmt.Errorf("set meal completed: %w", err))
		return
	}

	redirect(w, r, "/diet")
}

func (app *application) regeneratePOST(w http.ResponseWriter, r *http.Request) {
	if _, err := app.planService.Regenerate(r.Context()); err != nil {
		app.serverError(w, r, fmt.Errorf("regenerate plans: %w", err))
		return
	}

	app.flash(r, "Plans regenerated")
	redirect(w, r, "/workouts")
}
