package plan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/mkarvo/fitsoul/internal/docstore"
	"github.com/mkarvo/fitsoul/internal/profile"
)

var (
	// ErrNotFound is returned when a mutation addresses a missing plan,
	// an unknown day or an out-of-range item index.
	ErrNotFound = errors.New("plan entry not found")
	// ErrNotToday is returned when a completion flag of a day other than
	// the current calendar day is changed. The restriction applies to both
	// completing and un-completing.
	ErrNotToday = errors.New("only today's items can be changed")
)

// Plans bundles the two persisted weekly plans.
type Plans struct {
	Workout WorkoutPlan
	Diet    MealPlan
}

// Completion counts completed items over a whole plan.
type Completion struct {
	Completed  int
	Total      int
	Percentage int
}

// ProgressStats covers both plans.
type ProgressStats struct {
	Workout Completion
	Diet    Completion
}

// Nutrition is a calorie and macro rollup over a set of meals.
type Nutrition struct {
	Calories int
	Protein  int
	Carbs    int
	Fat      int
}

// Service owns the persisted plans of the authenticated user.
//
// Plans are written back whole on every mutation. Concurrent mutations race
// with last writer wins, which is accepted for this single-user data.
type Service struct {
	store  docstore.Store
	logger *slog.Logger
	now    func() time.Time
}

func NewService(store docstore.Store, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Today returns the canonical weekday name of the current calendar day.
func (s *Service) Today() Weekday {
	return Weekday(s.now().Weekday().String())
}

// Plans returns the user's plans, generating and persisting them from the
// profile on first access. Existing plans are returned verbatim, profile
// edits do not regenerate them. Use Regenerate for that.
func (s *Service) Plans(ctx context.Context) (Plans, error) {
	var (
		plans      Plans
		workoutErr = s.store.Get(ctx, docstore.KeyWorkoutPlan, &plans.Workout)
		dietErr    = s.store.Get(ctx, docstore.KeyDietPlan, &plans.Diet)
	)
	if workoutErr == nil && dietErr == nil {
		return plans, nil
	}
	for _, err := range []error{workoutErr, dietErr} {
		if err != nil && !errors.Is(err, docstore.ErrNotFound) {
			return Plans{}, fmt.Errorf("load plans: %w", err)
		}
	}
	return s.generate(ctx)
}

// Regenerate discards any persisted plans and builds fresh ones from the
// current profile. All completion state is lost.
func (s *Service) Regenerate(ctx context.Context) (Plans, error) {
	return s.generate(ctx)
}

func (s *Service) generate(ctx context.Context) (Plans, error) {
	var p profile.Profile
	err := s.store.Get(ctx, docstore.KeyUserProfile, &p)
	if err != nil && !errors.Is(err, docstore.ErrNotFound) {
		return Plans{}, fmt.Errorf("load profile: %w", err)
	}

	plans := Plans{
		Workout: GenerateWorkoutPlan(p),
		Diet:    GenerateDietPlan(p),
	}
	if err = s.store.Set(ctx, docstore.KeyWorkoutPlan, plans.Workout); err != nil {
		return Plans{}, fmt.Errorf("persist workout plan: %w", err)
	}
	if err = s.store.Set(ctx, docstore.KeyDietPlan, plans.Diet); err != nil {
		return Plans{}, fmt.Errorf("persist diet plan: %w", err)
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "generated plans",
		slog.String("goal", string(p.Goal)),
		slog.String("experienceLevel", string(p.ExperienceLevel)))
	return plans, nil
}

// SetExerciseCompleted flags one exercise of today's workout.
//
// Returns ErrNotToday for any other day and ErrNotFound when the plan, day
// or index does not exist. The plan is untouched on error.
func (s *Service) SetExerciseCompleted(ctx context.Context, day Weekday, index int, completed bool) error {
	if day != s.Today() {
		return ErrNotToday
	}

	var plan WorkoutPlan
	err := s.store.Get(ctx, docstore.KeyWorkoutPlan, &plan)
	if errors.Is(err, docstore.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("load workout plan: %w", err)
	}

	dayIdx := plan.dayIndex(day)
	if dayIdx == -1 || index < 0 || index >= len(plan[dayIdx].Exercises) {
		return ErrNotFound
	}
	plan[dayIdx].Exercises[index].Completed = completed

	if err = s.store.Set(ctx, docstore.KeyWorkoutPlan, plan); err != nil {
		return fmt.Errorf("persist workout plan: %w", err)
	}
	return nil
}

// SetMealCompleted flags one meal of today's diet plan. Same contract as
// SetExerciseCompleted.
func (s *Service) SetMealCompleted(ctx context.Context, day Weekday, index int, completed bool) error {
	if day != s.Today() {
		return ErrNotToday
	}

	var plan MealPlan
	err := s.store.Get(ctx, docstore.KeyDietPlan, &plan)
	if errors.Is(err, docstore.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("load diet plan: %w", err)
	}

	dayIdx := plan.dayIndex(day)
	if dayIdx == -1 || index < 0 || index >= len(plan[dayIdx].Meals) {
		return ErrNotFound
	}
	plan[dayIdx].Meals[index].Completed = completed

	if err = s.store.Set(ctx, docstore.KeyDietPlan, plan); err != nil {
		return fmt.Errorf("persist diet plan: %w", err)
	}
	return nil
}

// ProgressStats counts completed items across both persisted plans.
// A missing plan counts as zero items and yields percentage 0.
func (s *Service) ProgressStats(ctx context.Context) (ProgressStats, error) {
	var stats ProgressStats

	var workout WorkoutPlan
	err := s.store.Get(ctx, docstore.KeyWorkoutPlan, &workout)
	if err != nil && !errors.Is(err, docstore.ErrNotFound) {
		return ProgressStats{}, fmt.Errorf("load workout plan: %w", err)
	}
	for _, day := range workout {
		for _, exercise := range day.Exercises {
			stats.Workout.Total++
			if exercise.Completed {
				stats.Workout.Completed++
			}
		}
	}

	var diet MealPlan
	err = s.store.Get(ctx, docstore.KeyDietPlan, &diet)
	if err != nil && !errors.Is(err, docstore.ErrNotFound) {
		return ProgressStats{}, fmt.Errorf("load diet plan: %w", err)
	}
	for _, day := range diet {
		for _, meal := range day.Meals {
			stats.Diet.Total++
			if meal.Completed {
				stats.Diet.Completed++
			}
		}
	}

	stats.Workout.Percentage = percentage(stats.Workout.Completed, stats.Workout.Total)
	stats.Diet.Percentage = percentage(stats.Diet.Completed, stats.Diet.Total)
	return stats, nil
}

func percentage(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// DailyTotals sums calories and macros over every meal of the given day.
func (s *Service) DailyTotals(ctx context.Context, day Weekday) (Nutrition, error) {
	return s.sumMeals(ctx, day, false)
}

// TodayNutrition sums calories and macros over today's completed meals,
// the "eaten so far" rollup.
func (s *Service) TodayNutrition(ctx context.Context) (Nutrition, error) {
	return s.sumMeals(ctx, s.Today(), true)
}

func (s *Service) sumMeals(ctx context.Context, day Weekday, completedOnly bool) (Nutrition, error) {
	var plan MealPlan
	err := s.store.Get(ctx, docstore.KeyDietPlan, &plan)
	if errors.Is(err, docstore.ErrNotFound) {
		return Nutrition{}, nil
	}
	if err != nil {
		return Nutrition{}, fmt.Errorf("load diet plan: %w", err)
	}

	var totals Nutrition
	dayIdx := plan.dayIndex(day)
	if dayIdx == -1 {
		return Nutrition{}, nil
	}
	for _, meal := range plan[dayIdx].Meals {
		if completedOnly && !meal.Completed {
			continue
		}
		totals.Calories += meal.Calories
		totals.Protein += meal.Macros.Protein
		totals.Carbs += meal.Macros.Carbs
		totals.Fat += meal.Macros.Fat
	}
	return totals, nil
}
