package plan

import "github.com/mkarvo/fitsoul/internal/profile"

// GenerateWorkoutPlan builds the weekly workout schedule for the profile.
//
// The template is selected by experience level and goal, then each day's
// focus is expanded into copies of the library exercises. The result always
// has seven days in canonical weekday order.
func GenerateWorkoutPlan(p profile.Profile) WorkoutPlan {
	p = p.Normalized()
	template := templateFor(p.ExperienceLevel, p.Goal)
	plan := make(WorkoutPlan, 0, len(Week))
	for i, day := range Week {
		plan = append(plan, WorkoutDay{
			Day:       day,
			Exercises: exercisesFor(template[i]),
		})
	}
	return plan
}
