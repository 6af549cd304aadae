// Package plan generates and tracks the weekly workout and meal plans.
//
// Generation is deterministic: the same profile always produces the same
// week. After generation only the completed flags mutate, keyed by weekday
// name and item index.
package plan

import "fmt"

// Weekday is the canonical day name used as the mutation key within a plan.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// Week lists the weekdays in canonical order. Every generated plan has
// exactly one entry per weekday in this order.
var Week = [7]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

func ParseWeekday(s string) (Weekday, error) {
	for _, day := range Week {
		if Weekday(s) == day {
			return day, nil
		}
	}
	return "", fmt.Errorf("unknown weekday %q", s)
}

type Exercise struct {
	Name        string `json:"name"`
	Sets        int    `json:"sets"`
	Reps        int    `json:"reps"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

type WorkoutDay struct {
	Day       Weekday    `json:"day"`
	Exercises []Exercise `json:"exercises"`
}

// WorkoutPlan is the persisted workout document, one entry per weekday.
type WorkoutPlan []WorkoutDay

// Macros are grams of each macronutrient.
type Macros struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fat     int `json:"fat"`
}

type Meal struct {
	Name        string `json:"name"`
	Time        string `json:"time"`
	Description string `json:"description"`
	Calories    int    `json:"calories"`
	Macros      Macros `json:"macros"`
	Completed   bool   `json:"completed"`
}

type MealDay struct {
	Day   Weekday `json:"day"`
	Meals []Meal  `json:"meals"`
}

// MealPlan is the persisted diet document, one entry per weekday.
type MealPlan []MealDay

func (p WorkoutPlan) dayIndex(day Weekday) int {
	for i := range p {
		if p[i].Day == day {
			return i
		}
	}
	return -1
}

func (p MealPlan) dayIndex(day Weekday) int {
	for i := range p {
		if p[i].Day == day {
			return i
		}
	}
	return -1
}
