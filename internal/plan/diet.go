package plan

import (
	"math"

	"github.com/mkarvo/fitsoul/internal/fitness"
	"github.com/mkarvo/fitsoul/internal/profile"
)

// defaultBMI stands in when the profile is missing height or weight.
const defaultBMI = 25.0

// mealTemplate is a meal option. The calorie and macro fields are fractions
// of the daily targets and get scaled at generation time.
type mealTemplate struct {
	name        string
	time        string
	description string
	calorieFrac float64
	proteinFrac float64
	carbFrac    float64
	fatFrac     float64
}

var breakfastOptions = []mealTemplate{
	{
		name: "Protein Oatmeal", time: "7:00 AM",
		description: "Oatmeal cooked with milk, protein powder, banana, and a tablespoon of honey",
		calorieFrac: 0.25, proteinFrac: 0.25, carbFrac: 0.3, fatFrac: 0.15,
	},
	{
		name: "Greek Yogurt Parfait", time: "7:30 AM",
		description: "Greek yogurt with berries, granola, and a drizzle of honey",
		calorieFrac: 0.25, proteinFrac: 0.3, carbFrac: 0.25, fatFrac: 0.15,
	},
	{
		name: "Veggie Omelette", time: "8:00 AM",
		description: "Egg omelette with spinach, tomatoes, onions, and a side of whole grain toast",
		calorieFrac: 0.25, proteinFrac: 0.3, carbFrac: 0.2, fatFrac: 0.25,
	},
	{
		name: "Smoothie Bowl", time: "7:15 AM",
		description: "Blend of frozen fruits, protein powder, spinach, topped with nuts and seeds",
		calorieFrac: 0.25, proteinFrac: 0.25, carbFrac: 0.35, fatFrac: 0.15,
	},
}

var lunchOptions = []mealTemplate{
	{
		name: "Chicken Salad", time: "12:30 PM",
		description: "Grilled chicken breast on a bed of mixed greens with vegetables and light dressing",
		calorieFrac: 0.3, proteinFrac: 0.4, carbFrac: 0.2, fatFrac: 0.3,
	},
	{
		name: "Quinoa Bowl", time: "1:00 PM",
		description: "Quinoa with roasted vegetables, chickpeas, and a tahini dressing",
		calorieFrac: 0.3, proteinFrac: 0.25, carbFrac: 0.4, fatFrac: 0.25,
	},
	{
		name: "Turkey Wrap", time: "12:00 PM",
		description: "Whole grain wrap with turkey, avocado, lettuce, tomato, and mustard",
		calorieFrac: 0.3, proteinFrac: 0.35, carbFrac: 0.3, fatFrac: 0.3,
	},
	{
		name: "Lentil Soup & Sandwich", time: "12:15 PM",
		description: "Lentil soup with a small whole grain sandwich with hummus and vegetables",
		calorieFrac: 0.3, proteinFrac: 0.3, carbFrac: 0.4, fatFrac: 0.2,
	},
}

var dinnerOptions = []mealTemplate{
	{
		name: "Salmon & Vegetables", time: "6:30 PM",
		description: "Baked salmon with steamed broccoli and sweet potato",
		calorieFrac: 0.3, proteinFrac: 0.4, carbFrac: 0.3, fatFrac: 0.4,
	},
	{
		name: "Stir Fry", time: "7:00 PM",
		description: "Chicken or tofu stir fry with mixed vegetables and brown rice",
		calorieFrac: 0.3, proteinFrac: 0.35, carbFrac: 0.4, fatFrac: 0.25,
	},
	{
		name: "Lean Beef Pasta", time: "6:45 PM",
		description: "Whole grain pasta with lean ground beef, tomato sauce, and vegetables",
		calorieFrac: 0.3, proteinFrac: 0.35, carbFrac: 0.45, fatFrac: 0.3,
	},
	{
		name: "Bean & Vegetable Bowl", time: "6:15 PM",
		description: "Bowl with mixed beans, quinoa, roasted vegetables, and avocado",
		calorieFrac: 0.3, proteinFrac: 0.3, carbFrac: 0.35, fatFrac: 0.35,
	},
}

var snackOptions = []mealTemplate{
	{
		name: "Protein Shake", time: "3:30 PM",
		description: "Protein powder mixed with water or milk",
		calorieFrac: 0.15, proteinFrac: 0.25, carbFrac: 0.05, fatFrac: 0.05,
	},
	{
		name: "Nuts & Fruit", time: "3:00 PM",
		description: "A handful of mixed nuts with an apple or orange",
		calorieFrac: 0.15, proteinFrac: 0.1, carbFrac: 0.15, fatFrac: 0.25,
	},
	{
		name: "Greek Yogurt", time: "10:00 AM",
		description: "Plain Greek yogurt with a drizzle of honey",
		calorieFrac: 0.15, proteinFrac: 0.2, carbFrac: 0.1, fatFrac: 0.1,
	},
	{
		name: "Vegetable Sticks & Hummus", time: "4:00 PM",
		description: "Carrot, celery, and cucumber sticks with hummus",
		calorieFrac: 0.15, proteinFrac: 0.1, carbFrac: 0.15, fatFrac: 0.15,
	},
}

// dietTargets holds the resolved daily calorie and macro gram targets.
type dietTargets struct {
	calories int
	protein  int
	carbs    int
	fat      int
}

// targetsFor derives the daily targets from the profile.
//
// The base comes from sex and age bracket, adjusted by goal and BMI. Macro
// splits are selected by goal and converted to grams at 4 kcal/g for protein
// and carbs, 9 kcal/g for fat.
func targetsFor(p profile.Profile) dietTargets {
	bmi := defaultBMI
	if p.HeightCm > 0 && p.WeightKg > 0 {
		bmi = fitness.RoundedBMI(p.WeightKg, p.HeightCm)
	}

	var base int
	if p.Sex == profile.SexMale {
		base = 2000
		if p.Age < 30 {
			base += 200
		}
		if p.Age > 50 {
			base -= 200
		}
	} else {
		base = 1800
		if p.Age < 30 {
			base += 100
		}
		if p.Age > 50 {
			base -= 100
		}
	}

	target := base
	switch p.Goal {
	case profile.GoalLoseWeight:
		target -= 300
	case profile.GoalBuildMuscle:
		target += 300
	}

	if bmi > 30 {
		target -= 200
	} else if bmi < 18.5 {
		target += 200
	}

	proteinPct, fatPct, carbPct := 0.25, 0.25, 0.5
	switch p.Goal {
	case profile.GoalBuildMuscle:
		proteinPct, fatPct, carbPct = 0.3, 0.25, 0.45
	case profile.GoalLoseWeight:
		proteinPct, fatPct, carbPct = 0.3, 0.3, 0.4
	}

	return dietTargets{
		calories: target,
		protein:  roundToInt(float64(target) * proteinPct / 4),
		carbs:    roundToInt(float64(target) * carbPct / 4),
		fat:      roundToInt(float64(target) * fatPct / 9),
	}
}

func roundToInt(f float64) int {
	return int(math.Round(f))
}

func (t mealTemplate) materialize(targets dietTargets) Meal {
	return Meal{
		Name:        t.name,
		Time:        t.time,
		Description: t.description,
		Calories:    roundToInt(float64(targets.calories) * t.calorieFrac),
		Macros: Macros{
			Protein: roundToInt(float64(targets.protein) * t.proteinFrac),
			Carbs:   roundToInt(float64(targets.carbs) * t.carbFrac),
			Fat:     roundToInt(float64(targets.fat) * t.fatFrac),
		},
		Completed: false,
	}
}

// GenerateDietPlan builds the weekly meal schedule for the profile.
//
// Each day gets breakfast, lunch, dinner and snack picked by rotating
// through four fixed option lists, so the pattern repeats after four days.
// Per-meal macros are fractions of the daily targets and are not guaranteed
// to sum exactly to them.
func GenerateDietPlan(p profile.Profile) MealPlan {
	p = p.Normalized()
	targets := targetsFor(p)
	plan := make(MealPlan, 0, len(Week))
	for i, day := range Week {
		plan = append(plan, MealDay{
			Day: day,
			Meals: []Meal{
				breakfastOptions[i%len(breakfastOptions)].materialize(targets),
				lunchOptions[i%len(lunchOptions)].materialize(targets),
				dinnerOptions[i%len(dinnerOptions)].materialize(targets),
				snackOptions[i%len(snackOptions)].materialize(targets),
			},
		})
	}
	return plan
}
