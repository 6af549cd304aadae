// Package fitness implements the metric calculators: BMI, calorie needs
// via the Harris-Benedict equation and activity level inference.
package fitness

import (
	"math"

	"github.com/mkarvo/fitsoul/internal/profile"
)

// BMICategory labels the standard BMI brackets.
type BMICategory string

const (
	CategoryUnderweight BMICategory = "Underweight"
	CategoryNormal      BMICategory = "Normal"
	CategoryOverweight  BMICategory = "Overweight"
	CategoryObese       BMICategory = "Obese"
)

// ActivityLevel selects the multiplier applied on top of the basal
// metabolic rate.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// BMI returns weight(kg) / height(m) squared. Height must be positive.
func BMI(weightKg, heightCm float64) float64 {
	heightM := heightCm / 100
	return weightKg / (heightM * heightM)
}

// RoundedBMI returns the BMI rounded to one decimal for display.
func RoundedBMI(weightKg, heightCm float64) float64 {
	return math.Round(BMI(weightKg, heightCm)*10) / 10
}

// CategoryForBMI buckets a BMI value. Boundary values belong to the upper
// bracket, a BMI of exactly 25 is Overweight.
func CategoryForBMI(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return CategoryUnderweight
	case bmi < 25:
		return CategoryNormal
	case bmi < 30:
		return CategoryOverweight
	default:
		return CategoryObese
	}
}

func activityMultiplier(level ActivityLevel) float64 {
	switch level {
	case ActivitySedentary:
		return 1.2
	case ActivityLight:
		return 1.375
	case ActivityModerate:
		return 1.55
	case ActivityActive:
		return 1.725
	case ActivityVeryActive:
		return 1.9
	default:
		return 1.55
	}
}

// CalorieNeeds estimates daily energy expenditure in kilocalories.
//
// The basal metabolic rate comes from the sex-specific Harris-Benedict
// linear formula and is scaled by the activity multiplier.
func CalorieNeeds(weightKg, heightCm float64, age int, sex profile.Sex, level ActivityLevel) int {
	var bmr float64
	if sex == profile.SexMale {
		bmr = 88.362 + 13.397*weightKg + 4.799*heightCm - 5.677*float64(age)
	} else {
		bmr = 447.593 + 9.247*weightKg + 3.098*heightCm - 4.330*float64(age)
	}
	return int(math.Round(bmr * activityMultiplier(level)))
}

// ActivityFor infers the activity level from goal and experience.
func ActivityFor(goal profile.Goal, level profile.ExperienceLevel) ActivityLevel {
	switch goal {
	case profile.GoalLoseWeight:
		if level == profile.ExperienceBeginner {
			return ActivityLight
		}
		return ActivityModerate
	case profile.GoalBuildMuscle:
		if level == profile.ExperienceAdvanced {
			return ActivityVeryActive
		}
		return ActivityActive
	}
	// General fitness and toning scale with experience.
	switch level {
	case profile.ExperienceBeginner:
		return ActivityLight
	case profile.ExperienceIntermediate:
		return ActivityModerate
	case profile.ExperienceAdvanced:
		return ActivityActive
	default:
		return ActivityModerate
	}
}
