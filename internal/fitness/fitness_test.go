package fitness_test

import (
	"math"
	"testing"

	"github.com/mkarvo/fitsoul/internal/fitness"
	"github.com/mkarvo/fitsoul/internal/profile"
)

func TestBMI(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		weightKg float64
		heightCm float64
		want     float64
	}{
		{name: "average build", weightKg: 70, heightCm: 175, want: 22.9},
		{name: "two metres tall", weightKg: 100, heightCm: 200, want: 25.0},
		{name: "light", weightKg: 45, heightCm: 160, want: 17.6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := fitness.RoundedBMI(tt.weightKg, tt.heightCm)
			if got != tt.want {
				t.Errorf("RoundedBMI(%v, %v) = %v, want %v", tt.weightKg, tt.heightCm, got, tt.want)
			}
			unrounded := fitness.BMI(tt.weightKg, tt.heightCm)
			if math.Abs(unrounded-tt.want) > 0.05 {
				t.Errorf("BMI(%v, %v) = %v, too far from %v", tt.weightKg, tt.heightCm, unrounded, tt.want)
			}
		})
	}
}

func TestCategoryForBMI(t *testing.T) {
	t.Parallel()
	tests := []struct {
		bmi  float64
		want fitness.BMICategory
	}{
		{bmi: 15, want: fitness.CategoryUnderweight},
		{bmi: 18.499, want: fitness.CategoryUnderweight},
		{bmi: 18.5, want: fitness.CategoryNormal},
		{bmi: 24.999, want: fitness.CategoryNormal},
		{bmi: 25, want: fitness.CategoryOverweight},
		{bmi: 29.999, want: fitness.CategoryOverweight},
		{bmi: 30, want: fitness.CategoryObese},
		{bmi: 45, want: fitness.CategoryObese},
	}
	for _, tt := range tests {
		if got := fitness.CategoryForBMI(tt.bmi); got != tt.want {
			t.Errorf("CategoryForBMI(%v) = %v, want %v", tt.bmi, got, tt.want)
		}
	}
}

func TestCalorieNeeds(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		weightKg float64
		heightCm float64
		age      int
		sex      profile.Sex
		level    fitness.ActivityLevel
		want     int
	}{
		{
			// 88.362 + 13.397*70 + 4.799*175 - 5.677*25 = 1724.052, times 1.55.
			name: "reference male", weightKg: 70, heightCm: 175, age: 25,
			sex: profile.SexMale, level: fitness.ActivityModerate, want: 2672,
		},
		{
			// 447.593 + 9.247*60 + 3.098*165 - 4.330*30 = 1383.683, times 1.375.
			name: "reference female", weightKg: 60, heightCm: 165, age: 30,
			sex: profile.SexFemale, level: fitness.ActivityLight, want: 1903,
		},
		{
			name: "unknown level falls back to moderate", weightKg: 70, heightCm: 175, age: 25,
			sex: profile.SexMale, level: fitness.ActivityLevel("extreme"), want: 2672,
		},
		{
			name: "sedentary male", weightKg: 90, heightCm: 180, age: 45,
			sex: profile.SexMale, level: fitness.ActivitySedentary,
			// 88.362 + 13.397*90 + 4.799*180 - 5.677*45 = 1902.447, times 1.2.
			want: 2283,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := fitness.CalorieNeeds(tt.weightKg, tt.heightCm, tt.age, tt.sex, tt.level)
			if got != tt.want {
				t.Errorf("CalorieNeeds() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestActivityFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		goal  profile.Goal
		level profile.ExperienceLevel
		want  fitness.ActivityLevel
	}{
		{goal: profile.GoalLoseWeight, level: profile.ExperienceBeginner, want: fitness.ActivityLight},
		{goal: profile.GoalLoseWeight, level: profile.ExperienceIntermediate, want: fitness.ActivityModerate},
		{goal: profile.GoalLoseWeight, level: profile.ExperienceAdvanced, want: fitness.ActivityModerate},
		{goal: profile.GoalBuildMuscle, level: profile.ExperienceBeginner, want: fitness.ActivityActive},
		{goal: profile.GoalBuildMuscle, level: profile.ExperienceAdvanced, want: fitness.ActivityVeryActive},
		{goal: profile.GoalImproveFitness, level: profile.ExperienceBeginner, want: fitness.ActivityLight},
		{goal: profile.GoalImproveFitness, level: profile.ExperienceIntermediate, want: fitness.ActivityModerate},
		{goal: profile.GoalToneBody, level: profile.ExperienceAdvanced, want: fitness.ActivityActive},
		{goal: profile.GoalToneBody, level: profile.ExperienceLevel(""), want: fitness.ActivityModerate},
	}
	for _, tt := range tests {
		if got := fitness.ActivityFor(tt.goal, tt.level); got != tt.want {
			t.Errorf("ActivityFor(%s, %s) = %v, want %v", tt.goal, tt.level, got, tt.want)
		}
	}
}
