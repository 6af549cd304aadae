// Package profile holds the user's physical stats and training goals.
package profile

import (
	"errors"
	"fmt"
	"time"
)

// Sex is the biological sex used by the metabolic rate formulas.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

func ParseSex(s string) (Sex, error) {
	switch Sex(s) {
	case SexMale, SexFemale:
		return Sex(s), nil
	}
	return "", fmt.Errorf("unknown sex %q", s)
}

// Goal is the user's primary training goal.
type Goal string

const (
	GoalLoseWeight     Goal = "lose_weight"
	GoalBuildMuscle    Goal = "build_muscle"
	GoalImproveFitness Goal = "improve_fitness"
	GoalToneBody       Goal = "tone_body"
)

func ParseGoal(s string) (Goal, error) {
	switch Goal(s) {
	case GoalLoseWeight, GoalBuildMuscle, GoalImproveFitness, GoalToneBody:
		return Goal(s), nil
	}
	return "", fmt.Errorf("unknown goal %q", s)
}

// ExperienceLevel describes how long the user has been training.
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
)

func ParseExperienceLevel(s string) (ExperienceLevel, error) {
	switch ExperienceLevel(s) {
	case ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced:
		return ExperienceLevel(s), nil
	}
	return "", fmt.Errorf("unknown experience level %q", s)
}

// Profile is the user's stats document. All fields are optional, the zero
// value is a valid profile with every field absent.
type Profile struct {
	Name              string          `json:"name,omitempty"`
	Age               int             `json:"age,omitempty"`
	Sex               Sex             `json:"sex,omitempty"`
	WeightKg          float64         `json:"weight,omitempty"`
	HeightCm          float64         `json:"height,omitempty"`
	Goal              Goal            `json:"goal,omitempty"`
	ExperienceLevel   ExperienceLevel `json:"experienceLevel,omitempty"`
	MenstrualTracking bool            `json:"menstrualTracking,omitempty"`
	LastPeriodDate    time.Time       `json:"lastPeriodDate,omitzero"`
	CycleDuration     int             `json:"cycleDuration,omitempty"`
}

// Defaults applied by Normalized for absent fields. Calculators and plan
// generators always see a fully populated profile.
const (
	DefaultAge           = 30
	DefaultCycleDuration = 28
)

// Normalized returns a copy with defaults filled in for absent fields.
// Weight and height stay absent, downstream code substitutes its own
// fallbacks for those.
func (p Profile) Normalized() Profile {
	if p.Age == 0 {
		p.Age = DefaultAge
	}
	if p.Sex == "" {
		p.Sex = SexMale
	}
	if p.Goal == "" {
		p.Goal = GoalImproveFitness
	}
	if p.ExperienceLevel == "" {
		p.ExperienceLevel = ExperienceBeginner
	}
	if p.MenstrualTracking && p.CycleDuration == 0 {
		p.CycleDuration = DefaultCycleDuration
	}
	return p
}

// Validate rejects profiles that would break downstream calculations.
// Absent fields are fine, present fields must make sense.
func (p Profile) Validate() error {
	var errs []error
	if p.Age < 0 {
		errs = append(errs, errors.New("age must not be negative"))
	}
	if p.WeightKg < 0 {
		errs = append(errs, errors.New("weight must not be negative"))
	}
	if p.HeightCm < 0 {
		errs = append(errs, errors.New("height must not be negative"))
	}
	if p.Sex != "" {
		if _, err := ParseSex(string(p.Sex)); err != nil {
			errs = append(errs, err)
		}
	}
	if p.Goal != "" {
		if _, err := ParseGoal(string(p.Goal)); err != nil {
			errs = append(errs, err)
		}
	}
	if p.ExperienceLevel != "" {
		if _, err := ParseExperienceLevel(string(p.ExperienceLevel)); err != nil {
			errs = append(errs, err)
		}
	}
	if p.CycleDuration < 0 {
		errs = append(errs, errors.New("cycle duration must not be negative"))
	}
	return errors.Join(errs...)
}
