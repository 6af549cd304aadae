package plan

import "github.com/mkarvo/fitsoul/internal/profile"

// Focus tags a training day and selects its exercise list from the library.
// Tags without a dedicated library entry fall back to the cardio list.
type Focus string

const (
	FocusCardio          Focus = "cardio"
	FocusUpperBody       Focus = "upper body"
	FocusLowerBody       Focus = "lower body"
	FocusFullBody        Focus = "full body"
	FocusHIIT            Focus = "hiit"
	FocusChestTriceps    Focus = "chest/triceps"
	FocusFlexibility     Focus = "flexibility"
	FocusRest            Focus = "rest"
	FocusLightResistance Focus = "light resistance"
	FocusStrength        Focus = "strength"
	FocusBackBiceps      Focus = "back/biceps"
	FocusLegs            Focus = "legs"
	FocusShoulders       Focus = "shoulders"
	FocusArms            Focus = "arms"
	FocusFullBodyCircuit Focus = "full body circuit"
	FocusFunctional      Focus = "functional"

	// Compound tags used by the advanced templates. These have no dedicated
	// library entry yet, so they resolve to the cardio fallback.
	FocusCardioCore          Focus = "cardio/core"
	FocusHIITStrength        Focus = "hiit/strength"
	FocusCardioStrength      Focus = "cardio/strength"
	FocusCardioFlexibility   Focus = "cardio/flexibility"
	FocusActiveRecovery      Focus = "active recovery"
	FocusLegsCore            Focus = "legs/core"
	FocusShouldersTraps      Focus = "shoulders/traps"
	FocusArmsAbs             Focus = "arms/abs"
	FocusStrengthPower       Focus = "strength/power"
	FocusHIITCardio          Focus = "hiit/cardio"
	FocusStrengthHypertrophy Focus = "strength/hypertrophy"
	FocusMetabolicCond       Focus = "metabolic conditioning"
	FocusCardioEndurance     Focus = "cardio/endurance"
	FocusUpperBodyCore       Focus = "upper body/core"
	FocusLowerBodyCore       Focus = "lower body/core"
	FocusCardioFunctional    Focus = "cardio/functional"
	FocusTargetAreasCardio   Focus = "target areas/cardio"
	FocusFlexibilityRecovery Focus = "flexibility/recovery"
)

// weekTemplate assigns a focus to each weekday in canonical order.
type weekTemplate [7]Focus

type templateKey struct {
	level profile.ExperienceLevel
	goal  profile.Goal
}

// weekTemplates covers every experience level and goal combination.
// Profiles outside the table use the beginner improve_fitness week.
var weekTemplates = map[templateKey]weekTemplate{
	{profile.ExperienceBeginner, profile.GoalLoseWeight}: {
		FocusCardio, FocusRest, FocusFullBody, FocusRest, FocusCardio, FocusLightResistance, FocusRest,
	},
	{profile.ExperienceBeginner, profile.GoalBuildMuscle}: {
		FocusUpperBody, FocusRest, FocusLowerBody, FocusRest, FocusFullBody, FocusRest, FocusRest,
	},
	{profile.ExperienceBeginner, profile.GoalImproveFitness}: {
		FocusCardio, FocusStrength, FocusRest, FocusCardio, FocusFullBody, FocusFlexibility, FocusRest,
	},
	{profile.ExperienceBeginner, profile.GoalToneBody}: {
		FocusLightResistance, FocusCardio, FocusRest, FocusFullBody, FocusCardio, FocusRest, FocusFlexibility,
	},
	{profile.ExperienceIntermediate, profile.GoalLoseWeight}: {
		FocusHIIT, FocusUpperBody, FocusCardio, FocusLowerBody, FocusHIIT, FocusFullBody, FocusRest,
	},
	{profile.ExperienceIntermediate, profile.GoalBuildMuscle}: {
		FocusChestTriceps, FocusBackBiceps, FocusRest, FocusLegs, FocusShoulders, FocusArms, FocusRest,
	},
	{profile.ExperienceIntermediate, profile.GoalImproveFitness}: {
		FocusStrength, FocusCardio, FocusFunctional, FocusHIIT, FocusStrength, FocusCardio, FocusRest,
	},
	{profile.ExperienceIntermediate, profile.GoalToneBody}: {
		FocusUpperBody, FocusCardio, FocusLowerBody, FocusRest, FocusFullBodyCircuit, FocusCardioCore, FocusRest,
	},
	{profile.ExperienceAdvanced, profile.GoalLoseWeight}: {
		FocusHIITStrength, FocusCardioCore, FocusFullBodyCircuit, FocusCardioStrength, FocusHIIT,
		FocusCardioFlexibility, FocusActiveRecovery,
	},
	{profile.ExperienceAdvanced, profile.GoalBuildMuscle}: {
		FocusChestTriceps, FocusBackBiceps, FocusRest, FocusLegsCore, FocusShouldersTraps, FocusArmsAbs, FocusRest,
	},
	{profile.ExperienceAdvanced, profile.GoalImproveFitness}: {
		FocusStrengthPower, FocusHIITCardio, FocusStrengthHypertrophy, FocusMetabolicCond, FocusStrengthPower,
		FocusCardioEndurance, FocusActiveRecovery,
	},
	{profile.ExperienceAdvanced, profile.GoalToneBody}: {
		FocusUpperBodyCore, FocusHIITCardio, FocusLowerBodyCore, FocusCardioFunctional, FocusFullBodyCircuit,
		FocusTargetAreasCardio, FocusFlexibilityRecovery,
	},
}

// templateFor resolves the weekly template, falling back to the beginner
// improve_fitness week for combinations outside the table.
func templateFor(level profile.ExperienceLevel, goal profile.Goal) weekTemplate {
	if t, ok := weekTemplates[templateKey{level, goal}]; ok {
		return t
	}
	return weekTemplates[templateKey{profile.ExperienceBeginner, profile.GoalImproveFitness}]
}
