package plan

// exerciseTemplate is a library entry. Generation copies these into fresh
// Exercise values, the library itself is never mutated.
type exerciseTemplate struct {
	name        string
	sets        int
	reps        int
	description string
}

var exerciseLibrary = map[Focus][]exerciseTemplate{
	FocusCardio: {
		{name: "Brisk Walking", sets: 1, reps: 30, description: "30 minutes of brisk walking"},
		{name: "Jogging", sets: 1, reps: 20, description: "20 minutes of light jogging"},
		{name: "Cycling", sets: 1, reps: 25, description: "25 minutes on stationary bike"},
		{name: "Jump Rope", sets: 3, reps: 50, description: "50 skips per set with 1 min rest"},
	},
	FocusUpperBody: {
		{name: "Push-ups", sets: 3, reps: 10, description: "Keep body straight, lower to ground"},
		{name: "Dumbbell Rows", sets: 3, reps: 12, description: "Pull weight to hip, keep back straight"},
		{name: "Shoulder Press", sets: 3, reps: 10, description: "Press weights overhead"},
		{name: "Bicep Curls", sets: 3, reps: 12, description: "Curl weights towards shoulders"},
	},
	FocusLowerBody: {
		{name: "Bodyweight Squats", sets: 3, reps: 15, description: "Lower until thighs parallel to ground"},
		{name: "Lunges", sets: 3, reps: 10, description: "10 reps each leg, step forward and lower"},
		{name: "Glute Bridges", sets: 3, reps: 15, description: "Lift hips toward ceiling"},
		{name: "Calf Raises", sets: 3, reps: 20, description: "Rise onto toes and lower"},
	},
	FocusFullBody: {
		{name: "Burpees", sets: 3, reps: 10, description: "Complete movement with push-up"},
		{name: "Mountain Climbers", sets: 3, reps: 20, description: "20 per leg, alternate knees to chest"},
		{name: "Kettlebell Swings", sets: 3, reps: 15, description: "Swing weight to shoulder height"},
		{name: "Plank", sets: 3, reps: 1, description: "Hold for 30 seconds per set"},
	},
	FocusHIIT: {
		{name: "Sprint Intervals", sets: 5, reps: 1, description: "30 sec sprint, 1 min walk"},
		{name: "Burpee Intervals", sets: 5, reps: 10, description: "10 burpees, 30 sec rest"},
		{name: "Jumping Jack Intervals", sets: 5, reps: 30, description: "30 jacks, 30 sec rest"},
		{name: "High Knees", sets: 5, reps: 1, description: "30 sec high knees, 30 sec rest"},
	},
	FocusChestTriceps: {
		{name: "Bench Press", sets: 4, reps: 10, description: "Lower bar to chest and press up"},
		{name: "Incline Dumbbell Press", sets: 3, reps: 12, description: "Press weights on incline bench"},
		{name: "Tricep Dips", sets: 3, reps: 15, description: "Lower body using triceps"},
		{name: "Tricep Extensions", sets: 3, reps: 12, description: "Extend weights overhead"},
	},
	FocusFlexibility: {
		{name: "Hamstring Stretch", sets: 3, reps: 1, description: "Hold for 30 seconds per leg"},
		{name: "Hip Flexor Stretch", sets: 3, reps: 1, description: "Hold for 30 seconds per side"},
		{name: "Shoulder Stretch", sets: 3, reps: 1, description: "Hold for 30 seconds per arm"},
		{name: "Spinal Twist", sets: 3, reps: 1, description: "Hold for 30 seconds per side"},
	},
	FocusRest: {
		{name: "Active Recovery", sets: 1, reps: 1, description: "Light walking or stretching"},
		{name: "Rest Day", sets: 1, reps: 1, description: "Take a complete rest day"},
	},
	FocusLightResistance: {
		{name: "Resistance Band Pulls", sets: 3, reps: 15, description: "Pull band apart at shoulder height"},
		{name: "Wall Push-ups", sets: 3, reps: 12, description: "Push-ups against wall"},
		{name: "Seated Leg Raises", sets: 3, reps: 15, description: "Raise legs while seated"},
		{name: "Light Dumbbell Curls", sets: 3, reps: 12, description: "Use light weights for curls"},
	},
	FocusStrength: {
		{name: "Goblet Squats", sets: 4, reps: 10, description: "Hold weight at chest, perform squat"},
		{name: "Deadlifts", sets: 4, reps: 8, description: "Lift weight from floor with straight back"},
		{name: "Bench Press", sets: 4, reps: 8, description: "Press barbell from chest"},
		{name: "Pull-ups/Assisted Pull-ups", sets: 3, reps: 8, description: "Pull body up to bar"},
	},
	FocusBackBiceps: {
		{name: "Lat Pulldowns", sets: 4, reps: 10, description: "Pull bar down to chest"},
		{name: "Seated Rows", sets: 4, reps: 10, description: "Pull weight to stomach"},
		{name: "Bicep Curls", sets: 3, reps: 12, description: "Curl weights towards shoulders"},
		{name: "Hammer Curls", sets: 3, reps: 12, description: "Curl with palms facing inward"},
	},
	FocusLegs: {
		{name: "Barbell Squats", sets: 4, reps: 10, description: "Squat with barbell on shoulders"},
		{name: "Leg Press", sets: 4, reps: 12, description: "Press weight with legs"},
		{name: "Romanian Deadlifts", sets: 3, reps: 10, description: "Hinge at hips with weight"},
		{name: "Leg Extensions", sets: 3, reps: 15, description: "Extend legs at knee joint"},
	},
	FocusShoulders: {
		{name: "Overhead Press", sets: 4, reps: 10, description: "Press barbell overhead"},
		{name: "Lateral Raises", sets: 3, reps: 12, description: "Raise weights to sides"},
		{name: "Front Raises", sets: 3, reps: 12, description: "Raise weights to front"},
		{name: "Face Pulls", sets: 3, reps: 15, description: "Pull rope to face"},
	},
	FocusArms: {
		{name: "Tricep Pushdowns", sets: 4, reps: 12, description: "Push rope/bar down"},
		{name: "Bicep Curls", sets: 4, reps: 12, description: "Curl barbell/dumbbells"},
		{name: "Skull Crushers", sets: 3, reps: 12, description: "Lower weight to forehead"},
		{name: "Hammer Curls", sets: 3, reps: 12, description: "Curl with palms facing in"},
	},
	FocusFullBodyCircuit: {
		{name: "Circuit: Squats", sets: 3, reps: 15, description: "Part of circuit, 15 squats"},
		{name: "Circuit: Push-ups", sets: 3, reps: 10, description: "Part of circuit, 10 push-ups"},
		{name: "Circuit: Rows", sets: 3, reps: 12, description: "Part of circuit, 12 rows"},
		{name: "Circuit: Lunges", sets: 3, reps: 10, description: "Part of circuit, 10 lunges per leg"},
	},
	FocusFunctional: {
		{name: "Kettlebell Swings", sets: 3, reps: 15, description: "Swing weight with hip hinge"},
		{name: "Medicine Ball Slams", sets: 3, reps: 12, description: "Slam ball to ground"},
		{name: "TRX Rows", sets: 3, reps: 12, description: "Row body using suspension trainer"},
		{name: "Farmer Carries", sets: 3, reps: 1, description: "Carry heavy weights 30 meters"},
	},
}

// exercisesFor copies the library entries for focus into fresh Exercise
// values with completed unset. Unknown tags get the cardio list.
func exercisesFor(focus Focus) []Exercise {
	templates, ok := exerciseLibrary[focus]
	if !ok {
		templates = exerciseLibrary[FocusCardio]
	}
	exercises := make([]Exercise, 0, len(templates))
	for _, t := range templates {
		exercises = append(exercises, Exercise{
			Name:        t.name,
			Sets:        t.sets,
			Reps:        t.reps,
			Description: t.description,
			Completed:   false,
		})
	}
	return exercises
}
