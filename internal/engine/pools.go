package engine

import "alcyxob/oly-planner/internal/domain"

// Exercise is a candidate pool entry: a named movement tied to the 1RM it is
// loaded from. Accessory entries carry a recommended percentage and a
// human-readable loading hint instead of a prescription percentage.
type Exercise struct {
	Name           string
	LiftKey        domain.LiftKey
	RecommendedPct float64
	Description    string
}

// Family identifies an exercise pool.
type Family string

const (
	FamilySnatch     Family = "snatch"
	FamilyCleanJerk  Family = "cj"
	FamilySnatchPull Family = "pull_snatch"
	FamilyCleanPull  Family = "pull_clean"
	FamilyBackSquat  Family = "bs"
	FamilyFrontSquat Family = "fs"
	FamilyPress      Family = "press"
	FamilyAccessory  Family = "accessory"
)

// exercisePools maps each movement family to its candidate variations.
// Ordering matters: the first entry is the most competition-specific and is
// what the specificity roll biases toward.
var exercisePools = map[Family][]Exercise{
	FamilySnatch: {
		{Name: "Snatch", LiftKey: domain.LiftSnatch},
		{Name: "Power Snatch", LiftKey: domain.LiftSnatch},
		{Name: "Hang Snatch (knee)", LiftKey: domain.LiftSnatch},
		{Name: "Hang Power Snatch", LiftKey: domain.LiftSnatch},
		{Name: "Block Snatch (knee)", LiftKey: domain.LiftSnatch},
		{Name: "Pause Snatch (2s)", LiftKey: domain.LiftSnatch},
		{Name: "Snatch from Blocks (mid-thigh)", LiftKey: domain.LiftSnatch},
		{Name: "Muscle Snatch", LiftKey: domain.LiftSnatch},
		{Name: "Snatch High Pull + Hang Snatch + OHS", LiftKey: domain.LiftSnatch},
		{Name: "Snatch (pause at knee) + Snatch", LiftKey: domain.LiftSnatch},
		{Name: "Hang Snatch (above knee) + Snatch", LiftKey: domain.LiftSnatch},
		{Name: "Snatch + OHS (pause)", LiftKey: domain.LiftSnatch},
		{Name: "Muscle Snatch + OHS", LiftKey: domain.LiftSnatch},
		{Name: "Tall Snatch + Snatch", LiftKey: domain.LiftSnatch},
		{Name: "Low Hang Snatch + Hang Snatch + Snatch", LiftKey: domain.LiftSnatch},
		{Name: "Hip Snatch + Hang Snatch + Snatch", LiftKey: domain.LiftSnatch},
		{Name: "Snatch Balance + OHS", LiftKey: domain.LiftSnatch},
		{Name: "Snatch Pull + Snatch", LiftKey: domain.LiftSnatch},
		{Name: "Snatch Pull + Hang Snatch + Snatch", LiftKey: domain.LiftSnatch},
		{Name: "Snatch High Pull + Snatch", LiftKey: domain.LiftSnatch},
		{Name: "Segment Snatch Pull + Snatch", LiftKey: domain.LiftSnatch},
		{Name: "Halting Snatch Deadlift + Snatch Pull + Snatch", LiftKey: domain.LiftSnatch},
		{Name: "Snatch + Snatch (1+1)", LiftKey: domain.LiftSnatch},
		{Name: "Power Snatch + Snatch", LiftKey: domain.LiftSnatch},
		{Name: "Block Snatch + Snatch", LiftKey: domain.LiftSnatch},
	},
	FamilyCleanJerk: {
		{Name: "Clean & Jerk", LiftKey: domain.LiftCleanJerk},
		{Name: "Power Clean + Jerk", LiftKey: domain.LiftCleanJerk},
		{Name: "Hang Clean (knee) + Jerk", LiftKey: domain.LiftCleanJerk},
		{Name: "Clean + Push Jerk", LiftKey: domain.LiftCleanJerk},
		{Name: "Clean + Power Jerk", LiftKey: domain.LiftCleanJerk},
		{Name: "Block Clean (knee) + Jerk", LiftKey: domain.LiftCleanJerk},
		{Name: "Power Jerk from Rack", LiftKey: domain.LiftCleanJerk},
		{Name: "Hang Power Clean + Jerk", LiftKey: domain.LiftCleanJerk},
		{Name: "Clean Pull + Hang Clean + Front Squat", LiftKey: domain.LiftCleanJerk},
		{Name: "Clean (pause at knee) + Clean", LiftKey: domain.LiftCleanJerk},
		{Name: "Hang Clean (above knee) + Clean", LiftKey: domain.LiftCleanJerk},
		{Name: "Tall Clean + Clean", LiftKey: domain.LiftCleanJerk},
		{Name: "Low Hang Clean + Hang Clean + Clean", LiftKey: domain.LiftCleanJerk},
		{Name: "Hip Clean + Hang Clean + Clean", LiftKey: domain.LiftCleanJerk},
		{Name: "Clean + Front Squat", LiftKey: domain.LiftCleanJerk},
		{Name: "Clean + Front Squat + Clean", LiftKey: domain.LiftCleanJerk},
		{Name: "Clean + Front Squat (2 reps)", LiftKey: domain.LiftCleanJerk},
		{Name: "Clean + Front Squat + Jerk", LiftKey: domain.LiftCleanJerk},
		{Name: "Clean Pull + Clean + Front Squat", LiftKey: domain.LiftCleanJerk},
		{Name: "Jerk Dip Squat (pause) + Jerk", LiftKey: domain.LiftCleanJerk},
		{Name: "Power Jerk + Split Jerk", LiftKey: domain.LiftCleanJerk},
		{Name: "Pause Jerk + Jerk", LiftKey: domain.LiftCleanJerk},
		{Name: "Split Jerk + Jerk Balance", LiftKey: domain.LiftCleanJerk},
		{Name: "Jerk from Blocks + Jerk", LiftKey: domain.LiftCleanJerk},
		{Name: "Clean + Jerk + Jerk", LiftKey: domain.LiftCleanJerk},
		{Name: "Clean + Jerk (1+1)", LiftKey: domain.LiftCleanJerk},
		{Name: "Power Clean + Clean + Jerk", LiftKey: domain.LiftCleanJerk},
		{Name: "Block Clean + Clean + Jerk", LiftKey: domain.LiftCleanJerk},
		{Name: "Tempo Clean (3s) + Clean", LiftKey: domain.LiftCleanJerk},
	},
	FamilySnatchPull: {
		{Name: "Snatch Pull", LiftKey: domain.LiftSnatch},
		{Name: "Snatch High Pull", LiftKey: domain.LiftSnatch},
		{Name: "Deficit Snatch Pull", LiftKey: domain.LiftSnatch},
		{Name: "Halting Snatch Pull", LiftKey: domain.LiftSnatch},
	},
	FamilyCleanPull: {
		{Name: "Clean Pull", LiftKey: domain.LiftCleanJerk},
		{Name: "Clean High Pull", LiftKey: domain.LiftCleanJerk},
		{Name: "Deficit Clean Pull", LiftKey: domain.LiftCleanJerk},
		{Name: "Halting Clean Pull", LiftKey: domain.LiftCleanJerk},
	},
	FamilyBackSquat: {
		{Name: "Back Squat", LiftKey: domain.LiftBackSquat},
		{Name: "Pause Back Squat", LiftKey: domain.LiftBackSquat},
		{Name: "Tempo Back Squat", LiftKey: domain.LiftBackSquat},
	},
	FamilyFrontSquat: {
		{Name: "Front Squat", LiftKey: domain.LiftFrontSquat},
		{Name: "Pause Front Squat", LiftKey: domain.LiftFrontSquat},
		{Name: "Tempo Front Squat", LiftKey: domain.LiftFrontSquat},
	},
	FamilyPress: {
		{Name: "Push Press", LiftKey: domain.LiftPushPress},
		{Name: "Strict Press", LiftKey: domain.LiftStrictPress},
		{Name: "Behind-the-Neck Push Press", LiftKey: domain.LiftPushPress},
		{Name: "Jerk Dip + Drive", LiftKey: domain.LiftCleanJerk},
	},
	FamilyAccessory: {
		{Name: "RDL", LiftKey: domain.LiftBackSquat, RecommendedPct: 0.60, Description: "~60% of Back Squat"},
		{Name: "Good Morning", LiftKey: domain.LiftBackSquat, RecommendedPct: 0.50, Description: "~50% of Back Squat"},
		{Name: "Bulgarian Split Squat", LiftKey: domain.LiftBackSquat, RecommendedPct: 0.55, Description: "~55% of Back Squat"},
		{Name: "Row", LiftKey: domain.LiftBackSquat, RecommendedPct: 0.30, Description: "~30% of Back Squat"},
		{Name: "Pull-up", Description: "Bodyweight or add load"},
		{Name: "Plank", Description: "Bodyweight hold"},
		{Name: "Back Extension", LiftKey: domain.LiftBackSquat, RecommendedPct: 0.40, Description: "~40% of Back Squat"},
	},
}

// Pool returns the candidate list for a family.
func Pool(family Family) []Exercise {
	return exercisePools[family]
}

// emergencyExercises provide one known-safe movement per family when injury
// filtering empties the pool.
var emergencyExercises = map[Family][]Exercise{
	FamilySnatch:     {{Name: "Power Snatch", LiftKey: domain.LiftSnatch}},
	FamilyCleanJerk:  {{Name: "Power Clean + Push Jerk", LiftKey: domain.LiftCleanJerk}},
	FamilyBackSquat:  {{Name: "Tempo Front Squat", LiftKey: domain.LiftFrontSquat}},
	FamilyFrontSquat: {{Name: "Tempo Front Squat", LiftKey: domain.LiftFrontSquat}},
}

// HypertrophyPool identifies a supplemental bodybuilding pool.
type HypertrophyPool string

const (
	PoolUpperPush      HypertrophyPool = "upperPush"
	PoolUpperPull      HypertrophyPool = "upperPull"
	PoolShoulders      HypertrophyPool = "shoulders"
	PoolArms           HypertrophyPool = "arms"
	PoolLowerPosterior HypertrophyPool = "lowerPosterior"
	PoolLowerQuad      HypertrophyPool = "lowerQuad"
)

// hypertrophyPools list supplemental exercises with reference-lift loading
// hints ("~40% of BS" style) rather than prescription percentages.
var hypertrophyPools = map[HypertrophyPool][]Exercise{
	PoolUpperPush: {
		{Name: "Dumbbell Bench Press", LiftKey: domain.LiftBackSquat, RecommendedPct: 0.22, Description: "~22% of BS per hand"},
		{Name: "Incline Dumbbell Press", LiftKey: domain.LiftBackSquat, RecommendedPct: 0.20, Description: "~20% of BS per hand"},
		{Name: "Dips", Description: "Bodyweight or add load"},
		{Name: "Overhead Dumbbell Press", LiftKey: domain.LiftBackSquat, RecommendedPct: 0.15, Description: "~15% of BS per hand"},
		{Name: "Landmine Press", LiftKey: domain.LiftBackSquat, RecommendedPct: 0.30, Description: "~30% of BS"},
	},
	PoolUpperPull: {
		{Name: "Barbell Row", LiftKey: domain.LiftBackSquat, RecommendedPct: 0.40, Description: "~40% of BS"},
		{Name: "Pull-ups", Description: "Bodyweight or add load"},
		{Name: "Lat Pulldown", LiftKey: domain.LiftBackSquat, RecommendedPct: 0.35, Description: "~35% of BS"},
		{Name: "Cable Row", LiftKey: domain.LiftBackSquat, RecommendedPct: 0.35, Description: "~35% of BS"},
		{Name: "T-Bar Row", LiftKey: domain.LiftBackSquat, RecommendedPct: 0.40, Description: "~40% of BS"},
		{Name: "Single-Arm Dumbbell Row", LiftKey: domain.LiftBackSquat, RecommendedPct: 0.18, Description: "~18% of BS per hand"},
	},
	PoolShoulders: {
		{Name: "Lateral Raise", LiftKey: domain.LiftBackSquat, RecommendedPct: 0.06, Description: "~6% of BS per hand"},
		{Name: "Face Pull", LiftKey: domain.LiftBackSquat, RecommendedPct: 0.15, Description: "~15% of BS"},
		{Name: "Rear Delt Fly", LiftKey: domain.LiftBackSquat, RecommendedPct: 0.05, Description: "~5% of BS per hand"},
		{Name: "Front Raise", LiftKey: domain.LiftBackSquat, RecommendedPct: 0.06, Description: "~6% of BS per hand"},
		{Name: "Cable Lateral Raise", LiftKey: domain.LiftBackSquat, RecommendedPct: 0.06, Description: "~6% of BS per hand"},
	},
	PoolArms: {
		{Name: "Barbell Curl", LiftKey: domain.LiftBackSquat, RecommendedPct: 0.25, Description: "~25% of BS"},
		{Name: "Hammer Curl", LiftKey: domain.LiftBackSquat, RecommendedPct: 0.12, Description: "~12% of BS per hand"},
		{Name: "Tricep Extension", LiftKey: domain.LiftBackSquat, RecommendedPct: 0.20, Description: "~20% of BS"},
		{Name: "Tricep Pushdown", LiftKey: domain.LiftBackSquat, RecommendedPct: 0.25, Description: "~25% of BS"},
		{Name: "Dumbbell Curl", LiftKey: domain.LiftBackSquat, RecommendedPct: 0.10, Description: "~10% of BS per hand"},
		{Name: "Close-Grip Push-up", Description: "Bodyweight or add load"},
	},
	PoolLowerPosterior: {
		{Name: "Romanian Deadlift", LiftKey: domain.LiftBackSquat, RecommendedPct: 0.60, Description: "~60% of BS"},
		{Name: "Leg Curl", LiftKey: domain.LiftBackSquat, RecommendedPct: 0.25, Description: "~25% of BS"},
		{Name: "Good Morning", LiftKey: domain.LiftBackSquat, RecommendedPct: 0.50, Description: "~50% of BS"},
		{Name: "Glute Bridge", LiftKey: domain.LiftBackSquat, RecommendedPct: 0.60, Description: "~60% of BS"},
		{Name: "Nordic Curl", Description: "Bodyweight"},
	},
	PoolLowerQuad: {
		{Name: "Bulgarian Split Squat", LiftKey: domain.LiftBackSquat, RecommendedPct: 0.55, Description: "~55% of BS"},
		{Name: "Leg Press", LiftKey: domain.LiftBackSquat, RecommendedPct: 1.20, Description: "~120% of BS"},
		{Name: "Walking Lunge", LiftKey: domain.LiftBackSquat, RecommendedPct: 0.35, Description: "~35% of BS"},
		{Name: "Leg Extension", LiftKey: domain.LiftBackSquat, RecommendedPct: 0.30, Description: "~30% of BS"},
		{Name: "Step-up", LiftKey: domain.LiftBackSquat, RecommendedPct: 0.40, Description: "~40% of BS"},
	},
}

// accessoryCategories groups accessory exercise names by muscle-group
// movement pattern, used to build swap option lists.
var accessoryCategories = map[string][]string{
	"back_vertical": {
		"Pull-up", "Pull-ups", "Weighted Pull-up", "Weighted Pull-ups",
		"Chin-up", "Chin-ups",
		"Lat Pulldown", "Wide-Grip Lat Pulldown", "Close-Grip Lat Pulldown",
	},
	"back_horizontal": {
		"Barbell Row", "Pendlay Row", "T-Bar Row",
		"Dumbbell Row", "Single-Arm Row", "Single-Arm Dumbbell Row",
		"Chest-Supported Row", "Seated Cable Row", "Cable Row", "Machine Row",
		"TRX Row", "Row", "Back Extension",
	},
	"shoulders_press": {
		"Overhead Press", "Seated Dumbbell Press", "Standing Dumbbell Press",
		"Overhead Dumbbell Press", "Arnold Press", "Machine Shoulder Press",
		"Landmine Press",
	},
	"shoulders_lateral": {
		"Dumbbell Lateral Raise", "Cable Lateral Raise", "Machine Lateral Raise",
		"Leaning Cable Lateral Raise", "Lateral Raise", "Front Raise",
	},
	"shoulders_rear": {
		"Face Pull", "Reverse Pec Deck", "Bent-Over Dumbbell Fly",
		"Cable Rear Delt Fly", "Rear Delt Row", "Rear Delt Fly",
	},
	"chest_press": {
		"Barbell Bench Press", "Incline Barbell Bench Press", "Dumbbell Bench Press",
		"Incline Dumbbell Press", "Weighted Dips", "Bodyweight Dips",
		"Machine Chest Press", "Dips", "Close-Grip Push-up",
	},
	"chest_isolation": {
		"Cable Flyes", "Dumbbell Flyes", "Pec Deck Machine", "Incline Cable Flyes",
	},
	"legs_quad": {
		"Leg Extension", "Single-Leg Extension", "Leg Press",
		"Hack Squat Machine", "Bulgarian Split Squat",
	},
	"legs_hamstring": {
		"Leg Curl", "Seated Leg Curl", "Lying Leg Curl", "Nordic Curl",
		"Romanian Deadlift", "RDL", "Dumbbell Romanian Deadlift", "Good Morning",
	},
	"legs_glutes": {
		"Hip Thrust", "Barbell Glute Bridge", "Glute Bridge", "Cable Pull-Through",
	},
	"legs_calves": {
		"Standing Calf Raise", "Seated Calf Raise", "Leg Press Calf Raise", "Calf Raises",
	},
	"arms_biceps": {
		"Barbell Curl", "EZ-Bar Curl", "Dumbbell Curl", "Hammer Curl",
		"Incline Dumbbell Curl", "Cable Curl", "Preacher Curl",
	},
	"arms_triceps": {
		"Close-Grip Bench Press", "Dumbbell Overhead Extension",
		"Cable Tricep Pushdown", "Rope Tricep Pushdown", "Tricep Pushdown",
		"Overhead Cable Extension", "Skull Crusher", "Rope Tricep Extension", "Tricep Extension",
	},
	"core": {
		"Plank", "Ab Wheel Rollout", "Cable Crunch", "Pallof Press",
		"Side Plank", "Core + Mobility", "Core Circuit",
	},
}

// exerciseCategory is the reverse index of accessoryCategories.
var exerciseCategory = func() map[string]string {
	idx := make(map[string]string)
	for cat, names := range accessoryCategories {
		for _, n := range names {
			idx[n] = cat
		}
	}
	return idx
}()

// AccessoryCategory returns the muscle-group category of an accessory
// exercise name, or "" when unrecognized.
func AccessoryCategory(name string) string {
	return exerciseCategory[name]
}

// AccessoryPoolFor returns the swap candidates for a categorized accessory.
func AccessoryPoolFor(category string) []Exercise {
	names := accessoryCategories[category]
	pool := make([]Exercise, 0, len(names))
	for _, n := range names {
		pool = append(pool, Exercise{Name: n})
	}
	return pool
}
