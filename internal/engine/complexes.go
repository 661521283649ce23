package engine

import (
	"strings"

	"alcyxob/oly-planner/internal/domain"
)

// Movement is one link of a complex: a movement type and its rep count.
type Movement struct {
	Type string
	Reps int
}

// ComplexDef describes a named complex structurally. The primary lift gates
// the whole sequence's load.
type ComplexDef struct {
	PrimaryLift domain.LiftKey
	Pattern     []Movement
}

// IsComplex reports whether an exercise name encodes a movement sequence
// ('+'-joined movements under one barbell load).
func IsComplex(name string) bool {
	return strings.Contains(name, "+")
}

var complexDefinitions = map[string]ComplexDef{
	// Snatch: pull + lift patterns (preparatory, pull emphasis)
	"Snatch Pull + Snatch": {domain.LiftSnatch, []Movement{{"pull", 1}, {"snatch", 1}}},
	"Snatch Pull + Hang Snatch + Snatch": {domain.LiftSnatch, []Movement{
		{"pull", 1}, {"hang_snatch", 1}, {"snatch", 1}}},
	"Snatch High Pull + Snatch":   {domain.LiftSnatch, []Movement{{"high_pull", 1}, {"snatch", 1}}},
	"Segment Snatch Pull + Snatch": {domain.LiftSnatch, []Movement{{"segment_pull", 1}, {"snatch", 1}}},
	"Halting Snatch Deadlift + Snatch Pull + Snatch": {domain.LiftSnatch, []Movement{
		{"halting_deadlift", 1}, {"pull", 1}, {"snatch", 1}}},

	// Snatch: lift + squat patterns (receiving/strength emphasis)
	"Snatch + OHS (pause)":  {domain.LiftSnatch, []Movement{{"snatch", 1}, {"overhead_squat", 1}}},
	"Snatch + Snatch (1+1)": {domain.LiftSnatch, []Movement{{"snatch", 1}, {"snatch", 1}}},
	"Muscle Snatch + OHS":   {domain.LiftSnatch, []Movement{{"muscle_snatch", 1}, {"overhead_squat", 1}}},
	"Snatch Balance + OHS":  {domain.LiftSnatch, []Movement{{"snatch_balance", 1}, {"overhead_squat", 1}}},

	// Snatch: position work (technique emphasis)
	"Snatch High Pull + Hang Snatch + OHS": {domain.LiftSnatch, []Movement{
		{"high_pull", 1}, {"hang_snatch", 1}, {"overhead_squat", 1}}},
	"Snatch (pause at knee) + Snatch":   {domain.LiftSnatch, []Movement{{"pause_snatch", 1}, {"snatch", 1}}},
	"Hang Snatch (above knee) + Snatch": {domain.LiftSnatch, []Movement{{"hang_snatch", 1}, {"snatch", 1}}},
	"Tall Snatch + Snatch":              {domain.LiftSnatch, []Movement{{"tall_snatch", 1}, {"snatch", 1}}},
	"Low Hang Snatch + Hang Snatch + Snatch": {domain.LiftSnatch, []Movement{
		{"low_hang_snatch", 1}, {"hang_snatch", 1}, {"snatch", 1}}},
	"Hip Snatch + Hang Snatch + Snatch": {domain.LiftSnatch, []Movement{
		{"hip_snatch", 1}, {"hang_snatch", 1}, {"snatch", 1}}},
	"Power Snatch + Snatch": {domain.LiftSnatch, []Movement{{"power_snatch", 1}, {"snatch", 1}}},
	"Block Snatch + Snatch": {domain.LiftSnatch, []Movement{{"block_snatch", 1}, {"snatch", 1}}},

	// Clean & jerk: pull + clean patterns
	"Clean Pull + Clean": {domain.LiftCleanJerk, []Movement{{"pull", 1}, {"clean", 1}}},
	"Clean Pull + Hang Clean + Front Squat": {domain.LiftCleanJerk, []Movement{
		{"pull", 1}, {"hang_clean", 1}, {"front_squat", 1}}},
	"Clean Pull + Clean + Front Squat": {domain.LiftCleanJerk, []Movement{
		{"pull", 1}, {"clean", 1}, {"front_squat", 1}}},

	// Clean & jerk: clean + squat patterns
	"Clean + Front Squat": {domain.LiftCleanJerk, []Movement{{"clean", 1}, {"front_squat", 1}}},
	"Clean + Front Squat + Clean": {domain.LiftCleanJerk, []Movement{
		{"clean", 1}, {"front_squat", 1}, {"clean", 1}}},
	"Clean + Front Squat (2 reps)": {domain.LiftCleanJerk, []Movement{{"clean", 1}, {"front_squat", 2}}},

	// Clean & jerk: clean technique patterns
	"Clean (pause at knee) + Clean":   {domain.LiftCleanJerk, []Movement{{"pause_clean", 1}, {"clean", 1}}},
	"Hang Clean (above knee) + Clean": {domain.LiftCleanJerk, []Movement{{"hang_clean", 1}, {"clean", 1}}},
	"Tall Clean + Clean":              {domain.LiftCleanJerk, []Movement{{"tall_clean", 1}, {"clean", 1}}},
	"Low Hang Clean + Hang Clean + Clean": {domain.LiftCleanJerk, []Movement{
		{"low_hang_clean", 1}, {"hang_clean", 1}, {"clean", 1}}},
	"Hip Clean + Hang Clean + Clean": {domain.LiftCleanJerk, []Movement{
		{"hip_clean", 1}, {"hang_clean", 1}, {"clean", 1}}},

	// Clean & jerk: jerk patterns (overhead stability emphasis)
	"Clean + Jerk + Jerk":           {domain.LiftCleanJerk, []Movement{{"clean", 1}, {"jerk", 2}}},
	"Jerk Dip Squat (pause) + Jerk": {domain.LiftCleanJerk, []Movement{{"jerk_dip", 1}, {"jerk", 1}}},
	"Power Jerk + Split Jerk":       {domain.LiftCleanJerk, []Movement{{"power_jerk", 1}, {"split_jerk", 1}}},
	"Pause Jerk + Jerk":             {domain.LiftCleanJerk, []Movement{{"pause_jerk", 1}, {"jerk", 1}}},
	"Split Jerk + Jerk Balance":     {domain.LiftCleanJerk, []Movement{{"split_jerk", 1}, {"jerk_balance", 1}}},
	"Jerk from Blocks + Jerk":       {domain.LiftCleanJerk, []Movement{{"block_jerk", 1}, {"jerk", 1}}},

	// Clean & jerk: full-lift patterns
	"Clean + Front Squat + Jerk": {domain.LiftCleanJerk, []Movement{
		{"clean", 1}, {"front_squat", 1}, {"jerk", 1}}},
	"Clean + Jerk (1+1)": {domain.LiftCleanJerk, []Movement{{"clean", 1}, {"jerk", 1}}},
	"Power Clean + Clean + Jerk": {domain.LiftCleanJerk, []Movement{
		{"power_clean", 1}, {"clean", 1}, {"jerk", 1}}},
	"Block Clean + Clean + Jerk": {domain.LiftCleanJerk, []Movement{
		{"block_clean", 1}, {"clean", 1}, {"jerk", 1}}},
	"Tempo Clean (3s) + Clean": {domain.LiftCleanJerk, []Movement{{"tempo_clean", 1}, {"clean", 1}}},
}

// ComplexPattern returns the movement pattern of a catalogued complex, or nil
// for unknown or non-complex names.
func ComplexPattern(name string) []Movement {
	if def, ok := complexDefinitions[name]; ok {
		return def.Pattern
	}
	return nil
}

// ComplexTotalReps sums the rep counts across a pattern.
func ComplexTotalReps(pattern []Movement) int {
	total := 0
	for _, m := range pattern {
		total += m.Reps
	}
	return total
}

// CapComplexIntensity bounds a complex's prescribed intensity by its total
// rep count: <=2 reps cap 0.90, 3 reps 0.85, 4-5 reps 0.75, 6+ reps 0.70.
func CapComplexIntensity(pct float64, totalReps int) float64 {
	if totalReps <= 0 {
		return pct
	}
	var limit float64
	switch {
	case totalReps <= 2:
		limit = 0.90
	case totalReps == 3:
		limit = 0.85
	case totalReps <= 5:
		limit = 0.75
	default:
		limit = 0.70
	}
	if pct < limit {
		return pct
	}
	return limit
}

// complexDowngrades maps 3-movement complexes to shorter versions prescribed
// while the athlete is flagged fatigued.
var complexDowngrades = map[string]string{
	"Snatch Pull + Hang Snatch + Snatch":             "Snatch Pull + Snatch",
	"Snatch High Pull + Hang Snatch + OHS":           "Snatch High Pull + Snatch",
	"Low Hang Snatch + Hang Snatch + Snatch":         "Hang Snatch + Snatch",
	"Hip Snatch + Hang Snatch + Snatch":              "Hang Snatch + Snatch",
	"Halting Snatch Deadlift + Snatch Pull + Snatch": "Snatch Pull + Snatch",

	"Clean Pull + Hang Clean + Front Squat": "Clean Pull + Clean",
	"Clean Pull + Clean + Front Squat":      "Clean Pull + Clean",
	"Clean + Front Squat + Clean":           "Clean + Front Squat",
	"Low Hang Clean + Hang Clean + Clean":   "Hang Clean + Clean",
	"Hip Clean + Hang Clean + Clean":        "Hang Clean + Clean",
	"Power Clean + Clean + Jerk":            "Clean + Jerk",
	"Block Clean + Clean + Jerk":            "Clean + Jerk",
	"Clean + Front Squat + Jerk":            "Clean + Jerk",
	"Clean + Jerk + Jerk":                   "Clean + Jerk",
}

// DowngradeComplexIfFatigued substitutes a lighter named complex when the
// athlete is fatigued. Names without a mapping pass through unchanged.
func DowngradeComplexIfFatigued(name string, fatigued bool) string {
	if !fatigued || !IsComplex(name) {
		return name
	}
	if shorter, ok := complexDowngrades[name]; ok {
		return shorter
	}
	return name
}

// ApplyComplexFatigueAdjustment cuts a complex's intensity a further 5% while
// fatigued.
func ApplyComplexFatigueAdjustment(pct float64, name string, fatigued bool) float64 {
	if !IsComplex(name) || pct == 0 || !fatigued {
		return pct
	}
	return pct * 0.95
}

// complexRole maps phase to the selection role used by the diagnostic tables.
func complexRole(phase domain.Phase) string {
	switch phase {
	case domain.PhaseAccumulation:
		return "preparatory"
	case domain.PhaseIntensification:
		return "specific"
	default:
		return "deload"
	}
}

// ChooseComplexForDay selects a complex targeting the athlete's limiter for a
// snatch or clean&jerk day. Empty return means "no diagnostic preference":
// the caller falls back to generic variation selection. Deload always defers.
func ChooseComplexForDay(kind domain.DayKind, limiter domain.Limiter, phase domain.Phase) string {
	if limiter == "" || limiter == domain.LimiterBalanced {
		return ""
	}
	role := complexRole(phase)
	if role == "deload" {
		return ""
	}
	prep := role == "preparatory"

	if kind == domain.DaySnatch {
		switch limiter {
		case domain.LimiterPull:
			if prep {
				return "Snatch Pull + Hang Snatch + Snatch"
			}
			return "Snatch Pull + Snatch"
		case domain.LimiterReceiving, domain.LimiterSquat:
			if prep {
				return "Snatch + OHS (pause)"
			}
			return "Snatch + Snatch (1+1)"
		case domain.LimiterOverhead:
			if prep {
				return "Muscle Snatch + OHS"
			}
			return "Snatch Balance + OHS"
		case domain.LimiterPositions, domain.LimiterTiming:
			if prep {
				return "Low Hang Snatch + Hang Snatch + Snatch"
			}
			return "Hang Snatch (above knee) + Snatch"
		}
	}

	if kind == domain.DayCleanJerk {
		switch limiter {
		case domain.LimiterPull:
			if prep {
				return "Clean Pull + Hang Clean + Front Squat"
			}
			return "Clean Pull + Clean"
		case domain.LimiterReceiving, domain.LimiterSquat:
			if prep {
				return "Clean + Front Squat (2 reps)"
			}
			return "Clean + Front Squat + Clean"
		case domain.LimiterOverhead, domain.LimiterJerk:
			if prep {
				return "Jerk Dip Squat (pause) + Jerk"
			}
			return "Clean + Jerk + Jerk"
		case domain.LimiterPositions, domain.LimiterTiming:
			if prep {
				return "Low Hang Clean + Hang Clean + Clean"
			}
			return "Hang Clean (above knee) + Clean"
		case domain.LimiterConsistency:
			if prep {
				return "Clean + Front Squat + Jerk"
			}
			return "Power Clean + Clean + Jerk"
		}
	}

	return ""
}
