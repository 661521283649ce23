package engine

import (
	"fmt"
	"log"
	"strings"

	"alcyxob/oly-planner/internal/domain"
)

// FilterPoolForInjuries removes exercises contraindicated by the athlete's
// reported injuries. If every entry gets filtered out, a conservative
// emergency substitute for the family is returned instead of an empty pool.
func FilterPoolForInjuries(pool []Exercise, family Family, injuries []string) []Exercise {
	if len(injuries) == 0 {
		return pool
	}
	flagged := make(map[string]bool, len(injuries))
	for _, inj := range injuries {
		flagged[strings.ToLower(inj)] = true
	}

	out := make([]Exercise, 0, len(pool))
	for _, ex := range pool {
		if injuryAllows(ex.Name, flagged) {
			out = append(out, ex)
		}
	}
	if len(out) == 0 {
		log.Printf("injury filter emptied the %s pool, using emergency substitutes", family)
		if fb, ok := emergencyExercises[family]; ok {
			return fb
		}
		return pool
	}
	return out
}

func injuryAllows(exerciseName string, flagged map[string]bool) bool {
	name := strings.ToLower(exerciseName)
	has := func(s string) bool { return strings.Contains(name, s) }

	if flagged["shoulder"] {
		// Overhead catches and presses under load.
		if has("snatch") && !has("pull") && !has("power") {
			return false
		}
		if (has("jerk") || has("strict press")) &&
			!has("power jerk") && !has("push jerk") && !has("push press") {
			return false
		}
		if has("overhead squat") || has("ohs") {
			return false
		}
		if has("behind-the-neck") || has("btn") {
			return false
		}
	}
	if flagged["wrist"] {
		// Front rack positions.
		if (has("front squat") || (has("clean") && !has("pull"))) && !has("power") {
			return false
		}
	}
	if flagged["elbow"] {
		if has("press") && !has("leg press") {
			return false
		}
		if has("jerk") {
			return false
		}
	}
	if flagged["knee"] {
		// Full-depth receiving positions.
		if (has("squat") || has("snatch") || has("clean")) &&
			!has("power") && !has("pause") && !has("tempo") {
			return false
		}
	}
	if flagged["back"] {
		if has("back squat") || has("deadlift") || has("good morning") {
			return false
		}
		if has("pull") && !has("high pull") {
			return false
		}
	}
	if flagged["hip"] {
		if has("squat") && !has("tempo") {
			return false
		}
	}
	if flagged["ankle"] {
		// Split stance.
		if has("jerk") && !has("power jerk") && !has("push jerk") {
			return false
		}
	}
	return true
}

func filterBlockVariations(pool []Exercise, family Family, includeBlocks bool) []Exercise {
	if includeBlocks {
		return pool
	}
	out := make([]Exercise, 0, len(pool))
	for _, ex := range pool {
		name := strings.ToLower(ex.Name)
		if strings.Contains(name, "block") || strings.Contains(name, "from blocks") {
			continue
		}
		out = append(out, ex)
	}
	if len(out) == 0 {
		return Pool(family)
	}
	return out
}

func selectionKey(seed int64, family Family, slotKey string, phase domain.Phase, p *domain.Profile, dayIndex int) string {
	pt := p.ProgramType
	if pt == "" {
		pt = domain.ProgramGeneral
	}
	mode := p.AthleteMode
	if mode == "" {
		mode = domain.ModeRecreational
	}
	return fmt.Sprintf("%d|%s|%s|%s|%s|%s|d%d", seed, family, slotKey, phase, pt, mode, dayIndex)
}

// ChooseVariation picks the exercise variation for a slot. Selection is a
// pure function of (seed, family, slot, phase, program, mode, day, week), so
// regenerating the same block reproduces the same plan. Competition-oriented
// athletes roll toward the pool's canonical first entry during
// intensification 70% of the time.
func ChooseVariation(family Family, p *domain.Profile, seed int64, weekIndex int, phase domain.Phase, slotKey string, dayIndex int) Exercise {
	pool := Pool(family)
	if len(pool) == 0 {
		return Exercise{Name: slotKey}
	}
	pool = FilterPoolForInjuries(pool, family, p.Injuries)
	pool = filterBlockVariations(pool, family, p.IncludeBlocks)

	key := selectionKey(seed, family, slotKey, phase, p, dayIndex)
	if preferSpecific(p) && phase == domain.PhaseIntensification {
		h := Hash32(key + "|w" + fmt.Sprint(weekIndex))
		if h%10 < 7 {
			return pool[0]
		}
	}
	if picked := PickFromPool(pool, key, weekIndex); picked != nil {
		return *picked
	}
	return pool[0]
}

// ChooseVariationExcluding is ChooseVariation minus already-picked names, for
// same-day duplicate prevention. Injury filtering is deliberately skipped
// here to match accessory-slot behavior.
func ChooseVariationExcluding(family Family, p *domain.Profile, seed int64, weekIndex int, phase domain.Phase, slotKey string, excludeNames []string, dayIndex int) Exercise {
	pool := Pool(family)
	if len(pool) == 0 {
		return Exercise{Name: slotKey}
	}
	available := make([]Exercise, 0, len(pool))
	for _, ex := range pool {
		if !containsName(excludeNames, ex.Name) {
			available = append(available, ex)
		}
	}
	if len(available) == 0 {
		available = pool
	}

	key := selectionKey(seed, family, slotKey, phase, p, dayIndex)
	if preferSpecific(p) && phase == domain.PhaseIntensification {
		h := Hash32(key + "|w" + fmt.Sprint(weekIndex))
		if h%10 < 7 {
			return available[0]
		}
	}
	if picked := PickFromPool(available, key, weekIndex); picked != nil {
		return *picked
	}
	return available[0]
}

func preferSpecific(p *domain.Profile) bool {
	return p.AthleteMode == domain.ModeCompetition || p.ProgramType == domain.ProgramCompetition
}

// ChooseHypertrophyExercise picks a supplemental exercise for a pool. The
// week index is pinned to zero so the pick holds for the whole block and the
// athlete can progress the same movement week to week.
func ChooseHypertrophyExercise(poolName HypertrophyPool, p *domain.Profile, seed int64, slotKey string, excludeNames []string) Exercise {
	pool := hypertrophyPools[poolName]
	if len(pool) == 0 {
		return Exercise{Name: string(poolName)}
	}
	pt := p.ProgramType
	if pt == "" {
		pt = domain.ProgramGeneral
	}
	key := fmt.Sprintf("%d|hyp|%s|%s|%s", seed, poolName, slotKey, pt)
	if picked := PickFromPoolExcluding(pool, key, 0, excludeNames); picked != nil {
		return *picked
	}
	return pool[0]
}
