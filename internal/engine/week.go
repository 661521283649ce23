package engine

import (
	"fmt"
	"math"
	"sort"

	"alcyxob/oly-planner/internal/domain"
)

// Generator carries everything a block build needs. Selection is a pure
// function of profile and seed, so regenerating with the stored seed
// reproduces the plan exactly; the fatigue flag is evaluated once per
// generation, not per week.
type Generator struct {
	Profile  *domain.Profile
	Seed     int64
	Fatigued bool
}

// HypProgression scales supplemental volume week to week inside a mesocycle.
type HypProgression struct {
	SetMultiplier float64
	RIRAdjustment int
}

// HypertrophyProgression returns the supplemental wave for a week: build
// volume and cut the rep reserve across the mesocycle, back way off on
// deload.
func HypertrophyProgression(weekIndex int, phase domain.Phase) HypProgression {
	if phase == domain.PhaseDeload {
		return HypProgression{SetMultiplier: 0.6, RIRAdjustment: 2}
	}
	switch weekIndex % 4 {
	case 0:
		return HypProgression{SetMultiplier: 1.0, RIRAdjustment: 1}
	case 1:
		return HypProgression{SetMultiplier: 1.0, RIRAdjustment: 0}
	case 2:
		return HypProgression{SetMultiplier: 1.2, RIRAdjustment: 0}
	default:
		return HypProgression{SetMultiplier: 1.2, RIRAdjustment: -1}
	}
}

// balancedTemplatePatterns keep snatch and clean & jerk volume at roughly 2:1
// against pure strength work for every training frequency.
var balancedTemplatePatterns = map[int][]int{
	1: {0, 1, 3},
	2: {0, 1, 3, 0, 1, 3},
	3: {0, 1, 3},
	4: {0, 1, 0, 1},
	5: {0, 1, 3, 0, 1},
	6: {0, 1, 3, 0, 1, 3},
}

// BalancedTemplateIndex picks the main-day template for a training day. One
// and two day schedules rotate the pattern across weeks so the athlete still
// cycles through all templates over time.
func BalancedTemplateIndex(dayCount, dayIndex, weekIndex int) int {
	pattern, ok := balancedTemplatePatterns[dayCount]
	if !ok {
		pattern = balancedTemplatePatterns[6]
	}
	if dayCount <= 2 {
		offset := (weekIndex * dayCount) % len(pattern)
		return pattern[(dayIndex+offset)%len(pattern)]
	}
	return pattern[dayIndex%len(pattern)]
}

func scaledSets(base int, volFactor float64) int {
	n := int(math.Round(float64(base) * volFactor))
	if n < 1 {
		return 1
	}
	return n
}

// complexAdjustedIntensity applies the complex loading rules on top of a
// day's base intensity: 5% hardness reduction, the total-rep cap, and the
// extra fatigue cut.
func (g *Generator) complexAdjustedIntensity(name string, pct float64) float64 {
	if !IsComplex(name) {
		return pct
	}
	pct *= 0.95
	if pattern := ComplexPattern(name); pattern != nil {
		pct = CapComplexIntensity(pct, ComplexTotalReps(pattern))
	}
	return ApplyComplexFatigueAdjustment(pct, name, g.Fatigued)
}

// mainLiftFor resolves the first movement of a snatch or clean & jerk day:
// a limiter-targeted complex when the diagnostic tables have one, otherwise
// the seeded variation pick.
func (g *Generator) mainLiftFor(kind domain.DayKind, family Family, key domain.LiftKey, weekIndex int, phase domain.Phase, slotKey string, dayIndex int) Exercise {
	if name := ChooseComplexForDay(kind, g.Profile.Limiter, phase); name != "" {
		if g.Fatigued {
			name = DowngradeComplexIfFatigued(name, true)
		}
		return Exercise{Name: name, LiftKey: key}
	}
	return ChooseVariation(family, g.Profile, g.Seed, weekIndex, phase, slotKey, dayIndex)
}

func (g *Generator) snatchDay(weekIndex int, phase domain.Phase, intensity, volFactor float64, dayIndex int) domain.DayPlan {
	p := g.Profile
	main := g.mainLiftFor(domain.DaySnatch, FamilySnatch, domain.LiftSnatch, weekIndex, phase, "snatch_main", dayIndex)
	mainPct := g.complexAdjustedIntensity(main.Name, intensity)

	pull := ChooseVariation(FamilySnatchPull, p, g.Seed, weekIndex, phase, "snatch_pull", dayIndex)
	squat := ChooseVariation(FamilyBackSquat, p, g.Seed, weekIndex, phase, "back_squat", dayIndex)
	return domain.DayPlan{
		Title: "Snatch Focus", Kind: domain.DaySnatch, Main: "Snatch", LiftKey: domain.LiftSnatch,
		Work: []domain.Prescription{
			{Name: main.Name, LiftKey: domain.LiftSnatch, Sets: scaledSets(5, volFactor), Reps: 2, Pct: mainPct},
			{Name: pull.Name, LiftKey: domain.LiftSnatch, Sets: scaledSets(4, volFactor), Reps: 3,
				Pct: clamp(intensity+PullOffset(phase, true), 0.65, 1.00)},
			{Name: squat.Name, LiftKey: domain.LiftBackSquat, Sets: scaledSets(4, volFactor), Reps: 5,
				Pct: clamp(intensity+0.05, 0.55, 0.92)},
		},
	}
}

func (g *Generator) cleanJerkDay(weekIndex int, phase domain.Phase, intensity, volFactor float64, dayIndex int) domain.DayPlan {
	p := g.Profile
	main := g.mainLiftFor(domain.DayCleanJerk, FamilyCleanJerk, domain.LiftCleanJerk, weekIndex, phase, "cj_main", dayIndex)
	mainPct := g.complexAdjustedIntensity(main.Name, clamp(intensity+0.05, 0.60, 0.95))

	pull := ChooseVariation(FamilyCleanPull, p, g.Seed, weekIndex, phase, "clean_pull", dayIndex)
	squat := ChooseVariation(FamilyFrontSquat, p, g.Seed, weekIndex, phase, "front_squat", dayIndex)
	return domain.DayPlan{
		Title: "Clean & Jerk Focus", Kind: domain.DayCleanJerk, Main: "Clean & Jerk", LiftKey: domain.LiftCleanJerk,
		Work: []domain.Prescription{
			{Name: main.Name, LiftKey: domain.LiftCleanJerk, Sets: scaledSets(5, volFactor), Reps: 1, Pct: mainPct},
			{Name: pull.Name, LiftKey: domain.LiftCleanJerk, Sets: scaledSets(4, volFactor), Reps: 3,
				Pct: clamp(intensity+PullOffset(phase, false), 0.70, 1.05)},
			{Name: squat.Name, LiftKey: domain.LiftFrontSquat, Sets: scaledSets(4, volFactor), Reps: 3,
				Pct: clamp(intensity+0.08, 0.55, 0.92)},
		},
	}
}

func (g *Generator) strengthDay(weekIndex int, phase domain.Phase, intensity, volFactor float64, dayIndex int) domain.DayPlan {
	p := g.Profile
	squat := ChooseVariation(FamilyBackSquat, p, g.Seed, weekIndex, phase, "back_squat_strength", dayIndex)
	sn := ChooseVariation(FamilySnatch, p, g.Seed, weekIndex, phase, "snatch_secondary", dayIndex)
	press := ChooseVariation(FamilyPress, p, g.Seed, weekIndex, phase, "press", dayIndex)
	return domain.DayPlan{
		Title: "Strength + Positions", Kind: domain.DayStrength, Main: "Back Squat", LiftKey: domain.LiftBackSquat,
		Work: []domain.Prescription{
			{Name: squat.Name, LiftKey: domain.LiftBackSquat, Sets: scaledSets(5, volFactor), Reps: 3,
				Pct: clamp(intensity+0.08, 0.55, 0.95)},
			{Name: sn.Name, LiftKey: domain.LiftSnatch, Sets: scaledSets(4, volFactor), Reps: 2,
				Pct: clamp(intensity-0.02, 0.55, 0.90)},
			{Name: press.Name, LiftKey: press.LiftKey, Sets: scaledSets(4, volFactor), Reps: 5,
				Pct: clamp(intensity-0.12, 0.45, 0.80)},
		},
	}
}

func (g *Generator) combinedDay(weekIndex int, phase domain.Phase, intensity, volFactor float64, dayIndex int) domain.DayPlan {
	p := g.Profile
	sn := g.mainLiftFor(domain.DaySnatch, FamilySnatch, domain.LiftSnatch, weekIndex, phase, "snatch_skill", dayIndex)
	snPct := g.complexAdjustedIntensity(sn.Name, clamp(intensity-0.05, 0.55, 0.88))

	cj := ChooseVariation(FamilyCleanJerk, p, g.Seed, weekIndex, phase, "cj_skill", dayIndex)
	squat := ChooseVariation(FamilyBackSquat, p, g.Seed, weekIndex, phase, "back_squat_combined", dayIndex)
	press := ChooseVariation(FamilyPress, p, g.Seed, weekIndex, phase, "press_accessory", dayIndex)
	return domain.DayPlan{
		Title: "Combined + Squat", Kind: domain.DayCombined, Main: "Both Lifts", LiftKey: domain.LiftSnatch,
		Work: []domain.Prescription{
			{Name: sn.Name, LiftKey: domain.LiftSnatch, Sets: scaledSets(4, volFactor), Reps: 2, Pct: snPct},
			{Name: cj.Name, LiftKey: domain.LiftCleanJerk, Sets: scaledSets(4, volFactor), Reps: 1,
				Pct: clamp(intensity, 0.60, 0.90)},
			{Name: squat.Name, LiftKey: domain.LiftBackSquat, Sets: scaledSets(4, volFactor), Reps: 3,
				Pct: clamp(intensity+0.08, 0.55, 0.95)},
			{Name: press.Name, LiftKey: press.LiftKey, Sets: scaledSets(3, volFactor), Reps: 5,
				Pct: clamp(intensity-0.15, 0.40, 0.75)},
		},
	}
}

func (g *Generator) mainDay(templateIndex, dayIndex, weekIndex int, phase domain.Phase, intensity, volFactor float64) domain.DayPlan {
	switch templateIndex % 4 {
	case 0:
		return g.snatchDay(weekIndex, phase, intensity, volFactor, dayIndex)
	case 1:
		return g.cleanJerkDay(weekIndex, phase, intensity, volFactor, dayIndex)
	case 2:
		return g.strengthDay(weekIndex, phase, intensity, volFactor, dayIndex)
	default:
		return g.combinedDay(weekIndex, phase, intensity, volFactor, dayIndex)
	}
}

// accessoryCue augments an accessory description with program-specific
// execution guidance.
func accessoryCue(desc string, pt domain.ProgramType) string {
	switch pt {
	case domain.ProgramHypertrophy, domain.ProgramPowerbuilding:
		return desc + " | Tempo: 3-1-1-0 (slow eccentric) | RIR: 1-2 (near failure) | Focus: Muscle tension"
	case domain.ProgramCompetition:
		return desc + " | Tempo: Explosive | RIR: 3-4 (technical reserve) | Focus: Speed & quality"
	case domain.ProgramMaxStrength:
		return desc + " | Tempo: Controlled | RIR: 2-3 | Focus: Stability"
	}
	return desc
}

func (g *Generator) accessoryDay(dayIndex, weekIndex int, phase domain.Phase, volFactor float64) domain.DayPlan {
	p := g.Profile
	acc1 := ChooseVariation(FamilyAccessory, p, g.Seed, weekIndex, phase, "accessory_1", dayIndex)
	acc2 := ChooseVariationExcluding(FamilyAccessory, p, g.Seed, weekIndex, phase, "accessory_2", []string{acc1.Name}, dayIndex)

	reps1, reps2 := 5, 8
	if p.ProgramType == domain.ProgramHypertrophy {
		reps1, reps2 = 10, 12
	}
	return domain.DayPlan{
		Title: "Accessory + Core", Kind: domain.DayAccessory, Main: "Accessory",
		Work: []domain.Prescription{
			{Name: acc1.Name, LiftKey: acc1.LiftKey, RecommendedPct: acc1.RecommendedPct,
				Description: accessoryCue(acc1.Description, p.ProgramType),
				Sets:        scaledSets(3, volFactor), Reps: reps1},
			{Name: acc2.Name, LiftKey: acc2.LiftKey, RecommendedPct: acc2.RecommendedPct,
				Description: accessoryCue(acc2.Description, p.ProgramType),
				Sets:        scaledSets(3, volFactor), Reps: reps2},
			{Name: "Core + Mobility", Sets: 1, Reps: 1},
		},
	}
}

func (g *Generator) hypPrescription(pool HypertrophyPool, slotKey string, sets, reps, baseRIR int, prog HypProgression, exclude ...string) domain.Prescription {
	ex := ChooseHypertrophyExercise(pool, g.Profile, g.Seed, slotKey, exclude)
	rir := baseRIR + prog.RIRAdjustment
	if rir < 0 {
		rir = 0
	}
	return domain.Prescription{
		Name:           ex.Name,
		LiftKey:        ex.LiftKey,
		RecommendedPct: ex.RecommendedPct,
		Description:    ex.Description,
		Sets:           sets,
		Reps:           reps,
		Tag:            domain.TagHypertrophy,
		TargetRIR:      &rir,
	}
}

// WeekPlan builds one full training week: base templates on the athlete's
// main days, an accessory day when scheduled, then program-specific
// supplemental work and session-duration enforcement.
func (g *Generator) WeekPlan(weekIndex int) domain.WeekPlan {
	p := g.Profile
	phase := PhaseForWeek(weekIndex)

	baseI := MicroIntensity(p, phase, weekIndex)
	transI, transV := TransitionMultiplier(p, weekIndex)
	intensity := clamp(baseI*transI, 0.55, 0.92)
	volFactor := clamp(VolumeFactor(p, phase, weekIndex)*transV, 0.45, 1.10)

	mainDays := append([]int(nil), p.MainDays...)
	if len(mainDays) == 0 {
		mainDays = []int{2, 4, 6}
	}
	sort.Ints(mainDays)
	mainSet := make(map[int]bool, len(mainDays))
	for _, d := range mainDays {
		mainSet[d] = true
	}
	var accessoryDays []int
	src := p.AccessoryDays
	if len(src) == 0 {
		src = []int{7}
	}
	for _, d := range src {
		if !mainSet[d] {
			accessoryDays = append(accessoryDays, d)
		}
	}
	sort.Ints(accessoryDays)

	var days []domain.DayPlan
	for i, dow := range mainDays {
		idx := BalancedTemplateIndex(len(mainDays), i, weekIndex)
		day := g.mainDay(idx, i, weekIndex, phase, intensity, volFactor)
		day.Weekday = dow
		days = append(days, day)
	}
	for i, dow := range accessoryDays {
		day := g.accessoryDay(len(mainDays)+i, weekIndex, phase, volFactor)
		day.Weekday = dow
		days = append(days, day)
	}

	g.applySupplemental(days, weekIndex, phase, intensity, volFactor)
	enforceDuration(days, p.Duration)

	return domain.WeekPlan{
		WeekIndex:    weekIndex,
		Phase:        phase,
		Intensity:    intensity,
		VolumeFactor: volFactor,
		Days:         days,
	}
}

// applySupplemental layers program-specific extra work onto the base
// templates in place.
func (g *Generator) applySupplemental(days []domain.DayPlan, weekIndex int, phase domain.Phase, intensity, volFactor float64) {
	p := g.Profile
	duration := p.Duration
	if duration <= 0 {
		duration = 75
	}
	prog := HypertrophyProgression(weekIndex, phase)

	for si := range days {
		s := &days[si]
		switch p.ProgramType {
		case domain.ProgramPowerbuilding:
			g.powerbuildingWork(s, si, phase, volFactor, duration, prog)
		case domain.ProgramHypertrophy:
			g.hypertrophyWork(s, si, phase, volFactor, duration, prog)
		case domain.ProgramStrength:
			if duration >= 75 && s.Kind != domain.DayAccessory {
				g.strengthSupport(s, weekIndex, phase, intensity, volFactor)
			}
		}
	}
}

func (g *Generator) powerbuildingWork(s *domain.DayPlan, si int, phase domain.Phase, volFactor float64, duration int, prog HypProgression) {
	baseSets := 4
	if phase == domain.PhaseDeload {
		baseSets = 2
	}
	hypSets := int(math.Round(float64(baseSets) * volFactor * prog.SetMultiplier))
	hypReps := 8
	if phase == domain.PhaseAccumulation {
		hypReps = 12
	}
	dayKey := fmt.Sprintf("d%d", si)

	switch s.Kind {
	case domain.DayAccessory:
		s.Title = "Hypertrophy + Pump"
		if duration >= 90 {
			sh1 := g.hypPrescription(PoolShoulders, "hyp_acc_sh1_"+dayKey, hypSets, 10, 2, prog)
			sh2 := g.hypPrescription(PoolShoulders, "hyp_acc_sh2_"+dayKey, hypSets, 15, 3, prog, sh1.Name)
			s.Work = []domain.Prescription{
				g.hypPrescription(PoolUpperPush, "hyp_acc_push_"+dayKey, hypSets+1, hypReps, 2, prog),
				g.hypPrescription(PoolUpperPull, "hyp_acc_pull_"+dayKey, hypSets+1, hypReps, 2, prog),
				sh1,
				sh2,
				g.hypPrescription(PoolLowerQuad, "hyp_acc_quad_"+dayKey, hypSets, 15, 3, prog),
				g.hypPrescription(PoolLowerPosterior, "hyp_acc_post_"+dayKey, hypSets, hypReps, 2, prog),
				{Name: "Core Circuit", Sets: 3, Reps: 1, Tag: domain.TagCore},
			}
		} else {
			s.Work = []domain.Prescription{
				g.hypPrescription(PoolUpperPush, "hyp_acc_push_"+dayKey, hypSets, hypReps, 2, prog),
				g.hypPrescription(PoolUpperPull, "hyp_acc_pull_"+dayKey, hypSets, hypReps, 2, prog),
				g.hypPrescription(PoolLowerQuad, "hyp_acc_quad_"+dayKey, hypSets, 12, 2, prog),
				{Name: "Core Circuit", Sets: 2, Reps: 1, Tag: domain.TagCore},
			}
		}
	case domain.DaySnatch:
		if duration >= 90 {
			s.Work = append(s.Work,
				g.hypPrescription(PoolUpperPush, "hyp_sn_push", hypSets, hypReps-2, 2, prog),
				g.hypPrescription(PoolUpperPull, "hyp_sn_pull", hypSets, hypReps-2, 2, prog),
				g.hypPrescription(PoolShoulders, "hyp_sn_sh", hypSets, hypReps, 2, prog),
				g.hypPrescription(PoolArms, "hyp_sn_arm", hypSets, hypReps, 2, prog),
			)
		} else {
			s.Work = append(s.Work,
				g.hypPrescription(PoolUpperPush, "hyp_sn_push", hypSets, 10, 2, prog),
				g.hypPrescription(PoolUpperPull, "hyp_sn_pull", hypSets, 10, 2, prog),
			)
		}
	case domain.DayCleanJerk:
		if duration >= 90 {
			pull1 := g.hypPrescription(PoolUpperPull, "hyp_cj_pull1", hypSets, hypReps-2, 2, prog)
			pull2 := g.hypPrescription(PoolUpperPull, "hyp_cj_pull2", hypSets, hypReps, 2, prog, pull1.Name)
			s.Work = append(s.Work,
				pull1,
				pull2,
				g.hypPrescription(PoolShoulders, "hyp_cj_sh", hypSets, hypReps, 2, prog),
				g.hypPrescription(PoolArms, "hyp_cj_arm1", hypSets, hypReps, 3, prog),
			)
		} else {
			s.Work = append(s.Work,
				g.hypPrescription(PoolUpperPull, "hyp_cj_pull", hypSets, 10, 2, prog),
				g.hypPrescription(PoolArms, "hyp_cj_arm1", hypSets, 12, 2, prog),
			)
		}
	case domain.DayStrength:
		if duration >= 90 {
			post1 := g.hypPrescription(PoolLowerPosterior, "hyp_st_post1", hypSets, hypReps-2, 2, prog)
			post2 := g.hypPrescription(PoolLowerPosterior, "hyp_st_post2", hypSets, hypReps, 2, prog, post1.Name)
			s.Work = append(s.Work,
				post1,
				post2,
				g.hypPrescription(PoolLowerQuad, "hyp_st_quad", hypSets, hypReps-2, 2, prog),
				domain.Prescription{Name: "Calf Raises", Sets: 4, Reps: 15, Tag: domain.TagHypertrophy},
			)
		} else {
			s.Work = append(s.Work,
				g.hypPrescription(PoolLowerPosterior, "hyp_st_post1", hypSets, 10, 2, prog),
				domain.Prescription{Name: "Calf Raises", Sets: 3, Reps: 15, Tag: domain.TagHypertrophy},
			)
		}
	}
}

func (g *Generator) hypertrophyWork(s *domain.DayPlan, si int, phase domain.Phase, volFactor float64, duration int, prog HypProgression) {
	baseSets := 4
	if phase == domain.PhaseAccumulation {
		baseSets = 5
	}
	hypSets := int(math.Round(float64(baseSets) * volFactor * prog.SetMultiplier))
	dayKey := fmt.Sprintf("d%d", si)

	if s.Kind == domain.DayAccessory && duration >= 75 {
		s.Work = append(s.Work,
			g.hypPrescription(PoolUpperPush, "hyp_acc_extra1_"+dayKey, hypSets, 12, 2, prog),
			g.hypPrescription(PoolShoulders, "hyp_acc_extra2_"+dayKey, 3, 15, 3, prog),
		)
		return
	}
	if duration < 75 || s.Kind == domain.DayAccessory {
		return
	}
	switch s.Kind {
	case domain.DaySnatch, domain.DayStrength:
		s.Work = append(s.Work,
			g.hypPrescription(PoolUpperPush, fmt.Sprintf("hyp_%s_push", s.Kind), hypSets, 10, 2, prog),
			g.hypPrescription(PoolUpperPull, fmt.Sprintf("hyp_%s_pull", s.Kind), hypSets, 10, 2, prog),
		)
	case domain.DayCleanJerk:
		s.Work = append(s.Work,
			g.hypPrescription(PoolLowerQuad, "hyp_cj_quad", hypSets, 12, 2, prog),
			g.hypPrescription(PoolLowerPosterior, "hyp_cj_post", hypSets, 10, 2, prog),
		)
	}
}

func (g *Generator) strengthSupport(s *domain.DayPlan, weekIndex int, phase domain.Phase, intensity, volFactor float64) {
	p := g.Profile
	slot := string(s.Kind) + "_support"
	var support Exercise
	switch s.Kind {
	case domain.DaySnatch:
		support = ChooseVariation(FamilySnatchPull, p, g.Seed, weekIndex, phase, slot, 0)
	case domain.DayCleanJerk:
		support = ChooseVariation(FamilyCleanPull, p, g.Seed, weekIndex, phase, slot, 0)
	default:
		support = ChooseVariation(FamilyBackSquat, p, g.Seed, weekIndex, phase, slot, 0)
	}
	s.Work = append(s.Work, domain.Prescription{
		Name:    support.Name,
		LiftKey: support.LiftKey,
		Sets:    scaledSets(3, volFactor),
		Reps:    3,
		Pct:     clamp(intensity+PullOffset(phase, s.Kind == domain.DaySnatch), 0.65, 1.05),
		Tag:     domain.TagStrength,
	})
}

// enforceDuration trims sessions to fit a 60-minute slot: accessory days are
// dropped entirely, main days run at most 3 exercises and 5 sets each.
func enforceDuration(days []domain.DayPlan, duration int) {
	if duration != 60 {
		return
	}
	for i := range days {
		s := &days[i]
		if s.Kind == domain.DayAccessory {
			s.Work = nil
			continue
		}
		if len(s.Work) > 3 {
			s.Work = s.Work[:3]
		}
		for j := range s.Work {
			if s.Work[j].Sets > 5 {
				s.Work[j].Sets = 5
			}
		}
	}
}
