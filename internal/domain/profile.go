package domain

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Units of load measurement.
type Units string

const (
	UnitsKg Units = "kg"
	UnitsLb Units = "lb"
)

// ProgramType selects the intensity curve and supplemental work scheme.
type ProgramType string

const (
	ProgramGeneral       ProgramType = "general"
	ProgramStrength      ProgramType = "strength"
	ProgramMaxStrength   ProgramType = "maximum_strength"
	ProgramHypertrophy   ProgramType = "hypertrophy"
	ProgramPowerbuilding ProgramType = "powerbuilding"
	ProgramCompetition   ProgramType = "competition"
)

// AthleteMode biases variation selection toward competition-standard lifts.
type AthleteMode string

const (
	ModeRecreational AthleteMode = "recreational"
	ModeCompetition  AthleteMode = "competition"
)

// VolumePref scales baseline set counts.
type VolumePref string

const (
	VolumeStandard VolumePref = "standard"
	VolumeReduced  VolumePref = "reduced"
	VolumeMinimal  VolumePref = "minimal"
)

// TransitionProfile controls how hard the first weeks of a block ramp in.
type TransitionProfile string

const (
	TransitionStandard     TransitionProfile = "standard"
	TransitionConservative TransitionProfile = "conservative"
	TransitionAggressive   TransitionProfile = "aggressive"
)

// Limiter is the athlete's self-identified primary weakness.
type Limiter string

const (
	LimiterPull        Limiter = "pull"
	LimiterReceiving   Limiter = "receiving"
	LimiterSquat       Limiter = "squat"
	LimiterOverhead    Limiter = "overhead"
	LimiterJerk        Limiter = "jerk"
	LimiterPositions   Limiter = "positions"
	LimiterTiming      Limiter = "timing"
	LimiterConsistency Limiter = "consistency"
	LimiterBalanced    Limiter = "balanced"
)

// LiftKey identifies which 1RM an exercise derives its load from.
type LiftKey string

const (
	LiftSnatch      LiftKey = "snatch"
	LiftCleanJerk   LiftKey = "cj"
	LiftFrontSquat  LiftKey = "fs"
	LiftBackSquat   LiftKey = "bs"
	LiftPushPress   LiftKey = "pushPress"
	LiftStrictPress LiftKey = "strictPress"
)

// Maxes holds one-rep maxes for the main lifts plus optional custom 1RMs for
// technical variations. A nil custom value means "estimate from the main lift
// by ratio".
type Maxes struct {
	Snatch      float64 `bson:"snatch" json:"snatch"`
	CleanJerk   float64 `bson:"cj" json:"cj"`
	FrontSquat  float64 `bson:"fs" json:"fs"`
	BackSquat   float64 `bson:"bs" json:"bs"`
	PushPress   float64 `bson:"pushPress" json:"pushPress"`
	StrictPress float64 `bson:"strictPress" json:"strictPress"`

	PowerSnatch     *float64 `bson:"powerSnatch,omitempty" json:"powerSnatch,omitempty"`
	PowerClean      *float64 `bson:"powerClean,omitempty" json:"powerClean,omitempty"`
	OverheadSquat   *float64 `bson:"ohs,omitempty" json:"ohs,omitempty"`
	HangSnatch      *float64 `bson:"hangSnatch,omitempty" json:"hangSnatch,omitempty"`
	HangPowerSnatch *float64 `bson:"hangPowerSnatch,omitempty" json:"hangPowerSnatch,omitempty"`
	HangClean       *float64 `bson:"hangClean,omitempty" json:"hangClean,omitempty"`
}

// Of returns the max stored for a lift key, treating non-finite values as zero.
func (m Maxes) Of(key LiftKey) float64 {
	var v float64
	switch key {
	case LiftSnatch:
		v = m.Snatch
	case LiftCleanJerk:
		v = m.CleanJerk
	case LiftFrontSquat:
		v = m.FrontSquat
	case LiftBackSquat:
		v = m.BackSquat
	case LiftPushPress:
		v = m.PushPress
	case LiftStrictPress:
		v = m.StrictPress
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// WorkingMaxes derives the legacy 90% working maxes. These are reference
// values only; prescriptions always run off true maxes.
func (m Maxes) WorkingMaxes() Maxes {
	round := func(v float64) float64 { return math.Round(v*0.9) }
	return Maxes{
		Snatch:      round(m.Snatch),
		CleanJerk:   round(m.CleanJerk),
		FrontSquat:  round(m.FrontSquat),
		BackSquat:   round(m.BackSquat),
		PushPress:   round(m.PushPress),
		StrictPress: round(m.StrictPress),
	}
}

// ReadinessEntry is one logged wellness check.
type ReadinessEntry struct {
	Date     time.Time `bson:"date" json:"date"`
	Score    float64   `bson:"score" json:"score"`
	Sleep    float64   `bson:"sleep,omitempty" json:"sleep,omitempty"`
	Quality  int       `bson:"quality,omitempty" json:"quality,omitempty"`
	Stress   int       `bson:"stress,omitempty" json:"stress,omitempty"`
	Soreness int       `bson:"soreness,omitempty" json:"soreness,omitempty"`
	Notes    string    `bson:"notes,omitempty" json:"notes,omitempty"`
}

// Profile is one named athlete configuration. It owns at most one active
// block at a time; set logs are keyed independently so they survive block
// regeneration.
type Profile struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string             `bson:"name" json:"name"` // unique

	Units       Units       `bson:"units" json:"units"`
	ProgramType ProgramType `bson:"programType" json:"programType"`
	AthleteMode AthleteMode `bson:"athleteMode" json:"athleteMode"`
	TrainingAge float64     `bson:"trainingAge" json:"trainingAge"`
	Age         *int        `bson:"age,omitempty" json:"age,omitempty"`
	Recovery    int         `bson:"recovery" json:"recovery"` // 1-5
	Limiter     Limiter     `bson:"limiter" json:"limiter"`
	Injuries    []string    `bson:"injuries" json:"injuries"`

	MainDays      []int `bson:"mainDays" json:"mainDays"`           // weekday numbers 1-7
	AccessoryDays []int `bson:"accessoryDays" json:"accessoryDays"` // disjoint from MainDays
	Duration      int   `bson:"duration" json:"duration"`           // session minutes
	RestDuration  int   `bson:"restDuration" json:"restDuration"`   // rest timer seconds

	BlockLength       int               `bson:"blockLength" json:"blockLength"` // weeks, clamped 4-12
	TransitionWeeks   int               `bson:"transitionWeeks" json:"transitionWeeks"`
	TransitionProfile TransitionProfile `bson:"transitionProfile" json:"transitionProfile"`
	VolumePref        VolumePref        `bson:"volumePref" json:"volumePref"`
	IncludeBlocks     bool              `bson:"includeBlocks" json:"includeBlocks"`

	Maxes           Maxes               `bson:"maxes" json:"maxes"`
	WorkingMaxes    Maxes               `bson:"workingMaxes" json:"workingMaxes"`
	LiftAdjustments map[LiftKey]float64 `bson:"liftAdjustments" json:"liftAdjustments"`

	ReadinessLog     []ReadinessEntry   `bson:"readinessLog,omitempty" json:"readinessLog,omitempty"`
	AccessoryWeights map[string]float64 `bson:"accessoryWeights,omitempty" json:"accessoryWeights,omitempty"`
	LastBlockSeed    int64              `bson:"lastBlockSeed,omitempty" json:"lastBlockSeed,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// DefaultProfile returns the documented fallback configuration used when a
// stored profile is missing or malformed.
func DefaultProfile(name string) *Profile {
	if name == "" {
		name = "Default"
	}
	return &Profile{
		Name:              name,
		Units:             UnitsKg,
		ProgramType:       ProgramGeneral,
		AthleteMode:       ModeRecreational,
		TrainingAge:       1,
		Recovery:          3,
		Limiter:           LimiterBalanced,
		Injuries:          []string{},
		MainDays:          []int{2, 4, 6},
		AccessoryDays:     []int{7},
		Duration:          75,
		RestDuration:      180,
		BlockLength:       8,
		TransitionWeeks:   1,
		TransitionProfile: TransitionStandard,
		VolumePref:        VolumeReduced,
		IncludeBlocks:     true,
		Maxes:             Maxes{Snatch: 80, CleanJerk: 100, FrontSquat: 130, BackSquat: 150},
		WorkingMaxes:      Maxes{Snatch: 80, CleanJerk: 100, FrontSquat: 130, BackSquat: 150}.WorkingMaxes(),
		LiftAdjustments:   map[LiftKey]float64{},
		AccessoryWeights:  map[string]float64{},
	}
}

// Adjustment returns the persistent bias for a lift, clamped to +-0.05.
func (p *Profile) Adjustment(key LiftKey) float64 {
	if p.LiftAdjustments == nil {
		return 0
	}
	v := p.LiftAdjustments[key]
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	if v > 0.05 {
		return 0.05
	}
	if v < -0.05 {
		return -0.05
	}
	return v
}

// LatestReadiness returns the most recent readiness score, or the neutral 3
// when nothing is logged.
func (p *Profile) LatestReadiness() float64 {
	if len(p.ReadinessLog) == 0 {
		return 3
	}
	return p.ReadinessLog[len(p.ReadinessLog)-1].Score
}

// NormalizeSchedule enforces the main/accessory disjointness invariant: a
// weekday scheduled in both sets trains the main session.
func (p *Profile) NormalizeSchedule() {
	main := make(map[int]bool, len(p.MainDays))
	for _, d := range p.MainDays {
		main[d] = true
	}
	acc := p.AccessoryDays[:0]
	for _, d := range p.AccessoryDays {
		if !main[d] {
			acc = append(acc, d)
		}
	}
	p.AccessoryDays = acc
}
