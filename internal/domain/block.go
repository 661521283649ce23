package domain

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Phase of the repeating 4-week periodization cycle.
type Phase string

const (
	PhaseAccumulation    Phase = "accumulation"
	PhaseIntensification Phase = "intensification"
	PhaseDeload          Phase = "deload"
)

// DayKind tags a training day's emphasis.
type DayKind string

const (
	DaySnatch    DayKind = "snatch"
	DayCleanJerk DayKind = "cj"
	DayStrength  DayKind = "strength"
	DayCombined  DayKind = "combined"
	DayAccessory DayKind = "accessory"
)

// PrescriptionTag distinguishes work-set items from supplemental entries.
type PrescriptionTag string

const (
	TagWork        PrescriptionTag = "work"
	TagHypertrophy PrescriptionTag = "hypertrophy"
	TagStrength    PrescriptionTag = "strength"
	TagCore        PrescriptionTag = "core"
	TagCustom      PrescriptionTag = "custom"
)

// Prescription is one exercise entry in a day's work list. A name containing
// a '+' separator denotes a complex (a sequence of movements under one load).
type Prescription struct {
	Name           string          `bson:"name" json:"name"`
	LiftKey        LiftKey         `bson:"liftKey,omitempty" json:"liftKey,omitempty"` // empty for bodyweight/custom
	Sets           int             `bson:"sets" json:"sets"`
	Reps           int             `bson:"reps" json:"reps"`
	Pct            float64         `bson:"pct" json:"pct"` // 0 when percentage-less
	RecommendedPct float64         `bson:"recommendedPct,omitempty" json:"recommendedPct,omitempty"`
	Description    string          `bson:"description,omitempty" json:"description,omitempty"`
	TargetRIR      *int            `bson:"targetRIR,omitempty" json:"targetRIR,omitempty"`
	Tag            PrescriptionTag `bson:"tag,omitempty" json:"tag,omitempty"`
}

// IsComplex reports whether the exercise name encodes a movement sequence.
func (p Prescription) IsComplex() bool {
	return strings.Contains(p.Name, "+")
}

// DayPlan is one training day within a week. Completion fields are stamped
// in when the athlete finishes the day, so a stored block doubles as a
// training record.
type DayPlan struct {
	Title   string         `bson:"title" json:"title"`
	Kind    DayKind        `bson:"kind" json:"kind"`
	Main    string         `bson:"main" json:"main"`
	LiftKey LiftKey        `bson:"liftKey,omitempty" json:"liftKey,omitempty"` // default for sub-exercises without one
	Weekday int            `bson:"dow" json:"dow"`                             // 1-7
	Work    []Prescription `bson:"work" json:"work"`

	Completed   bool          `bson:"completed,omitempty" json:"completed,omitempty"`
	CompletedAt *time.Time    `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
	Results     []SetLogEntry `bson:"results,omitempty" json:"results,omitempty"`
}

// WeekPlan is one generated week of a block.
type WeekPlan struct {
	WeekIndex    int       `bson:"weekIndex" json:"weekIndex"`
	Phase        Phase     `bson:"phase" json:"phase"`
	Intensity    float64   `bson:"intensity" json:"intensity"`
	VolumeFactor float64   `bson:"volFactor" json:"volFactor"`
	Days         []DayPlan `bson:"days" json:"days"`
}

// Block is a generated multi-week training plan. It is created wholesale by
// the generator and replaced, never partially regenerated; structural edits
// (exercise swaps) mutate it in place.
type Block struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Seed        int64              `bson:"seed" json:"seed"`
	ProfileName string             `bson:"profileName" json:"profileName"`
	StartDate   time.Time          `bson:"startDate" json:"startDate"`
	ProgramType ProgramType        `bson:"programType" json:"programType"`
	BlockLength int                `bson:"blockLength" json:"blockLength"`
	Weeks       []WeekPlan         `bson:"weeks" json:"weeks"`
	ARI         float64            `bson:"ari,omitempty" json:"ari,omitempty"` // average relative intensity of main lifts
	KValue      float64            `bson:"kValue,omitempty" json:"kValue,omitempty"`
	Current     bool               `bson:"current" json:"current"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// SetTarget is one planned set (warm-up or work) produced by the set-scheme
// builder. TargetWeight is already rounded to the unit increment.
type SetTarget struct {
	TargetPct    float64 `json:"targetPct"`
	TargetReps   int     `json:"targetReps"`
	Tag          string  `json:"tag"` // SetTagWarmup or SetTagWork
	TargetWeight float64 `json:"targetWeight"`
}

// Set tags within an expanded scheme.
const (
	SetTagWarmup = "warmup"
	SetTagWork   = "work"
)
