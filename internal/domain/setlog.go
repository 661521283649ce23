package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SetAction is the outcome the athlete reports for a performed set.
type SetAction string

const (
	ActionMake  SetAction = "make"
	ActionBelt  SetAction = "belt"
	ActionHeavy SetAction = "heavy"
	ActionMiss  SetAction = "miss"
	ActionNone  SetAction = ""
)

// SetStatus tracks whether a planned set has been performed.
type SetStatus string

const (
	SetPending SetStatus = "pending"
	SetDone    SetStatus = "done"
)

// SetLogEntry records one performed set, addressed by (exercise index, set
// index) within a day.
type SetLogEntry struct {
	ExerciseIndex int       `bson:"exerciseIndex" json:"exerciseIndex"`
	SetIndex      int       `bson:"setIndex" json:"setIndex"`
	ExerciseName  string    `bson:"exerciseName" json:"exerciseName"`
	Weight        float64   `bson:"weight,omitempty" json:"weight,omitempty"`
	Reps          int       `bson:"reps,omitempty" json:"reps,omitempty"`
	RPE           float64   `bson:"rpe,omitempty" json:"rpe,omitempty"`
	Action        SetAction `bson:"action,omitempty" json:"action,omitempty"`
	Status        SetStatus `bson:"status" json:"status"`
}

// ExerciseOverride holds per-exercise user overrides that persist across
// re-renders of a day: an alternative work-set count and a cumulative weight
// offset applied to every displayed set weight.
type ExerciseOverride struct {
	ExerciseIndex int      `bson:"exerciseIndex" json:"exerciseIndex"`
	WorkSets      *int     `bson:"workSets,omitempty" json:"workSets,omitempty"`
	WeightOffset  *float64 `bson:"weightOffset,omitempty" json:"weightOffset,omitempty"`
}

// DayLog owns all set entries and overrides for one (profile, week, day).
// It is keyed independently of the Block so logs survive regeneration.
type DayLog struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProfileName string             `bson:"profileName" json:"profileName"`
	WeekIndex   int                `bson:"weekIndex" json:"weekIndex"`
	DayIndex    int                `bson:"dayIndex" json:"dayIndex"`
	Entries     []SetLogEntry      `bson:"entries" json:"entries"`
	Overrides   []ExerciseOverride `bson:"overrides,omitempty" json:"overrides,omitempty"`
	Completed   bool               `bson:"completed" json:"completed"`
	CompletedAt *time.Time         `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Entry returns the log entry at (exercise, set), or nil when none exists.
func (l *DayLog) Entry(exerciseIndex, setIndex int) *SetLogEntry {
	for i := range l.Entries {
		e := &l.Entries[i]
		if e.ExerciseIndex == exerciseIndex && e.SetIndex == setIndex {
			return e
		}
	}
	return nil
}

// PutEntry inserts or replaces the entry at the entry's (exercise, set) key.
func (l *DayLog) PutEntry(entry SetLogEntry) {
	if e := l.Entry(entry.ExerciseIndex, entry.SetIndex); e != nil {
		*e = entry
		return
	}
	l.Entries = append(l.Entries, entry)
}

func (l *DayLog) override(exerciseIndex int) *ExerciseOverride {
	for i := range l.Overrides {
		if l.Overrides[i].ExerciseIndex == exerciseIndex {
			return &l.Overrides[i]
		}
	}
	return nil
}

// WorkSetsOverride returns the overridden work-set count for an exercise, or
// the fallback when none is set. The result is never below 1.
func (l *DayLog) WorkSetsOverride(exerciseIndex, fallback int) int {
	n := fallback
	if o := l.override(exerciseIndex); o != nil && o.WorkSets != nil {
		n = *o.WorkSets
	}
	if n < 1 {
		return 1
	}
	return n
}

// SetWorkSetsOverride stores a work-set count override, clamped to >= 1.
func (l *DayLog) SetWorkSetsOverride(exerciseIndex, workSets int) {
	if workSets < 1 {
		workSets = 1
	}
	if o := l.override(exerciseIndex); o != nil {
		o.WorkSets = &workSets
		return
	}
	l.Overrides = append(l.Overrides, ExerciseOverride{ExerciseIndex: exerciseIndex, WorkSets: &workSets})
}

// ClearWorkSetsOverride reverts an exercise to its prescribed set count.
func (l *DayLog) ClearWorkSetsOverride(exerciseIndex int) {
	if o := l.override(exerciseIndex); o != nil {
		o.WorkSets = nil
	}
}

// WeightOffsetOverride returns the per-exercise weight offset, clamped to
// [-0.10, 0.10].
func (l *DayLog) WeightOffsetOverride(exerciseIndex int) float64 {
	o := l.override(exerciseIndex)
	if o == nil || o.WeightOffset == nil {
		return 0
	}
	v := *o.WeightOffset
	if v > 0.10 {
		return 0.10
	}
	if v < -0.10 {
		return -0.10
	}
	return v
}

// SetWeightOffsetOverride stores a weight offset override, clamped to
// [-0.10, 0.10].
func (l *DayLog) SetWeightOffsetOverride(exerciseIndex int, offset float64) {
	if offset > 0.10 {
		offset = 0.10
	}
	if offset < -0.10 {
		offset = -0.10
	}
	if o := l.override(exerciseIndex); o != nil {
		o.WeightOffset = &offset
		return
	}
	l.Overrides = append(l.Overrides, ExerciseOverride{ExerciseIndex: exerciseIndex, WeightOffset: &offset})
}

// ClearWeightOffsetOverride removes an exercise's weight offset.
func (l *DayLog) ClearWeightOffsetOverride(exerciseIndex int) {
	if o := l.override(exerciseIndex); o != nil {
		o.WeightOffset = nil
	}
}

// ClearExercise drops all entries and overrides for an exercise index, used
// when the exercise is swapped out.
func (l *DayLog) ClearExercise(exerciseIndex int) {
	entries := l.Entries[:0]
	for _, e := range l.Entries {
		if e.ExerciseIndex != exerciseIndex {
			entries = append(entries, e)
		}
	}
	l.Entries = entries
	overrides := l.Overrides[:0]
	for _, o := range l.Overrides {
		if o.ExerciseIndex != exerciseIndex {
			overrides = append(overrides, o)
		}
	}
	l.Overrides = overrides
}
