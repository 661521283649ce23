// Package engine generates periodized Olympic weightlifting training blocks
// from an athlete profile. Every function here is pure: the only state is the
// profile and seed handed in, so regenerating with the same seed reproduces
// the same block.
package engine

import (
	"math"
	"strconv"
)

// Hash32 is a 32-bit FNV-1a hash over the UTF-16 code units of s. It must
// stay stable across platforms and releases: stored block seeds replay
// through it to reproduce historical exercise picks.
func Hash32(s string) uint32 {
	h := uint32(2166136261)
	for _, r := range s {
		h ^= uint32(uint16(r))
		h *= 16777619
	}
	return h
}

// PickFromPool deterministically selects a pool entry for a (key, week) pair.
// The hash is folded through pool.length*7 before the final modulo; the
// widened range changes which weeks land on which indices compared to a naive
// modulo and is part of the stable selection contract.
func PickFromPool(pool []Exercise, key string, weekIndex int) *Exercise {
	if len(pool) == 0 {
		return nil
	}
	h := Hash32(key + "|w" + strconv.Itoa(weekIndex))
	idx := (h % uint32(len(pool)*7)) % uint32(len(pool))
	return &pool[idx]
}

// PickFromPoolExcluding applies the same selection over the pool minus the
// named exercises. When exclusion empties the pool the first unfiltered entry
// is returned.
func PickFromPoolExcluding(pool []Exercise, key string, weekIndex int, exclude []string) *Exercise {
	if len(pool) == 0 {
		return nil
	}
	available := make([]Exercise, 0, len(pool))
	for _, ex := range pool {
		if !containsName(exclude, ex.Name) {
			available = append(available, ex)
		}
	}
	if len(available) == 0 {
		return &pool[0]
	}
	return PickFromPool(available, key, weekIndex)
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// clamp bounds v to [lo, hi], treating non-finite input as zero.
func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// roundTo rounds v to the nearest multiple of inc.
func roundTo(v, inc float64) float64 {
	if inc <= 0 {
		return v
	}
	return math.Round(v/inc) * inc
}
