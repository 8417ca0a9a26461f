// Package face loads the face poses the animation moves between.
//
// The input is one JSON record per line:
//
//	{"level":"info","message":{"emo":"sleepy","points":{"a":{"x":27,"y":16}, ...}}}
//
// A line that does not parse is skipped, never fatal: a partially written log must
// not keep the face from starting.
package face

import (
	"errors"
	"maps"
	"slices"
)

// ErrEmptySet is returned when a pose is requested from a set with no records.
var ErrEmptySet = errors.New("face: no poses loaded")

// KeyPoint is an integer pixel coordinate.
type KeyPoint struct {
	X, Y int
}

// Pose maps a label to its keypoint.
//
// Poses are shared between goroutines once loaded and must be treated as read-only;
// build a new map instead of editing one.
type Pose map[string]KeyPoint

// Labels returns the pose's labels in sorted order.
func (p Pose) Labels() []string {
	return slices.Sorted(maps.Keys(p))
}

// Equal reports whether p and q hold the same labels and points.
func (p Pose) Equal(q Pose) bool {
	return maps.Equal(p, q)
}

// Clone returns a copy of p.
func (p Pose) Clone() Pose {
	if p == nil {
		return nil
	}
	return maps.Clone(p)
}

// Record is one loaded input line.
type Record struct {
	Level string
	Mood  string
	Pose  Pose
}

// Rand is the random source used to pick poses. *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// Set is an immutable collection of loaded records.
type Set struct {
	records []Record
}

// NewSet builds a set from already-parsed records.
func NewSet(records ...Record) *Set {
	return &Set{records: slices.Clone(records)}
}

// Len returns the number of records; a nil set has none.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.records)
}

// Records returns a copy of the record slice. The poses themselves are shared.
func (s *Set) Records() []Record {
	if s == nil {
		return nil
	}
	return slices.Clone(s.records)
}

// Labels returns the sorted union of labels across all records.
func (s *Set) Labels() []string {
	if s == nil {
		return nil
	}
	seen := make(map[string]struct{})
	for _, rec := range s.records {
		for l := range rec.Pose {
			seen[l] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(seen))
}

// Random returns a uniformly chosen record.
//
// There is no sensible fallback face, so an empty set is an error the caller must
// treat as fatal.
func (s *Set) Random(r Rand) (Record, error) {
	if s.Len() == 0 {
		return Record{}, ErrEmptySet
	}
	return s.records[r.IntN(len(s.records))], nil
}
