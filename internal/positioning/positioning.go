// Package positioning exposes the plate-solver/GPS subsystem to the UI core
// as a read-only snapshot handle. The positioning process is the sole writer;
// the UI core only ever reads.
package positioning

import (
	"sync"
	"time"
)

// Solution is the solver's current estimate of where the instrument points.
// AltAzValid reports whether the horizontal coordinates have been integrated
// yet; a fresh solve carries RA/Dec before Az/Alt become available.
type Solution struct {
	RA         float64
	Dec        float64
	Az         float64
	Alt        float64
	AltAzValid bool
	SolveTime  time.Time
}

// Location is the observer's GPS-derived position.
type Location struct {
	Lat      float64
	Lon      float64
	Altitude float64
	GPSLock  bool
}

// Snapshot is one coherent read of the positioning state. Nil fields mean
// the corresponding fix is not available yet.
type Snapshot struct {
	Solution *Solution
	Location *Location
	Time     *time.Time
}

// Source publishes positioning state. A single Snapshot call returns a
// coherent triple, never a torn combination.
type Source interface {
	Snapshot() Snapshot
}

// StaticSource is a Source backed by explicitly set state. It serves tests
// and fixed-site wiring; WallClock substitutes the current UTC time on every
// read so aim numbers stay live.
type StaticSource struct {
	mu        sync.RWMutex
	solution  *Solution
	location  *Location
	timestamp *time.Time

	WallClock bool
}

func NewStaticSource() *StaticSource {
	return &StaticSource{}
}

func (s *StaticSource) SetSolution(sol Solution) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.solution = &sol
}

func (s *StaticSource) SetLocation(loc Location) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.location = &loc
}

func (s *StaticSource) SetTime(t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timestamp = &t
}

func (s *StaticSource) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := Snapshot{Solution: s.solution, Location: s.location, Time: s.timestamp}
	if s.WallClock {
		now := time.Now().UTC()
		snap.Time = &now
	}
	return snap
}
