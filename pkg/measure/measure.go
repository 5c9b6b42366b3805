// Package measure implements the two-point distance tool as an explicit
// state machine over the picking primitive.
package measure

import (
	"github.com/philipparndt/gobim/pkg/geometry"
)

// State is the measurement tool's state
type State int

const (
	// Idle means no point has been captured
	Idle State = iota
	// FirstPointCaptured means one point is held and the next accepted
	// pick completes a measurement
	FirstPointCaptured
)

func (s State) String() string {
	if s == FirstPointCaptured {
		return "first-point-captured"
	}
	return "idle"
}

// Result is one completed measurement
type Result struct {
	P1, P2   geometry.Vector3
	Distance float64
}

// Engine is the measurement state machine. A completed measurement
// resets to Idle, so each measurement is armed explicitly by its first
// pick rather than chaining onto the previous one.
type Engine struct {
	active bool
	state  State
	first  geometry.Vector3
}

// NewEngine creates an inactive engine
func NewEngine() *Engine {
	return &Engine{}
}

// Active reports whether the tool accepts picks
func (e *Engine) Active() bool {
	return e.active
}

// State returns the current machine state
func (e *Engine) State() State {
	return e.state
}

// Activate arms the tool
func (e *Engine) Activate() {
	e.active = true
}

// Deactivate disarms the tool and discards any captured point without
// emitting a result.
func (e *Engine) Deactivate() {
	e.active = false
	e.state = Idle
	e.first = geometry.Vector3{}
}

// AddPoint feeds one picked world-space point into the machine. The
// second point of a pair completes the measurement and returns it with
// ok=true; every other call returns ok=false. Points are ignored while
// the tool is inactive.
func (e *Engine) AddPoint(p geometry.Vector3) (Result, bool) {
	if !e.active {
		return Result{}, false
	}
	if e.state == Idle {
		e.first = p
		e.state = FirstPointCaptured
		return Result{}, false
	}

	result := Result{
		P1:       e.first,
		P2:       p,
		Distance: e.first.Distance(p),
	}
	e.state = Idle
	e.first = geometry.Vector3{}
	return result, true
}
