package align

import (
	"errors"
	"fmt"

	"github.com/philipparndt/scanalign/pkg/geometry"
)

// Axis identifies a single rotation axis
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// Phase is a state of the two-phase alignment sequence
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRotatingFirst
	PhaseAwaitingSecond
	PhaseRotatingSecond
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRotatingFirst:
		return "rotating-first"
	case PhaseAwaitingSecond:
		return "awaiting-second"
	case PhaseRotatingSecond:
		return "rotating-second"
	case PhaseDone:
		return "done"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Rotation is one single-axis rotation request for the animator
type Rotation struct {
	Axis  Axis
	Angle float64
}

// ErrBadTransition is returned when a state change is requested out of
// order
var ErrBadTransition = errors.New("invalid alignment phase transition")

// Alignment holds the two landmark points, the two derived angles and
// the phase progress. The second rotation is gated on the real
// completion of the first, never on a wall-clock delay. Both angles are
// derived from the original landmark coordinates at construction time.
type Alignment struct {
	P1, P2 geometry.Vector3

	phase  Phase
	first  Rotation
	second Rotation
}

// NewAlignment derives both rotation angles from a landmark pair
func NewAlignment(p1, p2 geometry.Vector3) *Alignment {
	return &Alignment{
		P1:     p1,
		P2:     p2,
		phase:  PhaseIdle,
		first:  Rotation{Axis: AxisX, Angle: PhaseOneAngle(p1, p2)},
		second: Rotation{Axis: AxisZ, Angle: PhaseTwoAngle(p1, p2)},
	}
}

// Phase returns the current phase
func (a *Alignment) Phase() Phase {
	return a.phase
}

// Start begins the first rotation and returns it
func (a *Alignment) Start() (Rotation, error) {
	if a.phase != PhaseIdle {
		return Rotation{}, fmt.Errorf("%w: Start in %s", ErrBadTransition, a.phase)
	}
	a.phase = PhaseRotatingFirst
	return a.first, nil
}

// RotationComplete signals that the in-flight rotation finished. After
// the first rotation the alignment waits for BeginSecond; after the
// second it is done.
func (a *Alignment) RotationComplete() error {
	switch a.phase {
	case PhaseRotatingFirst:
		a.phase = PhaseAwaitingSecond
	case PhaseRotatingSecond:
		a.phase = PhaseDone
	default:
		return fmt.Errorf("%w: RotationComplete in %s", ErrBadTransition, a.phase)
	}
	return nil
}

// BeginSecond begins the second rotation and returns it. Only valid once
// the first rotation has completed.
func (a *Alignment) BeginSecond() (Rotation, error) {
	if a.phase != PhaseAwaitingSecond {
		return Rotation{}, fmt.Errorf("%w: BeginSecond in %s", ErrBadTransition, a.phase)
	}
	a.phase = PhaseRotatingSecond
	return a.second, nil
}

// Rotations returns both planned rotations regardless of phase, for
// display purposes
func (a *Alignment) Rotations() (first, second Rotation) {
	return a.first, a.second
}
