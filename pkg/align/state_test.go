package align

import (
	"errors"
	"math"
	"testing"

	"github.com/philipparndt/scanalign/pkg/geometry"
)

func TestAlignmentPhaseSequence(t *testing.T) {
	a := NewAlignment(geometry.NewVector3(0, 0, 0), geometry.NewVector3(0, 1, 1))

	if a.Phase() != PhaseIdle {
		t.Fatalf("New alignment should be idle, got %v", a.Phase())
	}

	first, err := a.Start()
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if first.Axis != AxisX {
		t.Errorf("First rotation should be about X, got %v", first.Axis)
	}
	if first.Angle != math.Atan2(1, -1) {
		t.Errorf("First angle failed: expected %v, got %v", math.Atan2(1, -1), first.Angle)
	}
	if a.Phase() != PhaseRotatingFirst {
		t.Errorf("Expected rotating-first, got %v", a.Phase())
	}

	if err := a.RotationComplete(); err != nil {
		t.Fatalf("RotationComplete failed: %v", err)
	}
	if a.Phase() != PhaseAwaitingSecond {
		t.Errorf("Expected awaiting-second, got %v", a.Phase())
	}

	second, err := a.BeginSecond()
	if err != nil {
		t.Fatalf("BeginSecond failed: %v", err)
	}
	if second.Axis != AxisZ {
		t.Errorf("Second rotation should be about Z, got %v", second.Axis)
	}
	if a.Phase() != PhaseRotatingSecond {
		t.Errorf("Expected rotating-second, got %v", a.Phase())
	}

	if err := a.RotationComplete(); err != nil {
		t.Fatalf("RotationComplete failed: %v", err)
	}
	if a.Phase() != PhaseDone {
		t.Errorf("Expected done, got %v", a.Phase())
	}
}

func TestAlignmentSecondAngleUsesOriginalCoordinates(t *testing.T) {
	// The second angle is locked in at construction from the original
	// landmark positions, not recomputed after the first rotation
	p1 := geometry.NewVector3(2, 3, 1)
	p2 := geometry.NewVector3(-1, 1, -2)
	a := NewAlignment(p1, p2)

	_, second := a.Rotations()
	if second.Angle != PhaseTwoAngle(p1, p2) {
		t.Errorf("Second angle must come from the original coordinates: expected %v, got %v",
			PhaseTwoAngle(p1, p2), second.Angle)
	}
}

func TestAlignmentInvalidTransitions(t *testing.T) {
	a := NewAlignment(geometry.NewVector3(0, 0, 0), geometry.NewVector3(0, 1, 1))

	if err := a.RotationComplete(); !errors.Is(err, ErrBadTransition) {
		t.Errorf("RotationComplete while idle should fail, got %v", err)
	}
	if _, err := a.BeginSecond(); !errors.Is(err, ErrBadTransition) {
		t.Errorf("BeginSecond while idle should fail, got %v", err)
	}

	if _, err := a.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if _, err := a.Start(); !errors.Is(err, ErrBadTransition) {
		t.Errorf("Double Start should fail, got %v", err)
	}
	if _, err := a.BeginSecond(); !errors.Is(err, ErrBadTransition) {
		t.Errorf("BeginSecond before the first rotation completes should fail, got %v", err)
	}
}
