// Package animate interpolates a single rotation value toward a target
// over time. The animator owns no clock: the host render loop calls
// Value with its frame time.
package animate

import (
	"math"
	"time"
)

// DefaultDuration is the rotation animation length
const DefaultDuration = time.Second

// Animator eases one scalar value from a start to a target over a fixed
// duration and fires a completion callback exactly once when it
// finishes. Starting a new animation while one is in flight is not
// supported.
type Animator struct {
	duration time.Duration

	from, to  float64
	startedAt time.Time
	running   bool

	onComplete func()
}

// New creates an animator. A non-positive duration falls back to
// DefaultDuration.
func New(duration time.Duration) *Animator {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Animator{duration: duration}
}

// Start begins interpolating from the current value toward target.
// onComplete may be nil.
func (a *Animator) Start(now time.Time, from, to float64, onComplete func()) {
	a.from = from
	a.to = to
	a.startedAt = now
	a.running = true
	a.onComplete = onComplete
}

// Running reports whether an animation is in flight
func (a *Animator) Running() bool {
	return a.running
}

// Value returns the eased value at the given frame time. When the
// animation has run its full duration the target value is returned, the
// animator stops and the completion callback fires exactly once.
func (a *Animator) Value(now time.Time) float64 {
	if !a.running {
		return a.to
	}

	elapsed := now.Sub(a.startedAt)
	if elapsed >= a.duration {
		// Capture the target first: the completion callback may start
		// the next animation on this animator
		target := a.to
		a.running = false
		if a.onComplete != nil {
			callback := a.onComplete
			a.onComplete = nil
			callback()
		}
		return target
	}

	t := float64(elapsed) / float64(a.duration)
	return a.from + (a.to-a.from)*easeInOut(t)
}

// easeInOut is a cosine ease-in/ease-out curve on [0, 1]
func easeInOut(t float64) float64 {
	return (1 - math.Cos(math.Pi*t)) / 2
}
