package component

import (
	"math/rand/v2"
	"time"

	"github.com/milk9111/shipwreck/common"
)

// DefaultMotionDuration is the travel time of one waypoint leg.
const DefaultMotionDuration = 4 * time.Second

// MotionController drifts a ship between random on-screen waypoints with
// ease-out interpolation. Reaching the end of a leg retargets immediately.
type MotionController struct {
	Start     common.Vec2
	End       common.Vec2
	StartTime time.Duration
	Duration  time.Duration
	Position  common.Vec2

	bounds BoundaryCheck
	rng    *rand.Rand
}

// NewMotionController starts the first leg at spawn. The first leg begins
// wherever the ship was placed, which may be off screen.
func NewMotionController(spawn common.Vec2, now, duration time.Duration, bounds BoundaryCheck, rng *rand.Rand) *MotionController {
	if duration <= 0 {
		duration = DefaultMotionDuration
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(now), 0x5eed))
	}
	m := &MotionController{
		Start:    spawn,
		End:      spawn,
		Duration: duration,
		Position: spawn,
		bounds:   bounds,
		rng:      rng,
	}
	m.retarget(now)
	return m
}

// Tick advances the ship to its position at now and returns it.
func (m *MotionController) Tick(now time.Duration) common.Vec2 {
	if m == nil {
		return common.Vec2{}
	}
	u := m.progress(now)
	if u >= 1 {
		m.retarget(now)
		u = 0
	}
	m.Position = common.LerpVec(m.Start, m.End, common.EaseOutQuad(u))
	return m.Position
}

func (m *MotionController) progress(now time.Duration) float64 {
	u := float64(now-m.StartTime) / float64(m.Duration)
	if u < 0 {
		return 0
	}
	return u
}

// AllowedRect is the rectangle waypoints are picked from.
func (m *MotionController) AllowedRect() common.Rect {
	w, h := m.allowedRange()
	return common.CenteredRect(w, h)
}

func (m *MotionController) allowedRange() (float64, float64) {
	if m.bounds == nil {
		return 0, 0
	}
	w, h := m.bounds.AllowedRange()
	return max(w, 0), max(h, 0)
}

func (m *MotionController) retarget(now time.Duration) {
	m.Start = m.End
	w, h := m.allowedRange()
	m.End = common.Vec2{
		X: -w + m.rng.Float64()*2*w,
		Y: -h + m.rng.Float64()*2*h,
	}
	m.StartTime = now
}
