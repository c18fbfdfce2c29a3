package gamemath

import (
	"math"
	"time"
)

// Clamp constrains v to [lo, hi]. When the range is inverted lo wins.
func Clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Decelerate reduces a speed magnitude linearly toward zero without overshoot.
func Decelerate(speed, step float64) float64 {
	if speed > step {
		return speed - step
	}
	return 0
}

// Rect is an integer axis-aligned bounding box.
type Rect struct {
	X, Y, W, H int
}

// Overlaps reports whether two AABBs share at least one pixel.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Center returns the center point of the box.
func (r Rect) Center() (float64, float64) {
	return float64(r.X) + float64(r.W)/2, float64(r.Y) + float64(r.H)/2
}

// DeltaTicks converts elapsed wall-clock time into tick units. The result is
// never below 1 and never above maxTicks.
func DeltaTicks(elapsed, nominal time.Duration, maxTicks float64) float64 {
	if nominal <= 0 {
		return 1
	}
	dt := float64(elapsed) / float64(nominal)
	if dt < 1 {
		dt = 1
	}
	if maxTicks >= 1 && dt > maxTicks {
		dt = maxTicks
	}
	return dt
}

// Direction returns the unit vector from (fromX, fromY) toward (toX, toY).
func Direction(fromX, fromY, toX, toY float64) (float64, float64) {
	dx, dy := toX-fromX, toY-fromY
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return 0, 0
	}
	return dx / dist, dy / dist
}
