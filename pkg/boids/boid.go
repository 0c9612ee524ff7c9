package boids

import (
	"math"
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-boids2d/pkg/geometry"
)

// Boid is a single agent on the bounded plane. Heading is not a unit
// vector: its magnitude is the boid's current speed, re-normalized to the
// velocity parameter on every heading adjustment.
type Boid struct {
	ID      int
	Pos     geometry.Vector2D
	Heading geometry.Vector2D
}

// State is a value copy of a boid, used as the immutable pre-tick view
// during the read pass and as the observation snapshot for renderers.
type State struct {
	ID      int
	Pos     geometry.Vector2D
	Heading geometry.Vector2D
}

// New creates a boid at a uniform random position inside [0,bound]^2 with
// a random heading direction at the given speed.
func New(id int, bound, velocity float64) *Boid {
	phi := rand.Float64() * 2 * math.Pi
	return &Boid{
		ID: id,
		Pos: geometry.Vector2D{
			X: rand.Float64() * bound,
			Y: rand.Float64() * bound,
		},
		Heading: geometry.NewVectorPolar(velocity, phi),
	}
}

// State returns a value copy of the boid.
func (b *Boid) State() State {
	return State{ID: b.ID, Pos: b.Pos, Heading: b.Heading}
}

// Neighbors returns the boids within sensing range of self, self excluded.
// A rough axis-aligned check rejects distant boids before the exact
// Euclidean test. The distance test is strict: a boid sitting exactly at
// senseRange is not a neighbor. Exclusion is by ID, not by distance, so a
// distinct boid at the exact same position still counts.
func Neighbors(self State, flock []State, senseRange float64) []State {
	var near []State
	for _, other := range flock {
		// Rough (but fast) check
		if math.Abs(other.Pos.X-self.Pos.X) >= senseRange ||
			math.Abs(other.Pos.Y-self.Pos.Y) >= senseRange {
			continue
		}
		// Actual check
		if self.Pos.DistanceTo(other.Pos) < senseRange && other.ID != self.ID {
			near = append(near, other)
		}
	}
	return near
}

// Move integrates the heading into the position and applies the boundary
// policy, per axis. When addNoise is set, a uniform perturbation centered
// on zero with full width p.NoiseAmount is added to the heading; the speed
// is not re-normalized until the next adjustment pass, so noise transiently
// changes it.
//
// Wrap mode corrects by a single bound-length, not modulo: a boid displaced
// by more than the bound in one tick is under-corrected. Known approximation
// inherited from the reference behavior, harmless while velocity is far
// below the bound. Bounce mode only reflects the heading; the position may
// transiently sit outside the bounds until the reversed motion brings it back.
func (b *Boid) Move(bound float64, addNoise bool, p Params) {
	b.Pos.X, b.Heading.X = moveAxis(b.Pos.X, b.Heading.X, bound, addNoise, p)
	b.Pos.Y, b.Heading.Y = moveAxis(b.Pos.Y, b.Heading.Y, bound, addNoise, p)
}

func moveAxis(pos, heading, bound float64, addNoise bool, p Params) (float64, float64) {
	pos += heading
	if addNoise {
		heading += rand.Float64()*p.NoiseAmount - p.NoiseAmount/2
	}
	if p.Bounce {
		if pos > bound || pos < 0 {
			heading = -heading
		}
		return pos, heading
	}
	if pos > bound {
		pos -= bound
	} else if pos < 0 {
		pos = bound - pos
	}
	return pos, heading
}
