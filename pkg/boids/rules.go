package boids

import (
	"math"

	"github.com/lao-tseu-is-alive/go-boids2d/pkg/geometry"
)

// separationFunc is the per-axis anti-crowding contribution of one neighbor.
// Both selectable formulas share this signature so the mode is resolved once
// per tick instead of branching inside the neighbor loop.
type separationFunc func(self, other, senseRange float64) float64

func (m SeparationMode) contribution() separationFunc {
	if m == SeparationSquare {
		return squareSeparation
	}
	return rootSeparation
}

// rootSeparation biases the push away from the side a neighbor sits on,
// with nonlinear weight growing as the gap closes. A neighbor at an equal
// coordinate counts as the positive side.
func rootSeparation(self, other, senseRange float64) float64 {
	rad := senseRange - math.Abs(self-other)
	if rad < 0 {
		// The neighbor filter keeps |delta| below senseRange; this only
		// catches float residue at the exact boundary.
		rad = 0
	}
	if other < self {
		return -math.Sqrt(rad)
	}
	return math.Sqrt(rad)
}

// squareSeparation always subtracts, whichever side the neighbor is on.
// Asymmetric with root mode; preserved from the reference behavior.
func squareSeparation(self, other, senseRange float64) float64 {
	d := senseRange - math.Abs(self-other)
	return -d * d
}

// AdjustedHeading computes the boid's next heading from its neighbors: the
// heading is pushed away from the anti-crowd signal, pulled toward the mean
// neighbor position, and steered toward the mean neighbor heading, each
// scaled by its weight. With no neighbors there is no rule contribution.
// Either way the result is re-normalized so its magnitude is exactly
// p.Velocity, clamping speed every tick regardless of rule outputs; a
// zero-magnitude heading stays zero (a stationary boid, not an error).
func AdjustedHeading(self State, neighbors []State, p Params) geometry.Vector2D {
	return adjustedHeading(self, neighbors, p, p.SeparationMode.contribution())
}

func adjustedHeading(self State, neighbors []State, p Params, sep separationFunc) geometry.Vector2D {
	h := self.Heading

	if n := float64(len(neighbors)); n > 0 {
		var meanPos, meanHead, antiCrowd geometry.Vector2D
		for _, nb := range neighbors {
			meanPos = meanPos.Add(nb.Pos)
			meanHead = meanHead.Add(nb.Heading)
			antiCrowd.X += sep(self.Pos.X, nb.Pos.X, p.SenseRange)
			antiCrowd.Y += sep(self.Pos.Y, nb.Pos.Y, p.SenseRange)
		}
		meanPos = meanPos.Mul(1 / n)
		meanHead = meanHead.Mul(1 / n)
		antiCrowd = antiCrowd.Mul(1 / n)

		h = h.Sub(antiCrowd.Mul(p.SeparationWeight)).
			Add(meanPos.Sub(self.Pos).Mul(p.CohesionWeight)).
			Add(meanHead.Mul(p.AlignmentWeight))
	}

	mag := h.Len()
	if mag == 0 {
		return geometry.Vector2D{}
	}
	return h.Mul(p.Velocity / mag)
}
