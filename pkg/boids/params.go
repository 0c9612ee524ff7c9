package boids

import "fmt"

// SeparationMode selects which anti-crowding formula the heading rule uses.
// It is a tagged choice so the dispatch happens once per tick, not inside
// the per-neighbor loop.
type SeparationMode string

const (
	// SeparationRoot pushes away from the most crowded side: each neighbor
	// contributes a signed sqrt(senseRange-|delta|) per axis.
	SeparationRoot SeparationMode = "root"
	// SeparationSquare always subtracts (senseRange-|delta|)^2 per axis.
	// Direction-agnostic, unlike root mode. Kept as-is from the reference
	// behavior even though the asymmetry looks unintended.
	SeparationSquare SeparationMode = "square"
)

// Valid reports whether the mode is one of the recognized values.
func (m SeparationMode) Valid() bool {
	return m == SeparationRoot || m == SeparationSquare
}

// Params is the simulation-wide tunable parameter set. Every boid observes
// the same values during a tick: the world takes one value copy at tick
// start, so an external controller can overwrite Params at any time without
// tearing a tick in progress.
type Params struct {
	// SenseRange is the distance below which another boid counts as a neighbor.
	SenseRange float64 `json:"senseRange"`

	// Rule weights. Unconstrained scalars, typically >= 0.
	SeparationWeight float64 `json:"separationWeight"`
	AlignmentWeight  float64 `json:"alignmentWeight"`
	CohesionWeight   float64 `json:"cohesionWeight"`

	// Velocity is the speed every heading is re-normalized to each tick.
	Velocity float64 `json:"velocity"`

	// NoiseAmount is the full width of the uniform per-axis heading
	// perturbation applied after each move (centered on zero).
	NoiseAmount float64 `json:"noiseAmount"`

	// Bounce switches the boundary policy from single-step wrap to
	// heading reflection.
	Bounce bool `json:"bounce"`

	SeparationMode SeparationMode `json:"separationMode"`
}

// DefaultParams returns the stock parameter snapshot.
func DefaultParams() Params {
	return Params{
		SenseRange:       50,
		SeparationWeight: 4.5,
		AlignmentWeight:  2,
		CohesionWeight:   0.7,
		Velocity:         5,
		NoiseAmount:      1,
		Bounce:           false,
		SeparationMode:   SeparationRoot,
	}
}

// Validate rejects parameter sets that would produce nonsensical geometry.
// A negative sense range would make the neighbor filter mis-signed and a
// negative velocity would flip every heading on normalization, so both are
// refused at the boundary instead of silently simulated.
func (p Params) Validate() error {
	if p.SenseRange <= 0 {
		return fmt.Errorf("senseRange must be > 0, got %v", p.SenseRange)
	}
	if p.Velocity < 0 {
		return fmt.Errorf("velocity must be >= 0, got %v", p.Velocity)
	}
	if p.NoiseAmount < 0 {
		return fmt.Errorf("noiseAmount must be >= 0, got %v", p.NoiseAmount)
	}
	if !p.SeparationMode.Valid() {
		return fmt.Errorf("unknown separationMode %q", p.SeparationMode)
	}
	return nil
}
