package particles

import (
	"image/color"
	"math/rand"
)

// Particle is a single point of the decorative field.
// Velocity, size and color are fixed at creation; only the position moves.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Color  color.Color
}

// newParticle places a particle uniformly inside a w x h box.
func newParticle(rng *rand.Rand, w, h float64, c color.Color) Particle {
	return Particle{
		X:     rng.Float64() * w,
		Y:     rng.Float64() * h,
		Size:  rng.Float64()*(MaxSize-MinSize) + MinSize,
		VX:    rng.Float64()*2*MaxSpeed - MaxSpeed,
		VY:    rng.Float64()*2*MaxSpeed - MaxSpeed,
		Color: c,
	}
}

// update moves the particle by its velocity and wraps it back into [0,w) x [0,h).
func (p *Particle) update(w, h float64) {
	p.X = wrap(p.X+p.VX, w)
	p.Y = wrap(p.Y+p.VY, h)
}

// wrap folds v into [0, bound). Anything past the far edge restarts at 0,
// anything below 0 reappears at the far edge.
func wrap(v, bound float64) float64 {
	if bound <= 0 {
		return 0
	}
	if v >= bound {
		return 0
	}
	if v < 0 {
		v += bound
		if v < 0 || v >= bound {
			return 0
		}
	}
	return v
}
