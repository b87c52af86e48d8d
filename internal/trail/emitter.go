package trail

import "math"

// Emitter turns pointer samples into spawn batches so that spawn density
// follows distance travelled, not event rate.
type Emitter struct {
	spacing float64
	buffer  float64 // unconsumed travel, always in [0, spacing)
	lastX   float64
	lastY   float64
}

// NewEmitter returns an emitter whose last position is the origin.
// Density <= 0 disables spawning.
func NewEmitter(density float64) *Emitter {
	spacing := math.Inf(1)
	if density > 0 {
		spacing = BaseSpacing / density
	}
	return &Emitter{spacing: spacing}
}

// Spacing is the travel distance consumed by one batch.
func (e *Emitter) Spacing() float64 { return e.spacing }

// Buffered is the travel carried over to the next sample.
func (e *Emitter) Buffered() float64 { return e.buffer }

// Sample records a pointer position and returns how many batches to spawn
// along with the motion vector since the previous sample.
func (e *Emitter) Sample(x, y float64) (batches int, vx, vy float64) {
	vx = x - e.lastX
	vy = y - e.lastY
	e.lastX, e.lastY = x, y

	e.buffer += math.Hypot(vx, vy)
	if math.IsInf(e.spacing, 1) {
		e.buffer = 0
		return 0, vx, vy
	}
	if e.buffer >= e.spacing {
		batches = int(math.Floor(e.buffer / e.spacing))
		e.buffer = math.Mod(e.buffer, e.spacing)
	}
	return batches, vx, vy
}
