package trail

// ParticleSet is the unordered live collection owned by one controller.
type ParticleSet struct {
	P []Particle
}

func NewParticleSet(capacity int) *ParticleSet {
	if capacity < 0 {
		capacity = 0
	}
	return &ParticleSet{P: make([]Particle, 0, capacity)}
}

func (ps *ParticleSet) Len() int { return len(ps.P) }

func (ps *ParticleSet) Add(p Particle) {
	ps.P = append(ps.P, p)
}

func (ps *ParticleSet) Clear() {
	ps.P = ps.P[:0]
}

// Release drops the backing array.
func (ps *ParticleSet) Release() {
	ps.P = nil
}

// Step updates every particle once, hands survivors to draw and removes the
// rest with swap-with-last. It returns the number removed.
//
// A swapped-in particle comes from the unvisited tail, so it is updated at
// its new index on the next iteration: nothing is skipped or visited twice.
func (ps *ParticleSet) Step(fadeSpeed float64, draw func(p *Particle)) int {
	removed := 0
	for i := 0; i < len(ps.P); {
		p := &ps.P[i]
		p.Update(fadeSpeed)

		if !p.Alive() {
			last := len(ps.P) - 1
			ps.P[i] = ps.P[last]
			ps.P[last] = Particle{}
			ps.P = ps.P[:last]
			removed++
			continue
		}

		if draw != nil {
			draw(p)
		}
		i++
	}
	return removed
}
