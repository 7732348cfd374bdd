// Package spawn manages the floating debris around the player: periodic spawn
// trials, drifting, despawning and pickup.
package spawn

// Periodic fires at a fixed interval of simulation time.
type Periodic struct {
	interval float64
	elapsed  float64
}

// NewPeriodic creates a timer firing every interval seconds.
// A non-positive interval never fires.
func NewPeriodic(interval float64) Periodic {
	return Periodic{interval: interval}
}

// Advance adds dt to the timer and returns how many times it fired.
func (p *Periodic) Advance(dt float64) int {
	if p.interval <= 0 || dt <= 0 {
		return 0
	}
	p.elapsed += dt
	n := 0
	for p.elapsed >= p.interval {
		p.elapsed -= p.interval
		n++
	}
	return n
}

// Reset clears accumulated time.
func (p *Periodic) Reset() {
	p.elapsed = 0
}

// Interval returns the firing interval in seconds.
func (p *Periodic) Interval() float64 {
	return p.interval
}
