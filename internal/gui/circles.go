package gui

import (
	"math/rand/v2"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	circleLifetime  = 4 * time.Second
	circleMinRadius = 18
	circleMaxRadius = 34
)

type circle struct {
	// Position is relative to the content area so window resizes and moves
	// do not strand circles.
	relX, relY float32
	radius     float32
	remaining  time.Duration
}

// circleField is the click-the-circles busywork inside the game windows.
// Circles spawn in waves, shrink as they age, and pop on click. Popping
// feeds the vanity counter only.
type circleField struct {
	rng     *rand.Rand
	circles []circle
	popped  int
	missed  int
}

func newCircleField(rng *rand.Rand) *circleField {
	return &circleField{rng: rng}
}

// SpawnWave adds n circles at random positions, padded away from the edges.
func (f *circleField) SpawnWave(n int) {
	for i := 0; i < n; i++ {
		r := circleMinRadius + f.rand()*(circleMaxRadius-circleMinRadius)
		f.circles = append(f.circles, circle{
			relX:      0.1 + f.rand()*0.8,
			relY:      0.15 + f.rand()*0.7,
			radius:    r,
			remaining: circleLifetime,
		})
	}
}

func (f *circleField) rand() float32 {
	if f.rng == nil {
		return 0.5
	}
	return f.rng.Float32()
}

// Advance ages circles and drops the ones that timed out.
func (f *circleField) Advance(delta time.Duration) {
	kept := f.circles[:0]
	for _, c := range f.circles {
		c.remaining -= delta
		if c.remaining <= 0 {
			f.missed++
			continue
		}
		kept = append(kept, c)
	}
	f.circles = kept
}

// ClickAt pops the first circle under the pointer and reports whether one
// was hit. Coordinates are absolute; area maps them back to relative space.
func (f *circleField) ClickAt(p rl.Vector2, area rl.Rectangle) bool {
	for i, c := range f.circles {
		cx := area.X + c.relX*area.Width
		cy := area.Y + c.relY*area.Height
		dx := p.X - cx
		dy := p.Y - cy
		r := c.currentRadius()
		if dx*dx+dy*dy <= r*r {
			f.circles = append(f.circles[:i], f.circles[i+1:]...)
			f.popped++
			return true
		}
	}
	return false
}

func (c circle) currentRadius() float32 {
	frac := float32(c.remaining) / float32(circleLifetime)
	if frac < 0.2 {
		frac = 0.2
	}
	return c.radius * frac
}

func (f *circleField) Active() int { return len(f.circles) }

func (f *circleField) Popped() int { return f.popped }

func (f *circleField) draw(area rl.Rectangle, clr rl.Color) {
	for _, c := range f.circles {
		cx := area.X + c.relX*area.Width
		cy := area.Y + c.relY*area.Height
		r := c.currentRadius()
		rl.DrawCircle(int32(cx), int32(cy), r, rl.Fade(clr, 0.35))
		rl.DrawCircleLines(int32(cx), int32(cy), r, clr)
	}
}
