// Package confetti is a short-lived particle animation played when a book
// is marked completed. The animation is a plain state machine: callers feed
// it elapsed time and draw the resulting frame, so any scheduler works —
// frame ticks in the TUI, a manual loop in tests.
package confetti

import (
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// DefaultDuration is how long one celebration runs.
const DefaultDuration = 1200 * time.Millisecond

// fadeStart is the fraction of the duration after which particles fade out.
const fadeStart = 0.7

const particleCount = 120

// Particle is one piece of confetti in surface coordinates (columns/rows).
type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Rot    float64
	VRot   float64
	Alpha  float64
}

// Animation is a running celebration over a drawing surface.
type Animation struct {
	Title string

	particles []Particle
	width     int
	height    int
	duration  time.Duration
}

// New spawns a fresh particle set for a surface of the given size.
// Particles start near the top and fall with randomized velocities.
func New(title string, width, height int) *Animation {
	a := &Animation{
		Title:     title,
		width:     width,
		height:    height,
		duration:  DefaultDuration,
		particles: make([]Particle, particleCount),
	}
	for i := range a.particles {
		a.particles[i] = Particle{
			X:     rand.Float64() * float64(width),
			Y:     -rand.Float64() * float64(height) * 0.3,
			VX:    (rand.Float64() - 0.5) * 1.1,
			VY:    0.25 + rand.Float64()*0.45,
			Size:  1 + rand.Float64()*2,
			Rot:   rand.Float64() * math.Pi,
			VRot:  (rand.Float64() - 0.5) * 0.2,
			Alpha: 1,
		}
	}
	return a
}

// Duration returns the configured run time.
func (a *Animation) Duration() time.Duration {
	return a.duration
}

// Done reports whether the animation has run its course.
func (a *Animation) Done(elapsed time.Duration) bool {
	return elapsed >= a.duration
}

// Tick advances every particle by one step and applies the end-of-life fade:
// alpha drops linearly to zero across the final 30% of the duration.
func (a *Animation) Tick(elapsed time.Duration) {
	t := float64(elapsed) / float64(a.duration)
	for i := range a.particles {
		p := &a.particles[i]
		p.X += p.VX
		p.Y += p.VY
		p.Rot += p.VRot
		if t > fadeStart {
			p.Alpha = math.Max(0, 1-(t-fadeStart)/(1-fadeStart))
		}
	}
}

// Resize keeps the coordinate system aligned with the surface after the
// terminal changes size mid-run.
func (a *Animation) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if a.width > 0 {
		scale := float64(width) / float64(a.width)
		for i := range a.particles {
			a.particles[i].X *= scale
		}
	}
	a.width = width
	a.height = height
}

// Particles exposes the current particle set.
func (a *Animation) Particles() []Particle {
	return a.particles
}

var confettiColors = []lipgloss.Color{
	lipgloss.Color("205"), // pink
	lipgloss.Color("220"), // gold
	lipgloss.Color("86"),  // aqua
	lipgloss.Color("212"), // rose
	lipgloss.Color("155"), // green
	lipgloss.Color("111"), // blue
}

// Frame renders the particle set onto a rune grid sized to the surface.
// Faded particles render dim; fully faded ones are not drawn at all.
func (a *Animation) Frame() string {
	if a.width <= 0 || a.height <= 0 {
		return ""
	}
	type cell struct {
		r     rune
		color lipgloss.Color
		faint bool
	}
	grid := make([]cell, a.width*a.height)

	for i := range a.particles {
		p := &a.particles[i]
		if p.Alpha <= 0.05 {
			continue
		}
		x, y := int(p.X), int(p.Y)
		if x < 0 || x >= a.width || y < 0 || y >= a.height {
			continue
		}
		grid[y*a.width+x] = cell{
			r:     glyph(p),
			color: confettiColors[i%len(confettiColors)],
			faint: p.Alpha < 0.5,
		}
	}

	var b strings.Builder
	for y := 0; y < a.height; y++ {
		for x := 0; x < a.width; x++ {
			c := grid[y*a.width+x]
			if c.r == 0 {
				b.WriteByte(' ')
				continue
			}
			style := lipgloss.NewStyle().Foreground(c.color)
			if c.faint {
				style = style.Faint(true)
			}
			b.WriteString(style.Render(string(c.r)))
		}
		if y < a.height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// glyph picks a rune by particle size and rotation quadrant, which reads as
// tumbling at terminal resolution.
func glyph(p *Particle) rune {
	if p.Size < 1.7 {
		return '·'
	}
	if int(p.Rot/(math.Pi/2))%2 == 0 {
		return '▪'
	}
	return '▴'
}
