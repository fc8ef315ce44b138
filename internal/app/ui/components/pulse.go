package components

import (
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
)

const (
	pulseIdle = "◯"
	pulseBeat = "◉"

	pulseAngularFrequency = 8.0
	pulseDampingRatio     = 0.7
	pulseFrameThreshold   = 0.3
)

// phase is one step of the heartbeat: a spring target held for a number of ticks
type phase struct {
	target float64
	ticks  int
}

// heartbeat is the "lub-DUB" rhythm: rest, beat, gap, beat, recovery
var heartbeat = []phase{
	{target: 0, ticks: 2},
	{target: 1, ticks: 1},
	{target: 0, ticks: 1},
	{target: 1, ticks: 1},
	{target: 0, ticks: 3},
}

// Pulse animates the fetch indicator with spring physics
type Pulse struct {
	spring   harmonica.Spring
	position float64
	velocity float64
	active   bool
	phase    int
	elapsed  int
}

// NewPulse creates an inactive pulse animator
func NewPulse() *Pulse {
	return &Pulse{
		spring: harmonica.NewSpring(harmonica.FPS(UITicksPerSecond), pulseAngularFrequency, pulseDampingRatio),
	}
}

// Start begins the animation
func (p *Pulse) Start() {
	p.active = true
}

// Stop ends the animation and rewinds it
func (p *Pulse) Stop() {
	*p = Pulse{spring: p.spring}
}

// Update advances the animation by one UI tick
func (p *Pulse) Update() {
	if !p.active {
		return
	}

	p.elapsed++
	if p.elapsed >= heartbeat[p.phase].ticks {
		p.phase = (p.phase + 1) % len(heartbeat)
		p.elapsed = 0
	}

	p.position, p.velocity = p.spring.Update(p.position, p.velocity, heartbeat[p.phase].target)
}

// Frame returns the glyph for the current spring position
func (p *Pulse) Frame() string {
	if !p.active || p.position < pulseFrameThreshold {
		return pulseIdle
	}

	return pulseBeat
}

// Render returns the styled frame
func (p *Pulse) Render(style lipgloss.Style) string {
	return style.Render(p.Frame())
}

// IsActive returns whether the animation is running
func (p *Pulse) IsActive() bool {
	return p.active
}
