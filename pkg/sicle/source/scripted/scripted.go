// Package scripted provides an in-memory input source driven by code rather
// than devices. It is used by tests, replays and headless tools.
//
//	src := scripted.New()
//	r := router.New(src)
//
//	src.Press(keys.Space)
//	src.Poll()
//	r.Tick() // down + held listeners for Space run
//
//	src.Poll()
//	r.Tick() // held only
//
//	src.Release(keys.Space)
//	src.Poll()
//	r.Tick() // up listeners run
package scripted

import (
	"github.com/sicle-games/sicle/pkg/sicle/internal/edge"
	"github.com/sicle-games/sicle/pkg/sicle/keys"
)

// Source records presses, releases and axis values and publishes them one
// frame at a time.
type Source struct {
	edges *edge.Tracker
	axes  map[keys.Axis]float64
	frame int
}

func New() *Source {
	return &Source{
		edges: edge.New(),
		axes:  make(map[keys.Axis]float64),
	}
}

// Press marks keys as going down before the next Poll.
func (s *Source) Press(ks ...keys.Key) {
	for _, k := range ks {
		s.edges.Set(k, true)
	}
}

// Release marks keys as going up before the next Poll.
func (s *Source) Release(ks ...keys.Key) {
	for _, k := range ks {
		s.edges.Set(k, false)
	}
}

// Tap presses and releases keys within the same frame.
func (s *Source) Tap(ks ...keys.Key) {
	s.Press(ks...)
	s.Release(ks...)
}

// SetAxis sets an axis value. It takes effect immediately and persists until changed.
func (s *Source) SetAxis(a keys.Axis, v float64) {
	s.axes[a] = v
}

// Poll starts a new frame.
func (s *Source) Poll() {
	s.edges.Advance()
	s.frame++
}

// Frame returns the number of Poll calls so far.
func (s *Source) Frame() int {
	return s.frame
}

func (s *Source) KeyDown(k keys.Key) bool {
	return s.edges.Down(k)
}

func (s *Source) KeyHeld(k keys.Key) bool {
	return s.edges.Held(k)
}

func (s *Source) KeyUp(k keys.Key) bool {
	return s.edges.Up(k)
}

func (s *Source) Axis(a keys.Axis) float64 {
	return s.axes[a]
}
