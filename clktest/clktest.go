// Copyright 2026 Csaba Nagy <cnagy123@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package clktest provides utilities for driving tick generators in
// tests: stimulus sequence builders, waveform measurement helpers and a
// harness comparing a circuit mounted generator against a directly
// driven one.
//
package clktest

import (
	"math/rand"

	"github.com/cnagy123/uartclk/baudgen"
)

// An Edge holds the input levels applied to a generator for one clock
// edge.
//
type Edge struct {
	RstN   bool // active low reset
	Enable bool
}

// A Stimulus is a sequence of input edges.
//
type Stimulus []Edge

// Hold returns a stimulus holding the given levels for n edges.
//
func Hold(rstN, enable bool, n int) Stimulus {
	s := make(Stimulus, n)
	for i := range s {
		s[i] = Edge{RstN: rstN, Enable: enable}
	}
	return s
}

// Enabled returns a stimulus with reset released and enable high for n
// edges.
//
func Enabled(n int) Stimulus { return Hold(true, true, n) }

// Disabled returns a stimulus with reset released and enable low for n
// edges.
//
func Disabled(n int) Stimulus { return Hold(true, false, n) }

// ResetPulse returns a stimulus asserting the active low reset for n
// edges.
//
func ResetPulse(n int) Stimulus { return Hold(false, false, n) }

// Then returns a new stimulus applying s followed by next. The receiver
// is not modified.
//
func (s Stimulus) Then(next Stimulus) Stimulus {
	out := make(Stimulus, 0, len(s)+len(next))
	out = append(out, s...)
	return append(out, next...)
}

// Random returns a stimulus of n edges with enable toggling randomly and
// occasional single cycle reset pulses.
//
func Random(rnd *rand.Rand, n int) Stimulus {
	s := make(Stimulus, n)
	for i := range s {
		s[i] = Edge{
			RstN:   rnd.Intn(16) != 0,
			Enable: rnd.Intn(2) == 0,
		}
	}
	return s
}

// ConfigWithThreshold returns a configuration dividing down to an n
// cycle tick period, so tests can use small periods instead of realistic
// baud rates.
//
func ConfigWithThreshold(n int) baudgen.Config {
	return baudgen.Config{ClockHz: n * baudgen.Oversample, Baud: 1}
}

// Drive steps g through the stimulus and returns the output record after
// every edge.
//
func Drive(g *baudgen.Generator, stim Stimulus) []baudgen.Outputs {
	out := make([]baudgen.Outputs, len(stim))
	for i, e := range stim {
		g.Step(e.RstN, e.Enable)
		out[i] = g.Outputs()
	}
	return out
}

// Ticks returns the cycle indices at which the tick pulse is asserted.
//
func Ticks(samples []baudgen.Outputs) []int {
	var ticks []int
	for i, s := range samples {
		if s.Tick {
			ticks = append(ticks, i)
		}
	}
	return ticks
}

// Periods returns the cycle distances between consecutive tick pulses,
// or nil if fewer than two ticks fired.
//
func Periods(samples []baudgen.Outputs) []int {
	t := Ticks(samples)
	if len(t) < 2 {
		return nil
	}
	p := make([]int, len(t)-1)
	for i := range p {
		p[i] = t[i+1] - t[i]
	}
	return p
}
