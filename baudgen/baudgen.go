// Copyright 2026 Csaba Nagy <cnagy123@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package baudgen implements a cycle accurate model of a baud rate tick
// generator: a clock divider emitting a single cycle pulse 16 times per
// serial bit period, for use by UART framing logic.
//
// The generator is a Moore machine with registered outputs. Its visible
// signals are a pure function of the current state and change only on
// clock edges, never combinationally. The enable input is sampled into an
// internal register on every edge and the registered copy drives the
// transitions, so raw input glitches cannot reach the state logic.
//
// A Generator can be driven directly through its Step method, or mounted
// as a part in a uartclk.Circuit. See the package example.
//
package baudgen

import (
	"fmt"

	"github.com/pkg/errors"
)

// A State identifies one of the generator's control states.
//
type State uint8

const (
	// Idle: waiting for enable, all outputs low.
	Idle State = iota
	// Counting: dividing the clock down.
	Counting
	// ThresholdReached: the tick pulse fires for this one cycle.
	ThresholdReached
	// Done: slice boundary, enable decides whether to go round again.
	Done
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Counting:
		return "counting"
	case ThresholdReached:
		return "threshold"
	case Done:
		return "done"
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// A Status is the 8 bit tag driven on the status bus, identifying the
// current state to external diagnostic logic. StatusInvalid is reserved:
// it is driven only if the state register ever takes an undefined value,
// which signals a defect rather than a legal state.
//
type Status uint8

const (
	StatusInvalid   Status = 0x00
	StatusIdle      Status = 0x01
	StatusCounting  Status = 0x02
	StatusThreshold Status = 0x03
	StatusDone      Status = 0xff
)

func (s Status) String() string {
	switch s {
	case StatusInvalid:
		return "invalid"
	case StatusIdle:
		return "idle"
	case StatusCounting:
		return "counting"
	case StatusThreshold:
		return "threshold"
	case StatusDone:
		return "done"
	}
	return fmt.Sprintf("status(%#02x)", uint8(s))
}

// Outputs is the registered output record of a generator for one clock
// cycle.
//
type Outputs struct {
	Status  Status // state tag on the status bus
	Tick    bool   // single cycle oversampling pulse
	Running bool   // a tick slice is in progress
	Done    bool   // slice boundary marker
}

// Outputs returns the output record driven in state s. The generator is a
// Moore machine: outputs depend on the state alone.
//
func (s State) Outputs() Outputs {
	switch s {
	case Idle:
		return Outputs{Status: StatusIdle}
	case Counting:
		return Outputs{Status: StatusCounting, Running: true}
	case ThresholdReached:
		return Outputs{Status: StatusThreshold, Tick: true, Running: true}
	case Done:
		return Outputs{Status: StatusDone, Running: true, Done: true}
	}
	// undefined states drive the reserved zero status with all flags low
	return Outputs{}
}

// A Generator models the tick generator register block. All registers
// update together in Step, one call per rising clock edge. The zero
// Generator is not usable: use New.
//
type Generator struct {
	cfg   Config
	limit int // counting state occupancy in cycles
	state State
	count int
	en    bool // registered copy of the enable input
}

// New returns a Generator in the idle state for the given configuration.
// It fails if the configuration does not divide down to a workable tick
// period.
//
func New(cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "baudgen")
	}
	// A tick slice spends limit cycles counting plus one cycle each in
	// the threshold and done states, Threshold() cycles tick to tick.
	return &Generator{cfg: cfg, limit: cfg.Threshold() - 2}, nil
}

// Step advances the generator by one clock edge. rstN is the active low
// reset: while low, the edge forces the idle state with all registers
// cleared. enable is sampled into the enable register on the edge; the
// transition logic sees it one cycle later.
//
func (g *Generator) Step(rstN, enable bool) {
	if !rstN {
		g.reset()
		return
	}
	next := g.next()
	// the counter runs in the counting state and is cleared anywhere else
	if g.state == Counting {
		g.count++
	} else {
		g.count = 0
	}
	g.state = next
	g.en = enable
}

// next computes the state following the current one. enable is consulted
// only at the idle and done boundaries, never mid count, so every slice
// after the first takes the same number of cycles.
//
func (g *Generator) next() State {
	switch g.state {
	case Idle:
		if g.en {
			return Counting
		}
		return Idle
	case Counting:
		switch {
		case g.count == g.limit-1:
			return ThresholdReached
		case g.count > g.limit-1:
			// a corrupted counter folds into the slice boundary instead
			// of wedging the machine
			return Done
		}
		return Counting
	case ThresholdReached:
		return Done
	case Done:
		if g.en {
			return Counting
		}
		return Idle
	}
	// an undefined state holds itself and its zero status until reset
	return g.state
}

func (g *Generator) reset() {
	g.state = Idle
	g.count = 0
	g.en = false
}

// Reset forces the idle state with all registers cleared, independent of
// the clock.
//
func (g *Generator) Reset() { g.reset() }

// State returns the current control state.
//
func (g *Generator) State() State { return g.state }

// Status returns the status tag for the current state.
//
func (g *Generator) Status() Status { return g.state.Outputs().Status }

// Outputs returns the output record for the current state.
//
func (g *Generator) Outputs() Outputs { return g.state.Outputs() }

// Config returns the generator's configuration.
//
func (g *Generator) Config() Config { return g.cfg }

// Threshold returns the tick period in clock cycles.
//
func (g *Generator) Threshold() int { return g.cfg.Threshold() }

func (g *Generator) String() string {
	return fmt.Sprintf("%v count=%d en=%t", g.state, g.count, g.en)
}
