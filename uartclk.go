// Copyright 2026 Csaba Nagy <cnagy123@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package uartclk

import (
	"github.com/pkg/errors"
)

// A Component updates a part's output pins from the state of its input
// pins. It runs exactly once per clock cycle and must drive each of its
// output pins every time it runs.
//
type Component func(c *Circuit)

// A MountFn mounts a part into socket s. MountFns query the socket for
// assigned pin numbers and return closures around these pin numbers.
//
// For example, an inverter can be defined like this:
//
//	notSpec := &PartSpec{
//		Name:    "Not",
//		Inputs:  IO("in"),
//		Outputs: IO("out"),
//		Mount: func(s *Socket) []Component {
//			in, out := s.Pin("in"), s.Pin("out")
//			return []Component{
//				func(c *Circuit) { c.Set(out, !c.Get(in)) },
//			}
//		}}
//
type MountFn func(s *Socket) []Component

// A PartSpec wraps a part specification (its blueprint).
//
// Custom parts are implemented by creating a PartSpec and using its
// NewPart method as a NewPartFn:
//
//	var not = notSpec.NewPart
//
// or:
//
//	func Not(c string) Part { return notSpec.NewPart(c) }
//
type PartSpec struct {
	// Part name.
	Name string
	// Input pin names. Must be distinct pin names.
	// Use the IO() function to expand an input description like
	// "a, b, bus[2]" to []string{"a", "b", "bus[0]", "bus[1]"}.
	Inputs []string
	// Output pin names. Must be distinct pin names.
	// Use the IO() function to expand an output description string.
	Outputs []string
	// Mount function (see MountFn).
	Mount MountFn
}

// NewPart wraps p with the given connections into a Part ready to be
// passed to NewCircuit. It panics if the connection string cannot be
// parsed; wiring errors are reported by NewCircuit.
//
func (p *PartSpec) NewPart(connections string) Part {
	conns, err := ParseConnections(connections)
	if err != nil {
		panic(err)
	}
	return Part{p, conns}
}

// A NewPartFn is a function that takes a connection configuration and
// returns a new Part. See ParseConnections for the syntax of the
// connection string.
//
type NewPartFn func(connections string) Part

// A Part wraps a part specification together with its connections within
// a circuit.
//
type Part struct {
	*PartSpec
	Conns []Connection
}

// Circuit is a runnable circuit simulation.
//
// Signal state is double buffered: during a step every Component reads
// the states left by the previous step and writes the next ones, so parts
// behave like registers and update order does not matter. One call to
// Step is one rising edge of the reference clock.
//
type Circuit struct {
	s0     []bool // current frame
	s1     []bool // next frame
	comps  []Component
	count  int // allocated pin count
	steps  uint64
	resets []func()
}

// NewCircuit builds a new circuit from the given parts.
//
// Part inputs left unconnected read the constant False net. Every net
// must be driven by at most one part output.
//
func NewCircuit(parts ...Part) (*Circuit, error) {
	if len(parts) == 0 {
		return nil, errors.New("empty part list")
	}
	c := &Circuit{count: cstCount}
	wr := newWiring(c)
	for i := range parts {
		up, err := wr.mount(&parts[i])
		if err != nil {
			return nil, errors.Wrap(err, "failed to wire part "+parts[i].Name)
		}
		c.comps = append(c.comps, up...)
	}
	c.s0 = make([]bool, c.count)
	c.s1 = make([]bool, c.count)
	c.s0[cstTrue] = true
	c.s1[cstTrue] = true
	return c, nil
}

// Get returns the state of pin n. The value of n should be obtained in a
// MountFn by a call to one of the Socket methods.
//
func (c *Circuit) Get(n int) bool {
	return c.s0[n]
}

// Set sets the state s of pin n. The value of n should be obtained in a
// MountFn by a call to one of the Socket methods.
//
func (c *Circuit) Set(n int, s bool) {
	c.s1[n] = s
}

// Toggle inverts the state of pin n.
//
func (c *Circuit) Toggle(n int) {
	c.s1[n] = !c.s0[n]
}

// GetInt returns the value carried by the given bus pins, with pins[0]
// the least significant bit.
//
func (c *Circuit) GetInt(pins []int) int64 {
	var v int64
	for i, n := range pins {
		if c.s0[n] {
			v |= 1 << uint(i)
		}
	}
	return v
}

// SetInt sets the given bus pins to the value v, with pins[0] the least
// significant bit.
//
func (c *Circuit) SetInt(pins []int, v int64) {
	for i, n := range pins {
		c.s1[n] = v&(1<<uint(i)) != 0
	}
}

// Step advances the simulation by one clock cycle.
//
func (c *Circuit) Step() {
	if c.s0[cstFalse] || !c.s0[cstTrue] {
		panic("true or false constants have been overwritten")
	}
	for _, f := range c.comps {
		f(c)
	}
	c.steps++
	c.s0, c.s1 = c.s1, c.s0
}

// Run advances the simulation by n clock cycles.
//
func (c *Circuit) Run(n int) {
	for i := 0; i < n; i++ {
		c.Step()
	}
}

// Reset clears every net and snaps parts with internal registers back to
// their power-on state, like an asynchronous reset line tied to every
// part. The step counter is not affected.
//
func (c *Circuit) Reset() {
	for i := range c.s0 {
		c.s0[i] = false
		c.s1[i] = false
	}
	c.s0[cstTrue] = true
	c.s1[cstTrue] = true
	for _, f := range c.resets {
		f()
	}
}

// Steps returns the number of clock cycles elapsed since the circuit was
// built.
//
func (c *Circuit) Steps() uint64 {
	return c.steps
}

// Size returns the component count in the circuit.
//
func (c *Circuit) Size() int { return len(c.comps) }

// allocPin allocates a new pin and returns its number.
//
func (c *Circuit) allocPin() int {
	n := c.count
	c.count++
	return n
}
