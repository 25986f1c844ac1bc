// Copyright 2026 Csaba Nagy <cnagy123@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package uartclk

import (
	"fmt"
	"strconv"
	"strings"
)

// A Trace accumulates named per-cycle signal samples from probe parts,
// like a logic analyzer attached to the circuit nets.
//
// The zero value is an empty trace ready for use:
//
//	var tr Trace
//	c, err := NewCircuit(
//		...,
//		tr.Probe("tick")("in=tick"),
//	)
//
// Columns appear in the order the probes were created.
//
type Trace struct {
	cols []*traceCol
}

type traceCol struct {
	name    string
	samples []int64
}

func (tr *Trace) addCol(name string) *traceCol {
	col := &traceCol{name: name}
	tr.cols = append(tr.cols, col)
	return col
}

// Probe returns a part recording the state of its input pin under the
// given name on every cycle.
//
func (tr *Trace) Probe(name string) NewPartFn {
	col := tr.addCol(name)
	p := &PartSpec{
		Name:   "probe",
		Inputs: []string{"in"},
		Mount: func(s *Socket) []Component {
			in := s.Pin("in")
			return []Component{
				func(c *Circuit) {
					var v int64
					if c.Get(in) {
						v = 1
					}
					col.samples = append(col.samples, v)
				},
			}
		}}
	return p.NewPart
}

// ProbeN returns a part recording the value of a bus of the given width
// under the given name on every cycle, least significant bit first.
//
func (tr *Trace) ProbeN(name string, bits int) NewPartFn {
	col := tr.addCol(name)
	bs := strconv.Itoa(bits)
	p := &PartSpec{
		Name:   "probe" + bs,
		Inputs: IO("in[" + bs + "]"),
		Mount: func(s *Socket) []Component {
			pins := s.Bus("in", bits)
			return []Component{
				func(c *Circuit) {
					col.samples = append(col.samples, c.GetInt(pins))
				},
			}
		}}
	return p.NewPart
}

// Len returns the number of recorded cycles.
//
func (tr *Trace) Len() int {
	n := 0
	for _, col := range tr.cols {
		if len(col.samples) > n {
			n = len(col.samples)
		}
	}
	return n
}

// Samples returns the samples recorded under the given name, or nil if
// no probe records it.
//
func (tr *Trace) Samples(name string) []int64 {
	for _, col := range tr.cols {
		if col.name == name {
			return col.samples
		}
	}
	return nil
}

// String formats the trace as a text table with one row per cycle.
//
func (tr *Trace) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%5s", "cycle")
	for _, col := range tr.cols {
		fmt.Fprintf(&b, " %*s", colWidth(col), col.name)
	}
	b.WriteByte('\n')
	for i, n := 0, tr.Len(); i < n; i++ {
		fmt.Fprintf(&b, "%5d", i)
		for _, col := range tr.cols {
			var v int64
			if i < len(col.samples) {
				v = col.samples[i]
			}
			fmt.Fprintf(&b, " %*d", colWidth(col), v)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func colWidth(col *traceCol) int {
	if n := len(col.name); n > 3 {
		return n
	}
	return 3
}
