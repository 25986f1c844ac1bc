// Copyright 2026 Csaba Nagy <cnagy123@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package uartclk

import (
	"strconv"
)

// Input returns a part driving a single pin from the return value of f.
// A level returned by f during one cycle is seen by the reading parts on
// the following cycle.
//
func Input(f func() bool) NewPartFn {
	p := &PartSpec{
		Name:    "Input",
		Inputs:  nil,
		Outputs: []string{"out"},
		Mount: func(s *Socket) []Component {
			out := s.Pin("out")
			return []Component{
				func(c *Circuit) { c.Set(out, f()) },
			}
		}}
	return p.NewPart
}

// Output returns a part calling f with the state of its input pin on
// every cycle.
//
func Output(f func(value bool)) NewPartFn {
	p := &PartSpec{
		Name:    "Output",
		Inputs:  []string{"in"},
		Outputs: nil,
		Mount: func(s *Socket) []Component {
			in := s.Pin("in")
			return []Component{
				func(c *Circuit) { f(c.Get(in)) },
			}
		}}
	return p.NewPart
}

// InputN returns a part driving a bus of the given width from the return
// value of f, least significant bit first.
//
func InputN(bits int, f func() int64) NewPartFn {
	bs := strconv.Itoa(bits)
	return (&PartSpec{
		Name:    "Input" + bs,
		Inputs:  nil,
		Outputs: IO("out[" + bs + "]"),
		Mount: func(s *Socket) []Component {
			pins := s.Bus("out", bits)
			return []Component{
				func(c *Circuit) { c.SetInt(pins, f()) },
			}
		}}).NewPart
}

// OutputN returns a part calling f with the value of a bus of the given
// width, least significant bit first.
//
func OutputN(bits int, f func(int64)) NewPartFn {
	bs := strconv.Itoa(bits)
	return (&PartSpec{
		Name:    "Output" + bs,
		Inputs:  IO("in[" + bs + "]"),
		Outputs: nil,
		Mount: func(s *Socket) []Component {
			pins := s.Bus("in", bits)
			return []Component{
				func(c *Circuit) { f(c.GetInt(pins)) },
			}
		}}).NewPart
}
