// Copyright 2026 Csaba Nagy <cnagy123@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package baudgen

import (
	"github.com/cnagy123/uartclk"
)

// Spec returns a part specification exposing the generator's registers
// on circuit nets.
//
//	Inputs: en, rst_n
//	Outputs: tick, running, done, status[8]
//	Function: one tick pulse every Threshold() cycles while enabled
//
// rst_n is active low. An unconnected input reads as a low level, so tie
// rst_n to the constant "true" net unless reset logic drives it. The
// returned specification steps the generator's registers when mounted, so
// it must not be mounted more than once.
//
func (g *Generator) Spec() *uartclk.PartSpec {
	return &uartclk.PartSpec{
		Name:    "BaudGen",
		Inputs:  uartclk.IO("en, rst_n"),
		Outputs: uartclk.IO("tick, running, done, status[8]"),
		Mount: func(s *uartclk.Socket) []uartclk.Component {
			en, rstN := s.Pin("en"), s.Pin("rst_n")
			tick, running, done := s.Pin("tick"), s.Pin("running"), s.Pin("done")
			status := s.Bus("status", 8)
			s.OnReset(g.Reset)
			return []uartclk.Component{
				func(c *uartclk.Circuit) {
					g.Step(c.Get(rstN), c.Get(en))
					out := g.Outputs()
					c.Set(tick, out.Tick)
					c.Set(running, out.Running)
					c.Set(done, out.Done)
					c.SetInt(status, int64(out.Status))
				},
			}
		}}
}

// Part returns the generator wired as a circuit part. See Spec for the
// pin list.
//
func (g *Generator) Part(connections string) uartclk.Part {
	return g.Spec().NewPart(connections)
}
