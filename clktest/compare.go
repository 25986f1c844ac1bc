// Copyright 2026 Csaba Nagy <cnagy123@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package clktest

import (
	"testing"

	"github.com/cnagy123/uartclk"
	"github.com/cnagy123/uartclk/baudgen"
)

// partDelay is the number of circuit steps separating a stimulus level
// from the matching probed output record: one step for the input parts
// to drive their nets, one for the generator to register the edge.
const partDelay = 2

// ComparePart mounts a generator for cfg in a circuit, replays the
// stimulus through input parts and fails the test if the probed outputs
// ever differ from a second generator driven directly through Step.
//
func ComparePart(t *testing.T, cfg baudgen.Config, stim Stimulus) {
	t.Helper()
	if len(stim) == 0 {
		return
	}

	gc, err := baudgen.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	gd, err := baudgen.New(cfg)
	if err != nil {
		t.Fatal(err)
	}

	// past the end of the stimulus the last levels are held
	at := func(i int) Edge {
		if i < len(stim) {
			return stim[i]
		}
		return stim[len(stim)-1]
	}

	var (
		idx int
		cur baudgen.Outputs
	)
	c, err := uartclk.NewCircuit(
		uartclk.Input(func() bool { return at(idx).RstN })("out=rst_n"),
		uartclk.Input(func() bool { return at(idx).Enable })("out=en"),
		gc.Part("en=en, rst_n=rst_n, tick=tick, running=running, done=done, status[0..7]=st[0..7]"),
		uartclk.Output(func(v bool) { cur.Tick = v })("in=tick"),
		uartclk.Output(func(v bool) { cur.Running = v })("in=running"),
		uartclk.Output(func(v bool) { cur.Done = v })("in=done"),
		uartclk.OutputN(8, func(v int64) { cur.Status = baudgen.Status(v) })("in[0..7]=st[0..7]"),
	)
	if err != nil {
		t.Fatal(err)
	}

	want := Drive(gd, stim)
	for k := 0; k < len(stim)+partDelay; k++ {
		idx = k
		c.Step()
		if k < partDelay {
			// the first generator edges see the nets still at their
			// initial low levels, which reset it to its fresh state
			continue
		}
		if cur != want[k-partDelay] {
			t.Fatalf("cycle %d: part %+v, direct drive %+v", k-partDelay, cur, want[k-partDelay])
		}
	}
	t.Logf("%d components. %d steps.", c.Size(), c.Steps())
}
