// Copyright 2026 Csaba Nagy <cnagy123@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command baudtick traces a baud rate tick generator over a number of
// clock cycles and prints the sampled waveform as a table, followed by
// the observed tick periods.
//
// The -enable-at, -disable-at and -reset-at flags place single input
// events on the timeline. Pass -logtostderr to see the log output.
package main

import (
	"flag"
	"fmt"

	"github.com/golang/glog"

	"github.com/cnagy123/uartclk"
	"github.com/cnagy123/uartclk/baudgen"
)

var (
	clockHz   = flag.Int("clock", baudgen.DefaultClockHz, "reference clock frequency in Hz")
	baud      = flag.Int("baud", baudgen.DefaultBaud, "target baud rate in Bd")
	cycles    = flag.Int("cycles", 260, "number of clock cycles to trace")
	enableAt  = flag.Int("enable-at", 2, "cycle at which enable rises, -1 to keep it low")
	disableAt = flag.Int("disable-at", -1, "cycle at which enable drops again, -1 to keep it up")
	resetAt   = flag.Int("reset-at", -1, "cycle at which reset pulses low for one cycle, -1 for none")
)

func main() {
	flag.Parse()
	defer glog.Flush()

	g, err := baudgen.New(baudgen.Config{ClockHz: *clockHz, Baud: *baud})
	if err != nil {
		glog.Exitf("%v", err)
	}
	glog.Infof("configuration: %v", g.Config())

	var (
		tr    uartclk.Trace
		cycle int
	)
	enable := func() bool {
		if *enableAt < 0 || cycle < *enableAt {
			return false
		}
		return *disableAt < 0 || cycle < *disableAt
	}
	resetN := func() bool {
		return *resetAt < 0 || cycle != *resetAt
	}

	c, err := uartclk.NewCircuit(
		uartclk.Input(enable)("out=en"),
		uartclk.Input(resetN)("out=rst_n"),
		g.Part("en=en, rst_n=rst_n, tick=tick, running=running, done=done, status[0..7]=st[0..7]"),
		tr.Probe("en")("in=en"),
		tr.Probe("rst_n")("in=rst_n"),
		tr.Probe("tick")("in=tick"),
		tr.Probe("running")("in=running"),
		tr.Probe("done")("in=done"),
		tr.ProbeN("status", 8)("in[0..7]=st[0..7]"),
	)
	if err != nil {
		glog.Exitf("%v", err)
	}

	for ; cycle < *cycles; cycle++ {
		c.Step()
	}

	fmt.Print(tr.String())

	prev := -1
	for i, v := range tr.Samples("tick") {
		if v == 0 {
			continue
		}
		if prev < 0 {
			fmt.Printf("tick at cycle %d\n", i)
		} else {
			fmt.Printf("tick at cycle %d, period %d\n", i, i-prev)
		}
		prev = i
	}
	if prev < 0 {
		fmt.Println("no tick pulse recorded")
	}
}
