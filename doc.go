/*
Package uartclk provides a cycle-accurate simulation of the baud rate
generation stage of a serial transceiver, together with the small circuit
kernel it runs in.

The kernel takes a register transfer view of a synchronous design: every
signal is a boolean net, every part updates its output pins once per clock
cycle, and Circuit.Step advances the whole circuit by exactly one rising
edge of the reference clock. Parts are described by a PartSpec and wired to
named nets with a connection string:

	g, _ := baudgen.New(baudgen.DefaultConfig())
	c, _ := uartclk.NewCircuit(
		uartclk.Input(func() bool { return enable })("out=en"),
		g.Part("en=en, rst_n=true, tick=tick, running=run, done=done, status[0..7]=st[0..7]"),
		uartclk.Output(func(v bool) { tick = v })("in=tick"),
	)
	c.Run(200)

Signal state is double buffered, so parts behave like registers: a level
driven by an Input part during cycle n is sampled by the reading parts on
cycle n+1, and a part's outputs become visible one cycle after the inputs
that produced them.

The baudgen package implements the tick generator itself and can also be
driven directly, one edge at a time, without a circuit. The clktest package
provides stimulus and waveform helpers for tests, and cmd holds a small
trace viewer.
*/
package uartclk
