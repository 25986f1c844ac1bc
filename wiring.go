// Copyright 2026 Csaba Nagy <cnagy123@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package uartclk

import "github.com/pkg/errors"

// wiring allocates circuit pins for named nets and mounts parts onto
// them.
//
type wiring struct {
	c       *Circuit
	nets    map[string]int
	drivers map[int]string // driving part pin, keyed by net pin number
}

func newWiring(c *Circuit) *wiring {
	return &wiring{
		c:       c,
		nets:    map[string]int{False: cstFalse, True: cstTrue},
		drivers: make(map[int]string),
	}
}

// pin returns the pin number of the named net, allocating it on first
// use.
//
func (w *wiring) pin(name string) int {
	n, ok := w.nets[name]
	if !ok {
		n = w.c.allocPin()
		w.nets[name] = n
	}
	return n
}

// mount resolves the connections of part p and returns its components.
// Connected output pins are checked for driver conflicts; unconnected
// inputs are tied to the constant False net and unconnected outputs get
// a private pin.
//
func (w *wiring) mount(p *Part) ([]Component, error) {
	sock := newSocket(w.c)
	for _, conn := range p.Conns {
		switch {
		case containsPin(p.Inputs, conn.PP):
			sock.m[conn.PP] = w.pin(conn.CP)
		case containsPin(p.Outputs, conn.PP):
			n := w.pin(conn.CP)
			if n < cstCount {
				return nil, errors.New("output pin " + conn.PP + " connected to constant " + conn.CP + " input")
			}
			name := p.Name + "." + conn.PP
			if d, ok := w.drivers[n]; ok {
				return nil, errors.New("net " + conn.CP + " driven by both " + d + " and " + name)
			}
			w.drivers[n] = name
			sock.m[conn.PP] = n
		default:
			return nil, errors.New("unknown pin " + conn.PP)
		}
	}
	for _, in := range p.Inputs {
		if _, ok := sock.m[in]; !ok {
			sock.m[in] = cstFalse
		}
	}
	for _, out := range p.Outputs {
		if _, ok := sock.m[out]; !ok {
			sock.m[out] = w.c.allocPin()
		}
	}
	return p.Mount(sock), nil
}

func containsPin(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
