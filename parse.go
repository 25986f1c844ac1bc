// Copyright 2026 Csaba Nagy <cnagy123@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package uartclk

import (
	"strconv"

	"github.com/cnagy123/uartclk/internal/wire"
	"github.com/pkg/errors"
)

// A Connection links a part's pin to a net of the enclosing circuit.
//
type Connection struct {
	PP string // part pin name
	CP string // circuit net name
}

// IO expands a pin specification string to a slice of individual pin
// names, also expanding bus declarations:
//
//	IO("a, b, bus[2]") // returns []string{"a", "b", "bus[0]", "bus[1]"}
//
// IO panics if the specification cannot be parsed.
//
func IO(spec string) []string {
	pins, err := parseIOspec(spec)
	if err != nil {
		panic(err)
	}
	return pins
}

// parseIOspec parses a pin specification string and returns individual
// pin names in a slice, also expanding bus declarations to individual pin
// names.
//
func parseIOspec(names string) ([]string, error) {
	var out []string

	l := wire.New(names)
	i := l.Lex()
	if i.Type == wire.EOF {
		return nil, nil
	}
F:
	for {
		if i.Type != wire.Ident {
			return nil, parseError(names, i.Pos, "expected pin name")
		}
		name := i.Value.(string)
		// after ident, expect comma, [ or EOF
		i = l.Lex()
		switch i.Type {
		case wire.EOF:
			out = append(out, name)
			break F
		case wire.Comma:
			out = append(out, name)
			i = l.Lex()
			continue
		case wire.BracketOpen:
		default:
			return nil, parseError(names, i.Pos, "expected bus size specification or comma")
		}
		// expect bus size
		i = l.Lex()
		if i.Type != wire.Int {
			return nil, parseError(names, i.Pos, "missing bus size")
		}
		for j, cnt := 0, i.Value.(int); j < cnt; j++ {
			out = append(out, busPinName(name, j))
		}
		i = l.Lex()
		if i.Type != wire.BracketClose {
			return nil, parseError(names, i.Pos, "missing close bracket")
		}
		i = l.Lex()
		if i.Type == wire.EOF {
			break
		}
		if i.Type != wire.Comma {
			return nil, parseError(names, i.Pos, "expected comma or end of input")
		}
		i = l.Lex()
	}

	return out, nil
}

// ParseConnections parses a connection configuration string into a
// Connection slice.
//
// The string is a comma separated list of pin assignments. The left hand
// side of an assignment names a pin of the part, the right hand side a
// net of the circuit:
//
//	"en=en, status[0]=st0, sel[0..1]=s[2..3], rst_n=true"
//
// Bus ranges on both sides of an assignment must have the same width. A
// plain right hand side connects every expanded left hand pin to that
// single net.
//
func ParseConnections(connections string) ([]Connection, error) {
	var conns []Connection

	p := &wire.Parser{Input: connections}
	for {
		v, err := p.Next(true)
		if err != nil {
			return nil, err
		}
		if v == nil {
			return conns, nil
		}
		a, ok := v.(wire.PinAssignment)
		if !ok {
			return nil, errors.Errorf("in %q: expected pin assignment", connections)
		}
		pp, err := expandPins(connections, a.LHS)
		if err != nil {
			return nil, err
		}
		cp, err := expandPins(connections, a.RHS)
		if err != nil {
			return nil, err
		}
		switch {
		case len(pp) == len(cp):
			for i := range pp {
				conns = append(conns, Connection{PP: pp[i], CP: cp[i]})
			}
		case len(cp) == 1:
			for _, n := range pp {
				conns = append(conns, Connection{PP: n, CP: cp[0]})
			}
		default:
			return nil, errors.Errorf("in %q: pin count mismatch in assignment", connections)
		}
	}
}

func expandPins(in string, v interface{}) ([]string, error) {
	switch p := v.(type) {
	case wire.Pin:
		return []string{p.Name}, nil
	case wire.PinIndex:
		return []string{busPinName(p.Name, p.Index)}, nil
	case wire.PinRange:
		if p.End < p.Start {
			return nil, parseError(in, p.Pos, "invalid bus range")
		}
		out := make([]string, 0, p.End-p.Start+1)
		for i := p.Start; i <= p.End; i++ {
			out = append(out, busPinName(p.Name, i))
		}
		return out, nil
	}
	return nil, errors.Errorf("in %q: invalid pin expression", in)
}

// busPinName returns the pin name of pin number i of bus b.
//
func busPinName(b string, i int) string {
	return b + "[" + strconv.Itoa(i) + "]"
}

func parseError(in string, pos wire.Pos, msg string) error {
	return errors.Errorf("in %q at pos %d: %s", in, int(pos)+1, msg)
}
