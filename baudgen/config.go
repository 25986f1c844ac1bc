// Copyright 2026 Csaba Nagy <cnagy123@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package baudgen

import (
	"fmt"

	"github.com/pkg/errors"
)

// Oversample is the number of ticks per bit period. Receivers count
// ticks to locate the middle of a bit, transmitters to time bit
// boundaries.
const Oversample = 16

// Default timing parameters: a 150 MHz reference clock divided down to
// 115200 Bd.
const (
	DefaultClockHz = 150000000
	DefaultBaud    = 115200
)

// Common baud rates.
const (
	Baud9600   = 9600
	Baud19200  = 19200
	Baud38400  = 38400
	Baud57600  = 57600
	Baud115200 = 115200
)

const (
	// A tick loop spends one cycle each in the threshold and done
	// states, so the divisor must leave at least one cycle for counting.
	minDivisor = 3

	// The divider register is 16 bits wide.
	maxDivisor = 1<<16 - 1
)

// A Config holds the timing parameters of a tick generator.
//
type Config struct {
	ClockHz int // reference clock frequency in Hz
	Baud    int // target baud rate in Bd
}

// DefaultConfig returns the default configuration.
//
func DefaultConfig() Config {
	return Config{ClockHz: DefaultClockHz, Baud: DefaultBaud}
}

// Threshold returns the tick divisor of the configuration: the number of
// clock cycles between consecutive ticks, floor(ClockHz / (Baud *
// Oversample)) saturated to the divider register range. It returns 0 for
// nonsensical parameters.
//
func (cfg Config) Threshold() int {
	if cfg.ClockHz <= 0 || cfg.Baud <= 0 {
		return 0
	}
	d := cfg.ClockHz / (cfg.Baud * Oversample)
	if d > maxDivisor {
		return maxDivisor
	}
	return d
}

// Validate checks that the configuration yields a workable divisor: one
// that fits the 16 bit divider register and covers the 3 cycle tick
// loop. The supported 245 to 115200 Bd envelope at 150 MHz passes; the
// divisor window itself admits 144 Bd to 3.125 MBd at that clock.
//
func (cfg Config) Validate() error {
	if cfg.ClockHz <= 0 {
		return errors.Errorf("invalid clock frequency %d Hz", cfg.ClockHz)
	}
	if cfg.Baud <= 0 {
		return errors.Errorf("invalid baud rate %d Bd", cfg.Baud)
	}
	d := cfg.ClockHz / (cfg.Baud * Oversample)
	if d > maxDivisor {
		return errors.Errorf("divisor %d overflows the 16 bit divider register", d)
	}
	if d < minDivisor {
		return errors.Errorf("divisor %d is smaller than the %d cycle tick loop", d, minDivisor)
	}
	return nil
}

func (cfg Config) String() string {
	return fmt.Sprintf("%d Hz / %d Bd, divisor %d", cfg.ClockHz, cfg.Baud, cfg.Threshold())
}
