package baudgen_test

import (
	"math/rand"
	"testing"
	"testing/quick"

	bg "github.com/cnagy123/uartclk/baudgen"
	ct "github.com/cnagy123/uartclk/clktest"
)

// output records by state, for readable expected waveforms
var (
	idle = bg.Idle.Outputs()
	cnt  = bg.Counting.Outputs()
	tick = bg.ThresholdReached.Outputs()
	done = bg.Done.Outputs()
)

func compare(t *testing.T, got, want []bg.Outputs) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d records, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cycle %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func Test_waveform(t *testing.T) {
	g, err := bg.New(ct.ConfigWithThreshold(4))
	if err != nil {
		t.Fatal(err)
	}

	// enable rises at cycle 2 and stays up: one cycle to latch enable,
	// then the four cycle slice repeats with the tick one cycle before
	// each done boundary
	got := ct.Drive(g, ct.Disabled(2).Then(ct.Enabled(9)))
	want := []bg.Outputs{idle, idle, idle, cnt, cnt, tick, done, cnt, cnt, tick, done}
	compare(t, got, want)
}

func Test_enable_pulse(t *testing.T) {
	g, err := bg.New(ct.ConfigWithThreshold(4))
	if err != nil {
		t.Fatal(err)
	}

	// a single cycle enable pulse runs exactly one slice
	stim := ct.Disabled(1).Then(ct.Enabled(1)).Then(ct.Disabled(5))
	got := ct.Drive(g, stim)
	want := []bg.Outputs{idle, idle, cnt, cnt, tick, done, idle}
	compare(t, got, want)
}

func Test_disable_mid_slice(t *testing.T) {
	g, err := bg.New(ct.ConfigWithThreshold(4))
	if err != nil {
		t.Fatal(err)
	}

	// enable drops while counting: the slice still completes, the
	// generator parks in idle only after the done boundary
	stim := ct.Enabled(2).Then(ct.Disabled(6))
	got := ct.Drive(g, stim)
	want := []bg.Outputs{idle, cnt, cnt, tick, done, idle, idle, idle}
	compare(t, got, want)
}

func Test_reset_mid_slice(t *testing.T) {
	g, err := bg.New(ct.ConfigWithThreshold(4))
	if err != nil {
		t.Fatal(err)
	}

	// reset in the middle of a count throws the partial slice away and
	// the next enabled slice starts from a clean counter
	stim := ct.Enabled(3).Then(ct.ResetPulse(1)).Then(ct.Enabled(8))
	got := ct.Drive(g, stim)
	want := []bg.Outputs{idle, cnt, cnt, idle, idle, cnt, cnt, tick, done, cnt, cnt, tick}
	compare(t, got, want)
}

func Test_reset_method(t *testing.T) {
	g, err := bg.New(ct.ConfigWithThreshold(4))
	if err != nil {
		t.Fatal(err)
	}

	g.Step(true, true)
	g.Step(true, true)
	if g.State() != bg.Counting {
		t.Fatalf("state = %v, want counting", g.State())
	}

	g.Reset()
	if g.State() != bg.Idle {
		t.Errorf("state after reset = %v, want idle", g.State())
	}
	if out := g.Outputs(); out != idle {
		t.Errorf("outputs after reset = %+v, want %+v", out, idle)
	}

	// the machine restarts cleanly, including the enable latch
	got := ct.Drive(g, ct.Enabled(4))
	compare(t, got, []bg.Outputs{idle, cnt, cnt, tick})
}

func Test_tick_period(t *testing.T) {
	cfgs := []bg.Config{
		ct.ConfigWithThreshold(3),
		ct.ConfigWithThreshold(4),
		bg.DefaultConfig(),
		{ClockHz: 150000000, Baud: 245},
	}
	for _, cfg := range cfgs {
		g, err := bg.New(cfg)
		if err != nil {
			t.Fatal(err)
		}
		n := cfg.Threshold()
		samples := ct.Drive(g, ct.Enabled(3*n+10))

		ticks := ct.Ticks(samples)
		if len(ticks) < 3 {
			t.Fatalf("%v: only %d ticks in %d cycles", cfg, len(ticks), 3*n+10)
		}
		// the first slice spends one extra cycle latching enable
		if ticks[0] != n-1 {
			t.Errorf("%v: first tick at cycle %d, want %d", cfg, ticks[0], n-1)
		}
		for i, p := range ct.Periods(samples) {
			if p != n {
				t.Errorf("%v: period %d is %d cycles, want %d", cfg, i, p, n)
			}
		}
	}
}

// Whatever the input sequence, the status tag always identifies one of
// the four control states and the flag outputs match it.
func Test_status_consistent(t *testing.T) {
	f := func(seed int64) bool {
		rnd := rand.New(rand.NewSource(seed))
		g, err := bg.New(ct.ConfigWithThreshold(5))
		if err != nil {
			t.Fatal(err)
		}
		for _, out := range ct.Drive(g, ct.Random(rnd, 200)) {
			switch out.Status {
			case bg.StatusIdle, bg.StatusCounting, bg.StatusThreshold, bg.StatusDone:
			default:
				return false
			}
			running := out.Status != bg.StatusIdle
			if out.Running != running ||
				out.Tick != (out.Status == bg.StatusThreshold) ||
				out.Done != (out.Status == bg.StatusDone) {
				return false
			}
		}
		return true
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func Test_new_rejects_bad_config(t *testing.T) {
	bad := []bg.Config{
		{ClockHz: 0, Baud: 115200},
		{ClockHz: 150000000, Baud: 0},
		{ClockHz: 150000000, Baud: 100},
		{ClockHz: 150000000, Baud: 4000000},
	}
	for _, cfg := range bad {
		g, err := bg.New(cfg)
		if err == nil {
			t.Errorf("New(%v) should fail", cfg)
			continue
		}
		if g != nil {
			t.Errorf("New(%v) returned a generator with an error", cfg)
		}
		t.Logf("%v", err)
	}
}

func Test_output_records(t *testing.T) {
	td := []struct {
		state bg.State
		want  bg.Outputs
	}{
		{bg.Idle, bg.Outputs{Status: bg.StatusIdle}},
		{bg.Counting, bg.Outputs{Status: bg.StatusCounting, Running: true}},
		{bg.ThresholdReached, bg.Outputs{Status: bg.StatusThreshold, Tick: true, Running: true}},
		{bg.Done, bg.Outputs{Status: bg.StatusDone, Running: true, Done: true}},
		{bg.State(7), bg.Outputs{}},
	}
	for _, d := range td {
		if got := d.state.Outputs(); got != d.want {
			t.Errorf("%v: got %+v, want %+v", d.state, got, d.want)
		}
	}
}

func Test_status_values(t *testing.T) {
	// architectural constants of the status bus
	td := []struct {
		status bg.Status
		value  uint8
		str    string
	}{
		{bg.StatusInvalid, 0x00, "invalid"},
		{bg.StatusIdle, 0x01, "idle"},
		{bg.StatusCounting, 0x02, "counting"},
		{bg.StatusThreshold, 0x03, "threshold"},
		{bg.StatusDone, 0xff, "done"},
	}
	for _, d := range td {
		if uint8(d.status) != d.value {
			t.Errorf("%s = %#02x, want %#02x", d.str, uint8(d.status), d.value)
		}
		if got := d.status.String(); got != d.str {
			t.Errorf("String() = %q, want %q", got, d.str)
		}
	}
	if got := bg.Status(9).String(); got != "status(0x09)" {
		t.Errorf("Status(9).String() = %q", got)
	}
	if got := bg.Status(0xab).String(); got != "status(0xab)" {
		t.Errorf("Status(0xab).String() = %q", got)
	}
	if got := bg.State(9).String(); got != "state(9)" {
		t.Errorf("State(9).String() = %q", got)
	}
}
