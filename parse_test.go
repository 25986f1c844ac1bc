package uartclk_test

import (
	"strings"
	"testing"

	hw "github.com/cnagy123/uartclk"
)

func Test_io_spec(t *testing.T) {
	td := []struct {
		spec string
		want []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a, b", []string{"a", "b"}},
		{"bus[2]", []string{"bus[0]", "bus[1]"}},
		{"en, rst_n, status[3]", []string{"en", "rst_n", "status[0]", "status[1]", "status[2]"}},
	}
	for _, d := range td {
		got := hw.IO(d.spec)
		if len(got) != len(d.want) {
			t.Errorf("IO(%q) = %v, want %v", d.spec, got, d.want)
			continue
		}
		for i := range got {
			if got[i] != d.want[i] {
				t.Errorf("IO(%q) = %v, want %v", d.spec, got, d.want)
				break
			}
		}
	}
}

func Test_io_spec_errors(t *testing.T) {
	td := []string{
		"[",
		"a[",
		"a[x]",
		"a[1",
		"a b",
		"a,,b",
		"1a",
	}
	for _, spec := range td {
		t.Run(spec, func(t *testing.T) {
			defer func() {
				if e := recover(); e == nil {
					t.Errorf("IO(%q) should panic", spec)
				} else {
					t.Logf("%v", e)
				}
			}()
			hw.IO(spec)
		})
	}
}

func Test_connections(t *testing.T) {
	conns, err := hw.ParseConnections("en=en, status[0..2]=st[0..2], a[1]=b, x=true")
	if err != nil {
		t.Fatal(err)
	}
	want := []hw.Connection{
		{PP: "en", CP: "en"},
		{PP: "status[0]", CP: "st[0]"},
		{PP: "status[1]", CP: "st[1]"},
		{PP: "status[2]", CP: "st[2]"},
		{PP: "a[1]", CP: "b"},
		{PP: "x", CP: "true"},
	}
	if len(conns) != len(want) {
		t.Fatalf("got %v, want %v", conns, want)
	}
	for i := range want {
		if conns[i] != want[i] {
			t.Errorf("conns[%d] = %v, want %v", i, conns[i], want[i])
		}
	}

	// a single right hand side net fans in to every left hand pin
	conns, err = hw.ParseConnections("sel[0..1]=false")
	if err != nil {
		t.Fatal(err)
	}
	if len(conns) != 2 || conns[0].CP != "false" || conns[1].CP != "false" {
		t.Errorf("fan in: got %v", conns)
	}

	conns, err = hw.ParseConnections("")
	if err != nil {
		t.Fatal(err)
	}
	if len(conns) != 0 {
		t.Errorf("empty spec: got %v", conns)
	}
}

func Test_connections_errors(t *testing.T) {
	td := []struct {
		spec string
		err  string
	}{
		{"en", "expected pin assignment"},
		{"a=b=c", "unexpected"},
		{"a[0..1]=b[0..2]", "pin count mismatch"},
		{"a[2..0]=b", "invalid bus range"},
		{"=a", "expected pin name"},
		{"a=", "expected pin name"},
	}
	for _, d := range td {
		t.Run(d.spec, func(t *testing.T) {
			_, err := hw.ParseConnections(d.spec)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), d.err) {
				t.Errorf("got error %q, want %q", err, d.err)
			}
		})
	}
}
