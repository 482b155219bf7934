package circuit

import (
	"math"
	"strings"
	"testing"
)

func TestParseBellProgram(t *testing.T) {
	src := `// Bell pair
qreg q[2];

h q[0];
cx q[0], q[1];`

	c, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if c.NumQubits != 2 {
		t.Fatalf("expected 2 qubits, got %d", c.NumQubits)
	}
	if len(c.Ops) != 2 {
		t.Fatalf("expected 2 ops, got %d", len(c.Ops))
	}
	if c.Ops[0].Name != "h" || c.Ops[0].Qubits[0] != 0 {
		t.Errorf("op 0: expected h q[0], got %s %v", c.Ops[0].Name, c.Ops[0].Qubits)
	}
	if c.Ops[1].Name != "cx" || c.Ops[1].Qubits[0] != 0 || c.Ops[1].Qubits[1] != 1 {
		t.Errorf("op 1: expected cx q[0],q[1], got %s %v", c.Ops[1].Name, c.Ops[1].Qubits)
	}
}

func TestParseParamGates(t *testing.T) {
	src := `qreg q[1];
rx(pi/2) q[0];
rz(-3*pi/4) q[0];
p(0.25) q[0];`

	c, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(c.Ops) != 3 {
		t.Fatalf("expected 3 ops, got %d", len(c.Ops))
	}

	checks := []struct {
		name string
		want float64
	}{
		{"rx", math.Pi / 2},
		{"rz", -3 * math.Pi / 4},
		{"p", 0.25},
	}
	for i, chk := range checks {
		op := c.Ops[i]
		if op.Name != chk.name {
			t.Errorf("op %d: expected %s, got %s", i, chk.name, op.Name)
		}
		if math.Abs(op.Params[0]-chk.want) > 1e-10 {
			t.Errorf("op %d: expected param %g, got %g", i, chk.want, op.Params[0])
		}
	}
}

func TestParseAliasesAndHeaders(t *testing.T) {
	src := `OPENQASM 2.0;
include "qelib1.inc";

qreg q[3];
creg c[3];

CNOT q[0], q[1];
toffoli q[0], q[1], q[2];
diffuse;`

	c, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(c.Ops) != 3 {
		t.Fatalf("expected 3 ops, got %d", len(c.Ops))
	}
	if c.Ops[0].Name != "cx" {
		t.Errorf("expected cnot alias to normalize to cx, got %s", c.Ops[0].Name)
	}
	if c.Ops[1].Name != "ccx" {
		t.Errorf("expected toffoli alias to normalize to ccx, got %s", c.Ops[1].Name)
	}
	if c.Ops[2].Name != "diffuse" {
		t.Errorf("expected diffuse, got %s", c.Ops[2].Name)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []string{
		"h q[0];",                      // no qreg
		"qreg q[2];\nwat is this",      // unparseable line
		"qreg q[2];\nfrob q[0];",       // unknown gate
		"qreg q[1];\nh q[4];",          // qubit out of range
		"qreg q[1];\nrx(nope) q[0];",   // bad parameter
	}
	for _, src := range cases {
		if _, err := Parse(src); err == nil {
			t.Errorf("expected error for %q", src)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	c := &Circuit{NumQubits: 2}
	c.Add("h", nil, 0)
	c.Add("rx", []float64{math.Pi / 2}, 1)
	c.Add("cx", nil, 0, 1)
	c.Add("diffuse", nil)

	text := c.String()
	if !strings.Contains(text, "rx(pi/2) q[1];") {
		t.Errorf("expected pi notation in output, got:\n%s", text)
	}

	c2, err := Parse(text)
	if err != nil {
		t.Fatalf("re-parse error: %v", err)
	}
	if len(c2.Ops) != len(c.Ops) {
		t.Fatalf("round trip lost ops: %d != %d", len(c2.Ops), len(c.Ops))
	}
	for i := range c.Ops {
		if c2.Ops[i].Name != c.Ops[i].Name {
			t.Errorf("op %d: %s != %s", i, c2.Ops[i].Name, c.Ops[i].Name)
		}
	}
}

func TestParseParamExpressions(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"1.5707", 1.5707, true},
		{"pi", math.Pi, true},
		{"pi/2", math.Pi / 2, true},
		{"3*pi/4", 3 * math.Pi / 4, true},
		{"2pi", 2 * math.Pi, true},
		{"-pi/2", -math.Pi / 2, true},
		{"3.14e-2", 0.0314, true},
		{"", 0, false},
		{"tau", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseParam(tc.in)
		if ok != tc.ok {
			t.Errorf("ParseParam(%q): ok=%v, want %v", tc.in, ok, tc.ok)
			continue
		}
		if ok && math.Abs(got-tc.want) > 1e-10 {
			t.Errorf("ParseParam(%q) = %g, want %g", tc.in, got, tc.want)
		}
	}
}
