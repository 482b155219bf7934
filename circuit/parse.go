package circuit

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Pre-compiled regexps for the textual circuit format.
var (
	qregRegex        = regexp.MustCompile(`^qreg\s+q\[(\d+)\];?$`)
	singleGateRegex  = regexp.MustCompile(`^(\w+)\s+q\[(\d+)\];?$`)
	paramGateRegex   = regexp.MustCompile(`^(\w+)\s*\(\s*(` + paramPattern + `)\s*\)\s+q\[(\d+)\];?$`)
	twoQubitRegex    = regexp.MustCompile(`^(\w+)\s+q\[(\d+)\]\s*,\s*q\[(\d+)\];?$`)
	threeQubitRegex  = regexp.MustCompile(`^(\w+)\s+q\[(\d+)\]\s*,\s*q\[(\d+)\]\s*,\s*q\[(\d+)\];?$`)
	diffuseRegex     = regexp.MustCompile(`^diffuse;?$`)
	headerPrefixes   = []string{"OPENQASM", "include", "creg"}
)

// Parse reads the textual circuit format:
//
//	qreg q[2];
//	h q[0];
//	rx(pi/2) q[1];
//	cx q[0], q[1];
//	diffuse;
//
// Gate names are case-insensitive; "cnot" and "ccnot" are accepted as
// aliases for cx and ccx. Blank lines and // comments are skipped, and
// OPENQASM/include/creg headers are tolerated for compatibility with
// exported QASM snippets.
func Parse(src string) (*Circuit, error) {
	c := &Circuit{}
	for lineNo, raw := range strings.Split(src, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "//") || isHeader(line) {
			continue
		}

		if m := qregRegex.FindStringSubmatch(line); m != nil {
			n, _ := strconv.Atoi(m[1])
			c.NumQubits = n
			continue
		}
		if diffuseRegex.MatchString(line) {
			c.Add("diffuse", nil)
			continue
		}
		if m := paramGateRegex.FindStringSubmatch(line); m != nil {
			val, ok := ParseParam(m[2])
			if !ok {
				return nil, fmt.Errorf("line %d: cannot parse parameter %q", lineNo+1, m[2])
			}
			q, _ := strconv.Atoi(m[3])
			c.Add(normalizeName(m[1]), []float64{val}, q)
			continue
		}
		if m := threeQubitRegex.FindStringSubmatch(line); m != nil {
			a, _ := strconv.Atoi(m[2])
			b, _ := strconv.Atoi(m[3])
			d, _ := strconv.Atoi(m[4])
			c.Add(normalizeName(m[1]), nil, a, b, d)
			continue
		}
		if m := twoQubitRegex.FindStringSubmatch(line); m != nil {
			a, _ := strconv.Atoi(m[2])
			b, _ := strconv.Atoi(m[3])
			c.Add(normalizeName(m[1]), nil, a, b)
			continue
		}
		if m := singleGateRegex.FindStringSubmatch(line); m != nil {
			q, _ := strconv.Atoi(m[2])
			c.Add(normalizeName(m[1]), nil, q)
			continue
		}
		return nil, fmt.Errorf("line %d: cannot parse %q", lineNo+1, line)
	}

	if c.NumQubits == 0 {
		return nil, fmt.Errorf("missing qreg declaration")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func isHeader(line string) bool {
	for _, p := range headerPrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

func normalizeName(name string) string {
	name = strings.ToLower(name)
	switch name {
	case "cnot":
		return "cx"
	case "ccnot", "toffoli":
		return "ccx"
	}
	return name
}

// String renders the circuit back to the textual format Parse reads.
func (c *Circuit) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "qreg q[%d];\n", c.NumQubits)
	for _, op := range c.Ops {
		switch {
		case op.Name == "diffuse":
			sb.WriteString("diffuse;\n")
		case len(op.Params) > 0:
			fmt.Fprintf(&sb, "%s(%s) q[%d];\n", op.Name, FormatParam(op.Params[0]), op.Qubits[0])
		default:
			refs := make([]string, len(op.Qubits))
			for i, q := range op.Qubits {
				refs[i] = fmt.Sprintf("q[%d]", q)
			}
			fmt.Fprintf(&sb, "%s %s;\n", op.Name, strings.Join(refs, ", "))
		}
	}
	return sb.String()
}
