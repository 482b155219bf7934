package main

// menuItem represents a single gate choice in the menu.
type menuItem struct {
	name       string // display name
	op         string // circuit op name
	symbol     string
	qubits     int // qubit operands to select (0 = whole register)
	needsParam bool
	paramHint  string
}

// menuCategory groups related menu items under a tab.
type menuCategory struct {
	name  string
	items []menuItem
}

// gateMenu defines the gate picker categories and items.
var gateMenu = []menuCategory{
	{
		name: "Single Qubit",
		items: []menuItem{
			{name: "Hadamard", op: "h", symbol: "H", qubits: 1},
			{name: "Pauli-X (NOT)", op: "x", symbol: "X", qubits: 1},
			{name: "Pauli-Y", op: "y", symbol: "Y", qubits: 1},
			{name: "Pauli-Z", op: "z", symbol: "Z", qubits: 1},
			{name: "Identity", op: "id", symbol: "I", qubits: 1},
			{name: "Phase (S)", op: "s", symbol: "S", qubits: 1},
			{name: "T Gate", op: "t", symbol: "T", qubits: 1},
		},
	},
	{
		name: "Rotation",
		items: []menuItem{
			{name: "Rotate X", op: "rx", symbol: "RX", qubits: 1, needsParam: true, paramHint: "pi/2"},
			{name: "Rotate Y", op: "ry", symbol: "RY", qubits: 1, needsParam: true, paramHint: "pi/2"},
			{name: "Rotate Z", op: "rz", symbol: "RZ", qubits: 1, needsParam: true, paramHint: "pi/2"},
			{name: "Phase Shift", op: "p", symbol: "P", qubits: 1, needsParam: true, paramHint: "pi/4"},
		},
	},
	{
		name: "Multi Qubit",
		items: []menuItem{
			{name: "CNOT", op: "cx", symbol: "CX", qubits: 2},
			{name: "SWAP", op: "swap", symbol: "SW", qubits: 2},
			{name: "Toffoli (CCX)", op: "ccx", symbol: "CCX", qubits: 3},
		},
	},
	{
		name: "Register",
		items: []menuItem{
			{name: "Grover Diffusion", op: "diffuse", symbol: "DIF"},
		},
	},
}
