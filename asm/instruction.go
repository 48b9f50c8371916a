// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"strconv"
	"strings"
)

// Kind is the type of a classified source line.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_ADDRESS = Kind(0) // address
	KIND_LABEL   = Kind(1) // label
	KIND_COMPUTE = Kind(2) // compute
)

// TargetKind is the syntactic form of an address-load target.
type TargetKind int

//go:generate go tool stringer -linecomment -type=TargetKind
const (
	TARGET_LITERAL    = TargetKind(0) // literal
	TARGET_SYMBOL     = TargetKind(1) // symbol
	TARGET_EXPRESSION = TargetKind(2) // expression
)

// Mnemonic used for an absent dest or jump field.
const MNEMONIC_NULL = "null"

// Instruction is a single classified line of Hack assembly.
//
// Only the fields belonging to Kind are meaningful.
type Instruction struct {
	Kind Kind

	Target     string     // KIND_ADDRESS: target text after '@'.
	TargetKind TargetKind // KIND_ADDRESS: form of Target.
	Address    int        // KIND_ADDRESS: resolved address.

	Name string // KIND_LABEL: label name.

	Comp string // KIND_COMPUTE: computation mnemonic.
	Dest string // KIND_COMPUTE: destination mnemonic, or MNEMONIC_NULL.
	Jump string // KIND_COMPUTE: jump mnemonic, or MNEMONIC_NULL.
}

// MakeLiteral creates an address-load of a literal address.
func MakeLiteral(address int) Instruction {
	return Instruction{
		Kind:       KIND_ADDRESS,
		Target:     strconv.Itoa(address),
		TargetKind: TARGET_LITERAL,
		Address:    address,
	}
}

// MakeSymbol creates an unresolved address-load of a symbol.
func MakeSymbol(name string) Instruction {
	return Instruction{Kind: KIND_ADDRESS, Target: name, TargetKind: TARGET_SYMBOL}
}

// MakeLabel creates a label definition.
func MakeLabel(name string) Instruction {
	return Instruction{Kind: KIND_LABEL, Name: name}
}

// MakeCompute creates a compute instruction. Empty dest or jump
// mnemonics are replaced by MNEMONIC_NULL.
func MakeCompute(dest, comp, jump string) Instruction {
	if len(dest) == 0 {
		dest = MNEMONIC_NULL
	}
	if len(jump) == 0 {
		jump = MNEMONIC_NULL
	}
	return Instruction{Kind: KIND_COMPUTE, Comp: comp, Dest: dest, Jump: jump}
}

// String returns the assembly language form of the instruction.
func (inst Instruction) String() string {
	switch inst.Kind {
	case KIND_ADDRESS:
		return "@" + inst.Target
	case KIND_LABEL:
		return "(" + inst.Name + ")"
	case KIND_COMPUTE:
		var sb strings.Builder
		if inst.Dest != MNEMONIC_NULL {
			sb.WriteString(inst.Dest)
			sb.WriteString(DEST_SEPARATOR)
		}
		sb.WriteString(inst.Comp)
		if inst.Jump != MNEMONIC_NULL {
			sb.WriteString(JUMP_SEPARATOR)
			sb.WriteString(inst.Jump)
		}
		return sb.String()
	}

	return inst.Kind.String()
}
